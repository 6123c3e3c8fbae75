/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package entities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputWriter(t *testing.T) {
	t.Run("values reach the next stage", func(t *testing.T) {
		ch := make(chan *FileBatch, 1)
		w := NewOutputWriter(ch)

		require.NoError(t, w.Write(context.Background(), &FileBatch{MessageID: "receipt"}))
		assert.Equal(t, "receipt", (<-ch).MessageID)
		assert.Equal(t, 1, w.Written())
	})

	t.Run("canceled context stops a blocked write", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := NewOutputWriter(make(chan *FileBatch))
		assert.ErrorIs(t, w.Write(ctx, &FileBatch{}), context.Canceled)
		assert.Zero(t, w.Written())
	})

	t.Run("writes without a next stage are dropped", func(t *testing.T) {
		w := NewOutputWriter[FileBatch](nil)
		assert.NoError(t, w.Write(context.Background(), &FileBatch{}))
	})
}
