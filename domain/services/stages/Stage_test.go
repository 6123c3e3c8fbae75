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

package stages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/mocks"
)

func TestStageProcess(t *testing.T) {
	t.Run("handler executed for each input", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		batches := []entities.FileBatch{
			{MessageID: "first", Requests: []entities.FileRequest{{Bucket: "hermes-eea", Key: "unprocessed/file"}}},
			{MessageID: "second", Requests: []entities.FileRequest{{Bucket: "hermes-eea", Key: "unprocessed/file2"}}},
		}

		handler := mocks.NewSpyHandler()
		inputChannel := make(chan *entities.FileBatch, len(batches))
		cleanupChannel := make(chan *Cleanup[entities.FileBatch])
		stage := NewStage[entities.FileBatch, entities.FileBatch](handler, inputChannel, cleanupChannel, logging.NewDiscardLog())

		for _, batch := range batches {
			batch := batch
			inputChannel <- &batch
		}

		stage.Process(ctx)

		require.Eventually(t, func() bool { return handler.Calls("Name") == 1 }, 5*time.Second, 10*time.Millisecond)
		require.Eventually(t, func() bool { return handler.Calls("Handle") == 2 }, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("stage stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		handler := mocks.NewSpyHandler()
		inputChannel := make(chan *entities.FileBatch, 1)
		cleanupChannel := make(chan *Cleanup[entities.FileBatch])
		stage := NewStage[entities.FileBatch, entities.FileBatch](handler, inputChannel, cleanupChannel, logging.NewDiscardLog())

		cancel()
		stage.Process(ctx)
		time.Sleep(time.Second)
		inputChannel <- &entities.FileBatch{MessageID: "late"}

		require.Equal(t, 1, handler.Calls("Name"))
		require.Equal(t, 0, handler.Calls("Handle"))
	})

	t.Run("failures and panics are sent to cleanup", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		handler := mocks.NewSpyHandler()
		handler.Fail = func(batch *entities.FileBatch) error {
			if batch.MessageID == "panic" {
				panic("boom")
			}

			return errors.New("failed")
		}

		inputChannel := make(chan *entities.FileBatch, 2)
		cleanupChannel := make(chan *Cleanup[entities.FileBatch], 2)
		stage := NewStage[entities.FileBatch, entities.FileBatch](handler, inputChannel, cleanupChannel, logging.NewDiscardLog())

		inputChannel <- &entities.FileBatch{MessageID: "error"}
		inputChannel <- &entities.FileBatch{MessageID: "panic"}
		stage.Process(ctx)

		first := <-cleanupChannel
		second := <-cleanupChannel

		assert.Equal(t, "error", first.Request.MessageID)
		assert.EqualError(t, first.Error, "failed")
		assert.Equal(t, "panic", second.Request.MessageID)
		assert.EqualError(t, second.Error, "boom")
	})
}
