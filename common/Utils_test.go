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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanReadableSize(t *testing.T) {
	assert.Equal(t, "0B", HumanReadableSize(0))
	assert.Equal(t, "1023B", HumanReadableSize(1023))
	assert.Equal(t, "1.00KiB", HumanReadableSize(1024))
	assert.Equal(t, "1.50MiB", HumanReadableSize(1536*1024))
	assert.Equal(t, "2048.00TiB", HumanReadableSize(2048*1024*1024*1024*1024))
}

func TestGetFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", GetFirstNonEmpty("", " ", "b", "c"))
	assert.Equal(t, "", GetFirstNonEmpty())
}
