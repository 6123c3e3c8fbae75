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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestJSONLoggerFields(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "sdc_aws_processing_function")

	var buf bytes.Buffer
	logger := newJSONLogger(&buf, false)
	logger.Infow("File processed", "key", "unprocessed/hermes_EEA_l0_2023042-000000_v0.bin")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "File processed", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, serviceName, line["service"])
	assert.Equal(t, "sdc_aws_processing_function", line["function"])
	assert.Equal(t, "unprocessed/hermes_EEA_l0_2023042-000000_v0.bin", line["key"])
	assert.Contains(t, line, "timestamp")
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	newJSONLogger(&buf, false).Debugw("hidden")
	assert.Empty(t, buf.String())

	newJSONLogger(&buf, true).Debugw("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscardLog(t *testing.T) {
	logger := NewDiscardLog()
	assert.NotPanics(t, func() {
		logger.Errorw("discarded", "key", "value")
		logger.With("bucket", "hermes-eea").Infow("discarded too")
	})
}
