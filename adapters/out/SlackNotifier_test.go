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

package out

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeWebhook = "https://hooks.slack.com/services/T000/B000/XXXX"

func TestSlackMessage(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var received map[string]any

	httpmock.RegisterResponder("POST", fakeWebhook, func(request *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(request.Body).Decode(&received); err != nil {
			return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
		}

		return httpmock.NewStringResponse(http.StatusOK, "ok"), nil
	})

	notifier := NewSlackNotifier(fakeWebhook, "C0000")
	err := notifier.SendMessage(context.Background(), "processing failed")
	require.NoError(t, err)

	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, "processing failed", received["text"])
	assert.Equal(t, "C0000", received["channel"])
}

func TestSlackError(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", fakeWebhook, httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	notifier := NewSlackNotifier(fakeWebhook, "C0000")
	assert.Error(t, notifier.SendMessage(context.Background(), "processing failed"))
}
