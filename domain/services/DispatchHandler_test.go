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

package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services/stages"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/mocks"
)

func TestDispatchHandler(t *testing.T) {
	type test struct {
		name    string
		results []entities.ProcessingResult
		failed  bool
	}

	tests := []test{
		{name: "all processed", results: []entities.ProcessingResult{{Status: entities.Processed}, {Status: entities.Skipped}}},
		{name: "one failure", results: []entities.ProcessingResult{{Status: entities.Processed}, {Status: entities.Failed}}, failed: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			batch := &entities.FileBatch{MessageID: "receipt", Requests: []entities.FileRequest{{Key: "a"}, {Key: "b"}}}

			dispatcher := mocks.NewMockFileDispatcher(mockCtrl)
			dispatcher.EXPECT().Dispatch(gomock.Any(), batch.Requests).Return(tc.results)

			output := make(chan *stages.Cleanup[entities.FileBatch], 1)
			handler := NewDispatchHandler(dispatcher, logging.NewDiscardLog())

			err := handler.Handle(context.Background(), batch, entities.NewOutputWriter(output))
			require.NoError(t, err)

			cleanup := <-output
			assert.Equal(t, batch, cleanup.Request)
			assert.Equal(t, tc.results, cleanup.Request.Results)
			assert.Equal(t, tc.failed, cleanup.Error != nil)
		})
	}
}
