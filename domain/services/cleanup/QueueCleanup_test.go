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

package cleanup

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services/stages"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/mocks"
)

func TestQueueCleanup(t *testing.T) {
	t.Run("successful messages are deleted", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		queue := mocks.NewMockQueue(mockCtrl)
		queue.EXPECT().Delete(gomock.Any(), "receipt").Return(nil)

		handler := NewCleanupHandler([]Job{NewQueueCleanup(queue, logging.NewDiscardLog())}, logging.NewDiscardLog())
		err := handler.Handle(context.Background(), &stages.Cleanup[entities.FileBatch]{
			Request: &entities.FileBatch{MessageID: "receipt"},
		}, nil)

		assert.NoError(t, err)
	})

	t.Run("failed messages stay in the queue", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		queue := mocks.NewMockQueue(mockCtrl)
		queue.EXPECT().Name().Return("queue").AnyTimes()

		cleanup := NewQueueCleanup(queue, logging.NewDiscardLog())
		cleanup.Clean(context.Background(), &stages.Cleanup[entities.FileBatch]{
			Request: &entities.FileBatch{MessageID: "receipt", Requests: []entities.FileRequest{{Key: "unprocessed/file"}}},
			Error:   errors.New("1 files failed"),
		})
	})

	t.Run("direct invocations have nothing to delete", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		cleanup := NewQueueCleanup(mocks.NewMockQueue(mockCtrl), logging.NewDiscardLog())
		cleanup.Clean(context.Background(), &stages.Cleanup[entities.FileBatch]{Request: &entities.FileBatch{}})
	})

	t.Run("delete errors are only logged", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		queue := mocks.NewMockQueue(mockCtrl)
		queue.EXPECT().Delete(gomock.Any(), "receipt").Return(errors.New("throttled"))
		queue.EXPECT().Name().Return("queue")

		cleanup := NewQueueCleanup(queue, logging.NewDiscardLog())
		cleanup.Clean(context.Background(), &stages.Cleanup[entities.FileBatch]{Request: &entities.FileBatch{MessageID: "receipt"}})
	})
}

func TestCleanupHandlerName(t *testing.T) {
	handler := NewCleanupHandler([]Job{NewQueueCleanup(nil, logging.NewDiscardLog())}, logging.NewDiscardLog())
	assert.Equal(t, "Cleanup Handler with jobs: QueueCleanup", handler.Name())
}
