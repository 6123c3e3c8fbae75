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

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services/stages"
	"sdc-aws-processing/logging"
)

// QueueCleanup acknowledges a message once every file it carried was handled.
// Failed messages are left alone, the queue redelivers them and eventually moves them to the dead letter queue.
type QueueCleanup struct {
	queue  out.Queue
	logger logging.Logger
}

func NewQueueCleanup(queue out.Queue, logger logging.Logger) *QueueCleanup {
	return &QueueCleanup{queue: queue, logger: logger}
}

func (q *QueueCleanup) Clean(ctx context.Context, request *stages.Cleanup[entities.FileBatch]) {
	batch := request.Request
	if batch == nil || batch.MessageID == "" {
		return
	}

	if request.Error != nil {
		q.logger.Warnw("Message kept for redelivery", "error", request.Error, "queue", q.queue.Name(), "files", len(batch.Requests))
		return
	}

	q.logger.Debugw("Deleting message", "message_id", batch.MessageID)

	if err := q.queue.Delete(ctx, batch.MessageID); err != nil {
		q.logger.Errorw("failed to delete message from sqs service", "error", err, "queue", q.queue.Name())
	}
}
