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

package in

import (
	"context"
	"time"

	"github.com/uber-go/tally/v4"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/metrics"
)

const (
	singleMessageInc = 1
	receiveBackoff   = 5 * time.Second
)

type QueueController struct {
	outputChannel chan *entities.FileBatch
	queue         out.Queue

	logger       logging.Logger
	metricsScope tally.Scope
}

func NewQueueController(queue out.Queue, outputChannel chan *entities.FileBatch, metricsScope tally.Scope, logger logging.Logger) QueueController {
	return QueueController{queue: queue, outputChannel: outputChannel, logger: logger, metricsScope: metricsScope}
}

// AsyncProcess long polls the queue until the context is done.
func (q *QueueController) AsyncProcess(ctx context.Context) {
	if q.queue == nil {
		q.logger.Infow("Won't attempt to read SQS queue, because none was configured")
		return
	}

	q.logger.Infow("Start of async queue processing", "queue", q.queue.Name())

	for {
		select {
		case <-ctx.Done():
			q.logger.Infow("End of async queue processing")
			return

		default:
			if err := q.ReceiveOnce(ctx); err != nil {
				q.logger.Errorw("failed to obtain messages", "error", err)
				q.wait(ctx)
			}
		}
	}
}

// ReceiveOnce submits the files of every received message, one batch per message.
func (q *QueueController) ReceiveOnce(ctx context.Context) error {
	messages, err := q.queue.Receive(ctx)
	if err != nil {
		return err
	}

	for _, message := range messages {
		requests, err := adapterentities.DecodeQueueMessage([]byte(message.Body), message.ReceiptHandle)
		if err != nil {
			// Nothing in the message will ever be processed, a redelivery would fail the same way.
			q.logger.Errorw("failed to decode message", "error", err, "message_id", message.ID)

			if err := q.queue.Delete(ctx, message.ReceiptHandle); err != nil {
				q.logger.Errorw("deleting invalid message from sqs service failed", "error", err, "message_id", message.ID)
			}

			continue
		}

		for index := range requests {
			requests[index].RequestID = message.ID
			q.logger.Debugw("Received new request", "bucket", requests[index].Bucket, "key", requests[index].Key, "size", requests[index].Size)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case q.outputChannel <- &entities.FileBatch{MessageID: message.ReceiptHandle, Requests: requests}:
		}

		q.metricsScope.Counter(metrics.ConsumeCount).Inc(singleMessageInc)
	}

	return nil
}

func (q *QueueController) wait(ctx context.Context) {
	timer := time.NewTimer(receiveBackoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
