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

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/pkg/awsutils"
)

// SQSQueue receives the S3 notifications that were routed through a queue instead of invoking the lambda.
type SQSQueue struct {
	svc *awsutils.SQS
}

func NewSQSQueue(awsSession *session.Session, awsConfig *aws.Config, queueURL string) *SQSQueue {
	return &SQSQueue{svc: awsutils.NewSQS(awsSession, awsConfig, queueURL)}
}

func (s *SQSQueue) Receive(ctx context.Context) ([]out.QueueMessage, error) {
	messages, err := s.svc.Receive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]out.QueueMessage, len(messages))
	for i, message := range messages {
		result[i] = out.QueueMessage{
			ID:            aws.StringValue(message.MessageId),
			ReceiptHandle: aws.StringValue(message.ReceiptHandle),
			Body:          aws.StringValue(message.Body),
		}
	}

	return result, nil
}

func (s *SQSQueue) Delete(ctx context.Context, receiptHandle string) error {
	return s.svc.Delete(ctx, receiptHandle)
}

func (s *SQSQueue) Name() string {
	return s.svc.QueueURL()
}
