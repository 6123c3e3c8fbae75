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

package awsutils

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

const (
	// SQS caps a single receive at ten messages and twenty seconds of long polling.
	receiveBatchSize = 10
	longPollSeconds  = 20
)

type SQS struct {
	svc      *sqs.SQS
	queueURL string
}

func NewSQS(awsSession *session.Session, awsConfig *aws.Config, queueURL string) *SQS {
	if awsConfig == nil {
		awsConfig = aws.NewConfig()
	}

	return &SQS{svc: sqs.New(awsSession, awsConfig), queueURL: queueURL}
}

// Receive long polls the queue. An empty slice means the poll timed out.
func (s *SQS) Receive(ctx context.Context) ([]*sqs.Message, error) {
	output, err := s.svc.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: aws.Int64(receiveBatchSize),
		WaitTimeSeconds:     aws.Int64(longPollSeconds),
		AttributeNames:      aws.StringSlice([]string{sqs.MessageSystemAttributeNameApproximateReceiveCount}),
	})
	if err != nil {
		return nil, err
	}

	return output.Messages, nil
}

func (s *SQS) Delete(ctx context.Context, receiptHandle string) error {
	_, err := s.svc.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})

	return err
}

func (s *SQS) QueueURL() string {
	return s.queueURL
}
