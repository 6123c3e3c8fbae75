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
	"github.com/aws/aws-sdk-go/service/sns"
)

// SNS rejects subjects longer than this.
const maxSubjectSize = 100

type SNS struct {
	client   *sns.SNS
	topicArn string
}

func NewSNS(awsSession *session.Session, awsConfig *aws.Config, topicArn string) *SNS {
	if awsConfig == nil {
		awsConfig = aws.NewConfig()
	}

	return &SNS{client: sns.New(awsSession, awsConfig), topicArn: topicArn}
}

func (s *SNS) Publish(ctx context.Context, subject, message string) error {
	if len(subject) > maxSubjectSize {
		subject = subject[:maxSubjectSize]
	}

	_, err := s.client.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})

	return err
}
