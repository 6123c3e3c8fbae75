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

	"sdc-aws-processing/pkg/awsutils"
)

const snsSubject = "SDC processing failure"

// SNSNotifier publishes processing failures to the topic the SDC operators subscribe to.
type SNSNotifier struct {
	topic *awsutils.SNS
}

func NewSNSNotifier(awsSession *session.Session, awsConfig *aws.Config, topicArn string) *SNSNotifier {
	return &SNSNotifier{topic: awsutils.NewSNS(awsSession, awsConfig, topicArn)}
}

func (s *SNSNotifier) SendMessage(ctx context.Context, message string) error {
	return s.topic.Publish(ctx, snsSubject, message)
}
