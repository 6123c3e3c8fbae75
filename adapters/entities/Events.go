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

package entities

import "time"

type Events struct {
	Record []S3Event `json:"Records"`
}

// SNSEntity is the notification as delivered to a subscribed function.
type SNSEntity struct {
	MessageID string    `json:"MessageId"`
	TopicArn  string    `json:"TopicArn"`
	Subject   string    `json:"Subject"`
	Message   string    `json:"Message"`
	Timestamp time.Time `json:"Timestamp"`
}

type SNSRecord struct {
	EventSource string    `json:"EventSource"`
	Sns         SNSEntity `json:"Sns"`
}

// SQSNotification is the body of a queue message fed by an SNS topic.
type SQSNotification struct {
	Type      string `json:"Type"`
	MessageID string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Message   string `json:"Message"`
}
