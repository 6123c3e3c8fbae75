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

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"sdc-aws-processing/domain/entities"
)

//nolint:gochecknoglobals
var validate = validator.New()

type invocationRecord struct {
	S3Event
	Sns *SNSEntity `json:"Sns"`
}

type invocation struct {
	Records []invocationRecord `json:"Records"`
	FilePayload
}

// DecodeInvocation accepts SNS wrapped bucket notifications, direct bucket notifications and FilePayload.
func DecodeInvocation(raw []byte) ([]entities.FileRequest, error) {
	var event invocation
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("failed to decode invocation: %w", err)
	}

	if len(event.Records) == 0 {
		if event.Bucket == "" && event.FileKey == "" {
			return nil, entities.ErrUnsupportedEvent
		}

		return DecodePayload(event.FilePayload)
	}

	var requests []entities.FileRequest

	for _, record := range event.Records {
		if record.Sns != nil {
			var events Events
			if err := json.Unmarshal([]byte(record.Sns.Message), &events); err != nil {
				return nil, fmt.Errorf("failed to decode notification message %s: %w", record.Sns.MessageID, err)
			}

			for _, created := range createdEvents(events.Record) {
				requests = append(requests, newFileRequest(created, entities.SourceSNS, record.Sns.MessageID))
			}

			continue
		}

		if record.IsObjectCreated() {
			requests = append(requests, newFileRequest(record.S3Event, entities.SourceS3, ""))
		}
	}

	if len(requests) == 0 {
		return nil, entities.ErrUnsupportedEvent
	}

	return requests, nil
}

// DecodeQueueMessage reads the body of a queue message, either an SNS notification or the raw bucket events.
func DecodeQueueMessage(body []byte, receiptHandle string) ([]entities.FileRequest, error) {
	var notification SQSNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message. %w", err)
	}

	var events Events

	message := body
	if notification.Message != "" {
		message = []byte(notification.Message)
	}

	if err := json.Unmarshal(message, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events. %w", err)
	}

	var requests []entities.FileRequest
	for _, event := range createdEvents(events.Record) {
		requests = append(requests, newFileRequest(event, entities.SourceSQS, receiptHandle))
	}

	if len(requests) == 0 {
		return nil, entities.ErrUnsupportedEvent
	}

	return requests, nil
}

func DecodePayload(payload FilePayload) ([]entities.FileRequest, error) {
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedEvent, err)
	}

	return []entities.FileRequest{{
		Source: entities.SourceDirect,
		Bucket: payload.Bucket,
		Key:    payload.FileKey,
	}}, nil
}

func createdEvents(events []S3Event) []S3Event {
	created := make([]S3Event, 0, len(events))

	for _, event := range events {
		if event.IsObjectCreated() {
			created = append(created, event)
		}
	}

	return created
}

func newFileRequest(event S3Event, source entities.Source, messageID string) entities.FileRequest {
	// Keys arrive URL encoded, spaces as '+'
	key, err := url.QueryUnescape(event.S3.Object.Key)
	if err != nil {
		key = event.S3.Object.Key
	}

	return entities.FileRequest{
		Source:    source,
		Bucket:    event.S3.Bucket.Name,
		Key:       key,
		Size:      event.S3.Object.Size,
		ETag:      event.S3.Object.ETag,
		EventTime: event.EventTime,
		MessageID: messageID,
	}
}
