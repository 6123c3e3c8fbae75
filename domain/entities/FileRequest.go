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
	"errors"
	"time"
)

var ErrUnsupportedEvent = errors.New("unsupported event")

type Source string

const (
	SourceS3     Source = "s3"
	SourceSNS    Source = "sns"
	SourceSQS    Source = "sqs"
	SourceDirect Source = "direct"
	SourceHTTP   Source = "http"
	SourceCLI    Source = "cli"
)

type FileRequest struct {
	RequestID string    // Invocation that carried the file
	Source    Source    // How the notification arrived
	Bucket    string    // Bucket where the file was created
	Key       string    // Object key, already URL decoded
	Size      uint64    // Object size from the notification, zero when unknown
	ETag      string    // Object checksum from the notification
	EventTime time.Time // Notification time, zero for direct invocations
	MessageID string    // Notification id, the SQS receipt handle for queue deliveries
}

// FileBatch groups the files delivered by a single queue message, the message is acknowledged as a whole.
type FileBatch struct {
	MessageID string
	Requests  []FileRequest
	Results   []ProcessingResult
}

func (b *FileBatch) Failed() bool {
	for _, result := range b.Results {
		if result.Failed() {
			return true
		}
	}

	return false
}
