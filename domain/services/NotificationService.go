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

package services

import (
	"context"
	"fmt"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

// NotificationService tells the operators about failed files. Bursts are cut by the rate limiter.
type NotificationService struct {
	notifiers   []out.Notifier
	rateLimiter out.RateLimiter
	logger      logging.Logger
}

func NewNotificationService(notifiers []out.Notifier, rateLimiter out.RateLimiter, logger logging.Logger) *NotificationService {
	return &NotificationService{notifiers: notifiers, rateLimiter: rateLimiter, logger: logger}
}

func (n *NotificationService) NotifyFailure(ctx context.Context, result entities.ProcessingResult) {
	if !result.Failed() || len(n.notifiers) == 0 {
		return
	}

	if !n.rateLimiter.IsRequestAllowed(ctx) {
		n.logger.Warnw("Notification dropped by rate limit", "bucket", result.Bucket, "key", result.Key)
		return
	}

	message := FailureMessage(result)
	for _, notifier := range n.notifiers {
		if err := notifier.SendMessage(ctx, message); err != nil {
			n.logger.Errorw("Failed to send notification", "error", err, "bucket", result.Bucket, "key", result.Key)
		}
	}
}

func FailureMessage(result entities.ProcessingResult) string {
	return fmt.Sprintf(":rotating_light: [%s] failed to process s3://%s/%s (request %s): %s",
		result.Environment, result.Bucket, result.Key, result.RequestID, result.Error)
}
