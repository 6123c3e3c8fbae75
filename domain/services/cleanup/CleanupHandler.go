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
	"reflect"
	"strings"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services/stages"
	"sdc-aws-processing/logging"
)

// Job finishes a queue message after its files went through the dispatcher.
type Job interface {
	Clean(ctx context.Context, request *stages.Cleanup[entities.FileBatch])
}

// Handler is the last stage of the queue pipeline, it never produces output.
type Handler struct {
	jobs   []Job
	logger logging.Logger
}

func NewCleanupHandler(cleanupJobs []Job, logger logging.Logger) *Handler {
	return &Handler{jobs: cleanupJobs, logger: logger}
}

func (c *Handler) Handle(ctx context.Context, request *stages.Cleanup[entities.FileBatch], _ *entities.OutputWriter[entities.Empty]) error {
	if batch := request.Request; batch != nil {
		processed, skipped, failed := tally(batch.Results)
		c.logger.Infow("Message finished", "message_id", batch.MessageID, "files", len(batch.Requests),
			"processed", processed, "skipped", skipped, "failed", failed)
	}

	for _, job := range c.jobs {
		job.Clean(ctx, request)
	}

	return nil
}

func (c *Handler) Name() string {
	names := make([]string, 0, len(c.jobs))
	for _, job := range c.jobs {
		names = append(names, reflect.TypeOf(job).Elem().Name())
	}

	return "Cleanup Handler with jobs: " + strings.Join(names, ", ")
}

func tally(results []entities.ProcessingResult) (processed, skipped, failed int) {
	for _, result := range results {
		switch result.Status {
		case entities.Processed:
			processed++
		case entities.Skipped:
			skipped++
		case entities.Failed:
			failed++
		}
	}

	return processed, skipped, failed
}
