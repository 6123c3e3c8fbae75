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

package processing

import (
	"context"
	"fmt"
	"strings"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

// Archiver moves the original file from the unprocessed prefix to the processed one.
// The original is removed only after the copy is confirmed.
type Archiver struct {
	sources           Sources
	unprocessedPrefix string
	processedPrefix   string
	objectStorage     out.ObjectStorage
	logger            logging.Logger
}

func NewArchiver(sources Sources, unprocessedPrefix, processedPrefix string, objectStorage out.ObjectStorage, logger logging.Logger) *Archiver {
	return &Archiver{
		sources:           sources,
		unprocessedPrefix: unprocessedPrefix,
		processedPrefix:   processedPrefix,
		objectStorage:     objectStorage,
		logger:            logger,
	}
}

func (a *Archiver) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	if task.DryRun {
		a.logger.Warnw("Performing Dry Run - Files will not be copied/removed", "key", task.Request.Key)
		return entities.NextJob
	}

	if a.sources.LocalRun() {
		return entities.NextJob
	}

	bucket := task.Request.Bucket
	source := task.Request.Key
	target := a.processedPrefix + strings.TrimPrefix(source, a.unprocessedPrefix)

	if task.LocalSource != "" {
		exists, err := a.objectStorage.Exists(ctx, bucket, source)
		if err == nil && !exists {
			a.logger.Infow("Test data has no bucket object to archive", "bucket", bucket, "key", source)
			return entities.NextJob
		}
	}

	if err := a.objectStorage.Copy(ctx, bucket, source, bucket, target); err != nil {
		a.logger.Errorw("Failed to copy file", "error", err, "bucket", bucket, "source", source, "target", target)
		task.Err = err

		return entities.Abort
	}

	exists, err := a.objectStorage.Exists(ctx, bucket, target)
	if err != nil {
		task.Err = err
		return entities.Abort
	}

	if !exists {
		task.Err = fmt.Errorf("%w: copy of %s not found at %s", out.ErrObjectNotFound, source, target)
		return entities.Abort
	}

	if err := a.objectStorage.Delete(ctx, bucket, source); err != nil {
		a.logger.Errorw("Failed to remove original file", "error", err, "bucket", bucket, "key", source)
		task.Err = err

		return entities.Abort
	}

	task.ProcessedKey = target
	a.logger.Infow("File archived", "bucket", bucket, "source", source, "target", target)

	return entities.NextJob
}
