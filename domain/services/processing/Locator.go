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
	"errors"
	"fmt"
	"path"
	"strings"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

// Sources tells where input files come from when they are not read from the bucket.
type Sources struct {
	FilePath    string // Single file on disk replacing every object
	UseTestData bool   // Read the object name from TestDataDir
	TestDataDir string
}

func (s Sources) LocalRun() bool {
	return s.FilePath != ""
}

// Locator resolves the input of the task and checks that bucket objects still exist.
type Locator struct {
	sources       Sources
	objectStorage out.ObjectStorageReader
	logger        logging.Logger
}

func NewLocator(sources Sources, objectStorage out.ObjectStorageReader, logger logging.Logger) *Locator {
	return &Locator{sources: sources, objectStorage: objectStorage, logger: logger}
}

func (l *Locator) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	switch {
	case l.sources.FilePath != "":
		task.LocalSource = l.sources.FilePath
		return entities.NextJob
	case l.sources.UseTestData:
		task.LocalSource = path.Join(l.sources.TestDataDir, strings.TrimPrefix(task.Filename, DevMarker))
		return entities.NextJob
	case task.DryRun:
		return entities.NextJob
	}

	if task.Request.Size == 0 {
		return l.lookupSize(ctx, task)
	}

	exists, err := l.objectStorage.Exists(ctx, task.Request.Bucket, task.Request.Key)
	if err != nil {
		l.logger.Errorw("Failed to check object", "error", err, "bucket", task.Request.Bucket, "key", task.Request.Key)
		task.Err = err

		return entities.Abort
	}

	if !exists {
		task.Err = fmt.Errorf("%w: file does not exist in bucket %s", out.ErrObjectNotFound, task.Request.Bucket)
		return entities.Abort
	}

	return entities.NextJob
}

// lookupSize fills the size of requests that do not carry one so the sandbox matches the object.
func (l *Locator) lookupSize(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	size, err := l.objectStorage.Size(ctx, task.Request.Bucket, task.Request.Key)
	if errors.Is(err, out.ErrObjectNotFound) {
		task.Err = fmt.Errorf("%w: file does not exist in bucket %s", out.ErrObjectNotFound, task.Request.Bucket)
		return entities.Abort
	}

	if err != nil {
		l.logger.Errorw("Failed to check object", "error", err, "bucket", task.Request.Bucket, "key", task.Request.Key)
		task.Err = err

		return entities.Abort
	}

	task.Request.Size = size

	return entities.NextJob
}
