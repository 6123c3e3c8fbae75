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
	"path"
	"strings"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/fileutils"
	"sdc-aws-processing/logging"
)

// DevMarker flags files uploaded by the development pipeline.
const DevMarker = "dev_"

// Classifier extracts the science metadata and the destination bucket of the file.
// Files that don't follow the naming convention are still archived, they only miss the product.
type Classifier struct {
	unprocessedPrefix string
	instrumentBuckets map[string]string
	bucketPrefix      string
	logger            logging.Logger
}

func NewClassifier(unprocessedPrefix string, instrumentBuckets map[string]string, bucketPrefix string, logger logging.Logger) *Classifier {
	return &Classifier{
		unprocessedPrefix: unprocessedPrefix,
		instrumentBuckets: instrumentBuckets,
		bucketPrefix:      bucketPrefix,
		logger:            logger,
	}
}

func (c *Classifier) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	task.SourceKey = strings.TrimPrefix(task.Request.Key, c.unprocessedPrefix)
	task.Filename = path.Base(task.SourceKey)

	scienceName := fileutils.TrimCompressedSuffix(strings.TrimPrefix(task.Filename, DevMarker))

	science, err := fileutils.ParseScienceFilename(scienceName)
	if err != nil {
		c.logger.Warnw("File does not follow the science naming convention", "error", err, "key", task.Request.Key)
		task.CalibrationLog = "not calibrated: " + err.Error()

		return entities.NextJob
	}

	task.Science = science

	bucket, ok := c.instrumentBuckets[string(science.Instrument)]
	if !ok {
		c.logger.Warnw("No bucket configured for instrument", "instrument", science.Instrument, "key", task.Request.Key)
		return entities.NextJob
	}

	task.ProductBucket = c.bucketPrefix + bucket

	c.logger.Debugw("File classified", "instrument", science.Instrument, "level", science.Level,
		"time", science.Time, "productBucket", task.ProductBucket)

	return entities.NextJob
}
