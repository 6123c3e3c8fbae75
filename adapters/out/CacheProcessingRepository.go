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
	"encoding/json"
	goerrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

const (
	resultTTL            = 7 * 24 * time.Hour
	processingKeyPattern = "processing:%s/%s"
)

type CacheProcessingRepository struct {
	cache  out.Cache
	logger logging.Logger
}

func NewCacheProcessingRepository(cache out.Cache, logger logging.Logger) *CacheProcessingRepository {
	return &CacheProcessingRepository{cache: cache, logger: logger}
}

func (c *CacheProcessingRepository) Save(result entities.ProcessingResult) error {
	jsonResult, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to encode processing result")
	}

	err = c.cache.Set(ProcessingKey(result.Bucket, result.Key), string(jsonResult), resultTTL)

	return errors.Wrapf(err, "failed to save processing result of %s/%s", result.Bucket, result.Key)
}

func (c *CacheProcessingRepository) Get(bucket, key string) (entities.ProcessingResult, error) {
	var result entities.ProcessingResult

	jsonResult, err := c.cache.Get(ProcessingKey(bucket, key))
	if err != nil {
		c.logger.Debugw("Failed to obtain value for key.", "error", err, "bucket", bucket, "key", key)
		return result, errors.Wrap(err, "failed to get processing result")
	}

	if err := json.Unmarshal([]byte(jsonResult), &result); err != nil {
		return result, errors.Wrap(err, "failed to decode processing result")
	}

	return result, nil
}

// List returns the last status of every file of the bucket that is still cached, ordered by key.
func (c *CacheProcessingRepository) List(bucket string) ([]entities.ProcessingResult, error) {
	keys, err := c.cache.List(ProcessingKey(bucket, "*"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list processing results of %s", bucket)
	}

	sort.Strings(keys)
	results := make([]entities.ProcessingResult, 0, len(keys))

	for _, cacheKey := range keys {
		jsonResult, err := c.cache.Get(cacheKey)
		if goerrors.Is(err, out.ErrKeyNotFound) {
			// Expired between the listing and the read.
			continue
		}

		if err != nil {
			return nil, errors.Wrap(err, "failed to get processing result")
		}

		var result entities.ProcessingResult
		if err := json.Unmarshal([]byte(jsonResult), &result); err != nil {
			c.logger.Warnw("Skipping undecodable processing result", "error", err, "cacheKey", cacheKey)
			continue
		}

		results = append(results, result)
	}

	return results, nil
}

func ProcessingKey(bucket, key string) string {
	return fmt.Sprintf(processingKeyPattern, bucket, key)
}
