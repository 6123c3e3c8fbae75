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
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/uber-go/tally/v4"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/metrics"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_dispatcher.go -package=mocks -source=Dispatcher.go

const devMarker = "dev_"

type FileDispatcher interface {
	Dispatch(ctx context.Context, requests []entities.FileRequest) []entities.ProcessingResult
	Status(bucket, key string) (entities.ProcessingResult, error)
	Statuses(bucket string) ([]entities.ProcessingResult, error)
	History(ctx context.Context, bucket, key string, limit int) ([]entities.ProcessingResult, error)
}

// Processor runs the processing jobs of one environment.
type Processor interface {
	Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus
	Name() string
}

type FailureNotifier interface {
	NotifyFailure(ctx context.Context, result entities.ProcessingResult)
}

type DispatcherConfig struct {
	Environment  entities.Environment
	DryRun       bool
	LockDuration time.Duration
}

// Dispatcher routes each file to the production or the development processor.
type Dispatcher struct {
	config       DispatcherConfig
	processors   map[entities.Environment]Processor
	cache        out.Cache
	repository   out.ProcessingRepository
	journal      out.Journal
	notifier     FailureNotifier
	metricsScope tally.Scope
	logger       logging.Logger
}

func NewDispatcher(config DispatcherConfig, production, development Processor, cache out.Cache, repository out.ProcessingRepository,
	journal out.Journal, notifier FailureNotifier, metricsScope tally.Scope, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		config: config,
		processors: map[entities.Environment]Processor{
			entities.Production:  production,
			entities.Development: development,
		},
		cache:        cache,
		repository:   repository,
		journal:      journal,
		notifier:     notifier,
		metricsScope: metricsScope,
		logger:       logger,
	}
}

// EnvironmentFor returns the environment processing the key, files flagged with dev_ never reach production.
func (d *Dispatcher) EnvironmentFor(key string) entities.Environment {
	if strings.HasPrefix(path.Base(key), devMarker) {
		return entities.Development
	}

	return d.config.Environment
}

// Dispatch processes the files one by one in the order they were notified.
func (d *Dispatcher) Dispatch(ctx context.Context, requests []entities.FileRequest) []entities.ProcessingResult {
	results := make([]entities.ProcessingResult, 0, len(requests))

	for _, request := range requests {
		results = append(results, d.dispatchOne(ctx, request))
	}

	return results
}

func (d *Dispatcher) dispatchOne(ctx context.Context, request entities.FileRequest) entities.ProcessingResult {
	start := time.Now()
	environment := d.EnvironmentFor(request.Key)
	task := entities.NewProcessingTask(request, environment, d.config.DryRun)
	logger := d.logger.With("requestId", request.RequestID, "bucket", request.Bucket, "key", request.Key, "environment", environment)

	lockKey := LockKey(request.Bucket, request.Key)

	err := d.cache.Lock(lockKey, d.config.LockDuration)
	switch {
	case errors.Is(err, out.ErrLockNotObtained):
		task.SkipReason = "file is already being processed"
		result := task.Result(entities.Skip, start)
		logger.Infow("Duplicate notification ignored")
		d.count(result)

		return result
	case err != nil:
		logger.Warnw("Failed to lock file, processing without lock", "error", err)
	default:
		defer func() {
			if err := d.cache.Unlock(lockKey); err != nil {
				logger.Warnw("Failed to release lock", "error", err)
			}
		}()
	}

	processor := d.processors[environment]
	logger.Infow("Processing file", "processor", processor.Name())

	status := processor.Process(ctx, task)
	result := task.Result(status, start)

	d.record(ctx, result)

	switch result.Status {
	case entities.Failed:
		logger.Errorw("Error Processing File", "error", result.Error, "duration", result.Duration)
	case entities.Skipped:
		logger.Infow("File skipped", "reason", result.Message)
	default:
		logger.Infow("File Processed Successfully", "instrument", result.Instrument, "processedKey", result.ProcessedKey,
			"productBucket", result.ProductBucket, "productKey", result.ProductKey, "duration", result.Duration)
	}

	return result
}

func (d *Dispatcher) record(ctx context.Context, result entities.ProcessingResult) {
	if err := d.repository.Save(result); err != nil {
		d.logger.Warnw("Failed to save processing status", "error", err, "bucket", result.Bucket, "key", result.Key)
	}

	if err := d.journal.Append(ctx, result); err != nil {
		d.logger.Warnw("Failed to append to processing journal", "error", err, "bucket", result.Bucket, "key", result.Key)
	}

	d.notifier.NotifyFailure(ctx, result)
	d.count(result)
}

func (d *Dispatcher) count(result entities.ProcessingResult) {
	scope := d.metricsScope.Tagged(map[string]string{
		"environment": strings.ToLower(string(result.Environment)),
		"instrument":  string(result.Instrument),
	})

	switch result.Status {
	case entities.Failed:
		scope.Counter(metrics.FilesFailed).Inc(1)
	case entities.Skipped:
		scope.Counter(metrics.FilesSkipped).Inc(1)
	default:
		scope.Counter(metrics.FilesProcessed).Inc(1)
	}

	scope.Timer(metrics.ProcessingTime).Record(result.Duration)
}

func (d *Dispatcher) Status(bucket, key string) (entities.ProcessingResult, error) {
	return d.repository.Get(bucket, key)
}

func (d *Dispatcher) Statuses(bucket string) ([]entities.ProcessingResult, error) {
	return d.repository.List(bucket)
}

func (d *Dispatcher) History(ctx context.Context, bucket, key string, limit int) ([]entities.ProcessingResult, error) {
	return d.journal.History(ctx, bucket, key, limit)
}

func LockKey(bucket, key string) string {
	return fmt.Sprintf("lock:%s/%s", bucket, key)
}
