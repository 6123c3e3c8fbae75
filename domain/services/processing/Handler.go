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
	"path/filepath"
	"reflect"
	"strings"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

type Job interface {
	Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus
}

// Handler runs the jobs of one environment. The sandbox created by the jobs is always released.
type Handler struct {
	environment         entities.Environment
	jobs                []Job
	localStorageFactory out.LocalStorageFactory
	outputDir           string
	logger              logging.Logger
}

func NewHandler(environment entities.Environment, jobs []Job, localStorageFactory out.LocalStorageFactory,
	outputDir string, logger logging.Logger) *Handler {
	return &Handler{
		environment:         environment,
		jobs:                jobs,
		localStorageFactory: localStorageFactory,
		outputDir:           outputDir,
		logger:              logger,
	}
}

func (h *Handler) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	defer h.release(task)

	status := entities.NextJob

	for _, job := range h.jobs {
		h.logger.Debugw("Running job", "job", reflect.TypeOf(job).Elem().Name(), "key", task.Request.Key)
		status = job.Process(ctx, task)

		if status != entities.NextJob {
			break
		}
	}

	return status
}

func (h *Handler) release(task *entities.ProcessingTask) {
	if task.StorageID == "" {
		return
	}

	if h.outputDir != "" {
		storage, err := h.localStorageFactory.GetStorageFromID(task.StorageID)
		if err == nil {
			err = storage.DumpToDisk(filepath.Join(h.outputDir, task.StorageID))
		}

		if err != nil {
			h.logger.Warnw("Failed to keep working files", "error", err, "storageID", task.StorageID)
		}
	}

	if err := h.localStorageFactory.DestroyStorage(task.StorageID); err != nil {
		h.logger.Warnw("Failed to destroy local storage", "error", err, "storageID", task.StorageID)
	}
}

func (h *Handler) Environment() entities.Environment {
	return h.environment
}

func (h *Handler) Name() string {
	var jobs []string
	for _, job := range h.jobs {
		jobs = append(jobs, reflect.TypeOf(job).Elem().Name())
	}

	return string(h.environment) + " processing handler with jobs: " + strings.Join(jobs, ", ")
}
