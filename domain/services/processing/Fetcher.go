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

	"sdc-aws-processing/common"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/fileutils"
	"sdc-aws-processing/logging"
)

// Fetcher creates the task sandbox and copies the input into it.
type Fetcher struct {
	localStorageFactory out.LocalStorageFactory
	downloader          services.Downloader
	logger              logging.Logger
}

func NewFetcher(localStorageFactory out.LocalStorageFactory, downloader services.Downloader, logger logging.Logger) *Fetcher {
	return &Fetcher{localStorageFactory: localStorageFactory, downloader: downloader, logger: logger}
}

func (f *Fetcher) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	storage, err := f.localStorageFactory.GetLocalStorage(task.Request.Size, fileutils.IsCompressed(task.Filename))
	if err != nil {
		f.logger.Errorw("Failed to create local storage", "error", err, "key", task.Request.Key)
		task.Err = err

		return entities.Abort
	}

	task.StorageID = storage.GetID()

	if task.LocalSource != "" {
		err = f.downloader.LoadLocalFile(task, task.LocalSource)
	} else {
		err = f.downloader.DownloadSingleFile(ctx, task)
	}

	if err != nil {
		if task.DryRun && errors.Is(err, out.ErrObjectNotFound) {
			task.SkipReason = "dry run on a missing object"
			return entities.Skip
		}

		task.Err = err

		return entities.Abort
	}

	f.logger.Debugw("Fetched input", "key", task.Request.Key, "size", common.HumanReadableSize(task.Request.Size), "storage", task.StorageID)

	return entities.NextJob
}
