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
	"io"
	"path"

	"github.com/spf13/afero"

	"sdc-aws-processing/domain/entities"
	ports "sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_download_service.go -package=mocks -source=DownloadService.go

type Downloader interface {
	DownloadSingleFile(ctx context.Context, task *entities.ProcessingTask) error
	LoadLocalFile(task *entities.ProcessingTask, source string) error
}

type DownloadService struct {
	localStorageFactory  ports.LocalStorageFactory
	objectStorageFactory ports.ObjectStorageFactory
	storageType          string
	disk                 afero.Fs
	logger               logging.Logger
}

func NewDownloadService(localStorageFactory ports.LocalStorageFactory, objectStorageFactory ports.ObjectStorageFactory,
	storageType string, disk afero.Fs, logger logging.Logger) *DownloadService {
	return &DownloadService{
		localStorageFactory:  localStorageFactory,
		objectStorageFactory: objectStorageFactory,
		storageType:          storageType,
		disk:                 disk,
		logger:               logger,
	}
}

// DownloadSingleFile copies the bucket object into the task sandbox.
func (d *DownloadService) DownloadSingleFile(ctx context.Context, task *entities.ProcessingTask) error {
	localStorage, err := d.localStorageFactory.GetStorageFromID(task.StorageID)
	if err != nil {
		d.logger.Errorw("Failed to get local storage", "error", err, "bucket", task.Request.Bucket, "key", task.Request.Key)
		return err
	}

	localFile, err := localStorage.Create(task.Filename)
	if err != nil {
		d.logger.Errorw("Failed to create local file", "error", err)
		return err
	}
	defer localFile.Close()

	objectStorage, err := d.objectStorageFactory.GetObjectStorage(d.storageType)
	if err != nil {
		d.logger.Errorw("Failed to get object storage", "error", err)
		return err
	}

	err = objectStorage.Get(ctx, task.Request.Bucket, task.Request.Key, localFile)
	if err != nil {
		d.logger.Errorw("Failed to request key from bucket", "error", err, "bucket", task.Request.Bucket, "key", task.Request.Key)
		return err
	}

	task.LocalPath = task.Filename

	return nil
}

// LoadLocalFile copies a file from disk into the task sandbox, used by local runs and bundled test data.
func (d *DownloadService) LoadLocalFile(task *entities.ProcessingTask, source string) error {
	localStorage, err := d.localStorageFactory.GetStorageFromID(task.StorageID)
	if err != nil {
		return err
	}

	src, err := d.disk.Open(source)
	if err != nil {
		d.logger.Errorw("Failed to open local file", "error", err, "path", source)
		return fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer src.Close()

	filename := task.Filename
	if filename == "" {
		filename = path.Base(source)
	}

	localFile, err := localStorage.Create(filename)
	if err != nil {
		return err
	}
	defer localFile.Close()

	if _, err := io.Copy(localFile, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}

	task.LocalPath = filename

	return nil
}
