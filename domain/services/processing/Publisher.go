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
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

// Publisher stores the calibrated product. Local runs write it beside the input file.
type Publisher struct {
	sources             Sources
	objectStorage       out.ObjectStorageWriter
	localStorageFactory out.LocalStorageFactory
	disk                afero.Fs
	logger              logging.Logger
}

func NewPublisher(sources Sources, objectStorage out.ObjectStorageWriter, localStorageFactory out.LocalStorageFactory,
	disk afero.Fs, logger logging.Logger) *Publisher {
	return &Publisher{
		sources:             sources,
		objectStorage:       objectStorage,
		localStorageFactory: localStorageFactory,
		disk:                disk,
		logger:              logger,
	}
}

// ProductKey places products under {level}/{YYYY}/{MM}/.
func ProductKey(product entities.ScienceFile, filename string) string {
	t := product.Time.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s", product.Level, t.Year(), int(t.Month()), filename)
}

func (p *Publisher) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	if task.ProductPath == "" {
		return entities.NextJob
	}

	if task.DryRun {
		p.logger.Infow("Dry run, product not published", "product", task.ProductFilename)
		return entities.NextJob
	}

	storage, err := p.localStorageFactory.GetStorageFromID(task.StorageID)
	if err != nil {
		task.Err = err
		return entities.Abort
	}

	product, err := storage.Open(task.ProductPath)
	if err != nil {
		task.Err = fmt.Errorf("failed to open product: %w", err)
		return entities.Abort
	}
	defer product.Close()

	if p.sources.LocalRun() {
		return p.writeBesideSource(task, product)
	}

	if task.ProductBucket == "" {
		task.Err = fmt.Errorf("no destination bucket for instrument %s", task.Product.Instrument)
		return entities.Abort
	}

	key := ProductKey(task.Product, task.ProductFilename)
	if err := p.objectStorage.Put(ctx, task.ProductBucket, key, product); err != nil {
		p.logger.Errorw("Failed to upload product", "error", err, "bucket", task.ProductBucket, "key", key)
		task.Err = err

		return entities.Abort
	}

	task.ProductKey = key
	p.logger.Infow("Product published", "bucket", task.ProductBucket, "key", key)

	return entities.NextJob
}

func (p *Publisher) writeBesideSource(task *entities.ProcessingTask, product io.Reader) entities.JobStatus {
	target := filepath.Join(filepath.Dir(task.LocalSource), task.ProductFilename)

	file, err := p.disk.Create(target)
	if err != nil {
		task.Err = fmt.Errorf("failed to create %s: %w", target, err)
		return entities.Abort
	}
	defer file.Close()

	if _, err := io.Copy(file, product); err != nil {
		task.Err = fmt.Errorf("failed to write %s: %w", target, err)
		return entities.Abort
	}

	task.ProductBucket = ""
	task.ProductKey = target
	p.logger.Infow("Product written", "path", target)

	return entities.NextJob
}
