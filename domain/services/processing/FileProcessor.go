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
	"github.com/spf13/afero"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/domain/services/calibration"
	"sdc-aws-processing/logging"
)

type Config struct {
	Environment       entities.Environment
	Sources           Sources
	UnprocessedPrefix string
	ProcessedPrefix   string
	InstrumentBuckets map[string]string
	BucketPrefix      string // Added to every instrument bucket, the development buckets are dev-*
	OutputDir         string
}

type Dependencies struct {
	ObjectStorage       out.ObjectStorage
	LocalStorageFactory out.LocalStorageFactory
	Downloader          services.Downloader
	DecompressService   services.DecompressService
	Registry            *calibration.Registry
	Disk                afero.Fs
}

// NewFileProcessor builds the handler running every processing job in order.
func NewFileProcessor(config Config, deps Dependencies, logger logging.Logger) *Handler {
	jobs := []Job{
		NewPrefixFilter(config.UnprocessedPrefix),
		NewClassifier(config.UnprocessedPrefix, config.InstrumentBuckets, config.BucketPrefix, logger),
		NewLocator(config.Sources, deps.ObjectStorage, logger),
		NewFetcher(deps.LocalStorageFactory, deps.Downloader, logger),
		NewDecompressor(deps.DecompressService, deps.LocalStorageFactory),
		NewCalibrate(deps.Registry, deps.LocalStorageFactory, logger),
		NewPublisher(config.Sources, deps.ObjectStorage, deps.LocalStorageFactory, deps.Disk, logger),
		NewArchiver(config.Sources, config.UnprocessedPrefix, config.ProcessedPrefix, deps.ObjectStorage, logger),
	}

	return NewHandler(config.Environment, jobs, deps.LocalStorageFactory, config.OutputDir, logger)
}
