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

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
)

const megabyteBuffer = 1024 * 1024

type Decompressor struct {
	localStorageFactory out.LocalStorageFactory
	decompressService   services.DecompressService
}

func NewDecompressor(decompressService services.DecompressService, localStorageFactory out.LocalStorageFactory) *Decompressor {
	return &Decompressor{decompressService: decompressService, localStorageFactory: localStorageFactory}
}

func (d *Decompressor) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	storage, err := d.localStorageFactory.GetStorageFromID(task.StorageID)
	if err != nil {
		task.Err = err
		return entities.Abort
	}

	expanded, err := d.decompressService.Extract(storage, task.LocalPath, make([]byte, megabyteBuffer))
	if err != nil {
		task.Err = err
		return entities.Abort
	}

	task.LocalPath = expanded

	return entities.NextJob
}
