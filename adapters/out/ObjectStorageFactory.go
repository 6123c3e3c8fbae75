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
	"fmt"

	"sdc-aws-processing/domain/ports/out"
)

type ObjectStorageFactory struct {
	storages map[string]out.ObjectStorage
}

func NewObjectStorageFactory() *ObjectStorageFactory {
	return &ObjectStorageFactory{storages: make(map[string]out.ObjectStorage)}
}

func (r *ObjectStorageFactory) Register(storageType string, storage out.ObjectStorage) *ObjectStorageFactory {
	r.storages[storageType] = storage
	return r
}

func (r *ObjectStorageFactory) GetObjectStorage(storageType string) (out.ObjectStorage, error) {
	if storage, ok := r.storages[storageType]; ok {
		return storage, nil
	}

	return nil, fmt.Errorf("there is no such storage type %s", storageType)
}
