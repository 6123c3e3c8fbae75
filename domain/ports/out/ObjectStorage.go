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
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_object_storage.go -package=mocks -source=ObjectStorage.go
type ObjectStorage interface {
	ObjectStorageReader
	ObjectStorageWriter
}

// Interface to be implemented by AWS S3, a local directory etc
type ObjectStorageReader interface {
	Get(ctx context.Context, bucket, key string, writer io.WriterAt) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
	// Size fails with ErrObjectNotFound when the object is missing.
	Size(ctx context.Context, bucket, key string) (uint64, error)
}

type ObjectStorageWriter interface {
	Put(ctx context.Context, bucket, key string, reader io.Reader) error
	Copy(ctx context.Context, sourceBucket, sourceKey, destinationBucket, destinationKey string) error
	Delete(ctx context.Context, bucket, key string) error
}

type ObjectStorageFactory interface {
	GetObjectStorage(storageType string) (ObjectStorage, error)
}
