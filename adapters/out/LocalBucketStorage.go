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
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/spf13/afero"

	"sdc-aws-processing/domain/ports/out"
)

// LocalBucketStorage maps every bucket to a directory below a root, used to run the pipeline without AWS.
type LocalBucketStorage struct {
	fs afero.Fs
}

func NewLocalBucketStorage(root afero.Fs, rootDir string) *LocalBucketStorage {
	return &LocalBucketStorage{fs: afero.NewBasePathFs(root, rootDir)}
}

func (l *LocalBucketStorage) Get(ctx context.Context, bucket, key string, writer io.WriterAt) error {
	file, err := l.fs.Open(objectPath(bucket, key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s/%s", out.ErrObjectNotFound, bucket, key)
	}

	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(io.NewOffsetWriter(writer, 0), file)

	return err
}

func (l *LocalBucketStorage) Exists(ctx context.Context, bucket, key string) (bool, error) {
	exists, err := afero.Exists(l.fs, objectPath(bucket, key))
	if err != nil || !exists {
		return false, err
	}

	dir, err := afero.IsDir(l.fs, objectPath(bucket, key))

	return !dir, err
}

func (l *LocalBucketStorage) Size(ctx context.Context, bucket, key string) (uint64, error) {
	info, err := l.fs.Stat(objectPath(bucket, key))

	switch {
	case errors.Is(err, fs.ErrNotExist), err == nil && info.IsDir():
		return 0, fmt.Errorf("%w: %s/%s", out.ErrObjectNotFound, bucket, key)
	case err != nil:
		return 0, err
	default:
		return uint64(info.Size()), nil
	}
}

func (l *LocalBucketStorage) Put(ctx context.Context, bucket, key string, reader io.Reader) error {
	name := objectPath(bucket, key)
	if err := l.fs.MkdirAll(path.Dir(name), dirPermission); err != nil {
		return err
	}

	file, err := l.fs.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)

	return err
}

func (l *LocalBucketStorage) Copy(ctx context.Context, sourceBucket, sourceKey, destinationBucket, destinationKey string) error {
	file, err := l.fs.Open(objectPath(sourceBucket, sourceKey))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s/%s", out.ErrObjectNotFound, sourceBucket, sourceKey)
	}

	if err != nil {
		return err
	}
	defer file.Close()

	return l.Put(ctx, destinationBucket, destinationKey, file)
}

// Delete is idempotent like S3.
func (l *LocalBucketStorage) Delete(ctx context.Context, bucket, key string) error {
	err := l.fs.Remove(objectPath(bucket, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func objectPath(bucket, key string) string {
	return path.Join("/", bucket, key)
}
