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

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/pkg/awsutils"
)

// S3Storage is the object storage of the instrument buckets.
type S3Storage struct {
	svc *awsutils.S3
}

func NewS3Storage(awsSession *session.Session, awsConfig *aws.Config) *S3Storage {
	return &S3Storage{svc: awsutils.NewS3(awsSession, awsConfig)}
}

func (s *S3Storage) Get(ctx context.Context, bucket, key string, writer io.WriterAt) error {
	return notFound(s.svc.Download(ctx, bucket, key, writer), bucket, key)
}

func (s *S3Storage) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.svc.Head(ctx, bucket, key)

	switch {
	case errors.Is(err, awsutils.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}

func (s *S3Storage) Size(ctx context.Context, bucket, key string) (uint64, error) {
	head, err := s.svc.Head(ctx, bucket, key)
	if err != nil {
		return 0, notFound(err, bucket, key)
	}

	return uint64(aws.Int64Value(head.ContentLength)), nil
}

func (s *S3Storage) Put(ctx context.Context, bucket, key string, reader io.Reader) error {
	return s.svc.Upload(ctx, bucket, key, reader)
}

func (s *S3Storage) Copy(ctx context.Context, sourceBucket, sourceKey, destinationBucket, destinationKey string) error {
	return notFound(s.svc.Copy(ctx, sourceBucket, sourceKey, destinationBucket, destinationKey), sourceBucket, sourceKey)
}

func (s *S3Storage) Delete(ctx context.Context, bucket, key string) error {
	return notFound(s.svc.Delete(ctx, bucket, key), bucket, key)
}

func notFound(err error, bucket, key string) error {
	if errors.Is(err, awsutils.ErrNotFound) {
		return fmt.Errorf("%w: s3://%s/%s", out.ErrObjectNotFound, bucket, key)
	}

	return err
}
