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

package awsutils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	// Downloads go to sandboxes that may live in memory, parts are written in order.
	downloadConcurrency = 1
	uploadPartSize      = 16 * 1024 * 1024
	uploadConcurrency   = 4
)

var ErrNotFound = errors.New("s3 object not found")

type S3 struct {
	client     *s3.S3
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

func NewS3(awsSession *session.Session, awsConfig *aws.Config) *S3 {
	if awsConfig == nil {
		awsConfig = aws.NewConfig()
	}

	client := s3.New(awsSession, awsConfig)

	return &S3{
		client: client,
		downloader: s3manager.NewDownloaderWithClient(client, func(d *s3manager.Downloader) {
			d.Concurrency = downloadConcurrency
		}),
		uploader: s3manager.NewUploaderWithClient(client, func(u *s3manager.Uploader) {
			u.PartSize = uploadPartSize
			u.Concurrency = uploadConcurrency
		}),
	}
}

func (s *S3) Download(ctx context.Context, bucket, key string, target io.WriterAt) error {
	_, err := s.downloader.DownloadWithContext(ctx, target, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return translateError(err)
}

func (s *S3) Upload(ctx context.Context, bucket, key string, body io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})

	return err
}

func (s *S3) Head(ctx context.Context, bucket, key string) (*s3.HeadObjectOutput, error) {
	output, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return output, translateError(err)
}

// Copy runs server side, single request copies are limited to 5GB which is far above any instrument file.
func (s *S3) Copy(ctx context.Context, sourceBucket, sourceKey, bucket, key string) error {
	source := url.URL{Path: sourceBucket + "/" + sourceKey}

	_, err := s.client.CopyObjectWithContext(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		Key:        aws.String(key),
		CopySource: aws.String(source.EscapedPath()),
	})

	return translateError(err)
}

func (s *S3) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return translateError(err)
}

// translateError folds the many ways S3 reports a missing object into ErrNotFound.
func translateError(err error) error {
	var failure awserr.RequestFailure
	if errors.As(err, &failure) && failure.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return ErrNotFound
		}
	}

	return err
}
