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

	"sdc-aws-processing/domain/entities"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_processing_repository.go -package=mocks -source=ProcessingRepository.go
type ProcessingRepository interface {
	Save(result entities.ProcessingResult) error
	Get(bucket, key string) (entities.ProcessingResult, error)
	List(bucket string) ([]entities.ProcessingResult, error)
}

// Journal keeps every processing attempt, results are never updated.
type Journal interface {
	Append(ctx context.Context, result entities.ProcessingResult) error
	History(ctx context.Context, bucket, key string, limit int) ([]entities.ProcessingResult, error)
}
