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
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"sdc-aws-processing/common"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/mocks"
)

func TestSaveProcessingResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	result := sampleResult()
	jsonResult, _ := json.Marshal(result)

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().Set("processing:hermes-eea/unprocessed/hermes_EEA_l0_2023042-000000_v0.bin", string(jsonResult), resultTTL).Return(nil).Times(1)
	repo := NewCacheProcessingRepository(mockCache, logging.NewDiscardLog())

	err := repo.Save(result)
	assert.NoError(t, err)
}

func TestGetProcessingResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	expected := sampleResult()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().Get(ProcessingKey(expected.Bucket, expected.Key)).Return(common.GetObjectJSON(t, expected), nil).Times(1)

	repo := NewCacheProcessingRepository(mockCache, logging.NewDiscardLog())
	result, err := repo.Get(expected.Bucket, expected.Key)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetMissingProcessingResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().Get(gomock.Any()).Return("", out.ErrKeyNotFound).Times(1)

	repo := NewCacheProcessingRepository(mockCache, logging.NewDiscardLog())
	_, err := repo.Get("bucket", "key")

	assert.True(t, errors.Is(err, out.ErrKeyNotFound))
}

func TestProcessingRepositoryWithMemoryCache(t *testing.T) {
	repo := NewCacheProcessingRepository(NewMemoryCache(), logging.NewDiscardLog())
	expected := sampleResult()

	assert.NoError(t, repo.Save(expected))

	result, err := repo.Get(expected.Bucket, expected.Key)
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestListProcessingResultsOfBucket(t *testing.T) {
	repo := NewCacheProcessingRepository(NewMemoryCache(), logging.NewDiscardLog())

	first := sampleResult()
	second := sampleResult()
	second.Key = "unprocessed/dev_hermes_EEA_l0_2023042-000000_v0.bin"
	second.Status = entities.Failed
	other := sampleResult()
	other.Bucket = "hermes-merit"

	for _, result := range []entities.ProcessingResult{first, second, other} {
		assert.NoError(t, repo.Save(result))
	}

	results, err := repo.List("hermes-eea")
	assert.NoError(t, err)
	assert.Equal(t, []entities.ProcessingResult{second, first}, results)

	results, err = repo.List("hermes-spani")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestListSkipsExpiredResults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	expected := sampleResult()
	mockCache := mocks.NewMockCache(mockCtrl)
	mockCache.EXPECT().List("processing:hermes-eea/*").Return([]string{"processing:hermes-eea/gone", ProcessingKey(expected.Bucket, expected.Key)}, nil)
	mockCache.EXPECT().Get("processing:hermes-eea/gone").Return("", out.ErrKeyNotFound)
	mockCache.EXPECT().Get(ProcessingKey(expected.Bucket, expected.Key)).Return(common.GetObjectJSON(t, expected), nil)

	results, err := NewCacheProcessingRepository(mockCache, logging.NewDiscardLog()).List("hermes-eea")
	assert.NoError(t, err)
	assert.Equal(t, []entities.ProcessingResult{expected}, results)
}
