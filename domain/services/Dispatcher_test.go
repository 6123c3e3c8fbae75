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

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"

	adapters "sdc-aws-processing/adapters/out"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/metrics"
	"sdc-aws-processing/mocks"
)

type dispatcherMocks struct {
	production  *mocks.MockProcessor
	development *mocks.MockProcessor
	cache       *mocks.MockCache
	repository  *mocks.MockProcessingRepository
	journal     *mocks.MockJournal
	notifier    *mocks.MockFailureNotifier
	scope       tally.TestScope
}

func newDispatcherMocks(mockCtrl *gomock.Controller) dispatcherMocks {
	m := dispatcherMocks{
		production:  mocks.NewMockProcessor(mockCtrl),
		development: mocks.NewMockProcessor(mockCtrl),
		cache:       mocks.NewMockCache(mockCtrl),
		repository:  mocks.NewMockProcessingRepository(mockCtrl),
		journal:     mocks.NewMockJournal(mockCtrl),
		notifier:    mocks.NewMockFailureNotifier(mockCtrl),
		scope:       tally.NewTestScope("", nil),
	}

	m.production.EXPECT().Name().Return("production").AnyTimes()
	m.development.EXPECT().Name().Return("development").AnyTimes()

	return m
}

func (m dispatcherMocks) dispatcher(environment entities.Environment) *Dispatcher {
	return NewDispatcher(DispatcherConfig{Environment: environment, LockDuration: time.Minute}, m.production, m.development,
		m.cache, m.repository, m.journal, m.notifier, m.scope, logging.NewDiscardLog())
}

func (m dispatcherMocks) expectRecord(times int) {
	m.repository.EXPECT().Save(gomock.Any()).Return(nil).Times(times)
	m.journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(times)
	m.notifier.EXPECT().NotifyFailure(gomock.Any(), gomock.Any()).Times(times)
}

func (m dispatcherMocks) counter(name string) int64 {
	var total int64
	for _, counter := range m.scope.Snapshot().Counters() {
		if counter.Name() == name {
			total += counter.Value()
		}
	}

	return total
}

func request(key string) entities.FileRequest {
	return entities.FileRequest{RequestID: "request", Source: entities.SourceS3, Bucket: "hermes-eea", Key: key}
}

func TestEnvironmentFor(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)

	production := m.dispatcher(entities.Production)
	assert.Equal(t, entities.Production, production.EnvironmentFor("unprocessed/hermes_EEA_l0_2023042-000000_v0.bin"))
	assert.Equal(t, entities.Development, production.EnvironmentFor("unprocessed/dev_hermes_EEA_l0_2023042-000000_v0.bin"))
	assert.Equal(t, entities.Production, production.EnvironmentFor("unprocessed/my_dev_file.bin"))

	development := m.dispatcher(entities.Development)
	assert.Equal(t, entities.Development, development.EnvironmentFor("unprocessed/hermes_EEA_l0_2023042-000000_v0.bin"))
}

func TestDispatchRoutesByEnvironment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)
	m.cache.EXPECT().Lock(gomock.Any(), time.Minute).Return(nil).Times(2)
	m.cache.EXPECT().Unlock(gomock.Any()).Return(nil).Times(2)
	m.expectRecord(2)

	gomock.InOrder(
		m.production.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entities.ProcessingTask) entities.JobStatus {
				assert.Equal(t, entities.Production, task.Environment)
				task.ProcessedKey = "processed/hermes_EEA_l0_2023042-000000_v0.bin"
				return entities.NextJob
			}),
		m.development.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entities.ProcessingTask) entities.JobStatus {
				assert.Equal(t, entities.Development, task.Environment)
				return entities.NextJob
			}),
	)

	results := m.dispatcher(entities.Production).Dispatch(context.Background(), []entities.FileRequest{
		request("unprocessed/hermes_EEA_l0_2023042-000000_v0.bin"),
		request("unprocessed/dev_hermes_EEA_l0_2023042-000000_v0.bin"),
	})

	require.Len(t, results, 2)
	assert.Equal(t, entities.Processed, results[0].Status)
	assert.Equal(t, "processed/hermes_EEA_l0_2023042-000000_v0.bin", results[0].ProcessedKey)
	assert.Equal(t, entities.Development, results[1].Environment)
	assert.Equal(t, int64(2), m.counter(metrics.FilesProcessed))
}

func TestDispatchFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)
	m.cache.EXPECT().Lock(LockKey("hermes-eea", "unprocessed/file.bin"), time.Minute).Return(nil)
	m.cache.EXPECT().Unlock(LockKey("hermes-eea", "unprocessed/file.bin")).Return(nil)
	m.production.EXPECT().Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *entities.ProcessingTask) entities.JobStatus {
			task.Err = out.ErrObjectNotFound
			return entities.Abort
		})

	m.repository.EXPECT().Save(gomock.Any()).Return(errors.New("cache down"))
	m.journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFailure(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, result entities.ProcessingResult) {
			assert.Equal(t, entities.Failed, result.Status)
		})

	results := m.dispatcher(entities.Production).Dispatch(context.Background(), []entities.FileRequest{request("unprocessed/file.bin")})

	require.Len(t, results, 1)
	assert.True(t, results[0].Failed())
	assert.Equal(t, out.ErrObjectNotFound.Error(), results[0].Error)
	assert.Equal(t, int64(1), m.counter(metrics.FilesFailed))
}

func TestDispatchDuplicateDelivery(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)
	m.cache.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(out.ErrLockNotObtained)

	results := m.dispatcher(entities.Production).Dispatch(context.Background(), []entities.FileRequest{request("unprocessed/file.bin")})

	require.Len(t, results, 1)
	assert.Equal(t, entities.Skipped, results[0].Status)
	assert.Equal(t, int64(1), m.counter(metrics.FilesSkipped))
}

func TestDispatchWithoutLock(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)
	m.cache.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	m.production.EXPECT().Process(gomock.Any(), gomock.Any()).Return(entities.NextJob)
	m.expectRecord(1)

	results := m.dispatcher(entities.Production).Dispatch(context.Background(), []entities.FileRequest{request("unprocessed/file.bin")})

	require.Len(t, results, 1)
	assert.Equal(t, entities.Processed, results[0].Status)
}

func TestDispatcherWithMemoryAdapters(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newDispatcherMocks(mockCtrl)
	m.production.EXPECT().Process(gomock.Any(), gomock.Any()).Return(entities.NextJob)
	m.notifier.EXPECT().NotifyFailure(gomock.Any(), gomock.Any())

	cache := adapters.NewMemoryCache()
	repository := adapters.NewCacheProcessingRepository(cache, logging.NewDiscardLog())
	dispatcher := NewDispatcher(DispatcherConfig{Environment: entities.Production, DryRun: true, LockDuration: time.Minute},
		m.production, m.development, cache, repository, adapters.NoopJournal{}, m.notifier, tally.NoopScope, logging.NewDiscardLog())

	dispatcher.Dispatch(context.Background(), []entities.FileRequest{request("unprocessed/file.bin")})

	status, err := dispatcher.Status("hermes-eea", "unprocessed/file.bin")
	require.NoError(t, err)
	assert.Equal(t, entities.Processed, status.Status)
	assert.True(t, status.DryRun)

	// The lock is released once the file is done
	assert.NoError(t, cache.Lock(LockKey("hermes-eea", "unprocessed/file.bin"), time.Minute))

	history, err := dispatcher.History(context.Background(), "hermes-eea", "unprocessed/file.bin", 10)
	assert.NoError(t, err)
	assert.Empty(t, history)

	statuses, err := dispatcher.Statuses("hermes-eea")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "unprocessed/file.bin", statuses[0].Key)
}
