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
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/domain/entities"
)

func sampleResult() entities.ProcessingResult {
	return entities.ProcessingResult{
		RequestID:     "request",
		Bucket:        "hermes-eea",
		Key:           "unprocessed/hermes_EEA_l0_2023042-000000_v0.bin",
		Instrument:    entities.EEA,
		Environment:   entities.Production,
		Status:        entities.Processed,
		ProcessedKey:  "processed/hermes_EEA_l0_2023042-000000_v0.bin",
		ProductBucket: "hermes-eea",
		ProductKey:    "l1/2023/02/hermes_eea_l1_20230211T000000_v1.0.0.cdf",
		StartTime:     time.Date(2023, time.February, 11, 0, 5, 14, 0, time.UTC),
		Duration:      1500 * time.Millisecond,
	}
}

func TestJournalMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS processing_journal").WillReturnResult(sqlmock.NewResult(0, 0))

	journal := NewPostgresJournal(db)
	assert.NoError(t, journal.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	result := sampleResult()

	mock.ExpectExec("INSERT INTO processing_journal").
		WithArgs(result.RequestID, result.Bucket, result.Key, "eea", "PRODUCTION", "processed", result.ProcessedKey,
			result.ProductBucket, result.ProductKey, false, "", "", sqlmock.AnyArg(), int64(1500)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	journal := NewPostgresJournal(db)
	assert.NoError(t, journal.Append(context.Background(), result))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalAppendFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO processing_journal").WillReturnError(sql.ErrConnDone)

	journal := NewPostgresJournal(db)
	err = journal.Append(context.Background(), sampleResult())
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expected := sampleResult()
	columns := []string{"request_id", "bucket", "object_key", "instrument", "environment", "status", "processed_key",
		"product_bucket", "product_key", "dry_run", "message", "error", "started_at", "duration_ms"}

	rows := sqlmock.NewRows(columns).AddRow(expected.RequestID, expected.Bucket, expected.Key, "eea", "PRODUCTION", "processed",
		expected.ProcessedKey, expected.ProductBucket, expected.ProductKey, false, "", "", expected.StartTime, int64(1500))

	mock.ExpectQuery("SELECT (.+) FROM processing_journal").WithArgs(expected.Bucket, expected.Key, defaultHistory).WillReturnRows(rows)

	journal := NewPostgresJournal(db)
	history, err := journal.History(context.Background(), expected.Bucket, expected.Key, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, expected, history[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopJournal(t *testing.T) {
	journal := NoopJournal{}
	assert.NoError(t, journal.Append(context.Background(), sampleResult()))

	history, err := journal.History(context.Background(), "bucket", "key", 1)
	assert.NoError(t, err)
	assert.Empty(t, history)
}
