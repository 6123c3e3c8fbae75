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
	"fmt"
	"time"

	// Registers the postgres driver
	_ "github.com/lib/pq"

	"sdc-aws-processing/domain/entities"
)

const (
	postgresDriver = "postgres"
	defaultHistory = 20
)

const createJournalDDL = `
		CREATE TABLE IF NOT EXISTS processing_journal (
			id             BIGSERIAL PRIMARY KEY,
			request_id     TEXT NOT NULL,
			bucket         TEXT NOT NULL,
			object_key     TEXT NOT NULL,
			instrument     TEXT NOT NULL,
			environment    TEXT NOT NULL,
			status         TEXT NOT NULL,
			processed_key  TEXT NOT NULL,
			product_bucket TEXT NOT NULL,
			product_key    TEXT NOT NULL,
			dry_run        BOOLEAN NOT NULL,
			message        TEXT NOT NULL,
			error          TEXT NOT NULL,
			started_at     TIMESTAMPTZ NOT NULL,
			duration_ms    BIGINT NOT NULL
		)`

const insertJournalEntry = `
		INSERT INTO processing_journal (
			request_id, bucket, object_key, instrument, environment, status, processed_key,
			product_bucket, product_key, dry_run, message, error, started_at, duration_ms
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`

const selectJournalEntries = `
		SELECT request_id, bucket, object_key, instrument, environment, status, processed_key,
		       product_bucket, product_key, dry_run, message, error, started_at, duration_ms
		FROM processing_journal
		WHERE bucket = $1 AND object_key = $2
		ORDER BY started_at DESC
		LIMIT $3`

// PostgresJournal stores every processing attempt in the processing_journal table.
type PostgresJournal struct {
	db *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

// OpenPostgresJournal connects to the database and creates the table when missing.
func OpenPostgresJournal(ctx context.Context, dsn string) (*PostgresJournal, error) {
	db, err := sql.Open(postgresDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal database: %w", err)
	}

	journal := NewPostgresJournal(db)
	if err := journal.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return journal, nil
}

func (p *PostgresJournal) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createJournalDDL); err != nil {
		return fmt.Errorf("failed to create journal table: %w", err)
	}

	return nil
}

func (p *PostgresJournal) Append(ctx context.Context, result entities.ProcessingResult) error {
	_, err := p.db.ExecContext(ctx, insertJournalEntry,
		result.RequestID,
		result.Bucket,
		result.Key,
		string(result.Instrument),
		string(result.Environment),
		string(result.Status),
		result.ProcessedKey,
		result.ProductBucket,
		result.ProductKey,
		result.DryRun,
		result.Message,
		result.Error,
		result.StartTime,
		result.Duration.Milliseconds(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

func (p *PostgresJournal) History(ctx context.Context, bucket, key string, limit int) ([]entities.ProcessingResult, error) {
	if limit <= 0 {
		limit = defaultHistory
	}

	rows, err := p.db.QueryContext(ctx, selectJournalEntries, bucket, key, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	results := make([]entities.ProcessingResult, 0)

	for rows.Next() {
		var (
			result      entities.ProcessingResult
			instrument  string
			environment string
			status      string
			durationMs  int64
		)

		err := rows.Scan(
			&result.RequestID,
			&result.Bucket,
			&result.Key,
			&instrument,
			&environment,
			&status,
			&result.ProcessedKey,
			&result.ProductBucket,
			&result.ProductKey,
			&result.DryRun,
			&result.Message,
			&result.Error,
			&result.StartTime,
			&durationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		result.Instrument = entities.Instrument(instrument)
		result.Environment = entities.Environment(environment)
		result.Status = entities.Status(status)
		result.Duration = time.Duration(durationMs) * time.Millisecond
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return results, nil
}

func (p *PostgresJournal) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresJournal) Close() error {
	return p.db.Close()
}

// NoopJournal is used when no database is configured.
type NoopJournal struct{}

func (NoopJournal) Append(context.Context, entities.ProcessingResult) error {
	return nil
}

func (NoopJournal) History(context.Context, string, string, int) ([]entities.ProcessingResult, error) {
	return []entities.ProcessingResult{}, nil
}
