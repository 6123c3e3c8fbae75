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

package entities

import (
	"time"
)

type JobStatus int8

const (
	// NextJob keeps running the pipeline
	NextJob JobStatus = iota
	// Skip stops the pipeline without an error, the file is not meant for this function
	Skip
	// Abort stops the pipeline, the task error explains why
	Abort
)

type Status string

const (
	Processed Status = "processed"
	Skipped   Status = "skipped"
	Failed    Status = "failed"
)

// ProcessingTask carries the state of a single file through the processing jobs.
type ProcessingTask struct {
	Request     FileRequest
	Environment Environment
	DryRun      bool

	SourceKey       string // Key without the unprocessed prefix and without the dev marker
	Science         ScienceFile
	Filename        string
	ProductBucket   string
	LocalSource     string // File on disk used instead of the bucket object
	StorageID       string // Local sandbox holding the working copies
	LocalPath       string // Current working file inside the sandbox
	Product         ScienceFile
	ProductFilename string
	ProductPath     string // Calibrated product inside the sandbox, empty when no calibration ran
	ProductKey      string
	ProcessedKey    string
	SkipReason      string
	CalibrationLog  string

	Err error
}

type ProcessingResult struct {
	RequestID     string        `json:"requestId"`
	Bucket        string        `json:"bucket"`
	Key           string        `json:"key"`
	Instrument    Instrument    `json:"instrument,omitempty"`
	Environment   Environment   `json:"environment"`
	Status        Status        `json:"status"`
	ProcessedKey  string        `json:"processedKey,omitempty"`
	ProductBucket string        `json:"productBucket,omitempty"`
	ProductKey    string        `json:"productKey,omitempty"`
	DryRun        bool          `json:"dryRun"`
	Message       string        `json:"message,omitempty"`
	Error         string        `json:"error,omitempty"`
	StartTime     time.Time     `json:"startTime"`
	Duration      time.Duration `json:"duration"`
}

func NewProcessingTask(request FileRequest, environment Environment, dryRun bool) *ProcessingTask {
	return &ProcessingTask{Request: request, Environment: environment, DryRun: dryRun}
}

// Result summarizes the task once the pipeline is done.
func (t *ProcessingTask) Result(status JobStatus, start time.Time) ProcessingResult {
	result := ProcessingResult{
		RequestID:     t.Request.RequestID,
		Bucket:        t.Request.Bucket,
		Key:           t.Request.Key,
		Instrument:    t.Science.Instrument,
		Environment:   t.Environment,
		ProcessedKey:  t.ProcessedKey,
		ProductBucket: t.ProductBucket,
		ProductKey:    t.ProductKey,
		DryRun:        t.DryRun,
		StartTime:     start,
		Duration:      time.Since(start),
	}

	switch status {
	case Abort:
		result.Status = Failed
		if t.Err != nil {
			result.Error = t.Err.Error()
		}
	case Skip:
		result.Status = Skipped
		result.Message = t.SkipReason
	default:
		result.Status = Processed
		result.Message = t.CalibrationLog
	}

	return result
}

func (r ProcessingResult) Failed() bool {
	return r.Status == Failed
}
