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
	"fmt"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services/stages"
	"sdc-aws-processing/logging"
)

// DispatchHandler processes the files of a queue message and hands the message over to the cleanup stage.
type DispatchHandler struct {
	dispatcher FileDispatcher
	logger     logging.Logger
}

func NewDispatchHandler(dispatcher FileDispatcher, logger logging.Logger) *DispatchHandler {
	return &DispatchHandler{dispatcher: dispatcher, logger: logger}
}

func (h *DispatchHandler) Handle(ctx context.Context, batch *entities.FileBatch, w *entities.OutputWriter[stages.Cleanup[entities.FileBatch]]) error {
	batch.Results = h.dispatcher.Dispatch(ctx, batch.Requests)

	var err error
	if batch.Failed() {
		err = fmt.Errorf("%d files failed", countFailures(batch.Results))
	}

	return w.Write(ctx, &stages.Cleanup[entities.FileBatch]{Request: batch, Error: err})
}

func (h *DispatchHandler) Name() string {
	return "Dispatch Handler"
}

func countFailures(results []entities.ProcessingResult) int {
	failures := 0
	for _, result := range results {
		if result.Failed() {
			failures++
		}
	}

	return failures
}
