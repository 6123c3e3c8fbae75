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

package in

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/logging"
	"sdc-aws-processing/metrics"
)

// invoker holds the invocation semantics shared by the lambda runtime and the HTTP emulator.
type invoker struct {
	dispatcher   services.FileDispatcher
	metricsScope tally.Scope
	logger       logging.Logger
}

func (i *invoker) invoke(ctx context.Context, raw []byte, requestID string, source entities.Source) adapterentities.InvocationResponse {
	i.metricsScope.Counter(metrics.Invocations).Inc(1)

	requests, err := adapterentities.DecodeInvocation(raw)
	if err != nil {
		i.logger.Errorw("Error Processing File", "error", err, "requestId", requestID)
		return adapterentities.NewErrorResponse(err)
	}

	for index := range requests {
		requests[index].RequestID = requestID
		if requests[index].Source == entities.SourceDirect {
			requests[index].Source = source
		}
	}

	i.logger.Infow("Received invocation", "requestId", requestID, "files", len(requests))

	for _, result := range i.dispatcher.Dispatch(ctx, requests) {
		if result.Failed() {
			return adapterentities.NewErrorResponse(errors.New(result.Error))
		}
	}

	return adapterentities.NewSuccessResponse()
}

func newRequestID() string {
	return uuid.New().String()
}
