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
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/uber-go/tally/v4"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/logging"
)

type LambdaController struct {
	invoker
}

func NewLambdaController(dispatcher services.FileDispatcher, metricsScope tally.Scope, logger logging.Logger) *LambdaController {
	return &LambdaController{invoker{dispatcher: dispatcher, metricsScope: metricsScope, logger: logger}}
}

// Handle is registered with lambda.Start. Processing failures are reported in the response, never as an error.
func (l *LambdaController) Handle(ctx context.Context, event json.RawMessage) (adapterentities.InvocationResponse, error) {
	requestID := newRequestID()
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		requestID = lc.AwsRequestID
	}

	return l.invoke(ctx, event, requestID, entities.SourceDirect), nil
}
