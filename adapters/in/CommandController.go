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

	"github.com/uber-go/tally/v4"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/logging"
)

// CommandController runs a single object through the dispatcher from the command line.
type CommandController struct {
	invoker
}

func NewCommandController(dispatcher services.FileDispatcher, metricsScope tally.Scope, logger logging.Logger) *CommandController {
	return &CommandController{invoker{dispatcher: dispatcher, metricsScope: metricsScope, logger: logger}}
}

func (c *CommandController) Process(ctx context.Context, bucket, key string) adapterentities.InvocationResponse {
	raw, err := json.Marshal(adapterentities.FilePayload{Bucket: bucket, FileKey: key})
	if err != nil {
		return adapterentities.NewErrorResponse(err)
	}

	return c.invoke(ctx, raw, newRequestID(), entities.SourceCLI)
}
