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

package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	adaptersin "sdc-aws-processing/adapters/in"
)

// StartLambda hands the invocations of the lambda runtime to the dispatcher, it only returns on setup failures.
func StartLambda(ctx context.Context) error {
	application, err := New(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	controller := adaptersin.NewLambdaController(application.Dispatcher, application.Scope, application.Logger)
	lambda.Start(controller.Handle)

	return nil
}

// ProcessObject runs a single object through the pipeline, the error reports a failed processing.
func ProcessObject(ctx context.Context, bucket, key string) error {
	application, err := New(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	controller := adaptersin.NewCommandController(application.Dispatcher, application.Scope, application.Logger)
	response := controller.Process(ctx, bucket, key)

	application.Logger.Infow("Processing finished", "bucket", bucket, "key", key, "status", response.StatusCode, "body", response.Body)

	if response.StatusCode != 200 {
		return fmt.Errorf("processing failed: %s", response.Body)
	}

	return nil
}
