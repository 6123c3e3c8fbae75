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
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uber-go/tally/v4"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/logging"
)

const (
	requestIDHeader = "X-Amz-Request-Id"
	defaultHistory  = 20
	maxHistory      = 100
)

type InvocationController struct {
	invoker
	validate *validator.Validate
}

func NewInvocationController(dispatcher services.FileDispatcher, metricsScope tally.Scope, logger logging.Logger) *InvocationController {
	return &InvocationController{
		invoker:  invoker{dispatcher: dispatcher, metricsScope: metricsScope, logger: logger},
		validate: validator.New(),
	}
}

// Invoke behaves like the lambda runtime interface emulator, the function response is always sent with 200.
func (i *InvocationController) Invoke(c *fiber.Ctx) error {
	requestID := c.Get(requestIDHeader)
	if requestID == "" {
		requestID = newRequestID()
	}

	return c.Status(fiber.StatusOK).JSON(i.invoke(c.UserContext(), c.Body(), requestID, entities.SourceHTTP))
}

// ProcessFile processes a single object named by a FilePayload.
func (i *InvocationController) ProcessFile(c *fiber.Ctx) error {
	response := adapterentities.FilesResponse{}
	payload := adapterentities.FilePayload{}

	if err := c.BodyParser(&payload); err != nil {
		i.logger.Errorw("Could not parse request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := i.validate.Struct(payload); err != nil {
		i.logger.Errorw("Some field is missing", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	results := i.dispatcher.Dispatch(c.UserContext(), []entities.FileRequest{{
		RequestID: newRequestID(),
		Source:    entities.SourceHTTP,
		Bucket:    payload.Bucket,
		Key:       payload.FileKey,
	}})
	response.Results = results

	for _, result := range results {
		if result.Failed() {
			response.Error = result.Error
			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetFile returns the last processing status of an object and, on request, its history.
// Without a key it lists the status of every recently processed file of the bucket.
func (i *InvocationController) GetFile(c *fiber.Ctx) error {
	response := adapterentities.FileStatusResponse{}
	bucket, key := c.Query("bucket"), c.Query("key")

	if bucket == "" {
		response.Error = "bucket is required"
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if key == "" {
		return i.listFiles(c, bucket)
	}

	result, err := i.dispatcher.Status(bucket, key)
	switch {
	case errors.Is(err, out.ErrKeyNotFound):
		response.Error = "file not found"
		return c.Status(fiber.StatusNotFound).JSON(response)
	case err != nil:
		i.logger.Errorw("Failed to get processing status", "error", err, "bucket", bucket, "key", key)
		response.Error = "failed to get processing status"

		return c.Status(fiber.StatusInternalServerError).JSON(response)
	}

	response.Result = result

	if c.Query("history") != "" {
		limit, err := strconv.Atoi(c.Query("history"))
		if err != nil || limit <= 0 || limit > maxHistory {
			limit = defaultHistory
		}

		history, err := i.dispatcher.History(c.UserContext(), bucket, key, limit)
		if err != nil {
			i.logger.Errorw("Failed to get processing history", "error", err, "bucket", bucket, "key", key)
			response.Error = "failed to get processing history"

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}

		response.History = history
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (i *InvocationController) listFiles(c *fiber.Ctx, bucket string) error {
	results, err := i.dispatcher.Statuses(bucket)
	if err != nil {
		i.logger.Errorw("Failed to list processing status", "error", err, "bucket", bucket)
		return c.Status(fiber.StatusInternalServerError).JSON(adapterentities.FilesResponse{Error: "failed to list processing status"})
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.FilesResponse{Results: results})
}
