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
	"runtime"
	"strings"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	adaptersin "sdc-aws-processing/adapters/in"
	adaptersout "sdc-aws-processing/adapters/out"
	"sdc-aws-processing/domain/entities"
	portsout "sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services"
	"sdc-aws-processing/domain/services/cleanup"
	"sdc-aws-processing/domain/services/stages"
	dmchttp "sdc-aws-processing/http"
)

// StartServer serves the invocation emulator and, when a queue is configured, consumes bucket notifications from it.
//
//nolint:funlen
func StartServer(ctx context.Context) error {
	runtime.GOMAXPROCS(1)

	application, err := New(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	appConfig := application.Config
	logger := application.Logger

	if appConfig.Lambda.Tracing {
		// Enable Datadog Profiler
		if err = profiler.Start(); err != nil {
			return err
		}
		defer profiler.Stop()
	}

	var queue portsout.Queue
	if appConfig.Aws.Queue != "" {
		queue = adaptersout.NewSQSQueue(application.session, nil, appConfig.Aws.Queue)
	}

	// Channels
	inputChannel := make(chan *entities.FileBatch)
	cleanupChannel := make(chan *stages.Cleanup[entities.FileBatch])
	noCleanup := chan *stages.Cleanup[stages.Cleanup[entities.FileBatch]](nil)

	dispatchHandler := services.NewDispatchHandler(application.Dispatcher, logger)

	var cleanupJobs []cleanup.Job
	if queue != nil {
		cleanupJobs = append(cleanupJobs, cleanup.NewQueueCleanup(queue, logger))
	}

	cleanupHandler := cleanup.NewCleanupHandler(cleanupJobs, logger)

	// Stages initialization
	dispatchStage := stages.NewStage[entities.FileBatch, stages.Cleanup[entities.FileBatch]](dispatchHandler, inputChannel, cleanupChannel, logger)
	cleanupStage := stages.NewStage[stages.Cleanup[entities.FileBatch], entities.Empty](cleanupHandler, dispatchStage.Output(), noCleanup, logger)
	failureStage := stages.NewStage[stages.Cleanup[entities.FileBatch], entities.Empty](cleanupHandler, cleanupChannel, noCleanup, logger)

	dispatchStage.Process(ctx)
	cleanupStage.Process(ctx)
	failureStage.Process(ctx)

	// Controllers
	queueController := adaptersin.NewQueueController(queue, inputChannel, application.Scope, logger)
	go queueController.AsyncProcess(ctx)

	invocationController := adaptersin.NewInvocationController(application.Dispatcher, application.Scope, logger)

	fiberConfig := dmchttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		RequestLogger: func(c *fiber.Ctx) error {
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "ip", c.IP(), "method", c.Method(), "url", c.BaseURL(), "path", c.Path(),
					"requestId", c.Get(fiber.HeaderXRequestID))
			}
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			if err := application.healthy(c.UserContext()); err != nil {
				logger.Errorw("Readiness check failed", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(err.Error())
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Invocation: invocationController.Invoke,
		Handlers: []dmchttp.Handler{
			{HTTPMethod: fiber.MethodPost, Path: "/files", HandlerFunc: invocationController.ProcessFile},
			{HTTPMethod: fiber.MethodGet, Path: "/files", HandlerFunc: invocationController.GetFile},
		},
	}

	if appConfig.HTTPServer.Metrics {
		fiberConfig.Metrics = adaptor.HTTPHandler(application.metricsHandler)
	}

	app, err := dmchttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	go func() {
		<-ctx.Done()

		if err := app.Shutdown(); err != nil {
			logger.Errorw("Failed to shutdown http server", "error", err)
		}
	}()

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}
