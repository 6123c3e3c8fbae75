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

package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/keyauth/v2"
	fibertrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gofiber/fiber.v2"

	"sdc-aws-processing/logging"
)

const (
	currentVersion = "/v1"
	debugPath      = "/debug"
	// Route the lambda runtime interface emulator posts events to.
	invocationPath = "/2015-03-31/functions/function/invocations"
)

// CreateFiberApp builds the local surface of the lambda: the invocation emulator, health checks, metrics and the /v1 API.
func CreateFiberApp(fiberConfig FiberConfig, logger logging.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		BodyLimit:             fiberConfig.MaxRequestSize,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
	})

	app.Use(fibertrace.Middleware())

	if len(fiberConfig.AuthorizationKeys) > 0 {
		auth, err := authMiddleware(fiberConfig.AuthorizationKeys)
		if err != nil {
			return nil, err
		}

		app.Use(auth)
	} else {
		logger.Warnw("No API keys configured, the invocation endpoint is open to anyone who can reach the port")
	}

	if fiberConfig.RequestLogger != nil {
		app.Use(fiberConfig.RequestLogger)
	}

	if fiberConfig.Profiler {
		logger.Warnw("Profiler enabled", "path", debugPath+"/pprof")
		app.Use(pprof.New())
	}

	app.Get("/healthcheck/readiness", fiberConfig.Readiness)
	app.Get("/healthcheck/liveness", fiberConfig.Liveness)

	if fiberConfig.Metrics != nil {
		app.Get("/metrics", fiberConfig.Metrics)
	}

	if fiberConfig.Invocation != nil {
		app.Post(invocationPath, fiberConfig.Invocation)
	}

	api := app.Group(currentVersion)
	for _, handler := range fiberConfig.Handlers {
		api.Add(handler.HTTPMethod, handler.Path, handler.HandlerFunc)
	}

	return app, nil
}

func authMiddleware(authorizationKeys []string) (fiber.Handler, error) {
	keys, err := PrepareAuthorizationKeys(authorizationKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare keys. %w", err)
	}

	return keyauth.New(keyauth.Config{
		Filter:    FiberAuthFilter,
		Validator: FiberAuthValidator(keys),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"Error": err.Error()})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Next()
		},
	}), nil
}
