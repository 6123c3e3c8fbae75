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

package common

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	dmchttp "sdc-aws-processing/http"
	"sdc-aws-processing/logging"
)

const testFilesDir = "resources/testfiles"

// ChangePathForTesting moves the working directory to the module root so fixtures resolve the same from every package.
func ChangePathForTesting(t *testing.T) {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "could not locate the test utilities")
	require.NoError(t, os.Chdir(filepath.Join(filepath.Dir(filename), "..")))
}

// LoadFile reads a fixture from resources/testfiles and fails the test when it is missing.
func LoadFile(t *testing.T, filename string) []byte {
	t.Helper()
	ChangePathForTesting(t)

	data, err := os.ReadFile(filepath.Join(testFilesDir, filename))
	require.NoError(t, err)

	return data
}

func GetObjectFromJSON[T any](t *testing.T, data []byte) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(data, &value))

	return value
}

func GetObjectJSON(t *testing.T, value any) string {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)

	return string(data)
}

// RedirectContainerOutput follows the logs of a container until ctx is done.
func RedirectContainerOutput(ctx context.Context, pool *dockertest.Pool, containerID string) {
	err := pool.Client.Logs(docker.LogsOptions{
		Context:      ctx,
		Container:    containerID,
		OutputStream: os.Stdout,
		ErrorStream:  os.Stderr,
		Follow:       true,
		Stdout:       true,
		Stderr:       true,
	})
	if err != nil && ctx.Err() == nil {
		log.Println(err)
	}
}

func CreateFiberAppForTest(handlers []dmchttp.Handler, invocation fiber.Handler) *fiber.App {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app, err := dmchttp.CreateFiberApp(dmchttp.FiberConfig{
		MaxRequestSize: 10 * 1024 * 1024,
		Readiness:      ok,
		Liveness:       ok,
		Handlers:       handlers,
		Invocation:     invocation,
	}, logging.NewDiscardLog())
	if err != nil {
		panic(err)
	}

	return app
}
