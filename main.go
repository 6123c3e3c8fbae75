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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sdc-aws-processing/app"
)

// Set by the lambda runtime, the container then runs the function handler.
const lambdaRuntimeAPI = "AWS_LAMBDA_RUNTIME_API"

func newRootCommand(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "sdc-aws-processing",
		Short:         "Processes the instrument files arriving at the HERMES buckets",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if os.Getenv(lambdaRuntimeAPI) != "" {
				return app.StartLambda(ctx)
			}

			return app.StartServer(ctx)
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.AddCommand(&cobra.Command{
		Use:   "lambda",
		Short: "Serve invocations from the lambda runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return app.StartLambda(ctx)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the invocation emulator and consume the configured queue",
		PreRun: func(cmd *cobra.Command, args []string) {
			loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return app.StartServer(ctx)
		},
	})

	var bucket, key string

	process := &cobra.Command{
		Use:   "process",
		Short: "Process a single object and exit",
		PreRun: func(cmd *cobra.Command, args []string) {
			loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return app.ProcessObject(ctx, bucket, key)
		},
	}
	process.Flags().StringVar(&bucket, "bucket", "", "bucket holding the object")
	process.Flags().StringVar(&key, "key", "", "object key, eg. unprocessed/hermes_EEA_l0_2023042-000000_v0.bin")
	_ = process.MarkFlagRequired("bucket")
	_ = process.MarkFlagRequired("key")
	root.AddCommand(process)

	return root
}

// Local runs may keep their variables in a .env file, a missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file. Err: %s", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(ctx).Execute(); err != nil {
		log.Printf("SDC processing being stopped. Err: %s", err)
		stop()
		os.Exit(1)
	}
}
