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

package metrics

import (
	"io"
	"net/http"
	"time"

	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
)

const (
	namespace      = "sdc_processing"
	reportInterval = time.Second
)

// Metric names, the scope prefixes them with the namespace.
const (
	Invocations    = "invocations"
	FilesProcessed = "files_processed"
	FilesFailed    = "files_failed"
	FilesSkipped   = "files_skipped"
	ConsumeCount   = "consume_count"
	ProcessingTime = "processing_time"
)

// NewPrometheusScope returns the root scope together with the handler serving it on /metrics.
func NewPrometheusScope() (tally.Scope, http.Handler, io.Closer) {
	reporter := prometheus.NewReporter(prometheus.Options{})

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:         namespace,
		Separator:      prometheus.DefaultSeparator,
		CachedReporter: reporter,
	}, reportInterval)

	return scope, reporter.HTTPHandler(), closer
}

func NewNoopScope() (tally.Scope, http.Handler, io.Closer) {
	return tally.NoopScope, http.NotFoundHandler(), io.NopCloser(nil)
}
