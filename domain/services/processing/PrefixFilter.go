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

package processing

import (
	"context"
	"strings"

	"sdc-aws-processing/domain/entities"
)

// PrefixFilter keeps the function away from its own output, only new uploads are processed.
type PrefixFilter struct {
	unprocessedPrefix string
}

func NewPrefixFilter(unprocessedPrefix string) *PrefixFilter {
	return &PrefixFilter{unprocessedPrefix: unprocessedPrefix}
}

func (p *PrefixFilter) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	key := task.Request.Key

	switch {
	case !strings.HasPrefix(key, p.unprocessedPrefix):
		task.SkipReason = "key is outside " + p.unprocessedPrefix
		return entities.Skip
	case strings.HasSuffix(key, "/"):
		task.SkipReason = "directory marker"
		return entities.Skip
	}

	return entities.NextJob
}
