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
	"fmt"
	"strings"
)

func HumanReadableSize(size uint64) string {
	const unit = 1024
	prefixes := []string{"KiB", "MiB", "GiB", "TiB"}

	if size < unit {
		return fmt.Sprintf("%dB", size)
	}

	value := float64(size) / unit
	index := 0

	for value >= unit && index < len(prefixes)-1 {
		value /= unit
		index++
	}

	return fmt.Sprintf("%.2f%s", value, prefixes[index])
}

func GetFirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
