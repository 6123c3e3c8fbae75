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

package entities

import "strings"

type Environment string

const (
	Production  Environment = "PRODUCTION"
	Development Environment = "DEVELOPMENT"
)

// ParseEnvironment only recognises production explicitly, anything else runs the development code path.
func ParseEnvironment(value string) Environment {
	if strings.EqualFold(strings.TrimSpace(value), string(Production)) {
		return Production
	}

	return Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}
