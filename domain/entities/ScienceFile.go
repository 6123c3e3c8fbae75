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

import (
	"strings"
	"time"
)

const Mission = "hermes"

type Instrument string

const (
	EEA     Instrument = "eea"
	NEMISIS Instrument = "nemisis"
	MERIT   Instrument = "merit"
	SPANI   Instrument = "spani"
)

// Instruments lists every instrument in the order the mission documents them.
var Instruments = []Instrument{EEA, NEMISIS, MERIT, SPANI} //nolint:gochecknoglobals

var shortNames = map[Instrument]string{ //nolint:gochecknoglobals
	EEA:     "eea",
	NEMISIS: "nem",
	MERIT:   "merit",
	SPANI:   "spani",
}

func (i Instrument) ShortName() string {
	return shortNames[i]
}

func InstrumentFromShortName(shortName string) (Instrument, bool) {
	shortName = strings.ToLower(shortName)
	for instrument, name := range shortNames {
		if name == shortName {
			return instrument, true
		}
	}

	return "", false
}

type ScienceFile struct {
	Instrument Instrument
	Level      string // l0, ql, l1, l2, ...
	Mode       string
	Descriptor string
	Time       time.Time
	Version    string
	Test       bool
	Extension  string // including the leading dot
}
