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

package calibration

import (
	"errors"
	"fmt"
	"sort"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
)

// ErrCalibrationUnavailable is not a processing failure, the file is archived without a product.
var ErrCalibrationUnavailable = errors.New("calibration not available")

type Registry struct {
	calibrators map[entities.Instrument]out.Calibrator
}

func NewRegistry() *Registry {
	return &Registry{calibrators: make(map[entities.Instrument]out.Calibrator)}
}

func (r *Registry) Register(instrument entities.Instrument, calibrator out.Calibrator) *Registry {
	r.calibrators[instrument] = calibrator
	return r
}

func (r *Registry) Get(instrument entities.Instrument) (out.Calibrator, error) {
	calibrator, ok := r.calibrators[instrument]
	if !ok {
		return nil, fmt.Errorf("%w: no calibrator registered for %s", ErrCalibrationUnavailable, instrument)
	}

	return calibrator, nil
}

func (r *Registry) Instruments() []entities.Instrument {
	instruments := make([]entities.Instrument, 0, len(r.calibrators))
	for instrument := range r.calibrators {
		instruments = append(instruments, instrument)
	}

	sort.Slice(instruments, func(i, j int) bool { return instruments[i] < instruments[j] })

	return instruments
}
