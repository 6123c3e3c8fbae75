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
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "sdc-aws-processing/adapters/out"
	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/logging"
)

func levelZero() entities.ScienceFile {
	return entities.ScienceFile{
		Instrument: entities.EEA,
		Level:      "l0",
		Time:       time.Date(2023, time.February, 11, 0, 0, 0, 0, time.UTC),
		Version:    "0",
		Extension:  ".bin",
	}
}

func TestPassthroughPromotesLevelZero(t *testing.T) {
	storage, err := adapters.NewLocalStorageFactory(1024*1024).GetLocalStorage(0, false)
	require.NoError(t, err)
	defer storage.Destroy()

	input := "hermes_EEA_l0_2023042-000000_v0.bin"
	file, err := storage.Create(input)
	require.NoError(t, err)
	_, err = file.Write([]byte("raw telemetry"))
	require.NoError(t, err)
	file.Close()

	calibrator := NewPassthroughCalibrator(logging.NewDiscardLog())
	output, err := calibrator.Calibrate(context.Background(), out.CalibrationInput{
		Science:  levelZero(),
		Filename: input,
		Storage:  storage,
		Path:     input,
	})

	require.NoError(t, err)
	assert.Equal(t, "hermes_eea_l1_20230211T000000_v1.0.0.cdf", output.Filename)
	assert.Equal(t, "l1", output.Science.Level)
	assert.Contains(t, output.Log, output.Filename)

	product, err := storage.Open(output.Path)
	require.NoError(t, err)
	defer product.Close()

	content, err := io.ReadAll(product)
	require.NoError(t, err)
	assert.Equal(t, "raw telemetry", string(content))
}

func TestPassthroughSkipsCalibratedLevels(t *testing.T) {
	science := levelZero()
	science.Level = "l1"

	calibrator := NewPassthroughCalibrator(logging.NewDiscardLog())
	_, err := calibrator.Calibrate(context.Background(), out.CalibrationInput{Science: science})

	assert.ErrorIs(t, err, ErrCalibrationUnavailable)
}

func TestRegistry(t *testing.T) {
	calibrator := NewPassthroughCalibrator(logging.NewDiscardLog())
	registry := NewRegistry().
		Register(entities.MERIT, calibrator).
		Register(entities.EEA, calibrator)

	found, err := registry.Get(entities.EEA)
	assert.NoError(t, err)
	assert.Equal(t, "passthrough", found.Name())

	_, err = registry.Get(entities.SPANI)
	assert.ErrorIs(t, err, ErrCalibrationUnavailable)

	assert.Equal(t, []entities.Instrument{entities.EEA, entities.MERIT}, registry.Instruments())
}
