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

package fileutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/domain/entities"
)

func TestParseLevelZeroFilename(t *testing.T) {
	table := []struct {
		filename   string
		instrument entities.Instrument
		time       time.Time
	}{
		{filename: "hermes_EEA_l0_2023042-000000_v0.bin", instrument: entities.EEA, time: time.Date(2023, time.February, 11, 0, 0, 0, 0, time.UTC)},
		{filename: "unprocessed/hermes_NEM_l0_2022339-000000_v01.bin", instrument: entities.NEMISIS, time: time.Date(2022, time.December, 5, 0, 0, 0, 0, time.UTC)},
		{filename: "hermes_MERIT_l0_2024366-235959_v3.bin", instrument: entities.MERIT, time: time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)},
		{filename: "hermes_SPANI_l0_2023001-120000_v0.bin", instrument: entities.SPANI, time: time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)},
	}

	for _, v := range table {
		v := v
		t.Run(v.filename, func(t *testing.T) {
			file, err := ParseScienceFilename(v.filename)
			require.NoError(t, err)

			assert.Equal(t, v.instrument, file.Instrument)
			assert.Equal(t, "l0", file.Level)
			assert.Equal(t, ".bin", file.Extension)
			assert.True(t, v.time.Equal(file.Time), "expected %s, got %s", v.time, file.Time)
		})
	}
}

func TestParseHigherLevelFilename(t *testing.T) {
	file, err := ParseScienceFilename("hermes_eea_burst_l2test_counts_20230211T101500_v1.2.3.cdf")
	require.NoError(t, err)

	assert.Equal(t, entities.ScienceFile{
		Instrument: entities.EEA,
		Level:      "l2",
		Mode:       "burst",
		Descriptor: "counts",
		Time:       time.Date(2023, time.February, 11, 10, 15, 0, 0, time.UTC),
		Version:    "1.2.3",
		Test:       true,
		Extension:  ".cdf",
	}, file)

	file, err = ParseScienceFilename("hermes_nem_ql_20230211T000000_v0.1.0.cdf")
	require.NoError(t, err)
	assert.Equal(t, entities.NEMISIS, file.Instrument)
	assert.Equal(t, "ql", file.Level)
	assert.Empty(t, file.Mode)
	assert.Empty(t, file.Descriptor)
}

func TestParseInvalidFilenames(t *testing.T) {
	table := []struct {
		name     string
		filename string
		err      error
	}{
		{name: "other mission", filename: "padre_EEA_l0_2023042-000000_v0.bin", err: ErrInvalidMission},
		{name: "unknown instrument", filename: "hermes_XYZ_l0_2023042-000000_v0.bin", err: ErrUnknownInstrument},
		{name: "too short", filename: "hermes_EEA_l0.bin", err: ErrInvalidFilename},
		{name: "no level", filename: "hermes_eea_20230211T000000_x_v1.0.0.cdf", err: ErrInvalidFilename},
		{name: "bad day of year", filename: "hermes_EEA_l0_2023400-000000_v0.bin", err: ErrInvalidFilename},
		{name: "leap day in common year", filename: "hermes_EEA_l0_2023366-000000_v0.bin", err: ErrInvalidFilename},
		{name: "bad time", filename: "hermes_eea_l1_2023-02-11_v1.0.0.cdf", err: ErrInvalidFilename},
		{name: "no version", filename: "hermes_eea_l1_20230211T000000_1.0.0.cdf", err: ErrInvalidFilename},
	}

	for _, v := range table {
		v := v
		t.Run(v.name, func(t *testing.T) {
			_, err := ParseScienceFilename(v.filename)
			assert.ErrorIs(t, err, v.err)
		})
	}
}

func TestCreateScienceFilename(t *testing.T) {
	source, err := ParseScienceFilename("hermes_EEA_l0_2023042-000000_v0.bin")
	require.NoError(t, err)

	calibrated := entities.ScienceFile{Instrument: source.Instrument, Level: "l1", Time: source.Time, Version: "1.0.0"}
	name, err := CreateScienceFilename(calibrated)
	require.NoError(t, err)
	assert.Equal(t, "hermes_eea_l1_20230211T000000_v1.0.0.cdf", name)

	name, err = CreateScienceFilename(source)
	require.NoError(t, err)
	assert.Equal(t, "hermes_EEA_l0_2023042-000000_v0.bin", name)

	name, err = CreateScienceFilename(entities.ScienceFile{Instrument: entities.SPANI, Level: "l2", Mode: "burst", Descriptor: "counts",
		Test: true, Time: source.Time, Version: "2.0.1", Extension: ".nc"})
	require.NoError(t, err)
	assert.Equal(t, "hermes_spani_burst_l2test_counts_20230211T000000_v2.0.1.nc", name)
}

func TestCreateScienceFilenameErrors(t *testing.T) {
	now := time.Date(2023, time.February, 11, 0, 0, 0, 0, time.UTC)

	_, err := CreateScienceFilename(entities.ScienceFile{Instrument: "xyz", Level: "l1", Time: now, Version: "1.0.0"})
	assert.ErrorIs(t, err, ErrUnknownInstrument)

	_, err = CreateScienceFilename(entities.ScienceFile{Instrument: entities.EEA, Level: "level1", Time: now, Version: "1.0.0"})
	assert.ErrorIs(t, err, ErrInvalidFilename)

	_, err = CreateScienceFilename(entities.ScienceFile{Instrument: entities.EEA, Level: "l1", Time: now, Version: "1"})
	assert.ErrorIs(t, err, ErrInvalidFilename)

	_, err = CreateScienceFilename(entities.ScienceFile{Instrument: entities.EEA, Level: "l0", Time: now, Version: "1.0.0"})
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestRoundTripHigherLevel(t *testing.T) {
	names := []string{
		"hermes_eea_l1_20230211T000000_v1.0.0.cdf",
		"hermes_merit_ql_20221205T235959_v0.0.1.cdf",
	}

	for _, name := range names {
		file, err := ParseScienceFilename(name)
		require.NoError(t, err)

		created, err := CreateScienceFilename(file)
		require.NoError(t, err)
		assert.Equal(t, name, created)
	}
}
