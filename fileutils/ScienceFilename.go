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
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sdc-aws-processing/domain/entities"
)

const (
	levelZero        = "l0"
	levelZeroLayout  = "150405"
	scienceLayout    = "20060102T150405"
	defaultExtension = ".cdf"
	levelZeroExt     = ".bin"
	testSuffix       = "test"
	minimumParts     = 5
)

var (
	ErrInvalidMission    = errors.New("file does not belong to the mission")
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidFilename   = errors.New("invalid science filename")
)

var (
	levelPattern   = regexp.MustCompile(`^(l[0-9]|ql)(test)?$`)
	versionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)
)

// ParseScienceFilename extracts the science metadata from a mission filename.
//
// Level 0 files follow hermes_{INST}_l0_{YYYYJJJ}-{hhmmss}_v{version}.bin, higher levels follow
// hermes_{inst}_[{mode}_]{level}[test]_[{descriptor}_]{YYYYMMDDThhmmss}_v{x.y.z}.{ext}.
func ParseScienceFilename(filename string) (entities.ScienceFile, error) {
	var file entities.ScienceFile

	base := path.Base(filename)
	file.Extension = path.Ext(base)
	base = strings.TrimSuffix(base, file.Extension)

	parts := strings.Split(base, "_")
	if parts[0] != entities.Mission {
		return file, fmt.Errorf("%w: %s", ErrInvalidMission, filename)
	}

	if len(parts) < minimumParts {
		return file, fmt.Errorf("%w: %s", ErrInvalidFilename, filename)
	}

	instrument, ok := entities.InstrumentFromShortName(parts[1])
	if !ok {
		return file, fmt.Errorf("%w: %s", ErrUnknownInstrument, parts[1])
	}

	file.Instrument = instrument

	version := parts[len(parts)-1]
	if !strings.HasPrefix(version, "v") || len(version) == 1 {
		return file, fmt.Errorf("%w: missing version in %s", ErrInvalidFilename, filename)
	}

	file.Version = strings.TrimPrefix(version, "v")

	if err := parseLevel(&file, parts[2:len(parts)-2]); err != nil {
		return file, fmt.Errorf("%w: %s", err, filename)
	}

	timestamp, err := parseTime(file.Level, parts[len(parts)-2])
	if err != nil {
		return file, fmt.Errorf("%w: bad time in %s: %s", ErrInvalidFilename, filename, err)
	}

	file.Time = timestamp

	return file, nil
}

// CreateScienceFilename builds the mission filename for the given metadata.
func CreateScienceFilename(file entities.ScienceFile) (string, error) {
	shortName := file.Instrument.ShortName()
	if shortName == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownInstrument, file.Instrument)
	}

	if !levelPattern.MatchString(file.Level) {
		return "", fmt.Errorf("%w: invalid level %q", ErrInvalidFilename, file.Level)
	}

	if file.Level == levelZero {
		if _, err := strconv.Atoi(file.Version); err != nil {
			return "", fmt.Errorf("%w: invalid level 0 version %q", ErrInvalidFilename, file.Version)
		}

		return fmt.Sprintf("%s_%s_%s_%s_v%s%s", entities.Mission, strings.ToUpper(shortName), levelZero,
			formatLevelZeroTime(file.Time), file.Version, extensionOrDefault(file.Extension, levelZeroExt)), nil
	}

	if !versionPattern.MatchString(file.Version) {
		return "", fmt.Errorf("%w: invalid version %q", ErrInvalidFilename, file.Version)
	}

	parts := []string{entities.Mission, shortName}
	if file.Mode != "" {
		parts = append(parts, file.Mode)
	}

	level := file.Level
	if file.Test {
		level += testSuffix
	}

	parts = append(parts, level)
	if file.Descriptor != "" {
		parts = append(parts, file.Descriptor)
	}

	parts = append(parts, file.Time.UTC().Format(scienceLayout), "v"+file.Version)

	return strings.Join(parts, "_") + extensionOrDefault(file.Extension, defaultExtension), nil
}

func parseLevel(file *entities.ScienceFile, fields []string) error {
	levelIndex := -1

	for index, field := range fields {
		if levelPattern.MatchString(field) {
			levelIndex = index
			break
		}
	}

	// At most one mode before the level and one descriptor after it.
	if levelIndex < 0 || levelIndex > 1 || len(fields)-levelIndex > 2 {
		return ErrInvalidFilename
	}

	level := fields[levelIndex]
	if strings.HasSuffix(level, testSuffix) {
		file.Test = true
		level = strings.TrimSuffix(level, testSuffix)
	}

	file.Level = level

	if levelIndex == 1 {
		file.Mode = fields[0]
	}

	if levelIndex+1 < len(fields) {
		file.Descriptor = fields[levelIndex+1]
	}

	return nil
}

func parseTime(level, value string) (time.Time, error) {
	if level != levelZero {
		return time.Parse(scienceLayout, value)
	}

	// YYYYJJJ-hhmmss, the day of year is expanded by hand.
	const dateSize = 7

	date, clock, found := strings.Cut(value, "-")
	if !found || len(date) != dateSize {
		return time.Time{}, fmt.Errorf("expected YYYYJJJ-hhmmss, got %s", value)
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return time.Time{}, err
	}

	dayOfYear, err := strconv.Atoi(date[4:])
	if err != nil || dayOfYear < 1 || dayOfYear > 366 {
		return time.Time{}, fmt.Errorf("invalid day of year %s", date[4:])
	}

	hours, err := time.Parse(levelZeroLayout, clock)
	if err != nil {
		return time.Time{}, err
	}

	start := time.Date(year, time.January, 1, hours.Hour(), hours.Minute(), hours.Second(), 0, time.UTC)
	result := start.AddDate(0, 0, dayOfYear-1)

	if result.Year() != year {
		return time.Time{}, fmt.Errorf("day of year %d out of range for %d", dayOfYear, year)
	}

	return result, nil
}

func formatLevelZeroTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%03d-%s", t.Year(), t.YearDay(), t.Format(levelZeroLayout))
}

func extensionOrDefault(extension, fallback string) string {
	if extension == "" {
		return fallback
	}

	return extension
}
