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
	"fmt"
	"io"

	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/fileutils"
	"sdc-aws-processing/logging"
)

const (
	rawLevel       = "l0"
	productLevel   = "l1"
	productVersion = "1.0.0"
	productExt     = ".cdf"
)

// PassthroughCalibrator promotes raw level 0 files to level 1 keeping the payload as is.
// Instrument teams plug their own Calibrator when the science algorithms are available.
type PassthroughCalibrator struct {
	logger logging.Logger
}

func NewPassthroughCalibrator(logger logging.Logger) *PassthroughCalibrator {
	return &PassthroughCalibrator{logger: logger}
}

func (p *PassthroughCalibrator) Calibrate(ctx context.Context, input out.CalibrationInput) (out.CalibrationOutput, error) {
	if input.Science.Level != rawLevel {
		return out.CalibrationOutput{}, fmt.Errorf("%w: level %s is not calibrated", ErrCalibrationUnavailable, input.Science.Level)
	}

	product := input.Science
	product.Level = productLevel
	product.Version = productVersion
	product.Extension = productExt
	product.Mode = ""
	product.Descriptor = ""

	filename, err := fileutils.CreateScienceFilename(product)
	if err != nil {
		return out.CalibrationOutput{}, err
	}

	if err := copyFile(ctx, input.Storage, input.Path, filename); err != nil {
		return out.CalibrationOutput{}, err
	}

	p.logger.Debugw("File promoted", "input", input.Filename, "product", filename)

	return out.CalibrationOutput{
		Science:  product,
		Filename: filename,
		Path:     filename,
		Log:      fmt.Sprintf("promoted %s to %s", input.Filename, filename),
	}, nil
}

func (p *PassthroughCalibrator) Name() string {
	return "passthrough"
}

func copyFile(ctx context.Context, storage out.LocalStorage, source, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := storage.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open calibration input: %w", err)
	}
	defer src.Close()

	dst, err := storage.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create calibration product: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write calibration product: %w", err)
	}

	return nil
}
