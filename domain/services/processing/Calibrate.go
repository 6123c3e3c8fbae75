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
	"errors"

	"sdc-aws-processing/domain/entities"
	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/domain/services/calibration"
	"sdc-aws-processing/logging"
)

type Calibrate struct {
	registry            *calibration.Registry
	localStorageFactory out.LocalStorageFactory
	logger              logging.Logger
}

func NewCalibrate(registry *calibration.Registry, localStorageFactory out.LocalStorageFactory, logger logging.Logger) *Calibrate {
	return &Calibrate{registry: registry, localStorageFactory: localStorageFactory, logger: logger}
}

func (c *Calibrate) Process(ctx context.Context, task *entities.ProcessingTask) entities.JobStatus {
	if task.Science.Instrument == "" {
		return entities.NextJob
	}

	calibrator, err := c.registry.Get(task.Science.Instrument)
	if err != nil {
		return c.unavailable(task, err)
	}

	storage, err := c.localStorageFactory.GetStorageFromID(task.StorageID)
	if err != nil {
		task.Err = err
		return entities.Abort
	}

	output, err := calibrator.Calibrate(ctx, out.CalibrationInput{
		Science:  task.Science,
		Filename: task.Filename,
		Storage:  storage,
		Path:     task.LocalPath,
	})

	switch {
	case errors.Is(err, calibration.ErrCalibrationUnavailable):
		return c.unavailable(task, err)
	case err != nil:
		c.logger.Errorw("Calibration failed", "error", err, "calibrator", calibrator.Name(), "key", task.Request.Key)
		task.Err = err

		return entities.Abort
	}

	task.Product = output.Science
	task.ProductFilename = output.Filename
	task.ProductPath = output.Path
	task.CalibrationLog = output.Log

	c.logger.Infow("File calibrated", "calibrator", calibrator.Name(), "instrument", task.Science.Instrument,
		"product", output.Filename)

	return entities.NextJob
}

func (c *Calibrate) unavailable(task *entities.ProcessingTask, err error) entities.JobStatus {
	c.logger.Warnw("Calibration not available", "error", err, "instrument", task.Science.Instrument, "key", task.Request.Key)
	task.CalibrationLog = err.Error()

	return entities.NextJob
}
