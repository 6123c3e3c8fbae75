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

package out

import (
	"context"

	"sdc-aws-processing/domain/entities"
)

type CalibrationInput struct {
	Science  entities.ScienceFile
	Filename string
	Storage  LocalStorage
	Path     string // Path of the input inside the storage
}

type CalibrationOutput struct {
	Science  entities.ScienceFile
	Filename string
	Path     string // Path of the product inside the storage
	Log      string
}

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_calibrator.go -package=mocks -source=Calibrator.go
type Calibrator interface {
	Calibrate(ctx context.Context, input CalibrationInput) (CalibrationOutput, error)
	Name() string
}
