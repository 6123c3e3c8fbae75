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

package services

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/fileutils"
	"sdc-aws-processing/logging"
)

const headerPeek = 512

type DecompressService struct {
	logger logging.Logger
}

func NewDecompressService(logger logging.Logger) DecompressService {
	return DecompressService{logger: logger}
}

// Extract expands a single compressed stream and returns the path of the expanded file, the compressed copy is removed.
// Content that is not compressed is returned untouched whatever its name says.
func (d *DecompressService) Extract(storage out.LocalStorage, filename string, buffer []byte) (string, error) {
	file, err := storage.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open file during extraction: %w", err)
	}

	source := bufio.NewReaderSize(file, headerPeek)
	header, err := source.Peek(headerPeek)
	if err != nil && !errors.Is(err, io.EOF) {
		file.Close()
		return "", fmt.Errorf("failed to read header: %w", err)
	}

	compressedType, err := fileutils.GetCompressedType(bytes.NewReader(header))
	if errors.Is(err, fileutils.ErrUnknownCompressedType) {
		file.Close()
		return filename, nil
	}

	expanded := fileutils.TrimCompressedSuffix(filename)
	if expanded == filename {
		expanded = filename + ".raw"
	}

	d.logger.Debugw("Expanding compressed file", "file", filename, "output", expanded)

	err = expand(compressedType, source, storage, expanded, buffer)
	file.Close()

	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", filename, err)
	}

	if err := storage.Remove(filename); err != nil {
		return "", fmt.Errorf("failed to remove %s after extraction: %w", filename, err)
	}

	return expanded, nil
}

func expand(compressedType fileutils.CompressedType, source io.Reader, storage out.LocalStorage, target string, buffer []byte) error {
	var reader io.Reader

	switch compressedType {
	case fileutils.Gzfile:
		gz, err := gzip.NewReader(source)
		if err != nil {
			return err
		}
		defer gz.Close()

		// Instrument files are a single member, concatenated members are not expected.
		gz.Multistream(false)
		reader = gz
	case fileutils.Lz4file:
		reader = lz4.NewReader(source)
	default:
		return fmt.Errorf("unsupported compressed type %d", compressedType)
	}

	output, err := storage.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create expanded file: %w", err)
	}
	defer output.Close()

	if _, err := io.CopyBuffer(output, reader, buffer); err != nil {
		return fmt.Errorf("failed to write expanded file: %w", err)
	}

	return nil
}
