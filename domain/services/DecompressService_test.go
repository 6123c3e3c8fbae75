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
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/adapters/out"
	"sdc-aws-processing/common"
	"sdc-aws-processing/logging"
)

const levelZeroFixture = "hermes_EEA_l0_2023042-000000_v0.bin"

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	_, err := writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func lz4ed(t *testing.T, data []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	_, err := writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}

func TestExtractFiles(t *testing.T) {
	raw := common.LoadFile(t, levelZeroFixture)
	require.NotEmpty(t, raw)

	type test struct {
		filename string
		content  []byte
		expected string
	}

	tests := []test{
		{filename: levelZeroFixture + ".gz", content: gzipped(t, raw), expected: levelZeroFixture},
		{filename: levelZeroFixture + ".lz4", content: lz4ed(t, raw), expected: levelZeroFixture},
		{filename: "compressed.dat", content: gzipped(t, raw), expected: "compressed.dat.raw"},
		{filename: levelZeroFixture, content: raw, expected: levelZeroFixture},
	}

	d := NewDecompressService(logging.NewDiscardLog())
	localStorageFactory := out.NewLocalStorageFactory(1024 * 1024 * 1024)

	for _, tc := range tests {
		tc := tc
		t.Run(tc.filename, func(t *testing.T) {
			storage, err := localStorageFactory.GetLocalStorage(0, false)
			require.NoError(t, err)
			defer storage.Destroy()

			file, err := storage.Create(tc.filename)
			require.NoError(t, err)
			_, err = file.Write(tc.content)
			require.NoError(t, err)
			file.Close()

			expanded, err := d.Extract(storage, tc.filename, make([]byte, 1024*1024))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, expanded)

			files, err := storage.ListFiles("")
			assert.NoError(t, err)
			assert.Equal(t, 1, len(files), "list of files %+v", files)

			expandedFile, err := storage.Open(expanded)
			require.NoError(t, err)
			defer expandedFile.Close()

			content, err := io.ReadAll(expandedFile)
			assert.NoError(t, err)
			assert.Equal(t, raw, content)
		})
	}
}

func TestExtractMissingFile(t *testing.T) {
	d := NewDecompressService(logging.NewDiscardLog())
	storage, err := out.NewLocalStorageFactory(1024*1024).GetLocalStorage(0, false)
	require.NoError(t, err)

	_, err = d.Extract(storage, "missing.gz", make([]byte, 1024))
	assert.Error(t, err)
}
