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
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc-aws-processing/domain/ports/out"
)

var noLimit = UsageFunc(func(string, int64) error { return nil })

// sandboxes returns a memory and a disk backed sandbox, both removed at the end of the test.
func sandboxes(t *testing.T, usage UsageTracker) map[string]out.LocalStorage {
	t.Helper()

	memStorage, err := NewLocalStorageFS(afero.NewMemMapFs(), usage)
	require.NoError(t, err)

	diskStorage, err := NewLocalStorageFS(afero.NewOsFs(), usage)
	require.NoError(t, err)

	t.Cleanup(func() { diskStorage.Destroy() })

	return map[string]out.LocalStorage{"memory": memStorage, "disk": diskStorage}
}

func writeFile(t *testing.T, storage out.LocalStorage, name, content string) {
	t.Helper()

	file, err := storage.Create(name)
	require.NoError(t, err)
	defer file.Close()

	_, err = file.WriteString(content)
	require.NoError(t, err)
}

func TestDestroyStorage(t *testing.T) {
	tests := map[string]uint64{"memory": 1024, "disk": EnforceDiskSize}

	for name, size := range tests {
		size := size
		t.Run(name, func(t *testing.T) {
			localStorageFactory := NewLocalStorageFactory(5 * 1024 * 1024)

			storage, err := localStorageFactory.GetLocalStorage(size, false)
			require.NoError(t, err)

			_, err = localStorageFactory.GetStorageFromID(storage.GetID())
			assert.NoError(t, err)

			assert.NoError(t, localStorageFactory.DestroyStorage(storage.GetID()))

			_, err = localStorageFactory.GetStorageFromID(storage.GetID())
			assert.ErrorIs(t, err, ErrStorageNotFound)
			assert.ErrorIs(t, localStorageFactory.DestroyStorage(storage.GetID()), ErrStorageNotFound)
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	for name, storage := range sandboxes(t, noLimit) {
		storage := storage
		t.Run(name, func(t *testing.T) {
			writeFile(t, storage, "l0/hermes_EEA_l0_2023042-000000_v0.bin", "telemetry")

			file, err := storage.Open("l0/hermes_EEA_l0_2023042-000000_v0.bin")
			require.NoError(t, err)
			defer file.Close()

			content, err := io.ReadAll(file)
			assert.NoError(t, err)
			assert.Equal(t, "telemetry", string(content))

			size, err := storage.Size("l0/hermes_EEA_l0_2023042-000000_v0.bin")
			assert.NoError(t, err)
			assert.Equal(t, int64(len("telemetry")), size)

			regular, err := storage.IsRegular("l0")
			assert.NoError(t, err)
			assert.False(t, regular)
		})
	}
}

func TestFileExistsAndRemove(t *testing.T) {
	for name, storage := range sandboxes(t, noLimit) {
		storage := storage
		t.Run(name, func(t *testing.T) {
			writeFile(t, storage, "existfile", "")

			exists, err := storage.Exists("existfile")
			assert.NoError(t, err)
			assert.True(t, exists)

			require.NoError(t, storage.Remove("existfile"))

			exists, err = storage.Exists("existfile")
			assert.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestListFiles(t *testing.T) {
	for name, storage := range sandboxes(t, noLimit) {
		storage := storage
		t.Run(name, func(t *testing.T) {
			filenames := []string{"fileInRoot", "/folder1/file1", "/folder1/file2", "/folder2/file2", "/folder2/folder3/file"}
			for _, filename := range filenames {
				writeFile(t, storage, filename, "")
			}

			actualFilenames, err := storage.ListFiles("")
			assert.NoError(t, err)
			assert.Len(t, actualFilenames, len(filenames))
		})
	}
}

func TestSandboxWritesAreTracked(t *testing.T) {
	var tracked int64

	usage := UsageFunc(func(_ string, delta int64) error {
		tracked += delta
		return nil
	})

	for name, storage := range sandboxes(t, usage) {
		storage := storage
		t.Run(name, func(t *testing.T) {
			tracked = 0
			writeFile(t, storage, "product.cdf", "12345")

			file, err := storage.OpenFile("product.cdf", os.O_WRONLY|os.O_APPEND, 0o644)
			require.NoError(t, err)
			_, err = file.Write([]byte("678"))
			require.NoError(t, err)
			file.Close()

			// Reads are never accounted
			file, err = storage.OpenFile("product.cdf", os.O_RDONLY, 0)
			require.NoError(t, err)
			file.Close()

			assert.Equal(t, int64(8), tracked)
		})
	}
}

func TestDumpToDisk(t *testing.T) {
	for name, storage := range sandboxes(t, noLimit) {
		storage := storage
		t.Run(name, func(t *testing.T) {
			filenames := []string{"hermes_EEA_l0_2023042-000000_v0.bin", "/l1/hermes_eea_l1_20230211T000000_v1.0.0.cdf"}
			for _, filename := range filenames {
				writeFile(t, storage, filename, filename)
			}

			target := filepath.Join(t.TempDir(), storage.GetID())
			require.NoError(t, storage.DumpToDisk(target))

			for _, filename := range filenames {
				content, err := os.ReadFile(filepath.Join(target, filename))
				assert.NoError(t, err)
				assert.Equal(t, filename, string(content))
			}
		})
	}
}

func TestStorageUsageLimit(t *testing.T) {
	localStorageFactory := NewLocalStorageFactory(16)

	storage, err := localStorageFactory.GetLocalStorage(8, false)
	require.NoError(t, err)

	file, err := storage.Create("telemetry.bin")
	require.NoError(t, err)

	_, err = file.Write(make([]byte, 10))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), localStorageFactory.Usage())

	_, err = file.Write(make([]byte, 10))
	assert.True(t, errors.Is(err, ErrStorageExhausted))
	file.Close()

	// Destroying the storage gives the bytes back
	require.NoError(t, localStorageFactory.DestroyStorage(storage.GetID()))
	assert.Zero(t, localStorageFactory.Usage())

	storage, err = localStorageFactory.GetLocalStorage(8, false)
	require.NoError(t, err)

	file, err = storage.Create("telemetry.bin")
	require.NoError(t, err)
	defer file.Close()

	_, err = file.Write(make([]byte, 16))
	assert.NoError(t, err)
}

func TestLocalStorageForCompressedFiles(t *testing.T) {
	localStorageFactory := NewLocalStorageFactory(EnforceDiskSize * 2)

	storage, err := localStorageFactory.GetLocalStorage(1024, true)
	require.NoError(t, err)

	root := path.Join(SandboxRoot, storage.GetID())

	exists, err := afero.DirExists(afero.NewOsFs(), root)
	assert.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, localStorageFactory.DestroyStorage(storage.GetID()))

	exists, err = afero.DirExists(afero.NewOsFs(), root)
	assert.NoError(t, err)
	assert.False(t, exists)
}
