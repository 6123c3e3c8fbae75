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
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	// Lambda functions can only write below /tmp
	SandboxRoot   = "/tmp/sdc-processing"
	dirPermission = 0o755
	writeFlags    = os.O_WRONLY | os.O_RDWR | os.O_APPEND | os.O_CREATE | os.O_TRUNC
)

// UsageTracker is told about every byte written to a sandbox and may refuse it.
type UsageTracker interface {
	Track(storageID string, delta int64) error
}

type UsageFunc func(storageID string, delta int64) error

func (f UsageFunc) Track(storageID string, delta int64) error {
	return f(storageID, delta)
}

// LocalStorageFS is the working directory of a single file, nothing written through it leaves its root.
type LocalStorageFS struct {
	afero.Fs
	base      afero.Fs
	root      string
	storageID string
	usage     UsageTracker
}

func NewLocalStorageFS(base afero.Fs, usage UsageTracker) (*LocalStorageFS, error) {
	storageID := uuid.New().String()
	root := path.Join(SandboxRoot, storageID)

	if err := base.MkdirAll(root, dirPermission); err != nil {
		return nil, fmt.Errorf("failed to create sandbox %s. %w", storageID, err)
	}

	return &LocalStorageFS{Fs: afero.NewBasePathFs(base, root), base: base, root: root, storageID: storageID, usage: usage}, nil
}

func (s *LocalStorageFS) Create(name string) (afero.File, error) {
	if err := s.MkdirAll(path.Dir(name), dirPermission); err != nil {
		return nil, err
	}

	file, err := s.Fs.Create(name)
	if err != nil {
		return nil, err
	}

	return s.tracked(file), nil
}

func (s *LocalStorageFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := s.Fs.OpenFile(name, flag, perm)
	if err != nil || flag&writeFlags == 0 {
		return file, err
	}

	return s.tracked(file), nil
}

func (s *LocalStorageFS) tracked(file afero.File) afero.File {
	return NewLimitedFileSize(file, func(nbytes int64) error { return s.usage.Track(s.storageID, nbytes) })
}

// DumpToDisk copies the working files below target, the layout inside the sandbox is kept.
func (s *LocalStorageFS) DumpToDisk(target string) error {
	files, err := s.ListFiles("")
	if err != nil {
		return fmt.Errorf("failed to list sandbox %s. %w", s.storageID, err)
	}

	disk := afero.NewBasePathFs(afero.NewOsFs(), target)

	for _, name := range files {
		if err := s.copyFile(disk, name); err != nil {
			return fmt.Errorf("failed to dump %s. %w", name, err)
		}
	}

	return nil
}

func (s *LocalStorageFS) copyFile(target afero.Fs, name string) error {
	file, err := s.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	// WriteReader only creates parents for nested names, the target itself may not exist yet.
	if err := target.MkdirAll(path.Dir(name), dirPermission); err != nil {
		return err
	}

	return afero.WriteReader(target, name, file)
}

func (s *LocalStorageFS) GetID() string {
	return s.storageID
}

func (s *LocalStorageFS) Destroy() error {
	return s.base.RemoveAll(s.root)
}

func (s *LocalStorageFS) Exists(name string) (bool, error) {
	return afero.Exists(s.Fs, name)
}

func (s *LocalStorageFS) IsRegular(name string) (bool, error) {
	info, err := s.Stat(name)
	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

func (s *LocalStorageFS) Size(name string) (int64, error) {
	info, err := s.Stat(name)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

func (s *LocalStorageFS) ListFiles(dir string) ([]string, error) {
	files := make([]string, 0)

	err := afero.Walk(s.Fs, dir, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			files = append(files, name)
		}

		return nil
	})

	return files, err
}
