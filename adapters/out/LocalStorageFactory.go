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
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"sdc-aws-processing/domain/ports/out"
)

var (
	ErrStorageExhausted = errors.New("max storage consumed")
	ErrStorageNotFound  = errors.New("storage not found")
)

const (
	// Inputs up to this size are processed in memory
	memorySandboxLimit = 1 * 1024 * 1024
	EnforceDiskSize    = memorySandboxLimit + 1
)

type sandbox struct {
	storage *LocalStorageFS
	usage   int64
}

// LocalStorageFactory hands out one sandbox per processed file and caps the bytes written by all of them.
type LocalStorageFactory struct {
	mu        sync.Mutex
	sandboxes map[string]*sandbox
	maxUsage  int64
	usage     int64
	disk      afero.Fs
}

func NewLocalStorageFactory(maxUsage int64) *LocalStorageFactory {
	return &LocalStorageFactory{maxUsage: maxUsage, sandboxes: make(map[string]*sandbox), disk: afero.NewOsFs()}
}

// GetLocalStorage keeps small inputs in memory. Compressed inputs go to disk because their expanded size is unknown.
func (l *LocalStorageFactory) GetLocalStorage(filesize uint64, compressed bool) (out.LocalStorage, error) {
	base := l.disk
	if filesize <= memorySandboxLimit && !compressed {
		base = afero.NewMemMapFs()
	}

	storage, err := NewLocalStorageFS(base, l)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sandboxes[storage.GetID()] = &sandbox{storage: storage}

	return storage, nil
}

// Track accounts the bytes written to a sandbox against the shared limit.
func (l *LocalStorageFactory) Track(storageID string, delta int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	box, ok := l.sandboxes[storageID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStorageNotFound, storageID)
	}

	if l.usage+delta > l.maxUsage {
		return fmt.Errorf("%w: %d bytes in use", ErrStorageExhausted, l.usage)
	}

	l.usage += delta
	box.usage += delta

	return nil
}

// Usage returns the bytes written by the live sandboxes.
func (l *LocalStorageFactory) Usage() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.usage
}

func (l *LocalStorageFactory) DestroyStorage(storageID string) error {
	l.mu.Lock()
	box, ok := l.sandboxes[storageID]

	if ok {
		delete(l.sandboxes, storageID)
		l.usage -= box.usage
	}
	l.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrStorageNotFound, storageID)
	}

	return box.storage.Destroy()
}

func (l *LocalStorageFactory) GetStorageFromID(storageID string) (out.LocalStorage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if box, ok := l.sandboxes[storageID]; ok {
		return box.storage, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrStorageNotFound, storageID)
}
