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
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"sdc-aws-processing/domain/ports/out"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (m memoryEntry) expired(now time.Time) bool {
	return !m.expiresAt.IsZero() && now.After(m.expiresAt)
}

// MemoryCache replaces Redis when none is configured, entries only live as long as the process.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	locks   map[string]time.Time
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), locks: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryCache) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || entry.expired(m.now()) {
		delete(m.entries, key)
		return "", fmt.Errorf("%w: %s", out.ErrKeyNotFound, key)
	}

	return entry.value, nil
}

func (m *MemoryCache) Set(key string, value any, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: fmt.Sprint(value)}
	if expiration > 0 {
		entry.expiresAt = m.now().Add(expiration)
	}

	m.entries[key] = entry

	return nil
}

// List matches like redis SCAN MATCH, without separators a star also spans slashes.
func (m *MemoryCache) List(pattern string) ([]string, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	keys := make([]string, 0)

	for key, entry := range m.entries {
		if entry.expired(now) {
			continue
		}

		if matcher.Match(key) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}

func (m *MemoryCache) Lock(key string, duration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if expiresAt, ok := m.locks[key]; ok && now.Before(expiresAt) {
		return fmt.Errorf("%w: %s", out.ErrLockNotObtained, key)
	}

	m.locks[key] = now.Add(duration)

	return nil
}

func (m *MemoryCache) Unlock(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.locks[key]; !ok {
		return fmt.Errorf("lock not found. key %s", key)
	}

	delete(m.locks, key)

	return nil
}
