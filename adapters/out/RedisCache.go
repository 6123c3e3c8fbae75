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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v9"

	"sdc-aws-processing/domain/ports/out"
	"sdc-aws-processing/pkg/awsutils"
)

const redisTimeout = 5 * time.Second

// RedisCache keeps processing status and per-file locks in elasticache, shared by every running instance.
type RedisCache struct {
	client *awsutils.Elasticache

	mu   sync.Mutex
	held map[string]*redislock.Lock
}

func NewCache(url, password string, useTLS bool) *RedisCache {
	return &RedisCache{
		client: awsutils.NewElasticache(awsutils.RedisOptions{Address: url, Password: password, UseTLS: useTLS}),
		held:   make(map[string]*redislock.Lock),
	}
}

func (r *RedisCache) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", out.ErrKeyNotFound, key)
	}

	return value, err
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Set(ctx, key, value, expiration)
}

func (r *RedisCache) List(pattern string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Scan(ctx, pattern)
}

func (r *RedisCache) Lock(key string, duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	lock, err := r.client.Obtain(ctx, key, duration)
	switch {
	case errors.Is(err, redislock.ErrNotObtained):
		return fmt.Errorf("%w: %s", out.ErrLockNotObtained, key)
	case err != nil:
		return err
	}

	r.mu.Lock()
	r.held[key] = lock
	r.mu.Unlock()

	return nil
}

// Unlock of an expired lock reports redislock.ErrLockNotHeld, the key is free either way.
func (r *RedisCache) Unlock(key string) error {
	r.mu.Lock()
	lock, ok := r.held[key]
	delete(r.held, key)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("no lock held for %s", key)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return lock.Release(ctx)
}

func (r *RedisCache) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return r.client.Ping(ctx)
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
