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

package awsutils

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v9"
)

type RedisOptions struct {
	Address  string
	Password string
	UseTLS   bool
}

// Elasticache wraps a redis client together with the lock client built on top of it.
type Elasticache struct {
	rdb    *redis.Client
	locker *redislock.Client
}

func NewElasticache(opts RedisOptions) *Elasticache {
	options := &redis.Options{Addr: opts.Address, Password: opts.Password}
	if opts.UseTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	rdb := redis.NewClient(options)

	return &Elasticache{rdb: rdb, locker: redislock.New(rdb)}
}

func (e *Elasticache) Get(ctx context.Context, key string) (string, error) {
	return e.rdb.Get(ctx, key).Result()
}

func (e *Elasticache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return e.rdb.Set(ctx, key, value, expiration).Err()
}

// Scan walks the keyspace incrementally instead of blocking the server with KEYS.
func (e *Elasticache) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string

	iter := e.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	return keys, iter.Err()
}

// Obtain never retries, a second delivery of the same file must not wait for the first one.
func (e *Elasticache) Obtain(ctx context.Context, key string, ttl time.Duration) (*redislock.Lock, error) {
	return e.locker.Obtain(ctx, key, ttl, &redislock.Options{RetryStrategy: redislock.NoRetry()})
}

func (e *Elasticache) Ping(ctx context.Context) error {
	return e.rdb.Ping(ctx).Err()
}

func (e *Elasticache) Close() error {
	return e.rdb.Close()
}
