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
	"crypto/tls"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

// RateLimitConfig caps how many notifications all instances send together. Zero disables a window.
type RateLimitConfig struct {
	Key       string
	PerMinute int
	PerHour   int
}

type window struct {
	key   string
	limit redis_rate.Limit
}

// RedisRateLimiter counts notifications in redis so that a burst of failures does not flood the channels.
type RedisRateLimiter struct {
	limiter *redis_rate.Limiter
	windows []window
}

func NewRateLimiter(url, password string, useTLS bool, config RateLimitConfig) *RedisRateLimiter {
	options := &redis.Options{Addr: url, Password: password}
	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	var windows []window
	if config.PerMinute > 0 {
		windows = append(windows, window{key: config.Key + ":minute", limit: redis_rate.PerMinute(config.PerMinute)})
	}

	if config.PerHour > 0 {
		windows = append(windows, window{key: config.Key + ":hour", limit: redis_rate.PerHour(config.PerHour)})
	}

	return &RedisRateLimiter{limiter: redis_rate.NewLimiter(redis.NewClient(options)), windows: windows}
}

// IsRequestAllowed fails closed, a notification is dropped when redis cannot be reached.
func (r *RedisRateLimiter) IsRequestAllowed(ctx context.Context) bool {
	for _, w := range r.windows {
		res, err := r.limiter.Allow(ctx, w.key, w.limit)
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	return true
}

// AllowAllLimiter is used when no redis is configured.
type AllowAllLimiter struct{}

func (AllowAllLimiter) IsRequestAllowed(context.Context) bool {
	return true
}
