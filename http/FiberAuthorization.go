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

package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/keyauth/v2"
)

const keyFormatHint = "expected <alias>:<sha256 of the secret in hex>, e.g. generate the secret with 'openssl rand -hex 32' and hash it with sha256sum"

// PrepareAuthorizationKeys maps every alias to the digest of its secret. Secrets are never configured in clear text.
func PrepareAuthorizationKeys(authorizationKeys []string) (map[string][]byte, error) {
	keys := make(map[string][]byte, len(authorizationKeys))

	for index, entry := range authorizationKeys {
		alias, secret, found := strings.Cut(entry, ":")
		if !found || alias == "" || len(secret) != hex.EncodedLen(sha256.Size) {
			return nil, fmt.Errorf("invalid access credentials at index %d, %s", index, keyFormatHint)
		}

		digest, err := hex.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("invalid access credentials at index %d, %s", index, keyFormatHint)
		}

		keys[alias] = digest
	}

	return keys, nil
}

// FiberAuthFilter returns true for the routes that need no key: health checks and metrics.
func FiberAuthFilter(ctx *fiber.Ctx) bool {
	path := ctx.OriginalURL()

	return !strings.HasPrefix(path, currentVersion) &&
		!strings.HasPrefix(path, invocationPath) &&
		!strings.HasPrefix(path, debugPath)
}

func FiberAuthValidator(authorizationKeys map[string][]byte) func(c *fiber.Ctx, key string) (bool, error) {
	return func(c *fiber.Ctx, key string) (bool, error) {
		digest := sha256.Sum256([]byte(key))

		// Every alias is compared so the response time does not leak which one matched.
		matched := ""
		for alias, expected := range authorizationKeys {
			if subtle.ConstantTimeCompare(digest[:], expected) == 1 {
				matched = alias
			}
		}

		if matched == "" {
			return false, keyauth.ErrMissingOrMalformedAPIKey
		}

		c.Locals("user", matched)

		return true, nil
	}
}
