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
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
)

// SessionOptions configures the session shared by every AWS client of the process.
// Endpoint replaces the endpoint of every service, it is only set when running against localstack.
type SessionOptions struct {
	Region     string
	Endpoint   string
	MaxRetries int
}

func httpClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        64,
			MaxIdleConnsPerHost: 32,
			MaxConnsPerHost:     64,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func NewSession(opts SessionOptions) (*session.Session, error) {
	config := aws.NewConfig().
		WithRegion(opts.Region).
		WithHTTPClient(httpClient()).
		WithS3ForcePathStyle(true)

	if opts.MaxRetries > 0 {
		config.WithMaxRetries(opts.MaxRetries)
	}

	if opts.Endpoint != "" {
		config.WithEndpointResolver(endpoints.ResolverFunc(
			func(service, region string, _ ...func(*endpoints.Options)) (endpoints.ResolvedEndpoint, error) {
				return endpoints.ResolvedEndpoint{URL: opts.Endpoint, SigningRegion: region}, nil
			}))
	}

	return session.NewSessionWithOptions(session.Options{
		Config:            *config,
		SharedConfigState: session.SharedConfigEnable,
	})
}
