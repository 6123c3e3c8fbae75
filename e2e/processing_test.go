//go:build e2e

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

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	adapterentities "sdc-aws-processing/adapters/entities"
	"sdc-aws-processing/domain/entities"
)

const (
	eeaFile    = "hermes_EEA_l0_2023042-000000_v0.bin"
	eeaProduct = "l1/2023/02/hermes_eea_l1_20230211T000000_v1.0.0.cdf"
)

func httpGet(target string) (*http.Response, error) {
	return http.Get(target) //nolint:gosec,noctx
}

func (suite *E2E) TestQueueProcessing() {
	ctx := context.Background()
	key := "unprocessed/" + eeaFile

	suite.uploadFileForTest(ctx, instrumentBucket, key, eeaFile)

	suite.Require().Eventually(func() bool {
		return suite.objectExists(ctx, instrumentBucket, eeaProduct) && suite.objectExists(ctx, instrumentBucket, "processed/"+eeaFile)
	}, 2*time.Minute, 5*time.Second)

	suite.Assert().False(suite.objectExists(ctx, instrumentBucket, key))

	statusURL := fmt.Sprintf("%s/v1/files?bucket=%s&key=%s&history=5", serverURL, instrumentBucket, url.QueryEscape(key))

	suite.Require().Eventually(func() bool {
		resp, err := httpGet(statusURL)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		defer resp.Body.Close()

		var response struct {
			Result entities.ProcessingResult `json:"result"`
		}

		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &response); err != nil {
			return false
		}

		return response.Result.Status == entities.Processed
	}, time.Minute, 5*time.Second)
}

func (suite *E2E) TestDevelopmentInvocation() {
	ctx := context.Background()
	key := "unprocessed/dev_" + eeaFile

	suite.uploadFileForTest(ctx, devBucket, key, eeaFile)

	payload, err := json.Marshal(adapterentities.FilePayload{Bucket: devBucket, FileKey: key})
	suite.Require().NoError(err)

	resp, err := http.Post(serverURL+"/2015-03-31/functions/function/invocations", "application/json", bytes.NewReader(payload)) //nolint:noctx
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response adapterentities.InvocationResponse
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	suite.Assert().Equal(http.StatusOK, response.StatusCode, response.Body)

	// Development files land in the dev- buckets
	suite.Assert().True(suite.objectExists(ctx, devBucket, eeaProduct))
	suite.Assert().True(suite.objectExists(ctx, devBucket, "processed/dev_"+eeaFile))
	suite.Assert().False(suite.objectExists(ctx, instrumentBucket, "processed/dev_"+eeaFile))
}

func (suite *E2E) TestMissingObjectInvocation() {
	payload := []byte(`{"Bucket": "` + instrumentBucket + `", "FileKey": "unprocessed/hermes_EEA_l0_2023050-000000_v0.bin"}`)

	resp, err := http.Post(serverURL+"/2015-03-31/functions/function/invocations", "application/json", bytes.NewReader(payload)) //nolint:noctx
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response adapterentities.InvocationResponse
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	suite.Assert().Equal(http.StatusInternalServerError, response.StatusCode)
	suite.Assert().Contains(response.Body, "Error Processing File")
}
