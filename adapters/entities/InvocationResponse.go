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

package entities

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const successMessage = "File Processed Successfully"

type InvocationResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func NewSuccessResponse() InvocationResponse {
	return InvocationResponse{StatusCode: http.StatusOK, Body: quote(successMessage)}
}

func NewErrorResponse(err error) InvocationResponse {
	return InvocationResponse{StatusCode: http.StatusInternalServerError, Body: quote(fmt.Sprintf("Error Processing File: %s", err))}
}

// The body is itself a JSON document holding a single string.
func quote(message string) string {
	body, err := json.Marshal(message)
	if err != nil {
		return `""`
	}

	return string(body)
}
