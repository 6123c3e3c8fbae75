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

// FilePayload is the short form accepted by the invocation endpoints.
type FilePayload struct {
	Bucket  string `json:"Bucket" validate:"required"`
	FileKey string `json:"FileKey" validate:"required"`
}

type FileStatusResponse struct {
	Result  any    `json:"result,omitempty"`
	History any    `json:"history,omitempty"`
	Error   string `json:"error,omitempty"`
}

type FilesResponse struct {
	Results any    `json:"results,omitempty"`
	Error   string `json:"error,omitempty"`
}
