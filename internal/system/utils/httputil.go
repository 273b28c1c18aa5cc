/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/asgardeo/webflow/internal/system/constants"
	"github.com/asgardeo/webflow/internal/system/error/apierror"
	"github.com/asgardeo/webflow/internal/system/log"
)

// maxRequestBodySize bounds the size of JSON request bodies accepted by the API.
const maxRequestBodySize = 1 << 20

// DecodeJSONBody decodes the JSON request body into a value of type T.
// An empty body yields the zero value.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	var data T
	if r.Body == nil {
		return &data, nil
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return &data, nil
		}
		return nil, err
	}
	return &data, nil
}

// WriteJSON writes the given body as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, statusCode int, errResp apierror.ErrorResponse) {
	logger := log.GetLogger()
	logger.Error("Error in HTTP response", log.String("error", errResp.Code),
		log.String("description", errResp.Description))

	WriteJSON(w, statusCode, errResp)
}
