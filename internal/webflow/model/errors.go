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

package model

// ErrorResponse is the structured error body returned by the auth server.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// TransportError describes a failed call to the auth server.
//
// Response is set when the server answered with a structured error body. RequestSent is set when
// the request left the client but no usable response came back. Neither is set when the request
// could not be built.
type TransportError struct {
	Response    *ErrorResponse
	RequestSent bool
	StatusCode  int
	Err         error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Response != nil {
		return e.Response.Message
	}
	return "auth server request failed"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
