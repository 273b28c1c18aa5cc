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

// Package serviceerror defines the error structures for the service layer.
package serviceerror

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ClientErrorType denotes an error caused by the request; it is reported with a 4xx status.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType denotes an error of the server or its upstreams; it is reported with a 5xx status.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceError is the error returned by services to the HTTP layer.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// IsClientError reports whether the error was caused by the request.
func (e ServiceError) IsClientError() bool {
	return e.Type == ClientErrorType
}

// WithDescription returns a copy of the error carrying the given description. The predefined
// error values are shared, so they are never modified in place.
func (e ServiceError) WithDescription(description string) *ServiceError {
	e.ErrorDescription = description
	return &e
}
