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

package webflow

import "github.com/asgardeo/webflow/internal/system/error/serviceerror"

// Client errors for web flow operations.
var (
	// ErrorMissingOperationHash is the error returned when the operation hash header is missing.
	ErrorMissingOperationHash = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WFS-1001",
		Error:            "Missing operation hash",
		ErrorDescription: "The X-OPERATION-HASH header is required for this request",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WFS-1002",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorUnsupportedAuthMethod is the error returned when an authentication method cannot be chosen.
	ErrorUnsupportedAuthMethod = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WFS-1003",
		Error:            "Unsupported authentication method",
		ErrorDescription: "Only POWERAUTH_TOKEN and SMS_KEY can be chosen for the operation",
	}
	// ErrorMissingFormData is the error returned when an authentication method is chosen without form data.
	ErrorMissingFormData = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WFS-1004",
		Error:            "Missing form data",
		ErrorDescription: "The operation form data is required to choose an authentication method",
	}
	// ErrorTransitionNotFound is the error returned when an operation has no recorded screen transitions.
	ErrorTransitionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WFS-1005",
		Error:            "Screen transition not found",
		ErrorDescription: "No screen transition has been recorded for the operation",
	}
)

// Server errors for web flow operations.
var (
	// ErrorInternalServerError is the error returned when an unexpected error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WFS-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorClientCertificateNotConfigured is the error returned when no certificate verification URL is set.
	ErrorClientCertificateNotConfigured = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WFS-5002",
		Error:            "Client certificate verification not configured",
		ErrorDescription: "The client certificate verification URL is not configured",
	}
)
