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

package router

import (
	"errors"

	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

// ClassifyTransportError maps a failed auth server call to an ERROR screen command.
//
// A structured error body wins over a missing response, which wins over the error text.
func ClassifyTransportError(err error) model.ScreenCommand {
	return messageCommand(constants.ScreenError, transportErrorMessage(err))
}

func transportErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *model.TransportError
	if !errors.As(err, &transportErr) {
		return err.Error()
	}

	switch {
	case transportErr.Response != nil:
		return transportErr.Response.Message
	case transportErr.RequestSent:
		return constants.MessageKeyInvalidRequest
	case transportErr.Err != nil:
		return transportErr.Err.Error()
	default:
		return transportErr.Error()
	}
}
