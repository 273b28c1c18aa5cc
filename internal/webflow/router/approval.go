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
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

// ApprovalLoading is shown while an approval request is in flight.
func ApprovalLoading() model.ScreenCommand {
	return model.ScreenCommand{
		Screen: constants.ScreenApprovalSCA,
		Payload: model.ScreenPayload{
			constants.PayloadKeyLoading: true,
			constants.PayloadKeyError:   false,
			constants.PayloadKeyMessage: "",
		},
	}
}

// ApprovalDetail shows the operation being approved.
func ApprovalDetail(detail model.OperationDetail, loading bool) model.ScreenCommand {
	payload := detailPayload(detail)
	payload[constants.PayloadKeyLoading] = loading
	payload[constants.PayloadKeyError] = false
	return model.ScreenCommand{Screen: constants.ScreenApprovalSCA, Payload: payload}
}

// RouteApprovalConfirm maps the answer to an approval confirmation.
func RouteApprovalConfirm(response model.OperationResponse) []model.ScreenCommand {
	commands := make([]model.ScreenCommand, 0, 1)

	switch response.Result {
	case constants.AuthStepResultConfirmed:
		if response.IsMobileTokenEnabled() {
			return append(commands, model.ScreenCommand{
				Screen: constants.ScreenToken,
				Payload: model.ScreenPayload{
					constants.PayloadKeyLoading:              true,
					constants.PayloadKeyError:                false,
					constants.PayloadKeyMessage:              "",
					constants.PayloadKeySMSFallbackAvailable: true,
				},
			})
		}
		return append(commands, model.ScreenCommand{
			Screen: constants.ScreenSMS,
			Payload: model.ScreenPayload{
				constants.PayloadKeyLoading: true,
				constants.PayloadKeyError:   false,
				constants.PayloadKeyMessage: "",
			},
		})
	case constants.AuthStepResultAuthFailed:
		if IsTerminalFailure(response.Message) {
			return append(commands, messageCommand(constants.ScreenError, response.Message))
		}
		return append(commands, model.ScreenCommand{
			Screen: constants.ScreenApprovalSCA,
			Payload: model.ScreenPayload{
				constants.PayloadKeyLoading: false,
				constants.PayloadKeyError:   true,
				constants.PayloadKeyMessage: response.Message,
			},
		})
	default:
		return commands
	}
}

// RouteApprovalCancel maps the answer to an approval cancellation.
func RouteApprovalCancel(response model.OperationResponse) []model.ScreenCommand {
	return []model.ScreenCommand{messageCommand(constants.ScreenError, response.Message)}
}

// ClientCertificateFailed is shown when the client TLS certificate could not be verified.
func ClientCertificateFailed() model.ScreenCommand {
	return model.ScreenCommand{
		Screen: constants.ScreenApprovalSCA,
		Payload: model.ScreenPayload{
			constants.PayloadKeyLoading: false,
			constants.PayloadKeyError:   true,
			constants.PayloadKeyMessage: constants.MessageKeyClientCertificateFailed,
		},
	}
}

// IsTerminalFailure reports whether a failure message ends the operation.
func IsTerminalFailure(message string) bool {
	return constants.TerminalFailureMessages[message]
}
