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

// OperationReview shows the details of the operation under review.
func OperationReview(detail model.OperationDetail) model.ScreenCommand {
	payload := detailPayload(detail)
	payload[constants.PayloadKeyLoading] = false
	return model.ScreenCommand{Screen: constants.ScreenOperationReview, Payload: payload}
}

// RouteAuthMethodChoice returns the screen of the authentication method chosen on the review screen.
// Methods without a screen of their own yield no command.
func RouteAuthMethodChoice(method constants.AuthMethod) []model.ScreenCommand {
	commands := make([]model.ScreenCommand, 0, 1)

	switch method {
	case constants.AuthMethodPowerAuthToken:
		commands = append(commands, firstLoad(constants.ScreenToken))
	case constants.AuthMethodSMSKey:
		commands = append(commands, firstLoad(constants.ScreenSMS))
	default:
	}
	return commands
}

// IsSelectableAuthMethod reports whether the method can be chosen on the review screen.
func IsSelectableAuthMethod(method constants.AuthMethod) bool {
	return method == constants.AuthMethodPowerAuthToken || method == constants.AuthMethodSMSKey
}

func firstLoad(screen constants.Screen) model.ScreenCommand {
	return model.ScreenCommand{
		Screen:  screen,
		Payload: model.ScreenPayload{constants.PayloadKeyInfo: constants.InfoFirstLoad},
	}
}

func detailPayload(detail model.OperationDetail) model.ScreenPayload {
	return model.ScreenPayload{
		constants.PayloadKeyOperationID:      detail.OperationID,
		constants.PayloadKeyOperationName:    detail.OperationName,
		constants.PayloadKeyData:             detail.Data,
		constants.PayloadKeyFormData:         detail.FormData,
		constants.PayloadKeyChosenAuthMethod: detail.ChosenAuthMethod,
	}
}
