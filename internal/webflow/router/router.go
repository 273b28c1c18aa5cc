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

// Package router decides which screen the web flow client shows next.
//
// Every function in this package is a pure mapping from an auth server outcome to zero or more
// screen commands. Nothing is remembered between calls, so replaying a response always yields the
// same commands.
package router

import (
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

// Route maps an operation response to the screen commands the client must apply, in order.
// An empty slice means the client stays on its current screen.
func Route(response model.OperationResponse) []model.ScreenCommand {
	commands := make([]model.ScreenCommand, 0, 2)

	if len(response.Next) == 0 {
		switch response.Result {
		case constants.AuthStepResultConfirmed:
			commands = append(commands, messageCommand(constants.ScreenSuccess, response.Message))
		case constants.AuthStepResultAuthFailed:
			commands = append(commands, messageCommand(constants.ScreenError, response.Message))
		default:
		}
		return commands
	}

	switch response.Result {
	case constants.AuthStepResultConfirmed:
		return routeNextSteps(response.Next, commands)
	case constants.AuthStepResultAuthFailed:
		return append(commands, messageCommand(constants.ScreenError, response.Message))
	default:
		return commands
	}
}

// routeNextSteps emits LOGIN as soon as it is offered and collects the methods shown on the
// operation review screen, which is emitted last.
func routeNextSteps(steps []model.NextStep, commands []model.ScreenCommand) []model.ScreenCommand {
	authMethods := make([]constants.AuthMethod, 0, len(steps))
	seen := make(map[constants.AuthMethod]bool, len(steps))

	for _, step := range steps {
		switch step.AuthMethod {
		case constants.AuthMethodUserIDAssign:
			// user ID assignment has no screen
		case constants.AuthMethodUsernamePasswordAuth:
			commands = append(commands, model.ScreenCommand{
				Screen: constants.ScreenLogin,
				Payload: model.ScreenPayload{
					constants.PayloadKeyLoading: false,
					constants.PayloadKeyError:   false,
					constants.PayloadKeyMessage: constants.MessageKeyPleaseLogIn,
				},
			})
		case constants.AuthMethodPowerAuthToken, constants.AuthMethodSMSKey:
			if !seen[step.AuthMethod] {
				seen[step.AuthMethod] = true
				authMethods = append(authMethods, step.AuthMethod)
			}
		default:
		}
	}

	if len(authMethods) > 0 {
		commands = append(commands, model.ScreenCommand{
			Screen:  constants.ScreenOperationReview,
			Payload: model.ScreenPayload{constants.PayloadKeyAuthMethods: authMethods},
		})
	}
	return commands
}

func messageCommand(screen constants.Screen, message string) model.ScreenCommand {
	return model.ScreenCommand{
		Screen:  screen,
		Payload: model.ScreenPayload{constants.PayloadKeyMessage: message},
	}
}
