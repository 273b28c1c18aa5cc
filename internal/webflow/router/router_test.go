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
	"testing"

	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func steps(methods ...constants.AuthMethod) []model.NextStep {
	result := make([]model.NextStep, 0, len(methods))
	for _, m := range methods {
		result = append(result, model.NextStep{AuthMethod: m})
	}
	return result
}

func (suite *RouterTestSuite) TestTerminalConfirmedShowsSuccess() {
	commands := Route(model.OperationResponse{
		Result:  constants.AuthStepResultConfirmed,
		Message: "operation.success",
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen:  constants.ScreenSuccess,
		Payload: model.ScreenPayload{"message": "operation.success"},
	}}, commands)
}

func (suite *RouterTestSuite) TestTerminalAuthFailedShowsError() {
	commands := Route(model.OperationResponse{
		Result:  constants.AuthStepResultAuthFailed,
		Message: "authentication.fail",
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen:  constants.ScreenError,
		Payload: model.ScreenPayload{"message": "authentication.fail"},
	}}, commands)
}

func (suite *RouterTestSuite) TestTerminalOtherResultsProduceNothing() {
	for _, result := range []constants.AuthStepResult{
		constants.AuthStepResultCanceled,
		constants.AuthStepResultAuthMethodFailed,
		"SOMETHING_NEW",
	} {
		commands := Route(model.OperationResponse{Result: result, Message: "x"})
		assert.NotNil(suite.T(), commands)
		assert.Empty(suite.T(), commands, string(result))
	}
}

func (suite *RouterTestSuite) TestNilAndEmptyNextAreTerminal() {
	withNil := Route(model.OperationResponse{Result: constants.AuthStepResultConfirmed, Next: nil})
	withEmpty := Route(model.OperationResponse{Result: constants.AuthStepResultConfirmed, Next: []model.NextStep{}})

	assert.Equal(suite.T(), withNil, withEmpty)
	assert.Equal(suite.T(), constants.ScreenSuccess, withNil[0].Screen)
}

func (suite *RouterTestSuite) TestUsernamePasswordShowsLogin() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next:   steps(constants.AuthMethodUsernamePasswordAuth),
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen: constants.ScreenLogin,
		Payload: model.ScreenPayload{
			"loading": false,
			"error":   false,
			"message": "login.pleaseLogIn",
		},
	}}, commands)
}

func (suite *RouterTestSuite) TestTokenAndSMSShowOperationReview() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next:   steps(constants.AuthMethodSMSKey, constants.AuthMethodPowerAuthToken),
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen: constants.ScreenOperationReview,
		Payload: model.ScreenPayload{
			"authMethods": []constants.AuthMethod{constants.AuthMethodSMSKey, constants.AuthMethodPowerAuthToken},
		},
	}}, commands)
}

func (suite *RouterTestSuite) TestDuplicateMethodsAreCollapsed() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next: steps(constants.AuthMethodPowerAuthToken, constants.AuthMethodSMSKey,
			constants.AuthMethodPowerAuthToken, constants.AuthMethodSMSKey),
	})

	assert.Len(suite.T(), commands, 1)
	assert.Equal(suite.T(),
		[]constants.AuthMethod{constants.AuthMethodPowerAuthToken, constants.AuthMethodSMSKey},
		commands[0].Payload["authMethods"])
}

func (suite *RouterTestSuite) TestLoginAndOperationReviewInOneResponse() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next: steps(constants.AuthMethodPowerAuthToken, constants.AuthMethodUsernamePasswordAuth,
			constants.AuthMethodUserIDAssign),
	})

	assert.Len(suite.T(), commands, 2)
	assert.Equal(suite.T(), constants.ScreenLogin, commands[0].Screen)
	assert.Equal(suite.T(), constants.ScreenOperationReview, commands[1].Screen)
	assert.Equal(suite.T(), []constants.AuthMethod{constants.AuthMethodPowerAuthToken},
		commands[1].Payload["authMethods"])
}

func (suite *RouterTestSuite) TestIgnoredAndUnknownMethodsProduceNothing() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next: steps(constants.AuthMethodUserIDAssign, constants.AuthMethodConsent,
			constants.AuthMethodLoginSCA, constants.AuthMethodApprovalSCA, "FUTURE_METHOD"),
	})

	assert.NotNil(suite.T(), commands)
	assert.Empty(suite.T(), commands)
}

func (suite *RouterTestSuite) TestNonTerminalAuthFailedShowsError() {
	commands := Route(model.OperationResponse{
		Result:  constants.AuthStepResultAuthFailed,
		Message: "operation.timeout",
		Next:    steps(constants.AuthMethodPowerAuthToken),
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen:  constants.ScreenError,
		Payload: model.ScreenPayload{"message": "operation.timeout"},
	}}, commands)
}

func (suite *RouterTestSuite) TestNonTerminalOtherResultsProduceNothing() {
	commands := Route(model.OperationResponse{
		Result: constants.AuthStepResultCanceled,
		Next:   steps(constants.AuthMethodPowerAuthToken, constants.AuthMethodUsernamePasswordAuth),
	})

	assert.Empty(suite.T(), commands)
}

func (suite *RouterTestSuite) TestRouteIsDeterministic() {
	response := model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next:   steps(constants.AuthMethodUsernamePasswordAuth, constants.AuthMethodSMSKey),
	}

	assert.Equal(suite.T(), Route(response), Route(response))
}

func (suite *RouterTestSuite) TestActionType() {
	assert.Equal(suite.T(), "SHOW_SCREEN_OPERATION_REVIEW", constants.ScreenOperationReview.ActionType())
	assert.Equal(suite.T(), "SHOW_SCREEN_APPROVAL_SCA", constants.ScreenApprovalSCA.ActionType())
}
