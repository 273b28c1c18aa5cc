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

type ApprovalTestSuite struct {
	suite.Suite
}

func TestApprovalSuite(t *testing.T) {
	suite.Run(t, new(ApprovalTestSuite))
}

func boolPtr(b bool) *bool {
	return &b
}

func (suite *ApprovalTestSuite) TestApprovalLoading() {
	command := ApprovalLoading()

	assert.Equal(suite.T(), constants.ScreenApprovalSCA, command.Screen)
	assert.Equal(suite.T(), model.ScreenPayload{"loading": true, "error": false, "message": ""}, command.Payload)
}

func (suite *ApprovalTestSuite) TestApprovalDetail() {
	detail := model.OperationDetail{
		OperationID:   "op-1",
		OperationName: "authorize_payment",
		Data:          "A1*A100CZK*Q238400856/0300**D20170629*NUtility Bill Payment - 05/2017",
	}

	command := ApprovalDetail(detail, true)

	assert.Equal(suite.T(), constants.ScreenApprovalSCA, command.Screen)
	assert.Equal(suite.T(), true, command.Payload["loading"])
	assert.Equal(suite.T(), false, command.Payload["error"])
	assert.Equal(suite.T(), "op-1", command.Payload["operationId"])
	assert.Equal(suite.T(), "authorize_payment", command.Payload["operationName"])
	assert.Equal(suite.T(), detail.Data, command.Payload["data"])
}

func (suite *ApprovalTestSuite) TestRouteApprovalConfirmWithMobileToken() {
	commands := RouteApprovalConfirm(model.OperationResponse{
		Result:             constants.AuthStepResultConfirmed,
		MobileTokenEnabled: boolPtr(true),
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen: constants.ScreenToken,
		Payload: model.ScreenPayload{
			"loading":              true,
			"error":                false,
			"message":              "",
			"smsFallbackAvailable": true,
		},
	}}, commands)
}

func (suite *ApprovalTestSuite) TestRouteApprovalConfirmWithoutMobileToken() {
	for _, enabled := range []*bool{nil, boolPtr(false)} {
		commands := RouteApprovalConfirm(model.OperationResponse{
			Result:             constants.AuthStepResultConfirmed,
			MobileTokenEnabled: enabled,
		})

		assert.Equal(suite.T(), []model.ScreenCommand{{
			Screen:  constants.ScreenSMS,
			Payload: model.ScreenPayload{"loading": true, "error": false, "message": ""},
		}}, commands)
	}
}

func (suite *ApprovalTestSuite) TestRouteApprovalConfirmTerminalFailure() {
	for message := range constants.TerminalFailureMessages {
		commands := RouteApprovalConfirm(model.OperationResponse{
			Result:  constants.AuthStepResultAuthFailed,
			Message: message,
		})

		assert.Equal(suite.T(), []model.ScreenCommand{{
			Screen:  constants.ScreenError,
			Payload: model.ScreenPayload{"message": message},
		}}, commands, message)
	}
}

func (suite *ApprovalTestSuite) TestRouteApprovalConfirmRecoverableFailure() {
	commands := RouteApprovalConfirm(model.OperationResponse{
		Result:  constants.AuthStepResultAuthFailed,
		Message: "approval.failed",
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen:  constants.ScreenApprovalSCA,
		Payload: model.ScreenPayload{"loading": false, "error": true, "message": "approval.failed"},
	}}, commands)
}

func (suite *ApprovalTestSuite) TestRouteApprovalConfirmOtherResult() {
	commands := RouteApprovalConfirm(model.OperationResponse{Result: constants.AuthStepResultCanceled})

	assert.NotNil(suite.T(), commands)
	assert.Empty(suite.T(), commands)
}

func (suite *ApprovalTestSuite) TestRouteApprovalCancel() {
	commands := RouteApprovalCancel(model.OperationResponse{
		Result:  constants.AuthStepResultCanceled,
		Message: "operation.canceled",
	})

	assert.Equal(suite.T(), []model.ScreenCommand{{
		Screen:  constants.ScreenError,
		Payload: model.ScreenPayload{"message": "operation.canceled"},
	}}, commands)
}

func (suite *ApprovalTestSuite) TestClientCertificateFailed() {
	command := ClientCertificateFailed()

	assert.Equal(suite.T(), constants.ScreenApprovalSCA, command.Screen)
	assert.Equal(suite.T(), model.ScreenPayload{
		"loading": false,
		"error":   true,
		"message": "clientCertificate.failed",
	}, command.Payload)
}
