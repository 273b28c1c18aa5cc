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

package webflowmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/webflow/internal/system/error/serviceerror"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

// WebFlowServiceMock is a mock implementation of webflow.WebFlowServiceInterface.
type WebFlowServiceMock struct {
	mock.Mock
}

func commandsResult(args mock.Arguments) ([]model.ScreenCommand, *serviceerror.ServiceError) {
	var commands []model.ScreenCommand
	if v := args.Get(0); v != nil {
		commands = v.([]model.ScreenCommand)
	}
	var svcErr *serviceerror.ServiceError
	if v := args.Get(1); v != nil {
		svcErr = v.(*serviceerror.ServiceError)
	}
	return commands, svcErr
}

// InitOperation mocks the InitOperation method.
func (m *WebFlowServiceMock) InitOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// GetOperationDetail mocks the GetOperationDetail method.
func (m *WebFlowServiceMock) GetOperationDetail(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// ConfirmOperation mocks the ConfirmOperation method.
func (m *WebFlowServiceMock) ConfirmOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// CancelOperation mocks the CancelOperation method.
func (m *WebFlowServiceMock) CancelOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// SelectAuthMethod mocks the SelectAuthMethod method.
func (m *WebFlowServiceMock) SelectAuthMethod(ctx context.Context, operationHash string,
	formData map[string]interface{}, method constants.AuthMethod) ([]model.ScreenCommand,
	*serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash, formData, method))
}

// InitApproval mocks the InitApproval method.
func (m *WebFlowServiceMock) InitApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// GetApprovalDetail mocks the GetApprovalDetail method.
func (m *WebFlowServiceMock) GetApprovalDetail(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// ConfirmApproval mocks the ConfirmApproval method.
func (m *WebFlowServiceMock) ConfirmApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// CancelApproval mocks the CancelApproval method.
func (m *WebFlowServiceMock) CancelApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// CheckClientCertificate mocks the CheckClientCertificate method.
func (m *WebFlowServiceMock) CheckClientCertificate(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return commandsResult(m.Called(ctx, operationHash))
}

// GetTransitions mocks the GetTransitions method.
func (m *WebFlowServiceMock) GetTransitions(ctx context.Context, operationHash string) (
	[]model.ScreenTransition, *serviceerror.ServiceError) {
	args := m.Called(ctx, operationHash)
	var transitions []model.ScreenTransition
	if v := args.Get(0); v != nil {
		transitions = v.([]model.ScreenTransition)
	}
	var svcErr *serviceerror.ServiceError
	if v := args.Get(1); v != nil {
		svcErr = v.(*serviceerror.ServiceError)
	}
	return transitions, svcErr
}

// GetLatestTransition mocks the GetLatestTransition method.
func (m *WebFlowServiceMock) GetLatestTransition(ctx context.Context, operationHash string) (
	*model.ScreenTransition, *serviceerror.ServiceError) {
	args := m.Called(ctx, operationHash)
	var transition *model.ScreenTransition
	if v := args.Get(0); v != nil {
		transition = v.(*model.ScreenTransition)
	}
	var svcErr *serviceerror.ServiceError
	if v := args.Get(1); v != nil {
		svcErr = v.(*serviceerror.ServiceError)
	}
	return transition, svcErr
}
