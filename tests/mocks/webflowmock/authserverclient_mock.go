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

// Package webflowmock provides testify mocks of the web flow interfaces.
package webflowmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/webflow/internal/webflow/model"
)

// AuthServerClientMock is a mock implementation of client.AuthServerClientInterface.
type AuthServerClientMock struct {
	mock.Mock
}

func (m *AuthServerClientMock) operationResponse(args mock.Arguments) (*model.OperationResponse, error) {
	var response *model.OperationResponse
	if v := args.Get(0); v != nil {
		response = v.(*model.OperationResponse)
	}
	return response, args.Error(1)
}

func (m *AuthServerClientMock) operationDetail(args mock.Arguments) (*model.OperationDetail, error) {
	var detail *model.OperationDetail
	if v := args.Get(0); v != nil {
		detail = v.(*model.OperationDetail)
	}
	return detail, args.Error(1)
}

// InitOperation mocks the InitOperation method.
func (m *AuthServerClientMock) InitOperation(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash))
}

// GetOperationDetail mocks the GetOperationDetail method.
func (m *AuthServerClientMock) GetOperationDetail(ctx context.Context, operationHash string) (
	*model.OperationDetail, error) {
	return m.operationDetail(m.Called(ctx, operationHash))
}

// ConfirmOperation mocks the ConfirmOperation method.
func (m *AuthServerClientMock) ConfirmOperation(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash))
}

// CancelOperation mocks the CancelOperation method.
func (m *AuthServerClientMock) CancelOperation(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash))
}

// UpdateOperationFormData mocks the UpdateOperationFormData method.
func (m *AuthServerClientMock) UpdateOperationFormData(ctx context.Context, operationHash string,
	request model.UpdateFormDataRequest) (*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash, request))
}

// InitApproval mocks the InitApproval method.
func (m *AuthServerClientMock) InitApproval(ctx context.Context, operationHash string) (
	*model.OperationDetail, error) {
	return m.operationDetail(m.Called(ctx, operationHash))
}

// ConfirmApproval mocks the ConfirmApproval method.
func (m *AuthServerClientMock) ConfirmApproval(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash))
}

// CancelApproval mocks the CancelApproval method.
func (m *AuthServerClientMock) CancelApproval(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return m.operationResponse(m.Called(ctx, operationHash))
}

// CheckClientCertificate mocks the CheckClientCertificate method.
func (m *AuthServerClientMock) CheckClientCertificate(ctx context.Context, operationHash,
	verificationURL string) error {
	return m.Called(ctx, operationHash, verificationURL).Error(0)
}
