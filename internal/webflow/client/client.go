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

// Package client provides the HTTP client for the authentication server behind the web flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	serverconst "github.com/asgardeo/webflow/internal/system/constants"
	httpservice "github.com/asgardeo/webflow/internal/system/http"
	"github.com/asgardeo/webflow/internal/system/log"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

const loggerComponentName = "AuthServerClient"

// maxResponseBodySize bounds the auth server response bodies read by the client.
const maxResponseBodySize = 1 << 20

// Auth server endpoints, relative to the configured base URL.
const (
	pathInit            = "/api/auth/init"
	pathOperationDetail = "/api/auth/operation/detail"
	pathOperationAuth   = "/api/auth/operation/authenticate"
	pathOperationCancel = "/api/auth/operation/cancel"
	pathFormData        = "/api/auth/operation/formData"
	pathApprovalInit    = "/api/auth/approval-sca/init"
	pathApprovalAuth    = "/api/auth/approval-sca/authenticate"
	pathApprovalCancel  = "/api/auth/approval-sca/cancel"
)

// AuthServerClientInterface defines the calls the web flow makes to the authentication server.
// Every failure is returned as a *model.TransportError.
type AuthServerClientInterface interface {
	InitOperation(ctx context.Context, operationHash string) (*model.OperationResponse, error)
	GetOperationDetail(ctx context.Context, operationHash string) (*model.OperationDetail, error)
	ConfirmOperation(ctx context.Context, operationHash string) (*model.OperationResponse, error)
	CancelOperation(ctx context.Context, operationHash string) (*model.OperationResponse, error)
	UpdateOperationFormData(ctx context.Context, operationHash string,
		request model.UpdateFormDataRequest) (*model.OperationResponse, error)
	InitApproval(ctx context.Context, operationHash string) (*model.OperationDetail, error)
	ConfirmApproval(ctx context.Context, operationHash string) (*model.OperationResponse, error)
	CancelApproval(ctx context.Context, operationHash string) (*model.OperationResponse, error)
	CheckClientCertificate(ctx context.Context, operationHash, verificationURL string) error
}

// AuthServerClient is the HTTP implementation of AuthServerClientInterface.
type AuthServerClient struct {
	baseURL    string
	httpClient httpservice.HTTPClientInterface
}

// NewAuthServerClient creates a client for the auth server at baseURL.
func NewAuthServerClient(baseURL string, httpClient httpservice.HTTPClientInterface) *AuthServerClient {
	return &AuthServerClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// InitOperation starts the authentication of an operation.
func (c *AuthServerClient) InitOperation(ctx context.Context, operationHash string) (*model.OperationResponse, error) {
	return c.postOperation(ctx, pathInit, operationHash)
}

// GetOperationDetail retrieves the details of the operation under review.
func (c *AuthServerClient) GetOperationDetail(ctx context.Context, operationHash string) (
	*model.OperationDetail, error) {
	var detail model.OperationDetail
	if err := c.do(ctx, http.MethodPost, c.baseURL+pathOperationDetail, operationHash,
		struct{}{}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ConfirmOperation authorizes the operation.
func (c *AuthServerClient) ConfirmOperation(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return c.postOperation(ctx, pathOperationAuth, operationHash)
}

// CancelOperation cancels the operation.
func (c *AuthServerClient) CancelOperation(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return c.postOperation(ctx, pathOperationCancel, operationHash)
}

// UpdateOperationFormData stores the operation form data, including the chosen authentication method.
func (c *AuthServerClient) UpdateOperationFormData(ctx context.Context, operationHash string,
	request model.UpdateFormDataRequest) (*model.OperationResponse, error) {
	var response model.OperationResponse
	if err := c.do(ctx, http.MethodPut, c.baseURL+pathFormData, operationHash, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// InitApproval starts the SCA approval of the operation.
func (c *AuthServerClient) InitApproval(ctx context.Context, operationHash string) (*model.OperationDetail, error) {
	var detail model.OperationDetail
	if err := c.do(ctx, http.MethodPost, c.baseURL+pathApprovalInit, operationHash,
		struct{}{}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ConfirmApproval confirms the SCA approval of the operation.
func (c *AuthServerClient) ConfirmApproval(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return c.postOperation(ctx, pathApprovalAuth, operationHash)
}

// CancelApproval cancels the SCA approval of the operation.
func (c *AuthServerClient) CancelApproval(ctx context.Context, operationHash string) (
	*model.OperationResponse, error) {
	return c.postOperation(ctx, pathApprovalCancel, operationHash)
}

// CheckClientCertificate asks the certificate verification endpoint to verify the client TLS certificate.
// Any 2xx answer counts as verified; the body is ignored.
func (c *AuthServerClient) CheckClientCertificate(ctx context.Context, operationHash, verificationURL string) error {
	return c.do(ctx, http.MethodPost, verificationURL, operationHash, struct{}{}, nil)
}

func (c *AuthServerClient) postOperation(ctx context.Context, path, operationHash string) (
	*model.OperationResponse, error) {
	var response model.OperationResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+path, operationHash, struct{}{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// do sends a JSON request and decodes a 2xx JSON answer into out when out is not nil.
func (c *AuthServerClient) do(ctx context.Context, method, url, operationHash string,
	body interface{}, out interface{}) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyOperationHash, log.MaskString(operationHash)))

	payload, err := json.Marshal(body)
	if err != nil {
		return &model.TransportError{Err: fmt.Errorf("failed to encode request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return &model.TransportError{Err: fmt.Errorf("failed to create HTTP request: %w", err)}
	}
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)
	if operationHash != "" {
		req.Header.Set(serverconst.OperationHashHeaderName, operationHash)
	}

	logger.Debug("Sending request to auth server", log.String("method", method), log.String("url", url))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &model.TransportError{RequestSent: true, Err: fmt.Errorf("failed to send HTTP request: %w", err)}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return &model.TransportError{RequestSent: true, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	logger.Debug("Received response from auth server", log.Int("statusCode", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &model.TransportError{RequestSent: true, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("failed to decode response body: %w", err)}
	}
	return nil
}

// newStatusError builds the error for a non-2xx answer. Any JSON object body is kept as the structured
// server error, with or without a message.
func newStatusError(statusCode int, body []byte) error {
	err := fmt.Errorf("auth server responded with status %d", statusCode)

	var fields map[string]json.RawMessage
	if json.Unmarshal(body, &fields) != nil || fields == nil {
		return &model.TransportError{RequestSent: true, StatusCode: statusCode, Err: err}
	}
	var errResp model.ErrorResponse
	if raw, ok := fields["code"]; ok {
		_ = json.Unmarshal(raw, &errResp.Code)
	}
	if raw, ok := fields["message"]; ok {
		_ = json.Unmarshal(raw, &errResp.Message)
	}
	return &model.TransportError{Response: &errResp, RequestSent: true, StatusCode: statusCode, Err: err}
}
