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

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/webflow/internal/system/config"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
	"github.com/asgardeo/webflow/tests/mocks/databasemock"
	"github.com/asgardeo/webflow/tests/mocks/webflowmock"
)

type InitTestSuite struct {
	suite.Suite
	authClient *webflowmock.AuthServerClientMock
	mux        *http.ServeMux
}

func TestInitSuite(t *testing.T) {
	suite.Run(t, new(InitTestSuite))
}

func (suite *InitTestSuite) SetupTest() {
	config.ResetWebFlowRuntime()
	_ = config.InitializeWebFlowRuntime("", &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"https://bank.example.com"}},
	})

	suite.authClient = &webflowmock.AuthServerClientMock{}
	suite.mux = http.NewServeMux()
	service := Initialize(suite.mux, suite.authClient, &databasemock.MockDBProvider{}, "")
	assert.NotNil(suite.T(), service)
}

func (suite *InitTestSuite) TearDownTest() {
	config.ResetWebFlowRuntime()
}

func (suite *InitTestSuite) TestInitRouteIsRegistered() {
	suite.authClient.On("InitOperation", mock.Anything, "").Return(&model.OperationResponse{
		Result: constants.AuthStepResultConfirmed,
		Next:   []model.NextStep{{AuthMethod: constants.AuthMethodUsernamePasswordAuth}},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/init", nil)
	req.Header.Set("Origin", "https://bank.example.com")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "https://bank.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(suite.T(), rr.Body.String(), "SHOW_SCREEN_LOGIN")
	suite.authClient.AssertExpectations(suite.T())
}

func (suite *InitTestSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/operation/authenticate", nil)
	req.Header.Set("Origin", "https://bank.example.com")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
	assert.Equal(suite.T(), "GET, POST, PUT", rr.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *InitTestSuite) TestUnknownOriginGetsNoCORSHeaders() {
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/init", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)

	assert.Empty(suite.T(), rr.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *InitTestSuite) TestWrongMethodIsRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/operation/authenticate", nil)
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusMethodNotAllowed, rr.Code)
}

func (suite *InitTestSuite) TestLatestTransitionRouteWithoutHistory() {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/operation/transitions/latest", nil)
	req.Header.Set("X-OPERATION-HASH", "hash-1")
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	assert.Contains(suite.T(), rr.Body.String(), ErrorTransitionNotFound.Code)
}
