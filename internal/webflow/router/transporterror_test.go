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
	"fmt"
	"testing"

	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TransportErrorTestSuite struct {
	suite.Suite
}

func TestTransportErrorSuite(t *testing.T) {
	suite.Run(t, new(TransportErrorTestSuite))
}

func (suite *TransportErrorTestSuite) TestClassifyTransportError() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "ServerBodyWins",
			err: &model.TransportError{
				Response:    &model.ErrorResponse{Message: "operation.notAvailable"},
				RequestSent: true,
				Err:         errors.New("status 400"),
			},
			expected: "operation.notAvailable",
		},
		{
			name:     "RequestSentWithoutResponse",
			err:      &model.TransportError{RequestSent: true, Err: errors.New("connection reset")},
			expected: "message.invalidRequest",
		},
		{
			name:     "RequestNotSent",
			err:      &model.TransportError{Err: errors.New("invalid URL")},
			expected: "invalid URL",
		},
		{
			name:     "WrappedTransportError",
			err:      fmt.Errorf("confirm failed: %w", &model.TransportError{RequestSent: true}),
			expected: "message.invalidRequest",
		},
		{
			name:     "PlainError",
			err:      errors.New("boom"),
			expected: "boom",
		},
		{
			name:     "NilError",
			err:      nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			command := ClassifyTransportError(tc.err)

			assert.Equal(suite.T(), constants.ScreenError, command.Screen)
			assert.Equal(suite.T(), model.ScreenPayload{"message": tc.expected}, command.Payload)
		})
	}
}
