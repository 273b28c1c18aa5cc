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

package serviceerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ServiceErrorTestSuite struct {
	suite.Suite
}

func TestServiceErrorSuite(t *testing.T) {
	suite.Run(t, new(ServiceErrorTestSuite))
}

func (suite *ServiceErrorTestSuite) TestIsClientError() {
	assert.True(suite.T(), (&ServiceError{Type: ClientErrorType}).IsClientError())
	assert.False(suite.T(), (&ServiceError{Type: ServerErrorType}).IsClientError())
}

func (suite *ServiceErrorTestSuite) TestWithDescriptionLeavesOriginalUntouched() {
	original := ServiceError{
		Type:             ClientErrorType,
		Code:             "WFS-1002",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}

	custom := original.WithDescription("Failed to parse request body: unexpected EOF")

	assert.Equal(suite.T(), "Failed to parse request body: unexpected EOF", custom.ErrorDescription)
	assert.Equal(suite.T(), original.Code, custom.Code)
	assert.Equal(suite.T(), "The request body is malformed or contains invalid data", original.ErrorDescription)
}
