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

package databasemock

import (
	"github.com/asgardeo/webflow/internal/system/database/client"
)

// MockDBProvider hands out database clients to code under test.
// Client is returned when MockGetDBClient is not set; a fresh MockDBClient is used when both are nil.
type MockDBProvider struct {
	MockGetDBClient func(dbName string) (client.DBClientInterface, error)
	Client          client.DBClientInterface

	// Requested records every database name asked for, in call order.
	Requested []string
}

// GetDBClient records the requested name and resolves a client.
func (m *MockDBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	m.Requested = append(m.Requested, dbName)

	switch {
	case m.MockGetDBClient != nil:
		return m.MockGetDBClient(dbName)
	case m.Client != nil:
		return m.Client, nil
	default:
		return &MockDBClient{}, nil
	}
}
