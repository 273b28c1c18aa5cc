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
	"context"
	"database/sql"

	"github.com/asgardeo/webflow/internal/system/database/model"
)

// TxCall records the arguments of an ExecQuery call.
type TxCall struct {
	Query model.DBQuery
	Args  []any
}

// MockTx is a mock implementation of the TxInterface.
type MockTx struct {
	// MockCommit defines the behavior for the Commit method.
	MockCommit func() error

	// MockRollback defines the behavior for the Rollback method.
	MockRollback func() error

	// MockExecQuery defines the behavior for the ExecQuery method.
	MockExecQuery func(ctx context.Context, query model.DBQuery, args ...any) (sql.Result, error)

	CommitCalls    int
	RollbackCalls  int
	ExecQueryCalls []TxCall
}

// Commit mocks the Commit method of the TxInterface.
func (m *MockTx) Commit() error {
	m.CommitCalls++

	if m.MockCommit != nil {
		return m.MockCommit()
	}
	return nil
}

// Rollback mocks the Rollback method of the TxInterface.
func (m *MockTx) Rollback() error {
	m.RollbackCalls++

	if m.MockRollback != nil {
		return m.MockRollback()
	}
	return nil
}

// ExecQuery mocks the ExecQuery method of the TxInterface.
func (m *MockTx) ExecQuery(ctx context.Context, query model.DBQuery, args ...any) (sql.Result, error) {
	m.ExecQueryCalls = append(m.ExecQueryCalls, TxCall{query, args})

	if m.MockExecQuery != nil {
		return m.MockExecQuery(ctx, query, args...)
	}
	return &MockSQLResult{}, nil
}

// MockSQLResult is a mock implementation of sql.Result.
type MockSQLResult struct {
	// MockRowsAffected defines the behavior for the RowsAffected method.
	MockRowsAffected func() (int64, error)
}

// LastInsertId mocks the LastInsertId method of sql.Result.
func (m *MockSQLResult) LastInsertId() (int64, error) {
	return 0, nil
}

// RowsAffected mocks the RowsAffected method of sql.Result.
func (m *MockSQLResult) RowsAffected() (int64, error) {
	if m.MockRowsAffected != nil {
		return m.MockRowsAffected()
	}
	return 1, nil
}
