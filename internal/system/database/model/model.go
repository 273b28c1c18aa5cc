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

// Package model defines the data structures and interfaces for database operations.
package model

import (
	"context"
	"database/sql"
)

// DBInterface is the subset of *sql.DB used by the database client.
type DBInterface interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
}

// NewDB wraps a connection pool. *sql.DB already satisfies DBInterface; the wrapper keeps callers
// independent of the concrete type.
func NewDB(db *sql.DB) DBInterface {
	return db
}

// TxInterface defines the wrapper interface for transaction management.
type TxInterface interface {
	// Commit commits the transaction.
	Commit() error
	// Rollback rolls back the transaction.
	Rollback() error
	// ExecQuery executes a DBQuery using the SQL of the transaction's database type.
	ExecQuery(ctx context.Context, query DBQuery, args ...any) (sql.Result, error)
}

// Tx binds a transaction to the database type its queries are written for.
type Tx struct {
	internal *sql.Tx
	dbType   string
}

// NewTx creates a new instance of Tx with the provided sql.Tx.
func NewTx(tx *sql.Tx, dbType string) TxInterface {
	return &Tx{
		internal: tx,
		dbType:   dbType,
	}
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.internal.Commit()
}

// Rollback rolls back the transaction. Rolling back a finished transaction is not an error.
func (t *Tx) Rollback() error {
	if err := t.internal.Rollback(); err != nil && err != sql.ErrTxDone {
		return err
	}
	return nil
}

// ExecQuery executes a DBQuery using the SQL of the transaction's database type.
func (t *Tx) ExecQuery(ctx context.Context, query DBQuery, args ...any) (sql.Result, error) {
	return t.internal.ExecContext(ctx, query.GetQuery(t.dbType), args...)
}
