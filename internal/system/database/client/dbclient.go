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

// Package client provides database client implementations for executing queries and managing transactions.
package client

import (
	"context"
	"database/sql"
	"strings"

	"github.com/asgardeo/webflow/internal/system/database/model"
	"github.com/asgardeo/webflow/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	// Query runs a statement that returns rows and returns each row as a map keyed by lowercase column name.
	Query(ctx context.Context, query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// Execute runs a statement that returns no rows and returns the number of rows affected.
	Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error)
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (model.TxInterface, error)
	// Close closes the database connection.
	Close() error
}

// DBClient runs DBQuery values against one database, picking the SQL of its dialect.
type DBClient struct {
	db     model.DBInterface
	dbType string
	logger *log.Logger
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{
		db:     db,
		dbType: dbType,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient"),
			log.String("dbType", dbType)),
	}
}

// Query runs a statement that returns rows and returns each row as a map keyed by lowercase column name.
func (client *DBClient) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	client.logger.Debug("Executing query", log.String("queryID", query.GetID()))

	rows, err := client.db.QueryContext(ctx, query.GetQuery(client.dbType), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			client.logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	return scanRows(rows)
}

// Execute runs a statement that returns no rows and returns the number of rows affected.
func (client *DBClient) Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	client.logger.Debug("Executing statement", log.String("queryID", query.GetID()))

	res, err := client.db.ExecContext(ctx, query.GetQuery(client.dbType), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// BeginTx starts a new database transaction bound to ctx.
func (client *DBClient) BeginTx(ctx context.Context) (model.TxInterface, error) {
	tx, err := client.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return model.NewTx(tx, client.dbType), nil
}

// Close closes the database connection.
func (client *DBClient) Close() error {
	return client.db.Close()
}

func scanRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(columns))
	for i, col := range columns {
		keys[i] = strings.ToLower(col)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, key := range keys {
			row[key] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
