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

// Package provider opens and pools the database connections used by the server.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/webflow/internal/system/config"
	"github.com/asgardeo/webflow/internal/system/constants"
	"github.com/asgardeo/webflow/internal/system/database/client"
	"github.com/asgardeo/webflow/internal/system/database/model"
	"github.com/asgardeo/webflow/internal/system/log"
)

// dbConfig is a data source resolved to a driver and connection string.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider opens each configured database lazily on first use and reuses the pool afterwards.
type DBProvider struct {
	mu      sync.Mutex
	clients map[string]client.DBClientInterface
	// dataSource resolves a database name to its configuration.
	dataSource func(dbName string) (config.DataSource, string, error)
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the process wide DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = newDBProvider(runtimeDataSource)
	})
	return instance
}

// Close closes every database opened through the process wide provider. It is safe to call when
// no database was opened.
func Close() error {
	if instance == nil {
		return nil
	}
	return instance.close()
}

func newDBProvider(dataSource func(dbName string) (config.DataSource, string, error)) *DBProvider {
	return &DBProvider{
		clients:    make(map[string]client.DBClientInterface),
		dataSource: dataSource,
	}
}

// GetDBClient returns the client of the named database. The returned client shares the provider's
// pool and must not be closed by the caller.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.clients[dbName]; ok {
		return c, nil
	}

	dataSource, home, err := d.dataSource(dbName)
	if err != nil {
		return nil, err
	}
	dbCfg, err := getDBConfig(dataSource, home)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dbCfg.driverName, dbCfg.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbName, err)
	}
	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	c := client.NewDBClient(model.NewDB(db), dbCfg.driverName)
	d.clients[dbName] = c
	log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider")).
		Debug("Opened database", log.String("dbName", dbName), log.String("type", dbCfg.driverName))
	return c, nil
}

func (d *DBProvider) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for name, c := range d.clients {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close %s client: %w", name, err)
		}
		delete(d.clients, name)
	}
	return firstErr
}

// runtimeDataSource resolves the databases known to the server from the runtime configuration.
func runtimeDataSource(dbName string) (config.DataSource, string, error) {
	if dbName != constants.RuntimeDBName {
		return config.DataSource{}, "", fmt.Errorf("unsupported database name: %s", dbName)
	}
	runtime := config.GetWebFlowRuntime()
	return runtime.Config.Database.Runtime, runtime.WebFlowHome, nil
}

// getDBConfig returns the driver and connection string for the provided data source.
func getDBConfig(dataSource config.DataSource, webFlowHome string) (dbConfig, error) {
	switch dataSource.Type {
	case model.DBTypePostgres:
		return dbConfig{
			driverName: model.DBTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case model.DBTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return dbConfig{
			driverName: model.DBTypeSQLite,
			dsn:        path.Join(webFlowHome, dataSource.Path) + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
