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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/asgardeo/webflow/internal/system/constants"
	dbmodel "github.com/asgardeo/webflow/internal/system/database/model"
	"github.com/asgardeo/webflow/internal/system/database/provider"
	"github.com/asgardeo/webflow/internal/system/healthcheck/model"
	"github.com/asgardeo/webflow/internal/system/log"
)

// dbCheckTimeout bounds each database check so a hung pool cannot stall the readiness endpoint.
const dbCheckTimeout = 5 * time.Second

var (
	instance *HealthCheckService
	once     sync.Once
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// GetHealthCheckService returns a singleton instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {
	once.Do(func() {
		instance = &HealthCheckService{
			DBProvider: provider.GetDBProvider(),
		}
	})
	return instance
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	runtimeDBStatus := model.ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus(ctx, constants.RuntimeDBName, queryRuntimeDBTable),
	}

	return model.ServerStatus{
		Status:        runtimeDBStatus.Status,
		ServiceStatus: []model.ServiceStatus{runtimeDBStatus},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
// The pooled client is shared, so it is not closed here.
func (hcs *HealthCheckService) checkDatabaseStatus(ctx context.Context, dbName string,
	query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	ctx, cancel := context.WithTimeout(ctx, dbCheckTimeout)
	defer cancel()
	if _, err = dbClient.Query(ctx, query); err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
