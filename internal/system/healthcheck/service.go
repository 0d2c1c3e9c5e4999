/*
 * Copyright (c) 2025, Sales Journey (https://salesjourney.io).
 *
 * Sales Journey licenses this file to you under the Apache License,
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

// Package healthcheck provides liveness and readiness checks for the server.
package healthcheck

import (
	"github.com/salesjourney/onboard/internal/system/database/provider"
	"github.com/salesjourney/onboard/internal/system/log"
)

const loggerComponentNameService = "HealthCheckService"

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() ServerStatus
}

// healthCheckService is the default implementation of HealthCheckServiceInterface.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// newHealthCheckService creates a new instance of healthCheckService.
func newHealthCheckService() HealthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: provider.GetDBProvider(),
	}
}

// CheckReadiness checks the readiness of the server and its datasources.
func (hcs *healthCheckService) CheckReadiness() ServerStatus {
	platformDBStatus := ServiceStatus{
		ServiceName: "PlatformDB",
		Status:      hcs.checkDatabaseStatus(provider.DBNamePlatform),
	}

	runtimeDBStatus := ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus(provider.DBNameRuntime),
	}

	status := StatusUp
	if platformDBStatus.Status == StatusDown || runtimeDBStatus.Status == StatusDown {
		status = StatusDown
	}
	return ServerStatus{
		Status: status,
		ServiceStatus: []ServiceStatus{
			platformDBStatus,
			runtimeDBStatus,
		},
	}
}

// checkDatabaseStatus pings the named datasource.
func (hcs *healthCheckService) checkDatabaseStatus(dbName string) Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	dbClient, err := hcs.dbProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.String("dbName", dbName), log.Error(err))
		return StatusDown
	}

	if err := dbClient.Ping(); err != nil {
		logger.Error("Failed to ping database", log.String("dbName", dbName), log.Error(err))
		return StatusDown
	}
	return StatusUp
}
