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

// Package seeder provides schema creation and initial data provisioning
// for the platform and runtime datasources.
package seeder

import (
	"fmt"
	"time"

	"github.com/salesjourney/onboard/internal/system/database/client"
	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "DBSeeder"

// SeederInterface defines the contract for database provisioning.
type SeederInterface interface {
	EnsureSchema() error
	SeedInitialData() error
}

// DBSeeder provisions both datasources at server startup.
type DBSeeder struct {
	dbProvider provider.DBProviderInterface
}

// NewDBSeeder creates a seeder backed by the given database provider.
func NewDBSeeder(dbProvider provider.DBProviderInterface) SeederInterface {
	return &DBSeeder{dbProvider: dbProvider}
}

// EnsureSchema creates all tables and indexes that do not exist yet.
func (s *DBSeeder) EnsureSchema() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	platformClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get platform database client: %w", err)
	}
	for _, query := range platformSchemaQueries {
		if _, err := platformClient.Execute(query); err != nil {
			return fmt.Errorf("failed to execute schema query %s: %w", query.ID, err)
		}
	}

	runtimeClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get runtime database client: %w", err)
	}
	for _, query := range runtimeSchemaQueries {
		if _, err := runtimeClient.Execute(query); err != nil {
			return fmt.Errorf("failed to execute schema query %s: %w", query.ID, err)
		}
	}

	logger.Debug("Database schema is up to date")
	return nil
}

// SeedInitialData provisions the system default flow and the global store
// items. The operation is idempotent and skips anything already present.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	client, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get platform database client: %w", err)
	}

	data := getSeedData()

	seeded, err := s.seedDefaultFlow(client, data.DefaultFlow)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Provisioned system default onboarding flow")
	}

	seeded, err = s.seedStoreItems(client, data.StoreItems)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Provisioned global store items")
	}

	return nil
}

// seedDefaultFlow inserts the system default flow with its steps and
// options if no default flow exists. Reports whether anything was inserted.
func (s *DBSeeder) seedDefaultFlow(dbClient client.DBClientInterface, flow FlowData) (bool, error) {
	exists, err := rowExists(dbClient, queryCheckDefaultFlowExists)
	if err != nil {
		return false, fmt.Errorf("failed to check for the default flow: %w", err)
	}
	if exists {
		return false, nil
	}

	now := dbutils.FormatTimestamp(time.Now())
	flowID := sysutils.GenerateUUID()
	_, err = dbClient.Execute(queryInsertFlow, flowID, flow.Name, flow.FinalBonusCoins, true, now, now)
	if err != nil {
		return false, fmt.Errorf("failed to insert the default flow: %w", err)
	}

	for _, step := range flow.Steps {
		stepID := sysutils.GenerateUUID()
		_, err = dbClient.Execute(queryInsertStep, stepID, flowID, step.Kind, step.Title, step.Body,
			step.IsRequired, step.CoinsAward, step.XPAward, step.OrderIndex, true, step.IsImmutable,
			step.Config)
		if err != nil {
			return false, fmt.Errorf("failed to insert default flow step %q: %w", step.Title, err)
		}

		for _, option := range step.Options {
			_, err = dbClient.Execute(queryInsertStepOption, sysutils.GenerateUUID(), stepID, option.Key,
				option.Title, option.Body, option.OrderIndex)
			if err != nil {
				return false, fmt.Errorf("failed to insert step option %q: %w", option.Key, err)
			}
		}
	}

	return true, nil
}

// seedStoreItems inserts the global store items if none exist yet.
func (s *DBSeeder) seedStoreItems(dbClient client.DBClientInterface, items []StoreItemData) (bool, error) {
	exists, err := rowExists(dbClient, queryCheckStoreItemsExist)
	if err != nil {
		return false, fmt.Errorf("failed to check for store items: %w", err)
	}
	if exists {
		return false, nil
	}

	now := dbutils.FormatTimestamp(time.Now())
	for _, item := range items {
		_, err = dbClient.Execute(queryInsertStoreItem, sysutils.GenerateUUID(), item.Type, item.Title,
			item.CostCoins, item.Stock, item.MinLevel, item.Payload, true, now)
		if err != nil {
			return false, fmt.Errorf("failed to insert store item %q: %w", item.Title, err)
		}
	}

	return true, nil
}

// rowExists runs a COUNT query and reports whether the count is non-zero.
func rowExists(dbClient client.DBClientInterface, query dbmodel.DBQuery) (bool, error) {
	results, err := dbClient.Query(query)
	if err != nil {
		return false, err
	}
	if len(results) == 0 {
		return false, nil
	}
	count, err := dbutils.ParseIntColumn(results[0]["count"])
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
