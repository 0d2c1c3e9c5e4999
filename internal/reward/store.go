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

package reward

import (
	"fmt"

	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// rewardStoreInterface defines the interface for reward shop store operations.
type rewardStoreInterface interface {
	GetItem(id string) (StoreItem, error)
	GetAffordableItems(companyID string, coins, limit int) ([]StoreItem, error)
	DecrementStock(id string) error
}

// rewardStore is the default implementation of rewardStoreInterface.
type rewardStore struct {
	dbProvider provider.DBProviderInterface
}

// newRewardStore creates a new instance of rewardStore.
func newRewardStore() rewardStoreInterface {
	return &rewardStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetItem retrieves a store item by its id.
func (s *rewardStore) GetItem(id string) (StoreItem, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetItemByID, id)
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return StoreItem{}, ErrItemNotFound
	}

	return buildItemFromResultRow(results[0])
}

// GetAffordableItems lists the active items a participant can afford.
func (s *rewardStore) GetAffordableItems(companyID string, coins, limit int) ([]StoreItem, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAffordableItems, companyID, coins, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	items := make([]StoreItem, 0, len(results))
	for _, row := range results {
		item, err := buildItemFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build store item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// DecrementStock consumes one unit of a limited-stock item.
// Unlimited items are left untouched.
func (s *rewardStore) DecrementStock(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	if item.Stock == nil {
		return nil
	}

	rowsAffected, err := dbClient.Execute(queryDecrementItemStock, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrOutOfStock
	}

	return nil
}

// buildItemFromResultRow constructs a StoreItem from a database result row.
func buildItemFromResultRow(row map[string]interface{}) (StoreItem, error) {
	id, err := dbutils.ParseStringColumn(row["item_id"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse item_id: %w", err)
	}

	var companyID *string
	if row["company_id"] != nil {
		value, err := dbutils.ParseStringColumn(row["company_id"])
		if err != nil {
			return StoreItem{}, fmt.Errorf("failed to parse company_id: %w", err)
		}
		if value != "" {
			companyID = &value
		}
	}

	itemType, err := dbutils.ParseStringColumn(row["type"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse type: %w", err)
	}
	title, err := dbutils.ParseStringColumn(row["title"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse title: %w", err)
	}
	costCoins, err := dbutils.ParseIntColumn(row["cost_coins"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse cost_coins: %w", err)
	}
	stock, err := dbutils.ParseNullableIntColumn(row["stock"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse stock: %w", err)
	}
	minLevel, err := dbutils.ParseIntColumn(row["min_level"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse min_level: %w", err)
	}
	payload, err := dbutils.ParseStringColumn(row["payload"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	isActive, err := dbutils.ParseBoolColumn(row["is_active"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse is_active: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return StoreItem{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return StoreItem{
		ID:        id,
		CompanyID: companyID,
		Type:      itemType,
		Title:     title,
		CostCoins: costCoins,
		Stock:     stock,
		MinLevel:  minLevel,
		Payload:   payload,
		IsActive:  isActive,
		CreatedAt: createdAt,
	}, nil
}
