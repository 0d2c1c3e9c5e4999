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

package account

import (
	"fmt"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// accountStoreInterface defines the interface for account store operations.
type accountStoreInterface interface {
	CreateAccount(account Account) error
	GetAccount(id string) (Account, error)
	GetAccountByEmail(email string) (Account, error)
	CheckEmailConflict(email string) (bool, error)
}

// accountStore is the default implementation of accountStoreInterface.
type accountStore struct {
	dbProvider provider.DBProviderInterface
}

// newAccountStore creates a new instance of accountStore.
func newAccountStore() accountStoreInterface {
	return &accountStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateAccount creates a new account row.
func (s *accountStore) CreateAccount(account Account) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateAccount, account.ID, account.Email, account.DisplayName,
		account.Phone, account.CompanyID, account.Coins, account.XP,
		dbutils.FormatTimestamp(account.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by its id.
func (s *accountStore) GetAccount(id string) (Account, error) {
	return s.getAccount(queryGetAccountByID, id)
}

// GetAccountByEmail retrieves an account by its email address.
func (s *accountStore) GetAccountByEmail(email string) (Account, error) {
	return s.getAccount(queryGetAccountByEmail, email)
}

func (s *accountStore) getAccount(query dbmodel.DBQuery, arg string) (Account, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Account{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return Account{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Account{}, ErrAccountNotFound
	}

	return buildAccountFromResultRow(results[0])
}

// CheckEmailConflict checks whether an account with the email already exists.
func (s *accountStore) CheckEmailConflict(email string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountAccountsByEmail, email)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return false, nil
	}

	count, err := dbutils.ParseIntColumn(results[0]["total"])
	if err != nil {
		return false, fmt.Errorf("failed to parse count: %w", err)
	}

	return count > 0, nil
}

func buildAccountFromResultRow(row map[string]interface{}) (Account, error) {
	accountID, err := dbutils.ParseStringColumn(row["account_id"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse account_id: %w", err)
	}
	email, err := dbutils.ParseStringColumn(row["email"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse email: %w", err)
	}
	displayName, err := dbutils.ParseStringColumn(row["display_name"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse display_name: %w", err)
	}
	phone, err := dbutils.ParseStringColumn(row["phone"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse phone: %w", err)
	}
	companyID, err := dbutils.ParseStringColumn(row["company_id"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse company_id: %w", err)
	}
	coins, err := dbutils.ParseIntColumn(row["coins"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse coins: %w", err)
	}
	xp, err := dbutils.ParseIntColumn(row["xp"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse xp: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return Account{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return Account{
		ID:          accountID,
		Email:       email,
		DisplayName: displayName,
		Phone:       phone,
		CompanyID:   companyID,
		Coins:       coins,
		XP:          xp,
		CreatedAt:   createdAt,
	}, nil
}
