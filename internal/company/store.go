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

package company

import (
	"fmt"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// companyStoreInterface defines the interface for company store operations.
type companyStoreInterface interface {
	CreateCompany(company Company) error
	GetCompany(id string) (Company, error)
	GetCompanyBySlug(slug string) (Company, error)
	GetCompanyListCount() (int, error)
	GetCompanyList(limit, offset int) ([]Company, error)
	CheckCompanyConflict(name, slug string) (bool, error)
	CreateInvite(invite Invite) error
	DeactivateInvites(companyID string) error
	GetActiveInvite(companyID string) (Invite, error)
	GetActiveInviteByCode(code string) (Invite, error)
	GetActiveInviteByToken(token string) (Invite, error)
}

// companyStore is the default implementation of companyStoreInterface.
type companyStore struct {
	dbProvider provider.DBProviderInterface
}

// newCompanyStore creates a new instance of companyStore.
func newCompanyStore() companyStoreInterface {
	return &companyStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateCompany creates a new company row.
func (s *companyStore) CreateCompany(company Company) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateCompany, company.ID, company.Name, company.Slug,
		dbutils.FormatTimestamp(company.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetCompany retrieves a company by its id.
func (s *companyStore) GetCompany(id string) (Company, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Company{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCompanyByID, id)
	if err != nil {
		return Company{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Company{}, ErrCompanyNotFound
	}

	return buildCompanyFromResultRow(results[0])
}

// GetCompanyBySlug retrieves a company by its slug.
func (s *companyStore) GetCompanyBySlug(slug string) (Company, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Company{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCompanyBySlug, slug)
	if err != nil {
		return Company{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Company{}, ErrCompanyNotFound
	}

	return buildCompanyFromResultRow(results[0])
}

// GetCompanyListCount retrieves the total count of companies.
func (s *companyStore) GetCompanyListCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCompanyListCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return dbutils.ParseIntColumn(results[0]["total"])
}

// GetCompanyList retrieves companies with pagination.
func (s *companyStore) GetCompanyList(limit, offset int) ([]Company, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCompanyList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	companies := make([]Company, 0, len(results))
	for _, row := range results {
		company, err := buildCompanyFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build company: %w", err)
		}
		companies = append(companies, company)
	}

	return companies, nil
}

// CheckCompanyConflict checks whether a company with the same name or slug exists.
func (s *companyStore) CheckCompanyConflict(name, slug string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCheckCompanyConflict, name, slug)
	if err != nil {
		return false, fmt.Errorf("failed to execute conflict check query: %w", err)
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

// CreateInvite creates a new invite row.
func (s *companyStore) CreateInvite(invite Invite) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateInvite, invite.ID, invite.CompanyID, invite.Code,
		invite.Token, invite.IsActive, dbutils.FormatTimestamp(invite.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeactivateInvites deactivates all invites for a company.
func (s *companyStore) DeactivateInvites(companyID string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeactivateInvitesForCompany, companyID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetActiveInvite retrieves the active invite for a company.
func (s *companyStore) GetActiveInvite(companyID string) (Invite, error) {
	return s.getInvite(queryGetActiveInviteForCompany, companyID)
}

// GetActiveInviteByCode resolves an active invite by its code, case-insensitively.
func (s *companyStore) GetActiveInviteByCode(code string) (Invite, error) {
	return s.getInvite(queryGetActiveInviteByCode, code)
}

// GetActiveInviteByToken resolves an active invite by its token.
func (s *companyStore) GetActiveInviteByToken(token string) (Invite, error) {
	return s.getInvite(queryGetActiveInviteByToken, token)
}

func (s *companyStore) getInvite(query dbmodel.DBQuery, arg string) (Invite, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Invite{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return Invite{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Invite{}, ErrInviteNotFound
	}

	return buildInviteFromResultRow(results[0])
}

// buildCompanyFromResultRow constructs a Company from a database result row.
func buildCompanyFromResultRow(row map[string]interface{}) (Company, error) {
	id, err := dbutils.ParseStringColumn(row["company_id"])
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse company_id: %w", err)
	}
	name, err := dbutils.ParseStringColumn(row["name"])
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse name: %w", err)
	}
	slug, err := dbutils.ParseStringColumn(row["slug"])
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse slug: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return Company{
		ID:        id,
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
	}, nil
}

// buildInviteFromResultRow constructs an Invite from a database result row.
func buildInviteFromResultRow(row map[string]interface{}) (Invite, error) {
	id, err := dbutils.ParseStringColumn(row["invite_id"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse invite_id: %w", err)
	}
	companyID, err := dbutils.ParseStringColumn(row["company_id"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse company_id: %w", err)
	}
	code, err := dbutils.ParseStringColumn(row["code"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse code: %w", err)
	}
	token, err := dbutils.ParseStringColumn(row["token"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse token: %w", err)
	}
	isActive, err := dbutils.ParseBoolColumn(row["is_active"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse is_active: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return Invite{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return Invite{
		ID:        id,
		CompanyID: companyID,
		Code:      code,
		Token:     token,
		IsActive:  isActive,
		CreatedAt: createdAt,
	}, nil
}
