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

package link

import (
	"fmt"
	"time"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// linkStoreInterface defines the interface for link store operations.
type linkStoreInterface interface {
	CreateLink(link Link) error
	GetLink(id string) (Link, error)
	GetLinkBySlug(slug string) (Link, error)
	GetLinksByCompany(companyID string) ([]Link, error)
	IncrementUseCount(id string) error
	DeactivateLink(id string) error
	CheckSlugConflict(slug string) (bool, error)
}

// linkStore is the default implementation of linkStoreInterface.
type linkStore struct {
	dbProvider provider.DBProviderInterface
}

// newLinkStore creates a new instance of linkStore.
func newLinkStore() linkStoreInterface {
	return &linkStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateLink creates a new link row.
func (s *linkStore) CreateLink(link Link) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	var expiresAt interface{}
	if link.ExpiresAt != nil {
		expiresAt = dbutils.FormatTimestamp(*link.ExpiresAt)
	}
	var maxUses interface{}
	if link.MaxUses != nil {
		maxUses = *link.MaxUses
	}

	_, err = dbClient.Execute(queryCreateLink, link.ID, link.Slug, link.Token, link.CompanyID,
		link.FlowID, expiresAt, maxUses, link.UseCount, link.IsActive,
		dbutils.FormatTimestamp(link.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetLink retrieves a link by its id.
func (s *linkStore) GetLink(id string) (Link, error) {
	return s.getLink(queryGetLinkByID, id)
}

// GetLinkBySlug retrieves a link by its slug.
func (s *linkStore) GetLinkBySlug(slug string) (Link, error) {
	return s.getLink(queryGetLinkBySlug, slug)
}

// GetLinksByCompany retrieves the links of a company, newest first.
func (s *linkStore) GetLinksByCompany(companyID string) ([]Link, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetLinksByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	links := make([]Link, 0, len(results))
	for _, row := range results {
		link, err := buildLinkFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build link: %w", err)
		}
		links = append(links, link)
	}

	return links, nil
}

// IncrementUseCount counts one successful resolution of a link.
func (s *linkStore) IncrementUseCount(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryIncrementLinkUseCount, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// DeactivateLink marks a link as inactive.
func (s *linkStore) DeactivateLink(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeactivateLink, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// CheckSlugConflict checks whether a link with the same slug exists.
func (s *linkStore) CheckSlugConflict(slug string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCheckSlugConflict, slug)
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

func (s *linkStore) getLink(query dbmodel.DBQuery, arg string) (Link, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Link{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return Link{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Link{}, ErrLinkNotFound
	}

	return buildLinkFromResultRow(results[0])
}

// buildLinkFromResultRow constructs a Link from a database result row.
func buildLinkFromResultRow(row map[string]interface{}) (Link, error) {
	id, err := dbutils.ParseStringColumn(row["link_id"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse link_id: %w", err)
	}
	slug, err := dbutils.ParseStringColumn(row["slug"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse slug: %w", err)
	}
	token, err := dbutils.ParseStringColumn(row["token"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse token: %w", err)
	}
	companyID, err := dbutils.ParseStringColumn(row["company_id"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse company_id: %w", err)
	}
	flowID, err := dbutils.ParseStringColumn(row["flow_id"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse flow_id: %w", err)
	}

	var expiresAt *time.Time
	if row["expires_at"] != nil {
		parsed, err := dbutils.ParseTimestampColumn(row["expires_at"])
		if err != nil {
			return Link{}, fmt.Errorf("failed to parse expires_at: %w", err)
		}
		if !parsed.IsZero() {
			expiresAt = &parsed
		}
	}

	maxUses, err := dbutils.ParseNullableIntColumn(row["max_uses"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse max_uses: %w", err)
	}
	useCount, err := dbutils.ParseIntColumn(row["use_count"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse use_count: %w", err)
	}
	isActive, err := dbutils.ParseBoolColumn(row["is_active"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse is_active: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return Link{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return Link{
		ID:        id,
		Slug:      slug,
		Token:     token,
		CompanyID: companyID,
		FlowID:    flowID,
		ExpiresAt: expiresAt,
		MaxUses:   maxUses,
		UseCount:  useCount,
		IsActive:  isActive,
		CreatedAt: createdAt,
	}, nil
}
