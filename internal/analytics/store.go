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

package analytics

import (
	"fmt"
	"time"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// analyticsStoreInterface defines the interface for funnel aggregation reads.
type analyticsStoreInterface interface {
	GetSessionsByFlow(flowID string, since time.Time) ([]sessionSnapshot, error)
	GetSessionsByCompany(companyID string, since time.Time) ([]sessionSnapshot, error)
	GetMaxRecordedOrderByFlow(flowID string, since time.Time) (map[string]int, error)
	GetMaxRecordedOrderByCompany(companyID string, since time.Time) (map[string]int, error)
}

// analyticsStore is the default implementation of analyticsStoreInterface.
type analyticsStore struct {
	dbProvider provider.DBProviderInterface
}

// newAnalyticsStore creates a new instance of analyticsStore.
func newAnalyticsStore() analyticsStoreInterface {
	return &analyticsStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetSessionsByFlow retrieves session snapshots for a flow within the window.
func (s *analyticsStore) GetSessionsByFlow(flowID string, since time.Time) ([]sessionSnapshot, error) {
	return s.getSessions(queryGetSessionsByFlow, flowID, since)
}

// GetSessionsByCompany retrieves session snapshots for a company within the window.
func (s *analyticsStore) GetSessionsByCompany(companyID string, since time.Time) (
	[]sessionSnapshot, error) {
	return s.getSessions(queryGetSessionsByCompany, companyID, since)
}

func (s *analyticsStore) getSessions(query dbmodel.DBQuery, scopeID string,
	since time.Time) ([]sessionSnapshot, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, scopeID, dbutils.FormatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	snapshots := make([]sessionSnapshot, 0, len(results))
	for _, row := range results {
		snapshot, err := buildSnapshotFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build session snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// GetMaxRecordedOrderByFlow retrieves the highest recorded order position per
// session of the flow within the window.
func (s *analyticsStore) GetMaxRecordedOrderByFlow(flowID string, since time.Time) (
	map[string]int, error) {
	return s.getMaxRecordedOrder(queryGetMaxRecordedOrderByFlow, flowID, since)
}

// GetMaxRecordedOrderByCompany retrieves the highest recorded order position per
// session of the company within the window.
func (s *analyticsStore) GetMaxRecordedOrderByCompany(companyID string, since time.Time) (
	map[string]int, error) {
	return s.getMaxRecordedOrder(queryGetMaxRecordedOrderByCompany, companyID, since)
}

func (s *analyticsStore) getMaxRecordedOrder(query dbmodel.DBQuery, scopeID string,
	since time.Time) (map[string]int, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, scopeID, dbutils.FormatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	maxOrders := make(map[string]int, len(results))
	for _, row := range results {
		sessionID, err := dbutils.ParseStringColumn(row["session_id"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse session_id: %w", err)
		}
		maxOrder, err := dbutils.ParseIntColumn(row["max_order"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse max_order: %w", err)
		}
		maxOrders[sessionID] = maxOrder
	}

	return maxOrders, nil
}

func buildSnapshotFromResultRow(row map[string]interface{}) (sessionSnapshot, error) {
	sessionID, err := dbutils.ParseStringColumn(row["session_id"])
	if err != nil {
		return sessionSnapshot{}, fmt.Errorf("failed to parse session_id: %w", err)
	}
	flowID, err := dbutils.ParseStringColumn(row["flow_id"])
	if err != nil {
		return sessionSnapshot{}, fmt.Errorf("failed to parse flow_id: %w", err)
	}
	state, err := dbutils.ParseStringColumn(row["state"])
	if err != nil {
		return sessionSnapshot{}, fmt.Errorf("failed to parse state: %w", err)
	}
	startedAt, err := dbutils.ParseTimestampColumn(row["started_at"])
	if err != nil {
		return sessionSnapshot{}, fmt.Errorf("failed to parse started_at: %w", err)
	}

	snapshot := sessionSnapshot{
		ID:        sessionID,
		FlowID:    flowID,
		State:     state,
		StartedAt: startedAt,
	}

	if row["finished_at"] != nil {
		finishedAt, err := dbutils.ParseTimestampColumn(row["finished_at"])
		if err != nil {
			return sessionSnapshot{}, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		if !finishedAt.IsZero() {
			snapshot.FinishedAt = &finishedAt
		}
	}

	return snapshot, nil
}
