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

package catalog

import (
	"encoding/json"
	"fmt"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// flowStoreInterface defines the interface for flow catalog store operations.
type flowStoreInterface interface {
	CreateFlow(flow Flow) error
	GetFlow(id string) (Flow, error)
	GetActiveFlowByCompany(companyID string) (Flow, error)
	GetSystemDefaultFlow() (Flow, error)
	UpdateFlow(flow Flow) error
	GetStepsByFlow(flowID string, activeOnly bool) ([]Step, error)
	GetStep(id string) (Step, error)
	CreateStep(step Step) error
	UpdateStep(step Step) error
	DeactivateStep(id string) error
	ReorderSteps(orderedStepIDs []string) error
	GetOptionsByStep(stepID string) ([]StepOption, error)
	GetOption(id string) (StepOption, error)
	CreateOption(option StepOption) error
	UpdateOption(option StepOption) error
	DeleteOption(id string) error
	CheckOptionKeyConflict(stepID, key string) (bool, error)
	GetMaxStepOrder(flowID string) (int, error)
}

// flowStore is the default implementation of flowStoreInterface.
type flowStore struct {
	dbProvider provider.DBProviderInterface
}

// newFlowStore creates a new instance of flowStore.
func newFlowStore() flowStoreInterface {
	return &flowStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateFlow creates a new flow row.
func (s *flowStore) CreateFlow(flow Flow) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateFlow, flow.ID, nullableString(flow.CompanyID), flow.Name,
		flow.FinalBonusCoins, flow.IsActive, dbutils.FormatTimestamp(flow.CreatedAt),
		dbutils.FormatTimestamp(flow.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetFlow retrieves a flow by its id.
func (s *flowStore) GetFlow(id string) (Flow, error) {
	return s.getFlow(queryGetFlowByID, id)
}

// GetActiveFlowByCompany retrieves the active flow owned by a company.
func (s *flowStore) GetActiveFlowByCompany(companyID string) (Flow, error) {
	return s.getFlow(queryGetActiveFlowByCompany, companyID)
}

// GetSystemDefaultFlow retrieves the system default flow.
func (s *flowStore) GetSystemDefaultFlow() (Flow, error) {
	return s.getFlow(queryGetSystemDefaultFlow)
}

// UpdateFlow updates a flow row.
func (s *flowStore) UpdateFlow(flow Flow) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateFlow, flow.ID, flow.Name, flow.FinalBonusCoins,
		flow.IsActive, dbutils.FormatTimestamp(flow.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrFlowNotFound
	}

	return nil
}

// GetStepsByFlow retrieves the steps of a flow in order, with their options attached.
func (s *flowStore) GetStepsByFlow(flowID string, activeOnly bool) ([]Step, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	query := queryGetAllStepsByFlow
	if activeOnly {
		query = queryGetStepsByFlow
	}
	results, err := dbClient.Query(query, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	steps := make([]Step, 0, len(results))
	for _, row := range results {
		step, err := buildStepFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build step: %w", err)
		}
		steps = append(steps, step)
	}

	optionRows, err := dbClient.Query(queryGetOptionsByFlow, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute option query: %w", err)
	}

	optionsByStep := make(map[string][]StepOption)
	for _, row := range optionRows {
		option, err := buildOptionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build option: %w", err)
		}
		optionsByStep[option.StepID] = append(optionsByStep[option.StepID], option)
	}
	for i := range steps {
		steps[i].Options = optionsByStep[steps[i].ID]
	}

	return steps, nil
}

// GetStep retrieves a step by its id, with its options attached.
func (s *flowStore) GetStep(id string) (Step, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Step{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetStepByID, id)
	if err != nil {
		return Step{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Step{}, ErrStepNotFound
	}

	step, err := buildStepFromResultRow(results[0])
	if err != nil {
		return Step{}, err
	}

	options, err := s.GetOptionsByStep(step.ID)
	if err != nil {
		return Step{}, err
	}
	step.Options = options

	return step, nil
}

// CreateStep creates a new step row.
func (s *flowStore) CreateStep(step Step) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	configJSON, err := marshalStepConfig(step.Config)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(queryCreateStep, step.ID, step.FlowID, string(step.Kind), step.Title,
		step.Body, step.IsRequired, step.CoinsAward, step.XPAward, step.OrderIndex, step.IsActive,
		step.IsImmutable, configJSON)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateStep updates a step row.
func (s *flowStore) UpdateStep(step Step) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	configJSON, err := marshalStepConfig(step.Config)
	if err != nil {
		return err
	}

	rowsAffected, err := dbClient.Execute(queryUpdateStep, step.ID, step.Title, step.Body,
		step.IsRequired, step.CoinsAward, step.XPAward, step.IsActive, configJSON)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrStepNotFound
	}

	return nil
}

// DeactivateStep marks a step as inactive.
func (s *flowStore) DeactivateStep(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeactivateStep, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrStepNotFound
	}

	return nil
}

// ReorderSteps re-assigns order positions to the given steps atomically.
// Each step's new position is its index in the slice.
func (s *flowStore) ReorderSteps(orderedStepIDs []string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for index, stepID := range orderedStepIDs {
		if _, err := tx.Exec(dbClient.GetQuery(queryUpdateStepOrder), stepID, index); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return fmt.Errorf("failed to update step order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOptionsByStep retrieves the options of a step in order.
func (s *flowStore) GetOptionsByStep(stepID string) ([]StepOption, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetOptionsByStep, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	options := make([]StepOption, 0, len(results))
	for _, row := range results {
		option, err := buildOptionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build option: %w", err)
		}
		options = append(options, option)
	}

	return options, nil
}

// GetOption retrieves a step option by its id.
func (s *flowStore) GetOption(id string) (StepOption, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetOptionByID, id)
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return StepOption{}, ErrOptionNotFound
	}

	return buildOptionFromResultRow(results[0])
}

// CreateOption creates a new step option row.
func (s *flowStore) CreateOption(option StepOption) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateOption, option.ID, option.StepID, option.Key, option.Title,
		option.Body, option.OrderIndex)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateOption updates a step option row.
func (s *flowStore) UpdateOption(option StepOption) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateOption, option.ID, option.Key, option.Title,
		option.Body, option.OrderIndex)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}

// DeleteOption deletes a step option row.
func (s *flowStore) DeleteOption(id string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteOption, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}

// CheckOptionKeyConflict checks whether a step already has an option with the given key.
func (s *flowStore) CheckOptionKeyConflict(stepID, key string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCheckOptionKeyConflict, stepID, key)
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

// GetMaxStepOrder retrieves the highest active order position in a flow, or -1
// when the flow has no active steps.
func (s *flowStore) GetMaxStepOrder(flowID string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return -1, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetMaxStepOrder, flowID)
	if err != nil {
		return -1, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return -1, nil
	}

	return dbutils.ParseIntColumn(results[0]["max_order"])
}

func (s *flowStore) getFlow(query dbmodel.DBQuery, args ...interface{}) (Flow, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return Flow{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return Flow{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Flow{}, ErrFlowNotFound
	}

	return buildFlowFromResultRow(results[0])
}

// marshalStepConfig serializes a step config for storage.
func marshalStepConfig(config StepConfig) (string, error) {
	if config == nil {
		return "{}", nil
	}
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal step config: %w", err)
	}
	return string(data), nil
}

// nullableString converts an optional string into a driver-friendly value.
func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// buildFlowFromResultRow constructs a Flow from a database result row.
func buildFlowFromResultRow(row map[string]interface{}) (Flow, error) {
	id, err := dbutils.ParseStringColumn(row["flow_id"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse flow_id: %w", err)
	}

	var companyID *string
	if row["company_id"] != nil {
		value, err := dbutils.ParseStringColumn(row["company_id"])
		if err != nil {
			return Flow{}, fmt.Errorf("failed to parse company_id: %w", err)
		}
		if value != "" {
			companyID = &value
		}
	}

	name, err := dbutils.ParseStringColumn(row["name"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse name: %w", err)
	}
	finalBonus, err := dbutils.ParseIntColumn(row["final_bonus_coins"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse final_bonus_coins: %w", err)
	}
	isActive, err := dbutils.ParseBoolColumn(row["is_active"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse is_active: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := dbutils.ParseTimestampColumn(row["updated_at"])
	if err != nil {
		return Flow{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return Flow{
		ID:              id,
		CompanyID:       companyID,
		Name:            name,
		FinalBonusCoins: finalBonus,
		IsActive:        isActive,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

// buildStepFromResultRow constructs a Step from a database result row.
func buildStepFromResultRow(row map[string]interface{}) (Step, error) {
	id, err := dbutils.ParseStringColumn(row["step_id"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse step_id: %w", err)
	}
	flowID, err := dbutils.ParseStringColumn(row["flow_id"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse flow_id: %w", err)
	}
	kind, err := dbutils.ParseStringColumn(row["kind"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse kind: %w", err)
	}
	title, err := dbutils.ParseStringColumn(row["title"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse title: %w", err)
	}
	body, err := dbutils.ParseStringColumn(row["body"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse body: %w", err)
	}
	isRequired, err := dbutils.ParseBoolColumn(row["is_required"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse is_required: %w", err)
	}
	coinsAward, err := dbutils.ParseIntColumn(row["coins_award"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse coins_award: %w", err)
	}
	xpAward, err := dbutils.ParseIntColumn(row["xp_award"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse xp_award: %w", err)
	}
	orderIndex, err := dbutils.ParseIntColumn(row["order_index"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse order_index: %w", err)
	}
	isActive, err := dbutils.ParseBoolColumn(row["is_active"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse is_active: %w", err)
	}
	isImmutable, err := dbutils.ParseBoolColumn(row["is_immutable"])
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse is_immutable: %w", err)
	}

	configRaw := ""
	if row["config"] != nil {
		configRaw, err = dbutils.ParseStringColumn(row["config"])
		if err != nil {
			return Step{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	config, err := ParseStepConfig(StepKind(kind), configRaw)
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse step config: %w", err)
	}

	return Step{
		ID:          id,
		FlowID:      flowID,
		Kind:        StepKind(kind),
		Title:       title,
		Body:        body,
		IsRequired:  isRequired,
		CoinsAward:  coinsAward,
		XPAward:     xpAward,
		OrderIndex:  orderIndex,
		IsActive:    isActive,
		IsImmutable: isImmutable,
		Config:      config,
	}, nil
}

// buildOptionFromResultRow constructs a StepOption from a database result row.
func buildOptionFromResultRow(row map[string]interface{}) (StepOption, error) {
	id, err := dbutils.ParseStringColumn(row["option_id"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse option_id: %w", err)
	}
	stepID, err := dbutils.ParseStringColumn(row["step_id"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse step_id: %w", err)
	}
	key, err := dbutils.ParseStringColumn(row["option_key"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse option_key: %w", err)
	}
	title, err := dbutils.ParseStringColumn(row["title"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse title: %w", err)
	}
	body, err := dbutils.ParseStringColumn(row["body"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse body: %w", err)
	}
	orderIndex, err := dbutils.ParseIntColumn(row["order_index"])
	if err != nil {
		return StepOption{}, fmt.Errorf("failed to parse order_index: %w", err)
	}

	return StepOption{
		ID:         id,
		StepID:     stepID,
		Key:        key,
		Title:      title,
		Body:       body,
		OrderIndex: orderIndex,
	}, nil
}
