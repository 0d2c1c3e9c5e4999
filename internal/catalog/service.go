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

// Package catalog manages onboarding flow templates, their steps and options.
package catalog

import (
	"errors"
	"time"

	"github.com/salesjourney/onboard/internal/system/cache"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	"github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "FlowCatalogService"

const flowDetailCacheName = "FlowDetailCache"

// FlowServiceInterface defines the interface for flow catalog service operations.
type FlowServiceInterface interface {
	CreateFlow(companyID *string, request FlowRequest) (*Flow, *serviceerror.ServiceError)
	GetFlow(id string) (*FlowDetail, *serviceerror.ServiceError)
	UpdateFlow(id string, request FlowRequest) (*Flow, *serviceerror.ServiceError)
	CloneFlow(sourceFlowID, targetCompanyID string) (*FlowDetail, *serviceerror.ServiceError)
	GetFlowForCompany(companyID string) (*FlowDetail, *serviceerror.ServiceError)
	GetSystemDefaultFlow() (*FlowDetail, *serviceerror.ServiceError)
	ListSteps(flowID string, includeInactive bool) ([]Step, *serviceerror.ServiceError)
	Reorder(flowID string, request ReorderRequest) *serviceerror.ServiceError
	CreateStep(flowID string, request StepRequest) (*Step, *serviceerror.ServiceError)
	GetStep(id string) (*Step, *serviceerror.ServiceError)
	UpdateStep(id string, request StepRequest) (*Step, *serviceerror.ServiceError)
	RemoveStep(id string) *serviceerror.ServiceError
	CreateOption(stepID string, request OptionRequest) (*StepOption, *serviceerror.ServiceError)
	UpdateOption(id string, request OptionRequest) (*StepOption, *serviceerror.ServiceError)
	DeleteOption(id string) *serviceerror.ServiceError
}

// flowService is the default implementation of FlowServiceInterface.
type flowService struct {
	store flowStoreInterface
}

// newFlowService creates a new instance of flowService.
func newFlowService() FlowServiceInterface {
	return &flowService{
		store: newFlowStore(),
	}
}

// CreateFlow creates a new flow for a company, or a system flow when companyID is nil.
func (fs *flowService) CreateFlow(companyID *string, request FlowRequest) (
	*Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Name == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Flow name is required")
		return nil, &svcErr
	}
	if request.FinalBonusCoins < 0 {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Final bonus coins cannot be negative")
		return nil, &svcErr
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	now := time.Now().UTC()
	flow := Flow{
		ID:              utils.GenerateUUID(),
		CompanyID:       companyID,
		Name:            request.Name,
		FinalBonusCoins: request.FinalBonusCoins,
		IsActive:        isActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := fs.store.CreateFlow(flow); err != nil {
		logger.Error("Failed to create flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Successfully created flow", log.String(log.LoggerKeyFlowID, flow.ID))
	return &flow, nil
}

// GetFlow retrieves a flow with its active steps.
func (fs *flowService) GetFlow(id string) (*FlowDetail, *serviceerror.ServiceError) {
	return fs.getFlowDetail(id)
}

// UpdateFlow updates a flow's name, bonus and active state.
func (fs *flowService) UpdateFlow(id string, request FlowRequest) (*Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Name == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Flow name is required")
		return nil, &svcErr
	}

	flow, err := fs.store.GetFlow(id)
	if err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return nil, &ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	flow.Name = request.Name
	flow.FinalBonusCoins = request.FinalBonusCoins
	if request.IsActive != nil {
		flow.IsActive = *request.IsActive
	}
	flow.UpdatedAt = time.Now().UTC()

	if err := fs.store.UpdateFlow(flow); err != nil {
		logger.Error("Failed to update flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	invalidateFlowCache(flow.ID)

	return &flow, nil
}

// CloneFlow deep copies a flow and its steps and options for a target company.
// Every cloned entity gets a fresh id while ordering is preserved.
func (fs *flowService) CloneFlow(sourceFlowID, targetCompanyID string) (
	*FlowDetail, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	source, svcErr := fs.getFlowDetail(sourceFlowID)
	if svcErr != nil {
		return nil, svcErr
	}

	now := time.Now().UTC()
	cloned := Flow{
		ID:              utils.GenerateUUID(),
		CompanyID:       &targetCompanyID,
		Name:            source.Flow.Name,
		FinalBonusCoins: source.Flow.FinalBonusCoins,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := fs.store.CreateFlow(cloned); err != nil {
		logger.Error("Failed to create cloned flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	clonedSteps := make([]Step, 0, len(source.Steps))
	for _, step := range source.Steps {
		clonedStep := step
		clonedStep.ID = utils.GenerateUUID()
		clonedStep.FlowID = cloned.ID
		clonedStep.Options = nil
		if err := fs.store.CreateStep(clonedStep); err != nil {
			logger.Error("Failed to create cloned step", log.Error(err))
			return nil, &ErrorInternalServerError
		}
		for _, option := range step.Options {
			clonedOption := option
			clonedOption.ID = utils.GenerateUUID()
			clonedOption.StepID = clonedStep.ID
			if err := fs.store.CreateOption(clonedOption); err != nil {
				logger.Error("Failed to create cloned option", log.Error(err))
				return nil, &ErrorInternalServerError
			}
			clonedStep.Options = append(clonedStep.Options, clonedOption)
		}
		clonedSteps = append(clonedSteps, clonedStep)
	}

	logger.Debug("Successfully cloned flow", log.String(log.LoggerKeyFlowID, cloned.ID),
		log.String("sourceFlowId", sourceFlowID))
	return &FlowDetail{Flow: cloned, Steps: clonedSteps}, nil
}

// GetFlowForCompany returns the company's active flow, or the system default
// when the company has not authored one.
func (fs *flowService) GetFlowForCompany(companyID string) (*FlowDetail, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	flow, err := fs.store.GetActiveFlowByCompany(companyID)
	if err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return fs.GetSystemDefaultFlow()
		}
		logger.Error("Failed to get company flow", log.Error(err),
			log.String(log.LoggerKeyCompanyID, companyID))
		return nil, &ErrorInternalServerError
	}

	return fs.getFlowDetail(flow.ID)
}

// GetSystemDefaultFlow returns the flow that is not owned by any company.
func (fs *flowService) GetSystemDefaultFlow() (*FlowDetail, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	flow, err := fs.store.GetSystemDefaultFlow()
	if err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return nil, &ErrorFlowNotFound
		}
		logger.Error("Failed to get system default flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return fs.getFlowDetail(flow.ID)
}

// ListSteps lists the steps of a flow in order. Active steps only by default.
func (fs *flowService) ListSteps(flowID string, includeInactive bool) (
	[]Step, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if _, err := fs.store.GetFlow(flowID); err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return nil, &ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	steps, err := fs.store.GetStepsByFlow(flowID, !includeInactive)
	if err != nil {
		logger.Error("Failed to list steps", log.Error(err), log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}

	return steps, nil
}

// Reorder re-assigns contiguous order positions to the active steps of a flow.
// The request must name every active step exactly once, and the contact capture
// step keeps its position once marked immutable.
func (fs *flowService) Reorder(flowID string, request ReorderRequest) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	steps, err := fs.store.GetStepsByFlow(flowID, true)
	if err != nil {
		logger.Error("Failed to get steps", log.Error(err), log.String(log.LoggerKeyFlowID, flowID))
		return &ErrorInternalServerError
	}
	if len(steps) == 0 {
		return &ErrorNoActiveSteps
	}
	if len(request.OrderedStepIDs) != len(steps) {
		svcErr := ErrorInvalidReorder.WithDescription(
			"The number of ordered step ids does not match the number of active steps")
		return &svcErr
	}

	stepsByID := make(map[string]Step, len(steps))
	for _, step := range steps {
		stepsByID[step.ID] = step
	}
	seen := make(map[string]bool, len(request.OrderedStepIDs))
	for index, stepID := range request.OrderedStepIDs {
		step, exists := stepsByID[stepID]
		if !exists {
			svcErr := ErrorInvalidReorder.WithDescription(
				"Step " + stepID + " does not belong to the flow's active steps")
			return &svcErr
		}
		if seen[stepID] {
			svcErr := ErrorInvalidReorder.WithDescription("Step " + stepID + " appears more than once")
			return &svcErr
		}
		seen[stepID] = true
		if step.IsImmutable && step.OrderIndex != index {
			return &ErrorImmutableStep
		}
	}

	if err := fs.store.ReorderSteps(request.OrderedStepIDs); err != nil {
		logger.Error("Failed to reorder steps", log.Error(err), log.String(log.LoggerKeyFlowID, flowID))
		return &ErrorInternalServerError
	}
	invalidateFlowCache(flowID)

	return nil
}

// CreateStep appends a new step to a flow.
func (fs *flowService) CreateStep(flowID string, request StepRequest) (
	*Step, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if !request.Kind.IsValid() {
		return nil, &ErrorInvalidStepKind
	}
	if request.Title == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Step title is required")
		return nil, &svcErr
	}

	if _, err := fs.store.GetFlow(flowID); err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return nil, &ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	config, err := ParseStepConfig(request.Kind, string(request.Config))
	if err != nil {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Step config is malformed: " + err.Error())
		return nil, &svcErr
	}

	// Active positions are kept contiguous, so the next append position is
	// one past the highest active position.
	maxOrder, err := fs.store.GetMaxStepOrder(flowID)
	if err != nil {
		logger.Error("Failed to get max step order", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	step := Step{
		ID:          utils.GenerateUUID(),
		FlowID:      flowID,
		Kind:        request.Kind,
		Title:       request.Title,
		Body:        request.Body,
		IsRequired:  request.IsRequired,
		CoinsAward:  request.CoinsAward,
		XPAward:     request.XPAward,
		OrderIndex:  maxOrder + 1,
		IsActive:    isActive,
		IsImmutable: false,
		Config:      config,
	}
	if err := fs.store.CreateStep(step); err != nil {
		logger.Error("Failed to create step", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	invalidateFlowCache(flowID)

	logger.Debug("Successfully created step", log.String(log.LoggerKeyStepID, step.ID),
		log.String(log.LoggerKeyFlowID, flowID))
	return &step, nil
}

// GetStep retrieves a step by id.
func (fs *flowService) GetStep(id string) (*Step, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	step, err := fs.store.GetStep(id)
	if err != nil {
		if errors.Is(err, ErrStepNotFound) {
			return nil, &ErrorStepNotFound
		}
		logger.Error("Failed to get step", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &step, nil
}

// UpdateStep updates a step's content and awards. The step's kind is fixed at
// creation, and an immutable step cannot be deactivated.
func (fs *flowService) UpdateStep(id string, request StepRequest) (*Step, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Title == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Step title is required")
		return nil, &svcErr
	}

	step, err := fs.store.GetStep(id)
	if err != nil {
		if errors.Is(err, ErrStepNotFound) {
			return nil, &ErrorStepNotFound
		}
		logger.Error("Failed to get step", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if request.Kind != "" && request.Kind != step.Kind {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Step kind cannot be changed")
		return nil, &svcErr
	}
	if step.IsImmutable && request.IsActive != nil && !*request.IsActive {
		return nil, &ErrorImmutableStep
	}
	wasActive := step.IsActive

	if len(request.Config) > 0 {
		config, err := ParseStepConfig(step.Kind, string(request.Config))
		if err != nil {
			svcErr := ErrorInvalidRequestFormat.WithDescription("Step config is malformed: " + err.Error())
			return nil, &svcErr
		}
		step.Config = config
	}

	step.Title = request.Title
	step.Body = request.Body
	step.IsRequired = request.IsRequired
	step.CoinsAward = request.CoinsAward
	step.XPAward = request.XPAward
	if request.IsActive != nil {
		step.IsActive = *request.IsActive
	}

	if err := fs.store.UpdateStep(step); err != nil {
		logger.Error("Failed to update step", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if step.IsActive != wasActive {
		if err := fs.compactStepOrder(step.FlowID); err != nil {
			logger.Error("Failed to compact step order", log.Error(err))
			return nil, &ErrorInternalServerError
		}
	}
	invalidateFlowCache(step.FlowID)

	return &step, nil
}

// RemoveStep deactivates a step. Immutable steps cannot be removed.
func (fs *flowService) RemoveStep(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	step, err := fs.store.GetStep(id)
	if err != nil {
		if errors.Is(err, ErrStepNotFound) {
			return &ErrorStepNotFound
		}
		logger.Error("Failed to get step", log.Error(err))
		return &ErrorInternalServerError
	}
	if step.IsImmutable {
		return &ErrorImmutableStep
	}

	if err := fs.store.DeactivateStep(id); err != nil {
		logger.Error("Failed to deactivate step", log.Error(err))
		return &ErrorInternalServerError
	}
	if err := fs.compactStepOrder(step.FlowID); err != nil {
		logger.Error("Failed to compact step order", log.Error(err))
		return &ErrorInternalServerError
	}
	invalidateFlowCache(step.FlowID)

	return nil
}

// compactStepOrder re-assigns contiguous positions to a flow's active steps
// after an activation change leaves a gap in the ordering.
func (fs *flowService) compactStepOrder(flowID string) error {
	steps, err := fs.store.GetStepsByFlow(flowID, true)
	if err != nil {
		return err
	}

	orderedStepIDs := make([]string, 0, len(steps))
	needsCompaction := false
	for index, step := range steps {
		orderedStepIDs = append(orderedStepIDs, step.ID)
		if step.OrderIndex != index {
			needsCompaction = true
		}
	}
	if !needsCompaction {
		return nil
	}

	return fs.store.ReorderSteps(orderedStepIDs)
}

// CreateOption adds a new option to a step. Option keys are unique per step.
func (fs *flowService) CreateOption(stepID string, request OptionRequest) (
	*StepOption, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Key == "" || request.Title == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Option key and title are required")
		return nil, &svcErr
	}

	step, err := fs.store.GetStep(stepID)
	if err != nil {
		if errors.Is(err, ErrStepNotFound) {
			return nil, &ErrorStepNotFound
		}
		logger.Error("Failed to get step", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	conflict, err := fs.store.CheckOptionKeyConflict(stepID, request.Key)
	if err != nil {
		logger.Error("Failed to check option key conflict", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if conflict {
		return nil, &ErrorOptionKeyConflict
	}

	option := StepOption{
		ID:         utils.GenerateUUID(),
		StepID:     stepID,
		Key:        request.Key,
		Title:      request.Title,
		Body:       request.Body,
		OrderIndex: request.OrderIndex,
	}
	if err := fs.store.CreateOption(option); err != nil {
		logger.Error("Failed to create option", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	invalidateFlowCache(step.FlowID)

	return &option, nil
}

// UpdateOption updates an option's key, content and position.
func (fs *flowService) UpdateOption(id string, request OptionRequest) (
	*StepOption, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if request.Key == "" || request.Title == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Option key and title are required")
		return nil, &svcErr
	}

	option, err := fs.store.GetOption(id)
	if err != nil {
		if errors.Is(err, ErrOptionNotFound) {
			return nil, &ErrorOptionNotFound
		}
		logger.Error("Failed to get option", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if request.Key != option.Key {
		conflict, err := fs.store.CheckOptionKeyConflict(option.StepID, request.Key)
		if err != nil {
			logger.Error("Failed to check option key conflict", log.Error(err))
			return nil, &ErrorInternalServerError
		}
		if conflict {
			return nil, &ErrorOptionKeyConflict
		}
	}

	option.Key = request.Key
	option.Title = request.Title
	option.Body = request.Body
	option.OrderIndex = request.OrderIndex

	if err := fs.store.UpdateOption(option); err != nil {
		logger.Error("Failed to update option", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	fs.invalidateFlowCacheForStep(option.StepID)

	return &option, nil
}

// DeleteOption deletes a step option.
func (fs *flowService) DeleteOption(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	option, err := fs.store.GetOption(id)
	if err != nil {
		if errors.Is(err, ErrOptionNotFound) {
			return &ErrorOptionNotFound
		}
		logger.Error("Failed to get option", log.Error(err))
		return &ErrorInternalServerError
	}

	if err := fs.store.DeleteOption(id); err != nil {
		logger.Error("Failed to delete option", log.Error(err))
		return &ErrorInternalServerError
	}
	fs.invalidateFlowCacheForStep(option.StepID)

	return nil
}

// getFlowDetail resolves a flow with its active steps, through the cache.
func (fs *flowService) getFlowDetail(flowID string) (*FlowDetail, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	cacheManager := cache.GetCacheManager[FlowDetail](flowDetailCacheName)
	if detail, found := cacheManager.Get(cache.CacheKey{Key: flowID}); found {
		return &detail, nil
	}

	flow, err := fs.store.GetFlow(flowID)
	if err != nil {
		if errors.Is(err, ErrFlowNotFound) {
			return nil, &ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err), log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}

	steps, err := fs.store.GetStepsByFlow(flowID, true)
	if err != nil {
		logger.Error("Failed to get flow steps", log.Error(err),
			log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}

	detail := FlowDetail{Flow: flow, Steps: steps}
	if err := cacheManager.Set(cache.CacheKey{Key: flowID}, detail); err != nil {
		logger.Debug("Failed to cache flow detail", log.Error(err))
	}

	return &detail, nil
}

// invalidateFlowCacheForStep drops the cached detail of the flow owning a step.
func (fs *flowService) invalidateFlowCacheForStep(stepID string) {
	step, err := fs.store.GetStep(stepID)
	if err != nil {
		return
	}
	invalidateFlowCache(step.FlowID)
}

// invalidateFlowCache drops the cached detail of a flow after an authoring write.
func invalidateFlowCache(flowID string) {
	cacheManager := cache.GetCacheManager[FlowDetail](flowDetailCacheName)
	_ = cacheManager.Delete(cache.CacheKey{Key: flowID})
}
