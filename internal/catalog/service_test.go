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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/system/config"
)

// mockFlowStore is a func-field mock of flowStoreInterface.
type mockFlowStore struct {
	createFlowFunc             func(flow Flow) error
	getFlowFunc                func(id string) (Flow, error)
	getActiveFlowByCompanyFunc func(companyID string) (Flow, error)
	getSystemDefaultFlowFunc   func() (Flow, error)
	updateFlowFunc             func(flow Flow) error
	getStepsByFlowFunc         func(flowID string, activeOnly bool) ([]Step, error)
	getStepFunc                func(id string) (Step, error)
	createStepFunc             func(step Step) error
	updateStepFunc             func(step Step) error
	deactivateStepFunc         func(id string) error
	reorderStepsFunc           func(orderedStepIDs []string) error
	getOptionsByStepFunc       func(stepID string) ([]StepOption, error)
	getOptionFunc              func(id string) (StepOption, error)
	createOptionFunc           func(option StepOption) error
	updateOptionFunc           func(option StepOption) error
	deleteOptionFunc           func(id string) error
	checkOptionKeyConflictFunc func(stepID, key string) (bool, error)
	getMaxStepOrderFunc        func(flowID string) (int, error)
}

func (m *mockFlowStore) CreateFlow(flow Flow) error { return m.createFlowFunc(flow) }
func (m *mockFlowStore) GetFlow(id string) (Flow, error) {
	return m.getFlowFunc(id)
}
func (m *mockFlowStore) GetActiveFlowByCompany(companyID string) (Flow, error) {
	return m.getActiveFlowByCompanyFunc(companyID)
}
func (m *mockFlowStore) GetSystemDefaultFlow() (Flow, error) {
	return m.getSystemDefaultFlowFunc()
}
func (m *mockFlowStore) UpdateFlow(flow Flow) error { return m.updateFlowFunc(flow) }
func (m *mockFlowStore) GetStepsByFlow(flowID string, activeOnly bool) ([]Step, error) {
	return m.getStepsByFlowFunc(flowID, activeOnly)
}
func (m *mockFlowStore) GetStep(id string) (Step, error) { return m.getStepFunc(id) }
func (m *mockFlowStore) CreateStep(step Step) error      { return m.createStepFunc(step) }
func (m *mockFlowStore) UpdateStep(step Step) error      { return m.updateStepFunc(step) }
func (m *mockFlowStore) DeactivateStep(id string) error  { return m.deactivateStepFunc(id) }
func (m *mockFlowStore) ReorderSteps(orderedStepIDs []string) error {
	return m.reorderStepsFunc(orderedStepIDs)
}
func (m *mockFlowStore) GetOptionsByStep(stepID string) ([]StepOption, error) {
	return m.getOptionsByStepFunc(stepID)
}
func (m *mockFlowStore) GetOption(id string) (StepOption, error) { return m.getOptionFunc(id) }
func (m *mockFlowStore) CreateOption(option StepOption) error    { return m.createOptionFunc(option) }
func (m *mockFlowStore) UpdateOption(option StepOption) error    { return m.updateOptionFunc(option) }
func (m *mockFlowStore) DeleteOption(id string) error            { return m.deleteOptionFunc(id) }
func (m *mockFlowStore) CheckOptionKeyConflict(stepID, key string) (bool, error) {
	return m.checkOptionKeyConflictFunc(stepID, key)
}
func (m *mockFlowStore) GetMaxStepOrder(flowID string) (int, error) {
	return m.getMaxStepOrderFunc(flowID)
}

type FlowServiceTestSuite struct {
	suite.Suite
	store   *mockFlowStore
	service *flowService
}

func TestFlowServiceSuite(t *testing.T) {
	suite.Run(t, new(FlowServiceTestSuite))
}

func (suite *FlowServiceTestSuite) SetupSuite() {
	_ = config.InitializeOnboardRuntime("", &config.Config{
		Cache: config.CacheConfig{Disabled: true},
	})
}

func (suite *FlowServiceTestSuite) SetupTest() {
	suite.store = &mockFlowStore{}
	suite.service = &flowService{store: suite.store}
}

func activeSteps() []Step {
	return []Step{
		{ID: "step-0", FlowID: "flow-1", Kind: StepKindIntro, Title: "Welcome",
			OrderIndex: 0, IsActive: true},
		{ID: "step-1", FlowID: "flow-1", Kind: StepKindContactCapture, Title: "Contact",
			OrderIndex: 1, IsActive: true, IsRequired: true, IsImmutable: true},
		{ID: "step-2", FlowID: "flow-1", Kind: StepKindSingleChoice, Title: "Interest",
			OrderIndex: 2, IsActive: true},
	}
}

func (suite *FlowServiceTestSuite) TestReorderSuccess() {
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}
	var reordered []string
	suite.store.reorderStepsFunc = func(orderedStepIDs []string) error {
		reordered = orderedStepIDs
		return nil
	}

	svcErr := suite.service.Reorder("flow-1", ReorderRequest{
		OrderedStepIDs: []string{"step-2", "step-1", "step-0"},
	})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), []string{"step-2", "step-1", "step-0"}, reordered)
}

func (suite *FlowServiceTestSuite) TestReorderCountMismatch() {
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}

	svcErr := suite.service.Reorder("flow-1", ReorderRequest{
		OrderedStepIDs: []string{"step-0", "step-1"},
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidReorder.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestReorderUnknownStep() {
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}

	svcErr := suite.service.Reorder("flow-1", ReorderRequest{
		OrderedStepIDs: []string{"step-0", "step-1", "step-9"},
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidReorder.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestReorderDuplicateStep() {
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}

	svcErr := suite.service.Reorder("flow-1", ReorderRequest{
		OrderedStepIDs: []string{"step-0", "step-0", "step-1"},
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidReorder.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestReorderCannotMoveImmutableStep() {
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}

	// step-1 is immutable at position 1; moving it to position 0 is rejected.
	svcErr := suite.service.Reorder("flow-1", ReorderRequest{
		OrderedStepIDs: []string{"step-1", "step-0", "step-2"},
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorImmutableStep.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestCreateStepAppendsAtEnd() {
	suite.store.getFlowFunc = func(id string) (Flow, error) {
		return Flow{ID: id, Name: "Default"}, nil
	}
	suite.store.getMaxStepOrderFunc = func(flowID string) (int, error) {
		return 2, nil
	}
	var created Step
	suite.store.createStepFunc = func(step Step) error {
		created = step
		return nil
	}

	step, svcErr := suite.service.CreateStep("flow-1", StepRequest{
		Kind:       StepKindFreeTextAsk,
		Title:      "Tell us about yourself",
		CoinsAward: 5,
		XPAward:    5,
	})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 3, step.OrderIndex)
	assert.Equal(suite.T(), created.ID, step.ID)
	assert.False(suite.T(), step.IsImmutable)
	assert.True(suite.T(), step.IsActive)
}

func (suite *FlowServiceTestSuite) TestCreateStepRejectsUnknownKind() {
	_, svcErr := suite.service.CreateStep("flow-1", StepRequest{
		Kind:  StepKind("quiz"),
		Title: "Quiz",
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidStepKind.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestUpdateStepRejectsKindChange() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindIntro, Title: "Welcome",
			IsActive: true}, nil
	}

	_, svcErr := suite.service.UpdateStep("step-0", StepRequest{
		Kind:  StepKindSingleChoice,
		Title: "Welcome",
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestUpdateStepCannotDeactivateImmutable() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindContactCapture, Title: "Contact",
			IsActive: true, IsImmutable: true}, nil
	}

	inactive := false
	_, svcErr := suite.service.UpdateStep("step-1", StepRequest{
		Title:    "Contact",
		IsActive: &inactive,
	})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorImmutableStep.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestRemoveStepRejectsImmutable() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindContactCapture,
			IsImmutable: true}, nil
	}

	svcErr := suite.service.RemoveStep("step-1")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorImmutableStep.Code, svcErr.Code)
}

func (suite *FlowServiceTestSuite) TestRemoveStepCompactsOrder() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindSingleChoice, Title: "Interest",
			OrderIndex: 2, IsActive: true}, nil
	}
	deactivated := ""
	suite.store.deactivateStepFunc = func(id string) error {
		deactivated = id
		return nil
	}
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		// Remaining active steps after the deactivation, with a gap at position 2.
		return []Step{
			{ID: "step-0", FlowID: flowID, OrderIndex: 0, IsActive: true},
			{ID: "step-1", FlowID: flowID, OrderIndex: 1, IsActive: true},
			{ID: "step-3", FlowID: flowID, OrderIndex: 3, IsActive: true},
		}, nil
	}
	var reordered []string
	suite.store.reorderStepsFunc = func(orderedStepIDs []string) error {
		reordered = orderedStepIDs
		return nil
	}

	svcErr := suite.service.RemoveStep("step-2")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "step-2", deactivated)
	assert.Equal(suite.T(), []string{"step-0", "step-1", "step-3"}, reordered)
}

func (suite *FlowServiceTestSuite) TestRemoveLastStepSkipsCompaction() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindSingleChoice, Title: "Interest",
			OrderIndex: 2, IsActive: true}, nil
	}
	suite.store.deactivateStepFunc = func(id string) error { return nil }
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return []Step{
			{ID: "step-0", FlowID: flowID, OrderIndex: 0, IsActive: true},
			{ID: "step-1", FlowID: flowID, OrderIndex: 1, IsActive: true},
		}, nil
	}
	suite.store.reorderStepsFunc = func(orderedStepIDs []string) error {
		suite.T().Fatal("contiguous positions must not be reordered")
		return nil
	}

	svcErr := suite.service.RemoveStep("step-2")
	assert.Nil(suite.T(), svcErr)
}

func (suite *FlowServiceTestSuite) TestUpdateStepDeactivationCompactsOrder() {
	suite.store.getStepFunc = func(id string) (Step, error) {
		return Step{ID: id, FlowID: "flow-1", Kind: StepKindIntro, Title: "Welcome",
			OrderIndex: 0, IsActive: true}, nil
	}
	suite.store.updateStepFunc = func(step Step) error { return nil }
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return []Step{
			{ID: "step-1", FlowID: flowID, OrderIndex: 1, IsActive: true},
			{ID: "step-2", FlowID: flowID, OrderIndex: 2, IsActive: true},
		}, nil
	}
	var reordered []string
	suite.store.reorderStepsFunc = func(orderedStepIDs []string) error {
		reordered = orderedStepIDs
		return nil
	}

	inactive := false
	step, svcErr := suite.service.UpdateStep("step-0", StepRequest{
		Title:    "Welcome",
		IsActive: &inactive,
	})
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), step.IsActive)
	assert.Equal(suite.T(), []string{"step-1", "step-2"}, reordered)
}

func (suite *FlowServiceTestSuite) TestCloneFlowGetsFreshIdentity() {
	companyID := "company-9"
	suite.store.getFlowFunc = func(id string) (Flow, error) {
		return Flow{ID: id, Name: "Default", FinalBonusCoins: 50, IsActive: true}, nil
	}
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		steps := activeSteps()
		steps[2].Options = []StepOption{
			{ID: "opt-1", StepID: "step-2", Key: "intro_now", Title: "Right away"},
			{ID: "opt-2", StepID: "step-2", Key: "later", Title: "Later"},
		}
		return steps, nil
	}
	createdSteps := make([]Step, 0)
	createdOptions := make([]StepOption, 0)
	suite.store.createFlowFunc = func(flow Flow) error { return nil }
	suite.store.createStepFunc = func(step Step) error {
		createdSteps = append(createdSteps, step)
		return nil
	}
	suite.store.createOptionFunc = func(option StepOption) error {
		createdOptions = append(createdOptions, option)
		return nil
	}

	detail, svcErr := suite.service.CloneFlow("flow-1", companyID)
	assert.Nil(suite.T(), svcErr)
	assert.NotEqual(suite.T(), "flow-1", detail.Flow.ID)
	assert.Equal(suite.T(), &companyID, detail.Flow.CompanyID)
	assert.Equal(suite.T(), 50, detail.Flow.FinalBonusCoins)
	assert.Len(suite.T(), createdSteps, 3)
	assert.Len(suite.T(), createdOptions, 2)

	for i, step := range detail.Steps {
		assert.NotEqual(suite.T(), activeSteps()[i].ID, step.ID)
		assert.Equal(suite.T(), activeSteps()[i].OrderIndex, step.OrderIndex)
		assert.Equal(suite.T(), detail.Flow.ID, step.FlowID)
	}
	for _, option := range createdOptions {
		assert.NotEqual(suite.T(), "step-2", option.StepID)
	}
}

func (suite *FlowServiceTestSuite) TestGetFlowForCompanyFallsBackToSystemDefault() {
	suite.store.getActiveFlowByCompanyFunc = func(companyID string) (Flow, error) {
		return Flow{}, ErrFlowNotFound
	}
	suite.store.getSystemDefaultFlowFunc = func() (Flow, error) {
		return Flow{ID: "system-flow", Name: "Default"}, nil
	}
	suite.store.getFlowFunc = func(id string) (Flow, error) {
		return Flow{ID: id, Name: "Default"}, nil
	}
	suite.store.getStepsByFlowFunc = func(flowID string, activeOnly bool) ([]Step, error) {
		return activeSteps(), nil
	}

	detail, svcErr := suite.service.GetFlowForCompany("company-1")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "system-flow", detail.Flow.ID)
	assert.Nil(suite.T(), detail.Flow.CompanyID)
}
