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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/ledger"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// mockAccountStore is a func-field mock of accountStoreInterface.
type mockAccountStore struct {
	createAccountFunc      func(account Account) error
	getAccountFunc         func(id string) (Account, error)
	getAccountByEmailFunc  func(email string) (Account, error)
	checkEmailConflictFunc func(email string) (bool, error)
}

func (m *mockAccountStore) CreateAccount(account Account) error {
	return m.createAccountFunc(account)
}
func (m *mockAccountStore) GetAccount(id string) (Account, error) {
	return m.getAccountFunc(id)
}
func (m *mockAccountStore) GetAccountByEmail(email string) (Account, error) {
	return m.getAccountByEmailFunc(email)
}
func (m *mockAccountStore) CheckEmailConflict(email string) (bool, error) {
	return m.checkEmailConflictFunc(email)
}

// mockSessionService is a func-field mock of session.SessionServiceInterface.
type mockSessionService struct {
	getSessionByTokenFunc func(token string) (*session.Session, *serviceerror.ServiceError)
	getStepRecordsFunc    func(sessionID string) (
		[]session.SessionStepRecord, *serviceerror.ServiceError)
	attachAccountFunc func(sessionID, accountID, name, email string) (
		*session.Session, *serviceerror.ServiceError)
}

func (m *mockSessionService) Start(code, callerToken string) (
	*session.StartResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) GetState(token string) (
	*session.StateResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) SubmitStep(token, stepID string, payload catalog.StepPayload) (
	*session.SubmitStepResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) Finish(token string) (
	*session.FinishResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) PickReward(token, storeItemID string) (
	*session.PickRewardResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) GetInterviewInfo(token string) (
	*session.InterviewResponse, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockSessionService) GetSessionByToken(token string) (
	*session.Session, *serviceerror.ServiceError) {
	return m.getSessionByTokenFunc(token)
}
func (m *mockSessionService) GetStepRecords(sessionID string) (
	[]session.SessionStepRecord, *serviceerror.ServiceError) {
	return m.getStepRecordsFunc(sessionID)
}
func (m *mockSessionService) AttachAccount(sessionID, accountID, name, email string) (
	*session.Session, *serviceerror.ServiceError) {
	return m.attachAccountFunc(sessionID, accountID, name, email)
}

// mockLedgerService is a func-field mock of ledger.LedgerServiceInterface.
type mockLedgerService struct {
	transferSessionRewardsFunc func(accountID, sessionID string,
		events []ledger.ScoreEvent) *serviceerror.ServiceError
}

func (m *mockLedgerService) TransferSessionRewards(accountID, sessionID string,
	events []ledger.ScoreEvent) *serviceerror.ServiceError {
	return m.transferSessionRewardsFunc(accountID, sessionID, events)
}
func (m *mockLedgerService) GetEventsByAccount(accountID string) (
	[]ledger.ScoreEvent, *serviceerror.ServiceError) {
	return nil, nil
}

// mockFlowService is a func-field mock of catalog.FlowServiceInterface.
type mockFlowService struct {
	getFlowFunc func(id string) (*catalog.FlowDetail, *serviceerror.ServiceError)
}

func (m *mockFlowService) CreateFlow(companyID *string, request catalog.FlowRequest) (
	*catalog.Flow, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetFlow(id string) (*catalog.FlowDetail, *serviceerror.ServiceError) {
	return m.getFlowFunc(id)
}
func (m *mockFlowService) UpdateFlow(id string, request catalog.FlowRequest) (
	*catalog.Flow, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) CloneFlow(sourceFlowID, targetCompanyID string) (
	*catalog.FlowDetail, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetFlowForCompany(companyID string) (
	*catalog.FlowDetail, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetSystemDefaultFlow() (*catalog.FlowDetail, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) ListSteps(flowID string, includeInactive bool) (
	[]catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) Reorder(flowID string, request catalog.ReorderRequest) *serviceerror.ServiceError {
	return nil
}
func (m *mockFlowService) CreateStep(flowID string, request catalog.StepRequest) (
	*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) GetStep(id string) (*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) UpdateStep(id string, request catalog.StepRequest) (
	*catalog.Step, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) RemoveStep(id string) *serviceerror.ServiceError { return nil }
func (m *mockFlowService) CreateOption(stepID string, request catalog.OptionRequest) (
	*catalog.StepOption, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) UpdateOption(id string, request catalog.OptionRequest) (
	*catalog.StepOption, *serviceerror.ServiceError) {
	return nil, nil
}
func (m *mockFlowService) DeleteOption(id string) *serviceerror.ServiceError { return nil }

type AccountServiceTestSuite struct {
	suite.Suite
	store          *mockAccountStore
	sessionService *mockSessionService
	ledgerService  *mockLedgerService
	flowService    *mockFlowService
	service        *accountService
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.store = &mockAccountStore{}
	suite.sessionService = &mockSessionService{}
	suite.ledgerService = &mockLedgerService{}
	suite.flowService = &mockFlowService{}
	suite.service = &accountService{
		store:          suite.store,
		sessionService: suite.sessionService,
		ledgerService:  suite.ledgerService,
		flowService:    suite.flowService,
	}
}

func (suite *AccountServiceTestSuite) TestRegisterRejectsInvalidEmail() {
	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "not-an-email", Name: "Jamie", SessionToken: "token-1"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)

	_, svcErr = suite.service.Register(RegisterRequest{
		Email: "jamie@example.com", Name: "  ", SessionToken: "token-1"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *AccountServiceTestSuite) TestRegisterUnresolvableSessionUnauthorized() {
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return nil, &session.ErrorUnauthorized
	}

	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "jamie@example.com", Name: "Jamie", SessionToken: "stale-token"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorUnauthorized.Code, svcErr.Code)
}

func (suite *AccountServiceTestSuite) TestRegisterTwiceConflicts() {
	accountID := "account-1"
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: "session-1", AccountID: &accountID}, nil
	}

	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "jamie@example.com", Name: "Jamie", SessionToken: "token-1"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorAlreadyRegistered.Code, svcErr.Code)
}

func (suite *AccountServiceTestSuite) TestRegisterEmailConflict() {
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: "session-1", CompanyID: "company-1"}, nil
	}
	suite.store.checkEmailConflictFunc = func(email string) (bool, error) {
		return true, nil
	}

	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "Jamie@Example.com", Name: "Jamie", SessionToken: "token-1"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorEmailConflict.Code, svcErr.Code)
}

func (suite *AccountServiceTestSuite) TestRegisterTransfersSessionRewards() {
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: "session-1", CompanyID: "company-1", FlowID: "flow-1",
			State: session.StateFinished, CoinsTotal: 65, XPTotal: 15}, nil
	}
	suite.store.checkEmailConflictFunc = func(email string) (bool, error) {
		return false, nil
	}
	var createdEmail string
	suite.store.createAccountFunc = func(account Account) error {
		createdEmail = account.Email
		return nil
	}
	suite.sessionService.attachAccountFunc = func(sessionID, accountID, name, email string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: sessionID, CompanyID: "company-1", FlowID: "flow-1",
			State: session.StateFinished, CoinsTotal: 65, XPTotal: 15,
			AccountID: &accountID}, nil
	}
	suite.sessionService.getStepRecordsFunc = func(sessionID string) (
		[]session.SessionStepRecord, *serviceerror.ServiceError) {
		return []session.SessionStepRecord{
			{StepID: "step-intro", CoinsAwarded: 5, XPAwarded: 5},
			{StepID: "step-contact", CoinsAwarded: 5, XPAwarded: 5},
			{StepID: "step-choice", CoinsAwarded: 5, XPAwarded: 5},
		}, nil
	}
	suite.flowService.getFlowFunc = func(id string) (
		*catalog.FlowDetail, *serviceerror.ServiceError) {
		return &catalog.FlowDetail{Flow: catalog.Flow{ID: id, FinalBonusCoins: 50}}, nil
	}
	var transferred []ledger.ScoreEvent
	suite.ledgerService.transferSessionRewardsFunc = func(accountID, sessionID string,
		events []ledger.ScoreEvent) *serviceerror.ServiceError {
		transferred = events
		return nil
	}
	suite.store.getAccountFunc = func(id string) (Account, error) {
		return Account{ID: id, Email: "jamie@example.com", DisplayName: "Jamie",
			CompanyID: "company-1", Coins: 65, XP: 15}, nil
	}

	response, svcErr := suite.service.Register(RegisterRequest{
		Email: " Jamie@Example.com ", Name: "Jamie", SessionToken: "token-1"})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "jamie@example.com", createdEmail)
	assert.Equal(suite.T(), 65, response.Account.Coins)

	// Three step credits plus the completion bonus; totals match the session.
	assert.Len(suite.T(), transferred, 4)
	coinSum := 0
	for _, event := range transferred {
		coinSum += event.Coins
	}
	assert.Equal(suite.T(), 65, coinSum)
	assert.Equal(suite.T(), ledger.SourceFinalBonus, transferred[3].Source)
	assert.Equal(suite.T(), "flow-1", transferred[3].Meta)
}

func (suite *AccountServiceTestSuite) TestRegisterDebitsPreRegistrationRewardPick() {
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: "session-1", CompanyID: "company-1", FlowID: "flow-1",
			State: session.StateFinished, CoinsTotal: 25, XPTotal: 15}, nil
	}
	suite.store.checkEmailConflictFunc = func(email string) (bool, error) {
		return false, nil
	}
	suite.store.createAccountFunc = func(account Account) error { return nil }
	suite.sessionService.attachAccountFunc = func(sessionID, accountID, name, email string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: sessionID, CompanyID: "company-1", FlowID: "flow-1",
			State: session.StateFinished, CoinsTotal: 25, XPTotal: 15,
			AccountID: &accountID}, nil
	}
	suite.sessionService.getStepRecordsFunc = func(sessionID string) (
		[]session.SessionStepRecord, *serviceerror.ServiceError) {
		return []session.SessionStepRecord{
			{StepID: "step-intro", CoinsAwarded: 5, XPAwarded: 5},
			{StepID: "step-contact", CoinsAwarded: 5, XPAwarded: 5},
			{StepID: "step-choice", CoinsAwarded: 5, XPAwarded: 5},
		}, nil
	}
	suite.flowService.getFlowFunc = func(id string) (
		*catalog.FlowDetail, *serviceerror.ServiceError) {
		return &catalog.FlowDetail{Flow: catalog.Flow{ID: id, FinalBonusCoins: 50}}, nil
	}
	var transferred []ledger.ScoreEvent
	suite.ledgerService.transferSessionRewardsFunc = func(accountID, sessionID string,
		events []ledger.ScoreEvent) *serviceerror.ServiceError {
		transferred = events
		return nil
	}
	suite.store.getAccountFunc = func(id string) (Account, error) {
		return Account{ID: id, Coins: 25, XP: 15}, nil
	}

	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "jamie@example.com", Name: "Jamie", SessionToken: "token-1"})
	assert.Nil(suite.T(), svcErr)

	// The 40-coin reward picked before registration shows up as a debit entry.
	assert.Len(suite.T(), transferred, 5)
	debit := transferred[4]
	assert.Equal(suite.T(), ledger.SourceRewardPick, debit.Source)
	assert.Equal(suite.T(), -40, debit.Coins)
	coinSum := 0
	for _, event := range transferred {
		coinSum += event.Coins
	}
	assert.Equal(suite.T(), 25, coinSum)
}

func (suite *AccountServiceTestSuite) TestRegisterPropagatesTransferConflict() {
	suite.sessionService.getSessionByTokenFunc = func(token string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: "session-1", CompanyID: "company-1", FlowID: "flow-1",
			State: session.StateInProgress, CoinsTotal: 5}, nil
	}
	suite.store.checkEmailConflictFunc = func(email string) (bool, error) {
		return false, nil
	}
	suite.store.createAccountFunc = func(account Account) error { return nil }
	suite.sessionService.attachAccountFunc = func(sessionID, accountID, name, email string) (
		*session.Session, *serviceerror.ServiceError) {
		return &session.Session{ID: sessionID, FlowID: "flow-1",
			State: session.StateInProgress, CoinsTotal: 5, AccountID: &accountID}, nil
	}
	suite.sessionService.getStepRecordsFunc = func(sessionID string) (
		[]session.SessionStepRecord, *serviceerror.ServiceError) {
		return []session.SessionStepRecord{{StepID: "step-intro", CoinsAwarded: 5}}, nil
	}
	suite.ledgerService.transferSessionRewardsFunc = func(accountID, sessionID string,
		events []ledger.ScoreEvent) *serviceerror.ServiceError {
		return &ledger.ErrorSessionAlreadyTransferred
	}

	_, svcErr := suite.service.Register(RegisterRequest{
		Email: "jamie@example.com", Name: "Jamie", SessionToken: "token-1"})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ledger.ErrorSessionAlreadyTransferred.Code, svcErr.Code)
}

func (suite *AccountServiceTestSuite) TestGetAccountNotFound() {
	suite.store.getAccountFunc = func(id string) (Account, error) {
		return Account{}, ErrAccountNotFound
	}

	_, svcErr := suite.service.GetAccount("account-missing")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorAccountNotFound.Code, svcErr.Code)
}
