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

package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// mockLedgerStore is a func-field mock of ledgerStoreInterface.
type mockLedgerStore struct {
	transferFunc             func(accountID string, events []ScoreEvent) error
	getEventsByAccountFunc   func(accountID string) ([]ScoreEvent, error)
	countEventsBySessionFunc func(sessionID string) (int, error)
}

func (m *mockLedgerStore) Transfer(accountID string, events []ScoreEvent) error {
	return m.transferFunc(accountID, events)
}
func (m *mockLedgerStore) GetEventsByAccount(accountID string) ([]ScoreEvent, error) {
	return m.getEventsByAccountFunc(accountID)
}
func (m *mockLedgerStore) CountEventsBySession(sessionID string) (int, error) {
	return m.countEventsBySessionFunc(sessionID)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	store   *mockLedgerStore
	service *ledgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.store = &mockLedgerStore{}
	suite.service = &ledgerService{store: suite.store}
}

func (suite *LedgerServiceTestSuite) TestTransferCreditsAccount() {
	suite.store.countEventsBySessionFunc = func(sessionID string) (int, error) {
		return 0, nil
	}
	var transferred []ScoreEvent
	suite.store.transferFunc = func(accountID string, events []ScoreEvent) error {
		assert.Equal(suite.T(), "account-1", accountID)
		transferred = events
		return nil
	}

	events := []ScoreEvent{
		{Source: SourceStep, Points: 5, Coins: 5, Meta: "step-intro", SessionID: "session-1"},
		{Source: SourceFinalBonus, Points: 0, Coins: 50, Meta: "flow-1", SessionID: "session-1"},
	}
	svcErr := suite.service.TransferSessionRewards("account-1", "session-1", events)
	assert.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), transferred, 2)
}

func (suite *LedgerServiceTestSuite) TestTransferStampsEventIdentity() {
	suite.store.countEventsBySessionFunc = func(sessionID string) (int, error) {
		return 0, nil
	}
	var transferred []ScoreEvent
	suite.store.transferFunc = func(accountID string, events []ScoreEvent) error {
		transferred = events
		return nil
	}

	// Entries arrive the way the registration path builds them: no ID, no
	// account, no timestamp.
	events := []ScoreEvent{
		{Source: SourceStep, Points: 5, Coins: 5, Meta: "step-intro", SessionID: "session-1"},
		{Source: SourceStep, Points: 5, Coins: 5, Meta: "step-contact", SessionID: "session-1"},
		{Source: SourceFinalBonus, Coins: 50, Meta: "flow-1", SessionID: "session-1"},
	}
	svcErr := suite.service.TransferSessionRewards("account-1", "session-1", events)
	assert.Nil(suite.T(), svcErr)

	seen := make(map[string]bool)
	for _, event := range transferred {
		assert.NotEmpty(suite.T(), event.ID)
		assert.False(suite.T(), seen[event.ID])
		seen[event.ID] = true
		assert.Equal(suite.T(), "account-1", event.AccountID)
		assert.False(suite.T(), event.CreatedAt.IsZero())
	}
}

func (suite *LedgerServiceTestSuite) TestTransferRejectsEmptyEvents() {
	svcErr := suite.service.TransferSessionRewards("account-1", "session-1", nil)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidTransfer.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestTransferRejectsEmptyAccount() {
	svcErr := suite.service.TransferSessionRewards("", "session-1",
		[]ScoreEvent{{Source: SourceStep, Coins: 5}})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInvalidTransfer.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestTransferIsIdempotentPerSession() {
	suite.store.countEventsBySessionFunc = func(sessionID string) (int, error) {
		return 3, nil
	}
	transferred := false
	suite.store.transferFunc = func(accountID string, events []ScoreEvent) error {
		transferred = true
		return nil
	}

	svcErr := suite.service.TransferSessionRewards("account-1", "session-1",
		[]ScoreEvent{{Source: SourceStep, Coins: 5}})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorSessionAlreadyTransferred.Code, svcErr.Code)
	assert.False(suite.T(), transferred)
}

func (suite *LedgerServiceTestSuite) TestTransferStoreFailure() {
	suite.store.countEventsBySessionFunc = func(sessionID string) (int, error) {
		return 0, nil
	}
	suite.store.transferFunc = func(accountID string, events []ScoreEvent) error {
		return errors.New("write failed")
	}

	svcErr := suite.service.TransferSessionRewards("account-1", "session-1",
		[]ScoreEvent{{Source: SourceStep, Coins: 5}})
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *LedgerServiceTestSuite) TestGetEventsByAccount() {
	suite.store.getEventsByAccountFunc = func(accountID string) ([]ScoreEvent, error) {
		return []ScoreEvent{
			{ID: "event-1", AccountID: accountID, Source: SourceStep, Coins: 5},
			{ID: "event-2", AccountID: accountID, Source: SourceRewardPick, Coins: -40},
		}, nil
	}

	events, svcErr := suite.service.GetEventsByAccount("account-1")
	assert.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), events, 2)
	assert.Equal(suite.T(), SourceRewardPick, events[1].Source)
}
