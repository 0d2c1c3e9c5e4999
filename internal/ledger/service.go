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

// Package ledger records score events and keeps account totals consistent.
package ledger

import (
	"time"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	"github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "LedgerService"

// LedgerServiceInterface defines the interface for economy ledger service operations.
type LedgerServiceInterface interface {
	TransferSessionRewards(accountID, sessionID string,
		events []ScoreEvent) *serviceerror.ServiceError
	GetEventsByAccount(accountID string) ([]ScoreEvent, *serviceerror.ServiceError)
}

// ledgerService is the default implementation of LedgerServiceInterface.
type ledgerService struct {
	store ledgerStoreInterface
}

// newLedgerService creates a new instance of ledgerService.
func newLedgerService() LedgerServiceInterface {
	return &ledgerService{
		store: newLedgerStore(),
	}
}

// TransferSessionRewards moves a finished session's rewards to an account.
// The events are appended and the account totals credited atomically, and a
// session that already has ledger entries is never credited twice.
func (ls *ledgerService) TransferSessionRewards(accountID, sessionID string,
	events []ScoreEvent) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if accountID == "" || len(events) == 0 {
		return &ErrorInvalidTransfer
	}

	existing, err := ls.store.CountEventsBySession(sessionID)
	if err != nil {
		logger.Error("Failed to check session ledger entries", log.Error(err),
			log.String(log.LoggerKeySessionID, sessionID))
		return &ErrorInternalServerError
	}
	if existing > 0 {
		return &ErrorSessionAlreadyTransferred
	}

	// Events arrive as bare credit/debit entries; identity and timestamps are
	// stamped here so the store always binds a unique EVENT_ID.
	now := time.Now().UTC()
	for i := range events {
		events[i].ID = utils.GenerateUUID()
		events[i].AccountID = accountID
		if events[i].CreatedAt.IsZero() {
			events[i].CreatedAt = now
		}
	}

	if err := ls.store.Transfer(accountID, events); err != nil {
		logger.Error("Failed to transfer session rewards", log.Error(err),
			log.String(log.LoggerKeySessionID, sessionID))
		return &ErrorInternalServerError
	}

	logger.Debug("Successfully transferred session rewards",
		log.String(log.LoggerKeySessionID, sessionID), log.Int("eventCount", len(events)))
	return nil
}

// GetEventsByAccount lists the score events of an account.
func (ls *ledgerService) GetEventsByAccount(accountID string) (
	[]ScoreEvent, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	events, err := ls.store.GetEventsByAccount(accountID)
	if err != nil {
		logger.Error("Failed to list score events", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return events, nil
}
