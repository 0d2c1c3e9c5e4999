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
	"strings"
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/ledger"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentNameService = "AccountService"

// AccountServiceInterface defines the interface for participant account operations.
type AccountServiceInterface interface {
	Register(request RegisterRequest) (*RegisterResponse, *serviceerror.ServiceError)
	GetAccount(id string) (*Account, *serviceerror.ServiceError)
}

// accountService is the default implementation of AccountServiceInterface.
type accountService struct {
	store          accountStoreInterface
	sessionService session.SessionServiceInterface
	ledgerService  ledger.LedgerServiceInterface
	flowService    catalog.FlowServiceInterface
}

// newAccountService creates a new instance of accountService.
func newAccountService(sessionService session.SessionServiceInterface,
	ledgerService ledger.LedgerServiceInterface,
	flowService catalog.FlowServiceInterface) AccountServiceInterface {
	return &accountService{
		store:          newAccountStore(),
		sessionService: sessionService,
		ledgerService:  ledgerService,
		flowService:    flowService,
	}
}

// Register creates a participant account from an onboarding session and
// transfers the session's accumulated rewards to it.
func (as *accountService) Register(request RegisterRequest) (
	*RegisterResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	email := strings.ToLower(strings.TrimSpace(request.Email))
	name := strings.TrimSpace(request.Name)
	if email == "" || !strings.Contains(email, "@") {
		svcErr := ErrorInvalidRequestFormat.WithDescription("A valid email address is required")
		return nil, &svcErr
	}
	if name == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Display name is required")
		return nil, &svcErr
	}

	sess, svcErr := as.sessionService.GetSessionByToken(request.SessionToken)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ServerErrorType {
			return nil, svcErr
		}
		return nil, &ErrorUnauthorized
	}
	if sess.AccountID != nil {
		return nil, &ErrorAlreadyRegistered
	}

	conflict, err := as.store.CheckEmailConflict(email)
	if err != nil {
		logger.Error("Failed to check email conflict", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if conflict {
		return nil, &ErrorEmailConflict
	}

	newAccount := Account{
		ID:          sysutils.GenerateUUID(),
		Email:       email,
		DisplayName: name,
		Phone:       sysutils.SanitizeString(request.Phone),
		CompanyID:   sess.CompanyID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := as.store.CreateAccount(newAccount); err != nil {
		logger.Error("Failed to create account", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	attached, svcErr := as.sessionService.AttachAccount(sess.ID, newAccount.ID, name, email)
	if svcErr != nil {
		return nil, svcErr
	}

	events, svcErr := as.buildTransferEvents(newAccount.ID, attached)
	if svcErr != nil {
		return nil, svcErr
	}

	if svcErr := as.ledgerService.TransferSessionRewards(newAccount.ID, attached.ID,
		events); svcErr != nil {
		return nil, svcErr
	}

	credited, err := as.store.GetAccount(newAccount.ID)
	if err != nil {
		logger.Error("Failed to retrieve account after transfer", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Account registered from session", log.String("accountId", credited.ID),
		log.String(log.LoggerKeySessionID, attached.ID))

	return &RegisterResponse{
		Account: credited,
		Events:  events,
	}, nil
}

// GetAccount retrieves an account by its id.
func (as *accountService) GetAccount(id string) (*Account, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if id == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Account id is required")
		return nil, &svcErr
	}

	acct, err := as.store.GetAccount(id)
	if err != nil {
		if err == ErrAccountNotFound {
			return nil, &ErrorAccountNotFound
		}
		logger.Error("Failed to retrieve account", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &acct, nil
}

// buildTransferEvents builds the ledger entries that reconcile the account's
// opening balance with the session's accumulated totals: one entry per step
// record, the flow completion bonus when the session finished, and a debit
// entry when a reward was already picked against the accrued coins.
func (as *accountService) buildTransferEvents(accountID string,
	sess *session.Session) ([]ledger.ScoreEvent, *serviceerror.ServiceError) {
	records, svcErr := as.sessionService.GetStepRecords(sess.ID)
	if svcErr != nil {
		return nil, svcErr
	}

	events := make([]ledger.ScoreEvent, 0, len(records)+2)
	stepCoins := 0
	for _, record := range records {
		events = append(events, ledger.ScoreEvent{
			AccountID: accountID,
			Source:    ledger.SourceStep,
			Points:    record.XPAwarded,
			Coins:     record.CoinsAwarded,
			Meta:      record.StepID,
			SessionID: sess.ID,
		})
		stepCoins += record.CoinsAwarded
	}

	bonusCoins := 0
	if sess.State == session.StateFinished {
		detail, svcErr := as.flowService.GetFlow(sess.FlowID)
		if svcErr != nil {
			return nil, svcErr
		}
		bonusCoins = detail.Flow.FinalBonusCoins
		if bonusCoins > 0 {
			events = append(events, ledger.ScoreEvent{
				AccountID: accountID,
				Source:    ledger.SourceFinalBonus,
				Coins:     bonusCoins,
				Meta:      sess.FlowID,
				SessionID: sess.ID,
			})
		}
	}

	// A reward picked before registration already spent part of the accrual.
	if spent := stepCoins + bonusCoins - sess.CoinsTotal; spent > 0 {
		events = append(events, ledger.ScoreEvent{
			AccountID: accountID,
			Source:    ledger.SourceRewardPick,
			Coins:     -spent,
			SessionID: sess.ID,
		})
	}

	return events, nil
}
