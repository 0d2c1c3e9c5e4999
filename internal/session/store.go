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

package session

import (
	"encoding/json"
	"fmt"
	"time"

	dbmodel "github.com/salesjourney/onboard/internal/system/database/model"
	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// sessionStoreInterface defines the interface for session store operations.
type sessionStoreInterface interface {
	CreateSession(session Session) error
	GetSessionByToken(token string) (Session, error)
	GetSessionByID(id string) (Session, error)
	UpdateContactDraft(id string, draft map[string]string) error
	RecordSubmission(record SessionStepRecord, coinsTotal, xpTotal int) error
	FinishSession(id string, coinsTotal int, finishedAt time.Time) error
	StampAccount(id, accountID string) error
	GetStepRecords(sessionID string) ([]SessionStepRecord, error)
	GetStepRecord(sessionID, stepID string) (SessionStepRecord, error)
	RecordRewardChoice(choice RewardChoice, coinsTotal, xpTotal int) error
	GetRewardChoice(sessionID string) (RewardChoice, error)
}

// sessionStore is the default implementation of sessionStoreInterface.
type sessionStore struct {
	dbProvider provider.DBProviderInterface
}

// newSessionStore creates a new instance of sessionStore.
func newSessionStore() sessionStoreInterface {
	return &sessionStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateSession creates a new session row.
func (s *sessionStore) CreateSession(session Session) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	draft, err := marshalDraft(session.ContactDraft)
	if err != nil {
		return err
	}
	var finishedAt interface{}
	if session.FinishedAt != nil {
		finishedAt = dbutils.FormatTimestamp(*session.FinishedAt)
	}
	var accountID interface{}
	if session.AccountID != nil {
		accountID = *session.AccountID
	}

	_, err = dbClient.Execute(queryCreateSession, session.ID, session.Token, session.CompanyID,
		session.FlowID, session.State, session.CoinsTotal, session.XPTotal, draft, accountID,
		dbutils.FormatTimestamp(session.StartedAt), finishedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetSessionByToken retrieves a session by its token.
func (s *sessionStore) GetSessionByToken(token string) (Session, error) {
	return s.getSession(queryGetSessionByToken, token)
}

// GetSessionByID retrieves a session by its id.
func (s *sessionStore) GetSessionByID(id string) (Session, error) {
	return s.getSession(queryGetSessionByID, id)
}

// UpdateContactDraft replaces the session's contact draft.
func (s *sessionStore) UpdateContactDraft(id string, draft map[string]string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	serialized, err := marshalDraft(draft)
	if err != nil {
		return err
	}

	rowsAffected, err := dbClient.Execute(queryUpdateSessionDraft, id, serialized)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// RecordSubmission inserts the step record and sets the session totals in one
// transaction so a failure leaves no partial submission.
func (s *sessionStore) RecordSubmission(record SessionStepRecord, coinsTotal, xpTotal int) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(dbClient.GetQuery(queryCreateStepRecord), record.ID, record.SessionID,
		record.StepID, record.OrderIndex, record.Payload, record.CoinsAwarded, record.XPAwarded,
		dbutils.FormatTimestamp(record.CreatedAt))
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to insert step record: %w", err)
	}

	_, err = tx.Exec(dbClient.GetQuery(queryUpdateSessionTotals), record.SessionID,
		coinsTotal, xpTotal)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to update session totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FinishSession marks a session finished with its final coin total.
func (s *sessionStore) FinishSession(id string, coinsTotal int, finishedAt time.Time) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryFinishSession, id, StateFinished, coinsTotal,
		dbutils.FormatTimestamp(finishedAt))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// StampAccount binds a session to a registered account.
func (s *sessionStore) StampAccount(id, accountID string) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryStampSessionAccount, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// GetStepRecords lists the session's step records ordered by position.
func (s *sessionStore) GetStepRecords(sessionID string) ([]SessionStepRecord, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetStepRecords, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	records := make([]SessionStepRecord, 0, len(results))
	for _, row := range results {
		record, err := buildRecordFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build step record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// GetStepRecord retrieves the record of one step in a session.
func (s *sessionStore) GetStepRecord(sessionID, stepID string) (SessionStepRecord, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetStepRecord, sessionID, stepID)
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return SessionStepRecord{}, ErrRecordNotFound
	}

	return buildRecordFromResultRow(results[0])
}

// RecordRewardChoice inserts the reward choice and deducts its cost from the
// session totals in one transaction.
func (s *sessionStore) RecordRewardChoice(choice RewardChoice, coinsTotal, xpTotal int) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(dbClient.GetQuery(queryCreateRewardChoice), choice.ID, choice.SessionID,
		choice.StoreItemID, choice.CostCoins, dbutils.FormatTimestamp(choice.CreatedAt))
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to insert reward choice: %w", err)
	}

	_, err = tx.Exec(dbClient.GetQuery(queryUpdateSessionTotals), choice.SessionID,
		coinsTotal, xpTotal)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to update session totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRewardChoice retrieves a session's reward pick.
func (s *sessionStore) GetRewardChoice(sessionID string) (RewardChoice, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRewardChoice, sessionID)
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return RewardChoice{}, ErrChoiceNotFound
	}

	return buildChoiceFromResultRow(results[0])
}

func (s *sessionStore) getSession(query dbmodel.DBQuery, arg string) (Session, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return Session{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return Session{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Session{}, ErrSessionNotFound
	}

	return buildSessionFromResultRow(results[0])
}

// marshalDraft serializes a contact draft for storage.
func marshalDraft(draft map[string]string) (string, error) {
	if len(draft) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact draft: %w", err)
	}
	return string(data), nil
}

// buildSessionFromResultRow constructs a Session from a database result row.
func buildSessionFromResultRow(row map[string]interface{}) (Session, error) {
	id, err := dbutils.ParseStringColumn(row["session_id"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse session_id: %w", err)
	}
	token, err := dbutils.ParseStringColumn(row["token"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse token: %w", err)
	}
	companyID, err := dbutils.ParseStringColumn(row["company_id"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse company_id: %w", err)
	}
	flowID, err := dbutils.ParseStringColumn(row["flow_id"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse flow_id: %w", err)
	}
	state, err := dbutils.ParseStringColumn(row["state"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse state: %w", err)
	}
	coinsTotal, err := dbutils.ParseIntColumn(row["coins_total"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse coins_total: %w", err)
	}
	xpTotal, err := dbutils.ParseIntColumn(row["xp_total"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse xp_total: %w", err)
	}

	draftRaw, err := dbutils.ParseStringColumn(row["contact_draft"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse contact_draft: %w", err)
	}
	draft := map[string]string{}
	if draftRaw != "" {
		if err := json.Unmarshal([]byte(draftRaw), &draft); err != nil {
			return Session{}, fmt.Errorf("failed to unmarshal contact_draft: %w", err)
		}
	}

	var accountID *string
	if row["account_id"] != nil {
		value, err := dbutils.ParseStringColumn(row["account_id"])
		if err != nil {
			return Session{}, fmt.Errorf("failed to parse account_id: %w", err)
		}
		if value != "" {
			accountID = &value
		}
	}

	startedAt, err := dbutils.ParseTimestampColumn(row["started_at"])
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse started_at: %w", err)
	}

	var finishedAt *time.Time
	if row["finished_at"] != nil {
		parsed, err := dbutils.ParseTimestampColumn(row["finished_at"])
		if err != nil {
			return Session{}, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		if !parsed.IsZero() {
			finishedAt = &parsed
		}
	}

	return Session{
		ID:           id,
		Token:        token,
		CompanyID:    companyID,
		FlowID:       flowID,
		State:        state,
		CoinsTotal:   coinsTotal,
		XPTotal:      xpTotal,
		ContactDraft: draft,
		AccountID:    accountID,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
	}, nil
}

// buildRecordFromResultRow constructs a SessionStepRecord from a database result row.
func buildRecordFromResultRow(row map[string]interface{}) (SessionStepRecord, error) {
	id, err := dbutils.ParseStringColumn(row["record_id"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse record_id: %w", err)
	}
	sessionID, err := dbutils.ParseStringColumn(row["session_id"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse session_id: %w", err)
	}
	stepID, err := dbutils.ParseStringColumn(row["step_id"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse step_id: %w", err)
	}
	orderIndex, err := dbutils.ParseIntColumn(row["order_index"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse order_index: %w", err)
	}
	payload, err := dbutils.ParseStringColumn(row["payload"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	coinsAwarded, err := dbutils.ParseIntColumn(row["coins_awarded"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse coins_awarded: %w", err)
	}
	xpAwarded, err := dbutils.ParseIntColumn(row["xp_awarded"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse xp_awarded: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return SessionStepRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return SessionStepRecord{
		ID:           id,
		SessionID:    sessionID,
		StepID:       stepID,
		OrderIndex:   orderIndex,
		Payload:      payload,
		CoinsAwarded: coinsAwarded,
		XPAwarded:    xpAwarded,
		CreatedAt:    createdAt,
	}, nil
}

// buildChoiceFromResultRow constructs a RewardChoice from a database result row.
func buildChoiceFromResultRow(row map[string]interface{}) (RewardChoice, error) {
	id, err := dbutils.ParseStringColumn(row["choice_id"])
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to parse choice_id: %w", err)
	}
	sessionID, err := dbutils.ParseStringColumn(row["session_id"])
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to parse session_id: %w", err)
	}
	storeItemID, err := dbutils.ParseStringColumn(row["store_item_id"])
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to parse store_item_id: %w", err)
	}
	costCoins, err := dbutils.ParseIntColumn(row["cost_coins"])
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to parse cost_coins: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return RewardChoice{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return RewardChoice{
		ID:          id,
		SessionID:   sessionID,
		StoreItemID: storeItemID,
		CostCoins:   costCoins,
		CreatedAt:   createdAt,
	}, nil
}
