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
	"fmt"

	"github.com/salesjourney/onboard/internal/system/database/provider"
	dbutils "github.com/salesjourney/onboard/internal/system/database/utils"
)

// ledgerStoreInterface defines the interface for economy ledger store operations.
type ledgerStoreInterface interface {
	Transfer(accountID string, events []ScoreEvent) error
	GetEventsByAccount(accountID string) ([]ScoreEvent, error)
	CountEventsBySession(sessionID string) (int, error)
}

// ledgerStore is the default implementation of ledgerStoreInterface.
type ledgerStore struct {
	dbProvider provider.DBProviderInterface
}

// newLedgerStore creates a new instance of ledgerStore.
func newLedgerStore() ledgerStoreInterface {
	return &ledgerStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// Transfer appends the events and credits the account's running totals in one
// transaction. A failure leaves the ledger untouched.
func (s *ledgerStore) Transfer(accountID string, events []ScoreEvent) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	totalCoins := 0
	totalPoints := 0
	for _, event := range events {
		var sessionID interface{}
		if event.SessionID != "" {
			sessionID = event.SessionID
		}
		_, err := tx.Exec(dbClient.GetQuery(queryCreateScoreEvent), event.ID, accountID,
			event.Source, event.Points, event.Coins, event.Meta, sessionID,
			dbutils.FormatTimestamp(event.CreatedAt))
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return fmt.Errorf("failed to insert score event: %w", err)
		}
		totalCoins += event.Coins
		totalPoints += event.Points
	}

	if _, err := tx.Exec(dbClient.GetQuery(queryCreditAccountTotals), accountID,
		totalCoins, totalPoints); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to credit account totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetEventsByAccount lists the score events of an account, oldest first.
func (s *ledgerStore) GetEventsByAccount(accountID string) ([]ScoreEvent, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEventsByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	events := make([]ScoreEvent, 0, len(results))
	for _, row := range results {
		event, err := buildEventFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build score event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// CountEventsBySession counts the score events recorded for a session.
func (s *ledgerStore) CountEventsBySession(sessionID string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DBNamePlatform)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountEventsBySession, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return dbutils.ParseIntColumn(results[0]["count"])
}

// buildEventFromResultRow constructs a ScoreEvent from a database result row.
func buildEventFromResultRow(row map[string]interface{}) (ScoreEvent, error) {
	id, err := dbutils.ParseStringColumn(row["event_id"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse event_id: %w", err)
	}
	accountID, err := dbutils.ParseStringColumn(row["account_id"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse account_id: %w", err)
	}
	source, err := dbutils.ParseStringColumn(row["source"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse source: %w", err)
	}
	points, err := dbutils.ParseIntColumn(row["points"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse points: %w", err)
	}
	coins, err := dbutils.ParseIntColumn(row["coins"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse coins: %w", err)
	}
	meta, err := dbutils.ParseStringColumn(row["meta"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse meta: %w", err)
	}
	sessionID, err := dbutils.ParseStringColumn(row["session_id"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse session_id: %w", err)
	}
	createdAt, err := dbutils.ParseTimestampColumn(row["created_at"])
	if err != nil {
		return ScoreEvent{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return ScoreEvent{
		ID:        id,
		AccountID: accountID,
		Source:    source,
		Points:    points,
		Coins:     coins,
		Meta:      meta,
		SessionID: sessionID,
		CreatedAt: createdAt,
	}, nil
}
