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

import "time"

// Score event sources.
const (
	SourceStep       = "step"
	SourceFinalBonus = "final_bonus"
	SourceRewardPick = "reward_pick"
)

// ScoreEvent is one append-only entry in an account's score history.
// Events that stem from an onboarding session carry the session id.
type ScoreEvent struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Source    string    `json:"source"`
	Points    int       `json:"points"`
	Coins     int       `json:"coins"`
	Meta      string    `json:"meta,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
