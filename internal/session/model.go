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
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/reward"
)

// Session states. An abandoned session is never stored; it is inferred by
// analytics from sessions that stay in progress past the abandonment window.
const (
	StateInProgress = "in_progress"
	StateFinished   = "finished"
)

// Session is one participant's run through an onboarding flow.
type Session struct {
	ID           string            `json:"id"`
	Token        string            `json:"token"`
	CompanyID    string            `json:"company_id"`
	FlowID       string            `json:"flow_id"`
	State        string            `json:"state"`
	CoinsTotal   int               `json:"coins_total"`
	XPTotal      int               `json:"xp_total"`
	ContactDraft map[string]string `json:"contact_draft,omitempty"`
	AccountID    *string           `json:"account_id,omitempty"`
	StartedAt    time.Time         `json:"started_at"`
	FinishedAt   *time.Time        `json:"finished_at,omitempty"`
}

// SessionStepRecord is the receipt of one step submission.
// At most one record exists per session and step.
type SessionStepRecord struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	StepID       string    `json:"step_id"`
	OrderIndex   int       `json:"order_index"`
	Payload      string    `json:"payload,omitempty"`
	CoinsAwarded int       `json:"coins_awarded"`
	XPAwarded    int       `json:"xp_awarded"`
	CreatedAt    time.Time `json:"created_at"`
}

// RewardChoice is the single reward pick of a session.
type RewardChoice struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	StoreItemID string    `json:"store_item_id"`
	CostCoins   int       `json:"cost_coins"`
	CreatedAt   time.Time `json:"created_at"`
}

// StartRequest represents the request to start or resume an onboarding session.
type StartRequest struct {
	Code         string `json:"code"`
	SessionToken string `json:"session_token,omitempty"`
}

// StartResponse is the result of starting or resuming a session.
type StartResponse struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
	NextStep  *catalog.Step   `json:"next_step,omitempty"`
	Company   company.Company `json:"company"`
	Flow      catalog.Flow    `json:"flow"`
	Resumed   bool            `json:"resumed"`
}

// StateResponse is the current view of a session.
type StateResponse struct {
	Session  Session       `json:"session"`
	NextStep *catalog.Step `json:"next_step,omitempty"`
}

// SubmitStepRequest represents a step submission payload.
type SubmitStepRequest struct {
	SessionToken string            `json:"session_token,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
	Key          string            `json:"key,omitempty"`
	Value        string            `json:"value,omitempty"`
}

// SubmitStepResponse is the result of a step submission.
type SubmitStepResponse struct {
	Coins      int           `json:"coins"`
	XP         int           `json:"xp"`
	CoinsTotal int           `json:"coins_total"`
	XPTotal    int           `json:"xp_total"`
	NextStep   *catalog.Step `json:"next_step,omitempty"`
}

// FinishResponse is the result of finishing a session.
type FinishResponse struct {
	CoinsTotal       int                `json:"coins_total"`
	XPTotal          int                `json:"xp_total"`
	AvailableRewards []reward.StoreItem `json:"available_rewards"`
}

// PickRewardRequest represents the request to pick a reward.
type PickRewardRequest struct {
	SessionToken string `json:"session_token,omitempty"`
	StoreItemID  string `json:"store_item_id"`
}

// PickRewardResponse is the result of picking a reward.
type PickRewardResponse struct {
	OK         bool             `json:"ok"`
	Item       reward.StoreItem `json:"item"`
	CoinsTotal int              `json:"coins_total"`
}

// InterviewResponse surfaces the interview invite step of a session's flow.
type InterviewResponse struct {
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	Assignment  string `json:"assignment,omitempty"`
	ContactHint string `json:"contact_hint,omitempty"`
}
