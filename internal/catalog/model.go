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
	"encoding/json"
	"time"
)

// Flow is a company-owned onboarding template composed of ordered steps.
// A flow with no company is the system default template.
type Flow struct {
	ID              string    `json:"id"`
	CompanyID       *string   `json:"company_id,omitempty"`
	Name            string    `json:"name"`
	FinalBonusCoins int       `json:"final_bonus_coins"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Step is one ordered, typed unit of a flow.
type Step struct {
	ID          string       `json:"id"`
	FlowID      string       `json:"flow_id"`
	Kind        StepKind     `json:"kind"`
	Title       string       `json:"title"`
	Body        string       `json:"body,omitempty"`
	IsRequired  bool         `json:"is_required"`
	CoinsAward  int          `json:"coins_award"`
	XPAward     int          `json:"xp_award"`
	OrderIndex  int          `json:"order_index"`
	IsActive    bool         `json:"is_active"`
	IsImmutable bool         `json:"is_immutable"`
	Config      StepConfig   `json:"config"`
	Options     []StepOption `json:"options,omitempty"`
}

// StepOption is one selectable option of a single choice step.
type StepOption struct {
	ID         string `json:"id"`
	StepID     string `json:"step_id"`
	Key        string `json:"key"`
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	OrderIndex int    `json:"order_index"`
}

// FlowDetail is a flow with its ordered active steps.
type FlowDetail struct {
	Flow  Flow   `json:"flow"`
	Steps []Step `json:"steps"`
}

// FlowRequest represents the request to create or update a flow.
type FlowRequest struct {
	CompanyID       *string `json:"company_id,omitempty"`
	Name            string  `json:"name"`
	FinalBonusCoins int     `json:"final_bonus_coins"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// CloneRequest represents the request to clone a flow for a company.
type CloneRequest struct {
	CompanyID string `json:"company_id"`
}

// StepRequest represents the request to create or update a step.
type StepRequest struct {
	Kind       StepKind        `json:"kind"`
	Title      string          `json:"title"`
	Body       string          `json:"body,omitempty"`
	IsRequired bool            `json:"is_required"`
	CoinsAward int             `json:"coins_award"`
	XPAward    int             `json:"xp_award"`
	IsActive   *bool           `json:"is_active,omitempty"`
	Config     json.RawMessage `json:"config,omitempty"`
}

// OptionRequest represents the request to create or update a step option.
type OptionRequest struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	OrderIndex int    `json:"order_index"`
}

// ReorderRequest represents the request to reorder the steps of a flow.
type ReorderRequest struct {
	OrderedStepIDs []string `json:"ordered_step_ids"`
}
