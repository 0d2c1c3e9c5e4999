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
	"time"

	"github.com/salesjourney/onboard/internal/ledger"
)

// Account represents a registered participant account.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	CompanyID   string    `json:"company_id"`
	Coins       int       `json:"coins"`
	XP          int       `json:"xp"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterRequest represents the participant registration request.
type RegisterRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	SessionToken string `json:"session_token,omitempty"`
}

// RegisterResponse represents the registration outcome, including the
// ledger entries credited from the onboarding session.
type RegisterResponse struct {
	Account Account             `json:"account"`
	Events  []ledger.ScoreEvent `json:"events"`
}
