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

package reward

import "time"

// StoreItem is a redeemable reward offered to onboarding participants.
// An item with no company is visible to every company.
type StoreItem struct {
	ID        string    `json:"id"`
	CompanyID *string   `json:"company_id,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CostCoins int       `json:"cost_coins"`
	Stock     *int      `json:"stock,omitempty"`
	MinLevel  int       `json:"min_level"`
	Payload   string    `json:"payload,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
