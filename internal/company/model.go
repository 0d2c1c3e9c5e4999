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

package company

import "time"

// Company represents a partner company that owns onboarding flows.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Invite represents an invite code issued for a company. At most one
// invite is active per company at a time.
type Invite struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Code      string    `json:"code"`
	Token     string    `json:"token"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyRequest represents the request to create a company.
type CompanyRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CompanyListResponse represents a paginated company list.
type CompanyListResponse struct {
	TotalResults int       `json:"total_results"`
	StartIndex   int       `json:"start_index"`
	Count        int       `json:"count"`
	Companies    []Company `json:"companies"`
}
