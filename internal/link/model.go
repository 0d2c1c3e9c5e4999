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

package link

import (
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
)

// Entry origins reported by the resolver.
const (
	OriginLink   = "link"
	OriginInvite = "invite"
)

// Link is a shareable onboarding entry point bound to a company and a flow.
type Link struct {
	ID        string     `json:"id"`
	Slug      string     `json:"slug"`
	Token     string     `json:"token"`
	CompanyID string     `json:"company_id"`
	FlowID    string     `json:"flow_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UseCount  int        `json:"use_count"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// LinkRequest represents the request to create an onboarding link.
type LinkRequest struct {
	CompanyID string     `json:"company_id"`
	FlowID    string     `json:"flow_id,omitempty"`
	Slug      string     `json:"slug,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
}

// ResolveResponse is the result of resolving an entry code.
type ResolveResponse struct {
	Company company.Company    `json:"company"`
	Flow    catalog.FlowDetail `json:"flow"`
	Origin  string             `json:"origin"`
}
