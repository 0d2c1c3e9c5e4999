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

package analytics

import "time"

// sessionSnapshot is the slice of session state the aggregator works on.
type sessionSnapshot struct {
	ID         string
	FlowID     string
	State      string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// FunnelBucket is one bar of the drop-off histogram. Position is the highest
// order position a non-finished session recorded, or -1 when it recorded none.
type FunnelBucket struct {
	Position  int    `json:"position"`
	Count     int    `json:"count"`
	StepTitle string `json:"step_title,omitempty"`
	StepKind  string `json:"step_kind,omitempty"`
}

// FunnelReport is the aggregated funnel view over a lookback window.
type FunnelReport struct {
	FlowID               string         `json:"flow_id,omitempty"`
	CompanyID            string         `json:"company_id,omitempty"`
	WindowDays           int            `json:"window_days"`
	Started              int            `json:"started"`
	Completed            int            `json:"completed"`
	CompletionRate       float64        `json:"completion_rate"`
	AvgTimeToCompleteSec float64        `json:"avg_time_to_complete_sec"`
	Funnel               []FunnelBucket `json:"funnel"`
}

// SessionSummary is one row of the session listing with computed progress.
type SessionSummary struct {
	SessionID             string     `json:"session_id"`
	State                 string     `json:"state"`
	StartedAt             time.Time  `json:"started_at"`
	FinishedAt            *time.Time `json:"finished_at,omitempty"`
	LastCompletedPosition int        `json:"last_completed_position"`
	ProgressPercent       float64    `json:"progress_percent"`
}

// SessionListResponse is the session listing for a flow within a window.
type SessionListResponse struct {
	FlowID     string           `json:"flow_id"`
	WindowDays int              `json:"window_days"`
	TotalCount int              `json:"total_count"`
	Sessions   []SessionSummary `json:"sessions"`
}
