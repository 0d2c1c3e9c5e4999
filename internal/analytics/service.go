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

import (
	"sort"
	"time"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/config"
	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
)

const loggerComponentNameService = "AnalyticsService"

// AnalyticsServiceInterface defines the interface for funnel analytics operations.
type AnalyticsServiceInterface interface {
	GetFlowFunnel(flowID string, days int) (*FunnelReport, *serviceerror.ServiceError)
	GetCompanyFunnel(companyID string, days int) (*FunnelReport, *serviceerror.ServiceError)
	ListSessions(flowID string, days int) (*SessionListResponse, *serviceerror.ServiceError)
}

// analyticsService is the default implementation of AnalyticsServiceInterface.
type analyticsService struct {
	store          analyticsStoreInterface
	flowService    catalog.FlowServiceInterface
	companyService company.CompanyServiceInterface
}

// newAnalyticsService creates a new instance of analyticsService.
func newAnalyticsService(flowService catalog.FlowServiceInterface,
	companyService company.CompanyServiceInterface) AnalyticsServiceInterface {
	return &analyticsService{
		store:          newAnalyticsStore(),
		flowService:    flowService,
		companyService: companyService,
	}
}

// GetFlowFunnel aggregates the drop-off funnel for a flow over the window.
func (s *analyticsService) GetFlowFunnel(flowID string, days int) (
	*FunnelReport, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if flowID == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Flow id is required")
		return nil, &svcErr
	}

	detail, svcErr := s.flowService.GetFlow(flowID)
	if svcErr != nil {
		return nil, svcErr
	}

	days = normalizeWindowDays(days)
	since := time.Now().UTC().AddDate(0, 0, -days)

	snapshots, err := s.store.GetSessionsByFlow(flowID, since)
	if err != nil {
		logger.Error("Failed to retrieve sessions", log.Error(err),
			log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}
	maxOrders, err := s.store.GetMaxRecordedOrderByFlow(flowID, since)
	if err != nil {
		logger.Error("Failed to retrieve recorded positions", log.Error(err),
			log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}

	report := buildFunnelReport(snapshots, maxOrders, detail.Steps, days)
	report.FlowID = flowID
	return report, nil
}

// GetCompanyFunnel aggregates the drop-off funnel across a company's sessions.
// Buckets are annotated from the company's currently served flow.
func (s *analyticsService) GetCompanyFunnel(companyID string, days int) (
	*FunnelReport, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if companyID == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Company id is required")
		return nil, &svcErr
	}

	if _, svcErr := s.companyService.GetCompany(companyID); svcErr != nil {
		return nil, svcErr
	}
	detail, svcErr := s.flowService.GetFlowForCompany(companyID)
	if svcErr != nil {
		return nil, svcErr
	}

	days = normalizeWindowDays(days)
	since := time.Now().UTC().AddDate(0, 0, -days)

	snapshots, err := s.store.GetSessionsByCompany(companyID, since)
	if err != nil {
		logger.Error("Failed to retrieve sessions", log.Error(err),
			log.String(log.LoggerKeyCompanyID, companyID))
		return nil, &ErrorInternalServerError
	}
	maxOrders, err := s.store.GetMaxRecordedOrderByCompany(companyID, since)
	if err != nil {
		logger.Error("Failed to retrieve recorded positions", log.Error(err),
			log.String(log.LoggerKeyCompanyID, companyID))
		return nil, &ErrorInternalServerError
	}

	report := buildFunnelReport(snapshots, maxOrders, detail.Steps, days)
	report.CompanyID = companyID
	return report, nil
}

// ListSessions lists a flow's sessions within the window with computed progress.
func (s *analyticsService) ListSessions(flowID string, days int) (
	*SessionListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if flowID == "" {
		svcErr := ErrorInvalidRequestFormat.WithDescription("Flow id is required")
		return nil, &svcErr
	}

	detail, svcErr := s.flowService.GetFlow(flowID)
	if svcErr != nil {
		return nil, svcErr
	}

	days = normalizeWindowDays(days)
	since := time.Now().UTC().AddDate(0, 0, -days)

	snapshots, err := s.store.GetSessionsByFlow(flowID, since)
	if err != nil {
		logger.Error("Failed to retrieve sessions", log.Error(err),
			log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}
	maxOrders, err := s.store.GetMaxRecordedOrderByFlow(flowID, since)
	if err != nil {
		logger.Error("Failed to retrieve recorded positions", log.Error(err),
			log.String(log.LoggerKeyFlowID, flowID))
		return nil, &ErrorInternalServerError
	}

	totalActiveSteps := len(detail.Steps)
	summaries := make([]SessionSummary, 0, len(snapshots))
	for _, snapshot := range snapshots {
		lastPosition := -1
		if pos, ok := maxOrders[snapshot.ID]; ok {
			lastPosition = pos
		}
		summaries = append(summaries, SessionSummary{
			SessionID:             snapshot.ID,
			State:                 snapshot.State,
			StartedAt:             snapshot.StartedAt,
			FinishedAt:            snapshot.FinishedAt,
			LastCompletedPosition: lastPosition,
			ProgressPercent:       progressPercent(lastPosition, totalActiveSteps),
		})
	}

	return &SessionListResponse{
		FlowID:     flowID,
		WindowDays: days,
		TotalCount: len(summaries),
		Sessions:   summaries,
	}, nil
}

// buildFunnelReport computes started/completed counts, completion rate, mean
// time to complete, and the drop-off histogram over non-finished sessions.
func buildFunnelReport(snapshots []sessionSnapshot, maxOrders map[string]int,
	steps []catalog.Step, days int) *FunnelReport {
	started := len(snapshots)
	completed := 0
	var completionTotal time.Duration
	timedCompletions := 0
	bucketCounts := make(map[int]int)

	for _, snapshot := range snapshots {
		if snapshot.State == session.StateFinished {
			completed++
			if snapshot.FinishedAt != nil && !snapshot.StartedAt.IsZero() {
				completionTotal += snapshot.FinishedAt.Sub(snapshot.StartedAt)
				timedCompletions++
			}
			continue
		}
		position := -1
		if pos, ok := maxOrders[snapshot.ID]; ok {
			position = pos
		}
		bucketCounts[position]++
	}

	completionRate := 0.0
	if started > 0 {
		completionRate = float64(completed) / float64(started)
	}
	avgSeconds := 0.0
	if timedCompletions > 0 {
		avgSeconds = completionTotal.Seconds() / float64(timedCompletions)
	}

	stepsByPosition := make(map[int]catalog.Step, len(steps))
	for _, step := range steps {
		stepsByPosition[step.OrderIndex] = step
	}

	buckets := make([]FunnelBucket, 0, len(bucketCounts))
	for position, count := range bucketCounts {
		bucket := FunnelBucket{Position: position, Count: count}
		if step, ok := stepsByPosition[position]; ok {
			bucket.StepTitle = step.Title
			bucket.StepKind = string(step.Kind)
		}
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Position < buckets[j].Position
	})

	return &FunnelReport{
		WindowDays:           days,
		Started:              started,
		Completed:            completed,
		CompletionRate:       completionRate,
		AvgTimeToCompleteSec: avgSeconds,
		Funnel:               buckets,
	}
}

// progressPercent computes (lastCompletedPosition+1)/totalActiveSteps as a
// percentage clamped to [0,100].
func progressPercent(lastPosition, totalActiveSteps int) float64 {
	if totalActiveSteps <= 0 {
		return 0
	}
	percent := float64(lastPosition+1) / float64(totalActiveSteps) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// normalizeWindowDays falls back to the configured lookback window.
func normalizeWindowDays(days int) int {
	if days > 0 {
		return days
	}
	configured := config.GetOnboardRuntime().Config.Onboarding.AnalyticsWindowDays
	if configured > 0 {
		return configured
	}
	return serverconst.DefaultAnalyticsWindowDays
}
