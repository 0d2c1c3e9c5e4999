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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/config"
)

type FunnelReportTestSuite struct {
	suite.Suite
}

func TestFunnelReportSuite(t *testing.T) {
	suite.Run(t, new(FunnelReportTestSuite))
}

func (suite *FunnelReportTestSuite) SetupSuite() {
	_ = config.InitializeOnboardRuntime("", &config.Config{
		Cache:      config.CacheConfig{Disabled: true},
		Onboarding: config.OnboardingConfig{AnalyticsWindowDays: 30},
	})
}

func funnelSteps() []catalog.Step {
	return []catalog.Step{
		{ID: "step-intro", Kind: catalog.StepKindIntro, Title: "Welcome", OrderIndex: 0},
		{ID: "step-contact", Kind: catalog.StepKindContactCapture, Title: "Contact", OrderIndex: 1},
		{ID: "step-choice", Kind: catalog.StepKindSingleChoice, Title: "Interest", OrderIndex: 2},
	}
}

func (suite *FunnelReportTestSuite) TestBucketsAndCompletedSumToStarted() {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(7 * time.Minute)
	snapshots := []sessionSnapshot{
		{ID: "s1", State: session.StateFinished, StartedAt: started, FinishedAt: &finished},
		{ID: "s2", State: session.StateInProgress, StartedAt: started},
		{ID: "s3", State: session.StateInProgress, StartedAt: started},
		{ID: "s4", State: session.StateInProgress, StartedAt: started},
	}
	maxOrders := map[string]int{"s2": 0, "s3": 1}

	report := buildFunnelReport(snapshots, maxOrders, funnelSteps(), 30)

	assert.Equal(suite.T(), 4, report.Started)
	assert.Equal(suite.T(), 1, report.Completed)
	assert.Equal(suite.T(), 0.25, report.CompletionRate)
	assert.Equal(suite.T(), 420.0, report.AvgTimeToCompleteSec)

	bucketTotal := 0
	for _, bucket := range report.Funnel {
		bucketTotal += bucket.Count
	}
	assert.Equal(suite.T(), report.Started, bucketTotal+report.Completed)
}

func (suite *FunnelReportTestSuite) TestSessionWithoutRecordsBucketsAtMinusOne() {
	snapshots := []sessionSnapshot{
		{ID: "s1", State: session.StateInProgress, StartedAt: time.Now().UTC()},
	}

	report := buildFunnelReport(snapshots, map[string]int{}, funnelSteps(), 30)

	assert.Len(suite.T(), report.Funnel, 1)
	assert.Equal(suite.T(), -1, report.Funnel[0].Position)
	assert.Empty(suite.T(), report.Funnel[0].StepTitle)
}

func (suite *FunnelReportTestSuite) TestBucketsAnnotatedAndSorted() {
	now := time.Now().UTC()
	snapshots := []sessionSnapshot{
		{ID: "s1", State: session.StateInProgress, StartedAt: now},
		{ID: "s2", State: session.StateInProgress, StartedAt: now},
		{ID: "s3", State: session.StateInProgress, StartedAt: now},
	}
	maxOrders := map[string]int{"s1": 2, "s2": 0, "s3": 0}

	report := buildFunnelReport(snapshots, maxOrders, funnelSteps(), 30)

	assert.Len(suite.T(), report.Funnel, 2)
	assert.Equal(suite.T(), 0, report.Funnel[0].Position)
	assert.Equal(suite.T(), 2, report.Funnel[0].Count)
	assert.Equal(suite.T(), "Welcome", report.Funnel[0].StepTitle)
	assert.Equal(suite.T(), 2, report.Funnel[1].Position)
	assert.Equal(suite.T(), "Interest", report.Funnel[1].StepTitle)
	assert.Equal(suite.T(), string(catalog.StepKindSingleChoice), report.Funnel[1].StepKind)
}

func (suite *FunnelReportTestSuite) TestEmptyWindowHasZeroRate() {
	report := buildFunnelReport(nil, map[string]int{}, funnelSteps(), 30)

	assert.Equal(suite.T(), 0, report.Started)
	assert.Equal(suite.T(), 0.0, report.CompletionRate)
	assert.Equal(suite.T(), 0.0, report.AvgTimeToCompleteSec)
	assert.Empty(suite.T(), report.Funnel)
}

func (suite *FunnelReportTestSuite) TestFinishedWithoutTimestampSkipsAverage() {
	snapshots := []sessionSnapshot{
		{ID: "s1", State: session.StateFinished, StartedAt: time.Now().UTC()},
	}

	report := buildFunnelReport(snapshots, map[string]int{}, funnelSteps(), 30)

	assert.Equal(suite.T(), 1, report.Completed)
	assert.Equal(suite.T(), 0.0, report.AvgTimeToCompleteSec)
}

func (suite *FunnelReportTestSuite) TestProgressPercent() {
	assert.Equal(suite.T(), 0.0, progressPercent(-1, 3))
	assert.InDelta(suite.T(), 33.33, progressPercent(0, 3), 0.01)
	assert.Equal(suite.T(), 100.0, progressPercent(2, 3))
	assert.Equal(suite.T(), 100.0, progressPercent(5, 3))
	assert.Equal(suite.T(), 0.0, progressPercent(2, 0))
}

func (suite *FunnelReportTestSuite) TestNormalizeWindowDays() {
	assert.Equal(suite.T(), 7, normalizeWindowDays(7))
	assert.Equal(suite.T(), 30, normalizeWindowDays(0))
	assert.Equal(suite.T(), 30, normalizeWindowDays(-5))
}
