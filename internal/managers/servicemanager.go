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

// Package managers wires the onboarding modules together at startup.
package managers

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/account"
	"github.com/salesjourney/onboard/internal/analytics"
	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/ledger"
	"github.com/salesjourney/onboard/internal/link"
	"github.com/salesjourney/onboard/internal/reward"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/config"
	"github.com/salesjourney/onboard/internal/system/healthcheck"
)

// ServiceManagerInterface defines the interface for service registration.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager registers all module services against the server multiplexer.
type ServiceManager struct {
	mux    *http.ServeMux
	config *config.Config
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config) ServiceManagerInterface {
	return &ServiceManager{
		mux:    mux,
		config: cfg,
	}
}

// RegisterServices initializes the modules in dependency order and registers
// their routes.
func (sm *ServiceManager) RegisterServices() error {
	companyService := company.Initialize(sm.mux)
	flowService := catalog.Initialize(sm.mux)
	rewardService := reward.Initialize()
	ledgerService := ledger.Initialize()

	linkService := link.Initialize(sm.mux, companyService, flowService)
	sessionService := session.Initialize(sm.mux, linkService, flowService, rewardService)
	account.Initialize(sm.mux, sessionService, ledgerService, flowService)
	analytics.Initialize(sm.mux, flowService, companyService)

	healthcheck.Initialize(sm.mux)

	return nil
}
