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

// Package analytics aggregates onboarding sessions into funnel reports.
package analytics

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the analytics module and registers its routes.
func Initialize(mux *http.ServeMux, flowService catalog.FlowServiceInterface,
	companyService company.CompanyServiceInterface) AnalyticsServiceInterface {
	service := newAnalyticsService(flowService, companyService)
	handler := newAnalyticsHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the authoring-scoped analytics routes.
func registerRoutes(mux *http.ServeMux, handler *analyticsHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/analytics",
		handler.HandleFlowFunnelRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /companies/{id}/analytics",
		handler.HandleCompanyFunnelRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/sessions",
		handler.HandleSessionListRequest, opts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows/{id}/analytics",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /companies/{id}/analytics",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows/{id}/sessions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
