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

// Package session orchestrates participant onboarding sessions over a flow.
package session

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/link"
	"github.com/salesjourney/onboard/internal/reward"
	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the session module and registers its routes.
func Initialize(mux *http.ServeMux, linkService link.LinkServiceInterface,
	flowService catalog.FlowServiceInterface, rewardService reward.RewardServiceInterface) SessionServiceInterface {
	service := newSessionService(linkService, flowService, rewardService)
	handler := newSessionHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the participant-facing onboarding routes.
func registerRoutes(mux *http.ServeMux, handler *sessionHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization, X-Onboarding-Session",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /onboarding/start", handler.HandleStartRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /onboarding/session", handler.HandleStateRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /onboarding/steps/{stepId}", handler.HandleSubmitStepRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /onboarding/finish", handler.HandleFinishRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /onboarding/reward", handler.HandlePickRewardRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /onboarding/interview", handler.HandleInterviewRequest, opts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/start",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/session",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/steps/{stepId}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/finish",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/reward",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
