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

// Package account handles participant registration and the hand-off of
// session rewards into account balances.
package account

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/ledger"
	"github.com/salesjourney/onboard/internal/session"
	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the account module and registers its routes.
func Initialize(mux *http.ServeMux, sessionService session.SessionServiceInterface,
	ledgerService ledger.LedgerServiceInterface,
	flowService catalog.FlowServiceInterface) AccountServiceInterface {
	service := newAccountService(sessionService, ledgerService, flowService)
	handler := newAccountHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for account operations.
func registerRoutes(mux *http.ServeMux, handler *accountHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization, X-Onboarding-Session",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /onboarding/register", handler.HandleRegisterRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /accounts/{id}", handler.HandleAccountGetRequest, opts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/register",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /accounts/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
