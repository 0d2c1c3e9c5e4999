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

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the company service and registers its routes.
func Initialize(mux *http.ServeMux) CompanyServiceInterface {
	service := newCompanyService()
	handler := newCompanyHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for company management operations.
func registerRoutes(mux *http.ServeMux, handler *companyHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /companies",
		handler.HandleCompanyPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /companies",
		handler.HandleCompanyListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /companies/{id}",
		handler.HandleCompanyGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /companies/{id}/invite",
		handler.HandleInvitePostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /companies/{id}/invite",
		handler.HandleInviteGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /companies/{id}/invite",
		handler.HandleInviteDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /companies",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /companies/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /companies/{id}/invite",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
