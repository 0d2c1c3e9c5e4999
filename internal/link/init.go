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
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the link service and registers its routes.
func Initialize(mux *http.ServeMux, companyService company.CompanyServiceInterface,
	flowService catalog.FlowServiceInterface) LinkServiceInterface {
	service := newLinkService(companyService, flowService)
	handler := newLinkHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for link resolution and authoring operations.
func registerRoutes(mux *http.ServeMux, handler *linkHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("GET /onboarding/resolve/{code}",
		handler.HandleResolveRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /links",
		handler.HandleLinkPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /links/{id}",
		handler.HandleLinkGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /links/{id}",
		handler.HandleLinkDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /companies/{id}/links",
		handler.HandleLinkListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /onboarding/resolve/{code}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /links",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /links/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
