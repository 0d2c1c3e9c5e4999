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

package catalog

import (
	"net/http"

	"github.com/salesjourney/onboard/internal/system/middleware"
)

// Initialize initializes the flow catalog service and registers its routes.
func Initialize(mux *http.ServeMux) FlowServiceInterface {
	service := newFlowService()
	handler := newFlowHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for flow catalog authoring operations.
func registerRoutes(mux *http.ServeMux, handler *flowHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /flows",
		handler.HandleFlowPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}",
		handler.HandleFlowGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PUT /flows/{id}",
		handler.HandleFlowPutRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/clone",
		handler.HandleFlowCloneRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/steps",
		handler.HandleStepListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/steps",
		handler.HandleStepPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/reorder",
		handler.HandleReorderRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /steps/{id}",
		handler.HandleStepGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PUT /steps/{id}",
		handler.HandleStepPutRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /steps/{id}",
		handler.HandleStepDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST /steps/{id}/options",
		handler.HandleOptionPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PUT /options/{id}",
		handler.HandleOptionPutRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /options/{id}",
		handler.HandleOptionDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows/{id}/steps",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /steps/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /options/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
