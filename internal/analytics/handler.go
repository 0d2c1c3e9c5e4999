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
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
)

const loggerComponentName = "AnalyticsHandler"

// analyticsHandler handles funnel analytics requests.
type analyticsHandler struct {
	service AnalyticsServiceInterface
}

// newAnalyticsHandler creates a new instance of analyticsHandler.
func newAnalyticsHandler(service AnalyticsServiceInterface) *analyticsHandler {
	return &analyticsHandler{
		service: service,
	}
}

// HandleFlowFunnelRequest handles the flow funnel request.
func (h *analyticsHandler) HandleFlowFunnelRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	days, ok := h.parseDaysParam(w, logger, r)
	if !ok {
		return
	}

	response, svcErr := h.service.GetFlowFunnel(r.PathValue("id"), days)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleCompanyFunnelRequest handles the company funnel request.
func (h *analyticsHandler) HandleCompanyFunnelRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	days, ok := h.parseDaysParam(w, logger, r)
	if !ok {
		return
	}

	response, svcErr := h.service.GetCompanyFunnel(r.PathValue("id"), days)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleSessionListRequest handles the session listing request.
func (h *analyticsHandler) HandleSessionListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	days, ok := h.parseDaysParam(w, logger, r)
	if !ok {
		return
	}

	response, svcErr := h.service.ListSessions(r.PathValue("id"), days)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// parseDaysParam parses the optional days query parameter. Zero means the
// configured default window.
func (h *analyticsHandler) parseDaysParam(w http.ResponseWriter, logger *log.Logger,
	r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		h.writeBadRequest(w, logger, "The days parameter must be a positive integer")
		return 0, false
	}
	return days, true
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (h *analyticsHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        ErrorInvalidRequestFormat.Code,
		Message:     ErrorInvalidRequestFormat.Error,
		Description: description,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// handleError maps a service error to an HTTP status and writes the error body.
func (h *analyticsHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case catalog.ErrorFlowNotFound.Code, company.ErrorCompanyNotFound.Code:
			statusCode = http.StatusNotFound
		}
	default:
		statusCode = http.StatusInternalServerError
	}

	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeJSONResponse encodes the payload with the given status code.
func writeJSONResponse(w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
