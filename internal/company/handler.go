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
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "CompanyHandler"

// companyHandler handles company management API requests.
type companyHandler struct {
	service CompanyServiceInterface
}

// newCompanyHandler creates a new instance of companyHandler.
func newCompanyHandler(service CompanyServiceInterface) *companyHandler {
	return &companyHandler{
		service: service,
	}
}

// HandleCompanyPostRequest handles the create company request.
func (ch *companyHandler) HandleCompanyPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[CompanyRequest](r)
	if err != nil {
		ch.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}

	sanitized := CompanyRequest{
		Name: sysutils.SanitizeString(createRequest.Name),
		Slug: sysutils.SanitizeString(createRequest.Slug),
	}

	company, svcErr := ch.service.CreateCompany(sanitized)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, company)
}

// HandleCompanyListRequest handles the list companies request.
func (ch *companyHandler) HandleCompanyListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	limit, offset, svcErr := parsePaginationParams(r.URL.Query())
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	listResponse, svcErr := ch.service.GetCompanyList(limit, offset)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleCompanyGetRequest handles the get company by id request.
func (ch *companyHandler) HandleCompanyGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		ch.writeBadRequest(w, logger, "Company id is required")
		return
	}

	company, svcErr := ch.service.GetCompany(id)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, company)
}

// HandleInvitePostRequest handles the generate invite request.
func (ch *companyHandler) HandleInvitePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	companyID := r.PathValue("id")
	if companyID == "" {
		ch.writeBadRequest(w, logger, "Company id is required")
		return
	}

	invite, svcErr := ch.service.GenerateInvite(companyID)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, invite)
}

// HandleInviteGetRequest handles the get active invite request.
func (ch *companyHandler) HandleInviteGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	companyID := r.PathValue("id")
	if companyID == "" {
		ch.writeBadRequest(w, logger, "Company id is required")
		return
	}

	invite, svcErr := ch.service.GetActiveInvite(companyID)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, invite)
}

// HandleInviteDeleteRequest handles the deactivate invite request.
func (ch *companyHandler) HandleInviteDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	companyID := r.PathValue("id")
	if companyID == "" {
		ch.writeBadRequest(w, logger, "Company id is required")
		return
	}

	if svcErr := ch.service.DeactivateInvite(companyID); svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (ch *companyHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
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
func (ch *companyHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		if svcErr.Code == ErrorCompanyNotFound.Code || svcErr.Code == ErrorInviteNotFound.Code {
			statusCode = http.StatusNotFound
		} else if svcErr.Code == ErrorCompanyConflict.Code {
			statusCode = http.StatusConflict
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

// parsePaginationParams parses limit and offset query parameters from the request.
func parsePaginationParams(query url.Values) (int, int, *serviceerror.ServiceError) {
	limit := serverconst.DefaultPageSize
	offset := 0

	if limitStr := query.Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit <= 0 {
			return 0, 0, &ErrorInvalidPagination
		}
		limit = parsedLimit
	}
	if limit > serverconst.MaxPageSize {
		limit = serverconst.MaxPageSize
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil || parsedOffset < 0 {
			return 0, 0, &ErrorInvalidPagination
		}
		offset = parsedOffset
	}

	return limit, offset, nil
}
