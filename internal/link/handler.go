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
	"encoding/json"
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/company"
	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "LinkHandler"

// linkHandler handles link resolver API requests.
type linkHandler struct {
	service LinkServiceInterface
}

// newLinkHandler creates a new instance of linkHandler.
func newLinkHandler(service LinkServiceInterface) *linkHandler {
	return &linkHandler{
		service: service,
	}
}

// HandleResolveRequest handles the public entry code resolution request.
func (lh *linkHandler) HandleResolveRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	code := sysutils.SanitizeString(r.PathValue("code"))
	if code == "" {
		lh.writeBadRequest(w, logger, "Entry code is required")
		return
	}

	resolution, svcErr := lh.service.Resolve(code)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, resolution)
}

// HandleLinkPostRequest handles the create link request.
func (lh *linkHandler) HandleLinkPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[LinkRequest](r)
	if err != nil {
		lh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	createRequest.Slug = sysutils.SanitizeString(createRequest.Slug)

	link, svcErr := lh.service.CreateLink(*createRequest)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, link)
}

// HandleLinkGetRequest handles the get link request.
func (lh *linkHandler) HandleLinkGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		lh.writeBadRequest(w, logger, "Link id is required")
		return
	}

	link, svcErr := lh.service.GetLink(id)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, link)
}

// HandleLinkListRequest handles the list company links request.
func (lh *linkHandler) HandleLinkListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	companyID := r.PathValue("id")
	if companyID == "" {
		lh.writeBadRequest(w, logger, "Company id is required")
		return
	}

	links, svcErr := lh.service.GetLinksByCompany(companyID)
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, links)
}

// HandleLinkDeleteRequest handles the deactivate link request.
func (lh *linkHandler) HandleLinkDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		lh.writeBadRequest(w, logger, "Link id is required")
		return
	}

	if svcErr := lh.service.DeactivateLink(id); svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (lh *linkHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
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
func (lh *linkHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case ErrorEntryCodeNotFound.Code, ErrorLinkNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorLinkGone.Code:
			statusCode = http.StatusGone
		case ErrorSlugConflict.Code:
			statusCode = http.StatusConflict
		default:
			// Errors raised by collaborating services keep their own mapping.
			if isNotFoundCode(svcErr.Code) {
				statusCode = http.StatusNotFound
			}
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

// isNotFoundCode reports whether a collaborating service error denotes a missing entity.
func isNotFoundCode(code string) bool {
	switch code {
	case company.ErrorCompanyNotFound.Code, company.ErrorInviteNotFound.Code,
		catalog.ErrorFlowNotFound.Code, catalog.ErrorStepNotFound.Code:
		return true
	default:
		return false
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
