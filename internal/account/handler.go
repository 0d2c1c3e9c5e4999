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

package account

import (
	"encoding/json"
	"net/http"

	"github.com/salesjourney/onboard/internal/ledger"
	"github.com/salesjourney/onboard/internal/session"
	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "AccountHandler"

// accountHandler handles participant registration requests.
type accountHandler struct {
	service AccountServiceInterface
}

// newAccountHandler creates a new instance of accountHandler.
func newAccountHandler(service AccountServiceInterface) *accountHandler {
	return &accountHandler{
		service: service,
	}
}

// HandleRegisterRequest handles the participant registration request.
func (ah *accountHandler) HandleRegisterRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	callerToken := session.ResolveSessionToken(r)

	registerRequest, err := sysutils.DecodeJSONBody[RegisterRequest](r)
	if err != nil {
		ah.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	if registerRequest.SessionToken == "" {
		registerRequest.SessionToken = callerToken
	}

	response, svcErr := ah.service.Register(*registerRequest)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, response)
}

// HandleAccountGetRequest handles the get account request.
func (ah *accountHandler) HandleAccountGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		ah.writeBadRequest(w, logger, "Account id is required")
		return
	}

	response, svcErr := ah.service.GetAccount(id)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (ah *accountHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
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
func (ah *accountHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case ErrorUnauthorized.Code, session.ErrorUnauthorized.Code:
			statusCode = http.StatusUnauthorized
		case ErrorAccountNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorEmailConflict.Code, ErrorAlreadyRegistered.Code,
			ledger.ErrorSessionAlreadyTransferred.Code:
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
