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

package session

import (
	"encoding/json"
	"net/http"

	"github.com/salesjourney/onboard/internal/catalog"
	"github.com/salesjourney/onboard/internal/link"
	"github.com/salesjourney/onboard/internal/reward"
	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "SessionHandler"

// sessionHandler handles participant-facing onboarding API requests.
type sessionHandler struct {
	service SessionServiceInterface
}

// newSessionHandler creates a new instance of sessionHandler.
func newSessionHandler(service SessionServiceInterface) *sessionHandler {
	return &sessionHandler{
		service: service,
	}
}

// HandleStartRequest handles the start session request.
func (sh *sessionHandler) HandleStartRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	callerToken := ResolveSessionToken(r)

	startRequest, err := sysutils.DecodeJSONBody[StartRequest](r)
	if err != nil {
		sh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	code := sysutils.SanitizeString(startRequest.Code)
	if code == "" {
		sh.writeBadRequest(w, logger, "Entry code is required")
		return
	}

	response, svcErr := sh.service.Start(code, callerToken)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	statusCode := http.StatusCreated
	if response.Resumed {
		statusCode = http.StatusOK
	}
	writeJSONResponse(w, logger, statusCode, response)
}

// HandleStateRequest handles the get session state request.
func (sh *sessionHandler) HandleStateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	response, svcErr := sh.service.GetState(ResolveSessionToken(r))
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleSubmitStepRequest handles the submit step request.
func (sh *sessionHandler) HandleSubmitStepRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	stepID := r.PathValue("stepId")
	if stepID == "" {
		sh.writeBadRequest(w, logger, "Step id is required")
		return
	}

	token := ResolveSessionToken(r)

	submitRequest, err := sysutils.DecodeJSONBody[SubmitStepRequest](r)
	if err != nil {
		sh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}

	payload := catalog.StepPayload{
		Fields: submitRequest.Fields,
		Key:    sysutils.SanitizeString(submitRequest.Key),
		Value:  submitRequest.Value,
	}

	response, svcErr := sh.service.SubmitStep(token, stepID, payload)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleFinishRequest handles the finish session request.
func (sh *sessionHandler) HandleFinishRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	response, svcErr := sh.service.Finish(ResolveSessionToken(r))
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandlePickRewardRequest handles the pick reward request.
func (sh *sessionHandler) HandlePickRewardRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	token := ResolveSessionToken(r)

	pickRequest, err := sysutils.DecodeJSONBody[PickRewardRequest](r)
	if err != nil {
		sh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}

	response, svcErr := sh.service.PickReward(token, pickRequest.StoreItemID)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleInterviewRequest handles the interview info request.
func (sh *sessionHandler) HandleInterviewRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	response, svcErr := sh.service.GetInterviewInfo(ResolveSessionToken(r))
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (sh *sessionHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
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
func (sh *sessionHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case ErrorUnauthorized.Code:
			statusCode = http.StatusUnauthorized
		case ErrorStepNotInFlow.Code, ErrorNoInterviewStep.Code,
			link.ErrorEntryCodeNotFound.Code, reward.ErrorItemNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorDuplicateSubmission.Code, ErrorSessionFinished.Code,
			ErrorRewardAlreadyPicked.Code, reward.ErrorItemOutOfStock.Code:
			statusCode = http.StatusConflict
		case link.ErrorLinkGone.Code:
			statusCode = http.StatusGone
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
