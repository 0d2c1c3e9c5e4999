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
	"encoding/json"
	"net/http"

	serverconst "github.com/salesjourney/onboard/internal/system/constants"
	"github.com/salesjourney/onboard/internal/system/error/apierror"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
	sysutils "github.com/salesjourney/onboard/internal/system/utils"
)

const loggerComponentName = "FlowCatalogHandler"

// flowHandler handles flow catalog authoring API requests.
type flowHandler struct {
	service FlowServiceInterface
}

// newFlowHandler creates a new instance of flowHandler.
func newFlowHandler(service FlowServiceInterface) *flowHandler {
	return &flowHandler{
		service: service,
	}
}

// HandleFlowPostRequest handles the create flow request.
func (fh *flowHandler) HandleFlowPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[FlowRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	createRequest.Name = sysutils.SanitizeString(createRequest.Name)

	flow, svcErr := fh.service.CreateFlow(createRequest.CompanyID, *createRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, flow)
}

// HandleFlowGetRequest handles the get flow request.
func (fh *flowHandler) HandleFlowGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}

	detail, svcErr := fh.service.GetFlow(id)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, detail)
}

// HandleFlowPutRequest handles the update flow request.
func (fh *flowHandler) HandleFlowPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[FlowRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	updateRequest.Name = sysutils.SanitizeString(updateRequest.Name)

	flow, svcErr := fh.service.UpdateFlow(id, *updateRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, flow)
}

// HandleFlowCloneRequest handles the clone flow request.
func (fh *flowHandler) HandleFlowCloneRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}

	cloneRequest, err := sysutils.DecodeJSONBody[CloneRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	if cloneRequest.CompanyID == "" {
		fh.writeBadRequest(w, logger, "Target company id is required")
		return
	}

	detail, svcErr := fh.service.CloneFlow(id, cloneRequest.CompanyID)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, detail)
}

// HandleStepListRequest handles the list flow steps request.
func (fh *flowHandler) HandleStepListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	steps, svcErr := fh.service.ListSteps(id, includeInactive)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, steps)
}

// HandleStepPostRequest handles the create step request.
func (fh *flowHandler) HandleStepPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}

	stepRequest, err := sysutils.DecodeJSONBody[StepRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	stepRequest.Title = sysutils.SanitizeString(stepRequest.Title)

	step, svcErr := fh.service.CreateStep(id, *stepRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, step)
}

// HandleReorderRequest handles the reorder flow steps request.
func (fh *flowHandler) HandleReorderRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Flow id is required")
		return
	}

	reorderRequest, err := sysutils.DecodeJSONBody[ReorderRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}

	if svcErr := fh.service.Reorder(id, *reorderRequest); svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStepGetRequest handles the get step request.
func (fh *flowHandler) HandleStepGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Step id is required")
		return
	}

	step, svcErr := fh.service.GetStep(id)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, step)
}

// HandleStepPutRequest handles the update step request.
func (fh *flowHandler) HandleStepPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Step id is required")
		return
	}

	stepRequest, err := sysutils.DecodeJSONBody[StepRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	stepRequest.Title = sysutils.SanitizeString(stepRequest.Title)

	step, svcErr := fh.service.UpdateStep(id, *stepRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, step)
}

// HandleStepDeleteRequest handles the deactivate step request.
func (fh *flowHandler) HandleStepDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Step id is required")
		return
	}

	if svcErr := fh.service.RemoveStep(id); svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleOptionPostRequest handles the create step option request.
func (fh *flowHandler) HandleOptionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	stepID := r.PathValue("id")
	if stepID == "" {
		fh.writeBadRequest(w, logger, "Step id is required")
		return
	}

	optionRequest, err := sysutils.DecodeJSONBody[OptionRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	optionRequest.Key = sysutils.SanitizeString(optionRequest.Key)
	optionRequest.Title = sysutils.SanitizeString(optionRequest.Title)

	option, svcErr := fh.service.CreateOption(stepID, *optionRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, option)
}

// HandleOptionPutRequest handles the update step option request.
func (fh *flowHandler) HandleOptionPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Option id is required")
		return
	}

	optionRequest, err := sysutils.DecodeJSONBody[OptionRequest](r)
	if err != nil {
		fh.writeBadRequest(w, logger, "Failed to parse request body: "+err.Error())
		return
	}
	optionRequest.Key = sysutils.SanitizeString(optionRequest.Key)
	optionRequest.Title = sysutils.SanitizeString(optionRequest.Title)

	option, svcErr := fh.service.UpdateOption(id, *optionRequest)
	if svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, option)
}

// HandleOptionDeleteRequest handles the delete step option request.
func (fh *flowHandler) HandleOptionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		fh.writeBadRequest(w, logger, "Option id is required")
		return
	}

	if svcErr := fh.service.DeleteOption(id); svcErr != nil {
		fh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeBadRequest writes a 400 response with the invalid request format code.
func (fh *flowHandler) writeBadRequest(w http.ResponseWriter, logger *log.Logger, description string) {
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
func (fh *flowHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case ErrorFlowNotFound.Code, ErrorStepNotFound.Code, ErrorOptionNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorOptionKeyConflict.Code, ErrorImmutableStep.Code:
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
