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
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for flow catalog operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorFlowNotFound is the error returned when a flow is not found.
	ErrorFlowNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60002",
		Error:            "Flow not found",
		ErrorDescription: "The flow with the specified id does not exist",
	}
	// ErrorStepNotFound is the error returned when a step is not found.
	ErrorStepNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60003",
		Error:            "Step not found",
		ErrorDescription: "The step with the specified id does not exist",
	}
	// ErrorOptionNotFound is the error returned when a step option is not found.
	ErrorOptionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60004",
		Error:            "Option not found",
		ErrorDescription: "The step option with the specified id does not exist",
	}
	// ErrorInvalidStepKind is the error returned when a step kind is not recognized.
	ErrorInvalidStepKind = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60005",
		Error:            "Invalid step kind",
		ErrorDescription: "The step kind is not one of the supported kinds",
	}
	// ErrorImmutableStep is the error returned when an immutable step is modified.
	ErrorImmutableStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60006",
		Error:            "Step is immutable",
		ErrorDescription: "The contact capture step cannot be removed or repositioned",
	}
	// ErrorInvalidReorder is the error returned when a reorder request is inconsistent.
	ErrorInvalidReorder = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60007",
		Error:            "Invalid reorder request",
		ErrorDescription: "The ordered step ids must match the flow's active steps exactly",
	}
	// ErrorOptionKeyConflict is the error returned when an option key already exists in a step.
	ErrorOptionKeyConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60008",
		Error:            "Option key conflict",
		ErrorDescription: "An option with the same key already exists in the step",
	}
	// ErrorStepValidationFailed is the error returned when a step payload fails validation.
	ErrorStepValidationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60009",
		Error:            "Step validation failed",
		ErrorDescription: "The submitted payload does not satisfy the step's validation rules",
	}
	// ErrorNoActiveSteps is the error returned when a flow has no active steps.
	ErrorNoActiveSteps = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-60010",
		Error:            "No active steps",
		ErrorDescription: "The flow has no active steps",
	}
)

// Server errors for flow catalog operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLO-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Store level sentinel errors.
var (
	// ErrFlowNotFound is returned by the store when a flow row does not exist.
	ErrFlowNotFound = errors.New("flow not found")
	// ErrStepNotFound is returned by the store when a step row does not exist.
	ErrStepNotFound = errors.New("step not found")
	// ErrOptionNotFound is returned by the store when an option row does not exist.
	ErrOptionNotFound = errors.New("option not found")
)
