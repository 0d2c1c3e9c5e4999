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
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for session orchestration operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorUnauthorized is the error returned when no session can be resolved for the caller.
	ErrorUnauthorized = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60002",
		Error:            "Session not resolvable",
		ErrorDescription: "No onboarding session matches the presented token",
	}
	// ErrorStepNotInFlow is the error returned when a step does not belong to the session's flow.
	ErrorStepNotInFlow = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60003",
		Error:            "Step not in flow",
		ErrorDescription: "The step does not belong to the session's active flow",
	}
	// ErrorDuplicateSubmission is the error returned when a step was already submitted.
	ErrorDuplicateSubmission = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60004",
		Error:            "Step already submitted",
		ErrorDescription: "A submission for this step has already been recorded",
	}
	// ErrorSessionFinished is the error returned when a finished session is mutated.
	ErrorSessionFinished = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60005",
		Error:            "Session already finished",
		ErrorDescription: "The onboarding session has already been completed",
	}
	// ErrorRequiredStepsIncomplete is the error returned when finish is attempted early.
	ErrorRequiredStepsIncomplete = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60006",
		Error:            "Required steps incomplete",
		ErrorDescription: "Every required step must be submitted before finishing",
	}
	// ErrorRewardAlreadyPicked is the error returned when a session picks a second reward.
	ErrorRewardAlreadyPicked = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60007",
		Error:            "Reward already picked",
		ErrorDescription: "The session has already picked a reward",
	}
	// ErrorNoInterviewStep is the error returned when the flow has no interview invite step.
	ErrorNoInterviewStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SES-60008",
		Error:            "No interview step",
		ErrorDescription: "The session's flow does not contain an interview invite step",
	}
)

// Server errors for session orchestration operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SES-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Store level sentinel errors.
var (
	// ErrSessionNotFound is returned by the store when a session row does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrRecordNotFound is returned by the store when a step record row does not exist.
	ErrRecordNotFound = errors.New("step record not found")
	// ErrChoiceNotFound is returned by the store when a reward choice row does not exist.
	ErrChoiceNotFound = errors.New("reward choice not found")
)
