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
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for account operations.
var (
	// ErrorInvalidRequestFormat is the error returned for malformed requests.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "ACT-60001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorUnauthorized is the error returned when no onboarding session can be resolved.
	ErrorUnauthorized = serviceerror.ServiceError{
		Code:             "ACT-60002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session not resolvable",
		ErrorDescription: "No onboarding session could be resolved for the caller",
	}
	// ErrorEmailConflict is the error returned when the email is already registered.
	ErrorEmailConflict = serviceerror.ServiceError{
		Code:             "ACT-60003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Email already registered",
		ErrorDescription: "An account with the given email address already exists",
	}
	// ErrorAccountNotFound is the error returned when the account does not exist.
	ErrorAccountNotFound = serviceerror.ServiceError{
		Code:             "ACT-60004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Account not found",
		ErrorDescription: "The account with the specified id does not exist",
	}
	// ErrorAlreadyRegistered is the error returned when the session is already
	// linked to an account.
	ErrorAlreadyRegistered = serviceerror.ServiceError{
		Code:             "ACT-60005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Session already registered",
		ErrorDescription: "The onboarding session is already linked to an account",
	}
)

// Server errors for account operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "ACT-65001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// ErrAccountNotFound is returned by the store when no account matches.
var ErrAccountNotFound = errors.New("account not found")
