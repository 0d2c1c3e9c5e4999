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

package ledger

import "github.com/salesjourney/onboard/internal/system/error/serviceerror"

// Client errors for economy ledger operations.
var (
	// ErrorInvalidTransfer is the error returned when a transfer request is inconsistent.
	ErrorInvalidTransfer = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LGR-60001",
		Error:            "Invalid transfer",
		ErrorDescription: "The transfer is missing an account or contains no events",
	}
	// ErrorSessionAlreadyTransferred is the error returned when a session's rewards
	// were already moved to an account.
	ErrorSessionAlreadyTransferred = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LGR-60002",
		Error:            "Session already transferred",
		ErrorDescription: "The session's rewards have already been credited to an account",
	}
)

// Server errors for economy ledger operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "LGR-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
