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
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for company management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorCompanyNotFound is the error returned when a company is not found.
	ErrorCompanyNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60002",
		Error:            "Company not found",
		ErrorDescription: "The company with the specified id does not exist",
	}
	// ErrorCompanyConflict is the error returned when a company name or slug already exists.
	ErrorCompanyConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60003",
		Error:            "Company already exists",
		ErrorDescription: "A company with the same name or slug already exists",
	}
	// ErrorInviteNotFound is the error returned when no active invite exists.
	ErrorInviteNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60004",
		Error:            "Invite not found",
		ErrorDescription: "No active invite exists for the specified company",
	}
	// ErrorInvalidPagination is the error returned when pagination parameters are invalid.
	ErrorInvalidPagination = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60005",
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The limit must be positive and the offset non-negative",
	}
)

// Server errors for company management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMP-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Store level sentinel errors.
var (
	// ErrCompanyNotFound is returned by the store when a company row does not exist.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInviteNotFound is returned by the store when an invite row does not exist.
	ErrInviteNotFound = errors.New("invite not found")
)
