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
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for link resolver operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LNK-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorEntryCodeNotFound is the error returned when an entry code resolves to nothing.
	ErrorEntryCodeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LNK-60002",
		Error:            "Entry code not found",
		ErrorDescription: "The code does not match any active onboarding link or invite",
	}
	// ErrorLinkGone is the error returned when a link is expired or exhausted.
	ErrorLinkGone = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LNK-60003",
		Error:            "Link no longer available",
		ErrorDescription: "The onboarding link has expired or reached its usage limit",
	}
	// ErrorLinkNotFound is the error returned when a link is not found.
	ErrorLinkNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LNK-60004",
		Error:            "Link not found",
		ErrorDescription: "The link with the specified id does not exist",
	}
	// ErrorSlugConflict is the error returned when a link slug is already taken.
	ErrorSlugConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LNK-60005",
		Error:            "Slug conflict",
		ErrorDescription: "A link with the same slug already exists",
	}
)

// Server errors for link resolver operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "LNK-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Store level sentinel errors.
var (
	// ErrLinkNotFound is returned by the store when a link row does not exist.
	ErrLinkNotFound = errors.New("link not found")
)
