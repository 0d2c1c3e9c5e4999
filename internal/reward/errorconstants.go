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

package reward

import (
	"errors"

	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
)

// Client errors for reward shop operations.
var (
	// ErrorItemNotFound is the error returned when a store item is not found.
	ErrorItemNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "RWD-60001",
		Error:            "Store item not found",
		ErrorDescription: "The store item with the specified id does not exist or is not available",
	}
	// ErrorItemNotAffordable is the error returned when an item costs more than the balance.
	ErrorItemNotAffordable = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "RWD-60003",
		Error:            "Store item not affordable",
		ErrorDescription: "The store item costs more than the available coin balance",
	}
	// ErrorItemOutOfStock is the error returned when a store item has no stock left.
	ErrorItemOutOfStock = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "RWD-60002",
		Error:            "Store item out of stock",
		ErrorDescription: "The store item has no remaining stock",
	}
)

// Server errors for reward shop operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "RWD-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Store level sentinel errors.
var (
	// ErrItemNotFound is returned by the store when a store item row does not exist.
	ErrItemNotFound = errors.New("store item not found")
	// ErrOutOfStock is returned by the store when a stock decrement finds no stock left.
	ErrOutOfStock = errors.New("store item out of stock")
)
