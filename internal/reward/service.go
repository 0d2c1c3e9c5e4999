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

// Package reward serves the redeemable store items of the onboarding shop.
package reward

import (
	"errors"

	"github.com/salesjourney/onboard/internal/system/config"
	"github.com/salesjourney/onboard/internal/system/error/serviceerror"
	"github.com/salesjourney/onboard/internal/system/log"
)

const loggerComponentNameService = "RewardService"

// RewardServiceInterface defines the interface for reward shop service operations.
type RewardServiceInterface interface {
	GetItem(id string) (*StoreItem, *serviceerror.ServiceError)
	GetAffordableItems(companyID string, coins int) ([]StoreItem, *serviceerror.ServiceError)
	RedeemItem(id string, coins int) (*StoreItem, *serviceerror.ServiceError)
}

// rewardService is the default implementation of RewardServiceInterface.
type rewardService struct {
	store rewardStoreInterface
}

// newRewardService creates a new instance of rewardService.
func newRewardService() RewardServiceInterface {
	return &rewardService{
		store: newRewardStore(),
	}
}

// GetItem retrieves a store item by id.
func (rs *rewardService) GetItem(id string) (*StoreItem, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	item, err := rs.store.GetItem(id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, &ErrorItemNotFound
		}
		logger.Error("Failed to get store item", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &item, nil
}

// GetAffordableItems shortlists the active items a participant can buy with the
// given coin balance, most expensive first.
func (rs *rewardService) GetAffordableItems(companyID string, coins int) (
	[]StoreItem, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if coins < 0 {
		return []StoreItem{}, nil
	}

	limit := config.GetOnboardRuntime().Config.Onboarding.RewardShortlistSize
	items, err := rs.store.GetAffordableItems(companyID, coins, limit)
	if err != nil {
		logger.Error("Failed to list affordable items", log.Error(err),
			log.String(log.LoggerKeyCompanyID, companyID))
		return nil, &ErrorInternalServerError
	}

	return items, nil
}

// RedeemItem validates affordability and consumes stock for a reward pick.
func (rs *rewardService) RedeemItem(id string, coins int) (*StoreItem, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	item, err := rs.store.GetItem(id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, &ErrorItemNotFound
		}
		logger.Error("Failed to get store item", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if !item.IsActive {
		return nil, &ErrorItemNotFound
	}
	if item.CostCoins > coins {
		return nil, &ErrorItemNotAffordable
	}

	if err := rs.store.DecrementStock(id); err != nil {
		if errors.Is(err, ErrOutOfStock) {
			return nil, &ErrorItemOutOfStock
		}
		logger.Error("Failed to decrement item stock", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &item, nil
}
