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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/salesjourney/onboard/internal/system/config"
)

// mockRewardStore is a func-field mock of rewardStoreInterface.
type mockRewardStore struct {
	getItemFunc            func(id string) (StoreItem, error)
	getAffordableItemsFunc func(companyID string, coins, limit int) ([]StoreItem, error)
	decrementStockFunc     func(id string) error
}

func (m *mockRewardStore) GetItem(id string) (StoreItem, error) {
	return m.getItemFunc(id)
}
func (m *mockRewardStore) GetAffordableItems(companyID string, coins, limit int) (
	[]StoreItem, error) {
	return m.getAffordableItemsFunc(companyID, coins, limit)
}
func (m *mockRewardStore) DecrementStock(id string) error {
	return m.decrementStockFunc(id)
}

type RewardServiceTestSuite struct {
	suite.Suite
	store   *mockRewardStore
	service *rewardService
}

func TestRewardServiceSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceTestSuite))
}

func (suite *RewardServiceTestSuite) SetupSuite() {
	_ = config.InitializeOnboardRuntime("", &config.Config{
		Cache:      config.CacheConfig{Disabled: true},
		Onboarding: config.OnboardingConfig{RewardShortlistSize: 5},
	})
}

func (suite *RewardServiceTestSuite) SetupTest() {
	suite.store = &mockRewardStore{}
	suite.service = &rewardService{store: suite.store}
}

func (suite *RewardServiceTestSuite) TestGetItemNotFound() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{}, ErrItemNotFound
	}

	_, svcErr := suite.service.GetItem("item-missing")
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorItemNotFound.Code, svcErr.Code)
}

func (suite *RewardServiceTestSuite) TestGetAffordableItemsPassesShortlistLimit() {
	var gotLimit int
	suite.store.getAffordableItemsFunc = func(companyID string, coins, limit int) (
		[]StoreItem, error) {
		gotLimit = limit
		return []StoreItem{
			{ID: "item-1", Title: "Hoodie", CostCoins: 60, IsActive: true},
			{ID: "item-2", Title: "Sticker pack", CostCoins: 40, IsActive: true},
		}, nil
	}

	items, svcErr := suite.service.GetAffordableItems("company-1", 65)
	assert.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), 5, gotLimit)
}

func (suite *RewardServiceTestSuite) TestGetAffordableItemsNegativeBalance() {
	items, svcErr := suite.service.GetAffordableItems("company-1", -1)
	assert.Nil(suite.T(), svcErr)
	assert.Empty(suite.T(), items)
}

func (suite *RewardServiceTestSuite) TestRedeemInactiveItemNotFound() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{ID: id, CostCoins: 10, IsActive: false}, nil
	}

	_, svcErr := suite.service.RedeemItem("item-1", 100)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorItemNotFound.Code, svcErr.Code)
}

func (suite *RewardServiceTestSuite) TestRedeemUnaffordableItem() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{ID: id, CostCoins: 100, IsActive: true}, nil
	}

	_, svcErr := suite.service.RedeemItem("item-1", 65)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorItemNotAffordable.Code, svcErr.Code)
}

func (suite *RewardServiceTestSuite) TestRedeemOutOfStock() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{ID: id, CostCoins: 40, IsActive: true}, nil
	}
	suite.store.decrementStockFunc = func(id string) error {
		return ErrOutOfStock
	}

	_, svcErr := suite.service.RedeemItem("item-1", 65)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorItemOutOfStock.Code, svcErr.Code)
}

func (suite *RewardServiceTestSuite) TestRedeemConsumesStock() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{ID: id, Title: "Sticker pack", CostCoins: 40, IsActive: true}, nil
	}
	var decremented string
	suite.store.decrementStockFunc = func(id string) error {
		decremented = id
		return nil
	}

	item, svcErr := suite.service.RedeemItem("item-1", 65)
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "item-1", decremented)
	assert.Equal(suite.T(), 40, item.CostCoins)
}

func (suite *RewardServiceTestSuite) TestRedeemStoreFailure() {
	suite.store.getItemFunc = func(id string) (StoreItem, error) {
		return StoreItem{}, errors.New("query failed")
	}

	_, svcErr := suite.service.RedeemItem("item-1", 65)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}
