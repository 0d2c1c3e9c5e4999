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

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryGetItemByID is the query to get a store item by id.
	queryGetItemByID = dbmodel.DBQuery{
		ID: "OBQ-RWD-01",
		Query: `SELECT ITEM_ID, COMPANY_ID, TYPE, TITLE, COST_COINS, STOCK, MIN_LEVEL, PAYLOAD, ` +
			`IS_ACTIVE, CREATED_AT FROM STORE_ITEM WHERE ITEM_ID = $1`,
	}

	// queryGetAffordableItems is the query to list active items a participant can
	// afford, most expensive first. Items with exhausted stock are excluded.
	queryGetAffordableItems = dbmodel.DBQuery{
		ID: "OBQ-RWD-02",
		Query: `SELECT ITEM_ID, COMPANY_ID, TYPE, TITLE, COST_COINS, STOCK, MIN_LEVEL, PAYLOAD, ` +
			`IS_ACTIVE, CREATED_AT FROM STORE_ITEM WHERE (COMPANY_ID IS NULL OR COMPANY_ID = $1) ` +
			`AND IS_ACTIVE = TRUE AND COST_COINS <= $2 AND (STOCK IS NULL OR STOCK > 0) ` +
			`ORDER BY COST_COINS DESC, CREATED_AT LIMIT $3`,
	}

	// queryDecrementItemStock is the query to consume one unit of limited stock.
	// Unlimited items carry a null stock and are not touched.
	queryDecrementItemStock = dbmodel.DBQuery{
		ID: "OBQ-RWD-03",
		Query: `UPDATE STORE_ITEM SET STOCK = STOCK - 1 ` +
			`WHERE ITEM_ID = $1 AND STOCK IS NOT NULL AND STOCK > 0`,
	}
)
