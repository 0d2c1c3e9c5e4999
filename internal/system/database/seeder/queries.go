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

package seeder

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCheckDefaultFlowExists checks whether the system default flow is already provisioned.
	queryCheckDefaultFlowExists = dbmodel.DBQuery{
		ID:    "OBQ-SEED-01",
		Query: "SELECT COUNT(*) AS count FROM ONBOARDING_FLOW WHERE COMPANY_ID IS NULL",
	}

	// queryInsertFlow inserts the system default flow.
	queryInsertFlow = dbmodel.DBQuery{
		ID: "OBQ-SEED-02",
		Query: "INSERT INTO ONBOARDING_FLOW (FLOW_ID, COMPANY_ID, NAME, FINAL_BONUS_COINS, IS_ACTIVE, " +
			"CREATED_AT, UPDATED_AT) VALUES ($1, NULL, $2, $3, $4, $5, $6)",
	}

	// queryInsertStep inserts a step of the system default flow.
	queryInsertStep = dbmodel.DBQuery{
		ID: "OBQ-SEED-03",
		Query: "INSERT INTO ONBOARDING_STEP (STEP_ID, FLOW_ID, KIND, TITLE, BODY, IS_REQUIRED, COINS_AWARD, " +
			"XP_AWARD, ORDER_INDEX, IS_ACTIVE, IS_IMMUTABLE, CONFIG) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)",
	}

	// queryInsertStepOption inserts an option of a single-choice step.
	queryInsertStepOption = dbmodel.DBQuery{
		ID: "OBQ-SEED-04",
		Query: "INSERT INTO ONBOARDING_STEP_OPTION (OPTION_ID, STEP_ID, OPTION_KEY, TITLE, BODY, ORDER_INDEX) " +
			"VALUES ($1, $2, $3, $4, $5, $6)",
	}

	// queryCheckStoreItemsExist checks whether global store items are already provisioned.
	queryCheckStoreItemsExist = dbmodel.DBQuery{
		ID:    "OBQ-SEED-05",
		Query: "SELECT COUNT(*) AS count FROM STORE_ITEM WHERE COMPANY_ID IS NULL",
	}

	// queryInsertStoreItem inserts a globally visible store item.
	queryInsertStoreItem = dbmodel.DBQuery{
		ID: "OBQ-SEED-06",
		Query: "INSERT INTO STORE_ITEM (ITEM_ID, COMPANY_ID, TYPE, TITLE, COST_COINS, STOCK, MIN_LEVEL, " +
			"PAYLOAD, IS_ACTIVE, CREATED_AT) VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, $8, $9)",
	}
)
