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

package catalog

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateFlow is the query to create a new flow.
	queryCreateFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-01",
		Query: `INSERT INTO ONBOARDING_FLOW (FLOW_ID, COMPANY_ID, NAME, FINAL_BONUS_COINS, IS_ACTIVE, ` +
			`CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	}

	// queryGetFlowByID is the query to get a flow by id.
	queryGetFlowByID = dbmodel.DBQuery{
		ID: "OBQ-FLO-02",
		Query: `SELECT FLOW_ID, COMPANY_ID, NAME, FINAL_BONUS_COINS, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM ONBOARDING_FLOW WHERE FLOW_ID = $1`,
	}

	// queryGetActiveFlowByCompany is the query to get the active flow of a company.
	queryGetActiveFlowByCompany = dbmodel.DBQuery{
		ID: "OBQ-FLO-03",
		Query: `SELECT FLOW_ID, COMPANY_ID, NAME, FINAL_BONUS_COINS, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM ONBOARDING_FLOW WHERE COMPANY_ID = $1 AND IS_ACTIVE = TRUE ORDER BY CREATED_AT LIMIT 1`,
	}

	// queryGetSystemDefaultFlow is the query to get the system default flow.
	queryGetSystemDefaultFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-04",
		Query: `SELECT FLOW_ID, COMPANY_ID, NAME, FINAL_BONUS_COINS, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM ONBOARDING_FLOW WHERE COMPANY_ID IS NULL AND IS_ACTIVE = TRUE ORDER BY CREATED_AT LIMIT 1`,
	}

	// queryUpdateFlow is the query to update a flow.
	queryUpdateFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-05",
		Query: `UPDATE ONBOARDING_FLOW SET NAME = $2, FINAL_BONUS_COINS = $3, IS_ACTIVE = $4, ` +
			`UPDATED_AT = $5 WHERE FLOW_ID = $1`,
	}

	// queryGetStepsByFlow is the query to list the active steps of a flow in order.
	queryGetStepsByFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-06",
		Query: `SELECT STEP_ID, FLOW_ID, KIND, TITLE, BODY, IS_REQUIRED, COINS_AWARD, XP_AWARD, ` +
			`ORDER_INDEX, IS_ACTIVE, IS_IMMUTABLE, CONFIG FROM ONBOARDING_STEP ` +
			`WHERE FLOW_ID = $1 AND IS_ACTIVE = TRUE ORDER BY ORDER_INDEX`,
	}

	// queryGetAllStepsByFlow is the query to list every step of a flow in order.
	queryGetAllStepsByFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-07",
		Query: `SELECT STEP_ID, FLOW_ID, KIND, TITLE, BODY, IS_REQUIRED, COINS_AWARD, XP_AWARD, ` +
			`ORDER_INDEX, IS_ACTIVE, IS_IMMUTABLE, CONFIG FROM ONBOARDING_STEP ` +
			`WHERE FLOW_ID = $1 ORDER BY ORDER_INDEX`,
	}

	// queryGetStepByID is the query to get a step by id.
	queryGetStepByID = dbmodel.DBQuery{
		ID: "OBQ-FLO-08",
		Query: `SELECT STEP_ID, FLOW_ID, KIND, TITLE, BODY, IS_REQUIRED, COINS_AWARD, XP_AWARD, ` +
			`ORDER_INDEX, IS_ACTIVE, IS_IMMUTABLE, CONFIG FROM ONBOARDING_STEP WHERE STEP_ID = $1`,
	}

	// queryCreateStep is the query to create a new step.
	queryCreateStep = dbmodel.DBQuery{
		ID: "OBQ-FLO-09",
		Query: `INSERT INTO ONBOARDING_STEP (STEP_ID, FLOW_ID, KIND, TITLE, BODY, IS_REQUIRED, ` +
			`COINS_AWARD, XP_AWARD, ORDER_INDEX, IS_ACTIVE, IS_IMMUTABLE, CONFIG) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
	}

	// queryUpdateStep is the query to update a step.
	queryUpdateStep = dbmodel.DBQuery{
		ID: "OBQ-FLO-10",
		Query: `UPDATE ONBOARDING_STEP SET TITLE = $2, BODY = $3, IS_REQUIRED = $4, COINS_AWARD = $5, ` +
			`XP_AWARD = $6, IS_ACTIVE = $7, CONFIG = $8 WHERE STEP_ID = $1`,
	}

	// queryUpdateStepOrder is the query to re-assign a step's order position.
	queryUpdateStepOrder = dbmodel.DBQuery{
		ID:    "OBQ-FLO-11",
		Query: `UPDATE ONBOARDING_STEP SET ORDER_INDEX = $2 WHERE STEP_ID = $1`,
	}

	// queryDeactivateStep is the query to deactivate a step.
	queryDeactivateStep = dbmodel.DBQuery{
		ID:    "OBQ-FLO-12",
		Query: `UPDATE ONBOARDING_STEP SET IS_ACTIVE = FALSE WHERE STEP_ID = $1`,
	}

	// queryGetOptionsByFlow is the query to list the options of every step of a flow.
	queryGetOptionsByFlow = dbmodel.DBQuery{
		ID: "OBQ-FLO-13",
		Query: `SELECT O.OPTION_ID, O.STEP_ID, O.OPTION_KEY, O.TITLE, O.BODY, O.ORDER_INDEX ` +
			`FROM ONBOARDING_STEP_OPTION O JOIN ONBOARDING_STEP S ON O.STEP_ID = S.STEP_ID ` +
			`WHERE S.FLOW_ID = $1 ORDER BY O.STEP_ID, O.ORDER_INDEX`,
	}

	// queryGetOptionsByStep is the query to list the options of a step in order.
	queryGetOptionsByStep = dbmodel.DBQuery{
		ID: "OBQ-FLO-14",
		Query: `SELECT OPTION_ID, STEP_ID, OPTION_KEY, TITLE, BODY, ORDER_INDEX ` +
			`FROM ONBOARDING_STEP_OPTION WHERE STEP_ID = $1 ORDER BY ORDER_INDEX`,
	}

	// queryGetOptionByID is the query to get a step option by id.
	queryGetOptionByID = dbmodel.DBQuery{
		ID: "OBQ-FLO-15",
		Query: `SELECT OPTION_ID, STEP_ID, OPTION_KEY, TITLE, BODY, ORDER_INDEX ` +
			`FROM ONBOARDING_STEP_OPTION WHERE OPTION_ID = $1`,
	}

	// queryCreateOption is the query to create a new step option.
	queryCreateOption = dbmodel.DBQuery{
		ID: "OBQ-FLO-16",
		Query: `INSERT INTO ONBOARDING_STEP_OPTION (OPTION_ID, STEP_ID, OPTION_KEY, TITLE, BODY, ` +
			`ORDER_INDEX) VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// queryUpdateOption is the query to update a step option.
	queryUpdateOption = dbmodel.DBQuery{
		ID: "OBQ-FLO-17",
		Query: `UPDATE ONBOARDING_STEP_OPTION SET OPTION_KEY = $2, TITLE = $3, BODY = $4, ` +
			`ORDER_INDEX = $5 WHERE OPTION_ID = $1`,
	}

	// queryDeleteOption is the query to delete a step option.
	queryDeleteOption = dbmodel.DBQuery{
		ID:    "OBQ-FLO-18",
		Query: `DELETE FROM ONBOARDING_STEP_OPTION WHERE OPTION_ID = $1`,
	}

	// queryCheckOptionKeyConflict is the query to check for a duplicate option key in a step.
	queryCheckOptionKeyConflict = dbmodel.DBQuery{
		ID:    "OBQ-FLO-19",
		Query: `SELECT COUNT(*) AS count FROM ONBOARDING_STEP_OPTION WHERE STEP_ID = $1 AND OPTION_KEY = $2`,
	}

	// queryGetMaxStepOrder is the query to get the highest active order position in a flow.
	queryGetMaxStepOrder = dbmodel.DBQuery{
		ID: "OBQ-FLO-20",
		Query: `SELECT COALESCE(MAX(ORDER_INDEX), -1) AS max_order FROM ONBOARDING_STEP ` +
			`WHERE FLOW_ID = $1 AND IS_ACTIVE = TRUE`,
	}
)
