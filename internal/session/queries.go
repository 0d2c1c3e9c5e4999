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

package session

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateSession is the query to create a new onboarding session.
	queryCreateSession = dbmodel.DBQuery{
		ID: "OBQ-SES-01",
		Query: `INSERT INTO ONBOARDING_SESSION (SESSION_ID, TOKEN, COMPANY_ID, FLOW_ID, STATE, ` +
			`COINS_TOTAL, XP_TOTAL, CONTACT_DRAFT, ACCOUNT_ID, STARTED_AT, FINISHED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
	}

	// queryGetSessionByToken is the query to get a session by its token.
	queryGetSessionByToken = dbmodel.DBQuery{
		ID: "OBQ-SES-02",
		Query: `SELECT SESSION_ID, TOKEN, COMPANY_ID, FLOW_ID, STATE, COINS_TOTAL, XP_TOTAL, ` +
			`CONTACT_DRAFT, ACCOUNT_ID, STARTED_AT, FINISHED_AT FROM ONBOARDING_SESSION WHERE TOKEN = $1`,
	}

	// queryGetSessionByID is the query to get a session by its id.
	queryGetSessionByID = dbmodel.DBQuery{
		ID: "OBQ-SES-03",
		Query: `SELECT SESSION_ID, TOKEN, COMPANY_ID, FLOW_ID, STATE, COINS_TOTAL, XP_TOTAL, ` +
			`CONTACT_DRAFT, ACCOUNT_ID, STARTED_AT, FINISHED_AT FROM ONBOARDING_SESSION ` +
			`WHERE SESSION_ID = $1`,
	}

	// queryUpdateSessionDraft is the query to replace a session's contact draft.
	queryUpdateSessionDraft = dbmodel.DBQuery{
		ID:    "OBQ-SES-04",
		Query: `UPDATE ONBOARDING_SESSION SET CONTACT_DRAFT = $2 WHERE SESSION_ID = $1`,
	}

	// queryUpdateSessionTotals is the query to set a session's running totals.
	queryUpdateSessionTotals = dbmodel.DBQuery{
		ID:    "OBQ-SES-05",
		Query: `UPDATE ONBOARDING_SESSION SET COINS_TOTAL = $2, XP_TOTAL = $3 WHERE SESSION_ID = $1`,
	}

	// queryFinishSession is the query to mark a session finished with its final totals.
	queryFinishSession = dbmodel.DBQuery{
		ID: "OBQ-SES-06",
		Query: `UPDATE ONBOARDING_SESSION SET STATE = $2, COINS_TOTAL = $3, FINISHED_AT = $4 ` +
			`WHERE SESSION_ID = $1`,
	}

	// queryStampSessionAccount is the query to bind a session to a registered account.
	queryStampSessionAccount = dbmodel.DBQuery{
		ID:    "OBQ-SES-07",
		Query: `UPDATE ONBOARDING_SESSION SET ACCOUNT_ID = $2 WHERE SESSION_ID = $1`,
	}

	// queryCreateStepRecord is the query to record a step submission.
	queryCreateStepRecord = dbmodel.DBQuery{
		ID: "OBQ-SES-08",
		Query: `INSERT INTO SESSION_STEP_RECORD (RECORD_ID, SESSION_ID, STEP_ID, ORDER_INDEX, ` +
			`PAYLOAD, COINS_AWARDED, XP_AWARDED, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// queryGetStepRecords is the query to list a session's step records in order.
	queryGetStepRecords = dbmodel.DBQuery{
		ID: "OBQ-SES-09",
		Query: `SELECT RECORD_ID, SESSION_ID, STEP_ID, ORDER_INDEX, PAYLOAD, COINS_AWARDED, ` +
			`XP_AWARDED, CREATED_AT FROM SESSION_STEP_RECORD WHERE SESSION_ID = $1 ORDER BY ORDER_INDEX`,
	}

	// queryGetStepRecord is the query to get the record of one step in a session.
	queryGetStepRecord = dbmodel.DBQuery{
		ID: "OBQ-SES-10",
		Query: `SELECT RECORD_ID, SESSION_ID, STEP_ID, ORDER_INDEX, PAYLOAD, COINS_AWARDED, ` +
			`XP_AWARDED, CREATED_AT FROM SESSION_STEP_RECORD WHERE SESSION_ID = $1 AND STEP_ID = $2`,
	}

	// queryCreateRewardChoice is the query to record a session's reward pick.
	queryCreateRewardChoice = dbmodel.DBQuery{
		ID: "OBQ-SES-11",
		Query: `INSERT INTO REWARD_CHOICE (CHOICE_ID, SESSION_ID, STORE_ITEM_ID, COST_COINS, ` +
			`CREATED_AT) VALUES ($1, $2, $3, $4, $5)`,
	}

	// queryGetRewardChoice is the query to get a session's reward pick.
	queryGetRewardChoice = dbmodel.DBQuery{
		ID: "OBQ-SES-12",
		Query: `SELECT CHOICE_ID, SESSION_ID, STORE_ITEM_ID, COST_COINS, CREATED_AT ` +
			`FROM REWARD_CHOICE WHERE SESSION_ID = $1`,
	}
)
