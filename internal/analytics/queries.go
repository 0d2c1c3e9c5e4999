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

package analytics

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryGetSessionsByFlow is the query to retrieve sessions for a flow
	// started within the lookback window.
	queryGetSessionsByFlow = dbmodel.DBQuery{
		ID: "OBQ-ANL-01",
		Query: "SELECT SESSION_ID, FLOW_ID, STATE, STARTED_AT, FINISHED_AT FROM ONBOARDING_SESSION " +
			"WHERE FLOW_ID = $1 AND STARTED_AT >= $2 ORDER BY STARTED_AT DESC",
	}

	// queryGetSessionsByCompany is the query to retrieve sessions for a company
	// started within the lookback window.
	queryGetSessionsByCompany = dbmodel.DBQuery{
		ID: "OBQ-ANL-02",
		Query: "SELECT SESSION_ID, FLOW_ID, STATE, STARTED_AT, FINISHED_AT FROM ONBOARDING_SESSION " +
			"WHERE COMPANY_ID = $1 AND STARTED_AT >= $2 ORDER BY STARTED_AT DESC",
	}

	// queryGetMaxRecordedOrderByFlow is the query to retrieve, per session of a
	// flow within the window, the highest recorded step order position.
	queryGetMaxRecordedOrderByFlow = dbmodel.DBQuery{
		ID: "OBQ-ANL-03",
		Query: "SELECT R.SESSION_ID, MAX(R.ORDER_INDEX) AS max_order FROM SESSION_STEP_RECORD R " +
			"JOIN ONBOARDING_SESSION S ON S.SESSION_ID = R.SESSION_ID " +
			"WHERE S.FLOW_ID = $1 AND S.STARTED_AT >= $2 GROUP BY R.SESSION_ID",
	}

	// queryGetMaxRecordedOrderByCompany is the company-scoped variant of the
	// highest recorded step order position per session.
	queryGetMaxRecordedOrderByCompany = dbmodel.DBQuery{
		ID: "OBQ-ANL-04",
		Query: "SELECT R.SESSION_ID, MAX(R.ORDER_INDEX) AS max_order FROM SESSION_STEP_RECORD R " +
			"JOIN ONBOARDING_SESSION S ON S.SESSION_ID = R.SESSION_ID " +
			"WHERE S.COMPANY_ID = $1 AND S.STARTED_AT >= $2 GROUP BY R.SESSION_ID",
	}
)
