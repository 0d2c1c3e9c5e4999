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

package ledger

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateScoreEvent is the query to append a score event.
	queryCreateScoreEvent = dbmodel.DBQuery{
		ID: "OBQ-LGR-01",
		Query: `INSERT INTO SCORE_EVENT (EVENT_ID, ACCOUNT_ID, SOURCE, POINTS, COINS, META, ` +
			`SESSION_ID, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// queryCreditAccountTotals is the query to add coins and experience to an account.
	queryCreditAccountTotals = dbmodel.DBQuery{
		ID:    "OBQ-LGR-02",
		Query: `UPDATE ACCOUNT SET COINS = COINS + $2, XP = XP + $3 WHERE ACCOUNT_ID = $1`,
	}

	// queryGetEventsByAccount is the query to list the score events of an account.
	queryGetEventsByAccount = dbmodel.DBQuery{
		ID: "OBQ-LGR-03",
		Query: `SELECT EVENT_ID, ACCOUNT_ID, SOURCE, POINTS, COINS, META, SESSION_ID, CREATED_AT ` +
			`FROM SCORE_EVENT WHERE ACCOUNT_ID = $1 ORDER BY CREATED_AT`,
	}

	// queryCountEventsBySession is the query to check whether a session was transferred.
	queryCountEventsBySession = dbmodel.DBQuery{
		ID:    "OBQ-LGR-04",
		Query: `SELECT COUNT(*) AS count FROM SCORE_EVENT WHERE SESSION_ID = $1`,
	}
)
