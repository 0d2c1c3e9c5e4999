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

package account

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateAccount is the query to insert an account.
	queryCreateAccount = dbmodel.DBQuery{
		ID: "OBQ-ACT-01",
		Query: "INSERT INTO ACCOUNT (ACCOUNT_ID, EMAIL, DISPLAY_NAME, PHONE, COMPANY_ID, COINS, XP, " +
			"CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// queryGetAccountByID is the query to retrieve an account by id.
	queryGetAccountByID = dbmodel.DBQuery{
		ID: "OBQ-ACT-02",
		Query: "SELECT ACCOUNT_ID, EMAIL, DISPLAY_NAME, PHONE, COMPANY_ID, COINS, XP, CREATED_AT " +
			"FROM ACCOUNT WHERE ACCOUNT_ID = $1",
	}

	// queryGetAccountByEmail is the query to retrieve an account by email.
	queryGetAccountByEmail = dbmodel.DBQuery{
		ID: "OBQ-ACT-03",
		Query: "SELECT ACCOUNT_ID, EMAIL, DISPLAY_NAME, PHONE, COMPANY_ID, COINS, XP, CREATED_AT " +
			"FROM ACCOUNT WHERE EMAIL = $1",
	}

	// queryCountAccountsByEmail is the query to check for an email conflict.
	queryCountAccountsByEmail = dbmodel.DBQuery{
		ID:    "OBQ-ACT-04",
		Query: "SELECT COUNT(*) AS total FROM ACCOUNT WHERE EMAIL = $1",
	}
)
