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

package company

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateCompany is the query to create a new company.
	queryCreateCompany = dbmodel.DBQuery{
		ID:    "OBQ-CMP-01",
		Query: `INSERT INTO COMPANY (COMPANY_ID, NAME, SLUG, CREATED_AT) VALUES ($1, $2, $3, $4)`,
	}

	// queryGetCompanyByID is the query to get a company by id.
	queryGetCompanyByID = dbmodel.DBQuery{
		ID:    "OBQ-CMP-02",
		Query: `SELECT COMPANY_ID, NAME, SLUG, CREATED_AT FROM COMPANY WHERE COMPANY_ID = $1`,
	}

	// queryGetCompanyBySlug is the query to get a company by slug.
	queryGetCompanyBySlug = dbmodel.DBQuery{
		ID:    "OBQ-CMP-03",
		Query: `SELECT COMPANY_ID, NAME, SLUG, CREATED_AT FROM COMPANY WHERE SLUG = $1`,
	}

	// queryGetCompanyListCount is the query to get the total count of companies.
	queryGetCompanyListCount = dbmodel.DBQuery{
		ID:    "OBQ-CMP-04",
		Query: `SELECT COUNT(*) AS total FROM COMPANY`,
	}

	// queryGetCompanyList is the query to list companies with pagination.
	queryGetCompanyList = dbmodel.DBQuery{
		ID:    "OBQ-CMP-05",
		Query: `SELECT COMPANY_ID, NAME, SLUG, CREATED_AT FROM COMPANY ORDER BY NAME LIMIT $1 OFFSET $2`,
	}

	// queryCheckCompanyConflict is the query to check for a name or slug conflict.
	queryCheckCompanyConflict = dbmodel.DBQuery{
		ID:    "OBQ-CMP-06",
		Query: `SELECT COUNT(*) AS count FROM COMPANY WHERE NAME = $1 OR SLUG = $2`,
	}

	// queryCreateInvite is the query to create a new invite.
	queryCreateInvite = dbmodel.DBQuery{
		ID: "OBQ-CMP-07",
		Query: `INSERT INTO COMPANY_INVITE (INVITE_ID, COMPANY_ID, CODE, TOKEN, IS_ACTIVE, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// queryDeactivateInvitesForCompany is the query to deactivate all invites of a company.
	queryDeactivateInvitesForCompany = dbmodel.DBQuery{
		ID:    "OBQ-CMP-08",
		Query: `UPDATE COMPANY_INVITE SET IS_ACTIVE = FALSE WHERE COMPANY_ID = $1`,
	}

	// queryGetActiveInviteForCompany is the query to get the active invite of a company.
	queryGetActiveInviteForCompany = dbmodel.DBQuery{
		ID: "OBQ-CMP-09",
		Query: `SELECT INVITE_ID, COMPANY_ID, CODE, TOKEN, IS_ACTIVE, CREATED_AT FROM COMPANY_INVITE ` +
			`WHERE COMPANY_ID = $1 AND IS_ACTIVE = TRUE`,
	}

	// queryGetActiveInviteByCode is the query to resolve an active invite by its code.
	queryGetActiveInviteByCode = dbmodel.DBQuery{
		ID: "OBQ-CMP-10",
		Query: `SELECT INVITE_ID, COMPANY_ID, CODE, TOKEN, IS_ACTIVE, CREATED_AT FROM COMPANY_INVITE ` +
			`WHERE UPPER(CODE) = UPPER($1) AND IS_ACTIVE = TRUE`,
	}

	// queryGetActiveInviteByToken is the query to resolve an active invite by its token.
	queryGetActiveInviteByToken = dbmodel.DBQuery{
		ID: "OBQ-CMP-11",
		Query: `SELECT INVITE_ID, COMPANY_ID, CODE, TOKEN, IS_ACTIVE, CREATED_AT FROM COMPANY_INVITE ` +
			`WHERE TOKEN = $1 AND IS_ACTIVE = TRUE`,
	}
)
