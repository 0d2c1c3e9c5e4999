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

package link

import dbmodel "github.com/salesjourney/onboard/internal/system/database/model"

var (
	// queryCreateLink is the query to create a new onboarding link.
	queryCreateLink = dbmodel.DBQuery{
		ID: "OBQ-LNK-01",
		Query: `INSERT INTO ONBOARDING_LINK (LINK_ID, SLUG, TOKEN, COMPANY_ID, FLOW_ID, EXPIRES_AT, ` +
			`MAX_USES, USE_COUNT, IS_ACTIVE, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
	}

	// queryGetLinkByID is the query to get a link by id.
	queryGetLinkByID = dbmodel.DBQuery{
		ID: "OBQ-LNK-02",
		Query: `SELECT LINK_ID, SLUG, TOKEN, COMPANY_ID, FLOW_ID, EXPIRES_AT, MAX_USES, USE_COUNT, ` +
			`IS_ACTIVE, CREATED_AT FROM ONBOARDING_LINK WHERE LINK_ID = $1`,
	}

	// queryGetLinkBySlug is the query to get a link by its slug.
	queryGetLinkBySlug = dbmodel.DBQuery{
		ID: "OBQ-LNK-03",
		Query: `SELECT LINK_ID, SLUG, TOKEN, COMPANY_ID, FLOW_ID, EXPIRES_AT, MAX_USES, USE_COUNT, ` +
			`IS_ACTIVE, CREATED_AT FROM ONBOARDING_LINK WHERE SLUG = $1`,
	}

	// queryGetLinksByCompany is the query to list the links of a company.
	queryGetLinksByCompany = dbmodel.DBQuery{
		ID: "OBQ-LNK-04",
		Query: `SELECT LINK_ID, SLUG, TOKEN, COMPANY_ID, FLOW_ID, EXPIRES_AT, MAX_USES, USE_COUNT, ` +
			`IS_ACTIVE, CREATED_AT FROM ONBOARDING_LINK WHERE COMPANY_ID = $1 ORDER BY CREATED_AT DESC`,
	}

	// queryIncrementLinkUseCount is the query to count one successful link resolution.
	queryIncrementLinkUseCount = dbmodel.DBQuery{
		ID:    "OBQ-LNK-05",
		Query: `UPDATE ONBOARDING_LINK SET USE_COUNT = USE_COUNT + 1 WHERE LINK_ID = $1`,
	}

	// queryDeactivateLink is the query to deactivate a link.
	queryDeactivateLink = dbmodel.DBQuery{
		ID:    "OBQ-LNK-06",
		Query: `UPDATE ONBOARDING_LINK SET IS_ACTIVE = FALSE WHERE LINK_ID = $1`,
	}

	// queryCheckSlugConflict is the query to check whether a slug is already taken.
	queryCheckSlugConflict = dbmodel.DBQuery{
		ID:    "OBQ-LNK-07",
		Query: `SELECT COUNT(*) AS count FROM ONBOARDING_LINK WHERE SLUG = $1`,
	}
)
