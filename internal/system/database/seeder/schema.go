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

import "github.com/salesjourney/onboard/internal/system/database/model"

// platformSchemaQueries holds the DDL for the platform datasource, in dependency order.
var platformSchemaQueries = []model.DBQuery{
	{
		ID: "OBQ-SCHEMA-01",
		Query: `CREATE TABLE IF NOT EXISTS COMPANY (
			COMPANY_ID VARCHAR(36) PRIMARY KEY,
			NAME VARCHAR(255) NOT NULL UNIQUE,
			SLUG VARCHAR(64) NOT NULL UNIQUE,
			CREATED_AT VARCHAR(35)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-02",
		Query: `CREATE TABLE IF NOT EXISTS COMPANY_INVITE (
			INVITE_ID VARCHAR(36) PRIMARY KEY,
			COMPANY_ID VARCHAR(36) NOT NULL REFERENCES COMPANY(COMPANY_ID) ON DELETE CASCADE,
			CODE VARCHAR(12) NOT NULL UNIQUE,
			TOKEN VARCHAR(36) NOT NULL UNIQUE,
			IS_ACTIVE BOOLEAN NOT NULL DEFAULT TRUE,
			CREATED_AT VARCHAR(35)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-03",
		Query: `CREATE TABLE IF NOT EXISTS ONBOARDING_FLOW (
			FLOW_ID VARCHAR(36) PRIMARY KEY,
			COMPANY_ID VARCHAR(36),
			NAME VARCHAR(255) NOT NULL,
			FINAL_BONUS_COINS INTEGER NOT NULL DEFAULT 0,
			IS_ACTIVE BOOLEAN NOT NULL DEFAULT TRUE,
			CREATED_AT VARCHAR(35),
			UPDATED_AT VARCHAR(35)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-04",
		Query: `CREATE TABLE IF NOT EXISTS ONBOARDING_STEP (
			STEP_ID VARCHAR(36) PRIMARY KEY,
			FLOW_ID VARCHAR(36) NOT NULL REFERENCES ONBOARDING_FLOW(FLOW_ID) ON DELETE CASCADE,
			KIND VARCHAR(32) NOT NULL,
			TITLE VARCHAR(255),
			BODY TEXT,
			IS_REQUIRED BOOLEAN NOT NULL DEFAULT FALSE,
			COINS_AWARD INTEGER NOT NULL DEFAULT 0,
			XP_AWARD INTEGER NOT NULL DEFAULT 0,
			ORDER_INDEX INTEGER NOT NULL DEFAULT 0,
			IS_ACTIVE BOOLEAN NOT NULL DEFAULT TRUE,
			IS_IMMUTABLE BOOLEAN NOT NULL DEFAULT FALSE,
			CONFIG TEXT NOT NULL DEFAULT '{}'
		)`,
	},
	{
		ID:    "OBQ-SCHEMA-05",
		Query: `CREATE INDEX IF NOT EXISTS IDX_ONBOARDING_STEP_FLOW ON ONBOARDING_STEP(FLOW_ID)`,
	},
	{
		ID: "OBQ-SCHEMA-06",
		Query: `CREATE TABLE IF NOT EXISTS ONBOARDING_STEP_OPTION (
			OPTION_ID VARCHAR(36) PRIMARY KEY,
			STEP_ID VARCHAR(36) NOT NULL REFERENCES ONBOARDING_STEP(STEP_ID) ON DELETE CASCADE,
			OPTION_KEY VARCHAR(64) NOT NULL,
			TITLE VARCHAR(255) NOT NULL,
			BODY TEXT,
			ORDER_INDEX INTEGER NOT NULL DEFAULT 0,
			UNIQUE(STEP_ID, OPTION_KEY)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-07",
		Query: `CREATE TABLE IF NOT EXISTS ONBOARDING_LINK (
			LINK_ID VARCHAR(36) PRIMARY KEY,
			SLUG VARCHAR(64) NOT NULL UNIQUE,
			TOKEN VARCHAR(36),
			COMPANY_ID VARCHAR(36) NOT NULL REFERENCES COMPANY(COMPANY_ID) ON DELETE CASCADE,
			FLOW_ID VARCHAR(36) NOT NULL REFERENCES ONBOARDING_FLOW(FLOW_ID) ON DELETE CASCADE,
			EXPIRES_AT VARCHAR(35),
			MAX_USES INTEGER,
			USE_COUNT INTEGER NOT NULL DEFAULT 0,
			IS_ACTIVE BOOLEAN NOT NULL DEFAULT TRUE,
			CREATED_AT VARCHAR(35)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-08",
		Query: `CREATE TABLE IF NOT EXISTS ACCOUNT (
			ACCOUNT_ID VARCHAR(36) PRIMARY KEY,
			EMAIL VARCHAR(255) NOT NULL UNIQUE,
			DISPLAY_NAME VARCHAR(100) NOT NULL,
			PHONE VARCHAR(32),
			COMPANY_ID VARCHAR(36),
			COINS INTEGER NOT NULL DEFAULT 0,
			XP INTEGER NOT NULL DEFAULT 0,
			CREATED_AT VARCHAR(35)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-09",
		Query: `CREATE TABLE IF NOT EXISTS SCORE_EVENT (
			EVENT_ID VARCHAR(36) PRIMARY KEY,
			ACCOUNT_ID VARCHAR(36) NOT NULL REFERENCES ACCOUNT(ACCOUNT_ID) ON DELETE CASCADE,
			SOURCE VARCHAR(32) NOT NULL,
			POINTS INTEGER NOT NULL DEFAULT 0,
			COINS INTEGER NOT NULL DEFAULT 0,
			META TEXT,
			SESSION_ID VARCHAR(36),
			CREATED_AT VARCHAR(35)
		)`,
	},
	{
		ID:    "OBQ-SCHEMA-10",
		Query: `CREATE INDEX IF NOT EXISTS IDX_SCORE_EVENT_ACCOUNT ON SCORE_EVENT(ACCOUNT_ID)`,
	},
	{
		ID: "OBQ-SCHEMA-11",
		Query: `CREATE TABLE IF NOT EXISTS STORE_ITEM (
			ITEM_ID VARCHAR(36) PRIMARY KEY,
			COMPANY_ID VARCHAR(36),
			TYPE VARCHAR(24) NOT NULL,
			TITLE VARCHAR(255) NOT NULL,
			COST_COINS INTEGER NOT NULL DEFAULT 0,
			STOCK INTEGER,
			MIN_LEVEL INTEGER NOT NULL DEFAULT 1,
			PAYLOAD TEXT,
			IS_ACTIVE BOOLEAN NOT NULL DEFAULT TRUE,
			CREATED_AT VARCHAR(35)
		)`,
	},
}

// runtimeSchemaQueries holds the DDL for the runtime datasource.
var runtimeSchemaQueries = []model.DBQuery{
	{
		ID: "OBQ-SCHEMA-21",
		Query: `CREATE TABLE IF NOT EXISTS ONBOARDING_SESSION (
			SESSION_ID VARCHAR(36) PRIMARY KEY,
			TOKEN VARCHAR(36) NOT NULL UNIQUE,
			COMPANY_ID VARCHAR(36) NOT NULL,
			FLOW_ID VARCHAR(36) NOT NULL,
			STATE VARCHAR(16) NOT NULL,
			COINS_TOTAL INTEGER NOT NULL DEFAULT 0,
			XP_TOTAL INTEGER NOT NULL DEFAULT 0,
			CONTACT_DRAFT TEXT NOT NULL DEFAULT '{}',
			ACCOUNT_ID VARCHAR(36),
			STARTED_AT VARCHAR(35),
			FINISHED_AT VARCHAR(35)
		)`,
	},
	{
		ID:    "OBQ-SCHEMA-22",
		Query: `CREATE INDEX IF NOT EXISTS IDX_ONBOARDING_SESSION_COMPANY ON ONBOARDING_SESSION(COMPANY_ID)`,
	},
	{
		ID:    "OBQ-SCHEMA-23",
		Query: `CREATE INDEX IF NOT EXISTS IDX_ONBOARDING_SESSION_FLOW ON ONBOARDING_SESSION(FLOW_ID)`,
	},
	{
		ID: "OBQ-SCHEMA-24",
		Query: `CREATE TABLE IF NOT EXISTS SESSION_STEP_RECORD (
			RECORD_ID VARCHAR(36) PRIMARY KEY,
			SESSION_ID VARCHAR(36) NOT NULL REFERENCES ONBOARDING_SESSION(SESSION_ID) ON DELETE CASCADE,
			STEP_ID VARCHAR(36) NOT NULL,
			ORDER_INDEX INTEGER NOT NULL DEFAULT 0,
			PAYLOAD TEXT,
			COINS_AWARDED INTEGER NOT NULL DEFAULT 0,
			XP_AWARDED INTEGER NOT NULL DEFAULT 0,
			CREATED_AT VARCHAR(35),
			UNIQUE(SESSION_ID, STEP_ID)
		)`,
	},
	{
		ID: "OBQ-SCHEMA-25",
		Query: `CREATE TABLE IF NOT EXISTS REWARD_CHOICE (
			CHOICE_ID VARCHAR(36) PRIMARY KEY,
			SESSION_ID VARCHAR(36) NOT NULL UNIQUE REFERENCES ONBOARDING_SESSION(SESSION_ID) ON DELETE CASCADE,
			STORE_ITEM_ID VARCHAR(36) NOT NULL,
			COST_COINS INTEGER NOT NULL DEFAULT 0,
			CREATED_AT VARCHAR(35)
		)`,
	},
}
