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

package model

// Supported database dialects.
const (
	// DBTypePostgres denotes the postgres database dialect.
	DBTypePostgres = "postgres"
	// DBTypeSQLite denotes the sqlite database dialect.
	DBTypeSQLite = "sqlite"
)

// DBQuery represents a database query with an identifier and dialect-specific SQL variants.
type DBQuery struct {
	// ID is the unique identifier for the query.
	ID string
	// Query is the default SQL query string, used when no dialect-specific variant is set.
	Query string
	// PostgresQuery is the postgres-specific SQL query string.
	PostgresQuery string
	// SQLiteQuery is the sqlite-specific SQL query string.
	SQLiteQuery string
}

// GetID returns the unique identifier for the query.
func (q DBQuery) GetID() string {
	return q.ID
}

// GetQuery returns the SQL query string for the given database dialect.
func (q DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DBTypePostgres:
		if q.PostgresQuery != "" {
			return q.PostgresQuery
		}
	case DBTypeSQLite:
		if q.SQLiteQuery != "" {
			return q.SQLiteQuery
		}
	}
	return q.Query
}
