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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RowUtilTestSuite struct {
	suite.Suite
}

func TestRowUtilSuite(t *testing.T) {
	suite.Run(t, new(RowUtilTestSuite))
}

func (suite *RowUtilTestSuite) TestParseStringColumn() {
	value, err := ParseStringColumn("session-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "session-1", value)

	value, err = ParseStringColumn([]byte("session-1"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "session-1", value)

	value, err = ParseStringColumn(nil)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), value)

	_, err = ParseStringColumn(42)
	assert.Error(suite.T(), err)
}

func (suite *RowUtilTestSuite) TestParseIntColumn() {
	value, err := ParseIntColumn(int64(42))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, value)

	value, err = ParseIntColumn([]byte("42"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, value)

	value, err = ParseIntColumn("42")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, value)

	value, err = ParseIntColumn(nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, value)

	_, err = ParseIntColumn("not-a-number")
	assert.Error(suite.T(), err)
}

func (suite *RowUtilTestSuite) TestParseBoolColumn() {
	value, err := ParseBoolColumn(true)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), value)

	value, err = ParseBoolColumn(int64(1))
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), value)

	value, err = ParseBoolColumn(int64(0))
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), value)

	value, err = ParseBoolColumn("true")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), value)

	value, err = ParseBoolColumn(nil)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), value)
}

func (suite *RowUtilTestSuite) TestParseNullableIntColumn() {
	value, err := ParseNullableIntColumn(nil)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), value)

	value, err = ParseNullableIntColumn(int64(7))
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), value)
	assert.Equal(suite.T(), 7, *value)
}

func (suite *RowUtilTestSuite) TestTimestampRoundTrip() {
	stamp := time.Date(2025, 6, 1, 10, 30, 0, 500000000, time.UTC)
	formatted := FormatTimestamp(stamp)

	parsed, err := ParseTimestampColumn(formatted)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), stamp.Equal(parsed))
}

func (suite *RowUtilTestSuite) TestParseTimestampColumnNull() {
	parsed, err := ParseTimestampColumn(nil)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), parsed.IsZero())

	parsed, err = ParseTimestampColumn("")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), parsed.IsZero())

	_, err = ParseTimestampColumn("yesterday")
	assert.Error(suite.T(), err)
}
