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

// Package utils provides utility functions for database result handling.
package utils

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the canonical layout for timestamps persisted as text columns.
const TimestampLayout = time.RFC3339Nano

// ParseStringColumn converts a result row value to a string.
// Returns the empty string for NULL values.
func ParseStringColumn(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	default:
		return "", fmt.Errorf("unexpected type for string column: %T", v)
	}
}

// ParseIntColumn converts a result row value to an int.
// Drivers surface integer columns as int64, []byte or string depending on the dialect.
func ParseIntColumn(v interface{}) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return int(val), nil
	case int:
		return val, nil
	case float64:
		return int(val), nil
	case []byte:
		parsed, err := strconv.Atoi(string(val))
		if err != nil {
			return 0, fmt.Errorf("failed to parse integer column: %w", err)
		}
		return parsed, nil
	case string:
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("failed to parse integer column: %w", err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unexpected type for integer column: %T", v)
	}
}

// ParseBoolColumn converts a result row value to a bool.
// Postgres surfaces booleans natively while sqlite stores them as integers.
func ParseBoolColumn(v interface{}) (bool, error) {
	switch val := v.(type) {
	case nil:
		return false, nil
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	case int:
		return val != 0, nil
	case []byte:
		return string(val) == "1" || string(val) == "true", nil
	case string:
		return val == "1" || val == "true", nil
	default:
		return false, fmt.Errorf("unexpected type for boolean column: %T", v)
	}
}

// ParseNullableIntColumn converts a result row value to an int pointer, preserving NULL.
func ParseNullableIntColumn(v interface{}) (*int, error) {
	if v == nil {
		return nil, nil
	}
	parsed, err := ParseIntColumn(v)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// FormatTimestamp renders a timestamp for persistence in a text column.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestampColumn converts a result row value to a time.Time.
// Returns the zero time for NULL or empty values.
func ParseTimestampColumn(v interface{}) (time.Time, error) {
	str, err := ParseStringColumn(v)
	if err != nil {
		return time.Time{}, err
	}
	if str == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(TimestampLayout, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp column: %w", err)
	}
	return parsed, nil
}
