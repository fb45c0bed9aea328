/*
 * Copyright (c) 2026, KrishiSetu. (https://www.krishisetu.org).
 *
 * KrishiSetu licenses this file to you under the Apache License,
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

package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row value accessors. ExecuteQuery scans into interface{}, so column values
// arrive as string, []byte, int64, bool or time.Time depending on the driver;
// these helpers normalize them.

func RowString(row map[string]interface{}, column string) string {
	switch v := row[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func RowBool(row map[string]interface{}, column string) bool {
	v, _ := row[column].(bool)
	return v
}

func RowInt(row map[string]interface{}, column string) int {
	switch v := row[column].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func RowTime(row map[string]interface{}, column string) time.Time {
	v, _ := row[column].(time.Time)
	return v
}

func RowTimePtr(row map[string]interface{}, column string) *time.Time {
	if v, ok := row[column].(time.Time); ok {
		return &v
	}
	return nil
}

func RowDecimal(row map[string]interface{}, column string) decimal.Decimal {
	raw := RowString(row, column)
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}
