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

package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func completeFarmer() Farmer {
	return Farmer{
		FarmerID:        "farmer-1",
		Phone:           "9876543210",
		Name:            "Savita Pawar",
		State:           "Maharashtra",
		District:        "Nashik",
		LandSize:        decimal.RequireFromString("1.5"),
		CropType:        "grapes",
		FarmingCategory: "crop_farming",
		Age:             34,
	}
}

func TestIsProfileComplete(t *testing.T) {
	assert.True(t, completeFarmer().IsProfileComplete())
}

func TestIsProfileCompleteMissingFields(t *testing.T) {
	farmer := completeFarmer()
	farmer.Name = ""
	assert.False(t, farmer.IsProfileComplete())

	farmer = completeFarmer()
	farmer.LandSize = decimal.Zero
	assert.False(t, farmer.IsProfileComplete())

	farmer = completeFarmer()
	farmer.FarmingCategory = ""
	assert.False(t, farmer.IsProfileComplete())
}

func TestCurrentAgeFallsBackToStoredAge(t *testing.T) {
	farmer := completeFarmer()
	farmer.DateOfBirth = nil
	farmer.Age = 42

	assert.Equal(t, 42, farmer.CurrentAge())
}

func TestCurrentAgeDerivedFromDateOfBirth(t *testing.T) {
	farmer := completeFarmer()
	dob := time.Now().AddDate(-30, -1, 0)
	farmer.DateOfBirth = &dob
	assert.Equal(t, 30, farmer.CurrentAge())

	notYetBirthday := time.Now().AddDate(-30, 1, 0)
	farmer.DateOfBirth = &notYetBirthday
	assert.Equal(t, 29, farmer.CurrentAge())
}

func TestToApplicationDataSnapshot(t *testing.T) {
	farmer := completeFarmer()
	farmer.AnnualIncome = decimal.RequireFromString("180000")
	farmer.IsBPL = true

	data := farmer.ToApplicationData()

	assert.Equal(t, "farmer-1", data["farmer_id"])
	assert.Equal(t, "Savita Pawar", data["farmer_name"])
	assert.Equal(t, 1.5, data["land_size"])
	assert.Equal(t, 180000.0, data["annual_income"])
	assert.Equal(t, true, data["is_bpl"])
	assert.Equal(t, 34, data["age"])
}
