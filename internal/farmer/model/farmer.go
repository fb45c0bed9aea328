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
	"time"

	"github.com/shopspring/decimal"
)

// Farmer is the profile record eligibility rules are evaluated against.
type Farmer struct {
	FarmerID        string          `json:"farmer_id"`
	Phone           string          `json:"phone"`
	Name            string          `json:"name"`
	State           string          `json:"state"`
	District        string          `json:"district"`
	Village         string          `json:"village"`
	LandSize        decimal.Decimal `json:"land_size"`
	CropType        string          `json:"crop_type"`
	LandType        string          `json:"land_type"`
	HasIrrigation   bool            `json:"has_irrigation"`
	FarmingCategory string          `json:"farming_category"`
	SocialCategory  string          `json:"social_category"`
	Gender          string          `json:"gender"`
	DateOfBirth     *time.Time      `json:"date_of_birth,omitempty"`
	Age             int             `json:"age"`
	AnnualIncome    decimal.Decimal `json:"annual_income"`
	IsBPL           bool            `json:"is_bpl"`
	Language        string          `json:"language"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FarmerUpdateRequest is the profile update payload. Phone is immutable after
// registration; omitted fields keep their stored values.
type FarmerUpdateRequest struct {
	Name            *string          `json:"name,omitempty"`
	State           *string          `json:"state,omitempty"`
	District        *string          `json:"district,omitempty"`
	Village         *string          `json:"village,omitempty"`
	LandSize        *decimal.Decimal `json:"land_size,omitempty"`
	CropType        *string          `json:"crop_type,omitempty"`
	LandType        *string          `json:"land_type,omitempty"`
	HasIrrigation   *bool            `json:"has_irrigation,omitempty"`
	FarmingCategory *string          `json:"farming_category,omitempty"`
	SocialCategory  *string          `json:"social_category,omitempty"`
	Gender          *string          `json:"gender,omitempty"`
	DateOfBirth     *time.Time       `json:"date_of_birth,omitempty"`
	Age             *int             `json:"age,omitempty"`
	AnnualIncome    *decimal.Decimal `json:"annual_income,omitempty"`
	IsBPL           *bool            `json:"is_bpl,omitempty"`
	Language        *string          `json:"language,omitempty"`
}

// FarmerResponse is the farmer profile as returned over the API, with the
// derived completeness flag included.
type FarmerResponse struct {
	Farmer
	ProfileComplete bool `json:"profile_complete"`
}

// CurrentAge derives the age from the date of birth when available, falling
// back to the stored age otherwise.
func (f Farmer) CurrentAge() int {
	if f.DateOfBirth == nil {
		return f.Age
	}
	now := time.Now()
	age := now.Year() - f.DateOfBirth.Year()
	if now.YearDay() < f.DateOfBirth.YearDay() {
		age--
	}
	return age
}

// IsProfileComplete reports whether the minimum profile fields required for
// scheme discovery are filled.
func (f Farmer) IsProfileComplete() bool {
	return f.Name != "" &&
		f.State != "" &&
		f.District != "" &&
		f.LandSize.IsPositive() &&
		f.CropType != "" &&
		f.FarmingCategory != ""
}

// ToApplicationData converts the farmer profile to application auto-fill data.
func (f Farmer) ToApplicationData() map[string]interface{} {
	return map[string]interface{}{
		"farmer_id":        f.FarmerID,
		"farmer_name":      f.Name,
		"phone":            f.Phone,
		"state":            f.State,
		"district":         f.District,
		"village":          f.Village,
		"land_size":        f.LandSize.InexactFloat64(),
		"land_type":        f.LandType,
		"crop_type":        f.CropType,
		"farming_category": f.FarmingCategory,
		"social_category":  f.SocialCategory,
		"gender":           f.Gender,
		"age":              f.CurrentAge(),
		"annual_income":    f.AnnualIncome.InexactFloat64(),
		"is_bpl":           f.IsBPL,
		"has_irrigation":   f.HasIrrigation,
		"language":         f.Language,
	}
}
