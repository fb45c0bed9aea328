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

package service

import (
	"os"
	"testing"

	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := log.Init("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testFarmer() farmermodel.Farmer {
	return farmermodel.Farmer{
		FarmerID:        "farmer-1",
		Phone:           "9876543210",
		Name:            "Savita Pawar",
		State:           "Maharashtra",
		District:        "Nashik",
		Village:         "Ozar",
		LandSize:        decimal.RequireFromString("2.00"),
		CropType:        "grapes",
		LandType:        "irrigated",
		HasIrrigation:   true,
		FarmingCategory: "crop_farming",
		SocialCategory:  "obc",
		Gender:          "female",
		Age:             34,
		AnnualIncome:    decimal.RequireFromString("180000"),
		IsBPL:           false,
		Language:        "marathi",
		IsActive:        true,
	}
}

func rule(field, operator, value string) model.SchemeRule {
	return model.SchemeRule{
		RuleID:   "rule-1",
		SchemeID: "scheme-1",
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

func TestEvaluateRuleNumericLessOrEqual(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("land_size", "<=", "2")))
	assert.True(t, EvaluateRule(farmer, rule("land_size", "<=", "2.00")))
	assert.False(t, EvaluateRule(farmer, rule("land_size", "<=", "1.99")))
}

func TestEvaluateRuleNumericGreaterOrEqual(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("age", ">=", "18")))
	assert.True(t, EvaluateRule(farmer, rule("age", ">=", "34")))
	assert.False(t, EvaluateRule(farmer, rule("age", ">=", "35")))
}

func TestEvaluateRuleNumericEqualityIsExact(t *testing.T) {
	farmer := testFarmer()
	farmer.LandSize = decimal.RequireFromString("2.01")

	assert.False(t, EvaluateRule(farmer, rule("land_size", "<=", "2")))
	assert.True(t, EvaluateRule(farmer, rule("land_size", "==", "2.010")))
}

func TestEvaluateRuleBooleanEquality(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("has_irrigation", "==", "true")))
	assert.True(t, EvaluateRule(farmer, rule("has_irrigation", "==", "True")))
	assert.True(t, EvaluateRule(farmer, rule("has_irrigation", "==", "yes")))
	assert.True(t, EvaluateRule(farmer, rule("has_irrigation", "==", "1")))
	assert.False(t, EvaluateRule(farmer, rule("has_irrigation", "==", "false")))
	assert.True(t, EvaluateRule(farmer, rule("is_bpl", "==", "false")))
	assert.True(t, EvaluateRule(farmer, rule("is_bpl", "==", "no")))
}

func TestEvaluateRuleBooleanOrderingAlwaysFails(t *testing.T) {
	farmer := testFarmer()

	assert.False(t, EvaluateRule(farmer, rule("has_irrigation", "<=", "true")))
	assert.False(t, EvaluateRule(farmer, rule("is_bpl", ">=", "false")))
}

func TestEvaluateRuleStringEqualityIgnoresCase(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("state", "==", "maharashtra")))
	assert.True(t, EvaluateRule(farmer, rule("state", "==", "MAHARASHTRA")))
	assert.False(t, EvaluateRule(farmer, rule("state", "==", "Gujarat")))
}

func TestEvaluateRuleInMembership(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("gender", "IN", "female")))
	assert.True(t, EvaluateRule(farmer, rule("gender", "IN", "male, female, other")))
	assert.True(t, EvaluateRule(farmer, rule("gender", "IN", "MALE,FEMALE")))
	assert.False(t, EvaluateRule(farmer, rule("gender", "IN", "male")))
	assert.False(t, EvaluateRule(farmer, rule("gender", "IN", "")))
}

func TestEvaluateRuleInTrimsTokens(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("social_category", "IN", " sc , st , obc ")))
	assert.True(t, EvaluateRule(farmer, rule("crop_type", "IN", "grapes,onion")))
}

func TestEvaluateRuleUnknownFieldPasses(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("tractor_count", "<=", "1")))
	assert.True(t, EvaluateRule(farmer, rule("", "==", "anything")))
}

func TestEvaluateRuleUnsupportedOperatorPasses(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, rule("age", "<", "18")))
	assert.True(t, EvaluateRule(farmer, rule("age", "!=", "34")))
	assert.True(t, EvaluateRule(farmer, rule("age", "BETWEEN", "18,60")))
}

func TestEvaluateRuleTrimsRuleParts(t *testing.T) {
	farmer := testFarmer()

	assert.True(t, EvaluateRule(farmer, model.SchemeRule{
		Field:    "  age  ",
		Operator: " >= ",
		Value:    " 18 ",
	}))
}

// Digit-only strings compare numerically, not lexicographically. "2020" vs
// "2021" goes through the decimal tier even though the field is a string.
func TestEvaluateRuleNumericTierWinsForDigitStrings(t *testing.T) {
	farmer := testFarmer()
	farmer.Village = "2020"

	assert.True(t, EvaluateRule(farmer, rule("village", "<=", "2021")))
	assert.False(t, EvaluateRule(farmer, rule("village", ">=", "2021")))
	assert.True(t, EvaluateRule(farmer, rule("village", "==", "2020.0")))
}

func TestKnownRuleField(t *testing.T) {
	assert.True(t, KnownRuleField("land_size"))
	assert.True(t, KnownRuleField(" annual_income "))
	assert.False(t, KnownRuleField("tractor_count"))
	assert.False(t, KnownRuleField(""))
}
