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
	"fmt"
	"strings"

	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/shopspring/decimal"
)

// farmerFieldExtractors maps rule field names to accessors on the farmer
// profile. The table is the authoritative profile schema for rule evaluation:
// a field absent from it is an unknown field and its rule passes vacuously,
// so an administrative typo never locks a farmer out.
var farmerFieldExtractors = map[string]func(farmermodel.Farmer) interface{}{
	"land_size":        func(f farmermodel.Farmer) interface{} { return f.LandSize },
	"land_type":        func(f farmermodel.Farmer) interface{} { return f.LandType },
	"has_irrigation":   func(f farmermodel.Farmer) interface{} { return f.HasIrrigation },
	"farming_category": func(f farmermodel.Farmer) interface{} { return f.FarmingCategory },
	"social_category":  func(f farmermodel.Farmer) interface{} { return f.SocialCategory },
	"gender":           func(f farmermodel.Farmer) interface{} { return f.Gender },
	"age":              func(f farmermodel.Farmer) interface{} { return f.CurrentAge() },
	"annual_income":    func(f farmermodel.Farmer) interface{} { return f.AnnualIncome },
	"is_bpl":           func(f farmermodel.Farmer) interface{} { return f.IsBPL },
	"state":            func(f farmermodel.Farmer) interface{} { return f.State },
	"district":         func(f farmermodel.Farmer) interface{} { return f.District },
	"village":          func(f farmermodel.Farmer) interface{} { return f.Village },
	"crop_type":        func(f farmermodel.Farmer) interface{} { return f.CropType },
	"language":         func(f farmermodel.Farmer) interface{} { return f.Language },
	"name":             func(f farmermodel.Farmer) interface{} { return f.Name },
	"phone":            func(f farmermodel.Farmer) interface{} { return f.Phone },
}

// KnownRuleField reports whether a rule field resolves against the farmer
// profile schema. Used by the admin surface to warn about typos at creation
// time; evaluation stays fail-open either way.
func KnownRuleField(field string) bool {
	_, ok := farmerFieldExtractors[strings.TrimSpace(field)]
	return ok
}

// EvaluateRule evaluates a single scheme rule against a farmer profile.
//
// Failure policy is deliberately asymmetric: configuration anomalies (unknown
// field, unsupported operator) pass vacuously, while an unexpected failure
// during value evaluation counts as a failed rule.
func EvaluateRule(farmer farmermodel.Farmer, rule model.SchemeRule) (passed bool) {

	logger := log.GetLogger()
	fieldName := strings.TrimSpace(rule.Field)
	operator := strings.TrimSpace(rule.Operator)
	ruleValue := strings.TrimSpace(rule.Value)

	extractor, ok := farmerFieldExtractors[fieldName]
	if !ok {
		logger.Warn("Scheme rule references unknown farmer field, skipping rule",
			log.String("field", fieldName), log.String("scheme_id", rule.SchemeID))
		return true
	}
	farmerValue := extractor(farmer)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure evaluating scheme rule, treating as failed",
				log.String("field", fieldName), log.String("operator", operator),
				log.String("value", ruleValue), log.Any("panic", r))
			passed = false
		}
	}()

	switch operator {
	case constants.OperatorIn:
		return evaluateIn(farmerValue, ruleValue)
	case constants.OperatorLessOrEqual, constants.OperatorGreaterOrEqual, constants.OperatorEqual:
		return evaluateComparison(farmerValue, operator, ruleValue)
	default:
		logger.Warn("Unsupported operator in scheme rule, skipping rule",
			log.String("operator", operator), log.String("scheme_id", rule.SchemeID))
		return true
	}
}

// evaluateIn checks case-insensitive membership of the farmer value in the
// comma-separated rule value. Token order is irrelevant and duplicates are
// harmless.
func evaluateIn(farmerValue interface{}, ruleValue string) bool {

	needle := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", farmerValue)))
	for _, token := range strings.Split(ruleValue, ",") {
		if strings.ToLower(strings.TrimSpace(token)) == needle {
			return true
		}
	}
	return false
}

// evaluateComparison applies <=, >= or == with three coercion tiers: exact
// decimal comparison first, then boolean equality, then case-insensitive
// lexicographic comparison. The numeric tier runs before the string tier for
// every field, so a string value that happens to parse as a number is
// compared numerically. That mirrors the long-standing rule semantics and is
// pinned by tests.
func evaluateComparison(farmerValue interface{}, operator, ruleValue string) bool {

	farmerStr := strings.TrimSpace(fmt.Sprintf("%v", farmerValue))

	farmerDec, farmerErr := decimal.NewFromString(farmerStr)
	ruleDec, ruleErr := decimal.NewFromString(ruleValue)
	if farmerErr == nil && ruleErr == nil {
		switch operator {
		case constants.OperatorLessOrEqual:
			return farmerDec.LessThanOrEqual(ruleDec)
		case constants.OperatorGreaterOrEqual:
			return farmerDec.GreaterThanOrEqual(ruleDec)
		case constants.OperatorEqual:
			return farmerDec.Equal(ruleDec)
		}
	}

	// Boolean fields support equality only; ordering a boolean is meaningless
	// and always fails.
	if farmerBool, ok := farmerValue.(bool); ok {
		if operator != constants.OperatorEqual {
			return false
		}
		return farmerBool == parseBoolToken(ruleValue)
	}

	farmerLower := strings.ToLower(farmerStr)
	ruleLower := strings.ToLower(strings.TrimSpace(ruleValue))

	switch operator {
	case constants.OperatorEqual:
		return farmerLower == ruleLower
	case constants.OperatorLessOrEqual:
		return farmerLower <= ruleLower
	case constants.OperatorGreaterOrEqual:
		return farmerLower >= ruleLower
	}

	return false
}

// parseBoolToken interprets a rule value as a boolean: "true", "1" and "yes"
// (case-insensitive) mean true, anything else means false.
func parseBoolToken(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
