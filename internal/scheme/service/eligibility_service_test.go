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
	"errors"
	"testing"
	"time"

	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landGrantScheme() model.Scheme {
	return model.Scheme{
		SchemeID:          "scheme-land-grant",
		Name:              "Land Grant",
		Description:       "Support for small landholders",
		BenefitAmount:     decimal.RequireFromString("25000"),
		RequiredDocuments: []string{"aadhaar", "seven_twelve", "bank_passbook"},
		IsActive:          true,
	}
}

func landGrantRules() []model.SchemeRule {
	return []model.SchemeRule{
		{
			RuleID:   "rule-land",
			SchemeID: "scheme-land-grant",
			Field:    "land_size",
			Operator: "<=",
			Value:    "2",
			Message:  "Land holding must not exceed 2 hectares",
		},
		{
			RuleID:   "rule-income",
			SchemeID: "scheme-land-grant",
			Field:    "annual_income",
			Operator: "<=",
			Value:    "200000",
		},
	}
}

func docsLookup(docTypes []string) DocumentTypeLookup {
	return func(string) ([]string, error) {
		return docTypes, nil
	}
}

func TestCheckEligibilityAllRulesPass(t *testing.T) {
	farmer := testFarmer()

	result := CheckEligibility(farmer, landGrantScheme(), landGrantRules(),
		docsLookup([]string{"aadhaar", "seven_twelve", "bank_passbook"}))

	assert.True(t, result.Eligible)
	assert.Len(t, result.MatchedRules, 2)
	assert.Empty(t, result.FailedRules)
	assert.True(t, result.HasAllDocuments)
	assert.Empty(t, result.MissingDocuments)
}

func TestCheckEligibilityReportsEveryFailedRule(t *testing.T) {
	farmer := testFarmer()
	farmer.LandSize = decimal.RequireFromString("3.5")
	farmer.AnnualIncome = decimal.RequireFromString("250000")

	result := CheckEligibility(farmer, landGrantScheme(), landGrantRules(), nil)

	assert.False(t, result.Eligible)
	assert.Empty(t, result.MatchedRules)
	require.Len(t, result.FailedRules, 2)
	assert.Equal(t, "land_size <= 2", result.FailedRules[0].Rule)
	assert.Equal(t, "Land holding must not exceed 2 hectares", result.FailedRules[0].Message)
}

func TestCheckEligibilityMessageDefaultsToRuleText(t *testing.T) {
	farmer := testFarmer()
	farmer.AnnualIncome = decimal.RequireFromString("250000")

	result := CheckEligibility(farmer, landGrantScheme(), landGrantRules(), nil)

	require.Len(t, result.FailedRules, 1)
	assert.Equal(t, "annual_income <= 200000", result.FailedRules[0].Message)
}

func TestCheckEligibilityNoRulesMeansEligible(t *testing.T) {
	result := CheckEligibility(testFarmer(), landGrantScheme(), nil, nil)

	assert.True(t, result.Eligible)
	assert.Empty(t, result.MatchedRules)
	assert.Empty(t, result.FailedRules)
}

func TestCheckEligibilityMissingDocumentsKeepOrder(t *testing.T) {
	farmer := testFarmer()

	result := CheckEligibility(farmer, landGrantScheme(), landGrantRules(),
		docsLookup([]string{"seven_twelve"}))

	assert.True(t, result.Eligible)
	assert.False(t, result.HasAllDocuments)
	assert.Equal(t, []string{"aadhaar", "bank_passbook"}, result.MissingDocuments)
}

func TestCheckEligibilityDocumentsOrthogonalToRules(t *testing.T) {
	farmer := testFarmer()
	farmer.LandSize = decimal.RequireFromString("10")

	result := CheckEligibility(farmer, landGrantScheme(), landGrantRules(),
		docsLookup([]string{"aadhaar", "seven_twelve", "bank_passbook"}))

	assert.False(t, result.Eligible)
	assert.True(t, result.HasAllDocuments)
}

func TestCheckEligibilityDocumentLookupFailureDegrades(t *testing.T) {
	failing := func(string) ([]string, error) {
		return nil, errors.New("document store down")
	}

	result := CheckEligibility(testFarmer(), landGrantScheme(), landGrantRules(), failing)

	assert.True(t, result.Eligible)
	assert.True(t, result.HasAllDocuments)
	assert.Empty(t, result.MissingDocuments)
}

func TestCheckEligibilityNilLookupDegrades(t *testing.T) {
	result := CheckEligibility(testFarmer(), landGrantScheme(), landGrantRules(), nil)

	assert.True(t, result.HasAllDocuments)
	assert.Empty(t, result.MissingDocuments)
}

func TestEligibleSchemesFilters(t *testing.T) {
	farmer := testFarmer()

	womenGrant := model.SchemeWithRules{
		Scheme: model.Scheme{SchemeID: "scheme-women", Name: "Women Farmers Grant", IsActive: true},
		Rules: []model.SchemeRule{
			{Field: "gender", Operator: "IN", Value: "female"},
		},
	}
	bplOnly := model.SchemeWithRules{
		Scheme: model.Scheme{SchemeID: "scheme-bpl", Name: "BPL Support", IsActive: true},
		Rules: []model.SchemeRule{
			{Field: "is_bpl", Operator: "==", Value: "true"},
		},
	}
	openToAll := model.SchemeWithRules{
		Scheme: model.Scheme{SchemeID: "scheme-open", Name: "Soil Health Card", IsActive: true},
	}

	eligible := EligibleSchemes(farmer, []model.SchemeWithRules{womenGrant, bplOnly, openToAll})

	require.Len(t, eligible, 2)
	assert.Equal(t, "scheme-women", eligible[0].SchemeID)
	assert.Equal(t, "scheme-open", eligible[1].SchemeID)
}

func TestEligibleSchemesSkipsExpired(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	expired := model.SchemeWithRules{
		Scheme: model.Scheme{SchemeID: "scheme-expired", IsActive: true, Deadline: &past},
	}

	eligible := EligibleSchemes(testFarmer(), []model.SchemeWithRules{expired})

	assert.Empty(t, eligible)
}

// The exhaustive check and the short-circuit filter must agree on the
// verdict for any scheme and farmer.
func TestExhaustiveAndShortCircuitAgree(t *testing.T) {
	farmer := testFarmer()

	schemes := []model.SchemeWithRules{
		{
			Scheme: landGrantScheme(),
			Rules:  landGrantRules(),
		},
		{
			Scheme: model.Scheme{SchemeID: "scheme-bpl", IsActive: true},
			Rules: []model.SchemeRule{
				{Field: "is_bpl", Operator: "==", Value: "true"},
				{Field: "state", Operator: "==", Value: "Maharashtra"},
			},
		},
	}

	for _, scheme := range schemes {
		exhaustive := CheckEligibility(farmer, scheme.Scheme, scheme.Rules, nil).Eligible
		shortCircuit := isEligible(farmer, scheme)
		assert.Equal(t, exhaustive, shortCircuit, scheme.SchemeID)
	}
}

func TestAllSchemesWithEligibilityIncludesIneligible(t *testing.T) {
	farmer := testFarmer()
	farmer.Language = "marathi"

	grant := model.SchemeWithRules{
		Scheme: model.Scheme{
			SchemeID:    "scheme-1",
			Name:        "Land Grant",
			NameMarathi: "जमीन अनुदान",
			Description: "Support for small landholders",
			IsActive:    true,
		},
		Rules: []model.SchemeRule{
			{Field: "is_bpl", Operator: "==", Value: "true"},
		},
	}

	statuses := AllSchemesWithEligibility(farmer, []model.SchemeWithRules{grant}, nil)

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].IsEligible)
	assert.Equal(t, "जमीन अनुदान", statuses[0].NameLocalized)
	assert.Len(t, statuses[0].EligibilityDetails.FailedRules, 1)
	assert.False(t, statuses[0].IsExpired)
}
