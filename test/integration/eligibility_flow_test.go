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

package integration

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	applicationmodel "github.com/krishisetu/farmer-welfare-service/internal/application/model"
	applicationstore "github.com/krishisetu/farmer-welfare-service/internal/application/store"
	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	farmerstore "github.com/krishisetu/farmer-welfare-service/internal/farmer/store"
	schememodel "github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	schemeservice "github.com/krishisetu/farmer-welfare-service/internal/scheme/service"
	schemestore "github.com/krishisetu/farmer-welfare-service/internal/scheme/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFarmer(t *testing.T, landSize, income string) farmermodel.Farmer {
	t.Helper()

	now := time.Now().UTC()
	farmer := farmermodel.Farmer{
		FarmerID:        uuid.New().String(),
		Phone:           "9" + strings.ReplaceAll(uuid.New().String(), "-", "")[:9],
		Name:            "Savita Pawar",
		State:           "Maharashtra",
		District:        "Nashik",
		Village:         "Ozar",
		LandSize:        decimal.RequireFromString(landSize),
		CropType:        "grapes",
		LandType:        "irrigated",
		HasIrrigation:   true,
		FarmingCategory: "crop_farming",
		SocialCategory:  "obc",
		Gender:          "female",
		Age:             34,
		AnnualIncome:    decimal.RequireFromString(income),
		Language:        "marathi",
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, farmerstore.AddFarmer(farmer))
	return farmer
}

func seedScheme(t *testing.T, name string, rules []schememodel.SchemeRule) schememodel.Scheme {
	t.Helper()

	now := time.Now().UTC()
	scheme := schememodel.Scheme{
		SchemeID:          uuid.New().String(),
		Name:              name,
		Description:       "integration test scheme",
		BenefitAmount:     decimal.RequireFromString("25000"),
		RequiredDocuments: []string{"aadhaar", "seven_twelve"},
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, schemestore.AddScheme(scheme))

	for _, rule := range rules {
		rule.RuleID = uuid.New().String()
		rule.SchemeID = scheme.SchemeID
		rule.CreatedAt = now
		rule.UpdatedAt = now
		require.NoError(t, schemestore.AddSchemeRule(rule))
	}
	return scheme
}

func TestFarmerRoundTrip(t *testing.T) {
	farmer := seedFarmer(t, "2.00", "180000")

	fetched, err := farmerstore.GetFarmer(farmer.FarmerID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, farmer.Phone, fetched.Phone)
	assert.True(t, fetched.LandSize.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, fetched.IsProfileComplete())

	byPhone, err := farmerstore.GetFarmerByPhone(farmer.Phone)
	require.NoError(t, err)
	require.NotNil(t, byPhone)
	assert.Equal(t, farmer.FarmerID, byPhone.FarmerID)
}

func TestSchemeRulesRoundTrip(t *testing.T) {
	scheme := seedScheme(t, "Land Grant", []schememodel.SchemeRule{
		{Field: "land_size", Operator: "<=", Value: "2", Message: "Land holding must not exceed 2 hectares"},
		{Field: "annual_income", Operator: "<=", Value: "200000"},
	})

	fetched, err := schemestore.GetScheme(scheme.SchemeID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, []string{"aadhaar", "seven_twelve"}, fetched.RequiredDocuments)

	rules, err := schemestore.GetRulesForScheme(scheme.SchemeID)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "land_size", rules[0].Field)
	assert.Equal(t, "<=", rules[0].Operator)
}

func TestEligibilityAgainstStoredRules(t *testing.T) {
	scheme := seedScheme(t, "Small Holder Grant", []schememodel.SchemeRule{
		{Field: "land_size", Operator: "<=", Value: "2"},
		{Field: "annual_income", Operator: "<=", Value: "200000"},
	})

	eligibleFarmer := seedFarmer(t, "2.00", "180000")
	ineligibleFarmer := seedFarmer(t, "5.00", "300000")

	rules, err := schemestore.GetRulesForScheme(scheme.SchemeID)
	require.NoError(t, err)

	docs := func(string) ([]string, error) {
		return []string{"aadhaar", "seven_twelve"}, nil
	}

	result := schemeservice.CheckEligibility(eligibleFarmer, scheme, rules, docs)
	assert.True(t, result.Eligible)
	assert.True(t, result.HasAllDocuments)

	result = schemeservice.CheckEligibility(ineligibleFarmer, scheme, rules, docs)
	assert.False(t, result.Eligible)
	assert.Len(t, result.FailedRules, 2)
}

func TestBulkDiscoveryOverStoredSchemes(t *testing.T) {
	seedScheme(t, "Women Farmers Grant", []schememodel.SchemeRule{
		{Field: "gender", Operator: "IN", Value: "female"},
	})
	farmer := seedFarmer(t, "1.00", "100000")

	schemes, err := schemestore.GetActiveSchemesWithRules()
	require.NoError(t, err)
	require.NotEmpty(t, schemes)

	eligible := schemeservice.EligibleSchemes(farmer, schemes)

	names := make([]string, 0, len(eligible))
	for _, s := range eligible {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Women Farmers Grant")
}

func TestApplicationLifecycle(t *testing.T) {
	farmer := seedFarmer(t, "1.50", "150000")
	scheme := seedScheme(t, "Drip Irrigation Subsidy", nil)

	now := time.Now().UTC()
	application := applicationmodel.Application{
		ApplicationID:   uuid.New().String(),
		FarmerID:        farmer.FarmerID,
		SchemeID:        scheme.SchemeID,
		Status:          "submitted",
		ApplicationData: farmer.ToApplicationData(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, applicationstore.AddApplication(application))

	pending, err := applicationstore.HasPendingApplication(farmer.FarmerID, scheme.SchemeID)
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, applicationstore.UpdateApplicationStatus(application.ApplicationID, "approved"))

	pending, err = applicationstore.HasPendingApplication(farmer.FarmerID, scheme.SchemeID)
	require.NoError(t, err)
	assert.False(t, pending)

	fetched, err := applicationstore.GetApplication(application.ApplicationID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "approved", fetched.Status)
	assert.Equal(t, farmer.FarmerID, fetched.ApplicationData["farmer_id"])
}
