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
	"net/http"
	"time"

	documentprovider "github.com/krishisetu/farmer-welfare-service/internal/document/provider"
	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/store"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// DocumentTypeLookup returns the document-type identifiers a farmer has on
// file. The engine knows nothing about how documents are stored; a nil lookup
// or a lookup error degrades to an empty missing-document list so document
// tracking can never block the eligibility computation.
type DocumentTypeLookup func(farmerID string) ([]string, error)

// CheckEligibility evaluates every rule of one scheme against one farmer and
// merges in the document completeness check. Evaluation is exhaustive: each
// rule lands in MatchedRules or FailedRules with its explanation, unlike the
// bulk filter which stops at the first failure.
func CheckEligibility(farmer farmermodel.Farmer, scheme model.Scheme, rules []model.SchemeRule,
	docLookup DocumentTypeLookup) model.EligibilityResult {

	matched := make([]model.RuleOutcome, 0, len(rules))
	failed := make([]model.RuleOutcome, 0)

	for _, rule := range rules {
		outcome := model.RuleOutcome{
			Rule:    fmt.Sprintf("%s %s %s", rule.Field, rule.Operator, rule.Value),
			Field:   rule.Field,
			Message: rule.Message,
		}
		if outcome.Message == "" {
			outcome.Message = outcome.Rule
		}

		if EvaluateRule(farmer, rule) {
			matched = append(matched, outcome)
		} else {
			failed = append(failed, outcome)
		}
	}

	missing := missingDocuments(farmer, scheme, docLookup)

	return model.EligibilityResult{
		Eligible:         len(failed) == 0,
		MatchedRules:     matched,
		FailedRules:      failed,
		MissingDocuments: missing,
		HasAllDocuments:  len(missing) == 0,
	}
}

// missingDocuments computes required_documents minus the farmer's documents,
// preserving the required_documents order.
func missingDocuments(farmer farmermodel.Farmer, scheme model.Scheme, docLookup DocumentTypeLookup) []string {

	missing := make([]string, 0)
	if docLookup == nil {
		return missing
	}

	docTypes, err := docLookup(farmer.FarmerID)
	if err != nil {
		log.GetLogger().Warn("Document lookup unavailable, skipping document completeness check",
			log.String("farmer_id", farmer.FarmerID), log.Error(err))
		return missing
	}

	have := make(map[string]bool, len(docTypes))
	for _, docType := range docTypes {
		have[docType] = true
	}
	for _, required := range scheme.RequiredDocuments {
		if !have[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

// EligibleSchemes filters schemes to those the farmer passes every rule of,
// preserving the input order. Expired schemes are skipped, schemes with no
// rules are eligible to everyone, and rule evaluation exits at the first
// failure since only the verdict matters here.
func EligibleSchemes(farmer farmermodel.Farmer, schemes []model.SchemeWithRules) []model.SchemeWithRules {

	eligible := make([]model.SchemeWithRules, 0, len(schemes))
	for _, scheme := range schemes {
		if isEligible(farmer, scheme) {
			eligible = append(eligible, scheme)
		}
	}
	return eligible
}

func isEligible(farmer farmermodel.Farmer, scheme model.SchemeWithRules) bool {

	if scheme.IsExpired() {
		return false
	}
	for _, rule := range scheme.Rules {
		if !EvaluateRule(farmer, rule) {
			return false
		}
	}
	return true
}

// AllSchemesWithEligibility pairs every given scheme with a full eligibility
// check, eligible or not, in the input order.
func AllSchemesWithEligibility(farmer farmermodel.Farmer, schemes []model.SchemeWithRules,
	docLookup DocumentTypeLookup) []model.SchemeEligibilityStatus {

	language := farmerLanguage(farmer)
	statuses := make([]model.SchemeEligibilityStatus, 0, len(schemes))
	for _, scheme := range schemes {
		result := CheckEligibility(farmer, scheme.Scheme, scheme.Rules, docLookup)
		statuses = append(statuses, model.SchemeEligibilityStatus{
			SchemeID:           scheme.SchemeID,
			Name:               scheme.Name,
			NameLocalized:      scheme.LocalizedName(language),
			Description:        scheme.LocalizedDescription(language),
			BenefitAmount:      scheme.BenefitAmount.InexactFloat64(),
			Deadline:           formatDeadline(scheme.Deadline),
			IsEligible:         result.Eligible,
			EligibilityDetails: result,
			IsExpired:          scheme.IsExpired(),
		})
	}
	return statuses
}

// EligibilityServiceInterface exposes eligibility checks over stored data.
type EligibilityServiceInterface interface {
	CheckSchemeEligibility(farmer farmermodel.Farmer, schemeID string) (model.EligibilityResult, error)
	GetEligibleSchemes(farmer farmermodel.Farmer) ([]model.SchemeSummary, error)
	GetAllSchemesWithEligibility(farmer farmermodel.Farmer) ([]model.SchemeEligibilityStatus, error)
}

// EligibilityService is the default implementation of the
// EligibilityServiceInterface.
type EligibilityService struct {
	docLookup DocumentTypeLookup
}

// GetEligibilityService creates an eligibility service backed by the document
// service for the completeness check.
func GetEligibilityService() EligibilityServiceInterface {

	return &EligibilityService{
		docLookup: func(farmerID string) ([]string, error) {
			return documentprovider.NewDocumentProvider().GetDocumentService().GetFarmerDocumentTypes(farmerID)
		},
	}
}

// CheckSchemeEligibility runs the single-scheme check against stored rules.
func (es *EligibilityService) CheckSchemeEligibility(farmer farmermodel.Farmer,
	schemeID string) (model.EligibilityResult, error) {

	scheme, err := store.GetScheme(schemeID)
	if err != nil {
		return model.EligibilityResult{}, err
	}
	if scheme == nil {
		return model.EligibilityResult{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.SCHEME_NOT_FOUND.Code,
			Message:     errors2.SCHEME_NOT_FOUND.Message,
			Description: errors2.SCHEME_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}

	rules, err := store.GetRulesForScheme(schemeID)
	if err != nil {
		return model.EligibilityResult{}, err
	}

	return CheckEligibility(farmer, *scheme, rules, es.docLookup), nil
}

// GetEligibleSchemes returns the schemes the farmer qualifies for, each with
// full eligibility detail, in scheme fetch order.
func (es *EligibilityService) GetEligibleSchemes(farmer farmermodel.Farmer) ([]model.SchemeSummary, error) {

	schemes, err := store.GetActiveSchemesWithRules()
	if err != nil {
		return nil, err
	}

	language := farmerLanguage(farmer)
	summaries := make([]model.SchemeSummary, 0)
	for _, scheme := range EligibleSchemes(farmer, schemes) {
		result := CheckEligibility(farmer, scheme.Scheme, scheme.Rules, es.docLookup)
		summaries = append(summaries, model.SchemeSummary{
			SchemeID:      scheme.SchemeID,
			Name:          scheme.Name,
			NameLocalized: scheme.LocalizedName(language),
			Description:   scheme.LocalizedDescription(language),
			BenefitAmount: scheme.BenefitAmount.InexactFloat64(),
			Deadline:      formatDeadline(scheme.Deadline),
			Eligibility:   result,
			CanApply:      result.HasAllDocuments,
		})
	}
	return summaries, nil
}

// GetAllSchemesWithEligibility returns every active scheme with its verdict.
func (es *EligibilityService) GetAllSchemesWithEligibility(
	farmer farmermodel.Farmer) ([]model.SchemeEligibilityStatus, error) {

	schemes, err := store.GetActiveSchemesWithRules()
	if err != nil {
		return nil, err
	}
	return AllSchemesWithEligibility(farmer, schemes, es.docLookup), nil
}

func farmerLanguage(farmer farmermodel.Farmer) string {
	if farmer.Language == "" {
		return constants.LanguageEnglish
	}
	return farmer.Language
}

func formatDeadline(deadline *time.Time) *string {
	if deadline == nil {
		return nil
	}
	formatted := deadline.Format("2006-01-02")
	return &formatted
}
