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

	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	"github.com/shopspring/decimal"
)

// Scheme is a government welfare program with admin-editable eligibility rules.
type Scheme struct {
	SchemeID          string          `json:"scheme_id"`
	Name              string          `json:"name"`
	NameHindi         string          `json:"name_hindi,omitempty"`
	NameMarathi       string          `json:"name_marathi,omitempty"`
	Description       string          `json:"description"`
	DescriptionHindi  string          `json:"description_hindi,omitempty"`
	BenefitAmount     decimal.Decimal `json:"benefit_amount"`
	RequiredDocuments []string        `json:"required_documents"`
	IsActive          bool            `json:"is_active"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
	CreatedBy         string          `json:"created_by,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// SchemeRule is one atomic eligibility criterion belonging to a scheme.
// Value is a string; for the IN operator it is a comma-separated list.
type SchemeRule struct {
	RuleID    string    `json:"rule_id"`
	SchemeID  string    `json:"scheme_id"`
	Field     string    `json:"field"`
	Operator  string    `json:"operator"`
	Value     string    `json:"value"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SchemeWithRules pairs a scheme with its prefetched rules for bulk evaluation.
type SchemeWithRules struct {
	Scheme
	Rules []SchemeRule `json:"rules"`
}

// IsExpired reports whether the scheme deadline has passed.
func (s Scheme) IsExpired() bool {
	if s.Deadline == nil {
		return false
	}
	return s.Deadline.Before(time.Now())
}

// IsAvailable reports whether the scheme is open for applications.
func (s Scheme) IsAvailable() bool {
	return s.IsActive && !s.IsExpired()
}

// LocalizedName returns the scheme name in the requested language, falling
// back to the default name when no translation is stored.
func (s Scheme) LocalizedName(language string) string {
	switch language {
	case constants.LanguageHindi:
		if s.NameHindi != "" {
			return s.NameHindi
		}
	case constants.LanguageMarathi:
		if s.NameMarathi != "" {
			return s.NameMarathi
		}
	}
	return s.Name
}

// LocalizedDescription returns the description in the requested language.
func (s Scheme) LocalizedDescription(language string) string {
	if language == constants.LanguageHindi && s.DescriptionHindi != "" {
		return s.DescriptionHindi
	}
	return s.Description
}

// RuleOutcome is one evaluated rule with its human-readable explanation.
type RuleOutcome struct {
	Rule    string `json:"rule"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EligibilityResult is the outcome of evaluating every rule of one scheme
// against one farmer. It is computed fresh on every call and never persisted.
// Eligibility and document completeness are orthogonal: callers gate
// application creation on Eligible && HasAllDocuments.
type EligibilityResult struct {
	Eligible         bool          `json:"eligible"`
	MatchedRules     []RuleOutcome `json:"matched_rules"`
	FailedRules      []RuleOutcome `json:"failed_rules"`
	MissingDocuments []string      `json:"missing_documents"`
	HasAllDocuments  bool          `json:"has_all_documents"`
}

// SchemeSummary is the bulk discovery shape: an eligible scheme with its full
// eligibility detail and the document gate for application creation.
type SchemeSummary struct {
	SchemeID      string            `json:"scheme_id"`
	Name          string            `json:"name"`
	NameLocalized string            `json:"name_localized"`
	Description   string            `json:"description"`
	BenefitAmount float64           `json:"benefit_amount"`
	Deadline      *string           `json:"deadline"`
	Eligibility   EligibilityResult `json:"eligibility"`
	CanApply      bool              `json:"can_apply"`
}

// SchemeEligibilityStatus is the "show me everything and why" shape: every
// active scheme with its eligibility verdict, not just the eligible ones.
type SchemeEligibilityStatus struct {
	SchemeID           string            `json:"scheme_id"`
	Name               string            `json:"name"`
	NameLocalized      string            `json:"name_localized"`
	Description        string            `json:"description"`
	BenefitAmount      float64           `json:"benefit_amount"`
	Deadline           *string           `json:"deadline"`
	IsEligible         bool              `json:"is_eligible"`
	EligibilityDetails EligibilityResult `json:"eligibility_details"`
	IsExpired          bool              `json:"is_expired"`
}

// SchemeRuleRequest is the admin payload for creating a rule.
type SchemeRuleRequest struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
	Message  string `json:"message,omitempty"`
}

// SchemeRequest is the admin payload for creating or updating a scheme.
type SchemeRequest struct {
	Name              string          `json:"name"`
	NameHindi         string          `json:"name_hindi,omitempty"`
	NameMarathi       string          `json:"name_marathi,omitempty"`
	Description       string          `json:"description"`
	DescriptionHindi  string          `json:"description_hindi,omitempty"`
	BenefitAmount     decimal.Decimal `json:"benefit_amount"`
	RequiredDocuments []string        `json:"required_documents"`
	IsActive          *bool           `json:"is_active,omitempty"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
}
