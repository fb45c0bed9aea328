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

package constants

const ApiBasePath = "/api/v1"

// Rule operators understood by the eligibility engine. Any other operator
// string on a stored rule evaluates as passed (fail-open).
const (
	OperatorLessOrEqual    = "<="
	OperatorGreaterOrEqual = ">="
	OperatorEqual          = "=="
	OperatorIn             = "IN"
)

var AllowedRuleOperators = map[string]bool{
	OperatorLessOrEqual:    true,
	OperatorGreaterOrEqual: true,
	OperatorEqual:          true,
	OperatorIn:             true,
}

// Document type identifiers are lowercase snake_case tokens. The engine
// treats them as opaque strings for set comparison only.
const (
	DocumentAadhaar         = "aadhaar"
	DocumentPANCard         = "pan_card"
	DocumentLandCertificate = "land_certificate"
	DocumentSevenTwelve     = "seven_twelve"
	DocumentEightA          = "eight_a"
	DocumentBankPassbook    = "bank_passbook"
	DocumentOther           = "other"
)

var AllowedDocumentTypes = map[string]bool{
	DocumentAadhaar:         true,
	DocumentPANCard:         true,
	DocumentLandCertificate: true,
	DocumentSevenTwelve:     true,
	DocumentEightA:          true,
	DocumentBankPassbook:    true,
	DocumentOther:           true,
}

const (
	LanguageHindi   = "hindi"
	LanguageMarathi = "marathi"
	LanguageEnglish = "english"
)

const (
	LandTypeIrrigated = "irrigated"
	LandTypeRainfed   = "rainfed"
	LandTypeMixed     = "mixed"
)

var AllowedFarmingCategories = map[string]bool{
	"crop_farming": true,
	"livestock":    true,
	"fisheries":    true,
	"horticulture": true,
	"mixed":        true,
	"poultry":      true,
	"dairy":        true,
}

var AllowedSocialCategories = map[string]bool{
	"general": true,
	"obc":     true,
	"sc":      true,
	"st":      true,
	"nt":      true,
	"vjnt":    true,
	"sbc":     true,
}

var AllowedGenders = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

// Application lifecycle statuses.
const (
	ApplicationStatusDraft     = "draft"
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusApproved  = "approved"
	ApplicationStatusRejected  = "rejected"
)

var AllowedApplicationStatuses = map[string]bool{
	ApplicationStatusDraft:     true,
	ApplicationStatusSubmitted: true,
	ApplicationStatusApproved:  true,
	ApplicationStatusRejected:  true,
}

// JWT claims and roles.
const (
	ClaimFarmerID = "farmer_id"
	ClaimPhone    = "phone"
	ClaimRole     = "role"
	RoleFarmer    = "farmer"
	RoleAdmin     = "admin"
	TokenAudience = "farmer-welfare-service"
)

type contextKey string

// FarmerContextKey carries the authenticated farmer id on the request context.
const FarmerContextKey contextKey = "farmer_id"
