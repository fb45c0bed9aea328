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

package handler

import (
	"encoding/json"
	"net/http"

	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	farmerprovider "github.com/krishisetu/farmer-welfare-service/internal/farmer/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/authn"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/krishisetu/farmer-welfare-service/internal/system/utils"
)

type SchemeHandler struct{}

func NewSchemeHandler() *SchemeHandler {

	return &SchemeHandler{}
}

// AddScheme creates a new scheme. Admin only.
func (sh *SchemeHandler) AddScheme(w http.ResponseWriter, r *http.Request) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeRequest, ok := decodeSchemeRequest(w, r)
	if !ok {
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	scheme, err := schemeService.AddScheme(schemeRequest, adminID(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   adminID(r),
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      scheme.SchemeID,
		TargetType:    log.TargetTypeScheme,
		ActionID:      log.ActionAddScheme,
		Data: map[string]string{
			"name": scheme.Name,
		},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, scheme)
}

// ListSchemes returns every active scheme with the authenticated farmer's
// eligibility status against each.
func (sh *SchemeHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {

	farmer, err := authenticatedFarmer(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	eligibilityService := provider.NewSchemeProvider().GetEligibilityService()
	statuses, err := eligibilityService.GetAllSchemesWithEligibility(farmer)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, statuses)
}

// ListEligibleSchemes returns only the schemes the authenticated farmer
// qualifies for.
func (sh *SchemeHandler) ListEligibleSchemes(w http.ResponseWriter, r *http.Request) {

	farmer, err := authenticatedFarmer(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if !farmer.IsProfileComplete() {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.PROFILE_INCOMPLETE.Code,
			Message:     errors2.PROFILE_INCOMPLETE.Message,
			Description: errors2.PROFILE_INCOMPLETE.Description,
		}, http.StatusBadRequest))
		return
	}

	eligibilityService := provider.NewSchemeProvider().GetEligibilityService()
	summaries, err := eligibilityService.GetEligibleSchemes(farmer)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, summaries)
}

// GetScheme returns one scheme by id.
func (sh *SchemeHandler) GetScheme(w http.ResponseWriter, r *http.Request, schemeID string) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	scheme, err := schemeService.GetScheme(schemeID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if scheme == nil {
		utils.HandleError(w, schemeNotFoundError())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, scheme)
}

// UpdateScheme replaces the scheme definition. Admin only.
func (sh *SchemeHandler) UpdateScheme(w http.ResponseWriter, r *http.Request, schemeID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeRequest, ok := decodeSchemeRequest(w, r)
	if !ok {
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	scheme, err := schemeService.UpdateScheme(schemeID, schemeRequest)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   adminID(r),
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      schemeID,
		TargetType:    log.TargetTypeScheme,
		ActionID:      log.ActionUpdateScheme,
	})

	utils.WriteJSONResponse(w, http.StatusOK, scheme)
}

// DeleteScheme removes the scheme and its rules. Admin only.
func (sh *SchemeHandler) DeleteScheme(w http.ResponseWriter, r *http.Request, schemeID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	if err := schemeService.DeleteScheme(schemeID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   adminID(r),
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      schemeID,
		TargetType:    log.TargetTypeScheme,
		ActionID:      log.ActionDeleteScheme,
	})

	w.WriteHeader(http.StatusNoContent)
}

// AddSchemeRule attaches an eligibility rule to the scheme. Admin only.
func (sh *SchemeHandler) AddSchemeRule(w http.ResponseWriter, r *http.Request, schemeID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var ruleRequest model.SchemeRuleRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ruleRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "scheme rule"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	rule, err := schemeService.AddSchemeRule(schemeID, ruleRequest)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   adminID(r),
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      rule.RuleID,
		TargetType:    log.TargetTypeSchemeRule,
		ActionID:      log.ActionAddSchemeRule,
		Data: map[string]string{
			"scheme_id": schemeID,
			"field":     rule.Field,
			"operator":  rule.Operator,
		},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, rule)
}

// ListSchemeRules returns the rules attached to the scheme.
func (sh *SchemeHandler) ListSchemeRules(w http.ResponseWriter, r *http.Request, schemeID string) {

	if _, err := authn.ValidateAuthenticationAndReturnClaims(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	rules, err := schemeService.GetSchemeRules(schemeID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// DeleteSchemeRule detaches a rule from the scheme. Admin only.
func (sh *SchemeHandler) DeleteSchemeRule(w http.ResponseWriter, r *http.Request, schemeID, ruleID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	schemeService := provider.NewSchemeProvider().GetSchemeService()
	if err := schemeService.DeleteSchemeRule(schemeID, ruleID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   adminID(r),
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      ruleID,
		TargetType:    log.TargetTypeSchemeRule,
		ActionID:      log.ActionDeleteRule,
	})

	w.WriteHeader(http.StatusNoContent)
}

// CheckEligibility runs the full decision-table check of one scheme against
// the authenticated farmer and returns every rule outcome.
func (sh *SchemeHandler) CheckEligibility(w http.ResponseWriter, r *http.Request, schemeID string) {

	farmer, err := authenticatedFarmer(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	eligibilityService := provider.NewSchemeProvider().GetEligibilityService()
	result, err := eligibilityService.CheckSchemeEligibility(farmer, schemeID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

func decodeSchemeRequest(w http.ResponseWriter, r *http.Request) (model.SchemeRequest, bool) {

	var schemeRequest model.SchemeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&schemeRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "scheme"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return model.SchemeRequest{}, false
	}
	return schemeRequest, true
}

func authenticatedFarmer(r *http.Request) (farmermodel.Farmer, error) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		return farmermodel.Farmer{}, err
	}

	farmerService := farmerprovider.NewFarmerProvider().GetFarmerService()
	farmer, err := farmerService.GetFarmer(farmerID)
	if err != nil {
		return farmermodel.Farmer{}, err
	}
	if farmer == nil {
		return farmermodel.Farmer{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.FARMER_NOT_FOUND.Code,
			Message:     errors2.FARMER_NOT_FOUND.Message,
			Description: "No farmer exists for the authenticated token.",
		}, http.StatusNotFound)
	}
	return *farmer, nil
}

func adminID(r *http.Request) string {

	claims, err := authn.ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return ""
	}
	if id, ok := claims["farmer_id"].(string); ok {
		return id
	}
	return ""
}

func schemeNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.SCHEME_NOT_FOUND.Code,
		Message:     errors2.SCHEME_NOT_FOUND.Message,
		Description: errors2.SCHEME_NOT_FOUND.Description,
	}, http.StatusNotFound)
}
