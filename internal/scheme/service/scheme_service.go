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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/store"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

type SchemeServiceInterface interface {
	AddScheme(request model.SchemeRequest, createdBy string) (model.Scheme, error)
	GetScheme(schemeID string) (*model.Scheme, error)
	GetActiveSchemes() ([]model.Scheme, error)
	UpdateScheme(schemeID string, request model.SchemeRequest) (model.Scheme, error)
	DeleteScheme(schemeID string) error
	AddSchemeRule(schemeID string, request model.SchemeRuleRequest) (model.SchemeRule, error)
	GetSchemeRules(schemeID string) ([]model.SchemeRule, error)
	DeleteSchemeRule(schemeID, ruleID string) error
}

// SchemeService is the default implementation of the SchemeServiceInterface.
type SchemeService struct{}

// GetSchemeService creates a new instance of SchemeService.
func GetSchemeService() SchemeServiceInterface {

	return &SchemeService{}
}

func (ss *SchemeService) AddScheme(request model.SchemeRequest, createdBy string) (model.Scheme, error) {

	if err := validateSchemeRequest(request); err != nil {
		return model.Scheme{}, err
	}

	now := time.Now().UTC()
	scheme := model.Scheme{
		SchemeID:          uuid.New().String(),
		Name:              request.Name,
		NameHindi:         request.NameHindi,
		NameMarathi:       request.NameMarathi,
		Description:       request.Description,
		DescriptionHindi:  request.DescriptionHindi,
		BenefitAmount:     request.BenefitAmount,
		RequiredDocuments: normalizeDocumentTypes(request.RequiredDocuments),
		IsActive:          true,
		Deadline:          request.Deadline,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if request.IsActive != nil {
		scheme.IsActive = *request.IsActive
	}

	if err := store.AddScheme(scheme); err != nil {
		return model.Scheme{}, err
	}
	return scheme, nil
}

func (ss *SchemeService) GetScheme(schemeID string) (*model.Scheme, error) {

	return store.GetScheme(schemeID)
}

func (ss *SchemeService) GetActiveSchemes() ([]model.Scheme, error) {

	return store.GetActiveSchemes()
}

func (ss *SchemeService) UpdateScheme(schemeID string, request model.SchemeRequest) (model.Scheme, error) {

	existing, err := store.GetScheme(schemeID)
	if err != nil {
		return model.Scheme{}, err
	}
	if existing == nil {
		return model.Scheme{}, schemeNotFoundError()
	}

	if err := validateSchemeRequest(request); err != nil {
		return model.Scheme{}, err
	}

	scheme := *existing
	scheme.Name = request.Name
	scheme.NameHindi = request.NameHindi
	scheme.NameMarathi = request.NameMarathi
	scheme.Description = request.Description
	scheme.DescriptionHindi = request.DescriptionHindi
	scheme.BenefitAmount = request.BenefitAmount
	scheme.RequiredDocuments = normalizeDocumentTypes(request.RequiredDocuments)
	scheme.Deadline = request.Deadline
	scheme.UpdatedAt = time.Now().UTC()
	if request.IsActive != nil {
		scheme.IsActive = *request.IsActive
	}

	if err := store.UpdateScheme(scheme); err != nil {
		return model.Scheme{}, err
	}
	return scheme, nil
}

func (ss *SchemeService) DeleteScheme(schemeID string) error {

	existing, err := store.GetScheme(schemeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return store.DeleteScheme(schemeID)
}

func (ss *SchemeService) AddSchemeRule(schemeID string, request model.SchemeRuleRequest) (model.SchemeRule, error) {

	scheme, err := store.GetScheme(schemeID)
	if err != nil {
		return model.SchemeRule{}, err
	}
	if scheme == nil {
		return model.SchemeRule{}, schemeNotFoundError()
	}

	if err := validateSchemeRule(request); err != nil {
		return model.SchemeRule{}, err
	}

	// A typo'd field name is allowed but logged: evaluation treats unknown
	// fields as passed, so the rule is inert rather than harmful.
	if !KnownRuleField(request.Field) {
		log.GetLogger().Warn("Scheme rule created with a field that does not resolve on the farmer profile",
			log.String("field", request.Field), log.String("scheme_id", schemeID))
	}

	now := time.Now().UTC()
	rule := model.SchemeRule{
		RuleID:    uuid.New().String(),
		SchemeID:  schemeID,
		Field:     strings.TrimSpace(request.Field),
		Operator:  strings.TrimSpace(request.Operator),
		Value:     strings.TrimSpace(request.Value),
		Message:   strings.TrimSpace(request.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.AddSchemeRule(rule); err != nil {
		return model.SchemeRule{}, err
	}
	return rule, nil
}

func (ss *SchemeService) GetSchemeRules(schemeID string) ([]model.SchemeRule, error) {

	scheme, err := store.GetScheme(schemeID)
	if err != nil {
		return nil, err
	}
	if scheme == nil {
		return nil, schemeNotFoundError()
	}
	return store.GetRulesForScheme(schemeID)
}

func (ss *SchemeService) DeleteSchemeRule(schemeID, ruleID string) error {

	return store.DeleteSchemeRule(ruleID, schemeID)
}

func validateSchemeRequest(request model.SchemeRequest) error {

	if request.Name == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Scheme name is required.",
		}, http.StatusBadRequest)
	}
	if request.Description == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Scheme description is required.",
		}, http.StatusBadRequest)
	}
	for _, docType := range request.RequiredDocuments {
		if !constants.AllowedDocumentTypes[strings.ToLower(strings.TrimSpace(docType))] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_DOCUMENT_TYPE.Code,
				Message:     errors2.INVALID_DOCUMENT_TYPE.Message,
				Description: fmt.Sprintf("'%s' is not a recognized document type.", docType),
			}, http.StatusBadRequest)
		}
	}
	return nil
}

func validateSchemeRule(request model.SchemeRuleRequest) error {

	if strings.TrimSpace(request.Field) == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SCHEME_RULE.Code,
			Message:     errors2.INVALID_SCHEME_RULE.Message,
			Description: "Rule field is required.",
		}, http.StatusBadRequest)
	}
	if !constants.AllowedRuleOperators[strings.TrimSpace(request.Operator)] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SCHEME_RULE.Code,
			Message:     errors2.INVALID_SCHEME_RULE.Message,
			Description: fmt.Sprintf("'%s' is not a supported operator.", request.Operator),
		}, http.StatusBadRequest)
	}
	if strings.TrimSpace(request.Value) == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SCHEME_RULE.Code,
			Message:     errors2.INVALID_SCHEME_RULE.Message,
			Description: "Rule value is required.",
		}, http.StatusBadRequest)
	}
	return nil
}

func normalizeDocumentTypes(docTypes []string) []string {

	normalized := make([]string, 0, len(docTypes))
	for _, docType := range docTypes {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(docType)))
	}
	return normalized
}

func schemeNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.SCHEME_NOT_FOUND.Code,
		Message:     errors2.SCHEME_NOT_FOUND.Message,
		Description: errors2.SCHEME_NOT_FOUND.Description,
	}, http.StatusNotFound)
}
