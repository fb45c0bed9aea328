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
	"github.com/krishisetu/farmer-welfare-service/internal/application/model"
	"github.com/krishisetu/farmer-welfare-service/internal/application/store"
	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	schememodel "github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	schemeprovider "github.com/krishisetu/farmer-welfare-service/internal/scheme/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

type ApplicationServiceInterface interface {
	SubmitApplication(farmer farmermodel.Farmer, schemeID string) (model.Application, error)
	GetApplication(applicationID string) (*model.Application, error)
	GetApplicationsForFarmer(farmerID string) ([]model.Application, error)
	UpdateApplicationStatus(applicationID, status string) (model.Application, error)
}

// ApplicationService is the default implementation of the
// ApplicationServiceInterface.
type ApplicationService struct{}

// GetApplicationService creates a new instance of ApplicationService.
func GetApplicationService() ApplicationServiceInterface {

	return &ApplicationService{}
}

// SubmitApplication creates a submitted application for the scheme after the
// farmer clears the profile, eligibility and document gates. The application
// data is auto-filled from the profile at submission time.
func (as *ApplicationService) SubmitApplication(farmer farmermodel.Farmer,
	schemeID string) (model.Application, error) {

	if !farmer.IsProfileComplete() {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.PROFILE_INCOMPLETE.Code,
			Message:     errors2.PROFILE_INCOMPLETE.Message,
			Description: errors2.PROFILE_INCOMPLETE.Description,
		}, http.StatusBadRequest)
	}

	pending, err := store.HasPendingApplication(farmer.FarmerID, schemeID)
	if err != nil {
		return model.Application{}, err
	}
	if pending {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.DUPLICATE_APPLICATION.Code,
			Message:     errors2.DUPLICATE_APPLICATION.Message,
			Description: errors2.DUPLICATE_APPLICATION.Description,
		}, http.StatusConflict)
	}

	eligibilityService := schemeprovider.NewSchemeProvider().GetEligibilityService()
	result, err := eligibilityService.CheckSchemeEligibility(farmer, schemeID)
	if err != nil {
		return model.Application{}, err
	}
	if !result.Eligible {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.NOT_ELIGIBLE.Code,
			Message:     errors2.NOT_ELIGIBLE.Message,
			Description: notEligibleDescription(result.FailedRules),
		}, http.StatusUnprocessableEntity)
	}
	if !result.HasAllDocuments {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.MISSING_DOCUMENTS.Code,
			Message:     errors2.MISSING_DOCUMENTS.Message,
			Description: fmt.Sprintf("Missing documents: %s", strings.Join(result.MissingDocuments, ", ")),
		}, http.StatusUnprocessableEntity)
	}

	now := time.Now().UTC()
	application := model.Application{
		ApplicationID:   uuid.New().String(),
		FarmerID:        farmer.FarmerID,
		SchemeID:        schemeID,
		Status:          constants.ApplicationStatusSubmitted,
		ApplicationData: farmer.ToApplicationData(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := store.AddApplication(application); err != nil {
		return model.Application{}, err
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   farmer.FarmerID,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      application.ApplicationID,
		TargetType:    log.TargetTypeApplication,
		ActionID:      log.ActionSubmitApplication,
		Data: map[string]string{
			"scheme_id": schemeID,
		},
	})
	return application, nil
}

func (as *ApplicationService) GetApplication(applicationID string) (*model.Application, error) {

	return store.GetApplication(applicationID)
}

func (as *ApplicationService) GetApplicationsForFarmer(farmerID string) ([]model.Application, error) {

	return store.GetApplicationsForFarmer(farmerID)
}

// UpdateApplicationStatus moves a submitted application through the lifecycle.
// Approved and rejected are terminal.
func (as *ApplicationService) UpdateApplicationStatus(applicationID, status string) (model.Application, error) {

	status = strings.ToLower(strings.TrimSpace(status))
	if !constants.AllowedApplicationStatuses[status] {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: fmt.Sprintf("'%s' is not a valid application status.", status),
		}, http.StatusBadRequest)
	}

	application, err := store.GetApplication(applicationID)
	if err != nil {
		return model.Application{}, err
	}
	if application == nil {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.APPLICATION_NOT_FOUND.Code,
			Message:     errors2.APPLICATION_NOT_FOUND.Message,
			Description: errors2.APPLICATION_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}

	if !validStatusTransition(application.Status, status) {
		return model.Application{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: fmt.Sprintf("Cannot move application from '%s' to '%s'.", application.Status, status),
		}, http.StatusBadRequest)
	}

	if err := store.UpdateApplicationStatus(applicationID, status); err != nil {
		return model.Application{}, err
	}
	application.Status = status
	application.UpdatedAt = time.Now().UTC()

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      applicationID,
		TargetType:    log.TargetTypeApplication,
		ActionID:      log.ActionUpdateApplication,
		Data: map[string]string{
			"status": status,
		},
	})
	return *application, nil
}

func validStatusTransition(from, to string) bool {

	switch from {
	case constants.ApplicationStatusDraft:
		return to == constants.ApplicationStatusSubmitted
	case constants.ApplicationStatusSubmitted:
		return to == constants.ApplicationStatusApproved || to == constants.ApplicationStatusRejected
	default:
		return false
	}
}

func notEligibleDescription(failed []schememodel.RuleOutcome) string {

	reasons := make([]string, 0, len(failed))
	for _, outcome := range failed {
		reasons = append(reasons, outcome.Message)
	}
	return strings.Join(reasons, "; ")
}
