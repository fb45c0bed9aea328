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
	"strings"

	"github.com/krishisetu/farmer-welfare-service/internal/application/model"
	"github.com/krishisetu/farmer-welfare-service/internal/application/provider"
	farmermodel "github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	farmerprovider "github.com/krishisetu/farmer-welfare-service/internal/farmer/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/authn"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/utils"
)

type ApplicationHandler struct{}

func NewApplicationHandler() *ApplicationHandler {

	return &ApplicationHandler{}
}

// SubmitApplication applies the authenticated farmer to a scheme. Submission
// is rejected unless the farmer passes every rule of the scheme and holds all
// its required documents.
func (ah *ApplicationHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {

	farmer, err := authenticatedFarmer(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var applicationRequest model.ApplicationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&applicationRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "application"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}
	if strings.TrimSpace(applicationRequest.SchemeID) == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "scheme_id is required.",
		}, http.StatusBadRequest))
		return
	}

	applicationService := provider.NewApplicationProvider().GetApplicationService()
	application, err := applicationService.SubmitApplication(farmer, strings.TrimSpace(applicationRequest.SchemeID))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, application)
}

// ListApplications returns the authenticated farmer's applications, newest
// first.
func (ah *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	applicationService := provider.NewApplicationProvider().GetApplicationService()
	applications, err := applicationService.GetApplicationsForFarmer(farmerID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, applications)
}

// GetApplication returns one application. Farmers can only read their own;
// admins can read any.
func (ah *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request, applicationID string) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	applicationService := provider.NewApplicationProvider().GetApplicationService()
	application, err := applicationService.GetApplication(applicationID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if application == nil {
		utils.HandleError(w, applicationNotFoundError())
		return
	}
	if application.FarmerID != farmerID && authn.RequireAdmin(r) != nil {
		utils.HandleError(w, applicationNotFoundError())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, application)
}

// UpdateApplicationStatus moves an application through its lifecycle. Admin
// only.
func (ah *ApplicationHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request, applicationID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var statusRequest model.ApplicationStatusRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&statusRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "application status"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	applicationService := provider.NewApplicationProvider().GetApplicationService()
	application, err := applicationService.UpdateApplicationStatus(applicationID, statusRequest.Status)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, application)
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

func applicationNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.APPLICATION_NOT_FOUND.Code,
		Message:     errors2.APPLICATION_NOT_FOUND.Message,
		Description: errors2.APPLICATION_NOT_FOUND.Description,
	}, http.StatusNotFound)
}
