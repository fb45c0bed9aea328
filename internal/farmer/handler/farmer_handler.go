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

	"github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/farmer/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/authn"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/krishisetu/farmer-welfare-service/internal/system/utils"
)

type FarmerHandler struct{}

func NewFarmerHandler() *FarmerHandler {

	return &FarmerHandler{}
}

// GetProfile returns the authenticated farmer's profile along with the
// derived completeness flag.
func (fh *FarmerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	farmerService := provider.NewFarmerProvider().GetFarmerService()
	farmer, err := farmerService.GetFarmer(farmerID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if farmer == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.FARMER_NOT_FOUND.Code,
			Message:     errors2.FARMER_NOT_FOUND.Message,
			Description: "No farmer exists with the given identifier.",
		}, http.StatusNotFound))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.FarmerResponse{
		Farmer:          *farmer,
		ProfileComplete: farmer.IsProfileComplete(),
	})
}

// UpdateProfile applies a partial update to the authenticated farmer's
// profile. Phone is immutable and not part of the payload.
func (fh *FarmerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var updateRequest model.FarmerUpdateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updateRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "farmer profile"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	farmerService := provider.NewFarmerProvider().GetFarmerService()
	farmer, err := farmerService.UpdateFarmer(farmerID, updateRequest)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   farmerID,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      farmerID,
		TargetType:    log.TargetTypeFarmer,
		ActionID:      log.ActionUpdateFarmer,
	})

	utils.WriteJSONResponse(w, http.StatusOK, model.FarmerResponse{
		Farmer:          farmer,
		ProfileComplete: farmer.IsProfileComplete(),
	})
}
