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
	"github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/farmer/store"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

type FarmerServiceInterface interface {
	GetFarmer(farmerID string) (*model.Farmer, error)
	GetFarmerByPhone(phone string) (*model.Farmer, error)
	GetOrCreateFarmerByPhone(phone string) (model.Farmer, bool, error)
	UpdateFarmer(farmerID string, request model.FarmerUpdateRequest) (model.Farmer, error)
}

// FarmerService is the default implementation of the FarmerServiceInterface.
type FarmerService struct{}

// GetFarmerService creates a new instance of FarmerService.
func GetFarmerService() FarmerServiceInterface {

	return &FarmerService{}
}

func (fs *FarmerService) GetFarmer(farmerID string) (*model.Farmer, error) {

	return store.GetFarmer(farmerID)
}

func (fs *FarmerService) GetFarmerByPhone(phone string) (*model.Farmer, error) {

	return store.GetFarmerByPhone(phone)
}

// GetOrCreateFarmerByPhone returns the farmer registered with the phone
// number, creating a skeleton profile when none exists. The second return
// value reports whether a new farmer was registered.
func (fs *FarmerService) GetOrCreateFarmerByPhone(phone string) (model.Farmer, bool, error) {

	existing, err := store.GetFarmerByPhone(phone)
	if err != nil {
		return model.Farmer{}, false, err
	}
	if existing != nil {
		return *existing, false, nil
	}

	now := time.Now().UTC()
	farmer := model.Farmer{
		FarmerID:  uuid.New().String(),
		Phone:     phone,
		Language:  constants.LanguageEnglish,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.AddFarmer(farmer); err != nil {
		return model.Farmer{}, false, err
	}

	logger := log.GetLogger()
	logger.Info("Registered new farmer", log.String("farmer_id", farmer.FarmerID))
	logger.Audit(log.AuditEvent{
		InitiatorID:   farmer.FarmerID,
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      farmer.FarmerID,
		TargetType:    log.TargetTypeFarmer,
		ActionID:      log.ActionRegisterFarmer,
	})
	return farmer, true, nil
}

func (fs *FarmerService) UpdateFarmer(farmerID string, request model.FarmerUpdateRequest) (model.Farmer, error) {

	existing, err := store.GetFarmer(farmerID)
	if err != nil {
		return model.Farmer{}, err
	}
	if existing == nil {
		return model.Farmer{}, farmerNotFoundError()
	}

	if err := validateFarmerUpdate(request); err != nil {
		return model.Farmer{}, err
	}

	farmer := *existing
	applyFarmerUpdate(&farmer, request)
	farmer.UpdatedAt = time.Now().UTC()

	if err := store.UpdateFarmer(farmer); err != nil {
		return model.Farmer{}, err
	}
	return farmer, nil
}

func applyFarmerUpdate(farmer *model.Farmer, request model.FarmerUpdateRequest) {

	if request.Name != nil {
		farmer.Name = strings.TrimSpace(*request.Name)
	}
	if request.State != nil {
		farmer.State = strings.TrimSpace(*request.State)
	}
	if request.District != nil {
		farmer.District = strings.TrimSpace(*request.District)
	}
	if request.Village != nil {
		farmer.Village = strings.TrimSpace(*request.Village)
	}
	if request.LandSize != nil {
		farmer.LandSize = *request.LandSize
	}
	if request.CropType != nil {
		farmer.CropType = strings.TrimSpace(*request.CropType)
	}
	if request.LandType != nil {
		farmer.LandType = strings.ToLower(strings.TrimSpace(*request.LandType))
	}
	if request.HasIrrigation != nil {
		farmer.HasIrrigation = *request.HasIrrigation
	}
	if request.FarmingCategory != nil {
		farmer.FarmingCategory = strings.ToLower(strings.TrimSpace(*request.FarmingCategory))
	}
	if request.SocialCategory != nil {
		farmer.SocialCategory = strings.ToLower(strings.TrimSpace(*request.SocialCategory))
	}
	if request.Gender != nil {
		farmer.Gender = strings.ToLower(strings.TrimSpace(*request.Gender))
	}
	if request.DateOfBirth != nil {
		farmer.DateOfBirth = request.DateOfBirth
	}
	if request.Age != nil {
		farmer.Age = *request.Age
	}
	if request.AnnualIncome != nil {
		farmer.AnnualIncome = *request.AnnualIncome
	}
	if request.IsBPL != nil {
		farmer.IsBPL = *request.IsBPL
	}
	if request.Language != nil {
		farmer.Language = strings.ToLower(strings.TrimSpace(*request.Language))
	}
}

func validateFarmerUpdate(request model.FarmerUpdateRequest) error {

	if request.FarmingCategory != nil {
		category := strings.ToLower(strings.TrimSpace(*request.FarmingCategory))
		if !constants.AllowedFarmingCategories[category] {
			return badFarmerRequestError(fmt.Sprintf("'%s' is not a recognized farming category.", *request.FarmingCategory))
		}
	}
	if request.SocialCategory != nil {
		category := strings.ToLower(strings.TrimSpace(*request.SocialCategory))
		if !constants.AllowedSocialCategories[category] {
			return badFarmerRequestError(fmt.Sprintf("'%s' is not a recognized social category.", *request.SocialCategory))
		}
	}
	if request.Gender != nil {
		gender := strings.ToLower(strings.TrimSpace(*request.Gender))
		if !constants.AllowedGenders[gender] {
			return badFarmerRequestError(fmt.Sprintf("'%s' is not a recognized gender.", *request.Gender))
		}
	}
	if request.LandSize != nil && request.LandSize.IsNegative() {
		return badFarmerRequestError("Land size cannot be negative.")
	}
	if request.Age != nil && (*request.Age < 0 || *request.Age > 150) {
		return badFarmerRequestError("Age is out of range.")
	}
	if request.AnnualIncome != nil && request.AnnualIncome.IsNegative() {
		return badFarmerRequestError("Annual income cannot be negative.")
	}
	return nil
}

func farmerNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.FARMER_NOT_FOUND.Code,
		Message:     errors2.FARMER_NOT_FOUND.Message,
		Description: "No farmer exists with the given identifier.",
	}, http.StatusNotFound)
}

func badFarmerRequestError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
