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

package store

import (
	"fmt"

	"github.com/krishisetu/farmer-welfare-service/internal/farmer/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/client"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/scripts"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// AddFarmer inserts a new farmer record.
func AddFarmer(farmer model.Farmer) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for adding farmer: %s", farmer.FarmerID))
	}
	defer dbClient.Close()

	query := scripts.InsertFarmer[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, farmer.FarmerID, farmer.Phone, farmer.Name, farmer.State,
		farmer.District, farmer.Village, farmer.LandSize.String(), farmer.CropType, farmer.LandType,
		farmer.HasIrrigation, farmer.FarmingCategory, farmer.SocialCategory, farmer.Gender, farmer.DateOfBirth,
		farmer.Age, farmer.AnnualIncome.String(), farmer.IsBPL, farmer.Language, farmer.IsActive,
		farmer.CreatedAt, farmer.UpdatedAt)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while adding farmer: %s", farmer.FarmerID))
	}

	logger.Info(fmt.Sprintf("Farmer: %s added successfully", farmer.FarmerID))
	return nil
}

// GetFarmer fetches one farmer by id, or nil when the farmer does not exist.
func GetFarmer(farmerID string) (*model.Farmer, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, fmt.Sprintf("Failed to get database client for fetching farmer: %s", farmerID))
	}
	defer dbClient.Close()

	query := scripts.GetFarmerByID[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, farmerID)
	if err != nil {
		return nil, executeQueryError(err, fmt.Sprintf("Failed in fetching farmer: %s", farmerID))
	}
	if len(results) == 0 {
		return nil, nil
	}

	farmer := farmerFromRow(results[0])
	return &farmer, nil
}

// GetFarmerByPhone fetches one farmer by phone number, or nil when no farmer
// is registered with that number.
func GetFarmerByPhone(phone string) (*model.Farmer, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, "Failed to get database client for fetching farmer by phone")
	}
	defer dbClient.Close()

	query := scripts.GetFarmerByPhone[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, phone)
	if err != nil {
		return nil, executeQueryError(err, "Failed in fetching farmer by phone")
	}
	if len(results) == 0 {
		return nil, nil
	}

	farmer := farmerFromRow(results[0])
	return &farmer, nil
}

// UpdateFarmer persists the mutable profile fields of the farmer.
func UpdateFarmer(farmer model.Farmer) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for updating farmer: %s", farmer.FarmerID))
	}
	defer dbClient.Close()

	query := scripts.UpdateFarmer[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, farmer.Name, farmer.State, farmer.District, farmer.Village,
		farmer.LandSize.String(), farmer.CropType, farmer.LandType, farmer.HasIrrigation, farmer.FarmingCategory,
		farmer.SocialCategory, farmer.Gender, farmer.DateOfBirth, farmer.Age, farmer.AnnualIncome.String(),
		farmer.IsBPL, farmer.Language, farmer.UpdatedAt, farmer.FarmerID)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while updating farmer: %s", farmer.FarmerID))
	}

	logger.Info(fmt.Sprintf("Farmer: %s updated successfully", farmer.FarmerID))
	return nil
}

func farmerFromRow(row map[string]interface{}) model.Farmer {

	return model.Farmer{
		FarmerID:        client.RowString(row, "farmer_id"),
		Phone:           client.RowString(row, "phone"),
		Name:            client.RowString(row, "name"),
		State:           client.RowString(row, "state"),
		District:        client.RowString(row, "district"),
		Village:         client.RowString(row, "village"),
		LandSize:        client.RowDecimal(row, "land_size"),
		CropType:        client.RowString(row, "crop_type"),
		LandType:        client.RowString(row, "land_type"),
		HasIrrigation:   client.RowBool(row, "has_irrigation"),
		FarmingCategory: client.RowString(row, "farming_category"),
		SocialCategory:  client.RowString(row, "social_category"),
		Gender:          client.RowString(row, "gender"),
		DateOfBirth:     client.RowTimePtr(row, "date_of_birth"),
		Age:             client.RowInt(row, "age"),
		AnnualIncome:    client.RowDecimal(row, "annual_income"),
		IsBPL:           client.RowBool(row, "is_bpl"),
		Language:        client.RowString(row, "language"),
		IsActive:        client.RowBool(row, "is_active"),
		CreatedAt:       client.RowTime(row, "created_at"),
		UpdatedAt:       client.RowTime(row, "updated_at"),
	}
}

func dbClientInitError(err error, description string) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.DB_CLIENT_INIT.Code,
		Message:     errors2.DB_CLIENT_INIT.Message,
		Description: description,
	}, err)
}

func executeQueryError(err error, description string) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.EXECUTE_QUERY.Code,
		Message:     errors2.EXECUTE_QUERY.Message,
		Description: description,
	}, err)
}
