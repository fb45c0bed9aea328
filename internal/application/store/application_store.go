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
	"encoding/json"
	"fmt"
	"time"

	"github.com/krishisetu/farmer-welfare-service/internal/application/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/client"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/scripts"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// AddApplication inserts a new application.
func AddApplication(application model.Application) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for adding application: %s",
			application.ApplicationID))
	}
	defer dbClient.Close()

	applicationData, err := json.Marshal(application.ApplicationData)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error encoding application data for application: %s",
			application.ApplicationID))
	}

	query := scripts.InsertApplication[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, application.ApplicationID, application.FarmerID,
		application.SchemeID, application.Status, string(applicationData), application.CreatedAt,
		application.UpdatedAt)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while adding application: %s",
			application.ApplicationID))
	}

	logger.Info(fmt.Sprintf("Application: %s added successfully", application.ApplicationID))
	return nil
}

// GetApplication fetches one application by id, or nil when it does not exist.
func GetApplication(applicationID string) (*model.Application, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, fmt.Sprintf("Failed to get database client for fetching application: %s",
			applicationID))
	}
	defer dbClient.Close()

	query := scripts.GetApplicationByID[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, applicationID)
	if err != nil {
		return nil, executeQueryError(err, fmt.Sprintf("Failed in fetching application: %s", applicationID))
	}
	if len(results) == 0 {
		return nil, nil
	}

	application := applicationFromRow(results[0])
	return &application, nil
}

// GetApplicationsForFarmer fetches the farmer's applications, newest first.
func GetApplicationsForFarmer(farmerID string) ([]model.Application, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, fmt.Sprintf("Failed to get database client for fetching applications of farmer: %s",
			farmerID))
	}
	defer dbClient.Close()

	query := scripts.GetApplicationsForFarmer[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, farmerID)
	if err != nil {
		return nil, executeQueryError(err, fmt.Sprintf("Failed in fetching applications of farmer: %s", farmerID))
	}

	applications := make([]model.Application, 0, len(results))
	for _, row := range results {
		applications = append(applications, applicationFromRow(row))
	}
	return applications, nil
}

// HasPendingApplication reports whether the farmer already has a draft or
// submitted application for the scheme.
func HasPendingApplication(farmerID, schemeID string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return false, dbClientInitError(err, "Failed to get database client for checking pending applications")
	}
	defer dbClient.Close()

	query := scripts.GetPendingApplication[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, farmerID, schemeID)
	if err != nil {
		return false, executeQueryError(err, "Failed in checking pending applications")
	}
	return len(results) > 0, nil
}

// UpdateApplicationStatus moves the application to the given status.
func UpdateApplicationStatus(applicationID, status string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for updating application: %s",
			applicationID))
	}
	defer dbClient.Close()

	query := scripts.UpdateApplicationStatus[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, status, time.Now().UTC(), applicationID)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while updating application: %s", applicationID))
	}
	return nil
}

func applicationFromRow(row map[string]interface{}) model.Application {

	application := model.Application{
		ApplicationID: client.RowString(row, "application_id"),
		FarmerID:      client.RowString(row, "farmer_id"),
		SchemeID:      client.RowString(row, "scheme_id"),
		Status:        client.RowString(row, "status"),
		CreatedAt:     client.RowTime(row, "created_at"),
		UpdatedAt:     client.RowTime(row, "updated_at"),
	}

	if raw := client.RowString(row, "application_data"); raw != "" {
		data := map[string]interface{}{}
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			application.ApplicationData = data
		} else {
			log.GetLogger().Warn("Failed to decode application data",
				log.String("application_id", application.ApplicationID), log.Error(err))
		}
	}
	return application
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
