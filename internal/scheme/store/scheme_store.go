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

	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/client"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/database/scripts"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// AddScheme inserts a new scheme.
func AddScheme(scheme model.Scheme) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for adding scheme: %s", scheme.Name))
	}
	defer dbClient.Close()

	requiredDocs, err := json.Marshal(scheme.RequiredDocuments)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error encoding required documents for scheme: %s", scheme.Name))
	}

	query := scripts.InsertScheme[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, scheme.SchemeID, scheme.Name, scheme.NameHindi, scheme.NameMarathi,
		scheme.Description, scheme.DescriptionHindi, scheme.BenefitAmount.String(), string(requiredDocs),
		scheme.IsActive, scheme.Deadline, scheme.CreatedBy, scheme.CreatedAt, scheme.UpdatedAt)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while adding scheme: %s", scheme.Name))
	}

	logger.Info(fmt.Sprintf("Scheme: %s added successfully", scheme.Name))
	return nil
}

// GetScheme fetches one scheme by id, or nil when it does not exist.
func GetScheme(schemeID string) (*model.Scheme, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, fmt.Sprintf("Failed to get database client for fetching scheme: %s", schemeID))
	}
	defer dbClient.Close()

	query := scripts.GetSchemeByID[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, schemeID)
	if err != nil {
		return nil, executeQueryError(err, fmt.Sprintf("Failed in fetching scheme: %s", schemeID))
	}
	if len(results) == 0 {
		return nil, nil
	}

	scheme := schemeFromRow(results[0])
	return &scheme, nil
}

// GetActiveSchemes fetches every active scheme in creation order.
func GetActiveSchemes() ([]model.Scheme, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, "Failed to get database client for fetching active schemes")
	}
	defer dbClient.Close()

	query := scripts.GetActiveSchemes[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		return nil, executeQueryError(err, "Failed in fetching active schemes")
	}

	schemes := make([]model.Scheme, 0, len(results))
	for _, row := range results {
		schemes = append(schemes, schemeFromRow(row))
	}
	return schemes, nil
}

// GetActiveSchemesWithRules fetches all active schemes and their rules in two
// queries, so bulk discovery has no per-scheme round-trip to the rule store.
func GetActiveSchemesWithRules() ([]model.SchemeWithRules, error) {

	schemes, err := GetActiveSchemes()
	if err != nil {
		return nil, err
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, "Failed to get database client for fetching scheme rules")
	}
	defer dbClient.Close()

	query := scripts.GetRulesForActiveSchemes[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		return nil, executeQueryError(err, "Failed in fetching rules for active schemes")
	}

	rulesByScheme := make(map[string][]model.SchemeRule, len(schemes))
	for _, row := range results {
		rule := ruleFromRow(row)
		rulesByScheme[rule.SchemeID] = append(rulesByScheme[rule.SchemeID], rule)
	}

	withRules := make([]model.SchemeWithRules, 0, len(schemes))
	for _, scheme := range schemes {
		withRules = append(withRules, model.SchemeWithRules{
			Scheme: scheme,
			Rules:  rulesByScheme[scheme.SchemeID],
		})
	}
	return withRules, nil
}

// UpdateScheme updates an existing scheme.
func UpdateScheme(scheme model.Scheme) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for updating scheme: %s", scheme.SchemeID))
	}
	defer dbClient.Close()

	requiredDocs, err := json.Marshal(scheme.RequiredDocuments)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error encoding required documents for scheme: %s", scheme.SchemeID))
	}

	query := scripts.UpdateScheme[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, scheme.Name, scheme.NameHindi, scheme.NameMarathi, scheme.Description,
		scheme.DescriptionHindi, scheme.BenefitAmount.String(), string(requiredDocs), scheme.IsActive,
		scheme.Deadline, scheme.UpdatedAt, scheme.SchemeID)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while updating scheme: %s", scheme.SchemeID))
	}
	return nil
}

// DeleteScheme removes a scheme; its rules cascade.
func DeleteScheme(schemeID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for deleting scheme: %s", schemeID))
	}
	defer dbClient.Close()

	query := scripts.DeleteScheme[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, schemeID)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while deleting scheme: %s", schemeID))
	}
	return nil
}

// AddSchemeRule inserts a new rule for a scheme.
func AddSchemeRule(rule model.SchemeRule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for adding rule to scheme: %s", rule.SchemeID))
	}
	defer dbClient.Close()

	query := scripts.InsertSchemeRule[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, rule.RuleID, rule.SchemeID, rule.Field, rule.Operator, rule.Value,
		rule.Message, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while adding rule to scheme: %s", rule.SchemeID))
	}

	logger.Info(fmt.Sprintf("Scheme rule added successfully for scheme: %s", rule.SchemeID),
		log.String("field", rule.Field), log.String("operator", rule.Operator))
	return nil
}

// GetRulesForScheme fetches every rule of one scheme in creation order.
func GetRulesForScheme(schemeID string) ([]model.SchemeRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, dbClientInitError(err, fmt.Sprintf("Failed to get database client for fetching rules of scheme: %s", schemeID))
	}
	defer dbClient.Close()

	query := scripts.GetRulesForScheme[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, schemeID)
	if err != nil {
		return nil, executeQueryError(err, fmt.Sprintf("Failed in fetching rules of scheme: %s", schemeID))
	}

	rules := make([]model.SchemeRule, 0, len(results))
	for _, row := range results {
		rules = append(rules, ruleFromRow(row))
	}
	return rules, nil
}

// DeleteSchemeRule removes one rule from a scheme.
func DeleteSchemeRule(ruleID, schemeID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return dbClientInitError(err, fmt.Sprintf("Failed to get database client for deleting rule: %s", ruleID))
	}
	defer dbClient.Close()

	query := scripts.DeleteSchemeRule[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, ruleID, schemeID)
	if err != nil {
		return executeQueryError(err, fmt.Sprintf("Error occurred while deleting rule: %s", ruleID))
	}
	return nil
}

func schemeFromRow(row map[string]interface{}) model.Scheme {

	var requiredDocs []string
	if raw := client.RowString(row, "required_documents"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &requiredDocs); err != nil {
			log.GetLogger().Warn("Failed to decode required documents for scheme",
				log.String("scheme_id", client.RowString(row, "scheme_id")), log.Error(err))
		}
	}

	return model.Scheme{
		SchemeID:          client.RowString(row, "scheme_id"),
		Name:              client.RowString(row, "name"),
		NameHindi:         client.RowString(row, "name_hindi"),
		NameMarathi:       client.RowString(row, "name_marathi"),
		Description:       client.RowString(row, "description"),
		DescriptionHindi:  client.RowString(row, "description_hindi"),
		BenefitAmount:     client.RowDecimal(row, "benefit_amount"),
		RequiredDocuments: requiredDocs,
		IsActive:          client.RowBool(row, "is_active"),
		Deadline:          client.RowTimePtr(row, "deadline"),
		CreatedBy:         client.RowString(row, "created_by"),
		CreatedAt:         client.RowTime(row, "created_at"),
		UpdatedAt:         client.RowTime(row, "updated_at"),
	}
}

func ruleFromRow(row map[string]interface{}) model.SchemeRule {

	return model.SchemeRule{
		RuleID:    client.RowString(row, "rule_id"),
		SchemeID:  client.RowString(row, "scheme_id"),
		Field:     client.RowString(row, "field"),
		Operator:  client.RowString(row, "operator"),
		Value:     client.RowString(row, "value"),
		Message:   client.RowString(row, "message"),
		CreatedAt: client.RowTime(row, "created_at"),
		UpdatedAt: client.RowTime(row, "updated_at"),
	}
}

func dbClientInitError(err error, description string) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.DB_CLIENT_INIT.Code,
		Message:     errors2.DB_CLIENT_INIT.Message,
		Description: description,
	}, err)
}

func executeQueryError(err error, description string) error {
	log.GetLogger().Debug(description, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.EXECUTE_QUERY.Code,
		Message:     errors2.EXECUTE_QUERY.Message,
		Description: description,
	}, err)
}
