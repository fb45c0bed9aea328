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
	"testing"

	"github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchemeRequestRequiresNameAndDescription(t *testing.T) {
	err := validateSchemeRequest(model.SchemeRequest{Description: "desc"})
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)

	err = validateSchemeRequest(model.SchemeRequest{Name: "Land Grant"})
	assert.Error(t, err)

	err = validateSchemeRequest(model.SchemeRequest{Name: "Land Grant", Description: "desc"})
	assert.NoError(t, err)
}

func TestValidateSchemeRequestRejectsUnknownDocumentType(t *testing.T) {
	err := validateSchemeRequest(model.SchemeRequest{
		Name:              "Land Grant",
		Description:       "desc",
		RequiredDocuments: []string{"aadhaar", "driving_license"},
	})
	assert.Error(t, err)
}

func TestValidateSchemeRuleOperatorWhitelist(t *testing.T) {
	valid := model.SchemeRuleRequest{Field: "land_size", Operator: "<=", Value: "2"}
	assert.NoError(t, validateSchemeRule(valid))

	for _, op := range []string{"<", ">", "!=", "BETWEEN", "in", ""} {
		invalid := model.SchemeRuleRequest{Field: "land_size", Operator: op, Value: "2"}
		assert.Error(t, validateSchemeRule(invalid), op)
	}
}

func TestValidateSchemeRuleRequiresFieldAndValue(t *testing.T) {
	assert.Error(t, validateSchemeRule(model.SchemeRuleRequest{Operator: "==", Value: "x"}))
	assert.Error(t, validateSchemeRule(model.SchemeRuleRequest{Field: "state", Operator: "=="}))
	assert.Error(t, validateSchemeRule(model.SchemeRuleRequest{Field: "  ", Operator: "==", Value: "x"}))
}

func TestNormalizeDocumentTypes(t *testing.T) {
	normalized := normalizeDocumentTypes([]string{" Aadhaar ", "PAN_CARD"})
	assert.Equal(t, []string{"aadhaar", "pan_card"}, normalized)
}
