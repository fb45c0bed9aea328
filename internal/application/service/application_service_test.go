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

	schememodel "github.com/krishisetu/farmer-welfare-service/internal/scheme/model"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransitions(t *testing.T) {
	assert.True(t, validStatusTransition(constants.ApplicationStatusDraft, constants.ApplicationStatusSubmitted))
	assert.True(t, validStatusTransition(constants.ApplicationStatusSubmitted, constants.ApplicationStatusApproved))
	assert.True(t, validStatusTransition(constants.ApplicationStatusSubmitted, constants.ApplicationStatusRejected))
}

func TestTerminalStatusesAreFinal(t *testing.T) {
	assert.False(t, validStatusTransition(constants.ApplicationStatusApproved, constants.ApplicationStatusSubmitted))
	assert.False(t, validStatusTransition(constants.ApplicationStatusRejected, constants.ApplicationStatusSubmitted))
	assert.False(t, validStatusTransition(constants.ApplicationStatusApproved, constants.ApplicationStatusRejected))
}

func TestCannotSkipSubmission(t *testing.T) {
	assert.False(t, validStatusTransition(constants.ApplicationStatusDraft, constants.ApplicationStatusApproved))
	assert.False(t, validStatusTransition(constants.ApplicationStatusDraft, constants.ApplicationStatusRejected))
}

func TestNotEligibleDescriptionJoinsFailureMessages(t *testing.T) {
	failed := []schememodel.RuleOutcome{
		{Rule: "land_size <= 2", Message: "Land holding must not exceed 2 hectares"},
		{Rule: "is_bpl == true", Message: "is_bpl == true"},
	}

	description := notEligibleDescription(failed)

	assert.Equal(t, "Land holding must not exceed 2 hectares; is_bpl == true", description)
}
