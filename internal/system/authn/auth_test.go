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

package authn

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	conf := config.Config{
		Log: config.LogConfig{LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
		},
	}
	_ = config.InitializeRuntime("", &conf)
	if err := log.Init("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestIssueAndValidateToken(t *testing.T) {
	token, expiresIn, err := IssueToken("farmer-1", "9876543210", constants.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	r := httptest.NewRequest("GET", "/api/v1/farmers/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	farmerID, err := FarmerIDFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", farmerID)
}

func TestValidateRejectsMissingHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/farmers/me", nil)

	_, err := ValidateAuthenticationAndReturnClaims(r)
	assert.Error(t, err)
}

func TestValidateRejectsMalformedHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/farmers/me", nil)
	r.Header.Set("Authorization", "Token abc")

	_, err := ValidateAuthenticationAndReturnClaims(r)
	assert.Error(t, err)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, _, err := IssueToken("farmer-1", "9876543210", constants.RoleFarmer)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/v1/farmers/me", nil)
	r.Header.Set("Authorization", "Bearer "+token+"x")

	_, err = ValidateAuthenticationAndReturnClaims(r)
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	farmerToken, _, err := IssueToken("farmer-1", "9876543210", constants.RoleFarmer)
	require.NoError(t, err)
	adminToken, _, err := IssueToken("admin-1", "9876500000", constants.RoleAdmin)
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/api/v1/schemes", nil)
	r.Header.Set("Authorization", "Bearer "+farmerToken)
	assert.Error(t, RequireAdmin(r))

	r.Header.Set("Authorization", "Bearer "+adminToken)
	assert.NoError(t, RequireAdmin(r))
}
