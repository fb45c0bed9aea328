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
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// IssueToken creates a signed access token for a verified farmer session.
func IssueToken(farmerID, phone, role string) (string, int64, error) {

	cfg := config.GetRuntime().Config.Auth
	ttl := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		constants.ClaimFarmerID: farmerID,
		constants.ClaimPhone:    phone,
		constants.ClaimRole:     role,
		"aud":                   constants.TokenAudience,
		"iat":                   now.Unix(),
		"exp":                   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TOKEN_ISSUANCE.Code,
			Message:     errors2.TOKEN_ISSUANCE.Message,
			Description: errors2.TOKEN_ISSUANCE.Description,
		}, err)
		return "", 0, serverError
	}
	return signed, int64(ttl.Seconds()), nil
}

// ValidateAuthenticationAndReturnClaims validates an Authorization: Bearer token.
func ValidateAuthenticationAndReturnClaims(r *http.Request) (jwt.MapClaims, error) {

	token, err := extractBearerToken(r)
	if err != nil {
		return nil, err
	}
	return parseAndValidateToken(token)
}

// FarmerIDFromRequest authenticates the request and returns the farmer id claim.
func FarmerIDFromRequest(r *http.Request) (string, error) {

	claims, err := ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return "", err
	}
	farmerID, ok := claims[constants.ClaimFarmerID].(string)
	if !ok || farmerID == "" {
		return "", unauthorizedError()
	}
	return farmerID, nil
}

// RequireAdmin authenticates the request and ensures the admin role claim.
func RequireAdmin(r *http.Request) error {

	claims, err := ValidateAuthenticationAndReturnClaims(r)
	if err != nil {
		return err
	}
	role, _ := claims[constants.ClaimRole].(string)
	if role != constants.RoleAdmin {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.FORBIDDEN.Code,
			Message:     errors2.FORBIDDEN.Message,
			Description: errors2.FORBIDDEN.Description,
		}, http.StatusForbidden)
	}
	return nil
}

func extractBearerToken(r *http.Request) (string, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", unauthorizedError()
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", unauthorizedError()
	}
	return parts[1], nil
}

func parseAndValidateToken(tokenString string) (jwt.MapClaims, error) {

	logger := log.GetLogger()
	cfg := config.GetRuntime().Config.Auth

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithAudience(constants.TokenAudience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		logger.Debug("Access token validation failed", log.Error(err))
		return nil, unauthorizedError()
	}

	return claims, nil
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: errors2.UNAUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
