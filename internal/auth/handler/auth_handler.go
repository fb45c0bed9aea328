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

	"github.com/krishisetu/farmer-welfare-service/internal/auth/model"
	"github.com/krishisetu/farmer-welfare-service/internal/auth/service"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/utils"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {

	return &AuthHandler{}
}

// RequestOTP sends a one-time code to the given phone number.
func (ah *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {

	var otpRequest model.OTPRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&otpRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "OTP request"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	if err := service.GetAuthService().RequestOTP(otpRequest.Phone); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusAccepted, map[string]string{
		"message": "One-time code sent if the phone number is valid.",
	})
}

// VerifyOTP exchanges a delivered code for an access token, registering the
// farmer on first login.
func (ah *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {

	var verifyRequest model.OTPVerifyRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&verifyRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "OTP verification"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	tokenResponse, err := service.GetAuthService().VerifyOTP(verifyRequest.Phone, verifyRequest.Code)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, tokenResponse)
}
