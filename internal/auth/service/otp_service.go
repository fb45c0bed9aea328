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
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/krishisetu/farmer-welfare-service/internal/auth/model"
	farmerprovider "github.com/krishisetu/farmer-welfare-service/internal/farmer/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/authn"
	"github.com/krishisetu/farmer-welfare-service/internal/system/cache"
	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
)

// Indian mobile numbers: ten digits starting 6-9, optionally prefixed with
// +91 or 91.
var phonePattern = regexp.MustCompile(`^(\+91|91)?[6-9][0-9]{9}$`)

const defaultOTPTTLMinutes = 5
const defaultOTPRequestsPerMin = 3

type AuthServiceInterface interface {
	RequestOTP(phone string) error
	VerifyOTP(phone, code string) (model.TokenResponse, error)
}

// AuthService issues and verifies one-time codes. Codes are held hashed in an
// in-memory TTL cache, so verification must reach the node that issued the
// code.
type AuthService struct {
	otpCache *cache.Cache
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var authServiceInstance *AuthService
var authServiceOnce sync.Once

// GetAuthService returns the singleton auth service.
func GetAuthService() AuthServiceInterface {

	authServiceOnce.Do(func() {
		ttlMinutes := config.GetRuntime().Config.Auth.OTPTTLMinutes
		if ttlMinutes <= 0 {
			ttlMinutes = defaultOTPTTLMinutes
		}
		authServiceInstance = &AuthService{
			otpCache: cache.NewCache(time.Duration(ttlMinutes) * time.Minute),
			limiters: make(map[string]*rate.Limiter),
		}
	})
	return authServiceInstance
}

// RequestOTP generates a six digit code for the phone number and hands it to
// the SMS gateway. The code itself is only ever logged at debug level.
func (s *AuthService) RequestOTP(phone string) error {

	phone, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	if !s.limiterFor(phone).Allow() {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.OTP_RATE_LIMITED.Code,
			Message:     errors2.OTP_RATE_LIMITED.Message,
			Description: errors2.OTP_RATE_LIMITED.Description,
		}, http.StatusTooManyRequests)
	}

	code, err := generateOTPCode()
	if err != nil {
		return otpServerError(err, "Failed to generate one-time code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return otpServerError(err, "Failed to hash one-time code")
	}
	s.otpCache.Set(phone, string(hash))

	logger := log.GetLogger()
	logger.Debug("Generated one-time code", log.String("phone", phone), log.String("code", code))
	logger.Audit(log.AuditEvent{
		InitiatorID:   phone,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      phone,
		TargetType:    log.TargetTypeFarmer,
		ActionID:      log.ActionOTPRequest,
	})

	deliverOTP(phone, code)
	return nil
}

// VerifyOTP checks the code against the stored hash and issues an access
// token, auto-registering a farmer profile on first login.
func (s *AuthService) VerifyOTP(phone, code string) (model.TokenResponse, error) {

	phone, err := NormalizePhone(phone)
	if err != nil {
		return model.TokenResponse{}, err
	}

	logger := log.GetLogger()
	stored, found := s.otpCache.Get(phone)
	if !found {
		logger.Audit(log.AuditEvent{
			InitiatorID:   phone,
			InitiatorType: log.InitiatorTypeFarmer,
			TargetID:      phone,
			TargetType:    log.TargetTypeFarmer,
			ActionID:      log.ActionAuthenticationFailure,
		})
		return model.TokenResponse{}, invalidOTPError()
	}

	hash, ok := stored.(string)
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(code))) != nil {
		logger.Audit(log.AuditEvent{
			InitiatorID:   phone,
			InitiatorType: log.InitiatorTypeFarmer,
			TargetID:      phone,
			TargetType:    log.TargetTypeFarmer,
			ActionID:      log.ActionAuthenticationFailure,
		})
		return model.TokenResponse{}, invalidOTPError()
	}

	// Single use.
	s.otpCache.Delete(phone)

	farmerService := farmerprovider.NewFarmerProvider().GetFarmerService()
	farmer, created, err := farmerService.GetOrCreateFarmerByPhone(phone)
	if err != nil {
		return model.TokenResponse{}, err
	}

	token, expiresIn, err := authn.IssueToken(farmer.FarmerID, farmer.Phone, constants.RoleFarmer)
	if err != nil {
		return model.TokenResponse{}, err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   farmer.FarmerID,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      farmer.FarmerID,
		TargetType:    log.TargetTypeFarmer,
		ActionID:      log.ActionAuthenticationSuccess,
	})

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		FarmerID:    farmer.FarmerID,
		NewFarmer:   created,
	}, nil
}

// NormalizePhone validates the phone number and strips the country prefix so
// one farmer cannot register twice under prefixed and bare forms.
func NormalizePhone(phone string) (string, error) {

	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return "", errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_PHONE.Code,
			Message:     errors2.INVALID_PHONE.Message,
			Description: errors2.INVALID_PHONE.Description,
		}, http.StatusBadRequest)
	}
	phone = strings.TrimPrefix(phone, "+91")
	if len(phone) == 12 {
		phone = strings.TrimPrefix(phone, "91")
	}
	return phone, nil
}

func (s *AuthService) limiterFor(phone string) *rate.Limiter {

	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[phone]
	if !ok {
		perMin := config.GetRuntime().Config.Auth.OTPRequestsPerMin
		if perMin <= 0 {
			perMin = defaultOTPRequestsPerMin
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[phone] = limiter
	}
	return limiter
}

func generateOTPCode() (string, error) {

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// deliverOTP hands the code to the SMS gateway. The gateway integration is
// deployment specific; the default build logs the delivery attempt only.
func deliverOTP(phone, _ string) {

	log.GetLogger().Info("Dispatched one-time code for delivery", log.String("phone", phone))
}

func invalidOTPError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.OTP_INVALID.Code,
		Message:     errors2.OTP_INVALID.Message,
		Description: errors2.OTP_INVALID.Description,
	}, http.StatusUnauthorized)
}

func otpServerError(err error, description string) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.TOKEN_ISSUANCE.Code,
		Message:     errors2.TOKEN_ISSUANCE.Message,
		Description: description,
	}, err)
}
