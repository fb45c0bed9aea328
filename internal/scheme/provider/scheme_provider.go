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

package provider

import (
	"github.com/krishisetu/farmer-welfare-service/internal/scheme/service"
)

// SchemeProviderInterface defines the interface for the scheme provider.
type SchemeProviderInterface interface {
	GetSchemeService() service.SchemeServiceInterface
	GetEligibilityService() service.EligibilityServiceInterface
}

// SchemeProvider is the default implementation of the SchemeProviderInterface.
type SchemeProvider struct{}

// NewSchemeProvider creates a new instance of SchemeProvider.
func NewSchemeProvider() SchemeProviderInterface {
	return &SchemeProvider{}
}

// GetSchemeService returns the scheme service instance.
func (sp *SchemeProvider) GetSchemeService() service.SchemeServiceInterface {
	return service.GetSchemeService()
}

// GetEligibilityService returns the eligibility service instance.
func (sp *SchemeProvider) GetEligibilityService() service.EligibilityServiceInterface {
	return service.GetEligibilityService()
}
