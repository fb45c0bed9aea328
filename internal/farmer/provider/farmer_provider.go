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

import "github.com/krishisetu/farmer-welfare-service/internal/farmer/service"

// FarmerProviderInterface defines the interface for the farmer provider.
type FarmerProviderInterface interface {
	GetFarmerService() service.FarmerServiceInterface
}

// FarmerProvider is the default implementation of the FarmerProviderInterface.
type FarmerProvider struct{}

// NewFarmerProvider creates a new instance of FarmerProvider.
func NewFarmerProvider() FarmerProviderInterface {

	return &FarmerProvider{}
}

// GetFarmerService returns the farmer service instance.
func (fp *FarmerProvider) GetFarmerService() service.FarmerServiceInterface {

	return service.GetFarmerService()
}
