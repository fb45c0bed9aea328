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

package managers

import (
	"net/http"
	"strings"

	"github.com/krishisetu/farmer-welfare-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	healthService := services.NewHealthService()
	authService := services.NewAuthService()
	farmerService := services.NewFarmerService()
	schemeService := services.NewSchemeService()
	documentService := services.NewDocumentService()
	applicationService := services.NewApplicationService()

	// Health endpoints live outside the API base path.
	sm.mux.HandleFunc("/health", healthService.Route)
	sm.mux.HandleFunc("/ready", healthService.Route)

	// Single dispatcher for all API services.
	sm.mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, apiBasePath)
		path = strings.TrimSuffix(path, "/")
		r.URL.Path = path

		switch {
		case strings.HasPrefix(path, "/auth"):
			authService.Route(w, r)
		case strings.HasPrefix(path, "/farmers"):
			farmerService.Route(w, r)
		case strings.HasPrefix(path, "/schemes"):
			schemeService.Route(w, r)
		case strings.HasPrefix(path, "/documents"):
			documentService.Route(w, r)
		case strings.HasPrefix(path, "/applications"):
			applicationService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
