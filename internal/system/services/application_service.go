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

package services

import (
	"net/http"
	"strings"

	"github.com/krishisetu/farmer-welfare-service/internal/application/handler"
)

type ApplicationService struct {
	applicationHandler *handler.ApplicationHandler
}

func NewApplicationService() *ApplicationService {
	return &ApplicationService{
		applicationHandler: handler.NewApplicationHandler(),
	}
}

// Route dispatches scheme application endpoints.
func (s *ApplicationService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/applications":
		s.applicationHandler.SubmitApplication(w, r)

	case method == http.MethodGet && path == "/applications":
		s.applicationHandler.ListApplications(w, r)

	case method == http.MethodPatch && strings.HasSuffix(path, "/status"):
		s.applicationHandler.UpdateApplicationStatus(w, r, pathSegment(path, 1))

	case method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		s.applicationHandler.GetApplication(w, r, pathSegment(path, 1))

	default:
		http.NotFound(w, r)
	}
}
