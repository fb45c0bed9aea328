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

	"github.com/krishisetu/farmer-welfare-service/internal/farmer/handler"
)

type FarmerService struct {
	farmerHandler *handler.FarmerHandler
}

func NewFarmerService() *FarmerService {
	return &FarmerService{
		farmerHandler: handler.NewFarmerHandler(),
	}
}

// Route dispatches farmer profile endpoints.
func (s *FarmerService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodGet && path == "/farmers/me":
		s.farmerHandler.GetProfile(w, r)

	case method == http.MethodPatch && path == "/farmers/me":
		s.farmerHandler.UpdateProfile(w, r)

	default:
		http.NotFound(w, r)
	}
}
