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

	"github.com/krishisetu/farmer-welfare-service/internal/scheme/handler"
)

type SchemeService struct {
	schemeHandler *handler.SchemeHandler
}

func NewSchemeService() *SchemeService {
	return &SchemeService{
		schemeHandler: handler.NewSchemeHandler(),
	}
}

// Route dispatches scheme, rule and eligibility endpoints.
func (s *SchemeService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/schemes":
		s.schemeHandler.AddScheme(w, r)

	case method == http.MethodGet && path == "/schemes":
		s.schemeHandler.ListSchemes(w, r)

	case method == http.MethodGet && path == "/schemes/eligible":
		s.schemeHandler.ListEligibleSchemes(w, r)

	case method == http.MethodGet && strings.HasSuffix(path, "/eligibility"):
		schemeID := pathSegment(path, 1)
		s.schemeHandler.CheckEligibility(w, r, schemeID)

	case method == http.MethodPost && strings.HasSuffix(path, "/rules"):
		schemeID := pathSegment(path, 1)
		s.schemeHandler.AddSchemeRule(w, r, schemeID)

	case method == http.MethodGet && strings.HasSuffix(path, "/rules"):
		schemeID := pathSegment(path, 1)
		s.schemeHandler.ListSchemeRules(w, r, schemeID)

	case method == http.MethodDelete && strings.Contains(path, "/rules/"):
		schemeID := pathSegment(path, 1)
		ruleID := pathSegment(path, 3)
		s.schemeHandler.DeleteSchemeRule(w, r, schemeID, ruleID)

	case method == http.MethodGet && strings.HasPrefix(path, "/schemes/"):
		s.schemeHandler.GetScheme(w, r, pathSegment(path, 1))

	case method == http.MethodPut && strings.HasPrefix(path, "/schemes/"):
		s.schemeHandler.UpdateScheme(w, r, pathSegment(path, 1))

	case method == http.MethodDelete && strings.HasPrefix(path, "/schemes/"):
		s.schemeHandler.DeleteScheme(w, r, pathSegment(path, 1))

	default:
		http.NotFound(w, r)
	}
}

// pathSegment returns the nth segment after the leading slash, so for
// /schemes/{id}/rules/{ruleID} segment 1 is the scheme id and segment 3 is
// the rule id.
func pathSegment(path string, n int) string {

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if n < len(segments) {
		return segments[n]
	}
	return ""
}
