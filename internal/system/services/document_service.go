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

	"github.com/krishisetu/farmer-welfare-service/internal/document/handler"
)

type DocumentService struct {
	documentHandler *handler.DocumentHandler
}

func NewDocumentService() *DocumentService {
	return &DocumentService{
		documentHandler: handler.NewDocumentHandler(),
	}
}

// Route dispatches farmer document endpoints.
func (s *DocumentService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/documents":
		s.documentHandler.AddDocument(w, r)

	case method == http.MethodGet && path == "/documents":
		s.documentHandler.ListDocuments(w, r)

	case method == http.MethodPost && strings.HasSuffix(path, "/verify"):
		s.documentHandler.VerifyDocument(w, r, pathSegment(path, 1))

	case method == http.MethodDelete && strings.HasPrefix(path, "/documents/"):
		s.documentHandler.DeleteDocument(w, r, pathSegment(path, 1))

	default:
		http.NotFound(w, r)
	}
}
