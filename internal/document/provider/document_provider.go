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

import "github.com/krishisetu/farmer-welfare-service/internal/document/service"

// DocumentProviderInterface defines the interface for the document provider.
type DocumentProviderInterface interface {
	GetDocumentService() service.DocumentServiceInterface
}

// DocumentProvider is the default implementation of the DocumentProviderInterface.
type DocumentProvider struct{}

// NewDocumentProvider creates a new instance of DocumentProvider.
func NewDocumentProvider() DocumentProviderInterface {

	return &DocumentProvider{}
}

// GetDocumentService returns the document service instance.
func (dp *DocumentProvider) GetDocumentService() service.DocumentServiceInterface {

	return service.GetDocumentService()
}
