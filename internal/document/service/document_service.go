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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/krishisetu/farmer-welfare-service/internal/document/model"
	"github.com/krishisetu/farmer-welfare-service/internal/document/store"
	"github.com/krishisetu/farmer-welfare-service/internal/system/config"
	"github.com/krishisetu/farmer-welfare-service/internal/system/constants"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/mongo"
)

type DocumentServiceInterface interface {
	AddDocument(farmerID string, request model.DocumentRequest) (model.Document, error)
	GetFarmerDocuments(farmerID string) ([]model.Document, error)
	GetFarmerDocumentTypes(farmerID string) ([]string, error)
	VerifyDocument(documentID string) error
	DeleteDocument(documentID string) error
}

// DocumentService is the default implementation of the DocumentServiceInterface.
type DocumentService struct{}

// GetDocumentService creates a new instance of DocumentService.
func GetDocumentService() DocumentServiceInterface {

	return &DocumentService{}
}

func (ds *DocumentService) AddDocument(farmerID string, request model.DocumentRequest) (model.Document, error) {

	docType := strings.ToLower(strings.TrimSpace(request.DocumentType))
	if !constants.AllowedDocumentTypes[docType] {
		return model.Document{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_DOCUMENT_TYPE.Code,
			Message:     errors2.INVALID_DOCUMENT_TYPE.Message,
			Description: fmt.Sprintf("'%s' is not a recognized document type.", request.DocumentType),
		}, http.StatusBadRequest)
	}

	document := model.Document{
		DocumentID:      uuid.New().String(),
		FarmerID:        farmerID,
		DocumentType:    docType,
		DocumentURL:     request.DocumentURL,
		ExtractedFields: request.ExtractedFields,
		CreatedAt:       time.Now().UTC(),
	}

	if err := documentRepository().AddDocument(document); err != nil {
		return model.Document{}, documentStoreError(err, fmt.Sprintf("Error adding document for farmer: %s", farmerID))
	}
	return document, nil
}

func (ds *DocumentService) GetFarmerDocuments(farmerID string) ([]model.Document, error) {

	documents, err := documentRepository().FindDocumentsForFarmer(farmerID)
	if err != nil {
		return nil, documentStoreError(err, fmt.Sprintf("Error fetching documents for farmer: %s", farmerID))
	}
	return documents, nil
}

func (ds *DocumentService) GetFarmerDocumentTypes(farmerID string) ([]string, error) {

	docTypes, err := documentRepository().FindDocumentTypesForFarmer(farmerID)
	if err != nil {
		return nil, documentStoreError(err, fmt.Sprintf("Error fetching document types for farmer: %s", farmerID))
	}
	return docTypes, nil
}

func (ds *DocumentService) VerifyDocument(documentID string) error {

	if err := documentRepository().MarkDocumentVerified(documentID, time.Now().UTC()); err != nil {
		return documentStoreError(err, fmt.Sprintf("Error verifying document: %s", documentID))
	}
	return nil
}

func (ds *DocumentService) DeleteDocument(documentID string) error {

	if err := documentRepository().DeleteDocument(documentID); err != nil {
		return documentStoreError(err, fmt.Sprintf("Error deleting document: %s", documentID))
	}
	return nil
}

func documentRepository() *store.DocumentRepository {

	mongoDB := mongo.GetMongoDBInstance()
	collection := config.GetRuntime().Config.MongoDB.DocumentCollection
	return store.NewDocumentRepository(mongoDB.Database, collection)
}

func documentStoreError(err error, description string) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.DOCUMENT_STORE.Code,
		Message:     errors2.DOCUMENT_STORE.Message,
		Description: description,
	}, err)
}
