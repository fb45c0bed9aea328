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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/krishisetu/farmer-welfare-service/internal/document/model"
	"github.com/krishisetu/farmer-welfare-service/internal/document/provider"
	"github.com/krishisetu/farmer-welfare-service/internal/system/authn"
	errors2 "github.com/krishisetu/farmer-welfare-service/internal/system/errors"
	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/krishisetu/farmer-welfare-service/internal/system/utils"
)

type DocumentHandler struct{}

func NewDocumentHandler() *DocumentHandler {

	return &DocumentHandler{}
}

// AddDocument records an uploaded document against the authenticated farmer.
func (dh *DocumentHandler) AddDocument(w http.ResponseWriter, r *http.Request) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var documentRequest model.DocumentRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&documentRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "document"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	documentService := provider.NewDocumentProvider().GetDocumentService()
	document, err := documentService.AddDocument(farmerID, documentRequest)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   farmerID,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      document.DocumentID,
		TargetType:    log.TargetTypeDocument,
		ActionID:      log.ActionAddDocument,
		Data: map[string]string{
			"document_type": document.DocumentType,
		},
	})

	utils.WriteJSONResponse(w, http.StatusCreated, document)
}

// ListDocuments returns the authenticated farmer's documents, newest first.
func (dh *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	documentService := provider.NewDocumentProvider().GetDocumentService()
	documents, err := documentService.GetFarmerDocuments(farmerID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, documents)
}

// VerifyDocument marks a document as verified. Admin only.
func (dh *DocumentHandler) VerifyDocument(w http.ResponseWriter, r *http.Request, documentID string) {

	if err := authn.RequireAdmin(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	documentService := provider.NewDocumentProvider().GetDocumentService()
	if err := documentService.VerifyDocument(documentID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      documentID,
		TargetType:    log.TargetTypeDocument,
		ActionID:      log.ActionVerifyDocument,
	})

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDocument removes one of the authenticated farmer's documents.
func (dh *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request, documentID string) {

	farmerID, err := authn.FarmerIDFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	documentService := provider.NewDocumentProvider().GetDocumentService()
	if err := documentService.DeleteDocument(documentID); err != nil {
		utils.HandleError(w, err)
		return
	}

	logger := log.GetLogger()
	logger.Audit(log.AuditEvent{
		InitiatorID:   farmerID,
		InitiatorType: log.InitiatorTypeFarmer,
		TargetID:      documentID,
		TargetType:    log.TargetTypeDocument,
		ActionID:      log.ActionDeleteDocument,
	})

	w.WriteHeader(http.StatusNoContent)
}
