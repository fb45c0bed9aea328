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

package model

import "time"

// Document is a farmer document record. The binary lives in object storage
// and OCR happens upstream; this record carries the storage reference plus
// whatever fields extraction produced.
type Document struct {
	DocumentID      string                 `json:"document_id" bson:"document_id"`
	FarmerID        string                 `json:"farmer_id" bson:"farmer_id"`
	DocumentType    string                 `json:"document_type" bson:"document_type"`
	DocumentURL     string                 `json:"document_url" bson:"document_url"`
	IsVerified      bool                   `json:"is_verified" bson:"is_verified"`
	VerifiedAt      *time.Time             `json:"verified_at,omitempty" bson:"verified_at,omitempty"`
	ExtractedFields map[string]interface{} `json:"extracted_fields,omitempty" bson:"extracted_fields,omitempty"`
	CreatedAt       time.Time              `json:"created_at" bson:"created_at"`
}

// DocumentRequest is the payload for recording an uploaded document.
type DocumentRequest struct {
	DocumentType    string                 `json:"document_type"`
	DocumentURL     string                 `json:"document_url"`
	ExtractedFields map[string]interface{} `json:"extracted_fields,omitempty"`
}
