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

// Application is a farmer's application to a welfare scheme. ApplicationData
// is auto-filled from the farmer profile at submission time so the record
// stays a snapshot of the profile the application was evaluated against.
type Application struct {
	ApplicationID   string                 `json:"application_id"`
	FarmerID        string                 `json:"farmer_id"`
	SchemeID        string                 `json:"scheme_id"`
	Status          string                 `json:"status"`
	ApplicationData map[string]interface{} `json:"application_data"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ApplicationRequest is the submission payload.
type ApplicationRequest struct {
	SchemeID string `json:"scheme_id"`
}

// ApplicationStatusRequest is the admin payload for moving an application
// through its lifecycle.
type ApplicationStatusRequest struct {
	Status string `json:"status"`
}
