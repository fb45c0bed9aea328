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

package log

import (
	"encoding/json"
	"log/slog"
	"time"
)

// AuditEvent represents a structured audit log entry
type AuditEvent struct {
	RecordedAt    string      `json:"recordedAt"`
	InitiatorID   string      `json:"initiatorId"`
	InitiatorType string      `json:"initiatorType"`
	TargetID      string      `json:"targetId"`
	TargetType    string      `json:"targetType"`
	ActionID      string      `json:"actionId"`
	Data          interface{} `json:"data,omitempty"`
}

// Audit logs an audit event with structured fields
func (l *Logger) Audit(event AuditEvent) {
	if event.RecordedAt == "" {
		event.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		l.Error("Failed to marshal audit event", Error(err))
		return
	}

	l.internal.Info("AUDIT", slog.String("audit_event", string(jsonData)))
}

// Action IDs for audit logging
const (
	// Farmer profile operations
	ActionRegisterFarmer = "register-farmer"
	ActionUpdateFarmer   = "update-farmer"

	// Scheme operations
	ActionAddScheme     = "add-scheme"
	ActionUpdateScheme  = "update-scheme"
	ActionDeleteScheme  = "delete-scheme"
	ActionAddSchemeRule = "add-scheme-rule"
	ActionDeleteRule    = "delete-scheme-rule"

	// Application operations
	ActionSubmitApplication = "submit-application"
	ActionUpdateApplication = "update-application-status"

	// Document operations
	ActionAddDocument    = "add-document"
	ActionVerifyDocument = "verify-document"
	ActionDeleteDocument = "delete-document"

	// Authentication operations
	ActionOTPRequest            = "otp-request"
	ActionAuthenticationSuccess = "authentication-success"
	ActionAuthenticationFailure = "authentication-failure"
)

// Initiator types
const (
	InitiatorTypeFarmer = "farmer"
	InitiatorTypeSystem = "system"
	InitiatorTypeAdmin  = "admin"
)

// Target types
const (
	TargetTypeFarmer      = "farmer"
	TargetTypeScheme      = "scheme"
	TargetTypeSchemeRule  = "scheme-rule"
	TargetTypeApplication = "application"
	TargetTypeDocument    = "document"
)
