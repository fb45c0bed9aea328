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

package errors

const errorPrefix = "FWS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:        errorPrefix + "15001",
		Message:     "Error while initializing database client.",
		Description: "Failed to create a database client for the requested operation.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:        errorPrefix + "15002",
		Message:     "Error while executing database query.",
		Description: "A database query failed during the requested operation.",
	}

	DOCUMENT_STORE = ErrorMessage{
		Code:        errorPrefix + "15003",
		Message:     "Error while accessing the document store.",
		Description: "A document store operation failed during the requested operation.",
	}

	TOKEN_ISSUANCE = ErrorMessage{
		Code:        errorPrefix + "15004",
		Message:     "Token issuance failed.",
		Description: "Error while issuing an access token after OTP verification.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:        errorPrefix + "15005",
		Message:     "Error while parsing token.",
		Description: "Error occurred when parsing claims from the access token.",
	}

	ELIGIBILITY_CHECK = ErrorMessage{
		Code:        errorPrefix + "15006",
		Message:     "Error while checking scheme eligibility.",
		Description: "Error while loading scheme rules for eligibility evaluation.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:        errorPrefix + "16001",
		Message:     "Invalid request body.",
		Description: "The request body could not be parsed.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "16002",
		Message:     "Unauthorized request.",
		Description: "A valid bearer token is required to access this resource.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "16003",
		Message:     "Forbidden.",
		Description: "The authenticated principal is not allowed to perform this operation.",
	}

	FARMER_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16004",
		Message:     "Farmer not found.",
		Description: "No farmer profile exists for the given identifier.",
	}

	SCHEME_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16005",
		Message:     "Scheme not found.",
		Description: "No scheme exists for the given identifier.",
	}

	INVALID_PHONE = ErrorMessage{
		Code:        errorPrefix + "16006",
		Message:     "Invalid phone number.",
		Description: "The phone number must contain 10 to 15 digits with an optional leading '+'.",
	}

	OTP_RATE_LIMITED = ErrorMessage{
		Code:        errorPrefix + "16007",
		Message:     "Too many OTP requests.",
		Description: "OTP request limit reached for this phone number. Try again later.",
	}

	OTP_INVALID = ErrorMessage{
		Code:        errorPrefix + "16008",
		Message:     "OTP verification failed.",
		Description: "The OTP code is invalid or has expired.",
	}

	INVALID_SCHEME_RULE = ErrorMessage{
		Code:        errorPrefix + "16009",
		Message:     "Invalid scheme rule.",
		Description: "The scheme rule is missing a field or uses an unsupported operator.",
	}

	PROFILE_INCOMPLETE = ErrorMessage{
		Code:        errorPrefix + "16010",
		Message:     "Farmer profile is incomplete.",
		Description: "Name, state, district, land size, crop type and farming category must be filled before scheme discovery.",
	}

	NOT_ELIGIBLE = ErrorMessage{
		Code:        errorPrefix + "16011",
		Message:     "Farmer is not eligible for this scheme.",
		Description: "One or more eligibility rules failed for this farmer.",
	}

	MISSING_DOCUMENTS = ErrorMessage{
		Code:        errorPrefix + "16012",
		Message:     "Required documents are missing.",
		Description: "The farmer does not have all documents required by this scheme.",
	}

	APPLICATION_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "16013",
		Message:     "Application not found.",
		Description: "No application exists for the given identifier.",
	}

	DUPLICATE_APPLICATION = ErrorMessage{
		Code:        errorPrefix + "16014",
		Message:     "Application already exists.",
		Description: "The farmer already has a pending application for this scheme.",
	}

	INVALID_DOCUMENT_TYPE = ErrorMessage{
		Code:        errorPrefix + "16015",
		Message:     "Invalid document type.",
		Description: "The document type is not one of the recognized identifiers.",
	}
)
