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

package scripts

var InsertFarmer = map[string]string{
	"postgres": `INSERT INTO farmers (farmer_id, phone, name, state, district, village, land_size, crop_type,
        land_type, has_irrigation, farming_category, social_category, gender, date_of_birth, age, annual_income,
        is_bpl, language, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
}

var GetFarmerByID = map[string]string{
	"postgres": `SELECT farmer_id, phone, name, state, district, village, land_size, crop_type, land_type,
        has_irrigation, farming_category, social_category, gender, date_of_birth, age, annual_income, is_bpl,
        language, is_active, created_at, updated_at FROM farmers WHERE farmer_id = $1`,
}

var GetFarmerByPhone = map[string]string{
	"postgres": `SELECT farmer_id, phone, name, state, district, village, land_size, crop_type, land_type,
        has_irrigation, farming_category, social_category, gender, date_of_birth, age, annual_income, is_bpl,
        language, is_active, created_at, updated_at FROM farmers WHERE phone = $1`,
}

var UpdateFarmer = map[string]string{
	"postgres": `UPDATE farmers SET name = $1, state = $2, district = $3, village = $4, land_size = $5,
        crop_type = $6, land_type = $7, has_irrigation = $8, farming_category = $9, social_category = $10,
        gender = $11, date_of_birth = $12, age = $13, annual_income = $14, is_bpl = $15, language = $16,
        updated_at = $17 WHERE farmer_id = $18`,
}

var InsertScheme = map[string]string{
	"postgres": `INSERT INTO schemes (scheme_id, name, name_hindi, name_marathi, description, description_hindi,
        benefit_amount, required_documents, is_active, deadline, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
}

var GetSchemeByID = map[string]string{
	"postgres": `SELECT scheme_id, name, name_hindi, name_marathi, description, description_hindi, benefit_amount,
        required_documents::text, is_active, deadline, created_by, created_at, updated_at
        FROM schemes WHERE scheme_id = $1`,
}

var GetActiveSchemes = map[string]string{
	"postgres": `SELECT scheme_id, name, name_hindi, name_marathi, description, description_hindi, benefit_amount,
        required_documents::text, is_active, deadline, created_by, created_at, updated_at
        FROM schemes WHERE is_active = TRUE ORDER BY created_at DESC`,
}

var UpdateScheme = map[string]string{
	"postgres": `UPDATE schemes SET name = $1, name_hindi = $2, name_marathi = $3, description = $4,
        description_hindi = $5, benefit_amount = $6, required_documents = $7, is_active = $8, deadline = $9,
        updated_at = $10 WHERE scheme_id = $11`,
}

var DeleteScheme = map[string]string{
	"postgres": `DELETE FROM schemes WHERE scheme_id = $1`,
}

var InsertSchemeRule = map[string]string{
	"postgres": `INSERT INTO scheme_rules (rule_id, scheme_id, field, operator, value, message, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
}

var GetRulesForScheme = map[string]string{
	"postgres": `SELECT rule_id, scheme_id, field, operator, value, message, created_at, updated_at
        FROM scheme_rules WHERE scheme_id = $1 ORDER BY created_at`,
}

// GetRulesForActiveSchemes fetches the rules of every active scheme in one
// round-trip so bulk discovery does not issue a per-scheme query.
var GetRulesForActiveSchemes = map[string]string{
	"postgres": `SELECT r.rule_id, r.scheme_id, r.field, r.operator, r.value, r.message, r.created_at, r.updated_at
        FROM scheme_rules r JOIN schemes s ON s.scheme_id = r.scheme_id
        WHERE s.is_active = TRUE ORDER BY r.created_at`,
}

var DeleteSchemeRule = map[string]string{
	"postgres": `DELETE FROM scheme_rules WHERE rule_id = $1 AND scheme_id = $2`,
}

var InsertApplication = map[string]string{
	"postgres": `INSERT INTO applications (application_id, farmer_id, scheme_id, status, application_data,
        created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
}

var GetApplicationByID = map[string]string{
	"postgres": `SELECT application_id, farmer_id, scheme_id, status, application_data::text, created_at, updated_at
        FROM applications WHERE application_id = $1`,
}

var GetApplicationsForFarmer = map[string]string{
	"postgres": `SELECT application_id, farmer_id, scheme_id, status, application_data::text, created_at, updated_at
        FROM applications WHERE farmer_id = $1 ORDER BY created_at DESC`,
}

var GetPendingApplication = map[string]string{
	"postgres": `SELECT application_id FROM applications
        WHERE farmer_id = $1 AND scheme_id = $2 AND status IN ('draft', 'submitted') LIMIT 1`,
}

var UpdateApplicationStatus = map[string]string{
	"postgres": `UPDATE applications SET status = $1, updated_at = $2 WHERE application_id = $3`,
}
