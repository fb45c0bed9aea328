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
	"os"
	"testing"

	"github.com/krishisetu/farmer-welfare-service/internal/system/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := log.Init("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNormalizePhoneAcceptsValidNumbers(t *testing.T) {
	for _, input := range []string{"9876543210", "+919876543210", "919876543210", " 9876543210 "} {
		phone, err := NormalizePhone(input)
		require.NoError(t, err, input)
		assert.Equal(t, "9876543210", phone, input)
	}
}

func TestNormalizePhoneRejectsInvalidNumbers(t *testing.T) {
	for _, input := range []string{"", "12345", "1234567890", "98765432101", "abcdefghij", "+1 555 0100"} {
		_, err := NormalizePhone(input)
		assert.Error(t, err, input)
	}
}

func TestGenerateOTPCodeIsSixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}
