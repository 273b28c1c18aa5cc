/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

package utils

import "strings"

// wildcardOrigin allows any origin when present in the allowed origin list.
const wildcardOrigin = "*"

// GetAllowedOrigin returns the request origin when it is allowed, or an empty string otherwise.
// Origins are compared as whole values, ignoring case and a trailing slash, so that
// "https://bank.example.com.evil.org" does not pass for "https://bank.example.com".
func GetAllowedOrigin(allowedOrigins []string, requestOrigin string) string {
	origin := normalizeOrigin(requestOrigin)
	if origin == "" || origin == "null" {
		return ""
	}

	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == wildcardOrigin || normalizeOrigin(allowedOrigin) == origin {
			return requestOrigin
		}
	}
	return ""
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(origin), "/"))
}
