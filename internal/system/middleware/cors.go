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

// Package middleware provides the HTTP middleware shared by the server routes.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/asgardeo/webflow/internal/system/config"
	"github.com/asgardeo/webflow/internal/system/utils"
)

// CORSOptions describes what a cross-origin caller may do on one route.
type CORSOptions struct {
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
	// MaxAge is how long, in seconds, browsers may cache a preflight answer. Zero omits the header.
	MaxAge int
}

// WithCORS wraps an HTTP handler with CORS headers based on the provided options.
// It returns the pattern and wrapped handler that can be registered with http.ServeMux.
func WithCORS(pattern string, handler http.HandlerFunc, opts CORSOptions) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		applyCORSHeaders(w, r, opts)
		handler(w, r)
	}
}

func applyCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	requestOrigin := r.Header.Get("Origin")
	if requestOrigin == "" {
		return
	}
	// The answer depends on the origin, so shared caches must key on it.
	w.Header().Add("Vary", "Origin")

	allowedOrigin := utils.GetAllowedOrigin(config.GetWebFlowRuntime().Config.CORS.AllowedOrigins,
		requestOrigin)
	if allowedOrigin == "" {
		return
	}

	headers := w.Header()
	headers.Set("Access-Control-Allow-Origin", allowedOrigin)
	if opts.AllowedMethods != "" {
		headers.Set("Access-Control-Allow-Methods", opts.AllowedMethods)
	}
	if opts.AllowedHeaders != "" {
		headers.Set("Access-Control-Allow-Headers", opts.AllowedHeaders)
	}
	if opts.AllowCredentials {
		headers.Set("Access-Control-Allow-Credentials", "true")
	}
	if opts.MaxAge > 0 {
		headers.Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
	}
}
