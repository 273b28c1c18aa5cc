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

package webflow

import (
	"net/http"

	"github.com/asgardeo/webflow/internal/system/database/provider"
	"github.com/asgardeo/webflow/internal/system/middleware"
	"github.com/asgardeo/webflow/internal/webflow/client"
)

// Initialize creates the web flow service and registers its routes on the mux.
func Initialize(mux *http.ServeMux, authClient client.AuthServerClientInterface,
	dbProvider provider.DBProviderInterface, clientCertificateURL string) WebFlowServiceInterface {
	service := newWebFlowService(authClient, newTransitionStore(dbProvider), clientCertificateURL)
	handler := newWebFlowHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the HTTP routes for the web flow.
func registerRoutes(mux *http.ServeMux, handler *webFlowHandler) {
	postOpts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, X-OPERATION-HASH",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/init", handler.HandleInitRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/operation/detail",
		handler.HandleOperationDetailRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/operation/authenticate",
		handler.HandleOperationAuthenticateRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/operation/cancel",
		handler.HandleOperationCancelRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/approval-sca/init",
		handler.HandleApprovalInitRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/approval-sca/detail",
		handler.HandleApprovalDetailRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/approval-sca/authenticate",
		handler.HandleApprovalAuthenticateRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/approval-sca/cancel",
		handler.HandleApprovalCancelRequest, postOpts))
	mux.HandleFunc(middleware.WithCORS("POST /api/auth/approval-sca/client-certificate",
		handler.HandleClientCertificateRequest, postOpts))

	putOpts := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, X-OPERATION-HASH",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /api/auth/operation/formData",
		handler.HandleFormDataUpdateRequest, putOpts))

	getOpts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "X-OPERATION-HASH",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/auth/operation/transitions",
		handler.HandleTransitionListRequest, getOpts))
	mux.HandleFunc(middleware.WithCORS("GET /api/auth/operation/transitions/latest",
		handler.HandleLatestTransitionRequest, getOpts))

	preflightOpts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, PUT",
		AllowedHeaders:   "Content-Type, X-OPERATION-HASH",
		AllowCredentials: true,
		MaxAge:           600,
	}
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/auth/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, preflightOpts))
}
