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

package main

import (
	"net/http"
	"time"

	"github.com/asgardeo/webflow/internal/system/config"
	"github.com/asgardeo/webflow/internal/system/database/provider"
	healthcheckhandler "github.com/asgardeo/webflow/internal/system/healthcheck/handler"
	httpservice "github.com/asgardeo/webflow/internal/system/http"
	"github.com/asgardeo/webflow/internal/system/log"
	"github.com/asgardeo/webflow/internal/webflow"
	"github.com/asgardeo/webflow/internal/webflow/client"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config) {
	logger := log.GetLogger()

	healthCheckHandler := healthcheckhandler.NewHealthCheckHandler()
	mux.HandleFunc("GET /health/liveness", healthCheckHandler.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", healthCheckHandler.HandleReadinessRequest)

	if cfg.AuthServer.BaseURL == "" {
		logger.Fatal("Auth server base URL is not configured")
	}
	httpClient := httpservice.NewHTTPClientWithTimeout(time.Duration(authServerTimeout(cfg)) * time.Second)
	authClient := client.NewAuthServerClient(cfg.AuthServer.BaseURL, httpClient)

	_ = webflow.Initialize(mux, authClient, provider.GetDBProvider(), cfg.WebFlow.ClientCertificateURL)
}

// authServerTimeout returns the configured auth server timeout in seconds.
func authServerTimeout(cfg *config.Config) int {
	if cfg.AuthServer.Timeout <= 0 {
		return int(httpservice.DefaultTimeout / time.Second)
	}
	return cfg.AuthServer.Timeout
}
