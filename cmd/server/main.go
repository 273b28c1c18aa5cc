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

// Package main is the entry point for starting the web flow server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/webflow/internal/system/cert"
	"github.com/asgardeo/webflow/internal/system/config"
	"github.com/asgardeo/webflow/internal/system/database/provider"
	"github.com/asgardeo/webflow/internal/system/log"
	"github.com/asgardeo/webflow/internal/system/middleware"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer log.Sync()

	webFlowHome := getWebFlowHome(logger)

	cfg := initWebFlowConfigurations(logger, webFlowHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := initMultiplexer(cfg)
	handler := wrapHandler(ctx, logger, cfg, mux)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(ctx, logger, cfg, handler)
	} else {
		startTLSServer(ctx, logger, cfg, handler, webFlowHome)
	}

	if err := provider.Close(); err != nil {
		logger.Error("Error closing database connections", log.Error(err))
	}
}

// getWebFlowHome retrieves and return the web flow home directory.
func getWebFlowHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("webflowHome", "", "Path to the web flow server home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using webflowHome from command line argument", log.String("webflowHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initWebFlowConfigurations loads the deployment configuration and initializes the runtime.
func initWebFlowConfigurations(logger *log.Logger, webFlowHome string) *config.Config {
	configFilePath := path.Join(webFlowHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeWebFlowRuntime(webFlowHome, cfg); err != nil {
		logger.Fatal("Failed to initialize web flow runtime", log.Error(err))
	}

	return cfg
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()
	registerServices(mux, cfg)
	return mux
}

// wrapHandler adds request throttling and access logging around the multiplexer.
func wrapHandler(ctx context.Context, logger *log.Logger, cfg *config.Config, mux *http.ServeMux) http.Handler {
	var handler http.Handler = mux
	if cfg.RateLimit.RequestsPerSecond > 0 {
		burst := cfg.RateLimit.Burst
		if burst <= 0 {
			burst = 1
		}
		handler = middleware.NewRateLimiter(ctx, cfg.RateLimit.RequestsPerSecond, burst).Middleware(handler)
	}
	return log.AccessLogHandler(logger, handler)
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(ctx context.Context, logger *log.Logger, cfg *config.Config, handler http.Handler,
	webFlowHome string) {
	server, serverAddr := createHTTPServer(cfg, handler)

	tlsConfig, err := cert.GetTLSConfig(cfg, webFlowHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Web flow server started (HTTPS)...", log.String("address", serverAddr))
	serve(ctx, logger, server, func() error { return server.Serve(ln) })
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(ctx context.Context, logger *log.Logger, cfg *config.Config, handler http.Handler) {
	server, serverAddr := createHTTPServer(cfg, handler)

	logger.Info("Web flow server started (HTTP)...", log.String("address", serverAddr))
	serve(ctx, logger, server, server.ListenAndServe)
}

// serve runs the server until ctx is done and then drains in-flight requests.
func serve(ctx context.Context, logger *log.Logger, server *http.Server, run func() error) {
	errCh := make(chan error, 1)
	go func() {
		errCh <- run()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down web flow server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the server gracefully", log.Error(err))
		}
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(cfg *config.Config, handler http.Handler) (*http.Server, string) {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      time.Duration(authServerTimeout(cfg)+10) * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
