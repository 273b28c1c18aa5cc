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

// Package http provides the outbound HTTP client used to reach the authentication server.
package http

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is applied when no timeout is configured.
	DefaultTimeout = 30 * time.Second
	// maxIdleConnsPerHost is sized for a single upstream host receiving every call.
	maxIdleConnsPerHost = 32
	idleConnTimeout     = 90 * time.Second
)

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient is an HTTPClientInterface with a connection pool tuned for one upstream host.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTPClient with default settings.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(DefaultTimeout)
}

// NewHTTPClientWithTimeout creates a new HTTPClient whose requests, including reading the body,
// must finish within timeout. A non-positive timeout falls back to DefaultTimeout.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
	transport.IdleConnTimeout = idleConnTimeout
	transport.ResponseHeaderTimeout = timeout

	return &HTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			// Redirects from the auth server are treated as errors rather than followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
