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

// Package cert loads the TLS configuration used by the server.
package cert

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/asgardeo/webflow/internal/system/config"
)

// GetTLSConfig builds the server TLS configuration from the configured key pair. When a client CA
// bundle is configured, clients may present a certificate, which is verified against that bundle.
func GetTLSConfig(cfg *config.Config, webFlowHome string) (*tls.Config, error) {
	certFilePath := path.Join(webFlowHome, cfg.Security.CertFile)
	keyFilePath := path.Join(webFlowHome, cfg.Security.KeyFile)

	if err := requireFile(certFilePath, "certificate"); err != nil {
		return nil, err
	}
	if err := requireFile(keyFilePath, "key"); err != nil {
		return nil, err
	}

	keyPair, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load server key pair: %w", err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}
	if cfg.Security.ClientCAFile == "" {
		return tlsConfig, nil
	}

	clientCAs, err := loadCertPool(path.Join(webFlowHome, cfg.Security.ClientCAFile))
	if err != nil {
		return nil, err
	}
	tlsConfig.ClientCAs = clientCAs
	tlsConfig.ClientAuth = tls.VerifyClientCertIfGiven
	return tlsConfig, nil
}

func loadCertPool(caFilePath string) (*x509.CertPool, error) {
	if err := requireFile(caFilePath, "client CA"); err != nil {
		return nil, err
	}
	pemBytes, err := os.ReadFile(caFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client CA file: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemBytes) {
		return nil, errors.New("no certificates found in client CA file " + caFilePath)
	}
	return pool, nil
}

func requireFile(filePath, kind string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("%s file not found at %s", kind, filePath)
	}
	return nil
}
