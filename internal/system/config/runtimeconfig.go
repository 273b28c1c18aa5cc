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

package config

import "sync"

// WebFlowRuntime holds the runtime configuration for the web flow server.
type WebFlowRuntime struct {
	WebFlowHome string `yaml:"webflow_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *WebFlowRuntime
	once          sync.Once
)

// InitializeWebFlowRuntime initializes the WebFlowRuntime configuration.
func InitializeWebFlowRuntime(webFlowHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &WebFlowRuntime{
			WebFlowHome: webFlowHome,
			Config:      *config,
		}
	})

	return nil
}

// GetWebFlowRuntime returns the WebFlowRuntime configuration.
func GetWebFlowRuntime() *WebFlowRuntime {
	if runtimeConfig == nil {
		panic("WebFlowRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetWebFlowRuntime resets the WebFlowRuntime.
// This should only be used in tests to reset the singleton state.
func ResetWebFlowRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
