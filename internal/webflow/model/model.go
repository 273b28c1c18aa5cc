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

// Package model defines the data structures exchanged by the web flow packages.
package model

import (
	"encoding/json"
	"time"

	"github.com/asgardeo/webflow/internal/webflow/constants"
)

// NextStep is a single authentication step the auth server offers next.
type NextStep struct {
	AuthMethod constants.AuthMethod `json:"authMethod"`
}

// OperationResponse is the auth server's answer to an operation step.
type OperationResponse struct {
	Result             constants.AuthStepResult `json:"result"`
	Message            string                   `json:"message,omitempty"`
	Next               []NextStep               `json:"next"`
	MobileTokenEnabled *bool                    `json:"mobileTokenEnabled,omitempty"`
}

// IsMobileTokenEnabled reports whether the response explicitly enables mobile token approval.
func (r OperationResponse) IsMobileTokenEnabled() bool {
	return r.MobileTokenEnabled != nil && *r.MobileTokenEnabled
}

// OperationDetail describes the operation under review.
type OperationDetail struct {
	OperationID      string                 `json:"operationId,omitempty"`
	OperationName    string                 `json:"operationName,omitempty"`
	Data             string                 `json:"data,omitempty"`
	FormData         map[string]interface{} `json:"formData,omitempty"`
	ChosenAuthMethod constants.AuthMethod   `json:"chosenAuthMethod,omitempty"`
}

// UpdateFormDataRequest carries the operation form data sent back to the auth server.
type UpdateFormDataRequest struct {
	FormData map[string]interface{} `json:"formData"`
}

// ScreenPayload holds the screen specific values of a command.
type ScreenPayload map[string]interface{}

// ScreenCommand instructs the client to show a screen with a payload.
type ScreenCommand struct {
	Screen  constants.Screen
	Payload ScreenPayload
}

type screenCommandJSON struct {
	Screen  constants.Screen `json:"screen"`
	Type    string           `json:"type"`
	Payload ScreenPayload    `json:"payload"`
}

// MarshalJSON encodes the command together with its client action type.
func (c ScreenCommand) MarshalJSON() ([]byte, error) {
	payload := c.Payload
	if payload == nil {
		payload = ScreenPayload{}
	}
	return json.Marshal(screenCommandJSON{
		Screen:  c.Screen,
		Type:    c.Screen.ActionType(),
		Payload: payload,
	})
}

// UnmarshalJSON decodes a command; the action type is derived from the screen.
func (c *ScreenCommand) UnmarshalJSON(data []byte) error {
	var raw screenCommandJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Screen = raw.Screen
	c.Payload = raw.Payload
	return nil
}

// ScreenTransition is a persisted screen command.
type ScreenTransition struct {
	TransitionID  string           `json:"transitionId"`
	OperationHash string           `json:"operationHash"`
	SequenceNo    int64            `json:"sequenceNo"`
	Action        string           `json:"action"`
	Screen        constants.Screen `json:"screen"`
	Payload       ScreenPayload    `json:"payload"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// FlowResponse is the body returned for every web flow step.
type FlowResponse struct {
	OperationHash string          `json:"operationHash,omitempty"`
	Commands      []ScreenCommand `json:"commands"`
}

// TransitionListResponse is the body returned for the transition history of an operation.
type TransitionListResponse struct {
	OperationHash string             `json:"operationHash"`
	Transitions   []ScreenTransition `json:"transitions"`
}
