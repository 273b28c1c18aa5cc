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

// Package constants defines the enumerations and keys shared by the web flow packages.
package constants

// AuthStepResult is the outcome of an authentication step reported by the auth server.
type AuthStepResult string

const (
	// AuthStepResultConfirmed indicates that the step succeeded.
	AuthStepResultConfirmed AuthStepResult = "CONFIRMED"
	// AuthStepResultCanceled indicates that the user canceled the operation.
	AuthStepResultCanceled AuthStepResult = "CANCELED"
	// AuthStepResultAuthFailed indicates that authentication failed.
	AuthStepResultAuthFailed AuthStepResult = "AUTH_FAILED"
	// AuthStepResultAuthMethodFailed indicates that the chosen authentication method failed.
	AuthStepResultAuthMethodFailed AuthStepResult = "AUTH_METHOD_FAILED"
)

// AuthMethod identifies an authentication method offered as a next step.
type AuthMethod string

// Authentication methods known to the web flow.
const (
	AuthMethodInit                 AuthMethod = "INIT"
	AuthMethodUserIDAssign         AuthMethod = "USER_ID_ASSIGN"
	AuthMethodUsernamePasswordAuth AuthMethod = "USERNAME_PASSWORD_AUTH"
	AuthMethodShowOperationDetail  AuthMethod = "SHOW_OPERATION_DETAIL"
	AuthMethodPowerAuthToken       AuthMethod = "POWERAUTH_TOKEN"
	AuthMethodSMSKey               AuthMethod = "SMS_KEY"
	AuthMethodLoginSCA             AuthMethod = "LOGIN_SCA"
	AuthMethodApprovalSCA          AuthMethod = "APPROVAL_SCA"
	AuthMethodConsent              AuthMethod = "CONSENT"
)

// Screen identifies a screen the client can be asked to show.
type Screen string

// Screens the web flow can transition to.
const (
	ScreenLogin           Screen = "LOGIN"
	ScreenOperationReview Screen = "OPERATION_REVIEW"
	ScreenSMS             Screen = "SMS"
	ScreenToken           Screen = "TOKEN"
	ScreenSuccess         Screen = "SUCCESS"
	ScreenError           Screen = "ERROR"
	ScreenApprovalSCA     Screen = "APPROVAL_SCA"
)

// ActionType returns the client action name that shows the screen.
func (s Screen) ActionType() string {
	return "SHOW_SCREEN_" + string(s)
}

// Payload keys of screen commands.
const (
	PayloadKeyAuthMethods          = "authMethods"
	PayloadKeyMessage              = "message"
	PayloadKeyLoading              = "loading"
	PayloadKeyError                = "error"
	PayloadKeySMSFallbackAvailable = "smsFallbackAvailable"
	PayloadKeyInfo                 = "info"
	PayloadKeyData                 = "data"
	PayloadKeyFormData             = "formData"
	PayloadKeyOperationName        = "operationName"
	PayloadKeyOperationID          = "operationId"
	PayloadKeyChosenAuthMethod     = "chosenAuthMethod"
)

// Message keys produced by the web flow itself. Keys received from the auth server are passed through.
const (
	MessageKeyPleaseLogIn              = "login.pleaseLogIn"
	MessageKeyInvalidRequest           = "message.invalidRequest"
	MessageKeyClientCertificateFailed  = "clientCertificate.failed"
	MessageKeyOperationTimeout         = "operation.timeout"
	MessageKeyOperationCanceled        = "operation.canceled"
	MessageKeyOperationNotAvailable    = "operation.notAvailable"
	MessageKeyOperationInterrupted     = "operation.interrupted"
	MessageKeyMaxAttemptsExceeded      = "authentication.maxAttemptsExceeded"
	InfoFirstLoad                      = "firstLoad"
	FormDataKeyBankAccountChoiceLocked = "operation.bankAccountChoice.disabled"
	FormDataKeyChosenAuthMethod        = "chosenAuthMethod"
	FormDataKeyUserInput               = "userInput"
)

// TerminalFailureMessages are the failure messages after which the operation cannot continue.
var TerminalFailureMessages = map[string]bool{
	MessageKeyOperationTimeout:      true,
	MessageKeyOperationCanceled:     true,
	MessageKeyOperationNotAvailable: true,
	MessageKeyOperationInterrupted:  true,
	MessageKeyMaxAttemptsExceeded:   true,
}

// Action names recorded with screen transitions.
const (
	ActionInit              = "init"
	ActionDetail            = "detail"
	ActionConfirm           = "confirm"
	ActionCancel            = "cancel"
	ActionSelectAuthMethod  = "selectAuthMethod"
	ActionApprovalInit      = "approvalInit"
	ActionApprovalDetail    = "approvalDetail"
	ActionApprovalConfirm   = "approvalConfirm"
	ActionApprovalCancel    = "approvalCancel"
	ActionClientCertificate = "clientCertificate"
)
