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

// Package webflow implements the backend-for-frontend of the web authentication flow.
//
// Each step calls the authentication server, routes its answer to screen commands and records
// the commands as screen transitions of the operation.
package webflow

import (
	"context"
	"errors"

	"github.com/asgardeo/webflow/internal/system/error/serviceerror"
	"github.com/asgardeo/webflow/internal/system/log"
	"github.com/asgardeo/webflow/internal/webflow/client"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
	"github.com/asgardeo/webflow/internal/webflow/router"
)

const loggerComponentName = "WebFlowService"

// WebFlowServiceInterface defines the web flow steps exposed to the HTTP layer.
type WebFlowServiceInterface interface {
	InitOperation(ctx context.Context, operationHash string) ([]model.ScreenCommand, *serviceerror.ServiceError)
	GetOperationDetail(ctx context.Context, operationHash string) ([]model.ScreenCommand,
		*serviceerror.ServiceError)
	ConfirmOperation(ctx context.Context, operationHash string) ([]model.ScreenCommand,
		*serviceerror.ServiceError)
	CancelOperation(ctx context.Context, operationHash string) ([]model.ScreenCommand, *serviceerror.ServiceError)
	SelectAuthMethod(ctx context.Context, operationHash string, formData map[string]interface{},
		method constants.AuthMethod) ([]model.ScreenCommand, *serviceerror.ServiceError)
	InitApproval(ctx context.Context, operationHash string) ([]model.ScreenCommand, *serviceerror.ServiceError)
	GetApprovalDetail(ctx context.Context, operationHash string) ([]model.ScreenCommand,
		*serviceerror.ServiceError)
	ConfirmApproval(ctx context.Context, operationHash string) ([]model.ScreenCommand,
		*serviceerror.ServiceError)
	CancelApproval(ctx context.Context, operationHash string) ([]model.ScreenCommand, *serviceerror.ServiceError)
	CheckClientCertificate(ctx context.Context, operationHash string) ([]model.ScreenCommand,
		*serviceerror.ServiceError)
	GetTransitions(ctx context.Context, operationHash string) ([]model.ScreenTransition,
		*serviceerror.ServiceError)
	GetLatestTransition(ctx context.Context, operationHash string) (*model.ScreenTransition,
		*serviceerror.ServiceError)
}

// webFlowService is the default implementation of WebFlowServiceInterface.
type webFlowService struct {
	authClient           client.AuthServerClientInterface
	store                transitionStoreInterface
	locks                *operationLocks
	clientCertificateURL string
}

// newWebFlowService creates a new instance of webFlowService.
func newWebFlowService(authClient client.AuthServerClientInterface, store transitionStoreInterface,
	clientCertificateURL string) WebFlowServiceInterface {
	return &webFlowService{
		authClient:           authClient,
		store:                store,
		locks:                newOperationLocks(),
		clientCertificateURL: clientCertificateURL,
	}
}

// InitOperation starts the authentication of an operation and returns the first screens.
func (s *webFlowService) InitOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.routeOperationStep(ctx, operationHash, constants.ActionInit, s.authClient.InitOperation)
}

// GetOperationDetail returns the operation review screen with the operation details.
func (s *webFlowService) GetOperationDetail(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, constants.ActionDetail, func() []model.ScreenCommand {
		detail, err := s.authClient.GetOperationDetail(ctx, operationHash)
		if err != nil {
			return s.transportFailure(operationHash, constants.ActionDetail, err)
		}
		return []model.ScreenCommand{router.OperationReview(*detail)}
	}), nil
}

// ConfirmOperation authorizes the operation and returns the next screens.
func (s *webFlowService) ConfirmOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.routeOperationStep(ctx, operationHash, constants.ActionConfirm, s.authClient.ConfirmOperation)
}

// CancelOperation cancels the operation and returns the next screens.
func (s *webFlowService) CancelOperation(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.routeOperationStep(ctx, operationHash, constants.ActionCancel, s.authClient.CancelOperation)
}

// SelectAuthMethod stores the form data with the chosen authentication method and returns the screen of
// that method.
func (s *webFlowService) SelectAuthMethod(ctx context.Context, operationHash string,
	formData map[string]interface{}, method constants.AuthMethod) ([]model.ScreenCommand,
	*serviceerror.ServiceError) {
	if !router.IsSelectableAuthMethod(method) {
		return nil, &ErrorUnsupportedAuthMethod
	}
	if formData == nil {
		return nil, &ErrorMissingFormData
	}

	request := model.UpdateFormDataRequest{FormData: lockFormData(formData, method)}
	return s.withOperation(ctx, operationHash, constants.ActionSelectAuthMethod, func() []model.ScreenCommand {
		response, err := s.authClient.UpdateOperationFormData(ctx, operationHash, request)
		if err != nil {
			return s.transportFailure(operationHash, constants.ActionSelectAuthMethod, err)
		}
		switch response.Result {
		case constants.AuthStepResultAuthFailed, constants.AuthStepResultAuthMethodFailed:
			return []model.ScreenCommand{{
				Screen:  constants.ScreenError,
				Payload: model.ScreenPayload{constants.PayloadKeyMessage: response.Message},
			}}
		default:
			return router.RouteAuthMethodChoice(method)
		}
	}), nil
}

// InitApproval starts the SCA approval and returns the approval screen.
func (s *webFlowService) InitApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, constants.ActionApprovalInit, func() []model.ScreenCommand {
		commands := []model.ScreenCommand{router.ApprovalLoading()}
		detail, err := s.authClient.InitApproval(ctx, operationHash)
		if err != nil {
			return append(commands, s.transportFailure(operationHash, constants.ActionApprovalInit, err)...)
		}
		return append(commands, router.ApprovalDetail(*detail, true))
	}), nil
}

// GetApprovalDetail returns the approval screen with the operation details.
func (s *webFlowService) GetApprovalDetail(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, constants.ActionApprovalDetail, func() []model.ScreenCommand {
		detail, err := s.authClient.GetOperationDetail(ctx, operationHash)
		if err != nil {
			return s.transportFailure(operationHash, constants.ActionApprovalDetail, err)
		}
		return []model.ScreenCommand{router.ApprovalDetail(*detail, false)}
	}), nil
}

// ConfirmApproval confirms the SCA approval and returns the next screens.
func (s *webFlowService) ConfirmApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, constants.ActionApprovalConfirm, func() []model.ScreenCommand {
		commands := []model.ScreenCommand{router.ApprovalLoading()}
		response, err := s.authClient.ConfirmApproval(ctx, operationHash)
		if err != nil {
			return append(commands, s.transportFailure(operationHash, constants.ActionApprovalConfirm, err)...)
		}
		return append(commands, router.RouteApprovalConfirm(*response)...)
	}), nil
}

// CancelApproval cancels the SCA approval and returns the error screen carrying the cancel reason.
func (s *webFlowService) CancelApproval(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, constants.ActionApprovalCancel, func() []model.ScreenCommand {
		response, err := s.authClient.CancelApproval(ctx, operationHash)
		if err != nil {
			return s.transportFailure(operationHash, constants.ActionApprovalCancel, err)
		}
		return router.RouteApprovalCancel(*response)
	}), nil
}

// CheckClientCertificate verifies the client TLS certificate. A verified certificate yields no command.
func (s *webFlowService) CheckClientCertificate(ctx context.Context, operationHash string) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	if s.clientCertificateURL == "" {
		return nil, &ErrorClientCertificateNotConfigured
	}

	return s.withOperation(ctx, operationHash, constants.ActionClientCertificate, func() []model.ScreenCommand {
		if err := s.authClient.CheckClientCertificate(ctx, operationHash, s.clientCertificateURL); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
				Debug("Client certificate verification failed", log.Error(err))
			return []model.ScreenCommand{router.ClientCertificateFailed()}
		}
		return []model.ScreenCommand{}
	}), nil
}

// GetTransitions returns the recorded screen transitions of an operation.
func (s *webFlowService) GetTransitions(ctx context.Context, operationHash string) (
	[]model.ScreenTransition, *serviceerror.ServiceError) {
	transitions, err := s.store.GetTransitions(ctx, operationHash)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to retrieve screen transitions",
				log.String(log.LoggerKeyOperationHash, log.MaskString(operationHash)), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return transitions, nil
}

// GetLatestTransition returns the last screen shown for an operation, used to restore the screen after a
// page reload.
func (s *webFlowService) GetLatestTransition(ctx context.Context, operationHash string) (
	*model.ScreenTransition, *serviceerror.ServiceError) {
	transition, err := s.store.GetLatestTransition(ctx, operationHash)
	if err != nil {
		if errors.Is(err, errTransitionNotFound) {
			return nil, &ErrorTransitionNotFound
		}
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Error("Failed to retrieve the latest screen transition",
				log.String(log.LoggerKeyOperationHash, log.MaskString(operationHash)), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return transition, nil
}

// routeOperationStep runs an auth server step whose answer goes through the screen router.
func (s *webFlowService) routeOperationStep(ctx context.Context, operationHash, action string,
	call func(context.Context, string) (*model.OperationResponse, error)) (
	[]model.ScreenCommand, *serviceerror.ServiceError) {
	return s.withOperation(ctx, operationHash, action, func() []model.ScreenCommand {
		response, err := call(ctx, operationHash)
		if err != nil {
			return s.transportFailure(operationHash, action, err)
		}
		return router.Route(*response)
	}), nil
}

// withOperation runs step while holding the operation's turn and records the resulting commands.
// Steps for the same operation are applied in the order they arrived. A caller that goes away
// before its turn runs nothing and records nothing.
func (s *webFlowService) withOperation(ctx context.Context, operationHash, action string,
	step func() []model.ScreenCommand) []model.ScreenCommand {
	if operationHash == "" {
		return step()
	}
	unlock, err := s.locks.lock(ctx, operationHash)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Request left before its turn", log.String(log.LoggerKeyOperationHash,
				log.MaskString(operationHash)), log.String(log.LoggerKeyAction, action), log.Error(err))
		return []model.ScreenCommand{}
	}
	defer unlock()

	commands := step()
	// The screens were already decided; keep the history even if the client went away.
	s.recordTransitions(context.WithoutCancel(ctx), operationHash, action, commands)
	return commands
}

// recordTransitions persists the commands. A failure is logged and does not affect the response.
func (s *webFlowService) recordTransitions(ctx context.Context, operationHash, action string,
	commands []model.ScreenCommand) {
	if operationHash == "" || len(commands) == 0 || s.store == nil {
		return
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyOperationHash, log.MaskString(operationHash)),
		log.String(log.LoggerKeyAction, action))
	if err := s.store.AddTransitions(ctx, operationHash, action, commands); err != nil {
		logger.Error("Failed to record screen transitions", log.Error(err))
		return
	}
	if logger.IsDebugEnabled() {
		logger.Debug("Recorded screen transitions", log.Int("count", len(commands)))
	}
}

func (s *webFlowService) transportFailure(operationHash, action string, err error) []model.ScreenCommand {
	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Warn("Auth server call failed", log.String(log.LoggerKeyOperationHash, log.MaskString(operationHash)),
			log.String(log.LoggerKeyAction, action), log.Error(err))
	return []model.ScreenCommand{router.ClassifyTransportError(err)}
}

// lockFormData returns a copy of the form data with the bank account choice frozen and the chosen
// method set in the user input.
func lockFormData(formData map[string]interface{}, method constants.AuthMethod) map[string]interface{} {
	result := make(map[string]interface{}, len(formData)+1)
	for k, v := range formData {
		result[k] = v
	}

	userInput := map[string]interface{}{}
	if existing, ok := formData[constants.FormDataKeyUserInput].(map[string]interface{}); ok {
		for k, v := range existing {
			userInput[k] = v
		}
	}
	userInput[constants.FormDataKeyBankAccountChoiceLocked] = true
	userInput[constants.FormDataKeyChosenAuthMethod] = string(method)
	result[constants.FormDataKeyUserInput] = userInput
	return result
}
