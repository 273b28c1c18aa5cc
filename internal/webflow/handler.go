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
	"context"
	"net/http"
	"strings"

	serverconst "github.com/asgardeo/webflow/internal/system/constants"
	"github.com/asgardeo/webflow/internal/system/error/apierror"
	"github.com/asgardeo/webflow/internal/system/error/serviceerror"
	"github.com/asgardeo/webflow/internal/system/log"
	sysutils "github.com/asgardeo/webflow/internal/system/utils"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

const handlerLoggerComponentName = "WebFlowHandler"

// selectAuthMethodRequest is the body of the form data update request.
type selectAuthMethodRequest struct {
	FormData         map[string]interface{} `json:"formData"`
	ChosenAuthMethod constants.AuthMethod   `json:"chosenAuthMethod"`
}

// operationStep is a service call answering with screen commands.
type operationStep func(ctx context.Context, operationHash string) ([]model.ScreenCommand,
	*serviceerror.ServiceError)

// webFlowHandler handles the web flow API requests.
type webFlowHandler struct {
	service WebFlowServiceInterface
}

// newWebFlowHandler creates a new instance of webFlowHandler.
func newWebFlowHandler(service WebFlowServiceInterface) *webFlowHandler {
	return &webFlowHandler{
		service: service,
	}
}

// HandleInitRequest handles the request to start the authentication of an operation.
// The operation hash is optional on this request.
func (h *webFlowHandler) HandleInitRequest(w http.ResponseWriter, r *http.Request) {
	operationHash := getOperationHash(r)
	commands, svcErr := h.service.InitOperation(r.Context(), operationHash)
	h.writeFlowResponse(w, operationHash, commands, svcErr)
}

// HandleOperationDetailRequest handles the request for the operation review screen.
func (h *webFlowHandler) HandleOperationDetailRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.GetOperationDetail)
}

// HandleOperationAuthenticateRequest handles the request to authorize the operation.
func (h *webFlowHandler) HandleOperationAuthenticateRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.ConfirmOperation)
}

// HandleOperationCancelRequest handles the request to cancel the operation.
func (h *webFlowHandler) HandleOperationCancelRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.CancelOperation)
}

// HandleFormDataUpdateRequest handles the request to store the form data and the chosen method.
func (h *webFlowHandler) HandleFormDataUpdateRequest(w http.ResponseWriter, r *http.Request) {
	operationHash := getOperationHash(r)
	if operationHash == "" {
		h.writeServiceError(w, &ErrorMissingOperationHash)
		return
	}

	request, err := sysutils.DecodeJSONBody[selectAuthMethodRequest](r)
	if err != nil {
		h.writeServiceError(w, ErrorInvalidRequestFormat.WithDescription("Failed to parse request body: "+err.Error()))
		return
	}

	commands, svcErr := h.service.SelectAuthMethod(r.Context(), operationHash, request.FormData,
		request.ChosenAuthMethod)
	h.writeFlowResponse(w, operationHash, commands, svcErr)
}

// HandleApprovalInitRequest handles the request to start the SCA approval.
func (h *webFlowHandler) HandleApprovalInitRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.InitApproval)
}

// HandleApprovalDetailRequest handles the request for the SCA approval details.
func (h *webFlowHandler) HandleApprovalDetailRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.GetApprovalDetail)
}

// HandleApprovalAuthenticateRequest handles the request to confirm the SCA approval.
func (h *webFlowHandler) HandleApprovalAuthenticateRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.ConfirmApproval)
}

// HandleApprovalCancelRequest handles the request to cancel the SCA approval.
func (h *webFlowHandler) HandleApprovalCancelRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.CancelApproval)
}

// HandleClientCertificateRequest handles the request to verify the client TLS certificate.
func (h *webFlowHandler) HandleClientCertificateRequest(w http.ResponseWriter, r *http.Request) {
	h.handleOperationStep(w, r, h.service.CheckClientCertificate)
}

// HandleTransitionListRequest handles the request to list the recorded screen transitions.
func (h *webFlowHandler) HandleTransitionListRequest(w http.ResponseWriter, r *http.Request) {
	operationHash := getOperationHash(r)
	if operationHash == "" {
		h.writeServiceError(w, &ErrorMissingOperationHash)
		return
	}

	transitions, svcErr := h.service.GetTransitions(r.Context(), operationHash)
	if svcErr != nil {
		h.writeServiceError(w, svcErr)
		return
	}

	sysutils.WriteJSON(w, http.StatusOK, model.TransitionListResponse{
		OperationHash: operationHash,
		Transitions:   transitions,
	})
}

// HandleLatestTransitionRequest handles the request for the last screen shown for an operation.
func (h *webFlowHandler) HandleLatestTransitionRequest(w http.ResponseWriter, r *http.Request) {
	operationHash := getOperationHash(r)
	if operationHash == "" {
		h.writeServiceError(w, &ErrorMissingOperationHash)
		return
	}

	transition, svcErr := h.service.GetLatestTransition(r.Context(), operationHash)
	if svcErr != nil {
		h.writeServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, transition)
}

func (h *webFlowHandler) handleOperationStep(w http.ResponseWriter, r *http.Request, step operationStep) {
	operationHash := getOperationHash(r)
	if operationHash == "" {
		h.writeServiceError(w, &ErrorMissingOperationHash)
		return
	}

	commands, svcErr := step(r.Context(), operationHash)
	h.writeFlowResponse(w, operationHash, commands, svcErr)
}

func (h *webFlowHandler) writeFlowResponse(w http.ResponseWriter, operationHash string,
	commands []model.ScreenCommand, svcErr *serviceerror.ServiceError) {
	if svcErr != nil {
		h.writeServiceError(w, svcErr)
		return
	}
	if commands == nil {
		commands = []model.ScreenCommand{}
	}

	sysutils.WriteJSON(w, http.StatusOK, model.FlowResponse{
		OperationHash: operationHash,
		Commands:      commands,
	})
}

// writeServiceError writes a service error as an API error with the matching status code.
func (h *webFlowHandler) writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusBadRequest
	if svcErr.Code == ErrorTransitionNotFound.Code {
		statusCode = http.StatusNotFound
	} else if !svcErr.IsClientError() {
		statusCode = http.StatusInternalServerError
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName)).
			Error("Web flow request failed", log.String("code", svcErr.Code))
	}

	sysutils.WriteJSONError(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

func getOperationHash(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(serverconst.OperationHashHeaderName))
}
