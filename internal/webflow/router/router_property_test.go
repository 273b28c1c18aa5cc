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

package router

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

var allResults = []interface{}{
	constants.AuthStepResultConfirmed,
	constants.AuthStepResultCanceled,
	constants.AuthStepResultAuthFailed,
	constants.AuthStepResultAuthMethodFailed,
	constants.AuthStepResult("UNKNOWN_RESULT"),
}

var allMethods = []interface{}{
	constants.AuthMethodInit,
	constants.AuthMethodUserIDAssign,
	constants.AuthMethodUsernamePasswordAuth,
	constants.AuthMethodShowOperationDetail,
	constants.AuthMethodPowerAuthToken,
	constants.AuthMethodSMSKey,
	constants.AuthMethodLoginSCA,
	constants.AuthMethodApprovalSCA,
	constants.AuthMethodConsent,
	constants.AuthMethod("UNKNOWN_METHOD"),
}

func genOperationResponse() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(allResults...),
		gen.AlphaString(),
		gen.SliceOf(gen.OneConstOf(allMethods...)),
	).Map(func(values []interface{}) model.OperationResponse {
		methods := reflect.ValueOf(values[2])
		next := make([]model.NextStep, 0, methods.Len())
		for i := 0; i < methods.Len(); i++ {
			next = append(next, model.NextStep{AuthMethod: methods.Index(i).Interface().(constants.AuthMethod)})
		}
		return model.OperationResponse{
			Result:  values[0].(constants.AuthStepResult),
			Message: values[1].(string),
			Next:    next,
		}
	})
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// TestRouteProperties checks the routing rules over random operation responses.
func TestRouteProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("routing the same response twice yields the same commands", prop.ForAll(
		func(response model.OperationResponse) bool {
			return reflect.DeepEqual(Route(response), Route(response))
		},
		genOperationResponse(),
	))

	properties.Property("terminal responses yield only SUCCESS or ERROR", prop.ForAll(
		func(response model.OperationResponse) bool {
			response.Next = nil
			commands := Route(response)
			switch response.Result {
			case constants.AuthStepResultConfirmed:
				return len(commands) == 1 && commands[0].Screen == constants.ScreenSuccess
			case constants.AuthStepResultAuthFailed:
				return len(commands) == 1 && commands[0].Screen == constants.ScreenError
			default:
				return commands != nil && len(commands) == 0
			}
		},
		genOperationResponse(),
	))

	properties.Property("review methods are unique and ordered by first appearance", prop.ForAll(
		func(response model.OperationResponse) bool {
			response.Result = constants.AuthStepResultConfirmed
			var expected []constants.AuthMethod
			seen := map[constants.AuthMethod]bool{}
			for _, step := range response.Next {
				if IsSelectableAuthMethod(step.AuthMethod) && !seen[step.AuthMethod] {
					seen[step.AuthMethod] = true
					expected = append(expected, step.AuthMethod)
				}
			}

			commands := Route(response)
			if len(expected) == 0 {
				for _, c := range commands {
					if c.Screen == constants.ScreenOperationReview {
						return false
					}
				}
				return true
			}

			last := commands[len(commands)-1]
			return last.Screen == constants.ScreenOperationReview &&
				reflect.DeepEqual(last.Payload[constants.PayloadKeyAuthMethods], expected)
		},
		genOperationResponse(),
	))

	properties.Property("one LOGIN per username and password step", prop.ForAll(
		func(response model.OperationResponse) bool {
			response.Result = constants.AuthStepResultConfirmed
			logins := 0
			for _, step := range response.Next {
				if step.AuthMethod == constants.AuthMethodUsernamePasswordAuth {
					logins++
				}
			}

			routedLogins := 0
			for _, c := range Route(response) {
				if c.Screen == constants.ScreenLogin {
					routedLogins++
				}
			}
			return len(response.Next) == 0 || routedLogins == logins
		},
		genOperationResponse(),
	))

	properties.TestingRun(t)
}
