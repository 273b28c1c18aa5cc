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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	serverconst "github.com/asgardeo/webflow/internal/system/constants"
	"github.com/asgardeo/webflow/internal/system/database/provider"
	"github.com/asgardeo/webflow/internal/system/log"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
)

// errTransitionNotFound is returned when an operation has no recorded transitions.
var errTransitionNotFound = errors.New("screen transition not found")

// timestampLayouts are the layouts a stored CREATED_AT value may come back in.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// transitionStoreInterface defines the persistence of screen transitions.
type transitionStoreInterface interface {
	AddTransitions(ctx context.Context, operationHash, action string, commands []model.ScreenCommand) error
	GetTransitions(ctx context.Context, operationHash string) ([]model.ScreenTransition, error)
	GetLatestTransition(ctx context.Context, operationHash string) (*model.ScreenTransition, error)
}

// transitionStore is the implementation of transitionStoreInterface.
type transitionStore struct {
	dbProvider provider.DBProviderInterface
	now        func() time.Time
}

// newTransitionStore returns a new instance of transitionStoreInterface.
func newTransitionStore(dbProvider provider.DBProviderInterface) transitionStoreInterface {
	return &transitionStore{
		dbProvider: dbProvider,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AddTransitions records the commands of one evaluation in a single transaction, numbered after the
// last recorded transition of the operation.
func (s *transitionStore) AddTransitions(ctx context.Context, operationHash, action string,
	commands []model.ScreenCommand) error {
	if len(commands) == 0 {
		return nil
	}

	dbClient, err := s.dbProvider.GetDBClient(serverconst.RuntimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetMaxSequence, operationHash)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	var lastSequence int64
	if len(results) > 0 {
		lastSequence, err = toInt64(results[0]["max_sequence"])
		if err != nil {
			return fmt.Errorf("failed to parse sequence number: %w", err)
		}
	}

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	createdAt := s.now()
	for i, command := range commands {
		payload, err := json.Marshal(command.Payload)
		if err != nil {
			return rollback(tx.Rollback, fmt.Errorf("failed to serialize payload: %w", err))
		}

		_, err = tx.ExecQuery(ctx, queryInsertTransition, uuid.New().String(), operationHash,
			lastSequence+int64(i)+1, action, string(command.Screen), string(payload), createdAt)
		if err != nil {
			return rollback(tx.Rollback, fmt.Errorf("failed to insert screen transition: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTransitions returns the recorded transitions of an operation ordered by sequence number.
func (s *transitionStore) GetTransitions(ctx context.Context, operationHash string) (
	[]model.ScreenTransition, error) {
	dbClient, err := s.dbProvider.GetDBClient(serverconst.RuntimeDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetTransitions, operationHash)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	transitions := make([]model.ScreenTransition, 0, len(results))
	for _, row := range results {
		transition, err := buildTransitionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build transition from result row: %w", err)
		}
		transitions = append(transitions, *transition)
	}
	return transitions, nil
}

// GetLatestTransition returns the most recent transition of an operation.
func (s *transitionStore) GetLatestTransition(ctx context.Context,
	operationHash string) (*model.ScreenTransition, error) {
	dbClient, err := s.dbProvider.GetDBClient(serverconst.RuntimeDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetLatestTransition, operationHash)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, errTransitionNotFound
	}

	return buildTransitionFromResultRow(results[0])
}

func rollback(rollbackFn func() error, cause error) error {
	if err := rollbackFn(); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TransitionStore")).
			Error("Failed to rollback transaction", log.Error(err))
		return errors.Join(cause, fmt.Errorf("failed to rollback transaction: %w", err))
	}
	return cause
}

func buildTransitionFromResultRow(row map[string]interface{}) (*model.ScreenTransition, error) {
	transitionID, ok := row["transition_id"].(string)
	if !ok {
		return nil, errors.New("failed to parse transition_id as string")
	}
	operationHash, ok := row["operation_hash"].(string)
	if !ok {
		return nil, errors.New("failed to parse operation_hash as string")
	}
	sequenceNo, err := toInt64(row["sequence_no"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse sequence_no: %w", err)
	}
	action, ok := row["action"].(string)
	if !ok {
		return nil, errors.New("failed to parse action as string")
	}
	screen, ok := row["screen"].(string)
	if !ok {
		return nil, errors.New("failed to parse screen as string")
	}

	var payload model.ScreenPayload
	switch raw := row["payload"].(type) {
	case string:
		err = json.Unmarshal([]byte(raw), &payload)
	case []byte:
		err = json.Unmarshal(raw, &payload)
	default:
		err = errors.New("unexpected payload type")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	createdAt, err := toTime(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &model.ScreenTransition{
		TransitionID:  transitionID,
		OperationHash: operationHash,
		SequenceNo:    sequenceNo,
		Action:        action,
		Screen:        constants.Screen(screen),
		Payload:       payload,
		CreatedAt:     createdAt,
	}, nil
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", value)
	}
}

func toTime(value interface{}) (time.Time, error) {
	var raw string
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", value)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
