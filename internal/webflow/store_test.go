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
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/asgardeo/webflow/internal/system/database/client"
	dbmodel "github.com/asgardeo/webflow/internal/system/database/model"
	"github.com/asgardeo/webflow/internal/webflow/constants"
	"github.com/asgardeo/webflow/internal/webflow/model"
	"github.com/asgardeo/webflow/tests/mocks/databasemock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var transitionColumns = []string{
	"TRANSITION_ID", "OPERATION_HASH", "SEQUENCE_NO", "ACTION", "SCREEN", "PAYLOAD", "CREATED_AT",
}

type TransitionStoreTestSuite struct {
	suite.Suite
	db        *sql.DB
	mock      sqlmock.Sqlmock
	store     *transitionStore
	createdAt time.Time
	ctx       context.Context
}

func TestTransitionStoreSuite(t *testing.T) {
	suite.Run(t, new(TransitionStoreTestSuite))
}

func (suite *TransitionStoreTestSuite) SetupTest() {
	var err error
	suite.db, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	dbClient := client.NewDBClient(dbmodel.NewDB(suite.db), dbmodel.DBTypeSQLite)
	suite.createdAt = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	suite.store = newTransitionStore(&databasemock.MockDBProvider{Client: dbClient}).(*transitionStore)
	suite.store.now = func() time.Time { return suite.createdAt }
	suite.ctx = context.Background()
}

func (suite *TransitionStoreTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *TransitionStoreTestSuite) TestAddTransitionsNumbersAfterLastSequence() {
	commands := []model.ScreenCommand{
		{Screen: constants.ScreenLogin, Payload: model.ScreenPayload{"message": "login.pleaseLogIn"}},
		{Screen: constants.ScreenOperationReview, Payload: model.ScreenPayload{"authMethods": []string{"SMS_KEY"}}},
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetMaxSequence.Query)).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"MAX_SEQUENCE"}).AddRow(int64(4)))
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(queryInsertTransition.Query)).
		WithArgs(sqlmock.AnyArg(), "hash-1", int64(5), "init", "LOGIN",
			`{"message":"login.pleaseLogIn"}`, suite.createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(queryInsertTransition.Query)).
		WithArgs(sqlmock.AnyArg(), "hash-1", int64(6), "init", "OPERATION_REVIEW",
			`{"authMethods":["SMS_KEY"]}`, suite.createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.store.AddTransitions(suite.ctx, "hash-1", "init", commands)

	assert.NoError(suite.T(), err)
}

func (suite *TransitionStoreTestSuite) TestAddTransitionsEmptyIsNoop() {
	err := suite.store.AddTransitions(suite.ctx, "hash-1", "init", nil)

	assert.NoError(suite.T(), err)
}

func (suite *TransitionStoreTestSuite) TestAddTransitionsRollsBackOnInsertFailure() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetMaxSequence.Query)).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"MAX_SEQUENCE"}).AddRow(int64(0)))
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(queryInsertTransition.Query)).
		WillReturnError(errors.New("constraint violation"))
	suite.mock.ExpectRollback()

	err := suite.store.AddTransitions(suite.ctx, "hash-1", "confirm", []model.ScreenCommand{
		{Screen: constants.ScreenSuccess, Payload: model.ScreenPayload{"message": "ok"}},
	})

	assert.ErrorContains(suite.T(), err, "failed to insert screen transition")
}

func (suite *TransitionStoreTestSuite) TestAddTransitionsQueryFailure() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetMaxSequence.Query)).
		WillReturnError(errors.New("database is locked"))

	err := suite.store.AddTransitions(suite.ctx, "hash-1", "confirm", []model.ScreenCommand{
		{Screen: constants.ScreenSuccess},
	})

	assert.ErrorContains(suite.T(), err, "failed to execute query")
}

func (suite *TransitionStoreTestSuite) TestGetTransitions() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetTransitions.Query)).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(transitionColumns).
			AddRow("id-1", "hash-1", int64(1), "init", "LOGIN", `{"message":"login.pleaseLogIn"}`,
				suite.createdAt).
			AddRow("id-2", "hash-1", int64(2), "confirm", "SUCCESS", []byte(`{"message":"ok"}`),
				"2025-06-01 10:31:00"))

	transitions, err := suite.store.GetTransitions(suite.ctx, "hash-1")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), transitions, 2)
	assert.Equal(suite.T(), model.ScreenTransition{
		TransitionID:  "id-1",
		OperationHash: "hash-1",
		SequenceNo:    1,
		Action:        "init",
		Screen:        constants.ScreenLogin,
		Payload:       model.ScreenPayload{"message": "login.pleaseLogIn"},
		CreatedAt:     suite.createdAt,
	}, transitions[0])
	assert.Equal(suite.T(), constants.ScreenSuccess, transitions[1].Screen)
	assert.Equal(suite.T(), int64(2), transitions[1].SequenceNo)
	assert.Equal(suite.T(), time.Date(2025, 6, 1, 10, 31, 0, 0, time.UTC), transitions[1].CreatedAt)
}

func (suite *TransitionStoreTestSuite) TestGetTransitionsEmpty() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetTransitions.Query)).
		WithArgs("hash-2").
		WillReturnRows(sqlmock.NewRows(transitionColumns))

	transitions, err := suite.store.GetTransitions(suite.ctx, "hash-2")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), transitions)
	assert.Empty(suite.T(), transitions)
}

func (suite *TransitionStoreTestSuite) TestGetTransitionsInvalidPayload() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetTransitions.Query)).
		WillReturnRows(sqlmock.NewRows(transitionColumns).
			AddRow("id-1", "hash-1", int64(1), "init", "LOGIN", `{not json`, suite.createdAt))

	transitions, err := suite.store.GetTransitions(suite.ctx, "hash-1")

	assert.Nil(suite.T(), transitions)
	assert.ErrorContains(suite.T(), err, "failed to parse payload")
}

func (suite *TransitionStoreTestSuite) TestGetLatestTransition() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetLatestTransition.Query)).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(transitionColumns).
			AddRow("id-3", "hash-1", int64(3), "confirm", "ERROR", `{"message":"operation.timeout"}`,
				suite.createdAt))

	transition, err := suite.store.GetLatestTransition(suite.ctx, "hash-1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "id-3", transition.TransitionID)
	assert.Equal(suite.T(), constants.ScreenError, transition.Screen)
	assert.Equal(suite.T(), "operation.timeout", transition.Payload["message"])
}

func (suite *TransitionStoreTestSuite) TestGetLatestTransitionNotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryGetLatestTransition.Query)).
		WithArgs("hash-9").
		WillReturnRows(sqlmock.NewRows(transitionColumns))

	transition, err := suite.store.GetLatestTransition(suite.ctx, "hash-9")

	assert.Nil(suite.T(), transition)
	assert.ErrorIs(suite.T(), err, errTransitionNotFound)
}

func (suite *TransitionStoreTestSuite) TestStoreDBClientFailure() {
	provider := &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return nil, errors.New("unable to open database")
		},
	}
	failing := newTransitionStore(provider)

	_, err := failing.GetTransitions(suite.ctx, "hash-1")
	assert.ErrorContains(suite.T(), err, "failed to get database client")

	err = failing.AddTransitions(suite.ctx, "hash-1", "init",
		[]model.ScreenCommand{{Screen: constants.ScreenSuccess}})
	assert.ErrorContains(suite.T(), err, "failed to get database client")
	assert.Equal(suite.T(), []string{"runtime", "runtime"}, provider.Requested)
}
