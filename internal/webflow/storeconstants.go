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

import dbmodel "github.com/asgardeo/webflow/internal/system/database/model"

var (
	// queryInsertTransition is the query to record a screen transition.
	queryInsertTransition = dbmodel.DBQuery{
		ID: "WFQ-TRANSITION-01",
		Query: "INSERT INTO SCREEN_TRANSITION (TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, " +
			"PAYLOAD, CREATED_AT) VALUES (?, ?, ?, ?, ?, ?, ?)",
		PostgresQuery: "INSERT INTO SCREEN_TRANSITION (TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, " +
			"PAYLOAD, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}
	// queryGetMaxSequence is the query to get the last sequence number of an operation.
	queryGetMaxSequence = dbmodel.DBQuery{
		ID:            "WFQ-TRANSITION-02",
		Query:         "SELECT COALESCE(MAX(SEQUENCE_NO), 0) AS MAX_SEQUENCE FROM SCREEN_TRANSITION WHERE OPERATION_HASH = ?",
		PostgresQuery: "SELECT COALESCE(MAX(SEQUENCE_NO), 0) AS MAX_SEQUENCE FROM SCREEN_TRANSITION WHERE OPERATION_HASH = $1",
	}
	// queryGetTransitions is the query to list the transitions of an operation in order.
	queryGetTransitions = dbmodel.DBQuery{
		ID: "WFQ-TRANSITION-03",
		Query: "SELECT TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, PAYLOAD, CREATED_AT " +
			"FROM SCREEN_TRANSITION WHERE OPERATION_HASH = ? ORDER BY SEQUENCE_NO",
		PostgresQuery: "SELECT TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, PAYLOAD, CREATED_AT " +
			"FROM SCREEN_TRANSITION WHERE OPERATION_HASH = $1 ORDER BY SEQUENCE_NO",
	}
	// queryGetLatestTransition is the query to get the most recent transition of an operation.
	queryGetLatestTransition = dbmodel.DBQuery{
		ID: "WFQ-TRANSITION-04",
		Query: "SELECT TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, PAYLOAD, CREATED_AT " +
			"FROM SCREEN_TRANSITION WHERE OPERATION_HASH = ? ORDER BY SEQUENCE_NO DESC LIMIT 1",
		PostgresQuery: "SELECT TRANSITION_ID, OPERATION_HASH, SEQUENCE_NO, ACTION, SCREEN, PAYLOAD, CREATED_AT " +
			"FROM SCREEN_TRANSITION WHERE OPERATION_HASH = $1 ORDER BY SEQUENCE_NO DESC LIMIT 1",
	}
)
