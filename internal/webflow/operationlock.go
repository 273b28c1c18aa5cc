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
	"sync"

	"golang.org/x/sync/semaphore"
)

// operationQueue guards one operation. Weighted hands out its single slot in the order callers
// asked for it.
type operationQueue struct {
	sem  *semaphore.Weighted
	refs int
}

// operationLocks serializes work per operation hash. Work for different hashes runs in parallel.
type operationLocks struct {
	mu     sync.Mutex
	queues map[string]*operationQueue
}

func newOperationLocks() *operationLocks {
	return &operationLocks{queues: make(map[string]*operationQueue)}
}

// lock blocks until every earlier caller for the same hash has unlocked, and returns the unlock
// function. A caller whose ctx ends first leaves the queue and gets ctx.Err().
func (l *operationLocks) lock(ctx context.Context, operationHash string) (func(), error) {
	l.mu.Lock()
	q, exists := l.queues[operationHash]
	if !exists {
		q = &operationQueue{sem: semaphore.NewWeighted(1)}
		l.queues[operationHash] = q
	}
	q.refs++
	l.mu.Unlock()

	if err := q.sem.Acquire(ctx, 1); err != nil {
		l.leave(operationHash, q)
		return nil, err
	}
	unlock := func() {
		q.sem.Release(1)
		l.leave(operationHash, q)
	}
	if err := ctx.Err(); err != nil {
		unlock()
		return nil, err
	}
	return unlock, nil
}

func (l *operationLocks) leave(operationHash string, q *operationQueue) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q.refs--
	if q.refs == 0 {
		delete(l.queues, operationHash)
	}
}

// size returns the number of operations with pending or running work.
func (l *operationLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues)
}

// waiting returns the number of callers for operationHash besides the current holder.
func (l *operationLocks) waiting(operationHash string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if q, ok := l.queues[operationHash]; ok && q.refs > 0 {
		return q.refs - 1
	}
	return 0
}
