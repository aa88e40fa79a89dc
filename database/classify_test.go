/*
 * Copyright 2025 reelworks.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestClassifyConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"mysql duplicate key", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}},
		{"mysql foreign key", &mysql.MySQLError{Number: 1452, Message: "foreign key constraint fails"}},
		{"postgres unique violation", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}},
		{"postgres not-null violation", &pq.Error{Code: "23502", Message: "null value in column"}},
		{"sqlite unique violation", errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("save", "User", tt.err)

			var cv *ConstraintViolation
			require.ErrorAs(t, got, &cv)
			// The original driver failure must stay reachable.
			require.ErrorIs(t, got, tt.err)

			var infra *InfrastructureError
			require.False(t, errors.As(got, &infra))
		})
	}
}

func TestClassifyWrapsEverythingElse(t *testing.T) {
	cause := errors.New("connection refused")
	got := Classify("save", "User", cause)

	var infra *InfrastructureError
	require.ErrorAs(t, got, &infra)
	require.Equal(t, "failed to save User: connection refused", got.Error())
	require.ErrorIs(t, got, cause)
}

func TestClassifyOperationMessages(t *testing.T) {
	cause := errors.New("boom")
	for _, op := range []string{"find", "list", "search", "delete", "check"} {
		got := Classify(op, "Movie", cause)
		require.Equal(t, fmt.Sprintf("failed to %s Movie: boom", op), got.Error())
	}
}

func TestClassifyPassThrough(t *testing.T) {
	require.NoError(t, Classify("save", "User", nil))

	// Cancellation is the caller's signal, not a store failure.
	require.Equal(t, context.Canceled, Classify("find", "User", context.Canceled))
	require.Equal(t, context.DeadlineExceeded, Classify("find", "User", context.DeadlineExceeded))

	// An already-classified violation is not wrapped a second time.
	cv := &ConstraintViolation{Err: errors.New("duplicate")}
	require.Equal(t, error(cv), Classify("save", "User", cv))
}
