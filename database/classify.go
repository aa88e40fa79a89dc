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
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// ErrNotFound marks the absence of a record with the requested identifier.
// Adapters report absence as an explicit nil result; the service layer is the
// first place absence becomes this error.
var ErrNotFound = errors.New("record not found")

// ConstraintViolation is a store-rejected write due to a uniqueness or
// integrity rule. It is a business-meaningful outcome, so classification
// passes it through untouched instead of burying it in an infrastructure
// wrapper. The original driver error stays reachable through Unwrap.
type ConstraintViolation struct {
	Err error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// InfrastructureError wraps every store-level failure that carries no
// business meaning. The message names the failed operation and entity; the
// cause stays reachable through Unwrap for diagnostics.
type InfrastructureError struct {
	Op     string
	Entity string
	Err    error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// Classify normalizes a store failure for the given operation. Constraint
// violations keep their type, context cancellation passes through bare, and
// everything else becomes an InfrastructureError.
func Classify(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return err
	}
	if IsConstraintViolation(err) {
		return &ConstraintViolation{Err: err}
	}
	return &InfrastructureError{Op: op, Entity: entity, Err: err}
}

// IsNoRows reports whether err signals an empty single-row result.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsConstraintViolation reports whether err is a duplicate-key or integrity
// violation surfaced by any of the supported drivers.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062: // duplicate key
			return true
		case 1048: // not-null violation
			return true
		case 1216, 1217, 1451, 1452: // foreign key violation
			return true
		case 3819: // check constraint violation
			return true
		}
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// SQLSTATE class 23: integrity constraint violation
		return strings.HasPrefix(string(pqErr.Code), "23")
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "duplicate key value") ||
		strings.Contains(s, "unique constraint failed") ||
		strings.Contains(s, "sqlstate 23505") {
		return true
	}
	if strings.Contains(s, "not-null constraint") ||
		strings.Contains(s, "not null constraint failed") ||
		strings.Contains(s, "sqlstate 23502") {
		return true
	}
	if strings.Contains(s, "foreign key violation") ||
		strings.Contains(s, "foreign key constraint failed") ||
		strings.Contains(s, "sqlstate 23503") {
		return true
	}
	if strings.Contains(s, "check constraint") ||
		strings.Contains(s, "sqlstate 23514") {
		return true
	}
	return false
}
