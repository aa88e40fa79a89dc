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

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/store/model"
)

var testModels = []any{
	(*model.User)(nil),
	(*model.Movie)(nil),
	(*model.Rental)(nil),
	(*model.Country)(nil),
	(*model.Region)(nil),
}

func testDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = database.DropSchema(context.Background(), db, testModels...)
		_ = db.Close()
	})

	err = database.CreateSchema(context.Background(), db, testModels...)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, users *UserStore, first, last, email string) *domain.User {
	t.Helper()
	saved, err := users.Save(context.Background(), &domain.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
	})
	require.NoError(t, err)
	// Keep creation timestamps strictly increasing so the
	// most-recent-first ordering is deterministic.
	time.Sleep(2 * time.Millisecond)
	return saved
}

func mustInstant(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

const missingID = "00000000-0000-0000-0000-000000000001"
