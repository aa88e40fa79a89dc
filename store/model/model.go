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

// Package model holds the store-shaped twins of the domain records. These
// structs never cross the store boundary: identifiers are native UUIDs,
// timestamps native instants, and every field carries its Bun column mapping.
package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/reelworks/rentstack/types"
)

// Record is implemented by every persistence model so the generic store can
// decide between insert and update without per-entity knowledge.
type Record interface {
	PK() uuid.UUID
}

// stamp assigns identifier, default status, and timestamps on insert and
// refreshes the update timestamp on update. Values already present are kept,
// so callers may seed records with explicit creation times.
func stamp(query bun.Query, id *uuid.UUID, status *types.Status, createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if *id == uuid.Nil {
			*id = uuid.New()
		}
		if *status == "" {
			*status = types.StatusActive
		}
		if createdAt.IsZero() {
			*createdAt = now
		}
		if updatedAt.IsZero() {
			*updatedAt = now
		}
	case *bun.UpdateQuery:
		*updatedAt = now
	}
}

// User row of the users table.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        uuid.UUID    `bun:"id,pk,type:varchar(36)"`
	FirstName string       `bun:"first_name,notnull"`
	LastName  string       `bun:"last_name,notnull"`
	Email     string       `bun:"email,notnull,unique"`
	Status    types.Status `bun:"status,notnull"`
	CreatedAt time.Time    `bun:"created_at,notnull"`
	UpdatedAt time.Time    `bun:"updated_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*User)(nil)

func (u *User) PK() uuid.UUID { return u.ID }

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stamp(query, &u.ID, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return nil
}

// Movie row of the movies table.
type Movie struct {
	bun.BaseModel `bun:"table:movies,alias:m"`

	ID          uuid.UUID    `bun:"id,pk,type:varchar(36)"`
	Title       string       `bun:"title,notnull"`
	Director    string       `bun:"director"`
	Genre       string       `bun:"genre"`
	ReleaseYear int          `bun:"release_year"`
	Status      types.Status `bun:"status,notnull"`
	CreatedAt   time.Time    `bun:"created_at,notnull"`
	UpdatedAt   time.Time    `bun:"updated_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*Movie)(nil)

func (m *Movie) PK() uuid.UUID { return m.ID }

func (m *Movie) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stamp(query, &m.ID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return nil
}

// Rental row of the rentals table.
type Rental struct {
	bun.BaseModel `bun:"table:rentals,alias:r"`

	ID        uuid.UUID    `bun:"id,pk,type:varchar(36)"`
	UserID    uuid.UUID    `bun:"user_id,notnull,type:varchar(36)"`
	MovieID   uuid.UUID    `bun:"movie_id,notnull,type:varchar(36)"`
	RentedAt  time.Time    `bun:"rented_at"`
	DueAt     time.Time    `bun:"due_at"`
	Status    types.Status `bun:"status,notnull"`
	CreatedAt time.Time    `bun:"created_at,notnull"`
	UpdatedAt time.Time    `bun:"updated_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*Rental)(nil)

func (r *Rental) PK() uuid.UUID { return r.ID }

func (r *Rental) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stamp(query, &r.ID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return nil
}

// Country row of the countries reference table.
type Country struct {
	bun.BaseModel `bun:"table:countries,alias:c"`

	ID        uuid.UUID    `bun:"id,pk,type:varchar(36)"`
	Name      string       `bun:"name,notnull,unique"`
	Code      string       `bun:"code,notnull,unique"`
	Status    types.Status `bun:"status,notnull"`
	CreatedAt time.Time    `bun:"created_at,notnull"`
	UpdatedAt time.Time    `bun:"updated_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*Country)(nil)

func (c *Country) PK() uuid.UUID { return c.ID }

func (c *Country) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stamp(query, &c.ID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return nil
}

// Region row of the regions reference table.
type Region struct {
	bun.BaseModel `bun:"table:regions,alias:rg"`

	ID        uuid.UUID    `bun:"id,pk,type:varchar(36)"`
	Name      string       `bun:"name,notnull"`
	Code      string       `bun:"code,notnull"`
	CountryID uuid.UUID    `bun:"country_id,notnull,type:varchar(36)"`
	Status    types.Status `bun:"status,notnull"`
	CreatedAt time.Time    `bun:"created_at,notnull"`
	UpdatedAt time.Time    `bun:"updated_at,notnull"`
}

var _ bun.BeforeAppendModelHook = (*Region)(nil)

func (r *Region) PK() uuid.UUID { return r.ID }

func (r *Region) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stamp(query, &r.ID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return nil
}
