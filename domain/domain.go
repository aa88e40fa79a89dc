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

// Package domain holds the canonical in-memory representation of every
// entity. Identifiers are string-form UUIDs and timestamps are RFC 3339
// strings; both are empty before first persistence and populated by the
// store layer on save.
package domain

import "github.com/reelworks/rentstack/types"

// Record is the surface the generic service layer needs from every domain
// record: identifier access, the status transition used for soft delete, and
// the creation time carried across updates.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	RecordStatus() types.Status
	SetRecordStatus(status types.Status)
	RecordCreatedAt() string
	SetRecordCreatedAt(ts string)
}

// User is a registered account holder.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Status    types.Status
	CreatedAt string
	UpdatedAt string
}

func (u *User) RecordID() string                    { return u.ID }
func (u *User) SetRecordID(id string)               { u.ID = id }
func (u *User) RecordStatus() types.Status          { return u.Status }
func (u *User) SetRecordStatus(status types.Status) { u.Status = status }
func (u *User) RecordCreatedAt() string             { return u.CreatedAt }
func (u *User) SetRecordCreatedAt(ts string)        { u.CreatedAt = ts }

// Movie is a catalog title available for rental.
type Movie struct {
	ID          string
	Title       string
	Director    string
	Genre       string
	ReleaseYear int
	Status      types.Status
	CreatedAt   string
	UpdatedAt   string
}

func (m *Movie) RecordID() string                    { return m.ID }
func (m *Movie) SetRecordID(id string)               { m.ID = id }
func (m *Movie) RecordStatus() types.Status          { return m.Status }
func (m *Movie) SetRecordStatus(status types.Status) { m.Status = status }
func (m *Movie) RecordCreatedAt() string             { return m.CreatedAt }
func (m *Movie) SetRecordCreatedAt(ts string)        { m.CreatedAt = ts }

// Rental links a user to a rented movie for a lending period.
type Rental struct {
	ID        string
	UserID    string
	MovieID   string
	RentedAt  string
	DueAt     string
	Status    types.Status
	CreatedAt string
	UpdatedAt string
}

func (r *Rental) RecordID() string                    { return r.ID }
func (r *Rental) SetRecordID(id string)               { r.ID = id }
func (r *Rental) RecordStatus() types.Status          { return r.Status }
func (r *Rental) SetRecordStatus(status types.Status) { r.Status = status }
func (r *Rental) RecordCreatedAt() string             { return r.CreatedAt }
func (r *Rental) SetRecordCreatedAt(ts string)        { r.CreatedAt = ts }

// Country is a small reference table entry.
type Country struct {
	ID        string
	Name      string
	Code      string
	Status    types.Status
	CreatedAt string
	UpdatedAt string
}

func (c *Country) RecordID() string                    { return c.ID }
func (c *Country) SetRecordID(id string)               { c.ID = id }
func (c *Country) RecordStatus() types.Status          { return c.Status }
func (c *Country) SetRecordStatus(status types.Status) { c.Status = status }
func (c *Country) RecordCreatedAt() string             { return c.CreatedAt }
func (c *Country) SetRecordCreatedAt(ts string)        { c.CreatedAt = ts }

// Region is a subdivision of a country.
type Region struct {
	ID        string
	Name      string
	Code      string
	CountryID string
	Status    types.Status
	CreatedAt string
	UpdatedAt string
}

func (r *Region) RecordID() string                    { return r.ID }
func (r *Region) SetRecordID(id string)               { r.ID = id }
func (r *Region) RecordStatus() types.Status          { return r.Status }
func (r *Region) SetRecordStatus(status types.Status) { r.Status = status }
func (r *Region) RecordCreatedAt() string             { return r.CreatedAt }
func (r *Region) SetRecordCreatedAt(ts string)        { r.CreatedAt = ts }
