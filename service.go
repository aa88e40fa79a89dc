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

// Package rentstack wires the generic use-case service over the store
// adapter. The service is the first layer where absence becomes
// database.ErrNotFound; below it, adapters report absence as a nil result.
package rentstack

import (
	"context"

	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/store"
	"github.com/reelworks/rentstack/types"
	"github.com/reelworks/rentstack/utils"
)

// domainPtr constrains R to a pointer to the domain struct exposing the
// identifier and status surface.
type domainPtr[D any] interface {
	*D
	domain.Record
}

// Service orchestrates one adapter call per use case for a single entity
// type. Delete is a status transition to INACTIVE by default; reference
// tables opt into genuine row deletion.
type Service[D any, R domainPtr[D]] struct {
	repo       store.Repository[D]
	entity     string
	hardDelete bool
	logger     *utils.Logger
}

// NewService returns a service with soft-delete semantics.
func NewService[D any, R domainPtr[D]](repo store.Repository[D], entity string) *Service[D, R] {
	return &Service[D, R]{
		repo:   repo,
		entity: entity,
		logger: utils.GetLogger("service"),
	}
}

// NewReferenceService returns a service whose Delete removes the row. Meant
// for small reference tables (countries, regions).
func NewReferenceService[D any, R domainPtr[D]](repo store.Repository[D], entity string) *Service[D, R] {
	s := NewService[D, R](repo, entity)
	s.hardDelete = true
	return s
}

// Create persists a new record. Any client-supplied identifier is discarded:
// identifiers exist only after first persistence.
func (s *Service[D, R]) Create(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, nil
	}
	R(d).SetRecordID("")
	saved, err := s.repo.Save(ctx, d)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("created %s %s", s.entity, R(saved).RecordID())
	return saved, nil
}

// Get returns the record or database.ErrNotFound.
func (s *Service[D, R]) Get(ctx context.Context, id string) (*D, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, database.ErrNotFound
	}
	return d, nil
}

// Update overwrites the record with the given identifier. Absent records
// yield database.ErrNotFound. The identifier and creation time never change,
// and a record without an explicit status keeps the stored one, so a
// request-shaped record cannot wipe the lifecycle fields.
func (s *Service[D, R]) Update(ctx context.Context, id string, d *D) (*D, error) {
	if d == nil {
		return nil, nil
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	R(d).SetRecordID(R(current).RecordID())
	R(d).SetRecordCreatedAt(R(current).RecordCreatedAt())
	if R(d).RecordStatus() == "" {
		R(d).SetRecordStatus(R(current).RecordStatus())
	}
	return s.repo.Save(ctx, d)
}

// Delete retires the record. Soft-delete services transition the status to
// INACTIVE and keep the row; reference services remove it.
func (s *Service[D, R]) Delete(ctx context.Context, id string) error {
	if s.hardDelete {
		exists, err := s.repo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return database.ErrNotFound
		}
		return s.repo.DeleteByID(ctx, id)
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	R(d).SetRecordStatus(types.StatusInactive)
	if _, err := s.repo.Save(ctx, d); err != nil {
		return err
	}
	s.logger.Debugf("deactivated %s %s", s.entity, id)
	return nil
}

// List returns one page of records narrowed by the optional filter.
func (s *Service[D, R]) List(ctx context.Context, filter *types.Filter, page *types.PageRequest) (*types.Pagination[D], error) {
	return s.repo.FindByFilters(ctx, filter, page)
}

// ListAll returns every record. Reference tables only.
func (s *Service[D, R]) ListAll(ctx context.Context) ([]*D, error) {
	return s.repo.FindAll(ctx)
}
