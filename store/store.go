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

// Package store is the sole point of contact between services and the
// backing database. One generic adapter covers every entity: it normalizes
// page windows, dispatches Bun queries, classifies store failures into the
// database package taxonomy, and translates rows through the entity mapper.
// The adapter is stateless, performs no retries and no caching, and makes
// one store round trip per call.
package store

import (
	"context"

	"github.com/reelworks/rentstack/types"
)

// Repository is the blocking contract of the paginated adapter for one
// entity type. Rules shared by every implementation:
//
//   - FindByID reports absence as (nil, nil), never as an error; a malformed
//     identifier is an infrastructure failure, not absence.
//   - FindBySearchTerm with a blank or whitespace-only term behaves exactly
//     like FindAllPaged.
//   - Constraint violations propagate unchanged; every other store failure
//     is wrapped into a database.InfrastructureError naming the operation.
type Repository[D any] interface {
	Save(ctx context.Context, d *D) (*D, error)
	FindByID(ctx context.Context, id string) (*D, error)
	FindAll(ctx context.Context) ([]*D, error)
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindBySearchTerm(ctx context.Context, search string, page *types.PageRequest) (*types.Pagination[D], error)
	FindByFilters(ctx context.Context, filter *types.Filter, page *types.PageRequest) (*types.Pagination[D], error)
	FindAllPaged(ctx context.Context, page *types.PageRequest) (*types.Pagination[D], error)
}
