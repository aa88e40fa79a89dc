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

	"github.com/reelworks/rentstack/async"
	"github.com/reelworks/rentstack/types"
)

// Deferred is the non-blocking realization of the adapter contract. Every
// method returns immediately with a handle; the store round trip happens
// only once the handle is driven. The result content (values and error
// classification alike) is identical to the blocking flavor, because both
// run the same code. Single-row operations produce a Single, multi-row
// operations a Stream delivering records in store order.
type Deferred[D any] struct {
	repo Repository[D]
}

// NewDeferred wraps a blocking adapter in the deferred flavor.
func NewDeferred[D any](repo Repository[D]) *Deferred[D] {
	return &Deferred[D]{repo: repo}
}

func (a *Deferred[D]) Save(d *D) *async.Single[*D] {
	return async.NewSingle(func(ctx context.Context) (*D, error) {
		return a.repo.Save(ctx, d)
	})
}

func (a *Deferred[D]) FindByID(id string) *async.Single[*D] {
	return async.NewSingle(func(ctx context.Context) (*D, error) {
		return a.repo.FindByID(ctx, id)
	})
}

func (a *Deferred[D]) FindAll() *async.Stream[*D] {
	return async.FromSlice(func(ctx context.Context) ([]*D, error) {
		return a.repo.FindAll(ctx)
	})
}

func (a *Deferred[D]) DeleteByID(id string) *async.Completable {
	return async.NewCompletable(func(ctx context.Context) error {
		return a.repo.DeleteByID(ctx, id)
	})
}

func (a *Deferred[D]) ExistsByID(id string) *async.Single[bool] {
	return async.NewSingle(func(ctx context.Context) (bool, error) {
		return a.repo.ExistsByID(ctx, id)
	})
}

func (a *Deferred[D]) FindBySearchTerm(search string, page *types.PageRequest) *async.Stream[*D] {
	return a.items(func(ctx context.Context) (*types.Pagination[D], error) {
		return a.repo.FindBySearchTerm(ctx, search, page)
	})
}

func (a *Deferred[D]) FindByFilters(filter *types.Filter, page *types.PageRequest) *async.Stream[*D] {
	return a.items(func(ctx context.Context) (*types.Pagination[D], error) {
		return a.repo.FindByFilters(ctx, filter, page)
	})
}

func (a *Deferred[D]) FindAllPaged(page *types.PageRequest) *async.Stream[*D] {
	return a.items(func(ctx context.Context) (*types.Pagination[D], error) {
		return a.repo.FindAllPaged(ctx, page)
	})
}

func (a *Deferred[D]) items(fetch func(ctx context.Context) (*types.Pagination[D], error)) *async.Stream[*D] {
	return async.FromSlice(func(ctx context.Context) ([]*D, error) {
		pagination, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return pagination.Items, nil
	})
}
