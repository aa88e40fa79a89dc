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
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/mapper"
	"github.com/reelworks/rentstack/store/model"
	"github.com/reelworks/rentstack/types"
)

// recordPtr constrains M to a pointer to the persistence struct that also
// satisfies the model.Record surface.
type recordPtr[P any] interface {
	*P
	model.Record
}

// Paged is the generic blocking adapter. It is parameterized by the domain
// type D, the persistence type P, and the entity mapper, plus the set of
// text columns a search term is matched against.
type Paged[D, P any, M recordPtr[P]] struct {
	db      *bun.DB
	mapper  mapper.Mapper[D, P]
	entity  string
	columns []string
}

// NewPaged builds an adapter for one entity. entity names the type in error
// messages ("failed to save User"); searchColumns lists the text columns the
// search predicate covers.
func NewPaged[D, P any, M recordPtr[P]](db *bun.DB, m mapper.Mapper[D, P], entity string, searchColumns ...string) *Paged[D, P, M] {
	return &Paged[D, P, M]{db: db, mapper: m, entity: entity, columns: searchColumns}
}

// Save writes the record and returns the domain view of what was stored,
// with identifier, status, and timestamps populated on first save. A record
// without an identifier is inserted; one with an identifier is updated.
func (a *Paged[D, P, M]) Save(ctx context.Context, d *D) (*D, error) {
	if d == nil {
		return nil, nil
	}
	p, err := a.mapper.ToModel(d)
	if err != nil {
		return nil, &database.InfrastructureError{Op: "save", Entity: a.entity, Err: err}
	}
	if M(p).PK() == uuid.Nil {
		_, err = a.db.NewInsert().Model(p).Exec(ctx)
	} else {
		_, err = a.db.NewUpdate().Model(p).WherePK().Exec(ctx)
	}
	if err != nil {
		return nil, database.Classify("save", a.entity, err)
	}
	return a.domainOf("save", p)
}

// FindByID returns the record, or (nil, nil) when no row carries the
// identifier. A string that does not parse as a UUID is an infrastructure
// failure: invalid input is a different condition from "not present".
func (a *Paged[D, P, M]) FindByID(ctx context.Context, id string) (*D, error) {
	key, err := a.parseKey("find", id)
	if err != nil {
		return nil, err
	}
	var p P
	err = a.db.NewSelect().Model(&p).Where("id = ?", key).Scan(ctx)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify("find", a.entity, err)
	}
	return a.domainOf("find", &p)
}

// FindAll fetches every row. Intended for small reference tables only.
func (a *Paged[D, P, M]) FindAll(ctx context.Context) ([]*D, error) {
	var ps []*P
	err := a.db.NewSelect().Model(&ps).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, database.Classify("list", a.entity, err)
	}
	ds, err := mapper.ToDomainList(a.mapper, ps)
	if err != nil {
		return nil, &database.InfrastructureError{Op: "list", Entity: a.entity, Err: err}
	}
	return ds, nil
}

// DeleteByID removes the row with the given identifier.
func (a *Paged[D, P, M]) DeleteByID(ctx context.Context, id string) error {
	key, err := a.parseKey("delete", id)
	if err != nil {
		return err
	}
	var p P
	_, err = a.db.NewDelete().Model(&p).Where("id = ?", key).Exec(ctx)
	return database.Classify("delete", a.entity, err)
}

// ExistsByID reports whether a row with the given identifier exists.
func (a *Paged[D, P, M]) ExistsByID(ctx context.Context, id string) (bool, error) {
	key, err := a.parseKey("check", id)
	if err != nil {
		return false, err
	}
	exists, err := a.db.NewSelect().Model((*P)(nil)).Where("id = ?", key).Exists(ctx)
	if err != nil {
		return false, database.Classify("check", a.entity, err)
	}
	return exists, nil
}

// FindBySearchTerm pages through rows matching the term case-insensitively
// across the adapter's search columns. A blank term behaves exactly like
// FindAllPaged.
func (a *Paged[D, P, M]) FindBySearchTerm(ctx context.Context, search string, page *types.PageRequest) (*types.Pagination[D], error) {
	if strings.TrimSpace(search) == "" {
		return a.FindAllPaged(ctx, page)
	}
	return a.page(ctx, "search", &types.Filter{Search: search}, page, nil)
}

// FindByFilters composes the search predicate with an optional exact-match
// status predicate and an optional inclusive creation-time range. Each
// component is independently omittable.
func (a *Paged[D, P, M]) FindByFilters(ctx context.Context, filter *types.Filter, page *types.PageRequest) (*types.Pagination[D], error) {
	return a.page(ctx, "search", filter, page, nil)
}

// FindAllPaged pages through every row, most recently created first.
func (a *Paged[D, P, M]) FindAllPaged(ctx context.Context, page *types.PageRequest) (*types.Pagination[D], error) {
	return a.page(ctx, "list", nil, page, nil)
}

// page is the one paginated query path every listing operation funnels
// through: count, then fetch the window, then map.
func (a *Paged[D, P, M]) page(ctx context.Context, op string, filter *types.Filter, page *types.PageRequest, extra func(*bun.SelectQuery) *bun.SelectQuery) (*types.Pagination[D], error) {
	var ps []*P
	q := a.db.NewSelect().Model(&ps)
	q = a.applyFilter(q, filter)
	if extra != nil {
		q = extra(q)
	}

	pagination := types.NewPagination[D](page)
	total, err := q.Count(ctx)
	if err != nil {
		return nil, database.Classify(op, a.entity, err)
	}
	pagination.SetTotal(total)
	if total == 0 {
		return pagination, nil
	}

	err = q.
		Offset(page.Offset()).
		Limit(page.Size()).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, database.Classify(op, a.entity, err)
	}
	ds, err := mapper.ToDomainList(a.mapper, ps)
	if err != nil {
		return nil, &database.InfrastructureError{Op: op, Entity: a.entity, Err: err}
	}
	pagination.Items = ds
	return pagination, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search terms
// so "100%" matches the literal text, not every row. The escape character is
// declared per predicate; backslash is avoided because mysql gives it string
// semantics of its own.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (a *Paged[D, P, M]) applyFilter(q *bun.SelectQuery, filter *types.Filter) *bun.SelectQuery {
	if filter.HasSearch() && len(a.columns) > 0 {
		term := "%" + likeEscaper.Replace(strings.ToLower(filter.SearchTerm())) + "%"
		columns := a.columns
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, column := range columns {
				q = q.WhereOr("lower(?) LIKE ? ESCAPE '!'", bun.Ident(column), term)
			}
			return q
		})
	}
	if filter.HasStatus() {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.HasDateFrom() {
		q = q.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.HasDateTo() {
		q = q.Where("created_at <= ?", filter.DateTo)
	}
	return q
}

func (a *Paged[D, P, M]) parseKey(op, id string) (uuid.UUID, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &database.InfrastructureError{
			Op:     op,
			Entity: a.entity,
			Err:    fmt.Errorf("malformed identifier %q: %w", id, err),
		}
	}
	return key, nil
}

func (a *Paged[D, P, M]) domainOf(op string, p *P) (*D, error) {
	d, err := a.mapper.ToDomain(p)
	if err != nil {
		return nil, &database.InfrastructureError{Op: op, Entity: a.entity, Err: err}
	}
	return d, nil
}
