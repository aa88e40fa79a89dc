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

	"github.com/uptrace/bun"

	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/mapper"
	"github.com/reelworks/rentstack/store/model"
	"github.com/reelworks/rentstack/types"
)

var _ Repository[domain.User] = (*UserStore)(nil)

type (
	UserStore    = Paged[domain.User, model.User, *model.User]
	MovieStore   = Paged[domain.Movie, model.Movie, *model.Movie]
	RentalStore  = Paged[domain.Rental, model.Rental, *model.Rental]
	CountryStore = Paged[domain.Country, model.Country, *model.Country]
)

// NewUserStore builds the user adapter; search covers name and email.
func NewUserStore(db *bun.DB) *UserStore {
	return NewPaged[domain.User, model.User, *model.User](
		db, mapper.UserMapper{}, "User", "first_name", "last_name", "email")
}

// NewMovieStore builds the movie adapter; search covers title, director,
// and genre.
func NewMovieStore(db *bun.DB) *MovieStore {
	return NewPaged[domain.Movie, model.Movie, *model.Movie](
		db, mapper.MovieMapper{}, "Movie", "title", "director", "genre")
}

// NewRentalStore builds the rental adapter. Rentals carry no searchable
// text columns; listings are narrowed by status and date range only.
func NewRentalStore(db *bun.DB) *RentalStore {
	return NewPaged[domain.Rental, model.Rental, *model.Rental](
		db, mapper.RentalMapper{}, "Rental")
}

// NewCountryStore builds the country reference-table adapter.
func NewCountryStore(db *bun.DB) *CountryStore {
	return NewPaged[domain.Country, model.Country, *model.Country](
		db, mapper.CountryMapper{}, "Country", "name", "code")
}

// RegionStore extends the generic adapter with the country relationship
// lookup.
type RegionStore struct {
	*Paged[domain.Region, model.Region, *model.Region]
}

// NewRegionStore builds the region reference-table adapter.
func NewRegionStore(db *bun.DB) *RegionStore {
	return &RegionStore{
		Paged: NewPaged[domain.Region, model.Region, *model.Region](
			db, mapper.RegionMapper{}, "Region", "name", "code"),
	}
}

// FindByCountry pages through the regions belonging to one country.
func (s *RegionStore) FindByCountry(ctx context.Context, countryID string, page *types.PageRequest) (*types.Pagination[domain.Region], error) {
	key, err := s.parseKey("search", countryID)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, "search", nil, page, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("country_id = ?", key)
	})
}
