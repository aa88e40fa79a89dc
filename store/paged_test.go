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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/types"
)

func TestSavePopulatesIdentity(t *testing.T) {
	users := NewUserStore(testDB(t))

	saved, err := users.Save(context.Background(), &domain.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, types.StatusActive, saved.Status)
	require.NotEmpty(t, saved.CreatedAt)
	require.NotEmpty(t, saved.UpdatedAt)
}

func TestSaveNilRecord(t *testing.T) {
	users := NewUserStore(testDB(t))
	saved, err := users.Save(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, saved)
}

func TestSaveDuplicateKeyKeepsItsType(t *testing.T) {
	users := NewUserStore(testDB(t))
	seedUser(t, users, "Ada", "Lovelace", "ada@example.com")

	_, err := users.Save(context.Background(), &domain.User{
		FirstName: "Augusta",
		LastName:  "King",
		Email:     "ada@example.com",
	})

	var cv *database.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	var infra *database.InfrastructureError
	require.False(t, errors.As(err, &infra))
}

func TestSaveWithIdentifierUpdates(t *testing.T) {
	users := NewUserStore(testDB(t))
	saved := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")

	saved.LastName = "King"
	updated, err := users.Save(context.Background(), saved)
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, "King", updated.LastName)

	found, err := users.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "King", found.LastName)
	require.Equal(t, saved.CreatedAt, found.CreatedAt)
}

func TestFindByIDAbsentIsNotAnError(t *testing.T) {
	users := NewUserStore(testDB(t))

	found, err := users.FindByID(context.Background(), missingID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestMalformedIdentifierIsInfrastructureFailure(t *testing.T) {
	users := NewUserStore(testDB(t))

	var infra *database.InfrastructureError

	_, err := users.FindByID(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &infra)

	err = users.DeleteByID(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &infra)

	_, err = users.ExistsByID(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &infra)
}

func TestExistsAndDelete(t *testing.T) {
	users := NewUserStore(testDB(t))
	saved := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")

	exists, err := users.ExistsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, users.DeleteByID(context.Background(), saved.ID))

	exists, err = users.ExistsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.False(t, exists)

	// Deleting an absent row is not an error at the adapter level.
	require.NoError(t, users.DeleteByID(context.Background(), saved.ID))
}

func TestFindAllMostRecentFirst(t *testing.T) {
	users := NewUserStore(testDB(t))
	first := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	second := seedUser(t, users, "Grace", "Hopper", "grace@example.com")

	all, err := users.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)
}

func TestBlankSearchEqualsFindAllPaged(t *testing.T) {
	users := NewUserStore(testDB(t))
	seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	seedUser(t, users, "Grace", "Hopper", "grace@example.com")
	seedUser(t, users, "Edsger", "Dijkstra", "edsger@example.com")

	page := types.NewPageRequest(1, 2)
	baseline, err := users.FindAllPaged(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, baseline.Items, 2)
	require.Equal(t, 3, baseline.Total)
	require.Equal(t, 2, baseline.TotalPages)

	for _, term := range []string{"", "   "} {
		got, err := users.FindBySearchTerm(context.Background(), term, page)
		require.NoError(t, err)
		require.Equal(t, baseline, got)
	}
}

func TestSearchTermIsCaseInsensitive(t *testing.T) {
	users := NewUserStore(testDB(t))
	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	seedUser(t, users, "Grace", "Hopper", "grace@example.com")

	got, err := users.FindBySearchTerm(context.Background(), "LOVELACE", types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, ada.ID, got.Items[0].ID)

	got, err = users.FindBySearchTerm(context.Background(), "example.com", types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
}

func TestSearchTermMetacharactersMatchLiterally(t *testing.T) {
	users := NewUserStore(testDB(t))
	literal := seedUser(t, users, "100% Cotton", "Shirt", "cotton@example.com")
	seedUser(t, users, "100x Faster", "Engine", "engine@example.com")

	got, err := users.FindBySearchTerm(context.Background(), "100%", types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, literal.ID, got.Items[0].ID)

	// A bare wildcard matches nothing: no seeded column contains a literal
	// underscore.
	got, err = users.FindBySearchTerm(context.Background(), "_", types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Empty(t, got.Items)
	require.Equal(t, 0, got.Total)
}

func TestSearchBeyondLastPageIsEmpty(t *testing.T) {
	users := NewUserStore(testDB(t))
	seedUser(t, users, "Ada", "Lovelace", "ada@example.com")

	got, err := users.FindAllPaged(context.Background(), types.NewPageRequest(5, 10))
	require.NoError(t, err)
	require.Empty(t, got.Items)
	require.Equal(t, 1, got.Total)
	require.Equal(t, 5, got.Page)
}

func TestFindByFiltersComposedPredicates(t *testing.T) {
	users := NewUserStore(testDB(t))
	ctx := context.Background()

	match, err := users.Save(ctx, &domain.User{
		FirstName: "Testa",
		LastName:  "Match",
		Email:     "testa@example.com",
		CreatedAt: "2024-06-15T10:00:00Z",
	})
	require.NoError(t, err)

	// Same searchable text, outside the date range.
	_, err = users.Save(ctx, &domain.User{
		FirstName: "Testb",
		LastName:  "TooEarly",
		Email:     "testb@example.com",
		CreatedAt: "2023-06-15T10:00:00Z",
	})
	require.NoError(t, err)

	// Inside the range, different text.
	_, err = users.Save(ctx, &domain.User{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "other@example.com",
		CreatedAt: "2024-07-01T10:00:00Z",
	})
	require.NoError(t, err)

	got, err := users.FindByFilters(ctx, &types.Filter{
		Search:   "test",
		Status:   "ACTIVE",
		DateFrom: mustInstant(t, "2024-01-01T00:00:00Z"),
		DateTo:   mustInstant(t, "2024-12-31T23:59:59Z"),
	}, types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, match.ID, got.Items[0].ID)
	require.Equal(t, 1, got.Total)
}

func TestFindByFiltersComponentsAreIndependentlyOmittable(t *testing.T) {
	users := NewUserStore(testDB(t))
	ctx := context.Background()
	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	grace := seedUser(t, users, "Grace", "Hopper", "grace@example.com")

	grace.Status = types.StatusSuspended
	_, err := users.Save(ctx, grace)
	require.NoError(t, err)

	page := types.NewPageRequest(1, 10)

	got, err := users.FindByFilters(ctx, nil, page)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	got, err = users.FindByFilters(ctx, &types.Filter{Status: "SUSPENDED"}, page)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, grace.ID, got.Items[0].ID)

	got, err = users.FindByFilters(ctx, &types.Filter{Search: "ada"}, page)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, ada.ID, got.Items[0].ID)
}

func TestAdapterWithoutSearchColumnsIgnoresTerm(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)
	rentals := NewRentalStore(db)
	ctx := context.Background()

	ada := seedUser(t, users, "Ada", "Lovelace", "ada@example.com")
	_, err := rentals.Save(ctx, &domain.Rental{
		UserID:  ada.ID,
		MovieID: missingID,
	})
	require.NoError(t, err)

	got, err := rentals.FindBySearchTerm(ctx, "anything", types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
}

func TestRegionFindByCountry(t *testing.T) {
	db := testDB(t)
	countries := NewCountryStore(db)
	regions := NewRegionStore(db)
	ctx := context.Background()

	fr, err := countries.Save(ctx, &domain.Country{Name: "France", Code: "FR"})
	require.NoError(t, err)
	de, err := countries.Save(ctx, &domain.Country{Name: "Germany", Code: "DE"})
	require.NoError(t, err)

	_, err = regions.Save(ctx, &domain.Region{Name: "Bretagne", Code: "BRE", CountryID: fr.ID})
	require.NoError(t, err)
	_, err = regions.Save(ctx, &domain.Region{Name: "Bayern", Code: "BY", CountryID: de.ID})
	require.NoError(t, err)

	got, err := regions.FindByCountry(ctx, fr.ID, types.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Bretagne", got.Items[0].Name)

	_, err = regions.FindByCountry(ctx, "not-a-uuid", types.NewPageRequest(1, 10))
	var infra *database.InfrastructureError
	require.ErrorAs(t, err, &infra)
}
