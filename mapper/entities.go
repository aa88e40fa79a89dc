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

package mapper

import (
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/store/model"
)

// UserMapper converts between domain.User and model.User.
type UserMapper struct{}

func (UserMapper) ToModel(d *domain.User) (*model.User, error) {
	if d == nil {
		return nil, nil
	}
	id, err := ParseID(d.ID)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(d.Status); err != nil {
		return nil, err
	}
	createdAt, err := ParseInstant(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseInstant(d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Status:    d.Status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (UserMapper) ToDomain(p *model.User) (*domain.User, error) {
	if p == nil {
		return nil, nil
	}
	if err := checkStatus(p.Status); err != nil {
		return nil, err
	}
	return &domain.User{
		ID:        FormatID(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Status:    p.Status,
		CreatedAt: FormatInstant(p.CreatedAt),
		UpdatedAt: FormatInstant(p.UpdatedAt),
	}, nil
}

// MovieMapper converts between domain.Movie and model.Movie.
type MovieMapper struct{}

func (MovieMapper) ToModel(d *domain.Movie) (*model.Movie, error) {
	if d == nil {
		return nil, nil
	}
	id, err := ParseID(d.ID)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(d.Status); err != nil {
		return nil, err
	}
	createdAt, err := ParseInstant(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseInstant(d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Movie{
		ID:          id,
		Title:       d.Title,
		Director:    d.Director,
		Genre:       d.Genre,
		ReleaseYear: d.ReleaseYear,
		Status:      d.Status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (MovieMapper) ToDomain(p *model.Movie) (*domain.Movie, error) {
	if p == nil {
		return nil, nil
	}
	if err := checkStatus(p.Status); err != nil {
		return nil, err
	}
	return &domain.Movie{
		ID:          FormatID(p.ID),
		Title:       p.Title,
		Director:    p.Director,
		Genre:       p.Genre,
		ReleaseYear: p.ReleaseYear,
		Status:      p.Status,
		CreatedAt:   FormatInstant(p.CreatedAt),
		UpdatedAt:   FormatInstant(p.UpdatedAt),
	}, nil
}

// RentalMapper converts between domain.Rental and model.Rental.
type RentalMapper struct{}

func (RentalMapper) ToModel(d *domain.Rental) (*model.Rental, error) {
	if d == nil {
		return nil, nil
	}
	id, err := ParseID(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := ParseID(d.UserID)
	if err != nil {
		return nil, err
	}
	movieID, err := ParseID(d.MovieID)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(d.Status); err != nil {
		return nil, err
	}
	rentedAt, err := ParseInstant(d.RentedAt)
	if err != nil {
		return nil, err
	}
	dueAt, err := ParseInstant(d.DueAt)
	if err != nil {
		return nil, err
	}
	createdAt, err := ParseInstant(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseInstant(d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Rental{
		ID:        id,
		UserID:    userID,
		MovieID:   movieID,
		RentedAt:  rentedAt,
		DueAt:     dueAt,
		Status:    d.Status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (RentalMapper) ToDomain(p *model.Rental) (*domain.Rental, error) {
	if p == nil {
		return nil, nil
	}
	if err := checkStatus(p.Status); err != nil {
		return nil, err
	}
	return &domain.Rental{
		ID:        FormatID(p.ID),
		UserID:    FormatID(p.UserID),
		MovieID:   FormatID(p.MovieID),
		RentedAt:  FormatInstant(p.RentedAt),
		DueAt:     FormatInstant(p.DueAt),
		Status:    p.Status,
		CreatedAt: FormatInstant(p.CreatedAt),
		UpdatedAt: FormatInstant(p.UpdatedAt),
	}, nil
}

// CountryMapper converts between domain.Country and model.Country.
type CountryMapper struct{}

func (CountryMapper) ToModel(d *domain.Country) (*model.Country, error) {
	if d == nil {
		return nil, nil
	}
	id, err := ParseID(d.ID)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(d.Status); err != nil {
		return nil, err
	}
	createdAt, err := ParseInstant(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseInstant(d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Country{
		ID:        id,
		Name:      d.Name,
		Code:      d.Code,
		Status:    d.Status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (CountryMapper) ToDomain(p *model.Country) (*domain.Country, error) {
	if p == nil {
		return nil, nil
	}
	if err := checkStatus(p.Status); err != nil {
		return nil, err
	}
	return &domain.Country{
		ID:        FormatID(p.ID),
		Name:      p.Name,
		Code:      p.Code,
		Status:    p.Status,
		CreatedAt: FormatInstant(p.CreatedAt),
		UpdatedAt: FormatInstant(p.UpdatedAt),
	}, nil
}

// RegionMapper converts between domain.Region and model.Region.
type RegionMapper struct{}

func (RegionMapper) ToModel(d *domain.Region) (*model.Region, error) {
	if d == nil {
		return nil, nil
	}
	id, err := ParseID(d.ID)
	if err != nil {
		return nil, err
	}
	countryID, err := ParseID(d.CountryID)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(d.Status); err != nil {
		return nil, err
	}
	createdAt, err := ParseInstant(d.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseInstant(d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Region{
		ID:        id,
		Name:      d.Name,
		Code:      d.Code,
		CountryID: countryID,
		Status:    d.Status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (RegionMapper) ToDomain(p *model.Region) (*domain.Region, error) {
	if p == nil {
		return nil, nil
	}
	if err := checkStatus(p.Status); err != nil {
		return nil, err
	}
	return &domain.Region{
		ID:        FormatID(p.ID),
		Name:      p.Name,
		Code:      p.Code,
		CountryID: FormatID(p.CountryID),
		Status:    p.Status,
		CreatedAt: FormatInstant(p.CreatedAt),
		UpdatedAt: FormatInstant(p.UpdatedAt),
	}, nil
}
