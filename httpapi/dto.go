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

package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/types"
)

// PageResponse is the wire envelope for paged listings.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func pageResponse[D, T any](p *types.Pagination[D], convert func(*D) *T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, d := range p.Items {
		if out := convert(d); out != nil {
			items = append(items, *out)
		}
	}
	return PageResponse[T]{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

// listParams extracts the pagination and filter query parameters. page and
// size fall back to defaults when absent or non-positive; malformed dates
// and unknown status names are client errors.
func listParams(r *http.Request) (*types.Filter, *types.PageRequest, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	filter := &types.Filter{
		Search: q.Get("search"),
	}
	if v := q.Get("status"); v != "" {
		status, err := types.ParseStatus(v)
		if err != nil {
			return nil, nil, err
		}
		filter.Status = status.String()
	}
	if v := q.Get("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, nil, err
		}
		filter.DateFrom = t
	}
	if v := q.Get("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, nil, err
		}
		filter.DateTo = t
	}
	return filter, types.NewPageRequest(page, size), nil
}

// UserRequest is the inbound user shape.
type UserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UserResponse is the outbound user shape.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func userFromRequest(req *UserRequest) *domain.User {
	if req == nil {
		return nil
	}
	return &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
}

func userToResponse(d *domain.User) *UserResponse {
	if d == nil {
		return nil
	}
	return &UserResponse{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// MovieRequest is the inbound movie shape.
type MovieRequest struct {
	Title       string `json:"title"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
}

// MovieResponse is the outbound movie shape.
type MovieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func movieFromRequest(req *MovieRequest) *domain.Movie {
	if req == nil {
		return nil
	}
	return &domain.Movie{
		Title:       req.Title,
		Director:    req.Director,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
	}
}

func movieToResponse(d *domain.Movie) *MovieResponse {
	if d == nil {
		return nil
	}
	return &MovieResponse{
		ID:          d.ID,
		Title:       d.Title,
		Director:    d.Director,
		Genre:       d.Genre,
		ReleaseYear: d.ReleaseYear,
		Status:      d.Status.String(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// CountryResponse is the outbound country shape.
type CountryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RegionResponse is the outbound region shape.
type RegionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CountryID string `json:"countryId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func regionToResponse(d *domain.Region) *RegionResponse {
	if d == nil {
		return nil
	}
	return &RegionResponse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		CountryID: d.CountryID,
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func countryToResponse(d *domain.Country) *CountryResponse {
	if d == nil {
		return nil
	}
	return &CountryResponse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
