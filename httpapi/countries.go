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

	"github.com/go-chi/chi/v5"

	"github.com/reelworks/rentstack"
	"github.com/reelworks/rentstack/domain"
	"github.com/reelworks/rentstack/store"
)

// CountryService is the use-case surface the country handler needs.
type CountryService = rentstack.Service[domain.Country, *domain.Country]

// CountryHandler serves the countries reference table, read-only, plus the
// regions-by-country relationship lookup.
type CountryHandler struct {
	svc     *CountryService
	regions *store.RegionStore
}

func NewCountryHandler(svc *CountryService, regions *store.RegionStore) *CountryHandler {
	return &CountryHandler{svc: svc, regions: regions}
}

func (h *CountryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/regions", h.listRegions)
	return r
}

func (h *CountryHandler) list(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		if out := countryToResponse(c); out != nil {
			items = append(items, *out)
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CountryHandler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(d))
}

func (h *CountryHandler) listRegions(w http.ResponseWriter, r *http.Request) {
	_, page, err := listParams(r)
	if err != nil {
		writeBadRequest(w, "invalid filter parameters")
		return
	}
	result, err := h.regions.FindByCountry(r.Context(), chi.URLParam(r, "id"), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse(result, regionToResponse))
}
