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
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelworks/rentstack"
	"github.com/reelworks/rentstack/domain"
)

// MovieService is the use-case surface the movie handler needs.
type MovieService = rentstack.Service[domain.Movie, *domain.Movie]

// MovieHandler serves /movies.
type MovieHandler struct {
	svc *MovieService
}

func NewMovieHandler(svc *MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

func (h *MovieHandler) create(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	saved, err := h.svc.Create(r.Context(), movieFromRequest(&req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, movieToResponse(saved))
}

func (h *MovieHandler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movieToResponse(d))
}

func (h *MovieHandler) update(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	saved, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), movieFromRequest(&req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movieToResponse(saved))
}

func (h *MovieHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, page, err := listParams(r)
	if err != nil {
		writeBadRequest(w, "invalid filter parameters")
		return
	}
	result, err := h.svc.List(r.Context(), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse(result, movieToResponse))
}
