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

// Package httpapi is the inbound HTTP surface. Handlers parse parameters,
// delegate to the services, and translate the error taxonomy into status
// codes; no business rule lives here.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelworks/rentstack/database"
	"github.com/reelworks/rentstack/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the error taxonomy onto status codes: absence is 404, a
// constraint violation 409, everything else 500. Causes are logged, never
// leaked to the client.
func writeError(w http.ResponseWriter, err error) {
	var cv *database.ConstraintViolation
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &cv):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "conflict"})
	default:
		utils.GetLogger("httpapi").Error(err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
