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

package types

import (
	"strings"
	"time"
)

// Filter restricts a paged listing. Every component is optional and
// independently omittable: a blank search, a blank status, or a zero time
// means "no constraint" for that component. A nil Filter means no
// constraint at all.
type Filter struct {
	Search   string
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}

// HasSearch reports whether a non-blank search term is present.
func (f *Filter) HasSearch() bool {
	return f != nil && strings.TrimSpace(f.Search) != ""
}

// SearchTerm returns the trimmed search term.
func (f *Filter) SearchTerm() string {
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Search)
}

// HasStatus reports whether a status constraint is present.
func (f *Filter) HasStatus() bool {
	return f != nil && strings.TrimSpace(f.Status) != ""
}

// HasDateFrom reports whether the lower creation-time bound is present.
func (f *Filter) HasDateFrom() bool {
	return f != nil && !f.DateFrom.IsZero()
}

// HasDateTo reports whether the upper creation-time bound is present.
func (f *Filter) HasDateTo() bool {
	return f != nil && !f.DateTo.IsZero()
}
