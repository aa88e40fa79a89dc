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

// Package mapper converts between domain records and persistence records.
// Every conversion is pure and null-propagating: a nil input yields a nil
// output, never a default-valued record and never a panic. Field rules:
// identifiers map string <-> native UUID, timestamps map RFC 3339 string
// <-> native instant, and status names map by exact case-sensitive match.
package mapper

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reelworks/rentstack/types"
)

// Mapper converts one entity between its domain shape D and its persistence
// shape P in both directions.
type Mapper[D, P any] interface {
	ToModel(d *D) (*P, error)
	ToDomain(p *P) (*D, error)
}

// ToModelList applies ToModel element-wise. A nil list maps to a nil list;
// an empty list stays empty.
func ToModelList[D, P any](m Mapper[D, P], ds []*D) ([]*P, error) {
	if ds == nil {
		return nil, nil
	}
	ps := make([]*P, 0, len(ds))
	for _, d := range ds {
		p, err := m.ToModel(d)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// ToDomainList applies ToDomain element-wise. A nil list maps to a nil list;
// an empty list stays empty.
func ToDomainList[D, P any](m Mapper[D, P], ps []*P) ([]*D, error) {
	if ps == nil {
		return nil, nil
	}
	ds := make([]*D, 0, len(ps))
	for _, p := range ps {
		d, err := m.ToDomain(p)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

// ParseID converts a string identifier to its native form. An empty string
// means "not yet persisted" and maps to the nil UUID.
func ParseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed identifier %q: %w", s, err)
	}
	return id, nil
}

// FormatID converts a native identifier back to its string form. The nil
// UUID maps to the empty string.
func FormatID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// ParseInstant converts an RFC 3339 string to a native instant. An empty
// string maps to the zero instant.
func ParseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatInstant converts a native instant back to its RFC 3339 string form.
// The zero instant maps to the empty string.
func FormatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// checkStatus enforces the exact-match enumeration rule. The empty status is
// allowed on records that have not been persisted yet.
func checkStatus(s types.Status) error {
	if s == "" {
		return nil
	}
	if !s.IsValid() {
		return fmt.Errorf("unknown status %q", string(s))
	}
	return nil
}
