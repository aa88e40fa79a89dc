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

import "fmt"

// Status is the lifecycle state shared by every record kind.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusPending   Status = "PENDING"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
)

// Statuses lists every valid status value.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusPending, StatusSuspended, StatusDeleted}
}

// IsValid reports whether s is one of the declared status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus converts a status name into a Status by exact, case-sensitive
// match. An unrecognized name is an error, never a default value.
func ParseStatus(name string) (Status, error) {
	s := Status(name)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown status %q, valid statuses: %v", name, Statuses())
	}
	return s, nil
}
