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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageRequestNormalization(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults for zero values", 0, 0, 1, 20, 0},
		{"defaults for negative values", -3, -1, 1, 20, 0},
		{"first page", 1, 10, 1, 10, 0},
		{"later page", 4, 10, 4, 10, 30},
		{"negative page keeps valid size", -1, 5, 1, 5, 0},
		{"valid page keeps default size", 3, 0, 3, 20, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageRequest(tt.page, tt.size)
			require.Equal(t, tt.wantPage, p.Page())
			require.Equal(t, tt.wantSize, p.Size())
			require.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestPageRequestNilReceiver(t *testing.T) {
	var p *PageRequest
	require.Equal(t, 1, p.Page())
	require.Equal(t, DefaultPageSize, p.Size())
	require.Equal(t, 0, p.Offset())
}

func TestPaginationTotalPages(t *testing.T) {
	p := NewPagination[int](NewPageRequest(1, 10))
	p.SetTotal(0)
	require.Equal(t, 0, p.TotalPages)

	p.SetTotal(10)
	require.Equal(t, 1, p.TotalPages)

	p.SetTotal(11)
	require.Equal(t, 2, p.TotalPages)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("ACTIVE")
	require.NoError(t, err)
	require.Equal(t, StatusActive, s)

	for _, name := range []string{"active", "Active", "UNKNOWN", ""} {
		_, err := ParseStatus(name)
		require.Error(t, err, "name %q must not parse", name)
	}
}

func TestFilterOmittableComponents(t *testing.T) {
	var f *Filter
	require.False(t, f.HasSearch())
	require.False(t, f.HasStatus())
	require.False(t, f.HasDateFrom())
	require.False(t, f.HasDateTo())

	f = &Filter{Search: "   "}
	require.False(t, f.HasSearch())

	f = &Filter{Search: "  term  "}
	require.True(t, f.HasSearch())
	require.Equal(t, "term", f.SearchTerm())
}
