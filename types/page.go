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

// DefaultPageSize is applied when a page request carries no usable size.
const DefaultPageSize = 20

// PageRequest describes a 1-based page window. A nil request, a non-positive
// page, or a non-positive size all fall back to the defaults, so callers can
// pass through raw query parameters without pre-validation.
type PageRequest struct {
	page int
	size int
}

// NewPageRequest constructs a PageRequest from raw page/size values.
func NewPageRequest(page, size int) *PageRequest {
	return &PageRequest{page: page, size: size}
}

// Page returns the normalized 1-based page number.
func (p *PageRequest) Page() int {
	if p == nil || p.page < 1 {
		return 1
	}
	return p.page
}

// Size returns the normalized page size.
func (p *PageRequest) Size() int {
	if p == nil || p.size < 1 {
		return DefaultPageSize
	}
	return p.size
}

// Offset returns the zero-based row offset for the normalized page window.
func (p *PageRequest) Offset() int {
	return (p.Page() - 1) * p.Size()
}

// Pagination holds one page of items along with pagination metadata.
type Pagination[T any] struct {
	Items      []*T `json:"items"`
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
}

// NewPagination constructs an empty pagination envelope for the given window.
func NewPagination[T any](page *PageRequest) *Pagination[T] {
	return &Pagination[T]{
		Items: make([]*T, 0),
		Page:  page.Page(),
		Size:  page.Size(),
	}
}

// SetTotal records the total row count and derives the page count.
func (p *Pagination[T]) SetTotal(total int) {
	p.Total = total
	if p.Size > 0 {
		p.TotalPages = (total + p.Size - 1) / p.Size
	}
}
