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

package async

import (
	"context"
	"errors"
	"sync/atomic"
)

// Stream is a deferred computation producing zero or more values followed by
// a single terminal event: completion or an error, never both.
type Stream[T any] struct {
	work   func(ctx context.Context, emit func(T) bool) error
	driven atomic.Bool
}

// NewStream wraps a computation in a lazy multi-result handle. The
// computation calls emit for each value and must stop when emit returns
// false.
func NewStream[T any](work func(ctx context.Context, emit func(T) bool) error) *Stream[T] {
	return &Stream[T]{work: work}
}

// FromSlice adapts a slice-producing computation into a stream that emits
// each element in order.
func FromSlice[T any](fetch func(ctx context.Context) ([]T, error)) *Stream[T] {
	return NewStream(func(ctx context.Context, emit func(T) bool) error {
		values, err := fetch(ctx)
		if err != nil {
			return err
		}
		for _, v := range values {
			if !emit(v) {
				return ctx.Err()
			}
		}
		return nil
	})
}

// Subscribe drives the stream on its own goroutine. Values arrive on the
// first channel in store order; the second channel carries the terminal
// error, if any. Both channels are closed once the stream terminates.
// Cancellation stops emission without producing a terminal error: the
// cancelled consumer checks its own context.
func (s *Stream[T]) Subscribe(ctx context.Context) (<-chan T, <-chan error) {
	out := make(chan T)
	errc := make(chan error, 1)
	if !s.driven.CompareAndSwap(false, true) {
		errc <- ErrAlreadyDriven
		close(out)
		close(errc)
		return out, errc
	}
	go func() {
		defer close(out)
		defer close(errc)
		emit := func(v T) bool {
			select {
			case out <- v:
				return true
			case <-ctx.Done():
				return false
			}
		}
		err := s.work(ctx, emit)
		if err == nil {
			return
		}
		if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return
		}
		errc <- err
	}()
	return out, errc
}

// Collect drives the stream and gathers every value until the terminal
// event. A cancelled context surfaces as the bare context error.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	out, errc := s.Subscribe(ctx)
	values := make([]T, 0)
	for v := range out {
		values = append(values, v)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
