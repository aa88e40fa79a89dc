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

// Package async provides deferred result handles. A handle performs no work
// until it is driven, delivers exactly one terminal event, and may be driven
// at most once. Cancelling the driving context stops delivery; the consumer
// sees the bare context error, never a classified store failure.
package async

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrAlreadyDriven reports a second attempt to drive a single-use handle.
var ErrAlreadyDriven = errors.New("deferred handle already driven")

// Result pairs a value with its terminal error. Exactly one of the two is
// meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// Single is a deferred computation producing one value or one error.
type Single[T any] struct {
	work   func(ctx context.Context) (T, error)
	driven atomic.Bool
}

// NewSingle wraps a computation in a lazy single-result handle.
func NewSingle[T any](work func(ctx context.Context) (T, error)) *Single[T] {
	return &Single[T]{work: work}
}

// Subscribe drives the computation on its own goroutine. The returned
// channel delivers exactly one Result and is then closed. Cancelling ctx
// before completion delivers a Result carrying the bare context error;
// store-side work already in flight is not guaranteed to stop, its outcome
// is simply dropped.
func (s *Single[T]) Subscribe(ctx context.Context) <-chan Result[T] {
	out := make(chan Result[T], 1)
	if !s.driven.CompareAndSwap(false, true) {
		out <- Result[T]{Err: ErrAlreadyDriven}
		close(out)
		return out
	}
	go func() {
		defer close(out)
		done := make(chan Result[T], 1)
		go func() {
			v, err := s.work(ctx)
			done <- Result[T]{Value: v, Err: err}
		}()
		select {
		case r := <-done:
			out <- r
		case <-ctx.Done():
			out <- Result[T]{Err: ctx.Err()}
		}
	}()
	return out
}

// Await drives the computation and blocks until its terminal event.
func (s *Single[T]) Await(ctx context.Context) (T, error) {
	r := <-s.Subscribe(ctx)
	return r.Value, r.Err
}

// Completable is a deferred computation with no result value.
type Completable = Single[struct{}]

// NewCompletable wraps a value-less computation in a lazy handle.
func NewCompletable(work func(ctx context.Context) error) *Completable {
	return NewSingle(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, work(ctx)
	})
}
