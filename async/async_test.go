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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSingleIsLazy(t *testing.T) {
	var calls atomic.Int32
	s := NewSingle(func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 42, nil
	})

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load(), "no work before the handle is driven")

	v, err := s.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, int32(1), calls.Load())
}

func TestSingleDeliversExactlyOneResult(t *testing.T) {
	s := NewSingle(func(ctx context.Context) (string, error) {
		return "value", nil
	})

	out := s.Subscribe(context.Background())
	r, ok := <-out
	require.True(t, ok)
	require.NoError(t, r.Err)
	require.Equal(t, "value", r.Value)

	_, ok = <-out
	require.False(t, ok, "channel closes after the terminal event")
}

func TestSingleSecondDriveFails(t *testing.T) {
	s := NewSingle(func(ctx context.Context) (int, error) { return 1, nil })

	_, err := s.Await(context.Background())
	require.NoError(t, err)

	_, err = s.Await(context.Background())
	require.ErrorIs(t, err, ErrAlreadyDriven)
}

func TestSingleError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSingle(func(ctx context.Context) (int, error) { return 0, boom })

	_, err := s.Await(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSingleCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	s := NewSingle(func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 42, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	out := s.Subscribe(ctx)
	<-started
	cancel()

	r := <-out
	require.ErrorIs(t, r.Err, context.Canceled)
	close(release)
}

func TestCompletable(t *testing.T) {
	c := NewCompletable(func(ctx context.Context) error { return nil })
	_, err := c.Await(context.Background())
	require.NoError(t, err)
}

func TestStreamEmitsInOrderThenCompletes(t *testing.T) {
	s := FromSlice(func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})

	values, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestStreamEmptyCompletes(t *testing.T) {
	s := FromSlice(func(ctx context.Context) ([]int, error) { return nil, nil })
	values, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestStreamTerminalError(t *testing.T) {
	boom := errors.New("boom")
	s := FromSlice(func(ctx context.Context) ([]int, error) { return nil, boom })

	out, errc := s.Subscribe(context.Background())
	for range out {
		t.Fatal("no values expected")
	}
	require.ErrorIs(t, <-errc, boom)
}

func TestStreamIsLazy(t *testing.T) {
	var calls atomic.Int32
	s := FromSlice(func(ctx context.Context) ([]int, error) {
		calls.Add(1)
		return []int{1}, nil
	})

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())

	_, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestStreamCancellationStopsDeliveryWithoutError(t *testing.T) {
	s := NewStream(func(ctx context.Context, emit func(int) bool) error {
		for i := 0; ; i++ {
			if !emit(i) {
				return ctx.Err()
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	out, errc := s.Subscribe(ctx)

	<-out
	<-out
	cancel()

	// Delivery stops; the error channel carries no application-level error.
	for range out {
	}
	require.NoError(t, <-errc)
}

func TestStreamSecondDriveFails(t *testing.T) {
	s := FromSlice(func(ctx context.Context) ([]int, error) { return nil, nil })
	_, err := s.Collect(context.Background())
	require.NoError(t, err)

	_, err = s.Collect(context.Background())
	require.ErrorIs(t, err, ErrAlreadyDriven)
}
