// Copyright 2026 simd-sub000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch applies vector operations across slices of vectors,
// fanning the work out over a bounded worker group.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/amallia/simd-sub000/simd"
)

// Apply runs op on every vector of in and returns the results in
// order. Workers bounds the concurrency; zero or negative means
// GOMAXPROCS. The first error from op cancels the remaining work.
func Apply[T, R simd.Lanes](ctx context.Context, workers int, in []simd.Vec[T], op func(simd.Vec[T]) (simd.Vec[R], error)) ([]simd.Vec[R], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]simd.Vec[R], len(in))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := op(v)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply2 runs op on corresponding vector pairs of a and b. Both
// slices must have the same length.
func Apply2[T, R simd.Lanes](ctx context.Context, workers int, a, b []simd.Vec[T], op func(x, y simd.Vec[T]) (simd.Vec[R], error)) ([]simd.Vec[R], error) {
	if len(a) != len(b) {
		return nil, simd.ErrLengthMismatch
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]simd.Vec[R], len(a))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range a {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := op(a[i], b[i])
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Reduce folds every vector of in with fold and combines the per-vector
// results with combine, in slice order.
func Reduce[T simd.Lanes, R any](ctx context.Context, workers int, in []simd.Vec[T], fold func(simd.Vec[T]) R, combine func(R, R) R, init R) (R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	partial := make([]R, len(in))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial[i] = fold(v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return init, err
	}
	acc := init
	for _, p := range partial {
		acc = combine(acc, p)
	}
	return acc, nil
}
