// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package runningstat maintains online per-feature mean and standard
// deviation estimates over observation batches.
package runningstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Seeding the count slightly above zero keeps the very first update
// well-conditioned without visibly biasing the estimate.
const initialCount = 1e-4

// RunningStat tracks per-feature mean and variance across batches using
// the parallel variance combination formula, so folding batches in one
// at a time matches a one-shot computation over all rows.
type RunningStat struct {
	dim      int
	mean     []float64
	variance []float64
	count    float64
}

// New creates an estimator over feature vectors of the given width.
// The initial estimate is mean 0, variance 1.
func New(dim int) *RunningStat {
	if dim <= 0 {
		panic(fmt.Sprintf("runningstat: invalid dimension %d", dim))
	}
	variance := make([]float64, dim)
	for i := range variance {
		variance[i] = 1
	}
	return &RunningStat{
		dim:      dim,
		mean:     make([]float64, dim),
		variance: variance,
		count:    initialCount,
	}
}

// Update folds a batch of rows into the estimate. batch is row-major
// with length a multiple of the feature dimension.
func (r *RunningStat) Update(batch []float64) {
	if len(batch) == 0 || len(batch)%r.dim != 0 {
		panic(fmt.Sprintf("runningstat: batch length %d not a positive multiple of dimension %d", len(batch), r.dim))
	}
	n := len(batch) / r.dim

	batchMean := make([]float64, r.dim)
	for i := 0; i < n; i++ {
		floats.Add(batchMean, batch[i*r.dim:(i+1)*r.dim])
	}
	floats.Scale(1/float64(n), batchMean)

	// Population variance, matching the moment-combination formula.
	batchVar := make([]float64, r.dim)
	for i := 0; i < n; i++ {
		row := batch[i*r.dim : (i+1)*r.dim]
		for j, v := range row {
			d := v - batchMean[j]
			batchVar[j] += d * d
		}
	}
	floats.Scale(1/float64(n), batchVar)

	r.updateFromMoments(batchMean, batchVar, float64(n))
}

// updateFromMoments merges batch moments into the running estimate
// (Chan et al. parallel variance).
func (r *RunningStat) updateFromMoments(batchMean, batchVar []float64, batchCount float64) {
	delta := make([]float64, r.dim)
	copy(delta, batchMean)
	floats.Sub(delta, r.mean)

	total := r.count + batchCount

	floats.AddScaled(r.mean, batchCount/total, delta)

	for i := range r.variance {
		m2 := r.variance[i]*r.count + batchVar[i]*batchCount +
			delta[i]*delta[i]*r.count*batchCount/total
		r.variance[i] = m2 / total
	}

	r.count = total
}

// Dim returns the feature dimension.
func (r *RunningStat) Dim() int {
	return r.dim
}

// Count returns the effective number of rows folded in.
func (r *RunningStat) Count() float64 {
	return r.count
}

// Mean returns a copy of the per-feature mean.
func (r *RunningStat) Mean() []float64 {
	out := make([]float64, r.dim)
	copy(out, r.mean)
	return out
}

// Var returns a copy of the per-feature variance.
func (r *RunningStat) Var() []float64 {
	out := make([]float64, r.dim)
	copy(out, r.variance)
	return out
}

// Std returns the per-feature standard deviation.
func (r *RunningStat) Std() []float64 {
	out := make([]float64, r.dim)
	for i, v := range r.variance {
		out[i] = math.Sqrt(v)
	}
	return out
}
