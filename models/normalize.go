// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package models

import (
	"fmt"

	"github.com/reframe-rl/reframe/common/runningstat"
	"github.com/reframe-rl/reframe/tensor"
)

// Default clip range for standardized observations.
const (
	DefaultClipMin float32 = -5
	DefaultClipMax float32 = 5
)

// NormalizeClipObservation creates a running mean/std estimator sized
// to x's per-row feature count and returns the standardized, clipped
// batch along with the estimator. Feed subsequent batches to the
// estimator and normalize them with NormalizeClip.
func NormalizeClipObservation(x *tensor.Tensor, clipMin, clipMax float32) (*tensor.Tensor, *runningstat.RunningStat) {
	shape := x.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("normalize: batched input required, got %v", shape))
	}
	rms := runningstat.New(tensor.Shape(shape[1:]).NumElements())
	return NormalizeClip(x, rms, clipMin, clipMax), rms
}

// NormalizeClip standardizes x with the estimator's current mean and
// std, then clips the result to [clipMin, clipMax]. x is [nbatch, ...]
// with the trailing dimensions flattening to the estimator's feature
// count. The estimator is not updated.
func NormalizeClip(x *tensor.Tensor, rms *runningstat.RunningStat, clipMin, clipMax float32) *tensor.Tensor {
	shape := x.Shape()
	if len(shape) < 2 {
		panic(fmt.Sprintf("normalize: batched input required, got %v", shape))
	}
	features := tensor.Shape(shape[1:]).NumElements()
	if features != rms.Dim() {
		panic(fmt.Sprintf("normalize: input has %d features per row, estimator has %d", features, rms.Dim()))
	}

	backend := x.Backend()
	mean64, std64 := rms.Mean(), rms.Std()
	meanT := tensor.Zeros(tensor.Shape{features}, backend)
	stdT := tensor.Zeros(tensor.Shape{features}, backend)
	for i := range mean64 {
		meanT.Data()[i] = float32(mean64[i])
		stdT.Data()[i] = float32(std64[i])
	}

	flat := x.ToFloat32().Reshape(shape[0], features)
	normalized := flat.Sub(meanT).Div(stdT).Clamp(clipMin, clipMax)

	dims := make([]int, len(shape))
	copy(dims, shape)
	return normalized.Reshape(dims...)
}
