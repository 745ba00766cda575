// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numerical substrate for Reframe's network
// builders: shapes, raw buffers, the Tensor handle, and the Backend
// interface that compute implementations satisfy.
//
// # Overview
//
// Tensors are plain row-major buffers with a dtype (uint8 for raw pixel
// observations, float32 for everything else). All operations happen
// synchronously at model-definition time; there is no lazy graph and no
// device transfer machinery.
//
// # Basic Usage
//
//	import (
//	    "github.com/reframe-rl/reframe/backend/cpu"
//	    "github.com/reframe-rl/reframe/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{4, 84, 84, 4}, backend)
//	y := x.ToFloat32().DivScalar(255)
//
// Binary operations broadcast NumPy-style: trailing dimensions are
// aligned and size-1 dimensions stretch.
//
// # Error model
//
// Shape and dtype misuse panics with a formatted message. The only
// recoverable errors are construction-time ones (invalid shapes,
// mismatched slice lengths), returned as error values.
package tensor
