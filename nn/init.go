// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/reframe-rl/reframe/tensor"
)

// DefaultInitScale is the orthogonal initialization scale layers use
// when the caller has no preference.
const DefaultInitScale = 1.0

// Orthogonal initializes a weight tensor with a scaled orthogonal
// matrix: the QR decomposition of a standard-normal matrix, multiplied
// by scale. For tensors with more than two dimensions the leading
// dimensions are flattened, so a [kh, kw, in, out] convolution kernel
// is orthogonal over [kh*kw*in, out].
//
// Orthogonal initialization preserves activation norms through deep
// stacks, which is why policy-gradient networks use it with scale
// sqrt(2) for ReLU layers.
func Orthogonal(scale float32, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	if len(shape) < 2 {
		panic(fmt.Sprintf("orthogonal: at least 2D shape required, got %v", shape))
	}

	cols := shape[len(shape)-1]
	rows := 1
	for _, d := range shape[:len(shape)-1] {
		rows *= d
	}

	q := orthonormal(rows, cols)

	t := tensor.Zeros(shape, backend)
	data := t.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float32(q.At(i, j)) * scale
		}
	}
	return t
}

// orthonormal returns a rows x cols matrix with orthonormal columns
// (orthonormal rows when rows < cols).
func orthonormal(rows, cols int) mat.Matrix {
	m, n := rows, cols
	transposed := false
	if m < n {
		m, n = n, m
		transposed = true
	}

	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, distuv.UnitNormal.Rand())
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	thin := q.Slice(0, m, 0, n)
	if transposed {
		return thin.T()
	}
	return thin
}

// Xavier initializes a tensor with values drawn uniformly from
// [-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))].
func Xavier(fanIn, fanOut int, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	uniform := distuv.Uniform{Min: -bound, Max: bound}

	t := tensor.Zeros(shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = float32(uniform.Rand())
	}
	return t
}

// Zeros creates a zero tensor, the usual bias initialization.
func Zeros(shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return tensor.Zeros(shape, backend)
}

// Ones creates a tensor filled with ones, the usual gain initialization.
func Ones(shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return tensor.Ones(shape, backend)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn(shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	return tensor.Randn(shape, backend)
}
