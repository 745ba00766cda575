// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Method forms of the Backend operations. Each dispatches to the
// tensor's backend and wraps the result.

// Add returns t + other (broadcasting).
func (t *Tensor) Add(other *Tensor) *Tensor {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub returns t - other (broadcasting).
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul returns t * other element-wise (broadcasting).
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div returns t / other element-wise (broadcasting).
func (t *Tensor) Div(other *Tensor) *Tensor {
	return New(t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar returns t + s.
func (t *Tensor) AddScalar(s float32) *Tensor {
	return New(t.backend.AddScalar(t.raw, s), t.backend)
}

// MulScalar returns t * s.
func (t *Tensor) MulScalar(s float32) *Tensor {
	return New(t.backend.MulScalar(t.raw, s), t.backend)
}

// DivScalar returns t / s.
func (t *Tensor) DivScalar(s float32) *Tensor {
	return New(t.backend.DivScalar(t.raw, s), t.backend)
}

// MatMul returns the matrix product of two 2D tensors.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return New(t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Reshape returns a view of the tensor under a new shape. One dimension
// may be -1, in which case it is inferred from the element count.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	shape := make(Shape, len(dims))
	copy(shape, dims)

	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if infer >= 0 {
				panic(fmt.Sprintf("reshape: more than one -1 in %v", dims))
			}
			infer = i
		case d <= 0:
			panic(fmt.Sprintf("reshape: invalid dimension %d in %v", d, dims))
		default:
			known *= d
		}
	}
	if infer >= 0 {
		total := t.NumElements()
		if known == 0 || total%known != 0 {
			panic(fmt.Sprintf("reshape: cannot infer dimension for %v from %d elements", dims, total))
		}
		shape[infer] = total / known
	}

	return New(t.backend.Reshape(t.raw, shape), t.backend)
}

// Chunk splits the tensor into n equal parts along dim.
func (t *Tensor) Chunk(n, dim int) []*Tensor {
	raws := t.backend.Chunk(t.raw, n, dim)
	out := make([]*Tensor, len(raws))
	for i, r := range raws {
		out[i] = New(r, t.backend)
	}
	return out
}

// Cat concatenates tensors along dim. All tensors must share a backend.
func Cat(tensors []*Tensor, dim int) *Tensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}
	b := tensors[0].backend
	return New(b.Cat(raws, dim), b)
}

// MeanDim returns the mean along dim. With keepDim the reduced
// dimension is retained with size 1.
func (t *Tensor) MeanDim(dim int, keepDim bool) *Tensor {
	return New(t.backend.MeanDim(t.raw, dim, keepDim), t.backend)
}

// Sqrt returns the element-wise square root.
func (t *Tensor) Sqrt() *Tensor {
	return New(t.backend.Sqrt(t.raw), t.backend)
}

// Clamp limits every element to the range [lo, hi].
func (t *Tensor) Clamp(lo, hi float32) *Tensor {
	return New(t.backend.Clamp(t.raw, lo, hi), t.backend)
}

// ReLU returns max(0, t) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return New(t.backend.ReLU(t.raw), t.backend)
}

// Sigmoid returns 1/(1+exp(-t)) element-wise.
func (t *Tensor) Sigmoid() *Tensor {
	return New(t.backend.Sigmoid(t.raw), t.backend)
}

// Tanh returns tanh(t) element-wise.
func (t *Tensor) Tanh() *Tensor {
	return New(t.backend.Tanh(t.raw), t.backend)
}

// ToFloat32 casts the tensor to float32. A no-op for float32 input.
func (t *Tensor) ToFloat32() *Tensor {
	if t.DType() == Float32 {
		return t
	}
	return New(t.backend.Cast(t.raw, Float32), t.backend)
}
