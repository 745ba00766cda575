// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math/rand"
)

// Tensor bundles a RawTensor with the backend that computes on it.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := x.AddScalar(1).MulScalar(2)
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{raw: raw, backend: b}
}

// FromSlice creates a float32 tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat32(), data)
	return New(raw, b), nil
}

// FromUint8 creates a uint8 tensor from a Go slice, typically a batch of
// raw pixel observations.
func FromUint8(data []uint8, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Uint8)
	if err != nil {
		return nil, err
	}
	copy(raw.AsUint8(), data)
	return New(raw, b), nil
}

// Zeros creates a float32 tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return New(MustNewRaw(shape, Float32), b)
}

// Ones creates a float32 tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1, b)
}

// Full creates a float32 tensor filled with the given value.
func Full(shape Shape, value float32, b Backend) *Tensor {
	raw := MustNewRaw(shape, Float32)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = value
	}
	return New(raw, b)
}

// Randn creates a float32 tensor with values drawn from N(0, 1).
func Randn(shape Shape, b Backend) *Tensor {
	raw := MustNewRaw(shape, Float32)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(rand.NormFloat64())
	}
	return New(raw, b)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Data returns a float32 slice view of the tensor's memory (zero-copy).
// Panics if the dtype is not Float32.
//
// WARNING: Modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.raw.AsFloat32()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds or the dtype is not Float32.
func (t *Tensor) At(indices ...int) float32 {
	return t.Data()[t.offset(indices...)]
}

// Set sets the element at the given indices.
func (t *Tensor) Set(value float32, indices ...int) {
	t.Data()[t.offset(indices...)] = value
}

func (t *Tensor) offset(indices ...int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}
	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}
