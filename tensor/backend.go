// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Padding selects the convolution padding mode.
type Padding int

// Padding modes. Valid applies no padding; Same pads so the output
// spatial size is ceil(input / stride).
const (
	Valid Padding = iota
	Same
)

// String returns the padding mode name.
func (p Padding) String() string {
	switch p {
	case Valid:
		return "valid"
	case Same:
		return "same"
	default:
		return "unknown"
	}
}

// Backend defines the compute operations the network builders consume.
// The CPU backend (backend/cpu) is the reference implementation; the
// interface is the seam where accelerator backends would plug in.
//
// All binary element-wise operations broadcast NumPy-style.
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, s float32) *RawTensor
	MulScalar(x *RawTensor, s float32) *RawTensor
	DivScalar(x *RawTensor, s float32) *RawTensor

	// Matrix and convolution operations
	MatMul(a, b *RawTensor) *RawTensor
	Conv2D(input, kernel *RawTensor, stride int, pad Padding) *RawTensor

	// Shape operations
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Cat(tensors []*RawTensor, dim int) *RawTensor
	Chunk(x *RawTensor, n, dim int) []*RawTensor

	// Reductions
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Element-wise math
	Sqrt(x *RawTensor) *RawTensor
	Clamp(x *RawTensor, lo, hi float32) *RawTensor

	// Activation functions
	ReLU(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
}
