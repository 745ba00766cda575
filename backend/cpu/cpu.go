// Package cpu implements the pure-Go CPU backend for Reframe tensors.
package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// Backend implements tensor.Backend on the CPU.
type Backend struct{}

// New creates a CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "cpu"
}

// Add performs element-wise addition with broadcasting.
func (c *Backend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *Backend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *Backend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryOp("div", a, b, func(x, y float32) float32 { return x / y })
}

func requireFloat32(op string, tensors ...*tensor.RawTensor) {
	for _, t := range tensors {
		if t.DType() != tensor.Float32 {
			panic(fmt.Sprintf("%s: float32 tensor required, got %s", op, t.DType()))
		}
	}
}
