package cpu

import (
	"math"

	"github.com/reframe-rl/reframe/tensor"
)

// ReLU computes max(0, x) element-wise.
func (c *Backend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return c.scalarOp("relu", x, func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// Sigmoid computes 1/(1+exp(-x)) element-wise.
func (c *Backend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return c.scalarOp("sigmoid", x, func(v float32) float32 {
		return float32(1 / (1 + math.Exp(-float64(v))))
	})
}

// Tanh computes tanh(x) element-wise.
func (c *Backend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.scalarOp("tanh", x, func(v float32) float32 {
		return float32(math.Tanh(float64(v)))
	})
}
