package cpu

import "github.com/reframe-rl/reframe/tensor"

func (c *Backend) scalarOp(name string, x *tensor.RawTensor, op func(v float32) float32) *tensor.RawTensor {
	requireFloat32(name, x)
	out := tensor.MustNewRaw(x.Shape(), tensor.Float32)
	xd, od := x.AsFloat32(), out.AsFloat32()
	for i := range od {
		od[i] = op(xd[i])
	}
	return out
}

// AddScalar adds s to every element.
func (c *Backend) AddScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return c.scalarOp("add_scalar", x, func(v float32) float32 { return v + s })
}

// MulScalar multiplies every element by s.
func (c *Backend) MulScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return c.scalarOp("mul_scalar", x, func(v float32) float32 { return v * s })
}

// DivScalar divides every element by s.
func (c *Backend) DivScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return c.scalarOp("div_scalar", x, func(v float32) float32 { return v / s })
}
