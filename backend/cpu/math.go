package cpu

import (
	"fmt"
	"math"

	"github.com/reframe-rl/reframe/tensor"
)

// Sqrt computes the element-wise square root.
func (c *Backend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return c.scalarOp("sqrt", x, func(v float32) float32 {
		return float32(math.Sqrt(float64(v)))
	})
}

// Clamp limits every element to the range [lo, hi].
func (c *Backend) Clamp(x *tensor.RawTensor, lo, hi float32) *tensor.RawTensor {
	if lo > hi {
		panic(fmt.Sprintf("clamp: lo %v greater than hi %v", lo, hi))
	}
	return c.scalarOp("clamp", x, func(v float32) float32 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
}

// Cast converts x to the given dtype.
func (c *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	out := tensor.MustNewRaw(x.Shape(), dtype)
	switch {
	case x.DType() == tensor.Uint8 && dtype == tensor.Float32:
		xd, od := x.AsUint8(), out.AsFloat32()
		for i, v := range xd {
			od[i] = float32(v)
		}
	case x.DType() == tensor.Float32 && dtype == tensor.Uint8:
		xd, od := x.AsFloat32(), out.AsUint8()
		for i, v := range xd {
			od[i] = uint8(v)
		}
	default:
		panic(fmt.Sprintf("cast: unsupported conversion %s -> %s", x.DType(), dtype))
	}

	return out
}
