package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// MeanDim computes the mean along dim. Supports negative dim indexing.
func (c *Backend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	requireFloat32("mean_dim", x)

	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("mean_dim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	size := shape[dim]
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for d, s := range shape {
			if d != dim {
				outShape = append(outShape, s)
			}
		}
		if len(outShape) == 0 {
			outShape = tensor.Shape{1}
		}
	}

	out := tensor.MustNewRaw(outShape, tensor.Float32)
	xd, od := x.AsFloat32(), out.AsFloat32()

	inv := 1 / float32(size)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var sum float32
			base := o*size*inner + i
			for k := 0; k < size; k++ {
				sum += xd[base+k*inner]
			}
			od[o*inner+i] = sum * inv
		}
	}

	return out
}
