package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// Reshape returns a view of x under a new shape. Element counts must
// match; tensors are always contiguous so this never copies.
func (c *Backend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	return x.WithShape(shape)
}

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation
// dimension. Supports negative dim indexing (-1 = last dimension).
func (c *Backend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim
	out := tensor.MustNewRaw(outShape, dtype)

	// Copy block-wise: each tensor contributes contiguous runs of
	// rowBytes for every index of the outer dimensions.
	elem := dtype.Size()
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := elem
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}

	outRow := totalDim * inner
	od := out.Data()
	rowOffset := 0
	for _, t := range tensors {
		rowBytes := t.Shape()[dim] * inner
		td := t.Data()
		for o := 0; o < outer; o++ {
			copy(od[o*outRow+rowOffset:o*outRow+rowOffset+rowBytes], td[o*rowBytes:(o+1)*rowBytes])
		}
		rowOffset += rowBytes
	}

	return out
}

// Chunk splits x into n equal parts along dim. The dimension size must
// be divisible by n.
func (c *Backend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if n <= 0 || shape[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: cannot split dimension of size %d into %d equal parts", shape[dim], n))
	}

	partShape := shape.Clone()
	partShape[dim] = shape[dim] / n

	elem := x.DType().Size()
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := elem
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}

	srcRow := shape[dim] * inner
	partRow := partShape[dim] * inner
	xd := x.Data()

	parts := make([]*tensor.RawTensor, n)
	for p := 0; p < n; p++ {
		part := tensor.MustNewRaw(partShape, x.DType())
		pd := part.Data()
		for o := 0; o < outer; o++ {
			src := o*srcRow + p*partRow
			copy(pd[o*partRow:(o+1)*partRow], xd[src:src+partRow])
		}
		parts[p] = part
	}

	return parts
}
