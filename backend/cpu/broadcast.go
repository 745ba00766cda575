package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// binaryOp applies op element-wise over the broadcast of a and b.
//
// The fast path handles identical shapes with a flat loop. The general
// path walks the output multi-index and maps it back into each operand,
// treating size-1 dimensions as stride 0.
func (c *Backend) binaryOp(name string, a, b *tensor.RawTensor, op func(x, y float32) float32) *tensor.RawTensor {
	requireFloat32(name, a, b)

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	out := tensor.MustNewRaw(outShape, tensor.Float32)
	ad, bd, od := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()

	if !needsBroadcast {
		for i := range od {
			od[i] = op(ad[i], bd[i])
		}
		return out
	}

	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	index := make([]int, len(outShape))

	for i := range od {
		aOff, bOff := 0, 0
		for d, idx := range index {
			aOff += idx * aStrides[d]
			bOff += idx * bStrides[d]
		}
		od[i] = op(ad[aOff], bd[bOff])

		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < outShape[d] {
				break
			}
			index[d] = 0
		}
	}

	return out
}

// broadcastStrides maps an operand's strides onto the output shape.
// Missing leading dimensions and size-1 dimensions get stride 0.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	strides := shape.ComputeStrides()
	result := make([]int, len(outShape))
	offset := len(outShape) - len(shape)
	for i := range outShape {
		j := i - offset
		if j < 0 || shape[j] == 1 {
			result[i] = 0
		} else {
			result[i] = strides[j]
		}
	}
	return result
}
