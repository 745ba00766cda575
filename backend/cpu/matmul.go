package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// MatMul performs 2D matrix multiplication: [M, K] @ [K, N] -> [M, N].
func (c *Backend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	requireFloat32("matmul", a, b)

	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: 2D tensors required, got %v and %v", aShape, bShape))
	}
	m, k := aShape[0], aShape[1]
	if bShape[0] != k {
		panic(fmt.Sprintf("matmul: inner dimensions mismatch: %v @ %v", aShape, bShape))
	}
	n := bShape[1]

	out := tensor.MustNewRaw(tensor.Shape{m, n}, tensor.Float32)
	ad, bd, od := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()

	// ikj loop order keeps the inner loop sequential over b and out.
	for i := 0; i < m; i++ {
		aRow := ad[i*k : (i+1)*k]
		oRow := od[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			av := aRow[kk]
			if av == 0 {
				continue
			}
			bRow := bd[kk*n : (kk+1)*n]
			for j := 0; j < n; j++ {
				oRow[j] += av * bRow[j]
			}
		}
	}

	return out
}
