package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

// columnDot computes the dot product of columns j and k of a [rows,
// cols] matrix stored row-major.
func columnDot(data []float32, rows, cols, j, k int) float64 {
	var sum float64
	for i := 0; i < rows; i++ {
		sum += float64(data[i*cols+j]) * float64(data[i*cols+k])
	}
	return sum
}

func TestOrthogonalColumns(t *testing.T) {
	const rows, cols = 64, 16
	scale := float32(math.Sqrt2)

	w := nn.Orthogonal(scale, tensor.Shape{rows, cols}, cpu.New())
	data := w.Data()

	for j := 0; j < cols; j++ {
		for k := 0; k < cols; k++ {
			got := columnDot(data, rows, cols, j, k)
			want := 0.0
			if j == k {
				want = float64(scale) * float64(scale)
			}
			assert.InDelta(t, want, got, 1e-4, "columns %d and %d", j, k)
		}
	}
}

func TestOrthogonalWideMatrix(t *testing.T) {
	// More columns than rows: the rows are orthonormal instead.
	const rows, cols = 8, 32

	w := nn.Orthogonal(1, tensor.Shape{rows, cols}, cpu.New())
	data := w.Data()

	for i := 0; i < rows; i++ {
		for k := 0; k < rows; k++ {
			var sum float64
			for j := 0; j < cols; j++ {
				sum += float64(data[i*cols+j]) * float64(data[k*cols+j])
			}
			want := 0.0
			if i == k {
				want = 1.0
			}
			assert.InDelta(t, want, sum, 1e-4, "rows %d and %d", i, k)
		}
	}
}

func TestOrthogonalKernelFlattening(t *testing.T) {
	// A [3,3,4,16] kernel is orthogonal over [36,16].
	w := nn.Orthogonal(1, tensor.Shape{3, 3, 4, 16}, cpu.New())
	data := w.Data()

	for j := 0; j < 16; j++ {
		got := columnDot(data, 36, 16, j, j)
		assert.InDelta(t, 1.0, got, 1e-4)
	}
}

func TestOrthogonalRejectsVector(t *testing.T) {
	assert.Panics(t, func() { nn.Orthogonal(1, tensor.Shape{8}, cpu.New()) })
}

func TestXavierBounds(t *testing.T) {
	const fanIn, fanOut = 30, 30
	bound := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))

	w := nn.Xavier(fanIn, fanOut, tensor.Shape{fanIn, fanOut}, cpu.New())
	for _, v := range w.Data() {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
}
