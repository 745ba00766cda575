package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

func TestBatchToSeqEnvMajor(t *testing.T) {
	backend := cpu.New()

	// Env-major layout: env 0's steps first, then env 1's.
	x, err := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, tensor.Shape{6, 1}, backend)
	require.NoError(t, err)

	steps := nn.BatchToSeq(x, 2, 3)
	require.Len(t, steps, 3)
	assert.Equal(t, []float32{0, 3}, steps[0].Data())
	assert.Equal(t, []float32{1, 4}, steps[1].Data())
	assert.Equal(t, []float32{2, 5}, steps[2].Data())
}

func TestBatchToSeq1DMask(t *testing.T) {
	backend := cpu.New()
	m, err := tensor.FromSlice([]float32{1, 0, 0, 1}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	steps := nn.BatchToSeq(m, 2, 2)
	require.Len(t, steps, 2)
	assert.True(t, steps[0].Shape().Equal(tensor.Shape{2, 1}))
	assert.Equal(t, []float32{1, 0}, steps[0].Data())
	assert.Equal(t, []float32{0, 1}, steps[1].Data())
}

func TestSeqBatchRoundTrip(t *testing.T) {
	backend := cpu.New()
	data := make([]float32, 24)
	for i := range data {
		data[i] = float32(i)
	}
	x, err := tensor.FromSlice(data, tensor.Shape{8, 3}, backend)
	require.NoError(t, err)

	back := nn.SeqToBatch(nn.BatchToSeq(x, 4, 2))
	assert.True(t, back.Shape().Equal(x.Shape()))
	assert.Equal(t, x.Data(), back.Data())
}

func TestBatchToSeqGeometryChecks(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros(tensor.Shape{6, 2}, backend)

	assert.Panics(t, func() { nn.BatchToSeq(x, 4, 2) })
	assert.Panics(t, func() { nn.BatchToSeq(x, 0, 6) })
	assert.Panics(t, func() { nn.SeqToBatch(nil) })
}
