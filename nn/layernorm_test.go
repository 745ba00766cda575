package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

func TestLayerNormStandardizes(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewLayerNorm(4, 1e-5, backend)

	x, err := tensor.FromSlice([]float32{
		1, 2, 3, 4,
		10, 10, 10, 10,
	}, tensor.Shape{2, 4}, backend)
	require.NoError(t, err)

	y := layer.Forward(x)
	require.True(t, y.Shape().Equal(tensor.Shape{2, 4}))

	// Row 0: zero mean, unit variance after normalization.
	row := y.Data()[:4]
	var mean float64
	for _, v := range row {
		mean += float64(v)
	}
	mean /= 4
	assert.InDelta(t, 0, mean, 1e-5)

	var variance float64
	for _, v := range row {
		variance += (float64(v) - mean) * (float64(v) - mean)
	}
	variance /= 4
	assert.InDelta(t, 1, variance, 1e-2)

	// A constant row normalizes to zero.
	for _, v := range y.Data()[4:] {
		assert.InDelta(t, 0, v, 1e-2)
	}
}

func TestLayerNormGainBias(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewLayerNorm(2, 1e-5, backend)
	copy(layer.Gain.Tensor().Data(), []float32{2, 2})
	copy(layer.Bias.Tensor().Data(), []float32{5, 5})

	x, err := tensor.FromSlice([]float32{-1, 1}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	y := layer.Forward(x).Data()
	// Normalized row is [-1, 1]; gain 2 and bias 5 map it to [3, 7].
	assert.InDelta(t, 3, y[0], 1e-2)
	assert.InDelta(t, 7, y[1], 1e-2)
}
