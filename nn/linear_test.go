package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

func TestLinearForward(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewLinear(3, 2, nn.DefaultInitScale, backend)

	// Overwrite the weights for a deterministic check.
	copy(layer.Weight().Tensor().Data(), []float32{
		1, 0,
		0, 1,
		1, 1,
	})
	copy(layer.Bias().Tensor().Data(), []float32{10, 20})

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	y := layer.Forward(x)
	assert.True(t, y.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float32{14, 25, 20, 31}, y.Data())
}

func TestLinearShapeChecks(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewLinear(4, 2, nn.DefaultInitScale, backend)

	assert.Panics(t, func() { layer.Forward(tensor.Zeros(tensor.Shape{2, 3}, backend)) })
	assert.Panics(t, func() { layer.Forward(tensor.Zeros(tensor.Shape{8}, backend)) })
	assert.Panics(t, func() { nn.NewLinear(0, 2, 1, backend) })
}

func TestLinearParameters(t *testing.T) {
	layer := nn.NewLinear(5, 3, nn.DefaultInitScale, cpu.New())

	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.True(t, params[0].Tensor().Shape().Equal(tensor.Shape{5, 3}))
	assert.True(t, params[1].Tensor().Shape().Equal(tensor.Shape{3}))

	assert.Equal(t, 5, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())
	assert.Equal(t, "Linear(in_features=5, out_features=3)", layer.String())
}

func TestConv2DForward(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewConv2D(1, 1, 2, 1, tensor.Valid, nn.DefaultInitScale, backend)

	// 2x2 ones kernel, bias 1: each output is the window sum plus one.
	copy(layer.Parameters()[0].Tensor().Data(), []float32{1, 1, 1, 1})
	copy(layer.Parameters()[1].Tensor().Data(), []float32{1})

	x, err := tensor.FromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, tensor.Shape{1, 3, 3, 1}, backend)
	require.NoError(t, err)

	y := layer.Forward(x)
	assert.True(t, y.Shape().Equal(tensor.Shape{1, 2, 2, 1}))
	assert.Equal(t, []float32{13, 17, 25, 29}, y.Data())
}

func TestConv2DComputeOutputSize(t *testing.T) {
	backend := cpu.New()

	valid := nn.NewConv2D(4, 32, 8, 4, tensor.Valid, nn.DefaultInitScale, backend)
	assert.Equal(t, 20, valid.ComputeOutputSize(84))

	same := nn.NewConv2D(4, 32, 8, 4, tensor.Same, nn.DefaultInitScale, backend)
	assert.Equal(t, 21, same.ComputeOutputSize(84))
}

func TestConv2DChannelMismatchPanics(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewConv2D(4, 8, 3, 1, tensor.Valid, nn.DefaultInitScale, backend)

	assert.Panics(t, func() { layer.Forward(tensor.Zeros(tensor.Shape{1, 8, 8, 3}, backend)) })
	assert.Panics(t, func() { layer.Forward(tensor.Zeros(tensor.Shape{8, 8, 4}, backend)) })
}

func TestSequential(t *testing.T) {
	backend := cpu.New()
	stack := nn.NewSequential(
		nn.NewLinear(4, 8, nn.DefaultInitScale, backend),
		nn.NewReLU(),
	)
	stack.Add(nn.NewLinear(8, 2, nn.DefaultInitScale, backend))

	assert.Equal(t, 3, stack.Len())
	assert.Len(t, stack.Parameters(), 4)

	y := stack.Forward(tensor.Zeros(tensor.Shape{5, 4}, backend))
	assert.True(t, y.Shape().Equal(tensor.Shape{5, 2}))
}
