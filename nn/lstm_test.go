package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

func TestLSTMStepShapes(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(6, 4, nn.DefaultInitScale, backend)

	assert.Equal(t, 8, cell.StateSize())
	assert.Equal(t, 4, cell.Hidden())
	assert.False(t, cell.LayerNorm())

	x := tensor.Zeros(tensor.Shape{3, 6}, backend)
	mask := tensor.Zeros(tensor.Shape{3, 1}, backend)
	state := tensor.Zeros(tensor.Shape{3, 8}, backend)

	h, newState := cell.Step(x, mask, state)
	assert.True(t, h.Shape().Equal(tensor.Shape{3, 4}))
	assert.True(t, newState.Shape().Equal(tensor.Shape{3, 8}))
}

func TestLSTMStateIsCellThenHidden(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(2, 3, nn.DefaultInitScale, backend)

	x := tensor.Randn(tensor.Shape{1, 2}, backend)
	mask := tensor.Zeros(tensor.Shape{1, 1}, backend)
	state := tensor.Zeros(tensor.Shape{1, 6}, backend)

	h, newState := cell.Step(x, mask, state)

	// The hidden half of the state is the step output.
	parts := newState.Chunk(2, 1)
	assert.Equal(t, h.Data(), parts[1].Data())
}

func TestLSTMMaskResetsState(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(3, 5, nn.DefaultInitScale, backend)

	x := tensor.Randn(tensor.Shape{2, 3}, backend)

	// A mask of ones zeroes the carried state, so any state behaves
	// like the initial zero state.
	carried := tensor.Randn(tensor.Shape{2, 10}, backend)
	ones := tensor.Ones(tensor.Shape{2, 1}, backend)
	hMasked, sMasked := cell.Step(x, ones, carried)

	zeroState := tensor.Zeros(tensor.Shape{2, 10}, backend)
	zeroMask := tensor.Zeros(tensor.Shape{2, 1}, backend)
	hFresh, sFresh := cell.Step(x, zeroMask, zeroState)

	assert.Equal(t, hFresh.Data(), hMasked.Data())
	assert.Equal(t, sFresh.Data(), sMasked.Data())
}

func TestLSTMStateCarriesInformation(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(3, 5, nn.DefaultInitScale, backend)

	x := tensor.Randn(tensor.Shape{1, 3}, backend)
	mask := tensor.Zeros(tensor.Shape{1, 1}, backend)

	zero := tensor.Zeros(tensor.Shape{1, 10}, backend)
	hZero, _ := cell.Step(x, mask, zero)

	carried := tensor.Ones(tensor.Shape{1, 10}, backend)
	hCarried, _ := cell.Step(x, mask, carried)

	assert.NotEqual(t, hZero.Data(), hCarried.Data())
}

func TestLSTMScanMatchesSteps(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(2, 4, nn.DefaultInitScale, backend)

	xs := []*tensor.Tensor{
		tensor.Randn(tensor.Shape{2, 2}, backend),
		tensor.Randn(tensor.Shape{2, 2}, backend),
	}
	masks := []*tensor.Tensor{
		tensor.Zeros(tensor.Shape{2, 1}, backend),
		tensor.Zeros(tensor.Shape{2, 1}, backend),
	}
	state := tensor.Zeros(tensor.Shape{2, 8}, backend)

	outputs, final := cell.Scan(xs, masks, state)
	require.Len(t, outputs, 2)

	h0, s0 := cell.Step(xs[0], masks[0], state)
	h1, s1 := cell.Step(xs[1], masks[1], s0)

	assert.Equal(t, h0.Data(), outputs[0].Data())
	assert.Equal(t, h1.Data(), outputs[1].Data())
	assert.Equal(t, s1.Data(), final.Data())
}

func TestLNLSTM(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLNLSTM(4, 3, nn.DefaultInitScale, backend)

	assert.True(t, cell.LayerNorm())
	assert.Equal(t, "LNLSTM(in_features=4, hidden=3)", cell.String())
	// Layer norm adds three gain/bias pairs to wx, wh and b.
	assert.Len(t, cell.Parameters(), 9)

	x := tensor.Randn(tensor.Shape{2, 4}, backend)
	mask := tensor.Zeros(tensor.Shape{2, 1}, backend)
	state := tensor.Zeros(tensor.Shape{2, 6}, backend)

	h, newState := cell.Step(x, mask, state)
	assert.True(t, h.Shape().Equal(tensor.Shape{2, 3}))
	assert.True(t, newState.Shape().Equal(tensor.Shape{2, 6}))
}

func TestLSTMStepValidation(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(3, 4, nn.DefaultInitScale, backend)

	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
	mask := tensor.Zeros(tensor.Shape{2, 1}, backend)
	state := tensor.Zeros(tensor.Shape{2, 8}, backend)

	assert.Panics(t, func() { cell.Step(tensor.Zeros(tensor.Shape{2, 5}, backend), mask, state) })
	assert.Panics(t, func() { cell.Step(x, tensor.Zeros(tensor.Shape{3, 1}, backend), state) })
	assert.Panics(t, func() { cell.Step(x, mask, tensor.Zeros(tensor.Shape{2, 6}, backend)) })
	assert.Panics(t, func() { cell.Scan([]*tensor.Tensor{x}, nil, state) })
}

func TestLSTM1DMask(t *testing.T) {
	backend := cpu.New()
	cell := nn.NewLSTM(2, 2, nn.DefaultInitScale, backend)

	x := tensor.Randn(tensor.Shape{3, 2}, backend)
	state := tensor.Randn(tensor.Shape{3, 4}, backend)

	flat := tensor.Zeros(tensor.Shape{3}, backend)
	column := tensor.Zeros(tensor.Shape{3, 1}, backend)

	hFlat, _ := cell.Step(x, flat, state)
	hColumn, _ := cell.Step(x, column, state)
	assert.Equal(t, hColumn.Data(), hFlat.Data())
}
