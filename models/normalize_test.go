package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-rl/reframe/backend/cpu"
	"github.com/reframe-rl/reframe/common/runningstat"
	"github.com/reframe-rl/reframe/models"
	"github.com/reframe-rl/reframe/tensor"
)

func TestNormalizeClipObservation(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{-100, -1, 0, 1, 100, 3}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	out, rms := models.NormalizeClipObservation(x, models.DefaultClipMin, models.DefaultClipMax)
	require.NotNil(t, rms)
	assert.Equal(t, 3, rms.Dim())

	// A fresh estimator has mean 0 and std 1, so the output is just the
	// input clipped to [-5, 5].
	assert.Equal(t, []float32{-5, -1, 0, 1, 5, 3}, out.Data())
}

func TestNormalizeClipStandardizes(t *testing.T) {
	backend := cpu.New()

	rms := runningstat.New(2)
	rms.Update([]float64{
		10, 100,
		10, 100,
		10, 100,
		10, 100,
	})

	x, err := tensor.FromSlice([]float32{10, 100, 12, 100}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out := models.NormalizeClip(x, rms, -5, 5)

	// The estimator converged near mean (10, 100) with tiny variance,
	// so matching observations map near zero and any deviation clips.
	assert.InDelta(t, 0, out.At(0, 0), 0.1)
	assert.InDelta(t, 0, out.At(0, 1), 0.1)
	assert.Equal(t, float32(5), out.At(1, 0))
}

func TestNormalizeClipPreservesShape(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros(tensor.Shape{2, 3, 4}, backend)

	out, rms := models.NormalizeClipObservation(x, -5, 5)
	assert.Equal(t, 12, rms.Dim())
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 3, 4}))
}

func TestNormalizeClipValidation(t *testing.T) {
	backend := cpu.New()
	rms := runningstat.New(4)

	assert.Panics(t, func() {
		models.NormalizeClip(tensor.Zeros(tensor.Shape{2, 3}, backend), rms, -5, 5)
	})
	assert.Panics(t, func() {
		models.NormalizeClip(tensor.Zeros(tensor.Shape{8}, backend), rms, -5, 5)
	})
}
