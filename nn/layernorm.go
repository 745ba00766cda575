// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// LayerNorm applies layer normalization along the last dimension:
//
//	Y = gain * (X - mean(X)) / sqrt(var(X) + eps) + bias
//
// Statistics are computed per row over the feature dimension. The
// layer-normalized LSTM applies the same transform to its gate
// pre-activations and cell state.
type LayerNorm struct {
	Gain    *Parameter // learnable scale [features]
	Bias    *Parameter // learnable shift [features]
	Epsilon float32
}

// NewLayerNorm creates a LayerNorm layer with gain ones and bias zeros.
func NewLayerNorm(features int, epsilon float32, backend tensor.Backend) *LayerNorm {
	if features <= 0 {
		panic(fmt.Sprintf("layernorm: invalid feature count %d", features))
	}
	return &LayerNorm{
		Gain:    NewParameter("g", Ones(tensor.Shape{features}, backend)),
		Bias:    NewParameter("b", Zeros(tensor.Shape{features}, backend)),
		Epsilon: epsilon,
	}
}

// Forward normalizes the input along its last dimension.
func (l *LayerNorm) Forward(x *tensor.Tensor) *tensor.Tensor {
	return normalizeLast(x, l.Gain.Tensor(), l.Bias.Tensor(), l.Epsilon)
}

// Parameters returns the gain and bias.
func (l *LayerNorm) Parameters() []*Parameter {
	return []*Parameter{l.Gain, l.Bias}
}

// normalizeLast standardizes x along its last dimension and applies the
// gain/bias transform. Shared between LayerNorm and the LSTM internals.
func normalizeLast(x, gain, bias *tensor.Tensor, epsilon float32) *tensor.Tensor {
	mean := x.MeanDim(-1, true)
	centered := x.Sub(mean)
	variance := centered.Mul(centered).MeanDim(-1, true)
	std := variance.AddScalar(epsilon).Sqrt()
	return centered.Div(std).Mul(gain).Add(bias)
}
