// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/reframe-rl/reframe/tensor"

// ReLU is a Rectified Linear Unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation.
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.ReLU()
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Tanh is a hyperbolic tangent activation module. Zero-centered output
// in (-1, 1); the traditional choice for low-dimensional policies.
type Tanh struct{}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh activation.
func (t *Tanh) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Tanh()
}

// Parameters returns nil (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation module: σ(x) = 1/(1+exp(-x)).
// Used for the LSTM gate nonlinearities.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid activation.
func (s *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Sigmoid()
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Function forms, for builders that take an activation as a value.

// ReLUFunc applies ReLU element-wise.
func ReLUFunc(x *tensor.Tensor) *tensor.Tensor { return x.ReLU() }

// TanhFunc applies tanh element-wise.
func TanhFunc(x *tensor.Tensor) *tensor.Tensor { return x.Tanh() }

// SigmoidFunc applies sigmoid element-wise.
func SigmoidFunc(x *tensor.Tensor) *tensor.Tensor { return x.Sigmoid() }
