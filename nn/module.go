// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/reframe-rl/reframe/tensor"

// Module is the base interface for feedforward network components.
//
// Recurrent cells carry state between steps and therefore expose their
// own Step/Scan methods instead (see LSTM).
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without parameters.
	Parameters() []*Parameter
}

// Parameter is a named weight tensor owned by a layer.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the underlying tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}
