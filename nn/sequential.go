// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import "github.com/reframe-rl/reframe/tensor"

// Sequential is a container module that chains modules together: each
// module's output becomes the next module's input.
//
// Example:
//
//	stack := nn.NewSequential(
//	    nn.NewConv2D(4, 32, 8, 4, tensor.Valid, initScale, backend),
//	    nn.NewReLU(),
//	    nn.NewConv2D(32, 64, 4, 2, tensor.Valid, initScale, backend),
//	    nn.NewReLU(),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("sequential: module index out of bounds")
	}
	return s.modules[index]
}
