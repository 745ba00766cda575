// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer primitives Reframe's network builders
// are assembled from: dense and convolutional layers, activations,
// layer normalization, an LSTM cell (plain and layer-normalized), and
// the batch<->sequence reshape helpers recurrent policies need.
//
// Layers follow a uniform pattern: a struct holding parameters, a New*
// constructor that initializes them, and a Forward method that builds
// the computation for one input batch. Weight initialization defaults
// to scaled orthogonal, the scheme policy-gradient implementations use.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential(
//	    nn.NewLinear(64, 64, nn.DefaultInitScale, backend),
//	    nn.NewReLU(),
//	    nn.NewLinear(64, 4, 0.01, backend),
//	)
//	logits := model.Forward(obs)
package nn
