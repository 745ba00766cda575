// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

// ReLU-oriented orthogonal gain for the dense and convolutional stacks.
var initScale = float32(math.Sqrt2)

// CNN builds the deep Q-network convolutional stack: three convolutions
// (32 8x8/4, 64 4x4/2, 64 3x3/1, valid padding, ReLU) followed by a
// dense layer to 512 features. Input is [nbatch, height, width,
// channels] pixels; values are scaled to [0, 1] before the first layer.
type CNN struct{}

// Build returns the network function.
func (c *CNN) Build() NetworkFn {
	net := &natureCNN{}
	return func(x *tensor.Tensor, _ int) (*tensor.Tensor, *RecurrentState) {
		return net.forward("cnn", x), nil
	}
}

// CNNSmall builds a reduced convolutional stack for cheap pixel
// environments: two convolutions (8 8x8/4, 16 4x4/2, valid padding,
// ReLU) and a dense layer to 128 features.
type CNNSmall struct{}

// Build returns the network function.
func (c *CNNSmall) Build() NetworkFn {
	var convs *nn.Sequential
	var fc *nn.Linear
	return func(x *tensor.Tensor, _ int) (*tensor.Tensor, *RecurrentState) {
		requireImage("cnn_small", x)
		backend := x.Backend()
		h := x.ToFloat32().DivScalar(255)

		if convs == nil {
			convs = nn.NewSequential(
				nn.NewConv2D(h.Shape()[3], 8, 8, 4, tensor.Valid, initScale, backend),
				nn.NewReLU(),
				nn.NewConv2D(8, 16, 4, 2, tensor.Valid, initScale, backend),
				nn.NewReLU(),
			)
		}
		h = convs.Forward(h)
		h = h.Reshape(h.Shape()[0], -1)

		if fc == nil {
			fc = nn.NewLinear(h.Shape()[1], 128, initScale, backend)
		}
		return nn.ReLUFunc(fc.Forward(h)), nil
	}
}

// ConvSpec configures one convolution of a ConvOnly stack.
type ConvSpec struct {
	Filters int
	Kernel  int
	Stride  int
}

// ConvOnly builds a purely convolutional stack with same padding and no
// dense head, preserving spatial structure in the latent. A nil Convs
// uses the deep Q-network layer sizes.
type ConvOnly struct {
	Convs []ConvSpec
}

func defaultConvs() []ConvSpec {
	return []ConvSpec{{32, 8, 4}, {64, 4, 2}, {64, 3, 1}}
}

// Build returns the network function.
func (c *ConvOnly) Build() NetworkFn {
	specs := c.Convs
	if specs == nil {
		specs = defaultConvs()
	}
	for i, s := range specs {
		if s.Filters <= 0 || s.Kernel <= 0 || s.Stride <= 0 {
			panic(fmt.Sprintf("conv_only: invalid conv spec %d: %+v", i, s))
		}
	}

	var stack *nn.Sequential
	return func(x *tensor.Tensor, _ int) (*tensor.Tensor, *RecurrentState) {
		requireImage("conv_only", x)
		backend := x.Backend()
		h := x.ToFloat32().DivScalar(255)

		if stack == nil {
			stack = nn.NewSequential()
			in := h.Shape()[3]
			for _, s := range specs {
				stack.Add(nn.NewConv2D(in, s.Filters, s.Kernel, s.Stride, tensor.Same, nn.DefaultInitScale, backend))
				stack.Add(nn.NewReLU())
				in = s.Filters
			}
		}
		return stack.Forward(h), nil
	}
}

// MLP builds the fully connected network over flattened observations.
//
// NumLayers, NumHidden and Activation are accepted for compatibility
// but do not take effect: the stack is always two ReLU layers of width
// 64, matching the behavior existing experiment configs were tuned
// against. The requested and effective configurations are logged at
// debug level.
type MLP struct {
	NumLayers  int
	NumHidden  int
	Activation func(*tensor.Tensor) *tensor.Tensor
}

// Build returns the network function.
func (m *MLP) Build() NetworkFn {
	numLayers := m.NumLayers
	if numLayers <= 0 {
		numLayers = 2
	}
	numHidden := m.NumHidden
	if numHidden <= 0 {
		numHidden = 64
	}

	sizes := []int{64, 64}
	activation := nn.ReLUFunc
	slog.Debug("mlp configuration overridden",
		"requested_num_layers", numLayers,
		"requested_num_hidden", numHidden,
		"effective_sizes", sizes,
		"effective_activation", "relu")

	var layers []*nn.Linear
	return func(x *tensor.Tensor, _ int) (*tensor.Tensor, *RecurrentState) {
		h := flattenBatch("mlp", x)

		if layers == nil {
			backend := x.Backend()
			in := h.Shape()[1]
			for _, size := range sizes {
				layers = append(layers, nn.NewLinear(in, size, initScale, backend))
				in = size
			}
		}
		for _, layer := range layers {
			h = activation(layer.Forward(h))
		}
		return h, nil
	}
}

// natureCNN is the convolutional trunk shared by CNN and CNNLSTM.
type natureCNN struct {
	convs *nn.Sequential
	fc    *nn.Linear
}

func (n *natureCNN) forward(name string, x *tensor.Tensor) *tensor.Tensor {
	requireImage(name, x)
	backend := x.Backend()
	h := x.ToFloat32().DivScalar(255)

	if n.convs == nil {
		n.convs = nn.NewSequential(
			nn.NewConv2D(h.Shape()[3], 32, 8, 4, tensor.Valid, initScale, backend),
			nn.NewReLU(),
			nn.NewConv2D(32, 64, 4, 2, tensor.Valid, initScale, backend),
			nn.NewReLU(),
			nn.NewConv2D(64, 64, 3, 1, tensor.Valid, initScale, backend),
			nn.NewReLU(),
		)
	}
	h = n.convs.Forward(h)
	h = h.Reshape(h.Shape()[0], -1)

	if n.fc == nil {
		n.fc = nn.NewLinear(h.Shape()[1], 512, initScale, backend)
	}
	return nn.ReLUFunc(n.fc.Forward(h))
}

func requireImage(name string, x *tensor.Tensor) {
	if len(x.Shape()) != 4 {
		panic(fmt.Sprintf("%s: image input [nbatch, height, width, channels] required, got %v", name, x.Shape()))
	}
}

// flattenBatch reshapes x to [nbatch, features], casting pixels to
// float32 first.
func flattenBatch(name string, x *tensor.Tensor) *tensor.Tensor {
	if len(x.Shape()) < 2 {
		panic(fmt.Sprintf("%s: batched input required, got %v", name, x.Shape()))
	}
	return x.ToFloat32().Reshape(x.Shape()[0], -1)
}
