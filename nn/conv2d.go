// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// Conv2D is a 2D convolutional layer over NHWC observations.
//
// Input shape:  [batch, height, width, in_channels]
// Weight shape: [kernel, kernel, in_channels, out_channels]
// Bias shape:   [out_channels]
// Output shape: [batch, out_h, out_w, out_channels]
//
// With valid padding out = (in - kernel)/stride + 1; with same padding
// out = ceil(in / stride).
type Conv2D struct {
	inChannels  int
	outChannels int
	kernelSize  int
	stride      int
	padding     tensor.Padding

	weight *Parameter // [kernel, kernel, in_channels, out_channels]
	bias   *Parameter // [out_channels]

	backend tensor.Backend
}

// NewConv2D creates a Conv2D layer with scaled orthogonal weight init
// and zero bias. The kernel is square, as in pixel policy networks.
func NewConv2D(
	inChannels, outChannels, kernelSize, stride int,
	padding tensor.Padding,
	initScale float32,
	backend tensor.Backend,
) *Conv2D {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelSize <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}

	weightShape := tensor.Shape{kernelSize, kernelSize, inChannels, outChannels}
	weight := Orthogonal(initScale, weightShape, backend)
	bias := Zeros(tensor.Shape{outChannels}, backend)

	return &Conv2D{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		stride:      stride,
		padding:     padding,
		weight:      NewParameter("w", weight),
		bias:        NewParameter("b", bias),
		backend:     backend,
	}
}

// Forward performs the convolution.
//
// Input: [batch, height, width, in_channels]
// Output: [batch, out_h, out_w, out_channels]
func (c *Conv2D) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 4 {
		panic(fmt.Sprintf("conv2d: 4D input [N,H,W,C] required, got %dD", len(shape)))
	}
	if shape[3] != c.inChannels {
		panic(fmt.Sprintf("conv2d: input has %d channels, layer expects %d", shape[3], c.inChannels))
	}

	raw := c.backend.Conv2D(input.Raw(), c.weight.Tensor().Raw(), c.stride, c.padding)
	return tensor.New(raw, c.backend).Add(c.bias.Tensor())
}

// Parameters returns the weight and bias.
func (c *Conv2D) Parameters() []*Parameter {
	return []*Parameter{c.weight, c.bias}
}

// OutChannels returns the number of output channels.
func (c *Conv2D) OutChannels() int {
	return c.outChannels
}

// ComputeOutputSize returns the output spatial size for an input size.
func (c *Conv2D) ComputeOutputSize(in int) int {
	if c.padding == tensor.Same {
		return (in + c.stride - 1) / c.stride
	}
	return (in-c.kernelSize)/c.stride + 1
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=%d, stride=%d, padding=%s)",
		c.inChannels, c.outChannels, c.kernelSize, c.stride, c.padding)
}
