package cpu

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// Conv2D performs 2D convolution in NHWC layout.
//
// Input shape:  [batch, height, width, in_channels]
// Kernel shape: [kernel_h, kernel_w, in_channels, out_channels]
// Output shape: [batch, out_h, out_w, out_channels]
//
// Valid padding:
//
//	out = (in - kernel)/stride + 1
//
// Same padding:
//
//	out = ceil(in / stride), zero-padded symmetrically (extra pixel on
//	the bottom/right when the total padding is odd, matching TF).
func (c *Backend) Conv2D(input, kernel *tensor.RawTensor, stride int, pad tensor.Padding) *tensor.RawTensor {
	requireFloat32("conv2d", input, kernel)

	inShape, kShape := input.Shape(), kernel.Shape()
	if len(inShape) != 4 {
		panic(fmt.Sprintf("conv2d: 4D input [N,H,W,C] required, got %v", inShape))
	}
	if len(kShape) != 4 {
		panic(fmt.Sprintf("conv2d: 4D kernel [KH,KW,Cin,Cout] required, got %v", kShape))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}

	batch, inH, inW, inC := inShape[0], inShape[1], inShape[2], inShape[3]
	kh, kw, kInC, outC := kShape[0], kShape[1], kShape[2], kShape[3]
	if kInC != inC {
		panic(fmt.Sprintf("conv2d: input has %d channels, kernel expects %d", inC, kInC))
	}

	var outH, outW, padTop, padLeft int
	switch pad {
	case tensor.Valid:
		if kh > inH || kw > inW {
			panic(fmt.Sprintf("conv2d: kernel %dx%d larger than input %dx%d with valid padding", kh, kw, inH, inW))
		}
		outH = (inH-kh)/stride + 1
		outW = (inW-kw)/stride + 1
	case tensor.Same:
		outH = (inH + stride - 1) / stride
		outW = (inW + stride - 1) / stride
		padTop = maxInt((outH-1)*stride+kh-inH, 0) / 2
		padLeft = maxInt((outW-1)*stride+kw-inW, 0) / 2
	default:
		panic(fmt.Sprintf("conv2d: unknown padding mode %v", pad))
	}

	out := tensor.MustNewRaw(tensor.Shape{batch, outH, outW, outC}, tensor.Float32)
	in, kd, od := input.AsFloat32(), kernel.AsFloat32(), out.AsFloat32()

	inRow := inW * inC
	inImg := inH * inRow
	kRow := kw * inC * outC
	kCol := inC * outC

	for n := 0; n < batch; n++ {
		for oy := 0; oy < outH; oy++ {
			iy0 := oy*stride - padTop
			for ox := 0; ox < outW; ox++ {
				ix0 := ox*stride - padLeft
				oBase := ((n*outH+oy)*outW + ox) * outC
				for ky := 0; ky < kh; ky++ {
					iy := iy0 + ky
					if iy < 0 || iy >= inH {
						continue
					}
					for kx := 0; kx < kw; kx++ {
						ix := ix0 + kx
						if ix < 0 || ix >= inW {
							continue
						}
						iBase := n*inImg + iy*inRow + ix*inC
						kBase := ky*kRow + kx*kCol
						for ci := 0; ci < inC; ci++ {
							iv := in[iBase+ci]
							if iv == 0 {
								continue
							}
							kOff := kBase + ci*outC
							for co := 0; co < outC; co++ {
								od[oBase+co] += iv * kd[kOff+co]
							}
						}
					}
				}
			}
		}
	}

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
