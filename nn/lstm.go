// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

const lnEpsilon = 1e-5

// LSTM is a long short-term memory cell run over per-step batches.
//
// The carried state is [nenv, 2*hidden]: the cell state c concatenated
// with the hidden state h. Each step takes an episode-boundary mask
// [nenv, 1] that zeroes the carried state where an episode restarted
// (mask 1 = the previous step was terminal).
//
// Step computation:
//
//	c, h  = split(state);  c *= (1-m);  h *= (1-m)
//	z     = x@wx + h@wh + b
//	i,f,o = sigmoid(split(z));  u = tanh(split(z))
//	c'    = f*c + i*u
//	h'    = o * tanh(c')
//
// The layer-normalized variant (NewLNLSTM) normalizes x@wx and h@wh
// with separate gain/bias pairs and normalizes c' before the output
// tanh, stabilizing the recurrent dynamics.
type LSTM struct {
	inFeatures int
	hidden     int
	layerNorm  bool

	wx *Parameter // [in_features, 4*hidden]
	wh *Parameter // [hidden, 4*hidden]
	b  *Parameter // [4*hidden]

	// layer-norm parameters, nil unless layerNorm
	gainX, biasX *Parameter // over x@wx
	gainH, biasH *Parameter // over h@wh
	gainC, biasC *Parameter // over the cell state
}

// NewLSTM creates an LSTM cell with orthogonal weight init.
func NewLSTM(inFeatures, hidden int, initScale float32, backend tensor.Backend) *LSTM {
	return newLSTM(inFeatures, hidden, initScale, false, backend)
}

// NewLNLSTM creates a layer-normalized LSTM cell.
func NewLNLSTM(inFeatures, hidden int, initScale float32, backend tensor.Backend) *LSTM {
	return newLSTM(inFeatures, hidden, initScale, true, backend)
}

func newLSTM(inFeatures, hidden int, initScale float32, layerNorm bool, backend tensor.Backend) *LSTM {
	if inFeatures <= 0 || hidden <= 0 {
		panic(fmt.Sprintf("lstm: invalid sizes in=%d, hidden=%d", inFeatures, hidden))
	}

	l := &LSTM{
		inFeatures: inFeatures,
		hidden:     hidden,
		layerNorm:  layerNorm,
		wx:         NewParameter("wx", Orthogonal(initScale, tensor.Shape{inFeatures, 4 * hidden}, backend)),
		wh:         NewParameter("wh", Orthogonal(initScale, tensor.Shape{hidden, 4 * hidden}, backend)),
		b:          NewParameter("b", Zeros(tensor.Shape{4 * hidden}, backend)),
	}

	if layerNorm {
		l.gainX = NewParameter("gx", Ones(tensor.Shape{4 * hidden}, backend))
		l.biasX = NewParameter("bx", Zeros(tensor.Shape{4 * hidden}, backend))
		l.gainH = NewParameter("gh", Ones(tensor.Shape{4 * hidden}, backend))
		l.biasH = NewParameter("bh", Zeros(tensor.Shape{4 * hidden}, backend))
		l.gainC = NewParameter("gc", Ones(tensor.Shape{hidden}, backend))
		l.biasC = NewParameter("bc", Zeros(tensor.Shape{hidden}, backend))
	}

	return l
}

// StateSize returns the width of the carried state vector per
// environment: 2*hidden (cell state and hidden state).
func (l *LSTM) StateSize() int {
	return 2 * l.hidden
}

// Hidden returns the hidden width.
func (l *LSTM) Hidden() int {
	return l.hidden
}

// LayerNorm reports whether this is the layer-normalized variant.
func (l *LSTM) LayerNorm() bool {
	return l.layerNorm
}

// Step advances the cell by one step.
//
// x:     [nenv, in_features]
// mask:  [nenv, 1] (or [nenv]) episode-boundary mask
// state: [nenv, 2*hidden]
//
// Returns the step output h' [nenv, hidden] and the new state
// [nenv, 2*hidden].
func (l *LSTM) Step(x, mask, state *tensor.Tensor) (*tensor.Tensor, *tensor.Tensor) {
	nenv := l.checkStep(x, mask, state)
	if len(mask.Shape()) == 1 {
		mask = mask.Reshape(nenv, 1)
	}

	parts := state.Chunk(2, 1)
	c, h := parts[0], parts[1]

	keep := mask.MulScalar(-1).AddScalar(1)
	c = c.Mul(keep)
	h = h.Mul(keep)

	var z *tensor.Tensor
	if l.layerNorm {
		xz := normalizeLast(x.MatMul(l.wx.Tensor()), l.gainX.Tensor(), l.biasX.Tensor(), lnEpsilon)
		hz := normalizeLast(h.MatMul(l.wh.Tensor()), l.gainH.Tensor(), l.biasH.Tensor(), lnEpsilon)
		z = xz.Add(hz).Add(l.b.Tensor())
	} else {
		z = x.MatMul(l.wx.Tensor()).Add(h.MatMul(l.wh.Tensor())).Add(l.b.Tensor())
	}

	gates := z.Chunk(4, 1)
	in := gates[0].Sigmoid()
	forget := gates[1].Sigmoid()
	out := gates[2].Sigmoid()
	update := gates[3].Tanh()

	cNew := forget.Mul(c).Add(in.Mul(update))

	ct := cNew
	if l.layerNorm {
		ct = normalizeLast(cNew, l.gainC.Tensor(), l.biasC.Tensor(), lnEpsilon)
	}
	hNew := out.Mul(ct.Tanh())

	return hNew, tensor.Cat([]*tensor.Tensor{cNew, hNew}, 1)
}

// Scan runs the cell across a sequence of per-step batches, as produced
// by BatchToSeq, threading the state through every step. Returns the
// per-step outputs and the final state.
func (l *LSTM) Scan(xs, masks []*tensor.Tensor, state *tensor.Tensor) ([]*tensor.Tensor, *tensor.Tensor) {
	if len(xs) != len(masks) {
		panic(fmt.Sprintf("lstm: %d input steps but %d mask steps", len(xs), len(masks)))
	}

	outputs := make([]*tensor.Tensor, len(xs))
	for t := range xs {
		outputs[t], state = l.Step(xs[t], masks[t], state)
	}
	return outputs, state
}

// Parameters returns all trainable parameters.
func (l *LSTM) Parameters() []*Parameter {
	params := []*Parameter{l.wx, l.wh, l.b}
	if l.layerNorm {
		params = append(params, l.gainX, l.biasX, l.gainH, l.biasH, l.gainC, l.biasC)
	}
	return params
}

func (l *LSTM) checkStep(x, mask, state *tensor.Tensor) int {
	xShape := x.Shape()
	if len(xShape) != 2 || xShape[1] != l.inFeatures {
		panic(fmt.Sprintf("lstm: input shape %v, expected [nenv, %d]", xShape, l.inFeatures))
	}
	nenv := xShape[0]

	mShape := mask.Shape()
	if !(mShape.Equal(tensor.Shape{nenv}) || mShape.Equal(tensor.Shape{nenv, 1})) {
		panic(fmt.Sprintf("lstm: mask shape %v, expected [%d] or [%d, 1]", mShape, nenv, nenv))
	}

	sShape := state.Shape()
	if !sShape.Equal(tensor.Shape{nenv, 2 * l.hidden}) {
		panic(fmt.Sprintf("lstm: state shape %v, expected [%d, %d]", sShape, nenv, 2*l.hidden))
	}

	return nenv
}

// String returns a string representation of the cell.
func (l *LSTM) String() string {
	kind := "LSTM"
	if l.layerNorm {
		kind = "LNLSTM"
	}
	return fmt.Sprintf("%s(in_features=%d, hidden=%d)", kind, l.inFeatures, l.hidden)
}
