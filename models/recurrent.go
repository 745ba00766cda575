// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package models

import (
	"fmt"

	"github.com/reframe-rl/reframe/nn"
	"github.com/reframe-rl/reframe/tensor"
)

// DefaultNLSTM is the hidden width used when a recurrent builder's
// NLSTM field is left zero.
const DefaultNLSTM = 128

// LSTM builds a recurrent network directly over flattened observations.
// The batch is env-major [nenv*nsteps, ...]; each invocation runs the
// cell over all nsteps, resetting the carried state where the mask
// marks an episode boundary.
type LSTM struct {
	NLSTM     int
	LayerNorm bool
}

// Build returns the network function.
func (l *LSTM) Build() NetworkFn {
	rec := newRecurrent("lstm", l.NLSTM, l.LayerNorm)
	return func(x *tensor.Tensor, nenv int) (*tensor.Tensor, *RecurrentState) {
		h := flattenBatch("lstm", x)
		return rec.forward(h, nenv)
	}
}

// CNNLSTM builds the deep Q-network convolutional trunk followed by an
// LSTM over the 512-feature latents. With LayerNorm set the cell is
// layer-normalized; the catalog registers that variant as cnn_lnlstm.
type CNNLSTM struct {
	NLSTM     int
	LayerNorm bool
}

// Build returns the network function.
func (c *CNNLSTM) Build() NetworkFn {
	net := &natureCNN{}
	rec := newRecurrent("cnn_lstm", c.NLSTM, c.LayerNorm)
	return func(x *tensor.Tensor, nenv int) (*tensor.Tensor, *RecurrentState) {
		h := net.forward("cnn_lstm", x)
		return rec.forward(h, nenv)
	}
}

// recurrent wraps an LSTM cell with the batch geometry bookkeeping
// shared by the recurrent builders: env-major batch splitting, lazy
// cell creation and the RecurrentState protocol.
type recurrent struct {
	name      string
	hidden    int
	layerNorm bool

	cell  *nn.LSTM
	state *RecurrentState
}

func newRecurrent(name string, hidden int, layerNorm bool) *recurrent {
	if hidden <= 0 {
		hidden = DefaultNLSTM
	}
	return &recurrent{name: name, hidden: hidden, layerNorm: layerNorm}
}

func (r *recurrent) forward(h *tensor.Tensor, nenv int) (*tensor.Tensor, *RecurrentState) {
	if nenv <= 0 {
		panic(fmt.Sprintf("%s: invalid nenv %d", r.name, nenv))
	}
	nbatch := h.Shape()[0]
	if nbatch%nenv != 0 {
		panic(fmt.Sprintf("%s: batch size %d not divisible by nenv %d", r.name, nbatch, nenv))
	}
	nsteps := nbatch / nenv

	backend := h.Backend()
	if r.cell == nil {
		if r.layerNorm {
			r.cell = nn.NewLNLSTM(h.Shape()[1], r.hidden, nn.DefaultInitScale, backend)
		} else {
			r.cell = nn.NewLSTM(h.Shape()[1], r.hidden, nn.DefaultInitScale, backend)
		}
		r.state = &RecurrentState{
			Mask:         tensor.Zeros(tensor.Shape{nbatch}, backend),
			State:        tensor.Zeros(tensor.Shape{nenv, r.cell.StateSize()}, backend),
			InitialState: tensor.Zeros(tensor.Shape{nenv, r.cell.StateSize()}, backend),
		}
	}

	// The first invocation fixes the batch geometry.
	if !r.state.Mask.Shape().Equal(tensor.Shape{nbatch}) {
		panic(fmt.Sprintf("%s: batch size changed from %d to %d", r.name, r.state.Mask.Shape()[0], nbatch))
	}
	if r.state.State.Shape()[0] != nenv {
		panic(fmt.Sprintf("%s: nenv changed from %d to %d", r.name, r.state.State.Shape()[0], nenv))
	}

	xs := nn.BatchToSeq(h, nenv, nsteps)
	masks := nn.BatchToSeq(r.state.Mask, nenv, nsteps)

	outputs, final := r.cell.Scan(xs, masks, r.state.State)
	r.state.NewState = final

	return nn.SeqToBatch(outputs), r.state
}
