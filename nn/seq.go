// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/reframe-rl/reframe/tensor"
)

// BatchToSeq splits an env-major flat batch into per-step slices.
//
// The input is [nenv*nsteps, features] (or [nenv*nsteps] for masks),
// laid out so that all steps of environment 0 come first, then all
// steps of environment 1, and so on. The result is nsteps tensors of
// shape [nenv, features]; 1D input yields [nenv, 1] slices.
func BatchToSeq(x *tensor.Tensor, nenv, nsteps int) []*tensor.Tensor {
	shape := x.Shape()
	if len(shape) != 1 && len(shape) != 2 {
		panic(fmt.Sprintf("batch_to_seq: 1D or 2D input required, got %v", shape))
	}
	if nenv <= 0 || nsteps <= 0 {
		panic(fmt.Sprintf("batch_to_seq: invalid nenv=%d, nsteps=%d", nenv, nsteps))
	}
	if shape[0] != nenv*nsteps {
		panic(fmt.Sprintf("batch_to_seq: batch size %d != nenv %d * nsteps %d", shape[0], nenv, nsteps))
	}

	features := 1
	if len(shape) == 2 {
		features = shape[1]
	}

	chunks := x.Reshape(nenv, nsteps, features).Chunk(nsteps, 1)
	steps := make([]*tensor.Tensor, nsteps)
	for i, c := range chunks {
		steps[i] = c.Reshape(nenv, features)
	}
	return steps
}

// SeqToBatch merges per-step [nenv, features] slices back into an
// env-major flat batch of shape [nenv*nsteps, features]. Inverse of
// BatchToSeq for 2D input.
func SeqToBatch(steps []*tensor.Tensor) *tensor.Tensor {
	if len(steps) == 0 {
		panic("seq_to_batch: at least one step required")
	}

	first := steps[0].Shape()
	if len(first) != 2 {
		panic(fmt.Sprintf("seq_to_batch: 2D steps required, got %v", first))
	}
	nenv, features := first[0], first[1]

	expanded := make([]*tensor.Tensor, len(steps))
	for i, s := range steps {
		if !s.Shape().Equal(first) {
			panic(fmt.Sprintf("seq_to_batch: step %d has shape %v, expected %v", i, s.Shape(), first))
		}
		expanded[i] = s.Reshape(nenv, 1, features)
	}

	return tensor.Cat(expanded, 1).Reshape(nenv*len(steps), features)
}
