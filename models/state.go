// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package models

import "github.com/reframe-rl/reframe/tensor"

// RecurrentState is the recurrent plumbing of a NetworkFn.
//
// The network creates it zero-filled on its first invocation, which
// fixes the batch geometry (nbatch and nenv); later invocations must
// use the same geometry. Mask and State are input slots: before each
// invocation the caller writes the episode-boundary mask and the
// carried state into their backing data (via Data()). The network reads
// them, produces NewState, and leaves Mask and State untouched, so the
// caller decides what to carry forward.
//
//	Mask:         [nbatch]          1 where the previous step ended an
//	                                episode, 0 otherwise
//	State:        [nenv, 2*hidden]  carried state read by the network,
//	                                cell state then hidden state
//	NewState:     [nenv, 2*hidden]  state after the latest invocation
//	InitialState: [nenv, 2*hidden]  all zeros, for rollout resets
type RecurrentState struct {
	Mask         *tensor.Tensor
	State        *tensor.Tensor
	NewState     *tensor.Tensor
	InitialState *tensor.Tensor
}
