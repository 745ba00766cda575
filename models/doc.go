// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package models provides the catalog of network architectures used as
// policy and value function approximators.
//
// Architectures are looked up by name:
//
//	builder, err := models.GetNetworkBuilder("cnn")
//	if err != nil {
//	    return err
//	}
//	network := builder.Build()
//	latent, state := network(obs, nenv)
//
// A Builder is a configuration struct; Build returns a NetworkFn that
// maps an observation batch to a latent feature batch. Feedforward
// networks return a nil recurrent state. Recurrent networks return a
// RecurrentState that the caller threads between invocations: write the
// episode-boundary mask and the carried state into Mask and State, read
// the updated state from NewState, and reset with InitialState at the
// start of a rollout.
//
// Weights are created on the first invocation, once the observation
// shape is known, and reused on every subsequent invocation. A
// NetworkFn is therefore stateful and not safe for concurrent use.
//
// The available names are cnn, cnn_small, conv_only, mlp, lstm,
// cnn_lstm and cnn_lnlstm. To tune an architecture's knobs, construct
// its Builder struct directly instead of going through the registry:
//
//	network := (&models.CNNLSTM{NLSTM: 256}).Build()
package models
