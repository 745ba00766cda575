// Copyright 2026 Reframe RL. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/reframe-rl/reframe/tensor"
)

// ErrUnknownNetwork is returned by GetNetworkBuilder for names that are
// not in the catalog.
var ErrUnknownNetwork = errors.New("models: unknown network type")

// NetworkFn maps an observation batch to a latent feature batch.
//
// x is [nbatch, ...] with nbatch = nenv*nsteps for recurrent networks.
// Feedforward networks ignore nenv and return a nil state. The returned
// state, when non-nil, is the same RecurrentState on every invocation;
// see its documentation for the threading protocol.
type NetworkFn func(x *tensor.Tensor, nenv int) (*tensor.Tensor, *RecurrentState)

// Builder configures a network architecture. Build returns a fresh
// NetworkFn with its own (lazily created) weights.
type Builder interface {
	Build() NetworkFn
}

var registry = map[string]func() Builder{
	"cnn":        func() Builder { return &CNN{} },
	"cnn_small":  func() Builder { return &CNNSmall{} },
	"conv_only":  func() Builder { return &ConvOnly{} },
	"mlp":        func() Builder { return &MLP{} },
	"lstm":       func() Builder { return &LSTM{} },
	"cnn_lstm":   func() Builder { return &CNNLSTM{} },
	"cnn_lnlstm": func() Builder { return &CNNLSTM{LayerNorm: true} },
}

// GetNetworkBuilder returns the named architecture's builder with its
// default configuration, or ErrUnknownNetwork.
func GetNetworkBuilder(name string) (Builder, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return factory(), nil
}

// Names returns the catalog's network names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
