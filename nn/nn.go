// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the model container and the gradient-oracle
// contract the optimizers consume.
//
// Descent does not define model architectures: callers own the forward
// and backward pass and hand the optimizers a TrainStep that computes a
// gradient group and a scalar loss for one minibatch.
//
// Example:
//
//	model := &nn.Model{
//	    Params: params.Group{"W": w, "b": b},
//	}
//
//	step := func(m *nn.Model, x *mat.Dense, y []int) (params.Group, float64) {
//	    // forward pass, loss, backward pass
//	    return grad, loss
//	}
package nn

import (
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// Model is a named parameter group plus the auxiliary cache structure
// the gradient oracle needs between forward and backward passes.
type Model = nn.Model

// TrainStep is the gradient oracle: it returns a gradient group with
// the same keys and shapes as the model's parameters, and the scalar
// minibatch loss.
type TrainStep = nn.TrainStep

// Lookahead builds the transient snapshot Nesterov momentum evaluates
// the gradient at. The cache map is shared shallowly with the real
// model; see the internal documentation for the oracle's obligations.
func Lookahead(m *Model, velocity params.Group, gamma float64) *Model {
	return nn.Lookahead(m, velocity, gamma)
}
