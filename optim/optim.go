// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/optim"
)

// Config holds the shared knobs of a training call. The zero value of
// each field selects its default: alpha 1e-3, batch size 256, 2000
// iterations, a progress line every 100 iterations, a time-seeded RNG
// and the logrus standard logger.
type Config = optim.Config

// SGD trains the model with plain stochastic gradient descent.
//
// Example:
//
//	model, err := optim.SGD(step, model, x, y, optim.Config{
//	    Alpha:    1e-3,
//	    NumIters: 2000,
//	})
func SGD(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.SGD(step, m, x, y, cfg)
}

// Momentum trains the model with classical momentum (decay 0.9).
func Momentum(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.Momentum(step, m, x, y, cfg)
}

// Nesterov trains the model with Nesterov-accelerated momentum: the
// gradient is evaluated at a lookahead snapshot shifted by
// gamma*velocity.
func Nesterov(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.Nesterov(step, m, x, y, cfg)
}

// Adagrad trains the model with per-coordinate learning rates from
// accumulated squared gradients.
func Adagrad(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.Adagrad(step, m, x, y, cfg)
}

// RMSProp trains the model with exponentially averaged squared
// gradients (decay 0.9).
func RMSProp(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.RMSProp(step, m, x, y, cfg)
}

// Adam trains the model with bias-corrected adaptive moment estimation
// (beta1 0.9, beta2 0.999).
func Adam(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	return optim.Adam(step, m, x, y, cfg)
}
