// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides minibatch first-order optimizers for training
// a model against labeled data.
//
// # Overview
//
// This package contains one training entry point per algorithm:
//   - SGD: plain stochastic gradient descent
//   - Momentum: classical momentum
//   - Nesterov: momentum with a lookahead gradient
//   - Adagrad: accumulated squared-gradient scaling
//   - RMSProp: exponentially averaged squared-gradient scaling
//   - Adam: bias-corrected moment estimation
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/nn"
//	    "github.com/descent-ml/descent/optim"
//	    "github.com/descent-ml/descent/params"
//	)
//
//	func main() {
//	    model := &nn.Model{Params: params.Group{"W": w, "b": b}}
//
//	    model, err := optim.Adam(trainStep, model, x, y, optim.Config{
//	        Alpha:     1e-3,
//	        BatchSize: 256,
//	        NumIters:  2000,
//	        LogEvery:  100,
//	    })
//	}
//
// # Training Loop
//
// Every entry point runs the same loop: the dataset is shuffled and
// partitioned into minibatches exactly once, then for NumIters
// iterations one minibatch is drawn uniformly at random (with
// replacement), the gradient oracle is invoked, and the algorithm's
// update rule mutates the parameter group in place. Progress lines of
// the form
//
//	Iter-100 loss: 0.3421
//
// are emitted through the configured logger.
//
// Training runs for the fixed iteration count: there is no convergence
// detection, learning-rate scheduling or checkpointing. Numeric
// divergence shows up only as NaN in the logged loss.
package optim
