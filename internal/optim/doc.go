// Package optim implements minibatch first-order optimization of a
// model's parameter group against labeled training data.
//
// This package provides one training entry point per algorithm:
//   - SGD: plain stochastic gradient descent
//   - Momentum: classical momentum with a velocity buffer
//   - Nesterov: momentum with the gradient evaluated at a lookahead point
//   - Adagrad: per-coordinate learning rates from accumulated squared gradients
//   - RMSProp: exponentially averaged squared gradients
//   - Adam: bias-corrected first and second moment estimates
//
// All six share the same driver: shuffle and partition the dataset into
// minibatches once, then for a fixed number of iterations draw one
// minibatch uniformly at random (with replacement), ask the gradient
// oracle for a gradient and loss, and apply the algorithm's per-key
// update to the parameter group in place.
//
// Example usage:
//
//	model := &nn.Model{Params: params.Group{"w": w, "b": b}}
//
//	model, err := optim.Adam(trainStep, model, x, y, optim.Config{
//	    Alpha:     1e-3,
//	    BatchSize: 256,
//	    NumIters:  2000,
//	})
//
// Optimizer state (velocities, caches, moments) is allocated fresh at
// the start of every call and discarded at the end; nothing persists
// between calls except the parameters themselves.
package optim
