// Package nn defines the model container and the gradient-oracle
// contract consumed by the optimizers.
//
// The forward/backward pass itself lives outside this module: callers
// supply a TrainStep that computes the gradient and loss for one
// minibatch. The optimizers never look inside Caches.
package nn

import (
	"maps"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/params"
)

// Model is what the optimizers train: a named parameter group plus
// whatever auxiliary cache structure the gradient oracle needs between
// forward and backward passes.
//
// The parameter group is mutated in place across iterations; the model
// returned by a training call is the same object that went in.
type Model struct {
	Params params.Group
	Caches map[string]any
}

// TrainStep is the gradient oracle. Given the current model and one
// minibatch it returns a gradient group (same keys and shapes as
// m.Params) and the scalar minibatch loss.
type TrainStep func(m *Model, x *mat.Dense, y []int) (params.Group, float64)

// Lookahead builds the transient snapshot Nesterov momentum evaluates
// the gradient at: a deep copy of the parameters shifted by
// gamma*velocity per key.
//
// The cache map is copied shallowly, so the snapshot shares the cache
// values with the real model. The oracle must treat cache entries as
// read-only or rebuild them per call for this sharing to be safe.
func Lookahead(m *Model, velocity params.Group, gamma float64) *Model {
	ahead := params.Clone(m.Params)
	for k, v := range velocity {
		floats.AddScaled(params.Data(ahead[k]), gamma, params.Data(v))
	}
	return &Model{Params: ahead, Caches: maps.Clone(m.Caches)}
}
