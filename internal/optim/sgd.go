package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// sgdRule: param -= alpha * g
type sgdRule struct {
	alpha float64
}

func (r sgdRule) lookahead(m *nn.Model) *nn.Model { return m }

func (r sgdRule) update(p, grad params.Group, _ int) {
	for k, g := range grad {
		floats.AddScaled(params.Data(p[k]), -r.alpha, params.Data(g))
	}
}

// SGD trains the model with plain stochastic gradient descent.
//
// The model is mutated in place and returned.
func SGD(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	return run(step, m, x, y, cfg, sgdRule{alpha: cfg.Alpha})
}
