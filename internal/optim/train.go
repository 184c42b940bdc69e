package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/data"
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// updateRule is the per-algorithm piece of the shared training loop.
type updateRule interface {
	// lookahead returns the model the gradient oracle evaluates.
	// Every rule except Nesterov returns m itself.
	lookahead(m *nn.Model) *nn.Model

	// update applies one step to the parameter group in place. t is
	// the 1-based iteration counter (Adam's bias correction needs it).
	update(p, grad params.Group, t int)
}

// run is the training loop driver shared by the six entry points.
//
// The dataset is shuffled and partitioned exactly once; iterations then
// draw batches from that fixed partition uniformly at random, with
// replacement. No convergence check, no early stopping: exactly
// cfg.NumIters iterations, then the mutated model is returned.
func run(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config, rule updateRule) (*nn.Model, error) {
	batches, err := data.Minibatches(x, y, cfg.BatchSize, cfg.RNG)
	if err != nil {
		return nil, err
	}

	for t := 1; t <= cfg.NumIters; t++ {
		b := batches[cfg.RNG.Intn(len(batches))]

		grad, loss := step(rule.lookahead(m), b.X, b.Y)
		rule.update(m.Params, grad, t)

		if cfg.LogEvery > 0 && t%cfg.LogEvery == 0 {
			cfg.Logger.Infof("Iter-%d loss: %v", t, loss)
		}
	}
	return m, nil
}

// expAvg is the exponential running average recurrence used by RMSProp
// and Adam.
func expAvg(old, sample, decay float64) float64 {
	return decay*old + (1-decay)*sample
}
