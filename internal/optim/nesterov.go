package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// nesterovRule is momentum with the gradient evaluated at the lookahead
// point param + gamma*v instead of at the current parameters. The
// update applied to the real parameters is identical to momentumRule.
type nesterovRule struct {
	alpha    float64
	velocity params.Group
}

func (r nesterovRule) lookahead(m *nn.Model) *nn.Model {
	return nn.Lookahead(m, r.velocity, gamma)
}

func (r nesterovRule) update(p, grad params.Group, _ int) {
	for k, g := range grad {
		v := params.Data(r.velocity[k])
		floats.Scale(gamma, v)
		floats.AddScaled(v, r.alpha, params.Data(g))
		floats.Sub(params.Data(p[k]), v)
	}
}

// Nesterov trains the model with Nesterov-accelerated momentum.
//
// Each iteration the gradient oracle sees a transient snapshot shifted
// by gamma*velocity; the real parameters are only touched by the
// momentum update itself. See nn.Lookahead for the cache-sharing
// contract the oracle must honor.
func Nesterov(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	rule := nesterovRule{alpha: cfg.Alpha, velocity: params.ZerosLike(m.Params)}
	return run(step, m, x, y, cfg, rule)
}
