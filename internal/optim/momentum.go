package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// momentumRule:
//
//	v = gamma*v + alpha*g
//	param -= v
type momentumRule struct {
	alpha    float64
	velocity params.Group
}

func (r momentumRule) lookahead(m *nn.Model) *nn.Model { return m }

func (r momentumRule) update(p, grad params.Group, _ int) {
	for k, g := range grad {
		v := params.Data(r.velocity[k])
		floats.Scale(gamma, v)
		floats.AddScaled(v, r.alpha, params.Data(g))
		floats.Sub(params.Data(p[k]), v)
	}
}

// Momentum trains the model with classical momentum. The velocity
// buffer starts at zero for every call.
func Momentum(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	rule := momentumRule{alpha: cfg.Alpha, velocity: params.ZerosLike(m.Params)}
	return run(step, m, x, y, cfg, rule)
}
