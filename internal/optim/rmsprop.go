package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// rmspropRule:
//
//	c = gamma*c + (1-gamma)*g²
//	param -= alpha * g / (sqrt(c) + eps)
type rmspropRule struct {
	alpha float64
	cache params.Group
}

func (r rmspropRule) lookahead(m *nn.Model) *nn.Model { return m }

func (r rmspropRule) update(p, grad params.Group, _ int) {
	for k, g := range grad {
		c := params.Data(r.cache[k])
		pd := params.Data(p[k])
		for i, gi := range params.Data(g) {
			c[i] = expAvg(c[i], gi*gi, gamma)
			pd[i] -= r.alpha * gi / (math.Sqrt(c[i]) + eps)
		}
	}
}

// RMSProp trains the model like Adagrad but with an exponentially
// decaying average of squared gradients instead of a monotone sum, so
// effective step sizes track the recent gradient magnitude.
func RMSProp(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	rule := rmspropRule{alpha: cfg.Alpha, cache: params.ZerosLike(m.Params)}
	return run(step, m, x, y, cfg, rule)
}
