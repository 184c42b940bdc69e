package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// adagradRule:
//
//	c += g²
//	param -= alpha * g / (sqrt(c) + eps)
type adagradRule struct {
	alpha float64
	cache params.Group
}

func (r adagradRule) lookahead(m *nn.Model) *nn.Model { return m }

func (r adagradRule) update(p, grad params.Group, _ int) {
	for k, g := range grad {
		c := params.Data(r.cache[k])
		pd := params.Data(p[k])
		for i, gi := range params.Data(g) {
			c[i] += gi * gi
			pd[i] -= r.alpha * gi / (math.Sqrt(c[i]) + eps)
		}
	}
}

// Adagrad trains the model with per-coordinate learning rates scaled by
// the accumulated squared gradients. The cache starts at zero for every
// call and only ever grows, so effective step sizes shrink over the
// course of a call.
func Adagrad(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	rule := adagradRule{alpha: cfg.Alpha, cache: params.ZerosLike(m.Params)}
	return run(step, m, x, y, cfg, rule)
}
