package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

// adamRule:
//
//	M = beta1*M + (1-beta1)*g
//	R = beta2*R + (1-beta2)*g²
//	M_hat = M / (1 - beta1^t)
//	R_hat = R / (1 - beta2^t)
//	param -= alpha * M_hat / (sqrt(R_hat) + eps)
//
// The bias correction divides out the pull toward zero that the
// zero-initialized moments have in early iterations: at t=1 the
// corrected estimates equal the raw gradient and its square exactly.
//
// Reference: "Adam: A Method for Stochastic Optimization"
// (Kingma & Ba, 2014).
type adamRule struct {
	alpha   float64
	moment1 params.Group
	moment2 params.Group
}

func (r adamRule) lookahead(m *nn.Model) *nn.Model { return m }

func (r adamRule) update(p, grad params.Group, t int) {
	correction1 := 1 - math.Pow(beta1, float64(t))
	correction2 := 1 - math.Pow(beta2, float64(t))

	for k, g := range grad {
		m1 := params.Data(r.moment1[k])
		m2 := params.Data(r.moment2[k])
		pd := params.Data(p[k])
		for i, gi := range params.Data(g) {
			m1[i] = expAvg(m1[i], gi, beta1)
			m2[i] = expAvg(m2[i], gi*gi, beta2)

			mHat := m1[i] / correction1
			rHat := m2[i] / correction2

			pd[i] -= r.alpha * mHat / (math.Sqrt(rHat) + eps)
		}
	}
}

// Adam trains the model with bias-corrected adaptive moment estimation.
// Both moment buffers start at zero for every call.
func Adam(step nn.TrainStep, m *nn.Model, x *mat.Dense, y []float64, cfg Config) (*nn.Model, error) {
	cfg = cfg.withDefaults()
	rule := adamRule{
		alpha:   cfg.Alpha,
		moment1: params.ZerosLike(m.Params),
		moment2: params.ZerosLike(m.Params),
	}
	return run(step, m, x, y, cfg, rule)
}
