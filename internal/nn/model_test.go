package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/params"
)

func TestLookahead_OffsetsParameters(t *testing.T) {
	m := &nn.Model{
		Params: params.Group{
			"w": mat.NewDense(1, 2, []float64{1, 2}),
		},
	}
	velocity := params.Group{
		"w": mat.NewDense(1, 2, []float64{10, 20}),
	}

	ahead := nn.Lookahead(m, velocity, 0.9)

	// ahead = param + gamma*velocity
	assert.InDelta(t, 1+0.9*10, ahead.Params["w"].At(0, 0), 1e-12)
	assert.InDelta(t, 2+0.9*20, ahead.Params["w"].At(0, 1), 1e-12)

	// The real model must be untouched, and the snapshot must own its
	// arrays.
	assert.Equal(t, 1.0, m.Params["w"].At(0, 0))
	ahead.Params["w"].Set(0, 0, -5)
	assert.Equal(t, 1.0, m.Params["w"].At(0, 0))
}

func TestLookahead_SharesCacheValuesShallowly(t *testing.T) {
	shared := &struct{ hits int }{}
	m := &nn.Model{
		Params: params.Group{"w": mat.NewDense(1, 1, []float64{1})},
		Caches: map[string]any{"conv1": shared},
	}
	velocity := params.ZerosLike(m.Params)

	ahead := nn.Lookahead(m, velocity, 0.9)

	// Same cache values, different map.
	require.Same(t, shared, ahead.Caches["conv1"])
	ahead.Caches["extra"] = 1
	assert.Len(t, m.Caches, 1)
}

func TestLookahead_NilCaches(t *testing.T) {
	m := &nn.Model{Params: params.Group{"w": mat.NewDense(1, 1, []float64{1})}}

	ahead := nn.Lookahead(m, params.ZerosLike(m.Params), 0.9)
	assert.Nil(t, ahead.Caches)
}
