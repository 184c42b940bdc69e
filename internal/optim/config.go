package optim

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Hyperparameter defaults shared by all training entry points.
const (
	defaultAlpha     = 1e-3
	defaultBatchSize = 256
	defaultNumIters  = 2000
	defaultLogEvery  = 100
)

// Fixed algorithm constants.
const (
	gamma = 0.9   // momentum / RMSProp decay
	beta1 = 0.9   // Adam first-moment decay
	beta2 = 0.999 // Adam second-moment decay
	eps   = 1e-8  // keeps adaptive denominators away from zero
)

// Config holds the shared knobs of a training call. The zero value of
// each field selects its default.
type Config struct {
	// Alpha is the learning rate (default 1e-3).
	Alpha float64

	// BatchSize is the minibatch row count (default 256).
	BatchSize int

	// NumIters is the exact number of iterations to run (default
	// 2000). A negative value runs zero iterations and returns the
	// model untouched.
	NumIters int

	// LogEvery emits a progress line whenever the 1-based iteration
	// is a multiple of it (default 100). Negative disables logging.
	LogEvery int

	// RNG drives the shuffle and the minibatch draws. Nil means a
	// time-seeded source; inject a fixed seed for determinism.
	RNG *rand.Rand

	// Logger receives the progress lines (default
	// logrus.StandardLogger()).
	Logger logrus.FieldLogger
}

// withDefaults returns c with zero-valued fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Alpha == 0 {
		c.Alpha = defaultAlpha
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.NumIters == 0 {
		c.NumIters = defaultNumIters
	}
	if c.LogEvery == 0 {
		c.LogEvery = defaultLogEvery
	}
	if c.RNG == nil {
		c.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	return c
}
