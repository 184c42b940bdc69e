// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data exposes the minibatch sampler: a single joint row
// shuffle of the labeled dataset, partitioned into fixed-size
// contiguous chunks.
package data

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/data"
)

// Batch is one minibatch: a feature chunk and its integer labels.
type Batch = data.Batch

// Shuffle jointly permutes the rows of x and the entries of y,
// returning fresh copies.
func Shuffle(x *mat.Dense, y []float64, rng *rand.Rand) (*mat.Dense, []float64) {
	return data.Shuffle(x, y, rng)
}

// Minibatches shuffles the dataset once and slices it into contiguous
// chunks of size rows each; the final chunk may be shorter. Labels are
// truncated to int.
func Minibatches(x *mat.Dense, y []float64, size int, rng *rand.Rand) ([]Batch, error) {
	return data.Minibatches(x, y, size, rng)
}
