// Package data implements the minibatch sampler: one joint row shuffle
// of the labeled dataset, partitioned into fixed-size contiguous
// chunks.
package data

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Batch is one minibatch: a feature chunk and its labels, equal row
// count. Batches are independent copies and immutable once built.
type Batch struct {
	X *mat.Dense
	Y []int
}

// Shuffle jointly permutes the rows of x and the entries of y with a
// uniform random permutation, returning fresh copies. The input arrays
// are left untouched.
func Shuffle(x *mat.Dense, y []float64, rng *rand.Rand) (*mat.Dense, []float64) {
	n, cols := x.Dims()
	perm := rng.Perm(n)

	xs := mat.NewDense(n, cols, nil)
	ys := make([]float64, n)
	for i, p := range perm {
		xs.SetRow(i, x.RawRowView(p))
		ys[i] = y[p]
	}
	return xs, ys
}

// Minibatches shuffles the dataset once and slices it into contiguous
// chunks of size rows each; the final chunk is shorter when the row
// count is not a multiple of size. Every row appears in exactly one
// chunk. Labels are truncated to int.
func Minibatches(x *mat.Dense, y []float64, size int, rng *rand.Rand) ([]Batch, error) {
	n, cols := x.Dims()
	if n != len(y) {
		return nil, errors.Errorf("minibatch: feature rows (%d) and labels (%d) differ", n, len(y))
	}
	if size <= 0 {
		return nil, errors.Errorf("minibatch: non-positive size %d", size)
	}

	xs, ys := Shuffle(x, y, rng)

	batches := make([]Batch, 0, (n+size-1)/size)
	for i := 0; i < n; i += size {
		end := min(i+size, n)

		labels := make([]int, end-i)
		for j, v := range ys[i:end] {
			labels[j] = int(v)
		}

		batches = append(batches, Batch{
			X: mat.DenseCopyOf(xs.Slice(i, end, 0, cols)),
			Y: labels,
		})
	}
	return batches, nil
}
