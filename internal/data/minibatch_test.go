package data_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/descent-ml/descent/internal/data"
)

// indexedData builds n rows where row i carries the marker value i in
// its first column and label i, so shuffles and partitions can be
// traced back to original rows.
func indexedData(n int) (*mat.Dense, []float64) {
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, float64(10*i))
		y[i] = float64(i)
	}
	return x, y
}

func TestMinibatches_PartitionSizes(t *testing.T) {
	x, y := indexedData(10)

	batches, err := data.Minibatches(x, y, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, batches, 3)

	var sizes []int
	for _, b := range batches {
		rows, _ := b.X.Dims()
		require.Len(t, b.Y, rows)
		sizes = append(sizes, rows)
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
}

func TestMinibatches_CoversEveryRowOnce(t *testing.T) {
	x, y := indexedData(10)

	batches, err := data.Minibatches(x, y, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	var seen []int
	for _, b := range batches {
		rows, _ := b.X.Dims()
		for i := 0; i < rows; i++ {
			marker := int(b.X.At(i, 0))
			// Features and label of a row travel together.
			assert.Equal(t, marker, b.Y[i])
			assert.Equal(t, float64(10*marker), b.X.At(i, 1))
			seen = append(seen, marker)
		}
	}

	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
}

func TestMinibatches_LabelTruncation(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{0, 1})
	y := []float64{2.9, -1.2}

	batches, err := data.Minibatches(x, y, 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, batches, 1)

	labels := append([]int(nil), batches[0].Y...)
	sort.Ints(labels)
	assert.Equal(t, []int{-1, 2}, labels)
}

func TestMinibatches_RowMismatch(t *testing.T) {
	x := mat.NewDense(3, 1, nil)

	_, err := data.Minibatches(x, []float64{0, 1}, 2, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestMinibatches_NonPositiveSize(t *testing.T) {
	x, y := indexedData(4)

	_, err := data.Minibatches(x, y, 0, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestShuffle_IsSeededPermutation(t *testing.T) {
	x, y := indexedData(20)

	x1, y1 := data.Shuffle(x, y, rand.New(rand.NewSource(7)))
	x2, y2 := data.Shuffle(x, y, rand.New(rand.NewSource(7)))

	assert.Equal(t, y1, y2, "same seed must give the same permutation")
	assert.True(t, mat.Equal(x1, x2))

	// Inputs untouched, outputs a permutation with pairing intact.
	assert.Equal(t, 0.0, x.At(0, 0))
	var seen []int
	for i := range y1 {
		assert.Equal(t, y1[i], x1.At(i, 0))
		seen = append(seen, int(y1[i]))
	}
	sort.Ints(seen)
	for i, v := range seen {
		assert.Equal(t, i, v)
	}
}
