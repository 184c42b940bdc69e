// Package params provides the named parameter containers shared by the
// optimizers.
//
// A Group maps a layer or parameter name to its array. The same type is
// used for parameter sets, gradients and per-parameter optimizer state
// (velocity buffers, squared-gradient caches, moment estimates): all of
// them carry exactly the same key set and per-key shapes for the
// lifetime of one training call.
//
// Arrays are dense row-major matrices. Views with a detached stride are
// not supported.
package params

import (
	"gonum.org/v1/gonum/mat"
)

// Group maps a parameter name to its array.
type Group map[string]*mat.Dense

// ZerosLike returns a fresh Group with the same keys and shapes as g,
// every array zero-filled.
//
// Optimizer state starts from ZerosLike at the beginning of every
// training call, never carried over from a previous one.
func ZerosLike(g Group) Group {
	out := make(Group, len(g))
	for k, v := range g {
		r, c := v.Dims()
		out[k] = mat.NewDense(r, c, nil)
	}
	return out
}

// Clone returns a deep copy of g: same keys, independent arrays.
func Clone(g Group) Group {
	out := make(Group, len(g))
	for k, v := range g {
		out[k] = mat.DenseCopyOf(v)
	}
	return out
}

// EqualShapes reports whether other has exactly the same key set as g
// with matching per-key dimensions.
func (g Group) EqualShapes(other Group) bool {
	if len(g) != len(other) {
		return false
	}
	for k, v := range g {
		o, ok := other[k]
		if !ok {
			return false
		}
		vr, vc := v.Dims()
		or, oc := o.Dims()
		if vr != or || vc != oc {
			return false
		}
	}
	return true
}

// Data returns the backing slice of a dense matrix for element-wise
// kernels. The matrix must be contiguous, which holds for anything
// built with mat.NewDense or mat.DenseCopyOf.
func Data(m *mat.Dense) []float64 {
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		panic("params: matrix not contiguous")
	}
	return raw.Data
}
