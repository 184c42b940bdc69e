// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package params exposes the named parameter containers used throughout
// Descent: parameter sets, gradients and optimizer state are all a
// Group, a mapping from parameter name to a dense array.
package params

import (
	"github.com/descent-ml/descent/internal/params"
)

// Group maps a parameter name to its array.
type Group = params.Group

// ZerosLike returns a fresh Group with the same keys and shapes as g,
// every array zero-filled.
func ZerosLike(g Group) Group {
	return params.ZerosLike(g)
}

// Clone returns a deep copy of g: same keys, independent arrays.
func Clone(g Group) Group {
	return params.Clone(g)
}
