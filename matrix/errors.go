// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Checked entry points (TryInverse2/3/4, Validate*) return these,
// wrapped with an operation tag; tests match them via errors.Is.
// Index violations are programmer errors and panic with an error wrapping
// ErrOutOfRange. The unchecked kernels never report errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with matrixErrorf at the
// outer boundary; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// NaN/Inf -> singular -> not unimodular (integers).

var (
	// ErrOutOfRange indicates that a column or row index is outside [0, N).
	// Indexers panic with an error wrapping it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a foreign matrix whose shape does not
	// match the fixed order requested (see the interop package).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf element where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by checked inversion when the determinant is
	// zero or non-finite, or (floats) small within eps.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotUnimodular is returned by checked inversion of an integer matrix
	// whose determinant is not ±1; its inverse has no integer representation.
	ErrNotUnimodular = errors.New("matrix: integer matrix not unimodular")
)

// checkIndex panics unless 0 <= i < n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s(%d) with len %d: %w", op, i, n, ErrOutOfRange))
	}
}
