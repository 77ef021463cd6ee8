// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the products and inverses.
//   • Keep all data finite and well conditioned unless a test says otherwise.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/glm/matrix"
	"github.com/katalvlaran/glm/vector"
)

// diag4 BUILDS the diagonal matrix diag(a, b, c, d).
func diag4[T float32 | float64 | int32](a, b, c, d T) matrix.Mat4[T] {
	return matrix.New4(
		vector.New4(a, 0, 0, 0),
		vector.New4(0, b, 0, 0),
		vector.New4(0, 0, c, 0),
		vector.New4(0, 0, 0, d),
	)
}

// wellConditioned4 RETURNS a diagonally dominant, non-symmetric 4×4 matrix.
// Its inverse is far from the identity, so the round trip exercises every
// cofactor.
func wellConditioned4[T float32 | float64]() matrix.Mat4[T] {
	return matrix.New4(
		vector.New4[T](4, 1, 0, 0.5),
		vector.New4[T](1, 5, 1, 0),
		vector.New4[T](0, 2, 6, 1),
		vector.New4[T](1, 2, 3, 7),
	)
}

// unitTriangular4 RETURNS an integer matrix with determinant 1, so its
// integer inverse is exact.
func unitTriangular4() matrix.Mat4[int32] {
	return matrix.New4(
		vector.New4[int32](1, 2, 3, 5),
		vector.New4[int32](0, 1, 4, 6),
		vector.New4[int32](0, 0, 1, 7),
		vector.New4[int32](0, 0, 0, 1),
	)
}

// toDense4 COPIES a column-major Mat4 into a row-major gonum Dense.
func toDense4(m matrix.DMat4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			d.Set(r, c, m.Elem(c, r))
		}
	}

	return d
}

// requirePanicIs asserts fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()

	var rec any
	func() {
		defer func() { rec = recover() }()
		fn()
	}()
	require.NotNil(t, rec, "expected panic")
	err, ok := rec.(error)
	require.True(t, ok, "panic value %T is not an error", rec)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}
