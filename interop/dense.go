// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/glm/matrix"
	"github.com/katalvlaran/glm/scalar"
)

// Operation tags used in wrapped errors.
const (
	opFromDense2 = "FromDense2"
	opFromDense3 = "FromDense3"
	opFromDense4 = "FromDense4"
)

// toDense copies the n×n column-major elements s into a new row-major Dense.
func toDense[T scalar.Scalar](s []T, n int) *mat.Dense {
	data := make([]float64, n*n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			data[r*n+c] = float64(s[c*n+r])
		}
	}

	return mat.NewDense(n, n, data)
}

// fromMatrix copies the n×n matrix a into the column-major elements dst.
//
// Errors:
//   - matrix.ErrDimensionMismatch (wrapped with tag) if a is not n×n.
func fromMatrix[T scalar.Scalar](tag string, a mat.Matrix, n int, dst []T) error {
	if a == nil {
		return fmt.Errorf("%s: nil matrix: %w", tag, matrix.ErrDimensionMismatch)
	}
	if r, c := a.Dims(); r != n || c != n {
		return fmt.Errorf("%s: got %d×%d, want %d×%d: %w", tag, r, c, n, n, matrix.ErrDimensionMismatch)
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			dst[c*n+r] = T(a.At(r, c))
		}
	}

	return nil
}

// ToDense2 copies m into a new 2×2 *mat.Dense.
func ToDense2[T scalar.Scalar](m matrix.Mat2[T]) *mat.Dense { return toDense(m.Slice(), 2) }

// ToDense3 copies m into a new 3×3 *mat.Dense.
func ToDense3[T scalar.Scalar](m matrix.Mat3[T]) *mat.Dense { return toDense(m.Slice(), 3) }

// ToDense4 copies m into a new 4×4 *mat.Dense.
func ToDense4[T scalar.Scalar](m matrix.Mat4[T]) *mat.Dense { return toDense(m.Slice(), 4) }

// FromDense2 copies a 2×2 gonum matrix into a Mat2.
func FromDense2[T scalar.Scalar](a mat.Matrix) (matrix.Mat2[T], error) {
	var m matrix.Mat2[T]
	if err := fromMatrix(opFromDense2, a, 2, m.Slice()); err != nil {
		return matrix.Mat2[T]{}, err
	}

	return m, nil
}

// FromDense3 copies a 3×3 gonum matrix into a Mat3.
func FromDense3[T scalar.Scalar](a mat.Matrix) (matrix.Mat3[T], error) {
	var m matrix.Mat3[T]
	if err := fromMatrix(opFromDense3, a, 3, m.Slice()); err != nil {
		return matrix.Mat3[T]{}, err
	}

	return m, nil
}

// FromDense4 copies a 4×4 gonum matrix into a Mat4.
//
// Errors:
//   - matrix.ErrDimensionMismatch if a is nil or not 4×4.
func FromDense4[T scalar.Scalar](a mat.Matrix) (matrix.Mat4[T], error) {
	var m matrix.Mat4[T]
	if err := fromMatrix(opFromDense4, a, 4, m.Slice()); err != nil {
		return matrix.Mat4[T]{}, err
	}

	return m, nil
}

// Matrix4 adapts a *matrix.Mat4 to mat.Matrix. Reads go straight to the
// underlying matrix, so later writes to it are visible through the adapter.
type Matrix4[E scalar.Scalar] struct {
	M *matrix.Mat4[E]
}

var _ mat.Matrix = Matrix4[float32]{}

// NewMatrix4 returns an adapter reading m.
func NewMatrix4[E scalar.Scalar](m *matrix.Mat4[E]) Matrix4[E] { return Matrix4[E]{M: m} }

// Dims returns 4, 4.
func (a Matrix4[E]) Dims() (r, c int) { return 4, 4 }

// At returns the element in row i, column j, panicking like gonum's own
// types when an index is out of range.
func (a Matrix4[E]) At(i, j int) float64 {
	if uint(i) >= 4 {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= 4 {
		panic(mat.ErrColAccess)
	}

	return float64(a.M.Cols[j].At(i))
}

// T returns the transpose view.
func (a Matrix4[E]) T() mat.Matrix { return mat.Transpose{Matrix: a} }
