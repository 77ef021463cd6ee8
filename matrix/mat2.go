// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// Mat2 is a 2×2 column-major matrix: Cols[c] is column c and Cols[c].Y is
// the element in row 1 of that column. The zero value is the zero matrix;
// use Identity2 or Default2 for the identity.
type Mat2[T scalar.Scalar] struct {
	Cols [2]vector.Vec2[T]
}

// New2 builds a matrix from its columns.
func New2[T scalar.Scalar](c0, c1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{Cols: [2]vector.Vec2[T]{c0, c1}}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T scalar.Scalar]() Mat2[T] {
	var m Mat2[T]
	for i := 0; i < 2; i++ {
		m.Cols[i].Set(i, scalar.One[T]())
	}

	return m
}

// Default2 returns the identity, the neutral element of Mul.
func Default2[T scalar.Scalar]() Mat2[T] { return Identity2[T]() }

// Len returns the number of columns, 2.
func (m Mat2[T]) Len() int { return 2 }

// At returns column c. It panics unless 0 <= c < 2.
func (m Mat2[T]) At(c int) vector.Vec2[T] {
	checkIndex("Mat2.At", c, 2)

	return m.Cols[c]
}

// Set replaces column c. It panics unless 0 <= c < 2.
func (m *Mat2[T]) Set(c int, col vector.Vec2[T]) {
	checkIndex("Mat2.Set", c, 2)
	m.Cols[c] = col
}

// Elem returns the element in column c, row r.
func (m Mat2[T]) Elem(c, r int) T {
	checkIndex("Mat2.Elem", c, 2)
	checkIndex("Mat2.Elem", r, 2)

	return m.Cols[c].At(r)
}

// SetElem assigns the element in column c, row r.
func (m *Mat2[T]) SetElem(c, r int, s T) {
	checkIndex("Mat2.SetElem", c, 2)
	checkIndex("Mat2.SetElem", r, 2)
	m.Cols[c].Set(r, s)
}

// Columns returns the columns as a slice aliasing m.
func (m *Mat2[T]) Columns() []vector.Vec2[T] { return m.Cols[:] }

// Slice returns the 4 elements in column-major order as a slice aliasing m.
func (m *Mat2[T]) Slice() []T { return unsafe.Slice(&m.Cols[0].X, 4) }

// Array returns a column-major copy of the elements.
func (m Mat2[T]) Array() (a [4]T) {
	copy(a[:], m.Slice())

	return a
}

// String formats m column by column, e.g. mat2(vec2(...), ...).
func (m Mat2[T]) String() string {
	return fmt.Sprintf("mat2(%v, %v)", m.Cols[0], m.Cols[1])
}

// Row returns row r as a vector. It panics unless 0 <= r < 2.
func (m Mat2[T]) Row(r int) vector.Vec2[T] {
	checkIndex("Mat2.Row", r, 2)

	return vector.New2(m.Cols[0].At(r), m.Cols[1].At(r))
}

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	var t Mat2[T]
	for c := 0; c < 2; c++ {
		t.Cols[c] = m.Row(c)
	}

	return t
}

// ---------- Element-wise arithmetic ----------

// Add returns m + o element-wise.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Add(o.Cols[c])
	}

	return m
}

// Sub returns m - o element-wise.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Sub(o.Cols[c])
	}

	return m
}

// AddScalar returns m + s on every element.
func (m Mat2[T]) AddScalar(s T) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].AddScalar(s)
	}

	return m
}

// SubScalar returns m - s on every element.
func (m Mat2[T]) SubScalar(s T) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].SubScalar(s)
	}

	return m
}

// MulScalar returns m * s on every element.
func (m Mat2[T]) MulScalar(s T) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].MulScalar(s)
	}

	return m
}

// DivScalar returns m / s on every element.
func (m Mat2[T]) DivScalar(s T) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].DivScalar(s)
	}

	return m
}

// ---------- Compound assignment ----------

// AddAssign performs m += o.
func (m *Mat2[T]) AddAssign(o Mat2[T]) { *m = m.Add(o) }

// SubAssign performs m -= o.
func (m *Mat2[T]) SubAssign(o Mat2[T]) { *m = m.Sub(o) }

// AddAssignScalar performs m += s.
func (m *Mat2[T]) AddAssignScalar(s T) { *m = m.AddScalar(s) }

// SubAssignScalar performs m -= s.
func (m *Mat2[T]) SubAssignScalar(s T) { *m = m.SubScalar(s) }

// MulAssignScalar performs m *= s.
func (m *Mat2[T]) MulAssignScalar(s T) { *m = m.MulScalar(s) }

// DivAssignScalar performs m /= s.
func (m *Mat2[T]) DivAssignScalar(s T) { *m = m.DivScalar(s) }

// MulAssign performs m = m·o (matrix product, o applied first).
func (m *Mat2[T]) MulAssign(o Mat2[T]) { *m = m.Mul(o) }
