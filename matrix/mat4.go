// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// Mat4 is a 4×4 column-major matrix, the usual homogeneous transform in
// graphics code. Cols[3] holds the translation of an affine transform.
// The zero value is the zero matrix.
type Mat4[T scalar.Scalar] struct {
	Cols [4]vector.Vec4[T]
}

// New4 builds a matrix from its columns.
func New4[T scalar.Scalar](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{Cols: [4]vector.Vec4[T]{c0, c1, c2, c3}}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T scalar.Scalar]() Mat4[T] {
	var m Mat4[T]
	for i := 0; i < 4; i++ {
		m.Cols[i].Set(i, scalar.One[T]())
	}

	return m
}

// Default4 returns the identity, the neutral element of Mul.
func Default4[T scalar.Scalar]() Mat4[T] { return Identity4[T]() }

// Len returns the number of columns, 4.
func (m Mat4[T]) Len() int { return 4 }

// At returns column c. It panics unless 0 <= c < 4.
func (m Mat4[T]) At(c int) vector.Vec4[T] {
	checkIndex("Mat4.At", c, 4)

	return m.Cols[c]
}

// Set replaces column c. It panics unless 0 <= c < 4.
func (m *Mat4[T]) Set(c int, col vector.Vec4[T]) {
	checkIndex("Mat4.Set", c, 4)
	m.Cols[c] = col
}

// Elem returns the element in column c, row r.
func (m Mat4[T]) Elem(c, r int) T {
	checkIndex("Mat4.Elem", c, 4)
	checkIndex("Mat4.Elem", r, 4)

	return m.Cols[c].At(r)
}

// SetElem assigns the element in column c, row r.
func (m *Mat4[T]) SetElem(c, r int, s T) {
	checkIndex("Mat4.SetElem", c, 4)
	checkIndex("Mat4.SetElem", r, 4)
	m.Cols[c].Set(r, s)
}

// Columns returns the columns as a slice aliasing m.
func (m *Mat4[T]) Columns() []vector.Vec4[T] { return m.Cols[:] }

// Slice returns the 16 elements in column-major order as a slice aliasing m.
func (m *Mat4[T]) Slice() []T { return unsafe.Slice(&m.Cols[0].X, 16) }

// Array returns a column-major copy of the elements.
func (m Mat4[T]) Array() (a [16]T) {
	copy(a[:], m.Slice())

	return a
}

// String formats m column by column, e.g. mat4(vec4(...), ...).
func (m Mat4[T]) String() string {
	return fmt.Sprintf("mat4(%v, %v, %v, %v)", m.Cols[0], m.Cols[1], m.Cols[2], m.Cols[3])
}

// Row returns row r as a vector. It panics unless 0 <= r < 4.
func (m Mat4[T]) Row(r int) vector.Vec4[T] {
	checkIndex("Mat4.Row", r, 4)

	return vector.New4(m.Cols[0].At(r), m.Cols[1].At(r), m.Cols[2].At(r), m.Cols[3].At(r))
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	var t Mat4[T]
	for c := 0; c < 4; c++ {
		t.Cols[c] = m.Row(c)
	}

	return t
}

// ---------- Element-wise arithmetic ----------

// Add returns m + o element-wise.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Add(o.Cols[c])
	}

	return m
}

// Sub returns m - o element-wise.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Sub(o.Cols[c])
	}

	return m
}

// AddScalar returns m + s on every element.
func (m Mat4[T]) AddScalar(s T) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].AddScalar(s)
	}

	return m
}

// SubScalar returns m - s on every element.
func (m Mat4[T]) SubScalar(s T) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].SubScalar(s)
	}

	return m
}

// MulScalar returns m * s on every element.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].MulScalar(s)
	}

	return m
}

// DivScalar returns m / s on every element.
func (m Mat4[T]) DivScalar(s T) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].DivScalar(s)
	}

	return m
}

// ---------- Compound assignment ----------

// AddAssign performs m += o.
func (m *Mat4[T]) AddAssign(o Mat4[T]) { *m = m.Add(o) }

// SubAssign performs m -= o.
func (m *Mat4[T]) SubAssign(o Mat4[T]) { *m = m.Sub(o) }

// AddAssignScalar performs m += s.
func (m *Mat4[T]) AddAssignScalar(s T) { *m = m.AddScalar(s) }

// SubAssignScalar performs m -= s.
func (m *Mat4[T]) SubAssignScalar(s T) { *m = m.SubScalar(s) }

// MulAssignScalar performs m *= s.
func (m *Mat4[T]) MulAssignScalar(s T) { *m = m.MulScalar(s) }

// DivAssignScalar performs m /= s.
func (m *Mat4[T]) DivAssignScalar(s T) { *m = m.DivScalar(s) }

// MulAssign performs m = m·o (matrix product, o applied first).
func (m *Mat4[T]) MulAssign(o Mat4[T]) { *m = m.Mul(o) }
