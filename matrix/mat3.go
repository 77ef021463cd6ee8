// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// Mat3 is a 3×3 column-major matrix. The zero value is the zero matrix.
type Mat3[T scalar.Scalar] struct {
	Cols [3]vector.Vec3[T]
}

// New3 builds a matrix from its columns.
func New3[T scalar.Scalar](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{Cols: [3]vector.Vec3[T]{c0, c1, c2}}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T scalar.Scalar]() Mat3[T] {
	var m Mat3[T]
	for i := 0; i < 3; i++ {
		m.Cols[i].Set(i, scalar.One[T]())
	}

	return m
}

// Default3 returns the identity, the neutral element of Mul.
func Default3[T scalar.Scalar]() Mat3[T] { return Identity3[T]() }

// Len returns the number of columns, 3.
func (m Mat3[T]) Len() int { return 3 }

// At returns column c. It panics unless 0 <= c < 3.
func (m Mat3[T]) At(c int) vector.Vec3[T] {
	checkIndex("Mat3.At", c, 3)

	return m.Cols[c]
}

// Set replaces column c. It panics unless 0 <= c < 3.
func (m *Mat3[T]) Set(c int, col vector.Vec3[T]) {
	checkIndex("Mat3.Set", c, 3)
	m.Cols[c] = col
}

// Elem returns the element in column c, row r.
func (m Mat3[T]) Elem(c, r int) T {
	checkIndex("Mat3.Elem", c, 3)
	checkIndex("Mat3.Elem", r, 3)

	return m.Cols[c].At(r)
}

// SetElem assigns the element in column c, row r.
func (m *Mat3[T]) SetElem(c, r int, s T) {
	checkIndex("Mat3.SetElem", c, 3)
	checkIndex("Mat3.SetElem", r, 3)
	m.Cols[c].Set(r, s)
}

// Columns returns the columns as a slice aliasing m.
func (m *Mat3[T]) Columns() []vector.Vec3[T] { return m.Cols[:] }

// Slice returns the 9 elements in column-major order as a slice aliasing m.
func (m *Mat3[T]) Slice() []T { return unsafe.Slice(&m.Cols[0].X, 9) }

// Array returns a column-major copy of the elements.
func (m Mat3[T]) Array() (a [9]T) {
	copy(a[:], m.Slice())

	return a
}

// String formats m column by column, e.g. mat3(vec3(...), ...).
func (m Mat3[T]) String() string {
	return fmt.Sprintf("mat3(%v, %v, %v)", m.Cols[0], m.Cols[1], m.Cols[2])
}

// Row returns row r as a vector. It panics unless 0 <= r < 3.
func (m Mat3[T]) Row(r int) vector.Vec3[T] {
	checkIndex("Mat3.Row", r, 3)

	return vector.New3(m.Cols[0].At(r), m.Cols[1].At(r), m.Cols[2].At(r))
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	var t Mat3[T]
	for c := 0; c < 3; c++ {
		t.Cols[c] = m.Row(c)
	}

	return t
}

// ---------- Element-wise arithmetic ----------

// Add returns m + o element-wise.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Add(o.Cols[c])
	}

	return m
}

// Sub returns m - o element-wise.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].Sub(o.Cols[c])
	}

	return m
}

// AddScalar returns m + s on every element.
func (m Mat3[T]) AddScalar(s T) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].AddScalar(s)
	}

	return m
}

// SubScalar returns m - s on every element.
func (m Mat3[T]) SubScalar(s T) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].SubScalar(s)
	}

	return m
}

// MulScalar returns m * s on every element.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].MulScalar(s)
	}

	return m
}

// DivScalar returns m / s on every element.
func (m Mat3[T]) DivScalar(s T) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = m.Cols[c].DivScalar(s)
	}

	return m
}

// ---------- Compound assignment ----------

// AddAssign performs m += o.
func (m *Mat3[T]) AddAssign(o Mat3[T]) { *m = m.Add(o) }

// SubAssign performs m -= o.
func (m *Mat3[T]) SubAssign(o Mat3[T]) { *m = m.Sub(o) }

// AddAssignScalar performs m += s.
func (m *Mat3[T]) AddAssignScalar(s T) { *m = m.AddScalar(s) }

// SubAssignScalar performs m -= s.
func (m *Mat3[T]) SubAssignScalar(s T) { *m = m.SubScalar(s) }

// MulAssignScalar performs m *= s.
func (m *Mat3[T]) MulAssignScalar(s T) { *m = m.MulScalar(s) }

// DivAssignScalar performs m /= s.
func (m *Mat3[T]) DivAssignScalar(s T) { *m = m.DivScalar(s) }

// MulAssign performs m = m·o (matrix product, o applied first).
func (m *Mat3[T]) MulAssign(o Mat3[T]) { *m = m.Mul(o) }
