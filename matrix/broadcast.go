// SPDX-License-Identifier: MIT

// Package matrix: scalar on the left-hand side and negation.
package matrix

import (
	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// ScalarAdd2 returns s + m on every element.
func ScalarAdd2[T scalar.Scalar](s T, m Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarAdd2(s, m.Cols[c])
	}

	return m
}

// ScalarSub2 returns s - m on every element.
func ScalarSub2[T scalar.Scalar](s T, m Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarSub2(s, m.Cols[c])
	}

	return m
}

// ScalarMul2 returns s * m on every element.
func ScalarMul2[T scalar.Scalar](s T, m Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarMul2(s, m.Cols[c])
	}

	return m
}

// ScalarDiv2 returns s / m on every element.
func ScalarDiv2[T scalar.Scalar](s T, m Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarDiv2(s, m.Cols[c])
	}

	return m
}

// Neg2 returns -m.
func Neg2[T scalar.Real](m Mat2[T]) Mat2[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.Neg2(m.Cols[c])
	}

	return m
}

// ScalarAdd3 returns s + m on every element.
func ScalarAdd3[T scalar.Scalar](s T, m Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarAdd3(s, m.Cols[c])
	}

	return m
}

// ScalarSub3 returns s - m on every element.
func ScalarSub3[T scalar.Scalar](s T, m Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarSub3(s, m.Cols[c])
	}

	return m
}

// ScalarMul3 returns s * m on every element.
func ScalarMul3[T scalar.Scalar](s T, m Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarMul3(s, m.Cols[c])
	}

	return m
}

// ScalarDiv3 returns s / m on every element.
func ScalarDiv3[T scalar.Scalar](s T, m Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarDiv3(s, m.Cols[c])
	}

	return m
}

// Neg3 returns -m.
func Neg3[T scalar.Real](m Mat3[T]) Mat3[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.Neg3(m.Cols[c])
	}

	return m
}

// ScalarAdd4 returns s + m on every element.
func ScalarAdd4[T scalar.Scalar](s T, m Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarAdd4(s, m.Cols[c])
	}

	return m
}

// ScalarSub4 returns s - m on every element.
func ScalarSub4[T scalar.Scalar](s T, m Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarSub4(s, m.Cols[c])
	}

	return m
}

// ScalarMul4 returns s * m on every element.
func ScalarMul4[T scalar.Scalar](s T, m Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarMul4(s, m.Cols[c])
	}

	return m
}

// ScalarDiv4 returns s / m on every element.
func ScalarDiv4[T scalar.Scalar](s T, m Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.ScalarDiv4(s, m.Cols[c])
	}

	return m
}

// Neg4 returns -m.
func Neg4[T scalar.Real](m Mat4[T]) Mat4[T] {
	for c := range m.Cols {
		m.Cols[c] = vector.Neg4(m.Cols[c])
	}

	return m
}
