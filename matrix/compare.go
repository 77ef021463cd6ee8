// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// ApproxEqual2 reports whether every element pair of a and b is within the
// tolerance configured by opts (see scalar.Near).
func ApproxEqual2[T scalar.Scalar](a, b Mat2[T], opts ...scalar.Option) bool {
	for c := range a.Cols {
		if !vector.ApproxEqual2(a.Cols[c], b.Cols[c], opts...) {
			return false
		}
	}

	return true
}

// ApproxEqual3 reports whether every element pair of a and b is within the
// tolerance configured by opts (see scalar.Near).
func ApproxEqual3[T scalar.Scalar](a, b Mat3[T], opts ...scalar.Option) bool {
	for c := range a.Cols {
		if !vector.ApproxEqual3(a.Cols[c], b.Cols[c], opts...) {
			return false
		}
	}

	return true
}

// ApproxEqual4 reports whether every element pair of a and b is within the
// tolerance configured by opts (see scalar.Near).
func ApproxEqual4[T scalar.Scalar](a, b Mat4[T], opts ...scalar.Option) bool {
	for c := range a.Cols {
		if !vector.ApproxEqual4(a.Cols[c], b.Cols[c], opts...) {
			return false
		}
	}

	return true
}
