// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/glm/scalar"

// Ortho returns the orthographic projection that maps the box
// [left,right]×[bottom,top] onto [-1,1]² and flips z (z' = -z).
//
// Elements (column, row):
//
//	[0][0] = 2/(right-left)
//	[1][1] = 2/(top-bottom)
//	[2][2] = -1
//	[3][0] = -(right+left)/(right-left)
//	[3][1] = -(top+bottom)/(top-bottom)
//
// All other elements are those of the identity. There are no near/far
// planes. The divisions are unchecked: left == right or bottom == top gives
// ±Inf/NaN for floats and panics for integers.
func Ortho[T scalar.Real](left, right, bottom, top T) Mat4[T] {
	m := Identity4[T]()
	m.Cols[0].X = 2 / (right - left)
	m.Cols[1].Y = 2 / (top - bottom)
	m.Cols[2].Z = -1
	m.Cols[3].X = -(right + left) / (right - left)
	m.Cols[3].Y = -(top + bottom) / (top - bottom)

	return m
}
