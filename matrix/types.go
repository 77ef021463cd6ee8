// SPDX-License-Identifier: MIT

// Package matrix: named instantiations for the common element types.
// Both the short (Mat4f) and the explicit-shape (Mat4x4) spellings exist;
// they name the same types.
package matrix

// float32 matrices.
type (
	Mat2f  = Mat2[float32]
	Mat3f  = Mat3[float32]
	Mat4f  = Mat4[float32]
	Mat2x2 = Mat2[float32]
	Mat3x3 = Mat3[float32]
	Mat4x4 = Mat4[float32]
)

// float64 matrices.
type (
	DMat2   = Mat2[float64]
	DMat3   = Mat3[float64]
	DMat4   = Mat4[float64]
	DMat2x2 = Mat2[float64]
	DMat3x3 = Mat3[float64]
	DMat4x4 = Mat4[float64]
)
