// SPDX-License-Identifier: MIT

// Package interop converts glm vectors and matrices to and from gonum types.
//
// What & Why:
//
//	Transform code usually lives next to heavier numerics: least squares,
//	decompositions, spatial queries. gonum provides those; this package
//	moves values across the boundary.
//
// Layout:
//
//	glm matrices are column-major; gonum's mat.Dense and r3.Mat are
//	row-major. Every conversion here transposes the storage, never the
//	meaning: Elem(c, r) on the glm side equals At(r, c) on the gonum side.
//
// Precision:
//
//	gonum works in float64. Converting to gonum widens, converting back
//	uses Go conversion rules for T (float to integer truncates).
//
// Adapters:
//
//	Matrix4 exposes a *matrix.Mat4 as a mat.Matrix without copying, so
//	gonum routines can read a transform in place.
package interop
