// Package glm is a small, generic linear-algebra kernel for graphics,
// physics and simulation code: fixed-size vectors and square matrices with
// closed-form algebra and no allocation.
//
// 🚀 What is glm?
//
//	A pure-Go library of value types that brings together:
//		• Vectors: Vec1..Vec4 over any integer or float component type
//		• Matrices: column-major Mat2..Mat4 with products in both conventions
//		• Broadcasting: scalar, Vec1 and same-arity operands, left and right
//		• Inversion: textbook adjugate/determinant inverses for orders 2–4
//		• Projection: Ortho for 2D / UI clip-space transforms
//		• Interop: lossless bridges to gonum's mat, r2 and r3 types
//
// ✨ Why choose glm?
//
//   - Capability-checked generics: negating a uint vector or inverting an
//     unsigned matrix is a compile error, not a runtime surprise
//   - Reproducible: every sum uses a fixed grouping, bit for bit
//   - Zero allocation: every value lives on the stack
//   - Loud failures: out-of-range indexing panics, never clamps
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/  - capability constraints, remainder, tolerance options
//	vector/  - Vec1..Vec4, broadcasting, bitwise ops, Dot, Cast
//	matrix/  - Mat2..Mat4, products, inverses, division, Ortho
//	interop/ - gonum conversions and the mat.Matrix adapter
//
// Quick example:
//
//	m := matrix.Identity4[float32]()
//	m.Cols[3] = vector.New4[float32](10, 0, 0, 1) // translate x by 10
//	p := m.MulVec(vector.New4[float32](1, 2, 3, 1)) // vec4(11, 2, 3, 1)
//
// See examples/transform_pipeline for an end-to-end walkthrough.
//
//	go get github.com/katalvlaran/glm
package glm
