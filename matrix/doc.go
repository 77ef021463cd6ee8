// SPDX-License-Identifier: MIT

// Package matrix provides square column-major matrices Mat2, Mat3 and Mat4
// over any scalar.Scalar element type, together with the closed-form
// algebra graphics and simulation code needs on them.
//
// What & Why:
//
//	A MatN is N column vectors (vector.VecN) stored contiguously, so the
//	whole matrix can be handed to a graphics API as N² values in
//	column-major order (Slice). Matrices are comparable values; they are
//	copied, never shared.
//
// Products:
//
//	m.MulVec(v)     column-vector form, Σ_c m.Cols[c]·v[c]
//	VecMul4(v, m)   row-vector form, r[c] = v·m.Cols[c]
//	a.Mul(b)        composition, b applied first
//
//	The two vector forms are not inverses of each other; pick the one your
//	pipeline's convention needs. Every product uses a fixed summation
//	order, so results are reproducible bit for bit.
//
// Inversion:
//
//	Inverse2/3/4 use the textbook closed forms (adjugate over determinant).
//	They do not check the determinant: a singular float matrix yields
//	Inf/NaN elements and a singular integer matrix faults on division by
//	zero. TryInverse2/3/4 are the checked variants; they return
//	ErrNaNInf, ErrSingular or (integers) ErrNotUnimodular instead. The
//	float singularity test is scale-invariant by default. Division (Div4,
//	MatDivVec4, VecDivMat4) is multiplication by the inverse on the
//	matching side.
//
// Capabilities:
//
//	Element-wise arithmetic and products work for every scalar.Scalar
//	type. Negation and inversion require scalar.Real and are free
//	functions, so inverting an unsigned matrix does not compile.
//
// Complexity:
//
//	All operations are O(1): the order is at most 4 and nothing allocates.
package matrix
