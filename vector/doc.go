// SPDX-License-Identifier: MIT

// Package vector provides fixed-arity value vectors Vec1, Vec2, Vec3 and Vec4
// over any scalar.Scalar component type.
//
// What & Why:
//
//	Vectors are small, comparable structs with components X, Y, Z, W stored
//	contiguously in declared order. They are copied by value, never shared,
//	and need no allocation, which suits graphics, physics and simulation
//	code that works on many tiny tuples.
//
// Broadcasting:
//
//	Every arithmetic operator accepts three operand shapes: a vector of the
//	same arity (component-wise), a bare scalar, or a Vec1. Scalar and Vec1
//	operands are broadcast to every component, so
//
//	v.AddScalar(s) == v.Add(Splat3(s)) == v.AddVec1(New1(s))
//
//	Scalar-on-the-left forms are free functions (ScalarSub3, Vec1Div4, ...).
//	Compound assignment uses pointer-receiver methods (AddAssign, ...).
//
// Capabilities:
//
//	Add/Sub/Mul/Div/Rem and Dot work for every scalar.Scalar type.
//	Negation needs scalar.Real; bitwise operators and shifts need
//	scalar.Integer and are free functions (And3, Shl4, ...), so misuse is a
//	compile-time error. Shift counts may use a different integer type.
//
// Indexing:
//
//	At, Set and Ptr take a zero-based index and panic with an error wrapping
//	ErrOutOfRange when it is outside [0, Len()). Slice exposes the components
//	as a contiguous view for interop.
//
// Determinism:
//
//	Dot sums products in a fixed, arity-specific grouping; results are
//	bit-for-bit reproducible across builds and architectures.
package vector
