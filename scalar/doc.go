// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability sets and the numeric policy
// shared by the vector and matrix packages.
//
// Capability sets:
//
//	Scalar  - any integer or floating-point type (+, -, *, /, remainder).
//	Integer - integer types only (bitwise operators and shifts).
//	Real    - signed integers and floats (negation, matrix inversion).
//	Float   - floating-point types only.
//
// Operations that need a narrower capability set than Scalar are written as
// free functions constrained to that set, so a misuse (negating an unsigned
// vector, inverting a uint32 matrix) is rejected by the compiler.
//
// Numeric policy:
//
//	Approximate comparison (Near, Close) and checked inversion are tuned with
//	functional options: WithEpsilon, WithRelativeTolerance, WithValidateNaNInf.
//	No global state is involved; each call resolves its own Options.
package scalar
