// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Signed permits any signed integer type.
type Signed = constraints.Signed

// Unsigned permits any unsigned integer type.
type Unsigned = constraints.Unsigned

// Integer permits any integer type.
type Integer = constraints.Integer

// Float permits any floating-point type.
type Float = constraints.Float

// Scalar is the base capability set for vector and matrix components:
// every type here supports +, -, * and / and has the literals 0 and 1.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real permits the types that can represent negative values: signed
// integers and floats. Negation and matrix inversion require it.
type Real interface {
	constraints.Signed | constraints.Float
}
