// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glm/scalar"

// Cast converts component types with Go conversion rules: float to integer
// truncates toward zero, and out-of-range values are implementation-defined.

// Cast1 returns v with every component converted to U.
func Cast1[U, T scalar.Scalar](v Vec1[T]) Vec1[U] {
	return Vec1[U]{U(v.X)}
}

// Cast2 returns v with every component converted to U.
func Cast2[U, T scalar.Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}

// Cast3 returns v with every component converted to U.
func Cast3[U, T scalar.Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Cast4 returns v with every component converted to U.
func Cast4[U, T scalar.Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}
