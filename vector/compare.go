// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glm/scalar"

// ApproxEqual1 reports whether every component pair of a and b is within
// the tolerance configured by opts (see scalar.Near).
func ApproxEqual1[T scalar.Scalar](a, b Vec1[T], opts ...scalar.Option) bool {
	o := scalar.NewOptions(opts...)

	return scalar.Close(a.X, b.X, o)
}

// ApproxEqual2 reports whether every component pair of a and b is within
// the tolerance configured by opts (see scalar.Near).
func ApproxEqual2[T scalar.Scalar](a, b Vec2[T], opts ...scalar.Option) bool {
	o := scalar.NewOptions(opts...)

	return scalar.Close(a.X, b.X, o) &&
		scalar.Close(a.Y, b.Y, o)
}

// ApproxEqual3 reports whether every component pair of a and b is within
// the tolerance configured by opts (see scalar.Near).
func ApproxEqual3[T scalar.Scalar](a, b Vec3[T], opts ...scalar.Option) bool {
	o := scalar.NewOptions(opts...)

	return scalar.Close(a.X, b.X, o) &&
		scalar.Close(a.Y, b.Y, o) &&
		scalar.Close(a.Z, b.Z, o)
}

// ApproxEqual4 reports whether every component pair of a and b is within
// the tolerance configured by opts (see scalar.Near).
func ApproxEqual4[T scalar.Scalar](a, b Vec4[T], opts ...scalar.Option) bool {
	o := scalar.NewOptions(opts...)

	return scalar.Close(a.X, b.X, o) &&
		scalar.Close(a.Y, b.Y, o) &&
		scalar.Close(a.Z, b.Z, o) &&
		scalar.Close(a.W, b.W, o)
}
