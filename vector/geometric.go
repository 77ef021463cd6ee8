// SPDX-License-Identifier: MIT

package vector

// Dot grouping is fixed per arity so results are reproducible:
//
//	Vec2: x + y
//	Vec3: (x + y) + z
//	Vec4: (x + y) + (z + w)
//
// where x, y, z, w are the component products. Each product is converted to T
// before summing; an explicit conversion rounds, which stops the compiler
// from fusing a multiply into the following add.

// Dot returns the scalar product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	x, y := T(v.X*o.X), T(v.Y*o.Y)

	return x + y
}

// Dot returns the scalar product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	x, y, z := T(v.X*o.X), T(v.Y*o.Y), T(v.Z*o.Z)

	return T(x+y) + z
}

// Dot returns the scalar product of v and o.
//
// Complexity:
//   - 4 multiplications, 3 additions, no allocation.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	x, y, z, w := T(v.X*o.X), T(v.Y*o.Y), T(v.Z*o.Z), T(v.W*o.W)

	return T(x+y) + T(z+w)
}
