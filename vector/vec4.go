// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
)

// Vec4 is a four-component vector. X, Y, Z and W are stored contiguously in
// that order. The zero value is the zero vector.
type Vec4[T scalar.Scalar] struct {
	X, Y, Z, W T
}

// New4 returns (x, y, z, w).
func New4[T scalar.Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

// Splat4 returns (s, s, s, s).
func Splat4[T scalar.Scalar](s T) Vec4[T] { return Vec4[T]{X: s, Y: s, Z: s, W: s} }

// Zero4 returns the zero vector.
func Zero4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{} }

// FromArray4 returns (a[0], a[1], a[2], a[3]).
func FromArray4[T scalar.Scalar](a [4]T) Vec4[T] { return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// Len returns 4.
func (v Vec4[T]) Len() int { return 4 }

// ptr resolves index i or panics; shared by At, Set and Ptr.
func (v *Vec4[T]) ptr(op string, i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	case 3:
		return &v.W
	}
	panic(indexError(op, i, 4))
}

// At returns component i. It panics unless 0 <= i < 4.
func (v Vec4[T]) At(i int) T { return *v.ptr("Vec4.At", i) }

// Set assigns component i. It panics unless 0 <= i < 4.
func (v *Vec4[T]) Set(i int, s T) { *v.ptr("Vec4.Set", i) = s }

// Ptr returns the address of component i. It panics unless 0 <= i < 4.
func (v *Vec4[T]) Ptr(i int) *T { return v.ptr("Vec4.Ptr", i) }

// Array returns a copy of the components.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// Slice returns a length-4 view of the components aliasing v.
func (v *Vec4[T]) Slice() []T { return unsafe.Slice(&v.X, 4) }

// String formats v as vec4(x, y, z, w).
func (v Vec4[T]) String() string {
	return fmt.Sprintf("vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// SplatX returns (x, x, x, x).
func (v Vec4[T]) SplatX() Vec4[T] { return Splat4(v.X) }

// SplatY returns (y, y, y, y).
func (v Vec4[T]) SplatY() Vec4[T] { return Splat4(v.Y) }

// SplatZ returns (z, z, z, z).
func (v Vec4[T]) SplatZ() Vec4[T] { return Splat4(v.Z) }

// SplatW returns (w, w, w, w).
func (v Vec4[T]) SplatW() Vec4[T] { return Splat4(v.W) }

// ---------- Component-wise arithmetic ----------

// Add returns v + o component-wise.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns v - o component-wise.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Mul returns v * o component-wise.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W} }

// Div returns v / o component-wise.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W} }

// Rem returns the truncated remainder of v / o component-wise.
func (v Vec4[T]) Rem(o Vec4[T]) Vec4[T] {
	return Vec4[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y), scalar.Rem(v.Z, o.Z), scalar.Rem(v.W, o.W)}
}

// ---------- Broadcast: scalar and Vec1 on the right ----------

// AddScalar returns v + s on every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] { return v.Add(Splat4(s)) }

// SubScalar returns v - s on every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] { return v.Sub(Splat4(s)) }

// MulScalar returns v * s on every component.
func (v Vec4[T]) MulScalar(s T) Vec4[T] { return v.Mul(Splat4(s)) }

// DivScalar returns v / s on every component.
func (v Vec4[T]) DivScalar(s T) Vec4[T] { return v.Div(Splat4(s)) }

// RemScalar returns v % s on every component.
func (v Vec4[T]) RemScalar(s T) Vec4[T] { return v.Rem(Splat4(s)) }

// AddVec1 returns v + o.X on every component.
func (v Vec4[T]) AddVec1(o Vec1[T]) Vec4[T] { return v.Add(Splat4(o.X)) }

// SubVec1 returns v - o.X on every component.
func (v Vec4[T]) SubVec1(o Vec1[T]) Vec4[T] { return v.Sub(Splat4(o.X)) }

// MulVec1 returns v * o.X on every component.
func (v Vec4[T]) MulVec1(o Vec1[T]) Vec4[T] { return v.Mul(Splat4(o.X)) }

// DivVec1 returns v / o.X on every component.
func (v Vec4[T]) DivVec1(o Vec1[T]) Vec4[T] { return v.Div(Splat4(o.X)) }

// RemVec1 returns v % o.X on every component.
func (v Vec4[T]) RemVec1(o Vec1[T]) Vec4[T] { return v.Rem(Splat4(o.X)) }

// ---------- Compound assignment ----------

// AddAssign performs v += o.
func (v *Vec4[T]) AddAssign(o Vec4[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
}

// SubAssign performs v -= o.
func (v *Vec4[T]) SubAssign(o Vec4[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
}

// MulAssign performs v *= o.
func (v *Vec4[T]) MulAssign(o Vec4[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	v.W *= o.W
}

// DivAssign performs v /= o.
func (v *Vec4[T]) DivAssign(o Vec4[T]) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
	v.W /= o.W
}

// RemAssign performs v %= o.
func (v *Vec4[T]) RemAssign(o Vec4[T]) { *v = v.Rem(o) }

// AddAssignScalar performs v += s.
func (v *Vec4[T]) AddAssignScalar(s T) { v.AddAssign(Splat4(s)) }

// SubAssignScalar performs v -= s.
func (v *Vec4[T]) SubAssignScalar(s T) { v.SubAssign(Splat4(s)) }

// MulAssignScalar performs v *= s.
func (v *Vec4[T]) MulAssignScalar(s T) { v.MulAssign(Splat4(s)) }

// DivAssignScalar performs v /= s.
func (v *Vec4[T]) DivAssignScalar(s T) { v.DivAssign(Splat4(s)) }

// RemAssignScalar performs v %= s.
func (v *Vec4[T]) RemAssignScalar(s T) { v.RemAssign(Splat4(s)) }

// AddAssignVec1 performs v += o.X.
func (v *Vec4[T]) AddAssignVec1(o Vec1[T]) { v.AddAssign(Splat4(o.X)) }

// SubAssignVec1 performs v -= o.X.
func (v *Vec4[T]) SubAssignVec1(o Vec1[T]) { v.SubAssign(Splat4(o.X)) }

// MulAssignVec1 performs v *= o.X.
func (v *Vec4[T]) MulAssignVec1(o Vec1[T]) { v.MulAssign(Splat4(o.X)) }

// DivAssignVec1 performs v /= o.X.
func (v *Vec4[T]) DivAssignVec1(o Vec1[T]) { v.DivAssign(Splat4(o.X)) }

// RemAssignVec1 performs v %= o.X.
func (v *Vec4[T]) RemAssignVec1(o Vec1[T]) { v.RemAssign(Splat4(o.X)) }
