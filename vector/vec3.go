// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
)

// Vec3 is a three-component vector. X, Y and Z are stored contiguously in
// that order. The zero value is the zero vector.
type Vec3[T scalar.Scalar] struct {
	X, Y, Z T
}

// New3 returns (x, y, z).
func New3[T scalar.Scalar](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// Splat3 returns (s, s, s).
func Splat3[T scalar.Scalar](s T) Vec3[T] { return Vec3[T]{X: s, Y: s, Z: s} }

// Zero3 returns the zero vector.
func Zero3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{} }

// FromArray3 returns (a[0], a[1], a[2]).
func FromArray3[T scalar.Scalar](a [3]T) Vec3[T] { return Vec3[T]{X: a[0], Y: a[1], Z: a[2]} }

// Len returns 3.
func (v Vec3[T]) Len() int { return 3 }

// ptr resolves index i or panics; shared by At, Set and Ptr.
func (v *Vec3[T]) ptr(op string, i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	panic(indexError(op, i, 3))
}

// At returns component i. It panics unless 0 <= i < 3.
func (v Vec3[T]) At(i int) T { return *v.ptr("Vec3.At", i) }

// Set assigns component i. It panics unless 0 <= i < 3.
func (v *Vec3[T]) Set(i int, s T) { *v.ptr("Vec3.Set", i) = s }

// Ptr returns the address of component i. It panics unless 0 <= i < 3.
func (v *Vec3[T]) Ptr(i int) *T { return v.ptr("Vec3.Ptr", i) }

// Array returns a copy of the components.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Slice returns a length-3 view of the components aliasing v.
func (v *Vec3[T]) Slice() []T { return unsafe.Slice(&v.X, 3) }

// String formats v as vec3(x, y, z).
func (v Vec3[T]) String() string { return fmt.Sprintf("vec3(%v, %v, %v)", v.X, v.Y, v.Z) }

// SplatX returns (x, x, x).
func (v Vec3[T]) SplatX() Vec3[T] { return Splat3(v.X) }

// SplatY returns (y, y, y).
func (v Vec3[T]) SplatY() Vec3[T] { return Splat3(v.Y) }

// SplatZ returns (z, z, z).
func (v Vec3[T]) SplatZ() Vec3[T] { return Splat3(v.Z) }

// ---------- Component-wise arithmetic ----------

// Add returns v + o component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v * o component-wise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div returns v / o component-wise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Rem returns the truncated remainder of v / o component-wise.
func (v Vec3[T]) Rem(o Vec3[T]) Vec3[T] {
	return Vec3[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y), scalar.Rem(v.Z, o.Z)}
}

// ---------- Broadcast: scalar and Vec1 on the right ----------

// AddScalar returns v + s on every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return v.Add(Splat3(s)) }

// SubScalar returns v - s on every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { return v.Sub(Splat3(s)) }

// MulScalar returns v * s on every component.
func (v Vec3[T]) MulScalar(s T) Vec3[T] { return v.Mul(Splat3(s)) }

// DivScalar returns v / s on every component.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return v.Div(Splat3(s)) }

// RemScalar returns v % s on every component.
func (v Vec3[T]) RemScalar(s T) Vec3[T] { return v.Rem(Splat3(s)) }

// AddVec1 returns v + o.X on every component.
func (v Vec3[T]) AddVec1(o Vec1[T]) Vec3[T] { return v.Add(Splat3(o.X)) }

// SubVec1 returns v - o.X on every component.
func (v Vec3[T]) SubVec1(o Vec1[T]) Vec3[T] { return v.Sub(Splat3(o.X)) }

// MulVec1 returns v * o.X on every component.
func (v Vec3[T]) MulVec1(o Vec1[T]) Vec3[T] { return v.Mul(Splat3(o.X)) }

// DivVec1 returns v / o.X on every component.
func (v Vec3[T]) DivVec1(o Vec1[T]) Vec3[T] { return v.Div(Splat3(o.X)) }

// RemVec1 returns v % o.X on every component.
func (v Vec3[T]) RemVec1(o Vec1[T]) Vec3[T] { return v.Rem(Splat3(o.X)) }

// ---------- Compound assignment ----------

// AddAssign performs v += o.
func (v *Vec3[T]) AddAssign(o Vec3[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign performs v -= o.
func (v *Vec3[T]) SubAssign(o Vec3[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// MulAssign performs v *= o.
func (v *Vec3[T]) MulAssign(o Vec3[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// DivAssign performs v /= o.
func (v *Vec3[T]) DivAssign(o Vec3[T]) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
}

// RemAssign performs v %= o.
func (v *Vec3[T]) RemAssign(o Vec3[T]) { *v = v.Rem(o) }

// AddAssignScalar performs v += s.
func (v *Vec3[T]) AddAssignScalar(s T) { v.AddAssign(Splat3(s)) }

// SubAssignScalar performs v -= s.
func (v *Vec3[T]) SubAssignScalar(s T) { v.SubAssign(Splat3(s)) }

// MulAssignScalar performs v *= s.
func (v *Vec3[T]) MulAssignScalar(s T) { v.MulAssign(Splat3(s)) }

// DivAssignScalar performs v /= s.
func (v *Vec3[T]) DivAssignScalar(s T) { v.DivAssign(Splat3(s)) }

// RemAssignScalar performs v %= s.
func (v *Vec3[T]) RemAssignScalar(s T) { v.RemAssign(Splat3(s)) }

// AddAssignVec1 performs v += o.X.
func (v *Vec3[T]) AddAssignVec1(o Vec1[T]) { v.AddAssign(Splat3(o.X)) }

// SubAssignVec1 performs v -= o.X.
func (v *Vec3[T]) SubAssignVec1(o Vec1[T]) { v.SubAssign(Splat3(o.X)) }

// MulAssignVec1 performs v *= o.X.
func (v *Vec3[T]) MulAssignVec1(o Vec1[T]) { v.MulAssign(Splat3(o.X)) }

// DivAssignVec1 performs v /= o.X.
func (v *Vec3[T]) DivAssignVec1(o Vec1[T]) { v.DivAssign(Splat3(o.X)) }

// RemAssignVec1 performs v %= o.X.
func (v *Vec3[T]) RemAssignVec1(o Vec1[T]) { v.RemAssign(Splat3(o.X)) }
