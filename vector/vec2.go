// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
)

// Vec2 is a two-component vector. X and Y are stored contiguously in that
// order. The zero value is the zero vector.
type Vec2[T scalar.Scalar] struct {
	X, Y T
}

// New2 returns (x, y).
func New2[T scalar.Scalar](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// Splat2 returns (s, s).
func Splat2[T scalar.Scalar](s T) Vec2[T] { return Vec2[T]{X: s, Y: s} }

// Zero2 returns the zero vector.
func Zero2[T scalar.Scalar]() Vec2[T] { return Vec2[T]{} }

// FromArray2 returns (a[0], a[1]).
func FromArray2[T scalar.Scalar](a [2]T) Vec2[T] { return Vec2[T]{X: a[0], Y: a[1]} }

// Len returns 2.
func (v Vec2[T]) Len() int { return 2 }

// ptr resolves index i or panics; shared by At, Set and Ptr.
func (v *Vec2[T]) ptr(op string, i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	panic(indexError(op, i, 2))
}

// At returns component i. It panics unless 0 <= i < 2.
func (v Vec2[T]) At(i int) T { return *v.ptr("Vec2.At", i) }

// Set assigns component i. It panics unless 0 <= i < 2.
func (v *Vec2[T]) Set(i int, s T) { *v.ptr("Vec2.Set", i) = s }

// Ptr returns the address of component i. It panics unless 0 <= i < 2.
func (v *Vec2[T]) Ptr(i int) *T { return v.ptr("Vec2.Ptr", i) }

// Array returns a copy of the components.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Slice returns a length-2 view of the components aliasing v.
func (v *Vec2[T]) Slice() []T { return unsafe.Slice(&v.X, 2) }

// String formats v as vec2(x, y).
func (v Vec2[T]) String() string {
	return fmt.Sprintf("vec2(%v, %v)", v.X, v.Y)
}

// SplatX returns (x, x).
func (v Vec2[T]) SplatX() Vec2[T] { return Splat2(v.X) }

// SplatY returns (y, y).
func (v Vec2[T]) SplatY() Vec2[T] { return Splat2(v.Y) }

// ---------- Component-wise arithmetic ----------

// Add returns v + o component-wise.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o component-wise.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Mul returns v * o component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// Div returns v / o component-wise.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

// Rem returns the truncated remainder of v / o component-wise.
func (v Vec2[T]) Rem(o Vec2[T]) Vec2[T] {
	return Vec2[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y)}
}

// ---------- Broadcast: scalar and Vec1 on the right ----------

// AddScalar returns v + s on every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return v.Add(Splat2(s)) }

// SubScalar returns v - s on every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { return v.Sub(Splat2(s)) }

// MulScalar returns v * s on every component.
func (v Vec2[T]) MulScalar(s T) Vec2[T] { return v.Mul(Splat2(s)) }

// DivScalar returns v / s on every component.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return v.Div(Splat2(s)) }

// RemScalar returns v % s on every component.
func (v Vec2[T]) RemScalar(s T) Vec2[T] { return v.Rem(Splat2(s)) }

// AddVec1 returns v + o.X on every component.
func (v Vec2[T]) AddVec1(o Vec1[T]) Vec2[T] { return v.Add(Splat2(o.X)) }

// SubVec1 returns v - o.X on every component.
func (v Vec2[T]) SubVec1(o Vec1[T]) Vec2[T] { return v.Sub(Splat2(o.X)) }

// MulVec1 returns v * o.X on every component.
func (v Vec2[T]) MulVec1(o Vec1[T]) Vec2[T] { return v.Mul(Splat2(o.X)) }

// DivVec1 returns v / o.X on every component.
func (v Vec2[T]) DivVec1(o Vec1[T]) Vec2[T] { return v.Div(Splat2(o.X)) }

// RemVec1 returns v % o.X on every component.
func (v Vec2[T]) RemVec1(o Vec1[T]) Vec2[T] { return v.Rem(Splat2(o.X)) }

// ---------- Compound assignment ----------

// AddAssign performs v += o.
func (v *Vec2[T]) AddAssign(o Vec2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign performs v -= o.
func (v *Vec2[T]) SubAssign(o Vec2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// MulAssign performs v *= o.
func (v *Vec2[T]) MulAssign(o Vec2[T]) {
	v.X *= o.X
	v.Y *= o.Y
}

// DivAssign performs v /= o.
func (v *Vec2[T]) DivAssign(o Vec2[T]) {
	v.X /= o.X
	v.Y /= o.Y
}

// RemAssign performs v %= o.
func (v *Vec2[T]) RemAssign(o Vec2[T]) { *v = v.Rem(o) }

// AddAssignScalar performs v += s.
func (v *Vec2[T]) AddAssignScalar(s T) { v.AddAssign(Splat2(s)) }

// SubAssignScalar performs v -= s.
func (v *Vec2[T]) SubAssignScalar(s T) { v.SubAssign(Splat2(s)) }

// MulAssignScalar performs v *= s.
func (v *Vec2[T]) MulAssignScalar(s T) { v.MulAssign(Splat2(s)) }

// DivAssignScalar performs v /= s.
func (v *Vec2[T]) DivAssignScalar(s T) { v.DivAssign(Splat2(s)) }

// RemAssignScalar performs v %= s.
func (v *Vec2[T]) RemAssignScalar(s T) { v.RemAssign(Splat2(s)) }

// AddAssignVec1 performs v += o.X.
func (v *Vec2[T]) AddAssignVec1(o Vec1[T]) { v.AddAssign(Splat2(o.X)) }

// SubAssignVec1 performs v -= o.X.
func (v *Vec2[T]) SubAssignVec1(o Vec1[T]) { v.SubAssign(Splat2(o.X)) }

// MulAssignVec1 performs v *= o.X.
func (v *Vec2[T]) MulAssignVec1(o Vec1[T]) { v.MulAssign(Splat2(o.X)) }

// DivAssignVec1 performs v /= o.X.
func (v *Vec2[T]) DivAssignVec1(o Vec1[T]) { v.DivAssign(Splat2(o.X)) }

// RemAssignVec1 performs v %= o.X.
func (v *Vec2[T]) RemAssignVec1(o Vec1[T]) { v.RemAssign(Splat2(o.X)) }
