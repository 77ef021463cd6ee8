// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/glm/scalar"
)

// Vec1 is a single-component vector. Besides standing on its own it is a
// broadcast operand: every VecN operator accepts a Vec1 on either side.
// The zero value is the zero vector.
type Vec1[T scalar.Scalar] struct {
	X T
}

// New1 returns (x).
func New1[T scalar.Scalar](x T) Vec1[T] { return Vec1[T]{X: x} }

// Zero1 returns the zero vector.
func Zero1[T scalar.Scalar]() Vec1[T] { return Vec1[T]{} }

// FromArray1 returns (a[0]).
func FromArray1[T scalar.Scalar](a [1]T) Vec1[T] { return Vec1[T]{X: a[0]} }

// Len returns 1.
func (v Vec1[T]) Len() int { return 1 }

// ptr resolves index i or panics; shared by At, Set and Ptr.
func (v *Vec1[T]) ptr(op string, i int) *T {
	switch i {
	case 0:
		return &v.X
	}
	panic(indexError(op, i, 1))
}

// At returns component i. It panics unless i == 0.
func (v Vec1[T]) At(i int) T { return *v.ptr("Vec1.At", i) }

// Set assigns component i. It panics unless i == 0.
func (v *Vec1[T]) Set(i int, s T) { *v.ptr("Vec1.Set", i) = s }

// Ptr returns the address of component i. It panics unless i == 0.
func (v *Vec1[T]) Ptr(i int) *T { return v.ptr("Vec1.Ptr", i) }

// Array returns a copy of the components.
func (v Vec1[T]) Array() [1]T { return [1]T{v.X} }

// Slice returns a length-1 view of the components aliasing v.
func (v *Vec1[T]) Slice() []T { return unsafe.Slice(&v.X, 1) }

// String formats v as vec1(x).
func (v Vec1[T]) String() string {
	return fmt.Sprintf("vec1(%v)", v.X)
}

// SplatX returns v; it exists so Vec1 offers the same splat surface as the
// wider vectors.
func (v Vec1[T]) SplatX() Vec1[T] { return v }

// ---------- Component-wise arithmetic ----------

// Add returns v + o component-wise.
func (v Vec1[T]) Add(o Vec1[T]) Vec1[T] { return Vec1[T]{v.X + o.X} }

// Sub returns v - o component-wise.
func (v Vec1[T]) Sub(o Vec1[T]) Vec1[T] { return Vec1[T]{v.X - o.X} }

// Mul returns v * o component-wise.
func (v Vec1[T]) Mul(o Vec1[T]) Vec1[T] { return Vec1[T]{v.X * o.X} }

// Div returns v / o component-wise.
func (v Vec1[T]) Div(o Vec1[T]) Vec1[T] { return Vec1[T]{v.X / o.X} }

// Rem returns the truncated remainder of v / o component-wise.
func (v Vec1[T]) Rem(o Vec1[T]) Vec1[T] {
	return Vec1[T]{scalar.Rem(v.X, o.X)}
}

// ---------- Broadcast: scalar on the right ----------

// AddScalar returns v + s on every component.
func (v Vec1[T]) AddScalar(s T) Vec1[T] { return v.Add(New1(s)) }

// SubScalar returns v - s on every component.
func (v Vec1[T]) SubScalar(s T) Vec1[T] { return v.Sub(New1(s)) }

// MulScalar returns v * s on every component.
func (v Vec1[T]) MulScalar(s T) Vec1[T] { return v.Mul(New1(s)) }

// DivScalar returns v / s on every component.
func (v Vec1[T]) DivScalar(s T) Vec1[T] { return v.Div(New1(s)) }

// RemScalar returns v % s on every component.
func (v Vec1[T]) RemScalar(s T) Vec1[T] { return v.Rem(New1(s)) }

// ---------- Compound assignment ----------

// AddAssign performs v += o.
func (v *Vec1[T]) AddAssign(o Vec1[T]) {
	v.X += o.X
}

// SubAssign performs v -= o.
func (v *Vec1[T]) SubAssign(o Vec1[T]) {
	v.X -= o.X
}

// MulAssign performs v *= o.
func (v *Vec1[T]) MulAssign(o Vec1[T]) {
	v.X *= o.X
}

// DivAssign performs v /= o.
func (v *Vec1[T]) DivAssign(o Vec1[T]) {
	v.X /= o.X
}

// RemAssign performs v %= o.
func (v *Vec1[T]) RemAssign(o Vec1[T]) { *v = v.Rem(o) }

// AddAssignScalar performs v += s.
func (v *Vec1[T]) AddAssignScalar(s T) { v.AddAssign(New1(s)) }

// SubAssignScalar performs v -= s.
func (v *Vec1[T]) SubAssignScalar(s T) { v.SubAssign(New1(s)) }

// MulAssignScalar performs v *= s.
func (v *Vec1[T]) MulAssignScalar(s T) { v.MulAssign(New1(s)) }

// DivAssignScalar performs v /= s.
func (v *Vec1[T]) DivAssignScalar(s T) { v.DivAssign(New1(s)) }

// RemAssignScalar performs v %= s.
func (v *Vec1[T]) RemAssignScalar(s T) { v.RemAssign(New1(s)) }
