// SPDX-License-Identifier: MIT

// Package vector: bitwise operators and shifts.
//
// These exist only for integer component types and are free functions with
// a scalar.Integer constraint, so applying them to float vectors fails to
// compile. Shift counts take their own integer type U; a negative count
// panics at run time as it does for the built-in operators.
package vector

import "github.com/katalvlaran/glm/scalar"

// ---------- Vec1 ----------

// And1 returns a & b component-wise.
func And1[T scalar.Integer](a, b Vec1[T]) Vec1[T] {
	return Vec1[T]{a.X & b.X}
}

// AndScalar1 returns v & s on every component.
func AndScalar1[T scalar.Integer](v Vec1[T], s T) Vec1[T] { return And1(v, New1(s)) }

// ScalarAnd1 returns s & v on every component.
func ScalarAnd1[T scalar.Integer](s T, v Vec1[T]) Vec1[T] { return And1(New1(s), v) }

// Or1 returns a | b component-wise.
func Or1[T scalar.Integer](a, b Vec1[T]) Vec1[T] {
	return Vec1[T]{a.X | b.X}
}

// OrScalar1 returns v | s on every component.
func OrScalar1[T scalar.Integer](v Vec1[T], s T) Vec1[T] { return Or1(v, New1(s)) }

// ScalarOr1 returns s | v on every component.
func ScalarOr1[T scalar.Integer](s T, v Vec1[T]) Vec1[T] { return Or1(New1(s), v) }

// Xor1 returns a ^ b component-wise.
func Xor1[T scalar.Integer](a, b Vec1[T]) Vec1[T] {
	return Vec1[T]{a.X ^ b.X}
}

// XorScalar1 returns v ^ s on every component.
func XorScalar1[T scalar.Integer](v Vec1[T], s T) Vec1[T] { return Xor1(v, New1(s)) }

// ScalarXor1 returns s ^ v on every component.
func ScalarXor1[T scalar.Integer](s T, v Vec1[T]) Vec1[T] { return Xor1(New1(s), v) }

// Not1 returns the bitwise complement ^v.
func Not1[T scalar.Integer](v Vec1[T]) Vec1[T] { return Vec1[T]{^v.X} }

// Shl1 shifts each component of v by the matching component of n.
func Shl1[T, U scalar.Integer](v Vec1[T], n Vec1[U]) Vec1[T] {
	return Vec1[T]{v.X << n.X}
}

// ShlScalar1 shifts every component of v by n.
func ShlScalar1[T, U scalar.Integer](v Vec1[T], n U) Vec1[T] { return Shl1(v, New1(n)) }

// ScalarShl1 shifts s by each component of n.
func ScalarShl1[T, U scalar.Integer](s T, n Vec1[U]) Vec1[T] { return Shl1(New1(s), n) }

// Shr1 shifts each component of v by the matching component of n.
func Shr1[T, U scalar.Integer](v Vec1[T], n Vec1[U]) Vec1[T] {
	return Vec1[T]{v.X >> n.X}
}

// ShrScalar1 shifts every component of v by n.
func ShrScalar1[T, U scalar.Integer](v Vec1[T], n U) Vec1[T] { return Shr1(v, New1(n)) }

// ScalarShr1 shifts s by each component of n.
func ScalarShr1[T, U scalar.Integer](s T, n Vec1[U]) Vec1[T] { return Shr1(New1(s), n) }

// AndAssign1 performs *dst &= o.
func AndAssign1[T scalar.Integer](dst *Vec1[T], o Vec1[T]) { *dst = And1(*dst, o) }

// AndAssignScalar1 performs *dst &= s.
func AndAssignScalar1[T scalar.Integer](dst *Vec1[T], s T) { *dst = AndScalar1(*dst, s) }

// OrAssign1 performs *dst |= o.
func OrAssign1[T scalar.Integer](dst *Vec1[T], o Vec1[T]) { *dst = Or1(*dst, o) }

// OrAssignScalar1 performs *dst |= s.
func OrAssignScalar1[T scalar.Integer](dst *Vec1[T], s T) { *dst = OrScalar1(*dst, s) }

// XorAssign1 performs *dst ^= o.
func XorAssign1[T scalar.Integer](dst *Vec1[T], o Vec1[T]) { *dst = Xor1(*dst, o) }

// XorAssignScalar1 performs *dst ^= s.
func XorAssignScalar1[T scalar.Integer](dst *Vec1[T], s T) { *dst = XorScalar1(*dst, s) }

// ShlAssign1 performs *dst <<= n.
func ShlAssign1[T, U scalar.Integer](dst *Vec1[T], n Vec1[U]) { *dst = Shl1(*dst, n) }

// ShlAssignScalar1 performs *dst <<= n.
func ShlAssignScalar1[T, U scalar.Integer](dst *Vec1[T], n U) { *dst = ShlScalar1(*dst, n) }

// ShrAssign1 performs *dst >>= n.
func ShrAssign1[T, U scalar.Integer](dst *Vec1[T], n Vec1[U]) { *dst = Shr1(*dst, n) }

// ShrAssignScalar1 performs *dst >>= n.
func ShrAssignScalar1[T, U scalar.Integer](dst *Vec1[T], n U) { *dst = ShrScalar1(*dst, n) }

// ---------- Vec2 ----------

// And2 returns a & b component-wise.
func And2[T scalar.Integer](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X & b.X, a.Y & b.Y}
}

// AndScalar2 returns v & s on every component.
func AndScalar2[T scalar.Integer](v Vec2[T], s T) Vec2[T] { return And2(v, Splat2(s)) }

// AndVec12 returns v & o.X on every component.
func AndVec12[T scalar.Integer](v Vec2[T], o Vec1[T]) Vec2[T] { return And2(v, Splat2(o.X)) }

// ScalarAnd2 returns s & v on every component.
func ScalarAnd2[T scalar.Integer](s T, v Vec2[T]) Vec2[T] { return And2(Splat2(s), v) }

// Or2 returns a | b component-wise.
func Or2[T scalar.Integer](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X | b.X, a.Y | b.Y}
}

// OrScalar2 returns v | s on every component.
func OrScalar2[T scalar.Integer](v Vec2[T], s T) Vec2[T] { return Or2(v, Splat2(s)) }

// OrVec12 returns v | o.X on every component.
func OrVec12[T scalar.Integer](v Vec2[T], o Vec1[T]) Vec2[T] { return Or2(v, Splat2(o.X)) }

// ScalarOr2 returns s | v on every component.
func ScalarOr2[T scalar.Integer](s T, v Vec2[T]) Vec2[T] { return Or2(Splat2(s), v) }

// Xor2 returns a ^ b component-wise.
func Xor2[T scalar.Integer](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X ^ b.X, a.Y ^ b.Y}
}

// XorScalar2 returns v ^ s on every component.
func XorScalar2[T scalar.Integer](v Vec2[T], s T) Vec2[T] { return Xor2(v, Splat2(s)) }

// XorVec12 returns v ^ o.X on every component.
func XorVec12[T scalar.Integer](v Vec2[T], o Vec1[T]) Vec2[T] { return Xor2(v, Splat2(o.X)) }

// ScalarXor2 returns s ^ v on every component.
func ScalarXor2[T scalar.Integer](s T, v Vec2[T]) Vec2[T] { return Xor2(Splat2(s), v) }

// Not2 returns the bitwise complement ^v.
func Not2[T scalar.Integer](v Vec2[T]) Vec2[T] { return Vec2[T]{^v.X, ^v.Y} }

// Shl2 shifts each component of v by the matching component of n.
func Shl2[T, U scalar.Integer](v Vec2[T], n Vec2[U]) Vec2[T] {
	return Vec2[T]{v.X << n.X, v.Y << n.Y}
}

// ShlScalar2 shifts every component of v by n.
func ShlScalar2[T, U scalar.Integer](v Vec2[T], n U) Vec2[T] { return Shl2(v, Splat2(n)) }

// ShlVec12 shifts every component of v by n.X.
func ShlVec12[T, U scalar.Integer](v Vec2[T], n Vec1[U]) Vec2[T] { return Shl2(v, Splat2(n.X)) }

// ScalarShl2 shifts s by each component of n.
func ScalarShl2[T, U scalar.Integer](s T, n Vec2[U]) Vec2[T] { return Shl2(Splat2(s), n) }

// Shr2 shifts each component of v by the matching component of n.
func Shr2[T, U scalar.Integer](v Vec2[T], n Vec2[U]) Vec2[T] {
	return Vec2[T]{v.X >> n.X, v.Y >> n.Y}
}

// ShrScalar2 shifts every component of v by n.
func ShrScalar2[T, U scalar.Integer](v Vec2[T], n U) Vec2[T] { return Shr2(v, Splat2(n)) }

// ShrVec12 shifts every component of v by n.X.
func ShrVec12[T, U scalar.Integer](v Vec2[T], n Vec1[U]) Vec2[T] { return Shr2(v, Splat2(n.X)) }

// ScalarShr2 shifts s by each component of n.
func ScalarShr2[T, U scalar.Integer](s T, n Vec2[U]) Vec2[T] { return Shr2(Splat2(s), n) }

// AndAssign2 performs *dst &= o.
func AndAssign2[T scalar.Integer](dst *Vec2[T], o Vec2[T]) { *dst = And2(*dst, o) }

// AndAssignScalar2 performs *dst &= s.
func AndAssignScalar2[T scalar.Integer](dst *Vec2[T], s T) { *dst = AndScalar2(*dst, s) }

// OrAssign2 performs *dst |= o.
func OrAssign2[T scalar.Integer](dst *Vec2[T], o Vec2[T]) { *dst = Or2(*dst, o) }

// OrAssignScalar2 performs *dst |= s.
func OrAssignScalar2[T scalar.Integer](dst *Vec2[T], s T) { *dst = OrScalar2(*dst, s) }

// XorAssign2 performs *dst ^= o.
func XorAssign2[T scalar.Integer](dst *Vec2[T], o Vec2[T]) { *dst = Xor2(*dst, o) }

// XorAssignScalar2 performs *dst ^= s.
func XorAssignScalar2[T scalar.Integer](dst *Vec2[T], s T) { *dst = XorScalar2(*dst, s) }

// ShlAssign2 performs *dst <<= n.
func ShlAssign2[T, U scalar.Integer](dst *Vec2[T], n Vec2[U]) { *dst = Shl2(*dst, n) }

// ShlAssignScalar2 performs *dst <<= n.
func ShlAssignScalar2[T, U scalar.Integer](dst *Vec2[T], n U) { *dst = ShlScalar2(*dst, n) }

// ShrAssign2 performs *dst >>= n.
func ShrAssign2[T, U scalar.Integer](dst *Vec2[T], n Vec2[U]) { *dst = Shr2(*dst, n) }

// ShrAssignScalar2 performs *dst >>= n.
func ShrAssignScalar2[T, U scalar.Integer](dst *Vec2[T], n U) { *dst = ShrScalar2(*dst, n) }

// ---------- Vec3 ----------

// And3 returns a & b component-wise.
func And3[T scalar.Integer](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X & b.X, a.Y & b.Y, a.Z & b.Z}
}

// AndScalar3 returns v & s on every component.
func AndScalar3[T scalar.Integer](v Vec3[T], s T) Vec3[T] { return And3(v, Splat3(s)) }

// AndVec13 returns v & o.X on every component.
func AndVec13[T scalar.Integer](v Vec3[T], o Vec1[T]) Vec3[T] { return And3(v, Splat3(o.X)) }

// ScalarAnd3 returns s & v on every component.
func ScalarAnd3[T scalar.Integer](s T, v Vec3[T]) Vec3[T] { return And3(Splat3(s), v) }

// Or3 returns a | b component-wise.
func Or3[T scalar.Integer](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X | b.X, a.Y | b.Y, a.Z | b.Z}
}

// OrScalar3 returns v | s on every component.
func OrScalar3[T scalar.Integer](v Vec3[T], s T) Vec3[T] { return Or3(v, Splat3(s)) }

// OrVec13 returns v | o.X on every component.
func OrVec13[T scalar.Integer](v Vec3[T], o Vec1[T]) Vec3[T] { return Or3(v, Splat3(o.X)) }

// ScalarOr3 returns s | v on every component.
func ScalarOr3[T scalar.Integer](s T, v Vec3[T]) Vec3[T] { return Or3(Splat3(s), v) }

// Xor3 returns a ^ b component-wise.
func Xor3[T scalar.Integer](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X ^ b.X, a.Y ^ b.Y, a.Z ^ b.Z}
}

// XorScalar3 returns v ^ s on every component.
func XorScalar3[T scalar.Integer](v Vec3[T], s T) Vec3[T] { return Xor3(v, Splat3(s)) }

// XorVec13 returns v ^ o.X on every component.
func XorVec13[T scalar.Integer](v Vec3[T], o Vec1[T]) Vec3[T] { return Xor3(v, Splat3(o.X)) }

// ScalarXor3 returns s ^ v on every component.
func ScalarXor3[T scalar.Integer](s T, v Vec3[T]) Vec3[T] { return Xor3(Splat3(s), v) }

// Not3 returns the bitwise complement ^v.
func Not3[T scalar.Integer](v Vec3[T]) Vec3[T] { return Vec3[T]{^v.X, ^v.Y, ^v.Z} }

// Shl3 shifts each component of v by the matching component of n.
func Shl3[T, U scalar.Integer](v Vec3[T], n Vec3[U]) Vec3[T] {
	return Vec3[T]{v.X << n.X, v.Y << n.Y, v.Z << n.Z}
}

// ShlScalar3 shifts every component of v by n.
func ShlScalar3[T, U scalar.Integer](v Vec3[T], n U) Vec3[T] { return Shl3(v, Splat3(n)) }

// ShlVec13 shifts every component of v by n.X.
func ShlVec13[T, U scalar.Integer](v Vec3[T], n Vec1[U]) Vec3[T] { return Shl3(v, Splat3(n.X)) }

// ScalarShl3 shifts s by each component of n.
func ScalarShl3[T, U scalar.Integer](s T, n Vec3[U]) Vec3[T] { return Shl3(Splat3(s), n) }

// Shr3 shifts each component of v by the matching component of n.
func Shr3[T, U scalar.Integer](v Vec3[T], n Vec3[U]) Vec3[T] {
	return Vec3[T]{v.X >> n.X, v.Y >> n.Y, v.Z >> n.Z}
}

// ShrScalar3 shifts every component of v by n.
func ShrScalar3[T, U scalar.Integer](v Vec3[T], n U) Vec3[T] { return Shr3(v, Splat3(n)) }

// ShrVec13 shifts every component of v by n.X.
func ShrVec13[T, U scalar.Integer](v Vec3[T], n Vec1[U]) Vec3[T] { return Shr3(v, Splat3(n.X)) }

// ScalarShr3 shifts s by each component of n.
func ScalarShr3[T, U scalar.Integer](s T, n Vec3[U]) Vec3[T] { return Shr3(Splat3(s), n) }

// AndAssign3 performs *dst &= o.
func AndAssign3[T scalar.Integer](dst *Vec3[T], o Vec3[T]) { *dst = And3(*dst, o) }

// AndAssignScalar3 performs *dst &= s.
func AndAssignScalar3[T scalar.Integer](dst *Vec3[T], s T) { *dst = AndScalar3(*dst, s) }

// OrAssign3 performs *dst |= o.
func OrAssign3[T scalar.Integer](dst *Vec3[T], o Vec3[T]) { *dst = Or3(*dst, o) }

// OrAssignScalar3 performs *dst |= s.
func OrAssignScalar3[T scalar.Integer](dst *Vec3[T], s T) { *dst = OrScalar3(*dst, s) }

// XorAssign3 performs *dst ^= o.
func XorAssign3[T scalar.Integer](dst *Vec3[T], o Vec3[T]) { *dst = Xor3(*dst, o) }

// XorAssignScalar3 performs *dst ^= s.
func XorAssignScalar3[T scalar.Integer](dst *Vec3[T], s T) { *dst = XorScalar3(*dst, s) }

// ShlAssign3 performs *dst <<= n.
func ShlAssign3[T, U scalar.Integer](dst *Vec3[T], n Vec3[U]) { *dst = Shl3(*dst, n) }

// ShlAssignScalar3 performs *dst <<= n.
func ShlAssignScalar3[T, U scalar.Integer](dst *Vec3[T], n U) { *dst = ShlScalar3(*dst, n) }

// ShrAssign3 performs *dst >>= n.
func ShrAssign3[T, U scalar.Integer](dst *Vec3[T], n Vec3[U]) { *dst = Shr3(*dst, n) }

// ShrAssignScalar3 performs *dst >>= n.
func ShrAssignScalar3[T, U scalar.Integer](dst *Vec3[T], n U) { *dst = ShrScalar3(*dst, n) }

// ---------- Vec4 ----------

// And4 returns a & b component-wise.
func And4[T scalar.Integer](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X & b.X, a.Y & b.Y, a.Z & b.Z, a.W & b.W}
}

// AndScalar4 returns v & s on every component.
func AndScalar4[T scalar.Integer](v Vec4[T], s T) Vec4[T] { return And4(v, Splat4(s)) }

// AndVec14 returns v & o.X on every component.
func AndVec14[T scalar.Integer](v Vec4[T], o Vec1[T]) Vec4[T] { return And4(v, Splat4(o.X)) }

// ScalarAnd4 returns s & v on every component.
func ScalarAnd4[T scalar.Integer](s T, v Vec4[T]) Vec4[T] { return And4(Splat4(s), v) }

// Or4 returns a | b component-wise.
func Or4[T scalar.Integer](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X | b.X, a.Y | b.Y, a.Z | b.Z, a.W | b.W}
}

// OrScalar4 returns v | s on every component.
func OrScalar4[T scalar.Integer](v Vec4[T], s T) Vec4[T] { return Or4(v, Splat4(s)) }

// OrVec14 returns v | o.X on every component.
func OrVec14[T scalar.Integer](v Vec4[T], o Vec1[T]) Vec4[T] { return Or4(v, Splat4(o.X)) }

// ScalarOr4 returns s | v on every component.
func ScalarOr4[T scalar.Integer](s T, v Vec4[T]) Vec4[T] { return Or4(Splat4(s), v) }

// Xor4 returns a ^ b component-wise.
func Xor4[T scalar.Integer](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X ^ b.X, a.Y ^ b.Y, a.Z ^ b.Z, a.W ^ b.W}
}

// XorScalar4 returns v ^ s on every component.
func XorScalar4[T scalar.Integer](v Vec4[T], s T) Vec4[T] { return Xor4(v, Splat4(s)) }

// XorVec14 returns v ^ o.X on every component.
func XorVec14[T scalar.Integer](v Vec4[T], o Vec1[T]) Vec4[T] { return Xor4(v, Splat4(o.X)) }

// ScalarXor4 returns s ^ v on every component.
func ScalarXor4[T scalar.Integer](s T, v Vec4[T]) Vec4[T] { return Xor4(Splat4(s), v) }

// Not4 returns the bitwise complement ^v.
func Not4[T scalar.Integer](v Vec4[T]) Vec4[T] { return Vec4[T]{^v.X, ^v.Y, ^v.Z, ^v.W} }

// Shl4 shifts each component of v by the matching component of n.
func Shl4[T, U scalar.Integer](v Vec4[T], n Vec4[U]) Vec4[T] {
	return Vec4[T]{v.X << n.X, v.Y << n.Y, v.Z << n.Z, v.W << n.W}
}

// ShlScalar4 shifts every component of v by n.
func ShlScalar4[T, U scalar.Integer](v Vec4[T], n U) Vec4[T] { return Shl4(v, Splat4(n)) }

// ShlVec14 shifts every component of v by n.X.
func ShlVec14[T, U scalar.Integer](v Vec4[T], n Vec1[U]) Vec4[T] { return Shl4(v, Splat4(n.X)) }

// ScalarShl4 shifts s by each component of n.
func ScalarShl4[T, U scalar.Integer](s T, n Vec4[U]) Vec4[T] { return Shl4(Splat4(s), n) }

// Shr4 shifts each component of v by the matching component of n.
func Shr4[T, U scalar.Integer](v Vec4[T], n Vec4[U]) Vec4[T] {
	return Vec4[T]{v.X >> n.X, v.Y >> n.Y, v.Z >> n.Z, v.W >> n.W}
}

// ShrScalar4 shifts every component of v by n.
func ShrScalar4[T, U scalar.Integer](v Vec4[T], n U) Vec4[T] { return Shr4(v, Splat4(n)) }

// ShrVec14 shifts every component of v by n.X.
func ShrVec14[T, U scalar.Integer](v Vec4[T], n Vec1[U]) Vec4[T] { return Shr4(v, Splat4(n.X)) }

// ScalarShr4 shifts s by each component of n.
func ScalarShr4[T, U scalar.Integer](s T, n Vec4[U]) Vec4[T] { return Shr4(Splat4(s), n) }

// AndAssign4 performs *dst &= o.
func AndAssign4[T scalar.Integer](dst *Vec4[T], o Vec4[T]) { *dst = And4(*dst, o) }

// AndAssignScalar4 performs *dst &= s.
func AndAssignScalar4[T scalar.Integer](dst *Vec4[T], s T) { *dst = AndScalar4(*dst, s) }

// OrAssign4 performs *dst |= o.
func OrAssign4[T scalar.Integer](dst *Vec4[T], o Vec4[T]) { *dst = Or4(*dst, o) }

// OrAssignScalar4 performs *dst |= s.
func OrAssignScalar4[T scalar.Integer](dst *Vec4[T], s T) { *dst = OrScalar4(*dst, s) }

// XorAssign4 performs *dst ^= o.
func XorAssign4[T scalar.Integer](dst *Vec4[T], o Vec4[T]) { *dst = Xor4(*dst, o) }

// XorAssignScalar4 performs *dst ^= s.
func XorAssignScalar4[T scalar.Integer](dst *Vec4[T], s T) { *dst = XorScalar4(*dst, s) }

// ShlAssign4 performs *dst <<= n.
func ShlAssign4[T, U scalar.Integer](dst *Vec4[T], n Vec4[U]) { *dst = Shl4(*dst, n) }

// ShlAssignScalar4 performs *dst <<= n.
func ShlAssignScalar4[T, U scalar.Integer](dst *Vec4[T], n U) { *dst = ShlScalar4(*dst, n) }

// ShrAssign4 performs *dst >>= n.
func ShrAssign4[T, U scalar.Integer](dst *Vec4[T], n Vec4[U]) { *dst = Shr4(*dst, n) }

// ShrAssignScalar4 performs *dst >>= n.
func ShrAssignScalar4[T, U scalar.Integer](dst *Vec4[T], n U) { *dst = ShrScalar4(*dst, n) }

// ---------- Vec2: Vec1 on the left, Vec1 compound forms ----------

// Vec1And2 returns s.X & v on every component.
func Vec1And2[T scalar.Integer](s Vec1[T], v Vec2[T]) Vec2[T] { return And2(Splat2(s.X), v) }

// Vec1Or2 returns s.X | v on every component.
func Vec1Or2[T scalar.Integer](s Vec1[T], v Vec2[T]) Vec2[T] { return Or2(Splat2(s.X), v) }

// Vec1Xor2 returns s.X ^ v on every component.
func Vec1Xor2[T scalar.Integer](s Vec1[T], v Vec2[T]) Vec2[T] { return Xor2(Splat2(s.X), v) }

// Vec1Shl2 shifts s.X by each component of n.
func Vec1Shl2[T, U scalar.Integer](s Vec1[T], n Vec2[U]) Vec2[T] { return Shl2(Splat2(s.X), n) }

// Vec1Shr2 shifts s.X by each component of n.
func Vec1Shr2[T, U scalar.Integer](s Vec1[T], n Vec2[U]) Vec2[T] { return Shr2(Splat2(s.X), n) }

// AndAssignVec12 performs *dst &= o.X.
func AndAssignVec12[T scalar.Integer](dst *Vec2[T], o Vec1[T]) { *dst = AndVec12(*dst, o) }

// OrAssignVec12 performs *dst |= o.X.
func OrAssignVec12[T scalar.Integer](dst *Vec2[T], o Vec1[T]) { *dst = OrVec12(*dst, o) }

// XorAssignVec12 performs *dst ^= o.X.
func XorAssignVec12[T scalar.Integer](dst *Vec2[T], o Vec1[T]) { *dst = XorVec12(*dst, o) }

// ShlAssignVec12 performs *dst <<= n.X.
func ShlAssignVec12[T, U scalar.Integer](dst *Vec2[T], n Vec1[U]) { *dst = ShlVec12(*dst, n) }

// ShrAssignVec12 performs *dst >>= n.X.
func ShrAssignVec12[T, U scalar.Integer](dst *Vec2[T], n Vec1[U]) { *dst = ShrVec12(*dst, n) }

// ---------- Vec3: Vec1 on the left, Vec1 compound forms ----------

// Vec1And3 returns s.X & v on every component.
func Vec1And3[T scalar.Integer](s Vec1[T], v Vec3[T]) Vec3[T] { return And3(Splat3(s.X), v) }

// Vec1Or3 returns s.X | v on every component.
func Vec1Or3[T scalar.Integer](s Vec1[T], v Vec3[T]) Vec3[T] { return Or3(Splat3(s.X), v) }

// Vec1Xor3 returns s.X ^ v on every component.
func Vec1Xor3[T scalar.Integer](s Vec1[T], v Vec3[T]) Vec3[T] { return Xor3(Splat3(s.X), v) }

// Vec1Shl3 shifts s.X by each component of n.
func Vec1Shl3[T, U scalar.Integer](s Vec1[T], n Vec3[U]) Vec3[T] { return Shl3(Splat3(s.X), n) }

// Vec1Shr3 shifts s.X by each component of n.
func Vec1Shr3[T, U scalar.Integer](s Vec1[T], n Vec3[U]) Vec3[T] { return Shr3(Splat3(s.X), n) }

// AndAssignVec13 performs *dst &= o.X.
func AndAssignVec13[T scalar.Integer](dst *Vec3[T], o Vec1[T]) { *dst = AndVec13(*dst, o) }

// OrAssignVec13 performs *dst |= o.X.
func OrAssignVec13[T scalar.Integer](dst *Vec3[T], o Vec1[T]) { *dst = OrVec13(*dst, o) }

// XorAssignVec13 performs *dst ^= o.X.
func XorAssignVec13[T scalar.Integer](dst *Vec3[T], o Vec1[T]) { *dst = XorVec13(*dst, o) }

// ShlAssignVec13 performs *dst <<= n.X.
func ShlAssignVec13[T, U scalar.Integer](dst *Vec3[T], n Vec1[U]) { *dst = ShlVec13(*dst, n) }

// ShrAssignVec13 performs *dst >>= n.X.
func ShrAssignVec13[T, U scalar.Integer](dst *Vec3[T], n Vec1[U]) { *dst = ShrVec13(*dst, n) }

// ---------- Vec4: Vec1 on the left, Vec1 compound forms ----------

// Vec1And4 returns s.X & v on every component.
func Vec1And4[T scalar.Integer](s Vec1[T], v Vec4[T]) Vec4[T] { return And4(Splat4(s.X), v) }

// Vec1Or4 returns s.X | v on every component.
func Vec1Or4[T scalar.Integer](s Vec1[T], v Vec4[T]) Vec4[T] { return Or4(Splat4(s.X), v) }

// Vec1Xor4 returns s.X ^ v on every component.
func Vec1Xor4[T scalar.Integer](s Vec1[T], v Vec4[T]) Vec4[T] { return Xor4(Splat4(s.X), v) }

// Vec1Shl4 shifts s.X by each component of n.
func Vec1Shl4[T, U scalar.Integer](s Vec1[T], n Vec4[U]) Vec4[T] { return Shl4(Splat4(s.X), n) }

// Vec1Shr4 shifts s.X by each component of n.
func Vec1Shr4[T, U scalar.Integer](s Vec1[T], n Vec4[U]) Vec4[T] { return Shr4(Splat4(s.X), n) }

// AndAssignVec14 performs *dst &= o.X.
func AndAssignVec14[T scalar.Integer](dst *Vec4[T], o Vec1[T]) { *dst = AndVec14(*dst, o) }

// OrAssignVec14 performs *dst |= o.X.
func OrAssignVec14[T scalar.Integer](dst *Vec4[T], o Vec1[T]) { *dst = OrVec14(*dst, o) }

// XorAssignVec14 performs *dst ^= o.X.
func XorAssignVec14[T scalar.Integer](dst *Vec4[T], o Vec1[T]) { *dst = XorVec14(*dst, o) }

// ShlAssignVec14 performs *dst <<= n.X.
func ShlAssignVec14[T, U scalar.Integer](dst *Vec4[T], n Vec1[U]) { *dst = ShlVec14(*dst, n) }

// ShrAssignVec14 performs *dst >>= n.X.
func ShrAssignVec14[T, U scalar.Integer](dst *Vec4[T], n Vec1[U]) { *dst = ShrVec14(*dst, n) }
