// SPDX-License-Identifier: MIT

// Package vector: scalar and Vec1 operands on the left-hand side.
//
// Go methods dispatch on the receiver only, so s - v and s / v are free
// functions. Each splats the left operand and applies the component-wise
// method, which keeps the two broadcast directions consistent by
// construction.
package vector

import "github.com/katalvlaran/glm/scalar"

// ---------- Vec1 ----------

// ScalarAdd1 returns s + v on every component.
func ScalarAdd1[T scalar.Scalar](s T, v Vec1[T]) Vec1[T] { return New1(s).Add(v) }

// ScalarSub1 returns s - v on every component.
func ScalarSub1[T scalar.Scalar](s T, v Vec1[T]) Vec1[T] { return New1(s).Sub(v) }

// ScalarMul1 returns s * v on every component.
func ScalarMul1[T scalar.Scalar](s T, v Vec1[T]) Vec1[T] { return New1(s).Mul(v) }

// ScalarDiv1 returns s / v on every component.
func ScalarDiv1[T scalar.Scalar](s T, v Vec1[T]) Vec1[T] { return New1(s).Div(v) }

// ScalarRem1 returns s % v on every component.
func ScalarRem1[T scalar.Scalar](s T, v Vec1[T]) Vec1[T] { return New1(s).Rem(v) }

// ---------- Vec2 ----------

// ScalarAdd2 returns s + v on every component.
func ScalarAdd2[T scalar.Scalar](s T, v Vec2[T]) Vec2[T] { return Splat2(s).Add(v) }

// ScalarSub2 returns s - v on every component.
func ScalarSub2[T scalar.Scalar](s T, v Vec2[T]) Vec2[T] { return Splat2(s).Sub(v) }

// ScalarMul2 returns s * v on every component.
func ScalarMul2[T scalar.Scalar](s T, v Vec2[T]) Vec2[T] { return Splat2(s).Mul(v) }

// ScalarDiv2 returns s / v on every component.
func ScalarDiv2[T scalar.Scalar](s T, v Vec2[T]) Vec2[T] { return Splat2(s).Div(v) }

// ScalarRem2 returns s % v on every component.
func ScalarRem2[T scalar.Scalar](s T, v Vec2[T]) Vec2[T] { return Splat2(s).Rem(v) }

// Vec1Add2 returns s.X + v on every component.
func Vec1Add2[T scalar.Scalar](s Vec1[T], v Vec2[T]) Vec2[T] { return Splat2(s.X).Add(v) }

// Vec1Sub2 returns s.X - v on every component.
func Vec1Sub2[T scalar.Scalar](s Vec1[T], v Vec2[T]) Vec2[T] { return Splat2(s.X).Sub(v) }

// Vec1Mul2 returns s.X * v on every component.
func Vec1Mul2[T scalar.Scalar](s Vec1[T], v Vec2[T]) Vec2[T] { return Splat2(s.X).Mul(v) }

// Vec1Div2 returns s.X / v on every component.
func Vec1Div2[T scalar.Scalar](s Vec1[T], v Vec2[T]) Vec2[T] { return Splat2(s.X).Div(v) }

// Vec1Rem2 returns s.X % v on every component.
func Vec1Rem2[T scalar.Scalar](s Vec1[T], v Vec2[T]) Vec2[T] { return Splat2(s.X).Rem(v) }

// ---------- Vec3 ----------

// ScalarAdd3 returns s + v on every component.
func ScalarAdd3[T scalar.Scalar](s T, v Vec3[T]) Vec3[T] { return Splat3(s).Add(v) }

// ScalarSub3 returns s - v on every component.
func ScalarSub3[T scalar.Scalar](s T, v Vec3[T]) Vec3[T] { return Splat3(s).Sub(v) }

// ScalarMul3 returns s * v on every component.
func ScalarMul3[T scalar.Scalar](s T, v Vec3[T]) Vec3[T] { return Splat3(s).Mul(v) }

// ScalarDiv3 returns s / v on every component.
func ScalarDiv3[T scalar.Scalar](s T, v Vec3[T]) Vec3[T] { return Splat3(s).Div(v) }

// ScalarRem3 returns s % v on every component.
func ScalarRem3[T scalar.Scalar](s T, v Vec3[T]) Vec3[T] { return Splat3(s).Rem(v) }

// Vec1Add3 returns s.X + v on every component.
func Vec1Add3[T scalar.Scalar](s Vec1[T], v Vec3[T]) Vec3[T] { return Splat3(s.X).Add(v) }

// Vec1Sub3 returns s.X - v on every component.
func Vec1Sub3[T scalar.Scalar](s Vec1[T], v Vec3[T]) Vec3[T] { return Splat3(s.X).Sub(v) }

// Vec1Mul3 returns s.X * v on every component.
func Vec1Mul3[T scalar.Scalar](s Vec1[T], v Vec3[T]) Vec3[T] { return Splat3(s.X).Mul(v) }

// Vec1Div3 returns s.X / v on every component.
func Vec1Div3[T scalar.Scalar](s Vec1[T], v Vec3[T]) Vec3[T] { return Splat3(s.X).Div(v) }

// Vec1Rem3 returns s.X % v on every component.
func Vec1Rem3[T scalar.Scalar](s Vec1[T], v Vec3[T]) Vec3[T] { return Splat3(s.X).Rem(v) }

// ---------- Vec4 ----------

// ScalarAdd4 returns s + v on every component.
func ScalarAdd4[T scalar.Scalar](s T, v Vec4[T]) Vec4[T] { return Splat4(s).Add(v) }

// ScalarSub4 returns s - v on every component.
func ScalarSub4[T scalar.Scalar](s T, v Vec4[T]) Vec4[T] { return Splat4(s).Sub(v) }

// ScalarMul4 returns s * v on every component.
func ScalarMul4[T scalar.Scalar](s T, v Vec4[T]) Vec4[T] { return Splat4(s).Mul(v) }

// ScalarDiv4 returns s / v on every component.
func ScalarDiv4[T scalar.Scalar](s T, v Vec4[T]) Vec4[T] { return Splat4(s).Div(v) }

// ScalarRem4 returns s % v on every component.
func ScalarRem4[T scalar.Scalar](s T, v Vec4[T]) Vec4[T] { return Splat4(s).Rem(v) }

// Vec1Add4 returns s.X + v on every component.
func Vec1Add4[T scalar.Scalar](s Vec1[T], v Vec4[T]) Vec4[T] { return Splat4(s.X).Add(v) }

// Vec1Sub4 returns s.X - v on every component.
func Vec1Sub4[T scalar.Scalar](s Vec1[T], v Vec4[T]) Vec4[T] { return Splat4(s.X).Sub(v) }

// Vec1Mul4 returns s.X * v on every component.
func Vec1Mul4[T scalar.Scalar](s Vec1[T], v Vec4[T]) Vec4[T] { return Splat4(s.X).Mul(v) }

// Vec1Div4 returns s.X / v on every component.
func Vec1Div4[T scalar.Scalar](s Vec1[T], v Vec4[T]) Vec4[T] { return Splat4(s.X).Div(v) }

// Vec1Rem4 returns s.X % v on every component.
func Vec1Rem4[T scalar.Scalar](s Vec1[T], v Vec4[T]) Vec4[T] { return Splat4(s.X).Rem(v) }
