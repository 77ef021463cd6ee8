// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/glm/scalar"

// Neg1 returns -v. Unsigned component types are rejected at compile time.
func Neg1[T scalar.Real](v Vec1[T]) Vec1[T] { return Vec1[T]{-v.X} }

// Neg2 returns -v. Unsigned component types are rejected at compile time.
func Neg2[T scalar.Real](v Vec2[T]) Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Neg3 returns -v. Unsigned component types are rejected at compile time.
func Neg3[T scalar.Real](v Vec3[T]) Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Neg4 returns -v. Unsigned component types are rejected at compile time.
func Neg4[T scalar.Real](v Vec4[T]) Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }
