// SPDX-License-Identifier: MIT

// Package vector: named instantiations for the common component types.
package vector

// float32 vectors.
type (
	Vec1f = Vec1[float32]
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]
)

// float64 vectors.
type (
	DVec1 = Vec1[float64]
	DVec2 = Vec2[float64]
	DVec3 = Vec3[float64]
	DVec4 = Vec4[float64]
)

// int32 vectors (C int).
type (
	IVec1 = Vec1[int32]
	IVec2 = Vec2[int32]
	IVec3 = Vec3[int32]
	IVec4 = Vec4[int32]
)

// uint32 vectors (C unsigned int).
type (
	UVec1 = Vec1[uint32]
	UVec2 = Vec2[uint32]
	UVec3 = Vec3[uint32]
	UVec4 = Vec4[uint32]
)
