// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/glm/matrix"
	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// ToR2 widens v to an r2.Vec.
func ToR2[T scalar.Scalar](v vector.Vec2[T]) r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// FromR2 converts p to a Vec2 of element type T.
func FromR2[T scalar.Scalar](p r2.Vec) vector.Vec2[T] {
	return vector.New2(T(p.X), T(p.Y))
}

// ToR3 widens v to an r3.Vec.
func ToR3[T scalar.Scalar](v vector.Vec3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts p to a Vec3 of element type T.
func FromR3[T scalar.Scalar](p r3.Vec) vector.Vec3[T] {
	return vector.New3(T(p.X), T(p.Y), T(p.Z))
}

// ToR3Mat copies m into a new row-major *r3.Mat.
func ToR3Mat[T scalar.Scalar](m matrix.Mat3[T]) *r3.Mat {
	out := r3.NewMat(nil)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out.Set(r, c, float64(m.Cols[c].At(r)))
		}
	}

	return out
}

// FromR3Mat copies a into a column-major Mat3 of element type T.
// A nil a yields the zero matrix.
func FromR3Mat[T scalar.Scalar](a *r3.Mat) matrix.Mat3[T] {
	var m matrix.Mat3[T]
	if a == nil {
		return m
	}
	for c := 0; c < 3; c++ {
		m.Cols[c] = vector.New3(T(a.At(0, c)), T(a.At(1, c)), T(a.At(2, c)))
	}

	return m
}
