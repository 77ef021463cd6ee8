// SPDX-License-Identifier: MIT
// Package matrix: products, closed-form inversion and division.
//
// Contract:
//   - Products accumulate in a fixed order per order N (documented per
//     function) so that results are reproducible bit for bit.
//   - Every product of two elements is converted to T before it is added.
//     An explicit conversion rounds, which prevents the compiler from fusing
//     a multiply with the following add and changing the last bit.
//   - Inverse2/3/4 never check the determinant; TryInverse2/3/4 do.
//
// Complexity:
//   - All kernels are O(1) in time and space; no allocation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// Operation tags used by matrixErrorf.
const (
	opInverse2 = "TryInverse2"
	opInverse3 = "TryInverse3"
	opInverse4 = "TryInverse4"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- rounding helpers ----------

// diffProd returns a·b − c·d with both products rounded to T.
func diffProd[T scalar.Scalar](a, b, c, d T) T { return T(a*b) - T(c*d) }

func scale2[T scalar.Scalar](v vector.Vec2[T], s T) vector.Vec2[T] {
	return vector.Vec2[T]{X: T(v.X * s), Y: T(v.Y * s)}
}

func scale3[T scalar.Scalar](v vector.Vec3[T], s T) vector.Vec3[T] {
	return vector.Vec3[T]{X: T(v.X * s), Y: T(v.Y * s), Z: T(v.Z * s)}
}

func scale4[T scalar.Scalar](v vector.Vec4[T], s T) vector.Vec4[T] {
	return vector.Vec4[T]{X: T(v.X * s), Y: T(v.Y * s), Z: T(v.Z * s), W: T(v.W * s)}
}

func prod4[T scalar.Scalar](a, b vector.Vec4[T]) vector.Vec4[T] {
	return vector.Vec4[T]{X: T(a.X * b.X), Y: T(a.Y * b.Y), Z: T(a.Z * b.Z), W: T(a.W * b.W)}
}

// ---------- matrix × vector (column form) ----------

// MulVec returns m·v with v treated as a column: m.Cols[0]·v.X + m.Cols[1]·v.Y.
func (m Mat2[T]) MulVec(v vector.Vec2[T]) vector.Vec2[T] {
	return scale2(m.Cols[0], v.X).Add(scale2(m.Cols[1], v.Y))
}

// MulVec returns m·v with v treated as a column, summed left to right.
func (m Mat3[T]) MulVec(v vector.Vec3[T]) vector.Vec3[T] {
	return scale3(m.Cols[0], v.X).Add(scale3(m.Cols[1], v.Y)).Add(scale3(m.Cols[2], v.Z))
}

// MulVec returns m·v with v treated as a column.
//
// Implementation:
//   - The four scaled columns are summed pairwise:
//     (c0·x + c1·y) + (c2·z + c3·w).
func (m Mat4[T]) MulVec(v vector.Vec4[T]) vector.Vec4[T] {
	lo := scale4(m.Cols[0], v.X).Add(scale4(m.Cols[1], v.Y))
	hi := scale4(m.Cols[2], v.Z).Add(scale4(m.Cols[3], v.W))

	return lo.Add(hi)
}

// ---------- vector × matrix (row form) ----------

// VecMul2 returns v·m with v treated as a row: r[c] = v·m.Cols[c].
func VecMul2[T scalar.Scalar](v vector.Vec2[T], m Mat2[T]) vector.Vec2[T] {
	return vector.New2(v.Dot(m.Cols[0]), v.Dot(m.Cols[1]))
}

// VecMul3 returns v·m with v treated as a row: r[c] = v·m.Cols[c].
func VecMul3[T scalar.Scalar](v vector.Vec3[T], m Mat3[T]) vector.Vec3[T] {
	return vector.New3(v.Dot(m.Cols[0]), v.Dot(m.Cols[1]), v.Dot(m.Cols[2]))
}

// VecMul4 returns v·m with v treated as a row: r[c] = v·m.Cols[c].
func VecMul4[T scalar.Scalar](v vector.Vec4[T], m Mat4[T]) vector.Vec4[T] {
	return vector.New4(v.Dot(m.Cols[0]), v.Dot(m.Cols[1]), v.Dot(m.Cols[2]), v.Dot(m.Cols[3]))
}

// ---------- matrix × matrix ----------

// Mul returns the composition m·o (o is applied first).
// Column c of the result is m.Cols[0]·o[c].X + m.Cols[1]·o[c].Y.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for c, b := range o.Cols {
		r.Cols[c] = scale2(m.Cols[0], b.X).Add(scale2(m.Cols[1], b.Y))
	}

	return r
}

// Mul returns the composition m·o (o is applied first), accumulating each
// result column left to right.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for c, b := range o.Cols {
		acc := scale3(m.Cols[0], b.X)
		acc = acc.Add(scale3(m.Cols[1], b.Y))
		r.Cols[c] = acc.Add(scale3(m.Cols[2], b.Z))
	}

	return r
}

// Mul returns the composition m·o (o is applied first).
//
// Implementation:
//   - Each result column is accumulated left to right:
//     acc = a0·b.x; acc += a1·b.y; acc += a2·b.z; acc += a3·b.w.
//
// Complexity:
//   - 64 multiplications, 48 additions.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for c, b := range o.Cols {
		acc := scale4(m.Cols[0], b.X)
		acc = acc.Add(scale4(m.Cols[1], b.Y))
		acc = acc.Add(scale4(m.Cols[2], b.Z))
		r.Cols[c] = acc.Add(scale4(m.Cols[3], b.W))
	}

	return r
}

// ---------- adjugates ----------

// adjugate2 returns the adjugate of m and its determinant.
func adjugate2[T scalar.Real](m Mat2[T]) (Mat2[T], T) {
	a, b := m.Cols[0], m.Cols[1]
	det := diffProd(a.X, b.Y, b.X, a.Y)
	adj := New2(vector.New2(b.Y, -a.Y), vector.New2(-b.X, a.X))

	return adj, det
}

// adjugate3 returns the transposed cofactor matrix of m and its determinant,
// expanded along the first column.
func adjugate3[T scalar.Real](m Mat3[T]) (Mat3[T], T) {
	a, b, c := m.Cols[0], m.Cols[1], m.Cols[2]

	var adj Mat3[T]
	adj.Cols[0].X = diffProd(b.Y, c.Z, c.Y, b.Z)
	adj.Cols[1].X = -diffProd(b.X, c.Z, c.X, b.Z)
	adj.Cols[2].X = diffProd(b.X, c.Y, c.X, b.Y)
	adj.Cols[0].Y = -diffProd(a.Y, c.Z, c.Y, a.Z)
	adj.Cols[1].Y = diffProd(a.X, c.Z, c.X, a.Z)
	adj.Cols[2].Y = -diffProd(a.X, c.Y, c.X, a.Y)
	adj.Cols[0].Z = diffProd(a.Y, b.Z, b.Y, a.Z)
	adj.Cols[1].Z = -diffProd(a.X, b.Z, b.X, a.Z)
	adj.Cols[2].Z = diffProd(a.X, b.Y, b.X, a.Y)

	det := T(a.X*diffProd(b.Y, c.Z, c.Y, b.Z)) -
		T(b.X*diffProd(a.Y, c.Z, c.Y, a.Z)) +
		T(c.X*diffProd(a.Y, b.Z, b.Y, a.Z))

	return adj, det
}

// adjugate4 returns the adjugate of m and its determinant.
//
// Implementation:
//   - Stage 1: the 18 distinct 2×2 sub-determinants of columns 1..3 are
//     packed into six factor vectors.
//   - Stage 2: each adjugate column is f(v1)·fac − f(v2)·fac + f(v3)·fac
//     with the sign pattern (+,−,+,−) on even columns and (−,+,−,+) on odd
//     ones.
//   - Stage 3: det = (m0·r0 + m1·r1) + (m2·r2 + m3·r3), where r is the
//     first row of the adjugate and m the first column of the input.
func adjugate4[T scalar.Real](m Mat4[T]) (Mat4[T], T) {
	m0, m1, m2, m3 := m.Cols[0], m.Cols[1], m.Cols[2], m.Cols[3]

	coef00 := diffProd(m2.Z, m3.W, m3.Z, m2.W)
	coef02 := diffProd(m1.Z, m3.W, m3.Z, m1.W)
	coef03 := diffProd(m1.Z, m2.W, m2.Z, m1.W)

	coef04 := diffProd(m2.Y, m3.W, m3.Y, m2.W)
	coef06 := diffProd(m1.Y, m3.W, m3.Y, m1.W)
	coef07 := diffProd(m1.Y, m2.W, m2.Y, m1.W)

	coef08 := diffProd(m2.Y, m3.Z, m3.Y, m2.Z)
	coef10 := diffProd(m1.Y, m3.Z, m3.Y, m1.Z)
	coef11 := diffProd(m1.Y, m2.Z, m2.Y, m1.Z)

	coef12 := diffProd(m2.X, m3.W, m3.X, m2.W)
	coef14 := diffProd(m1.X, m3.W, m3.X, m1.W)
	coef15 := diffProd(m1.X, m2.W, m2.X, m1.W)

	coef16 := diffProd(m2.X, m3.Z, m3.X, m2.Z)
	coef18 := diffProd(m1.X, m3.Z, m3.X, m1.Z)
	coef19 := diffProd(m1.X, m2.Z, m2.X, m1.Z)

	coef20 := diffProd(m2.X, m3.Y, m3.X, m2.Y)
	coef22 := diffProd(m1.X, m3.Y, m3.X, m1.Y)
	coef23 := diffProd(m1.X, m2.Y, m2.X, m1.Y)

	fac0 := vector.New4(coef00, coef00, coef02, coef03)
	fac1 := vector.New4(coef04, coef04, coef06, coef07)
	fac2 := vector.New4(coef08, coef08, coef10, coef11)
	fac3 := vector.New4(coef12, coef12, coef14, coef15)
	fac4 := vector.New4(coef16, coef16, coef18, coef19)
	fac5 := vector.New4(coef20, coef20, coef22, coef23)

	v0 := vector.New4(m1.X, m0.X, m0.X, m0.X)
	v1 := vector.New4(m1.Y, m0.Y, m0.Y, m0.Y)
	v2 := vector.New4(m1.Z, m0.Z, m0.Z, m0.Z)
	v3 := vector.New4(m1.W, m0.W, m0.W, m0.W)

	inv0 := prod4(v1, fac0).Sub(prod4(v2, fac1)).Add(prod4(v3, fac2))
	inv1 := prod4(v0, fac0).Sub(prod4(v2, fac3)).Add(prod4(v3, fac4))
	inv2 := prod4(v0, fac1).Sub(prod4(v1, fac3)).Add(prod4(v3, fac5))
	inv3 := prod4(v0, fac2).Sub(prod4(v1, fac4)).Add(prod4(v2, fac5))

	signA := vector.New4[T](1, -1, 1, -1)
	signB := vector.New4[T](-1, 1, -1, 1)
	adj := New4(inv0.Mul(signA), inv1.Mul(signB), inv2.Mul(signA), inv3.Mul(signB))

	row0 := adj.Row(0)
	det := m0.Dot(row0)

	return adj, det
}

// ---------- determinants ----------

// Determinant2 returns det(m).
func Determinant2[T scalar.Real](m Mat2[T]) T {
	_, det := adjugate2(m)

	return det
}

// Determinant3 returns det(m), expanded along the first column.
func Determinant3[T scalar.Real](m Mat3[T]) T {
	_, det := adjugate3(m)

	return det
}

// Determinant4 returns det(m) computed from the adjugate's first row, the
// same value Inverse4 divides by.
func Determinant4[T scalar.Real](m Mat4[T]) T {
	_, det := adjugate4(m)

	return det
}

// ---------- unchecked inverses ----------

// Inverse2 returns m⁻¹ = adj(m) · (1/det).
//
// Behavior highlights:
//   - No determinant check: a singular float matrix yields ±Inf/NaN, a
//     singular integer matrix panics with an integer divide by zero.
//   - Integer matrices use integer division for 1/det, so the result is
//     exact only when det is ±1.
func Inverse2[T scalar.Real](m Mat2[T]) Mat2[T] {
	adj, det := adjugate2(m)

	return adj.MulScalar(1 / det)
}

// Inverse3 returns m⁻¹; see Inverse2 for the unchecked behavior.
func Inverse3[T scalar.Real](m Mat3[T]) Mat3[T] {
	adj, det := adjugate3(m)

	return adj.MulScalar(1 / det)
}

// Inverse4 returns m⁻¹ via the cofactor scheme in adjugate4; see Inverse2
// for the unchecked behavior.
//
// AI-Hints:
//   - Affine transforms (last row 0,0,0,1) are always well conditioned
//     enough for float32 when their linear part is.
//   - Call TryInverse4 when the input may be singular.
func Inverse4[T scalar.Real](m Mat4[T]) Mat4[T] {
	adj, det := adjugate4(m)

	return adj.MulScalar(1 / det)
}

// ---------- division ----------

// Div2 returns a · b⁻¹.
func Div2[T scalar.Real](a, b Mat2[T]) Mat2[T] { return a.Mul(Inverse2(b)) }

// Div3 returns a · b⁻¹.
func Div3[T scalar.Real](a, b Mat3[T]) Mat3[T] { return a.Mul(Inverse3(b)) }

// Div4 returns a · b⁻¹.
func Div4[T scalar.Real](a, b Mat4[T]) Mat4[T] { return a.Mul(Inverse4(b)) }

// MatDivVec2 returns m⁻¹·v (v as a column).
func MatDivVec2[T scalar.Real](m Mat2[T], v vector.Vec2[T]) vector.Vec2[T] {
	return Inverse2(m).MulVec(v)
}

// MatDivVec3 returns m⁻¹·v (v as a column).
func MatDivVec3[T scalar.Real](m Mat3[T], v vector.Vec3[T]) vector.Vec3[T] {
	return Inverse3(m).MulVec(v)
}

// MatDivVec4 returns m⁻¹·v (v as a column).
func MatDivVec4[T scalar.Real](m Mat4[T], v vector.Vec4[T]) vector.Vec4[T] {
	return Inverse4(m).MulVec(v)
}

// VecDivMat2 returns v·m⁻¹ (v as a row).
func VecDivMat2[T scalar.Real](v vector.Vec2[T], m Mat2[T]) vector.Vec2[T] {
	return VecMul2(v, Inverse2(m))
}

// VecDivMat3 returns v·m⁻¹ (v as a row).
func VecDivMat3[T scalar.Real](v vector.Vec3[T], m Mat3[T]) vector.Vec3[T] {
	return VecMul3(v, Inverse3(m))
}

// VecDivMat4 returns v·m⁻¹ (v as a row).
func VecDivMat4[T scalar.Real](v vector.Vec4[T], m Mat4[T]) vector.Vec4[T] {
	return VecMul4(v, Inverse4(m))
}

// DivAssign2 performs *dst = *dst · b⁻¹.
func DivAssign2[T scalar.Real](dst *Mat2[T], b Mat2[T]) { *dst = Div2(*dst, b) }

// DivAssign3 performs *dst = *dst · b⁻¹.
func DivAssign3[T scalar.Real](dst *Mat3[T], b Mat3[T]) { *dst = Div3(*dst, b) }

// DivAssign4 performs *dst = *dst · b⁻¹.
func DivAssign4[T scalar.Real](dst *Mat4[T], b Mat4[T]) { *dst = Div4(*dst, b) }

// ---------- checked inverses ----------

// TryInverse2 is Inverse2 with input validation.
//
// Implementation:
//   - Stage 1: when NaN/Inf validation is enabled (default), reject
//     non-finite elements with ErrNaNInf.
//   - Stage 2: reject a zero or non-finite det with ErrSingular. Float
//     determinants are measured against the product of the column norms
//     (absolute with WithAbsoluteTolerance) and rejected within eps.
//     Integer determinants other than ±1 give ErrNotUnimodular.
//   - Stage 3: scale the adjugate by 1/det.
//
// Errors are wrapped with the operation tag; match them with errors.Is.
func TryInverse2[T scalar.Real](m Mat2[T], opts ...scalar.Option) (Mat2[T], error) {
	o := scalar.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := ValidateFinite2(m); err != nil {
			return Mat2[T]{}, matrixErrorf(opInverse2, err)
		}
	}
	adj, det := adjugate2(m)
	if err := checkDeterminant(det, m.Slice(), 2, o); err != nil {
		return Mat2[T]{}, matrixErrorf(opInverse2, err)
	}

	return adj.MulScalar(1 / det), nil
}

// TryInverse3 is Inverse3 with the validation described on TryInverse2.
func TryInverse3[T scalar.Real](m Mat3[T], opts ...scalar.Option) (Mat3[T], error) {
	o := scalar.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := ValidateFinite3(m); err != nil {
			return Mat3[T]{}, matrixErrorf(opInverse3, err)
		}
	}
	adj, det := adjugate3(m)
	if err := checkDeterminant(det, m.Slice(), 3, o); err != nil {
		return Mat3[T]{}, matrixErrorf(opInverse3, err)
	}

	return adj.MulScalar(1 / det), nil
}

// TryInverse4 is Inverse4 with the validation described on TryInverse2.
func TryInverse4[T scalar.Real](m Mat4[T], opts ...scalar.Option) (Mat4[T], error) {
	o := scalar.NewOptions(opts...)
	if o.ValidateNaNInf() {
		if err := ValidateFinite4(m); err != nil {
			return Mat4[T]{}, matrixErrorf(opInverse4, err)
		}
	}
	adj, det := adjugate4(m)
	if err := checkDeterminant(det, m.Slice(), 4, o); err != nil {
		return Mat4[T]{}, matrixErrorf(opInverse4, err)
	}

	return adj.MulScalar(1 / det), nil
}
