// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glm/scalar"
	"github.com/katalvlaran/glm/vector"
)

// --- construction & indexing ---------------------------------------------------

func TestConstructors_ComponentOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, vector.Vec1[int]{X: 7}, vector.New1(7))
	require.Equal(t, vector.Vec2[int]{X: 1, Y: 2}, vector.New2(1, 2))
	require.Equal(t, vector.Vec3[int]{X: 1, Y: 2, Z: 3}, vector.New3(1, 2, 3))
	require.Equal(t, vector.Vec4[int]{X: 1, Y: 2, Z: 3, W: 4}, vector.New4(1, 2, 3, 4))

	require.Equal(t, vector.New4(5, 5, 5, 5), vector.Splat4(5))
	require.Equal(t, vector.New3(0, 0, 0), vector.Zero3[int]())
	require.Equal(t, vector.New2[float32](1.5, -2), vector.FromArray2([2]float32{1.5, -2}))

	var zero vector.Vec4f
	require.Equal(t, vector.Zero4[float32](), zero, "zero value is the zero vector")
}

func TestLen_PerArity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, vector.Vec1f{}.Len())
	require.Equal(t, 2, vector.Vec2f{}.Len())
	require.Equal(t, 3, vector.Vec3f{}.Len())
	require.Equal(t, 4, vector.Vec4f{}.Len())
}

func TestAtSetPtr_InRange(t *testing.T) {
	t.Parallel()

	v := vector.New4[int32](10, 20, 30, 40)
	for i, want := range []int32{10, 20, 30, 40} {
		require.Equal(t, want, v.At(i))
	}

	v.Set(2, 99)
	require.Equal(t, int32(99), v.Z)

	*v.Ptr(0) = -1
	require.Equal(t, vector.New4[int32](-1, 20, 99, 40), v)
}

func TestAt_OutOfRange_Panics(t *testing.T) {
	t.Parallel()

	v := vector.New3[float32](1, 2, 3)
	require.PanicsWithError(t, "Vec3.At(3) with len 3: vector: index out of range", func() {
		_ = v.At(3)
	})

	cases := []struct {
		name string
		fn   func()
	}{
		{"Vec1.At(1)", func() { _ = vector.New1(1).At(1) }},
		{"Vec2.At(-1)", func() { _ = vector.New2(1, 2).At(-1) }},
		{"Vec3.Set(3)", func() { u := vector.New3(1, 2, 3); u.Set(3, 0) }},
		{"Vec4.Ptr(4)", func() { u := vector.New4(1, 2, 3, 4); _ = u.Ptr(4) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			requireOutOfRange(t, tc.fn)
		})
	}
}

// requireOutOfRange asserts fn panics with an error wrapping ErrOutOfRange.
func requireOutOfRange(t *testing.T, fn func()) {
	t.Helper()

	var rec any
	func() {
		defer func() { rec = recover() }()
		fn()
	}()
	require.NotNil(t, rec, "expected panic")
	err, ok := rec.(error)
	require.True(t, ok, "panic value %T is not an error", rec)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestSlice_AliasesVector(t *testing.T) {
	t.Parallel()

	v := vector.New3[float64](1, 2, 3)
	s := v.Slice()
	require.Len(t, s, 3)
	require.Equal(t, []float64{1, 2, 3}, s)

	s[1] = 42
	require.Equal(t, 42.0, v.Y, "slice writes must reach the vector")

	v.Z = -7
	require.Equal(t, -7.0, s[2], "vector writes must reach the slice")

	a := v.Array()
	a[0] = 100
	require.Equal(t, 1.0, v.X, "Array returns a copy")
}

func TestString_Format(t *testing.T) {
	t.Parallel()

	require.Equal(t, "vec1(5)", vector.New1(5).String())
	require.Equal(t, "vec2(1, -2)", vector.New2(1, -2).String())
	require.Equal(t, "vec3(1, 2, 3)", vector.New3[float32](1, 2, 3).String())
	require.Equal(t, "vec4(0.5, 1, 2, 3)", vector.New4(0.5, 1, 2, 3).String())
}

func TestSplatAccessors(t *testing.T) {
	t.Parallel()

	v := vector.New4(1, 2, 3, 4)
	require.Equal(t, vector.Splat4(1), v.SplatX())
	require.Equal(t, vector.Splat4(2), v.SplatY())
	require.Equal(t, vector.Splat4(3), v.SplatZ())
	require.Equal(t, vector.Splat4(4), v.SplatW())

	require.Equal(t, vector.Splat2(9), vector.New2(8, 9).SplatY())
	require.Equal(t, vector.New1(3), vector.New1(3).SplatX())
}

func TestEquality_ComparableStruct(t *testing.T) {
	t.Parallel()

	seen := map[vector.IVec2]int{vector.New2[int32](1, 2): 1}
	require.Equal(t, 1, seen[vector.New2[int32](1, 2)])
	require.True(t, vector.New3(1, 2, 3) == vector.New3(1, 2, 3))
	require.False(t, vector.New3(1, 2, 3) == vector.New3(1, 2, 4))
}

// --- arithmetic ----------------------------------------------------------------

func TestArithmetic_ComponentWise(t *testing.T) {
	t.Parallel()

	a := vector.New4[float32](8, 6, 4, 2)
	b := vector.New4[float32](2, 3, 4, 8)

	require.Equal(t, vector.New4[float32](10, 9, 8, 10), a.Add(b))
	require.Equal(t, vector.New4[float32](6, 3, 0, -6), a.Sub(b))
	require.Equal(t, vector.New4[float32](16, 18, 16, 16), a.Mul(b))
	require.Equal(t, vector.New4[float32](4, 2, 1, 0.25), a.Div(b))
	require.Equal(t, vector.New4[float32](0, 0, 0, 2), a.Rem(b))
}

func TestArithmetic_IntegerTruncation(t *testing.T) {
	t.Parallel()

	a := vector.New3(7, -7, 9)
	b := vector.New3(2, 2, -4)
	require.Equal(t, vector.New3(3, -3, -2), a.Div(b))
	require.Equal(t, vector.New3(1, -1, 1), a.Rem(b), "remainder sign follows the dividend")

	u := vector.New2[uint8](250, 9)
	require.Equal(t, vector.New2[uint8](4, 19), u.AddScalar(10), "unsigned arithmetic wraps")
}

func TestArithmetic_IntegerDivideByZero_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _ = vector.New2(1, 2).DivScalar(0) })
	require.Panics(t, func() { _ = vector.New2(1, 2).RemScalar(0) })
}

func TestArithmetic_FloatDivideByZero_IEEE(t *testing.T) {
	t.Parallel()

	r := vector.New3[float64](1, -1, 0).DivScalar(0)
	require.True(t, math.IsInf(r.X, 1))
	require.True(t, math.IsInf(r.Y, -1))
	require.True(t, math.IsNaN(r.Z))
}

// TestBroadcast_Equivalence checks, for every operator and arity, that the
// scalar and Vec1 forms match the splatted same-arity form on both sides.
func TestBroadcast_Equivalence(t *testing.T) {
	t.Parallel()

	const s = 3.0
	one := vector.New1(s)

	t.Run("Vec1", func(t *testing.T) {
		v := vector.New1(7.0)
		sv := vector.New1(s)
		for _, tc := range []struct {
			name     string
			got      vector.DVec1
			want     vector.DVec1
			left     vector.DVec1
			wantLeft vector.DVec1
		}{
			{"Add", v.AddScalar(s), v.Add(sv), vector.ScalarAdd1(s, v), sv.Add(v)},
			{"Sub", v.SubScalar(s), v.Sub(sv), vector.ScalarSub1(s, v), sv.Sub(v)},
			{"Mul", v.MulScalar(s), v.Mul(sv), vector.ScalarMul1(s, v), sv.Mul(v)},
			{"Div", v.DivScalar(s), v.Div(sv), vector.ScalarDiv1(s, v), sv.Div(v)},
			{"Rem", v.RemScalar(s), v.Rem(sv), vector.ScalarRem1(s, v), sv.Rem(v)},
		} {
			require.Equal(t, tc.want, tc.got, tc.name)
			require.Equal(t, tc.wantLeft, tc.left, tc.name)
		}
	})

	t.Run("Vec2", func(t *testing.T) {
		v := vector.New2(7.0, -5.0)
		sv := vector.Splat2(s)
		for _, tc := range []struct {
			name                 string
			scalar, vec1, splat  vector.DVec2
			lScalar, lVec1, lRef vector.DVec2
		}{
			{"Add", v.AddScalar(s), v.AddVec1(one), v.Add(sv), vector.ScalarAdd2(s, v), vector.Vec1Add2(one, v), sv.Add(v)},
			{"Sub", v.SubScalar(s), v.SubVec1(one), v.Sub(sv), vector.ScalarSub2(s, v), vector.Vec1Sub2(one, v), sv.Sub(v)},
			{"Mul", v.MulScalar(s), v.MulVec1(one), v.Mul(sv), vector.ScalarMul2(s, v), vector.Vec1Mul2(one, v), sv.Mul(v)},
			{"Div", v.DivScalar(s), v.DivVec1(one), v.Div(sv), vector.ScalarDiv2(s, v), vector.Vec1Div2(one, v), sv.Div(v)},
			{"Rem", v.RemScalar(s), v.RemVec1(one), v.Rem(sv), vector.ScalarRem2(s, v), vector.Vec1Rem2(one, v), sv.Rem(v)},
		} {
			require.Equal(t, tc.splat, tc.scalar, tc.name)
			require.Equal(t, tc.splat, tc.vec1, tc.name)
			require.Equal(t, tc.lRef, tc.lScalar, tc.name)
			require.Equal(t, tc.lRef, tc.lVec1, tc.name)
		}
	})

	t.Run("Vec3", func(t *testing.T) {
		v := vector.New3(7.0, -5.0, 0.5)
		sv := vector.Splat3(s)
		for _, tc := range []struct {
			name                 string
			scalar, vec1, splat  vector.DVec3
			lScalar, lVec1, lRef vector.DVec3
		}{
			{"Add", v.AddScalar(s), v.AddVec1(one), v.Add(sv), vector.ScalarAdd3(s, v), vector.Vec1Add3(one, v), sv.Add(v)},
			{"Sub", v.SubScalar(s), v.SubVec1(one), v.Sub(sv), vector.ScalarSub3(s, v), vector.Vec1Sub3(one, v), sv.Sub(v)},
			{"Mul", v.MulScalar(s), v.MulVec1(one), v.Mul(sv), vector.ScalarMul3(s, v), vector.Vec1Mul3(one, v), sv.Mul(v)},
			{"Div", v.DivScalar(s), v.DivVec1(one), v.Div(sv), vector.ScalarDiv3(s, v), vector.Vec1Div3(one, v), sv.Div(v)},
			{"Rem", v.RemScalar(s), v.RemVec1(one), v.Rem(sv), vector.ScalarRem3(s, v), vector.Vec1Rem3(one, v), sv.Rem(v)},
		} {
			require.Equal(t, tc.splat, tc.scalar, tc.name)
			require.Equal(t, tc.splat, tc.vec1, tc.name)
			require.Equal(t, tc.lRef, tc.lScalar, tc.name)
			require.Equal(t, tc.lRef, tc.lVec1, tc.name)
		}
	})

	t.Run("Vec4", func(t *testing.T) {
		v := vector.New4(7.0, -5.0, 0.5, 12.0)
		sv := vector.Splat4(s)
		for _, tc := range []struct {
			name                 string
			scalar, vec1, splat  vector.DVec4
			lScalar, lVec1, lRef vector.DVec4
		}{
			{"Add", v.AddScalar(s), v.AddVec1(one), v.Add(sv), vector.ScalarAdd4(s, v), vector.Vec1Add4(one, v), sv.Add(v)},
			{"Sub", v.SubScalar(s), v.SubVec1(one), v.Sub(sv), vector.ScalarSub4(s, v), vector.Vec1Sub4(one, v), sv.Sub(v)},
			{"Mul", v.MulScalar(s), v.MulVec1(one), v.Mul(sv), vector.ScalarMul4(s, v), vector.Vec1Mul4(one, v), sv.Mul(v)},
			{"Div", v.DivScalar(s), v.DivVec1(one), v.Div(sv), vector.ScalarDiv4(s, v), vector.Vec1Div4(one, v), sv.Div(v)},
			{"Rem", v.RemScalar(s), v.RemVec1(one), v.Rem(sv), vector.ScalarRem4(s, v), vector.Vec1Rem4(one, v), sv.Rem(v)},
		} {
			require.Equal(t, tc.splat, tc.scalar, tc.name)
			require.Equal(t, tc.splat, tc.vec1, tc.name)
			require.Equal(t, tc.lRef, tc.lScalar, tc.name)
			require.Equal(t, tc.lRef, tc.lVec1, tc.name)
		}
	})
}

func TestLeftBroadcast_NonCommutative(t *testing.T) {
	t.Parallel()

	v := vector.New3[float32](1, 2, 4)
	require.Equal(t, vector.New3[float32](9, 8, 6), vector.ScalarSub3(10, v))
	require.Equal(t, vector.New3[float32](8, 4, 2), vector.ScalarDiv3(8, v))
	require.Equal(t, vector.New3[float32](-9, -8, -6), v.SubScalar(10))
}

func TestCompoundAssign_MatchesBinary(t *testing.T) {
	t.Parallel()

	base := vector.New4(9, 8, 7, 6)
	o := vector.New4(2, 3, 4, 5)
	one := vector.New1(4)

	cases := []struct {
		name string
		do   func(v *vector.Vec4[int])
		want vector.Vec4[int]
	}{
		{"AddAssign", func(v *vector.Vec4[int]) { v.AddAssign(o) }, base.Add(o)},
		{"SubAssign", func(v *vector.Vec4[int]) { v.SubAssign(o) }, base.Sub(o)},
		{"MulAssign", func(v *vector.Vec4[int]) { v.MulAssign(o) }, base.Mul(o)},
		{"DivAssign", func(v *vector.Vec4[int]) { v.DivAssign(o) }, base.Div(o)},
		{"RemAssign", func(v *vector.Vec4[int]) { v.RemAssign(o) }, base.Rem(o)},
		{"AddAssignScalar", func(v *vector.Vec4[int]) { v.AddAssignScalar(4) }, base.AddScalar(4)},
		{"SubAssignScalar", func(v *vector.Vec4[int]) { v.SubAssignScalar(4) }, base.SubScalar(4)},
		{"MulAssignScalar", func(v *vector.Vec4[int]) { v.MulAssignScalar(4) }, base.MulScalar(4)},
		{"DivAssignScalar", func(v *vector.Vec4[int]) { v.DivAssignScalar(4) }, base.DivScalar(4)},
		{"RemAssignScalar", func(v *vector.Vec4[int]) { v.RemAssignScalar(4) }, base.RemScalar(4)},
		{"AddAssignVec1", func(v *vector.Vec4[int]) { v.AddAssignVec1(one) }, base.AddVec1(one)},
		{"SubAssignVec1", func(v *vector.Vec4[int]) { v.SubAssignVec1(one) }, base.SubVec1(one)},
		{"MulAssignVec1", func(v *vector.Vec4[int]) { v.MulAssignVec1(one) }, base.MulVec1(one)},
		{"DivAssignVec1", func(v *vector.Vec4[int]) { v.DivAssignVec1(one) }, base.DivVec1(one)},
		{"RemAssignVec1", func(v *vector.Vec4[int]) { v.RemAssignVec1(one) }, base.RemVec1(one)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := base
			tc.do(&v)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestCompoundAssign_SmallArities(t *testing.T) {
	t.Parallel()

	a := vector.New1[float32](2)
	a.MulAssignScalar(3)
	a.SubAssign(vector.New1[float32](1))
	require.Equal(t, vector.New1[float32](5), a)

	b := vector.New2[float32](1, 2)
	b.AddAssignVec1(vector.New1[float32](1))
	b.DivAssign(vector.New2[float32](2, 3))
	require.Equal(t, vector.New2[float32](1, 1), b)

	c := vector.New3[float32](3, 6, 9)
	c.DivAssignScalar(3)
	c.RemAssignVec1(vector.New1[float32](2))
	require.Equal(t, vector.New3[float32](1, 0, 1), c)
}

func TestNeg(t *testing.T) {
	t.Parallel()

	require.Equal(t, vector.New1(-1), vector.Neg1(vector.New1(1)))
	require.Equal(t, vector.New2[int8](-1, 2), vector.Neg2(vector.New2[int8](1, -2)))
	require.Equal(t, vector.New3(-1.5, 0, 2), vector.Neg3(vector.New3(1.5, 0, -2)))
	require.Equal(t, vector.New4[float32](-1, -2, -3, -4), vector.Neg4(vector.New4[float32](1, 2, 3, 4)))
}

// --- geometric -----------------------------------------------------------------

func TestDot_Values(t *testing.T) {
	t.Parallel()

	require.Equal(t, 11, vector.New2(1, 2).Dot(vector.New2(3, 4)))
	require.Equal(t, float32(32), vector.New3[float32](1, 2, 3).Dot(vector.New3[float32](4, 5, 6)))
	require.Equal(t, 70.0, vector.New4(1.0, 2, 3, 4).Dot(vector.New4(5.0, 6, 7, 8)))
	require.Equal(t, uint32(0), vector.New4[uint32](0, 0, 0, 0).Dot(vector.Splat4[uint32](9)))
}

func TestDot_Symmetric(t *testing.T) {
	t.Parallel()

	samples := []struct{ a, b vector.Vec4f }{
		{vector.New4[float32](0.1, 0.2, 0.3, 0.4), vector.New4[float32](1e3, -2e-3, 7, 0.5)},
		{vector.New4[float32](-1e7, 3, 1e-7, 2), vector.New4[float32](1e-7, 3e5, -1, 8)},
		{vector.New4[float32](1.25, -2.5, 3.75, -5), vector.New4[float32](9, 8, 7, 6)},
	}
	for _, s := range samples {
		require.Equal(t, s.a.Dot(s.b), s.b.Dot(s.a))

		a3 := vector.New3(s.a.X, s.a.Y, s.a.Z)
		b3 := vector.New3(s.b.X, s.b.Y, s.b.Z)
		require.Equal(t, a3.Dot(b3), b3.Dot(a3))

		a2 := vector.New2(s.a.X, s.a.Y)
		b2 := vector.New2(s.b.X, s.b.Y)
		require.Equal(t, a2.Dot(b2), b2.Dot(a2))
	}
}

func TestDot_PairwiseGrouping(t *testing.T) {
	t.Parallel()

	// float32 cannot hold 1e8+1, so the grouping decides whether the 1 survives.
	b := vector.Splat4[float32](1)

	// (1e8 + 1) + (-1e8 + 0): the 1 is absorbed before the cancellation.
	a := vector.New4[float32](1e8, 1, -1e8, 0)
	require.Equal(t, float32(0), a.Dot(b))

	// (1e8 + -1e8) + (1 + 0): the cancellation happens first.

	c := vector.New4[float32](1e8, -1e8, 1, 0)
	require.Equal(t, float32(1), c.Dot(b))
}

// --- cast & compare ------------------------------------------------------------

func TestCast(t *testing.T) {
	t.Parallel()

	f := vector.New3[float32](1.9, -1.9, 2)
	require.Equal(t, vector.New3[int32](1, -1, 2), vector.Cast3[int32](f), "float to int truncates")
	require.Equal(t, vector.New2(1.0, 2.0), vector.Cast2[float64](vector.New2[uint8](1, 2)))
	require.Equal(t, vector.New4[int64](1, 2, 3, 4), vector.Cast4[int64](vector.New4[int8](1, 2, 3, 4)))
	require.Equal(t, vector.New1[float32](3), vector.Cast1[float32](vector.New1(3)))
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	a := vector.New3[float32](1, 2, 3)
	b := vector.New3[float32](1, 2, 3.0000005)
	require.True(t, vector.ApproxEqual3(a, b))
	require.False(t, vector.ApproxEqual3(a, vector.New3[float32](1, 2, 3.1)))
	require.True(t, vector.ApproxEqual3(a, vector.New3[float32](1, 2, 3.1), scalar.WithEpsilon(0.2)))

	nan := float32(math.NaN())
	require.False(t, vector.ApproxEqual4(vector.Splat4(nan), vector.Splat4(nan)))
	require.True(t, vector.ApproxEqual2(vector.New2(1000.0, 1), vector.New2(1000.0005, 1),
		scalar.WithEpsilon(1e-6), scalar.WithRelativeTolerance()))
	require.True(t, vector.ApproxEqual1(vector.New1(5), vector.New1(5)))

	big := vector.New2[int64](1<<53, 1<<53+1)
	require.False(t, vector.ApproxEqual2(big, vector.Splat2[int64](1<<53), scalar.WithEpsilon(0)),
		"integers past 2^53 compare exactly")
}
