// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glm/vector"
)

func TestBitwise_Vec4(t *testing.T) {
	t.Parallel()

	a := vector.New4[uint8](0b1100, 0b1010, 0xFF, 0)
	b := vector.New4[uint8](0b1010, 0b0110, 0x0F, 0)

	require.Equal(t, vector.New4[uint8](0b1000, 0b0010, 0x0F, 0), vector.And4(a, b))
	require.Equal(t, vector.New4[uint8](0b1110, 0b1110, 0xFF, 0), vector.Or4(a, b))
	require.Equal(t, vector.New4[uint8](0b0110, 0b1100, 0xF0, 0), vector.Xor4(a, b))
	require.Equal(t, vector.New4[uint8](0xF3, 0xF5, 0x00, 0xFF), vector.Not4(a))
}

func TestBitwise_BroadcastForms(t *testing.T) {
	t.Parallel()

	v := vector.New3[int32](0b0101, 0b1111, -1)
	const m int32 = 0b0110
	mv := vector.Splat3(m)
	one := vector.New1(m)

	cases := []struct {
		name      string
		got, want vector.IVec3
	}{
		{"AndScalar", vector.AndScalar3(v, m), vector.And3(v, mv)},
		{"AndVec1", vector.AndVec13(v, one), vector.And3(v, mv)},
		{"ScalarAnd", vector.ScalarAnd3(m, v), vector.And3(mv, v)},
		{"OrScalar", vector.OrScalar3(v, m), vector.Or3(v, mv)},
		{"OrVec1", vector.OrVec13(v, one), vector.Or3(v, mv)},
		{"ScalarOr", vector.ScalarOr3(m, v), vector.Or3(mv, v)},
		{"XorScalar", vector.XorScalar3(v, m), vector.Xor3(v, mv)},
		{"XorVec1", vector.XorVec13(v, one), vector.Xor3(v, mv)},
		{"ScalarXor", vector.ScalarXor3(m, v), vector.Xor3(mv, v)},
		{"Vec1And", vector.Vec1And3(one, v), vector.And3(mv, v)},
		{"Vec1Or", vector.Vec1Or3(one, v), vector.Or3(mv, v)},
		{"Vec1Xor", vector.Vec1Xor3(one, v), vector.Xor3(mv, v)},
		{"Vec1Shl", vector.Vec1Shl3(one, vector.New3[uint8](0, 1, 2)), vector.Shl3(mv, vector.New3[uint8](0, 1, 2))},
		{"Vec1Shr", vector.Vec1Shr3(one, vector.New3[uint8](0, 1, 2)), vector.Shr3(mv, vector.New3[uint8](0, 1, 2))},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.got, tc.name)
	}
	require.Equal(t, vector.New3[int32](0b0100, 0b0110, 0b0110), vector.AndScalar3(v, m))
}

// TestBitwise_Vec1AssignForms checks that every Vec1 compound form matches
// the splatted operand for each arity.
func TestBitwise_Vec1AssignForms(t *testing.T) {
	t.Parallel()

	o := vector.New1[uint16](0x0FF0)
	k := vector.New1[int8](3)

	v2 := vector.New2[uint16](0xF00F, 0x1234)
	w2 := v2
	vector.AndAssignVec12(&v2, o)
	vector.AndAssign2(&w2, vector.Splat2(o.X))
	vector.OrAssignVec12(&v2, o)
	vector.OrAssign2(&w2, vector.Splat2(o.X))
	vector.XorAssignVec12(&v2, o)
	vector.XorAssign2(&w2, vector.Splat2(o.X))
	vector.ShlAssignVec12(&v2, k)
	vector.ShlAssign2(&w2, vector.Splat2(k.X))
	vector.ShrAssignVec12(&v2, k)
	vector.ShrAssign2(&w2, vector.Splat2(k.X))
	require.Equal(t, w2, v2)

	v3 := vector.New3[uint16](0xF00F, 0x1234, 0xFFFF)
	w3 := v3
	vector.AndAssignVec13(&v3, o)
	vector.AndAssign3(&w3, vector.Splat3(o.X))
	vector.OrAssignVec13(&v3, o)
	vector.OrAssign3(&w3, vector.Splat3(o.X))
	vector.XorAssignVec13(&v3, o)
	vector.XorAssign3(&w3, vector.Splat3(o.X))
	vector.ShlAssignVec13(&v3, k)
	vector.ShlAssign3(&w3, vector.Splat3(k.X))
	vector.ShrAssignVec13(&v3, k)
	vector.ShrAssign3(&w3, vector.Splat3(k.X))
	require.Equal(t, w3, v3)

	v4 := vector.New4[uint16](0xF00F, 0x1234, 0xFFFF, 1)
	w4 := v4
	vector.AndAssignVec14(&v4, o)
	vector.AndAssign4(&w4, vector.Splat4(o.X))
	vector.OrAssignVec14(&v4, o)
	vector.OrAssign4(&w4, vector.Splat4(o.X))
	vector.XorAssignVec14(&v4, o)
	vector.XorAssign4(&w4, vector.Splat4(o.X))
	vector.ShlAssignVec14(&v4, k)
	vector.ShlAssign4(&w4, vector.Splat4(k.X))
	vector.ShrAssignVec14(&v4, k)
	vector.ShrAssign4(&w4, vector.Splat4(k.X))
	require.Equal(t, w4, v4)

	// (o & 0xFFFF) ^ o clears every bit.
	require.Equal(t, vector.Zero4[uint16](), vector.Vec1Xor4(o, vector.Vec1And4(o, vector.Splat4[uint16](0xFFFF))))
	require.Equal(t, vector.New2[uint16](0x0FF0, 0x07F8), vector.Vec1Shr2(o, vector.New2[uint32](0, 1)))
	require.Equal(t, vector.New2[uint16](0xFFF0, 0x0FF0), vector.Vec1Or2(o, vector.New2[uint16](0xF000, 0)))
	require.Equal(t, vector.New4[uint16](0x0FF0, 0x1FE0, 0x3FC0, 0x7F80), vector.Vec1Shl4(o, vector.New4[uint8](0, 1, 2, 3)))
	require.Equal(t, vector.New3[uint16](0x0FF0, 0, 0x0F00), vector.Vec1And3(o, vector.New3[uint16](0xFFFF, 0, 0xFF00)))
}

func TestShift_MixedCountType(t *testing.T) {
	t.Parallel()

	v := vector.New4[uint32](1, 2, 3, 0x80000000)
	n := vector.New4[uint8](0, 1, 4, 1)

	require.Equal(t, vector.New4[uint32](1, 4, 48, 0), vector.Shl4(v, n), "left shift drops high bits")
	require.Equal(t, vector.New4[uint32](1, 1, 0, 0x40000000), vector.Shr4(v, n))

	require.Equal(t, vector.New4[uint32](4, 8, 12, 0), vector.ShlScalar4(v, int64(2)))
	require.Equal(t, vector.New4[uint32](0, 1, 1, 0x40000000), vector.ShrVec14(v, vector.New1[int8](1)))
	require.Equal(t, vector.New4[uint32](1, 2, 16, 2), vector.ScalarShl4(uint32(1), n))

	s := vector.New2[int16](-16, 16)
	require.Equal(t, vector.New2[int16](-4, 4), vector.ShrScalar2(s, uint(2)), "signed right shift is arithmetic")
	require.Equal(t, vector.New2[int16](-8, -4), vector.ScalarShr2(int16(-16), vector.New2[uint64](1, 2)))
}

func TestShift_NegativeCount_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _ = vector.ShlScalar3(vector.New3(1, 2, 3), -1) })
}

func TestIntegerCompoundAssign(t *testing.T) {
	t.Parallel()

	v := vector.New2[uint16](0xF0F0, 0x0FF0)
	vector.AndAssign2(&v, vector.New2[uint16](0xFF00, 0xFF00))
	require.Equal(t, vector.New2[uint16](0xF000, 0x0F00), v)

	vector.OrAssignScalar2(&v, 0x000F)
	require.Equal(t, vector.New2[uint16](0xF00F, 0x0F0F), v)

	vector.XorAssign2(&v, vector.New2[uint16](0xF00F, 0))
	require.Equal(t, vector.New2[uint16](0, 0x0F0F), v)

	vector.ShlAssignScalar2(&v, uint8(4))
	require.Equal(t, vector.New2[uint16](0, 0xF0F0), v)

	vector.ShrAssign2(&v, vector.New2[int](1, 8))
	require.Equal(t, vector.New2[uint16](0, 0x00F0), v)

	w := vector.New1[int64](3)
	vector.ShlAssign1(&w, vector.New1[uint8](2))
	vector.XorAssignScalar1(&w, 1)
	vector.AndAssignScalar1(&w, 0xD)
	vector.OrAssign1(&w, vector.New1[int64](2))
	vector.ShrAssignScalar1(&w, 1)
	require.Equal(t, vector.New1[int64](7), w)

	x := vector.New4(1, 2, 3, 4)
	vector.OrAssign4(&x, vector.Splat4(8))
	vector.ShlAssign4(&x, vector.New4[uint](0, 1, 2, 3))
	require.Equal(t, vector.New4(9, 20, 44, 96), x)

	y := vector.New3[int8](1, 1, 1)
	vector.XorAssign3(&y, vector.New3[int8](1, 0, 3))
	require.Equal(t, vector.New3[int8](0, 1, 2), y)
}
