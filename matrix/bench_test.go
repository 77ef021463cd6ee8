// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the fixed-size kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/glm/matrix"
	"github.com/katalvlaran/glm/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4f
	sinkV4 vector.Vec4f
	sinkErr error
)

func BenchmarkMat4_Mul(b *testing.B) {
	b.ReportAllocs()
	x := wellConditioned4[float32]()
	y := matrix.Inverse4(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Mul(y)
	}
}

func BenchmarkMat4_MulVec(b *testing.B) {
	b.ReportAllocs()
	m := wellConditioned4[float32]()
	v := vector.New4[float32](1, 2, 3, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV4 = m.MulVec(v)
	}
}

func BenchmarkInverse4(b *testing.B) {
	b.ReportAllocs()
	m := wellConditioned4[float32]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = matrix.Inverse4(m)
	}
}

func BenchmarkTryInverse4(b *testing.B) {
	b.ReportAllocs()
	m := wellConditioned4[float32]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4, sinkErr = matrix.TryInverse4(m)
	}
}
