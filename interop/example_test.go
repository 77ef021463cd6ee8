// SPDX-License-Identifier: MIT

package interop_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/glm/interop"
	"github.com/katalvlaran/glm/matrix"
	"github.com/katalvlaran/glm/vector"
)

// ExampleToDense4 hands a transform to gonum and reads it back.
func ExampleToDense4() {
	m := matrix.Identity4[float32]()
	m.Cols[3] = vector.New4[float32](1, 2, 3, 1)

	d := interop.ToDense4(m)
	fmt.Printf("%v\n", mat.Formatted(d))

	back, err := interop.FromDense4[float32](d)
	fmt.Println(back == m, err)
	// Output:
	// ⎡1  0  0  1⎤
	// ⎢0  1  0  2⎥
	// ⎢0  0  1  3⎥
	// ⎣0  0  0  1⎦
	// true <nil>
}
