// SPDX-License-Identifier: MIT

// Package vector: sentinel errors.
// Index violations are programmer errors and panic; the panic value is an
// error wrapping ErrOutOfRange so recover sites can match it with errors.Is.
package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a component index is outside [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// indexError builds the panic value for a bad component index.
func indexError(op string, i, n int) error {
	return fmt.Errorf("%s(%d) with len %d: %w", op, i, n, ErrOutOfRange)
}
