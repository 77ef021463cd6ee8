// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the numeric checks the
//     checked inversion path needs.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap again uniformly (errors.Is still matches).
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//   - Use ValidateFinite4 on data that crossed a trust boundary (files,
//     network, user input) before feeding it to the unchecked kernels.
//   - ValidateInvertible4 reports exactly what TryInverse4 would reject.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glm/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// firstNonFinite returns the index of the first NaN/±Inf element of s, or -1.
func firstNonFinite[T scalar.Scalar](s []T) int {
	for i, x := range s {
		if !scalar.IsFinite(x) {
			return i
		}
	}

	return -1
}

// checkDeterminant decides whether det, the determinant of the n×n matrix
// whose column-major elements are elems, admits an inverse.
//
// Rules:
//   - NaN/±Inf or zero det → ErrSingular.
//   - Integers: |det| != 1 → ErrNotUnimodular (1/det would truncate).
//   - Floats, relative (default): |det| / Π‖col_c‖ <= eps → ErrSingular.
//     The ratio lies in [0, 1] by Hadamard's inequality and does not
//     change when the matrix is scaled.
//   - Floats, absolute (WithAbsoluteTolerance): |det| <= eps → ErrSingular.
func checkDeterminant[T scalar.Real](det T, elems []T, n int, o scalar.Options) error {
	if !scalar.IsFinite(det) || det == 0 {
		return ErrSingular
	}
	if !scalar.IsFloat[T]() {
		if scalar.Abs(det) != 1 {
			return ErrNotUnimodular
		}

		return nil
	}
	size := math.Abs(float64(det))
	if o.RelativeDeterminant() {
		size = hadamardRatio(size, elems, n)
	}
	if size <= o.Epsilon() {
		return ErrSingular
	}

	return nil
}

// hadamardRatio divides absDet by the Euclidean norm of each column in turn.
// A zero column yields 0.
func hadamardRatio[T scalar.Real](absDet float64, elems []T, n int) float64 {
	r := absDet
	for c := 0; c < n; c++ {
		norm := 0.0
		for _, x := range elems[c*n : (c+1)*n] {
			norm = math.Hypot(norm, float64(x))
		}
		if norm == 0 {
			return 0
		}
		r /= norm
	}

	return r
}

// ValidateFinite2 – Ensures every element of m is finite.
//
// Returns: nil or wrapped ErrNaNInf naming the first offending element in
// column-major order.
// Complexity: O(4).
func ValidateFinite2[T scalar.Scalar](m Mat2[T]) error {
	if i := firstNonFinite(m.Slice()); i >= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateFinite2: Elem(%d,%d)", i/2, i%2), ErrNaNInf)
	}

	return nil
}

// ValidateFinite3 – Ensures every element of m is finite.
func ValidateFinite3[T scalar.Scalar](m Mat3[T]) error {
	if i := firstNonFinite(m.Slice()); i >= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateFinite3: Elem(%d,%d)", i/3, i%3), ErrNaNInf)
	}

	return nil
}

// ValidateFinite4 – Ensures every element of m is finite.
//
// Integer matrices always pass.
// Complexity: O(16).
func ValidateFinite4[T scalar.Scalar](m Mat4[T]) error {
	if i := firstNonFinite(m.Slice()); i >= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateFinite4: Elem(%d,%d)", i/4, i%4), ErrNaNInf)
	}

	return nil
}

// ValidateInvertible2 – Composite: Finite → non-singular determinant.
//
// Inputs: m and options (eps, NaN/Inf policy) as for TryInverse2.
// Errors: ErrNaNInf, ErrSingular, ErrNotUnimodular.
func ValidateInvertible2[T scalar.Real](m Mat2[T], opts ...scalar.Option) error {
	if _, err := TryInverse2(m, opts...); err != nil {
		return validatorErrorf("ValidateInvertible2", err)
	}

	return nil
}

// ValidateInvertible3 – Composite: Finite → non-singular determinant.
func ValidateInvertible3[T scalar.Real](m Mat3[T], opts ...scalar.Option) error {
	if _, err := TryInverse3(m, opts...); err != nil {
		return validatorErrorf("ValidateInvertible3", err)
	}

	return nil
}

// ValidateInvertible4 – Composite: Finite → non-singular determinant.
func ValidateInvertible4[T scalar.Real](m Mat4[T], opts ...scalar.Option) error {
	if _, err := TryInverse4(m, opts...); err != nil {
		return validatorErrorf("ValidateInvertible4", err)
	}

	return nil
}
