// SPDX-License-Identifier: MIT

// Package scalar: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options only affect approximate comparison and the checked inversion
//     entry points. The determinant test of checked inversion is relative
//     unless WithAbsoluteTolerance is given explicitly. The unchecked kernels (Inverse2/3/4, Ortho, products)
//     never consult them.
package scalar

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by approximate
	// comparison and by the singularity test of checked inversion.
	DefaultEpsilon = 1e-6

	// DefaultRelativeTolerance selects absolute (false) or relative (true)
	// tolerance for approximate comparison. It does not apply to the
	// determinant test; see RelativeDeterminant.
	DefaultRelativeTolerance = false

	// DefaultValidateNaNInf makes checked inversion reject NaN/±Inf input.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	relative       bool    // DefaultRelativeTolerance
	toleranceSet   bool    // WithRelativeTolerance/WithAbsoluteTolerance seen
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Relative reports whether tolerance is relative to operand magnitude.
func (o Options) Relative() bool { return o.relative }

// RelativeDeterminant reports whether checked inversion measures the
// determinant against the product of the column norms. This holds unless
// WithAbsoluteTolerance was given.
func (o Options) RelativeDeterminant() bool { return o.relative || !o.toleranceSet }

// ValidateNaNInf reports whether checked operations reject non-finite input.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - 1e-5 suits float32 round trips of well-conditioned 4×4 transforms;
//     float64 data usually wants 1e-9 or smaller.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelativeTolerance scales eps by max(1, |a|, |b|) before comparing.
// Checked inversion compares |det| / Π‖col‖ against eps (its default).
func WithRelativeTolerance() Option {
	return func(o *Options) {
		o.relative = true
		o.toleranceSet = true
	}
}

// WithAbsoluteTolerance compares |a-b| against eps directly (default).
// Checked inversion then compares |det| itself against eps.
func WithAbsoluteTolerance() Option {
	return func(o *Options) {
		o.relative = false
		o.toleranceSet = true
	}
}

// WithValidateNaNInf enables finite-value validation in checked operations.
// This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation in checked
// operations; only the determinant test remains.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the documented defaults.
// Packages that compare many components call it once and pass the result to
// Close.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		relative:       DefaultRelativeTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
