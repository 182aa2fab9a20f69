// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for the numeric policy of the
// elimination and classification routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - One knob, used everywhere: every "is this coefficient effectively zero"
//     decision in the package flows through the same ε.

package linsys

import "math"

// DefaultEpsilon is the near-zero tolerance ε applied wherever a coefficient
// or constant is tested for being structurally zero. Floating-point noise
// below this threshold must never be mistaken for a usable pivot, and a
// genuine zero must never survive as one.
const DefaultEpsilon = 1e-10

// panicEpsilonInvalid is the programmer-error message for WithEpsilon.
const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps float64 // ≥ 0; DefaultEpsilon
}

// WithEpsilon sets the near-zero tolerance used by pivot selection,
// trivial-row detection and the no-solution check.
// Panics when eps is NaN, ±Inf or negative — such a tolerance is a
// programmer error, never recoverable input.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions resolves defaults and applies all setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
