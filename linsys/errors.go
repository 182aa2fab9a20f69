// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linsys
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (see the RREF pivot assertion).

package linsys

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linsys: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrEmptySystem indicates a LinearSystem constructed with zero rows.
	// A system must carry at least one equation before any elimination runs.
	ErrEmptySystem = errors.New("linsys: system must contain at least one equation")

	// ErrDimensionMismatch indicates rows supplied to (or assigned into) a
	// LinearSystem that do not share the system's dimension. Construction and
	// row replacement fail fast; dimensions are never silently coerced.
	ErrDimensionMismatch = errors.New("linsys: all equations must share one dimension")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("linsys: row index out of range")

	// ErrNoNonzeroElements signals that every coefficient of a row is within
	// tolerance of zero, so the row has no pivot. This is an expected,
	// meaningful condition during classification, not a failure of input.
	ErrNoNonzeroElements = errors.New("linsys: no nonzero coefficients found")

	// ErrZeroHyperplane indicates a zero-value Hyperplane (no normal vector)
	// was supplied where a constructed equation row is required.
	ErrZeroHyperplane = errors.New("linsys: hyperplane has no normal vector")
)
