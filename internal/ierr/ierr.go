// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ierr defines the single error type the formatting core ever
// produces. Per the core's contract, there is no user-facing error: a
// well-formed AST and comment map always formats successfully, and any
// error returned here indicates a bug in the transformer or printer
// itself (see the failure table this mirrors).
package ierr

import "fmt"

// Kind identifies which internal invariant was violated.
type Kind int

const (
	// UnbalancedIndent: push_indent/pop_indent mismatched at end of pass.
	UnbalancedIndent Kind = iota
	// OutOfOrderVisit: a node was visited after one with a later lo.
	OutOfOrderVisit
	// MissingToken: the token finder could not locate a required token.
	MissingToken
	// UnresolvableCondition: a Condition never resolved because none of
	// its dependent infos ever materialized.
	UnresolvableCondition
)

func (k Kind) String() string {
	switch k {
	case UnbalancedIndent:
		return "unbalanced indent"
	case OutOfOrderVisit:
		return "out-of-order visit"
	case MissingToken:
		return "missing expected token"
	case UnresolvableCondition:
		return "unresolvable condition"
	default:
		return "unknown bug"
	}
}

// BugError is the error type returned (or panicked with, and recovered at
// the pass boundary) whenever the core detects one of its own invariants
// broken. It is never returned for malformed user input; that is the
// parser's responsibility.
type BugError struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *BugError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tsfmt: bug: %s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("tsfmt: bug: %s: %s", e.Kind, e.Detail)
}

func (e *BugError) Unwrap() error {
	return e.Err
}

// New creates a BugError.
func New(kind Kind, detail string) *BugError {
	return &BugError{Kind: kind, Detail: detail}
}

// Wrap creates a BugError that wraps an underlying error.
func Wrap(kind Kind, detail string, err error) *BugError {
	return &BugError{Kind: kind, Detail: detail, Err: err}
}

// DebugAssertions gates the Assert/Assertf helpers. Production embeddings
// of the core may set this to false to turn the checks off; the state the
// checks read (e.g. the last-visited lo) is still tracked. Tests always run
// with it on.
var DebugAssertions = true

// Assert panics with a BugError of the given kind if cond is false.
// Must only be called where spec.md's failure table says the condition
// indicates a transformer/printer bug, never for user-input validation.
func Assert(cond bool, kind Kind, detail string) {
	if DebugAssertions && !cond {
		panic(New(kind, detail))
	}
}

// Assertf is like Assert but formats detail lazily.
func Assertf(cond bool, kind Kind, format string, args ...any) {
	if DebugAssertions && !cond {
		panic(New(kind, fmt.Sprintf(format, args...)))
	}
}
