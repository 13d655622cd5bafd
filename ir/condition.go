// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// Resolver is the read-only view the printer exposes to Condition
// predicates (spec.md §3, §4.3). Predicates may read resolved infos (past
// or future - "future" meaning the condition speculates and is rewound if
// wrong), resolved conditions, the writer's current position, and
// configuration, but they may never mutate anything: Condition predicates
// must be pure functions of this context.
type Resolver interface {
	// ResolvedInfo returns the position captured for id, if the printer
	// has reached it yet.
	ResolvedInfo(id InfoID) (ResolvedInfo, bool)
	// ResolvedCondition returns a previously-resolved condition's truth
	// value, if any.
	ResolvedCondition(id ConditionID) (bool, bool)
	// CurrentPosition is the writer's position at the point the
	// condition is being evaluated.
	CurrentPosition() ResolvedInfo
	// IndentWidth is the configured indent width, needed by is-hanging
	// and line-width predicates.
	IndentWidth() int
	// LineWidth is the configured target line width.
	LineWidth() int
}

// Predicate decides a Condition's branch. Returning (false, false) means
// "cannot decide yet" (the spec's `None`) and the printer must speculate.
type Predicate func(r Resolver) (value bool, ok bool)

// Condition is a named branch point. Exactly one of TruePath/FalsePath is
// spliced into the output stream, chosen by Predicate; either may be an
// empty Path.
type Condition struct {
	ID             ConditionID
	DebugName      string
	Predicate      Predicate
	TruePath       *Path
	FalsePath      *Path
	DependentInfos []InfoID
}

// NewCondition allocates a Condition with a fresh ID.
func NewCondition(gen *IDGen, debugName string, pred Predicate, truePath, falsePath *Path, deps ...InfoID) *Condition {
	return &Condition{
		ID:             gen.NextCondition(),
		DebugName:      debugName,
		Predicate:      pred,
		TruePath:       truePath,
		FalsePath:      falsePath,
		DependentInfos: deps,
	}
}

// IsMultipleLines is the "is-multiple-lines(start, end)" predicate helper
// from spec.md §4.3: it compares the resolved line numbers of two infos.
func IsMultipleLines(start, end InfoID) Predicate {
	return func(r Resolver) (bool, bool) {
		s, ok1 := r.ResolvedInfo(start)
		e, ok2 := r.ResolvedInfo(end)
		if !ok1 || !ok2 {
			return false, false
		}
		return e.Line > s.Line, true
	}
}

// IsStartOfLine reports whether the position resolved for id is at its
// line's start indent column (nothing but indentation precedes it).
func IsStartOfLine(id InfoID) Predicate {
	return func(r Resolver) (bool, bool) {
		info, ok := r.ResolvedInfo(id)
		if !ok {
			return false, false
		}
		return info.Column == info.LineStartIndent, true
	}
}

// FitsOnSingleLine is the workhorse predicate behind every "should this
// group be single-line or wrap" decision in the transformer. The builder
// places it as a Condition whose TruePath speculatively prints the
// single-line rendering first (spec.md §4.3's "optimistic first try");
// once the printer reaches `end` - after that speculative content - this
// predicate reports whether doing so actually stayed on one line and
// within the configured width. If not, the printer rewinds to `start` and
// takes the multi-line FalsePath instead.
func FitsOnSingleLine(start, end InfoID) Predicate {
	return func(r Resolver) (bool, bool) {
		e, ok := r.ResolvedInfo(end)
		if !ok {
			return false, false
		}
		s, ok2 := r.ResolvedInfo(start)
		if !ok2 {
			return false, false
		}
		return e.Line == s.Line && e.Column <= r.LineWidth(), true
	}
}

// IsHanging reports whether the writer's current indent is deeper than
// the indent captured at start - i.e. the current line is a continuation
// line of a construct that began at start.
func IsHanging(start InfoID) Predicate {
	return func(r Resolver) (bool, bool) {
		s, ok := r.ResolvedInfo(start)
		if !ok {
			return false, false
		}
		return r.CurrentPosition().Indent > s.Indent, true
	}
}

// And combines predicates, short-circuiting on the first undecided result.
func And(preds ...Predicate) Predicate {
	return func(r Resolver) (bool, bool) {
		for _, p := range preds {
			v, ok := p(r)
			if !ok {
				return false, false
			}
			if !v {
				return false, true
			}
		}
		return true, true
	}
}

// Not negates a decided predicate, propagating "undecided" unchanged.
func Not(p Predicate) Predicate {
	return func(r Resolver) (bool, bool) {
		v, ok := p(r)
		if !ok {
			return false, false
		}
		return !v, true
	}
}
