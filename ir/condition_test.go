// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "testing"

type fakeResolver struct {
	infos     map[InfoID]ResolvedInfo
	conds     map[ConditionID]bool
	lineWidth int
}

func (f *fakeResolver) ResolvedInfo(id InfoID) (ResolvedInfo, bool) {
	v, ok := f.infos[id]
	return v, ok
}
func (f *fakeResolver) ResolvedCondition(id ConditionID) (bool, bool) {
	v, ok := f.conds[id]
	return v, ok
}
func (f *fakeResolver) CurrentPosition() ResolvedInfo { return ResolvedInfo{} }
func (f *fakeResolver) IndentWidth() int              { return 4 }
func (f *fakeResolver) LineWidth() int                { return f.lineWidth }

func TestFitsOnSingleLine(t *testing.T) {
	r := &fakeResolver{
		infos: map[InfoID]ResolvedInfo{
			0: {Line: 1, Column: 0},
			1: {Line: 1, Column: 40},
		},
		lineWidth: 80,
	}
	pred := FitsOnSingleLine(0, 1)
	v, ok := pred(r)
	if !ok || !v {
		t.Fatalf("pred = (%v, %v), want (true, true)", v, ok)
	}

	r.infos[1] = ResolvedInfo{Line: 1, Column: 120}
	v, ok = pred(r)
	if !ok || v {
		t.Fatalf("pred over width = (%v, %v), want (false, true)", v, ok)
	}

	r.infos[1] = ResolvedInfo{Line: 3, Column: 5}
	v, ok = pred(r)
	if !ok || v {
		t.Fatalf("pred across lines = (%v, %v), want (false, true)", v, ok)
	}
}

func TestFitsOnSingleLineUndecidedUntilEndResolved(t *testing.T) {
	r := &fakeResolver{infos: map[InfoID]ResolvedInfo{0: {Line: 1, Column: 0}}, lineWidth: 80}
	_, ok := FitsOnSingleLine(0, 1)(r)
	if ok {
		t.Error("expected undecided predicate before end info resolves")
	}
}

func TestIsMultipleLines(t *testing.T) {
	r := &fakeResolver{infos: map[InfoID]ResolvedInfo{
		0: {Line: 1},
		1: {Line: 3},
	}}
	v, ok := IsMultipleLines(0, 1)(r)
	if !ok || !v {
		t.Fatalf("IsMultipleLines = (%v, %v), want (true, true)", v, ok)
	}
}

func TestAndShortCircuitsOnUndecided(t *testing.T) {
	always := func(r Resolver) (bool, bool) { return true, true }
	undecided := func(r Resolver) (bool, bool) { return false, false }
	_, ok := And(always, undecided)(&fakeResolver{})
	if ok {
		t.Error("And should propagate undecided")
	}
}

func TestNot(t *testing.T) {
	always := func(r Resolver) (bool, bool) { return true, true }
	v, ok := Not(always)(&fakeResolver{})
	if !ok || v {
		t.Fatalf("Not(true) = (%v, %v), want (false, true)", v, ok)
	}
}
