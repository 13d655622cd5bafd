// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "fmt"

// InfoID identifies an Info handle. IDs are assigned by an IDGen scoped to
// one formatting pass; they are never reused or compared across passes.
type InfoID int

// ConditionID identifies a Condition handle, same scoping rules as InfoID.
type ConditionID int

// IDGen hands out monotonically increasing Info/Condition ids for one
// pass. There is no global counter: each format.Format call constructs a
// fresh IDGen, so concurrent passes over different files (spec.md §5)
// never contend on it.
type IDGen struct {
	nextInfo      int
	nextCondition int
}

func NewIDGen() *IDGen { return &IDGen{} }

func (g *IDGen) NextInfo() InfoID {
	id := g.nextInfo
	g.nextInfo++
	return InfoID(id)
}

func (g *IDGen) NextCondition() ConditionID {
	id := g.nextCondition
	g.nextCondition++
	return ConditionID(id)
}

// ResolvedInfo is what an Info resolves to: the writer's position at the
// moment the printer reached that point in the stream.
type ResolvedInfo struct {
	Line             int
	Column           int
	Indent           int
	LineStartIndent  int
	ByteOffset       int
}

func (r ResolvedInfo) String() string {
	return fmt.Sprintf("line=%d col=%d indent=%d lineStartIndent=%d byteOffset=%d",
		r.Line, r.Column, r.Indent, r.LineStartIndent, r.ByteOffset)
}

// Info is an identity handle for a forward- or backward-referenced
// position in the output. Its DebugName, if set, is surfaced in
// unresolved-condition bug reports.
type Info struct {
	ID        InfoID
	DebugName string
}

// NewInfo allocates a fresh Info from gen.
func NewInfo(gen *IDGen, debugName string) Info {
	return Info{ID: gen.NextInfo(), DebugName: debugName}
}
