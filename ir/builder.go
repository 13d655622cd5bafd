// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// Builder offers an ergonomic append-and-branch API over a Path,
// returning handles (Info, *Condition) for forward positional reference
// (spec.md §4.2). A Builder is single-use and single-owner: once handed
// off via Build() or into_shared(), its Path must not be mutated further.
type Builder struct {
	gen  *IDGen
	path Path
}

// NewBuilder creates a Builder sharing gen, the pass-scoped id generator.
func NewBuilder(gen *IDGen) *Builder {
	return &Builder{gen: gen}
}

func (b *Builder) PushString(s string) *Builder {
	b.path.append(&Item{Kind: KindString, Text: s})
	return b
}

// PushSignal appends a bare control item: NewLine, PossibleNewLine,
// SpaceOrNewLine, SpaceIfNotTrailing, Tab, ExpectNewLine,
// Start/FinishIndent, Start/FinishForceNoNewLines,
// Start/FinishIgnoringIndent.
func (b *Builder) PushSignal(k Kind) *Builder {
	b.path.append(&Item{Kind: k})
	return b
}

// PushInfo appends an Info capture point; a Condition's predicate or
// DependentInfos refer to it later through info.ID.
func (b *Builder) PushInfo(info Info) *Builder {
	b.path.append(&Item{Kind: KindInfo, Info: info.ID})
	return b
}

// PushCondition appends a Condition node.
func (b *Builder) PushCondition(cond *Condition) *Builder {
	b.path.append(&Item{Kind: KindCondition, Cond: cond})
	return b
}

// PushShared splices in a previously-shared RcPath without copying it.
func (b *Builder) PushShared(p *Path) *Builder {
	b.path.append(&Item{Kind: KindRcPath, Shared: p})
	return b
}

// Extend splices another builder's accumulated path onto this one. other
// must not be used after this call.
func (b *Builder) Extend(other *Builder) *Builder {
	return b.ExtendPath(other.Build())
}

// ExtendPath splices an already-built Path onto this builder in place,
// without wrapping it in an RcPath indirection - used when the sub-path
// is only ever consumed once (unlike into_shared, which is for reuse
// across condition branches).
func (b *Builder) ExtendPath(p *Path) *Builder {
	if p.IsEmpty() {
		return b
	}
	if b.path.head == nil {
		b.path.head = p.head
		b.path.tail = p.tail
		return b
	}
	b.path.tail.next = p.head
	b.path.tail = p.tail
	return b
}

// Build finalizes the builder and returns its Path. The Builder must not
// be used afterward.
func (b *Builder) Build() *Path {
	return &Path{head: b.path.head, tail: b.path.tail}
}

// IntoShared finalizes the builder into an RcPath: a Path meant to be
// spliced into more than one place (e.g. both a Condition's true and
// false branches) without cloning.
func (b *Builder) IntoShared() *Path {
	return b.Build()
}

// Empty returns a Path with no items, useful as a Condition branch.
func Empty() *Path {
	return &Path{}
}
