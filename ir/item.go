// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir implements PrintIR (spec.md §3): a lazy, append-only,
// singly-linked sequence of print items produced by the transformer and
// consumed by the printer. Branching happens only inside Condition items;
// shared subsequences are expressed with RcPath so that two branches (or
// two unrelated call sites) can reuse one built sequence without cloning
// it, the same way internal/ast in the teacher repo shares *LabelDefSt
// pointers rather than copying label definitions around.
package ir

// Kind tags every PrintItem variant.
type Kind int

const (
	KindString Kind = iota
	KindNewLine
	KindPossibleNewLine
	KindSpaceOrNewLine
	KindSpaceIfNotTrailing
	KindTab
	KindExpectNewLine
	KindStartIndent
	KindFinishIndent
	KindStartForceNoNewLines
	KindFinishForceNoNewLines
	KindStartIgnoringIndent
	KindFinishIgnoringIndent
	KindInfo
	KindCondition
	KindRcPath
)

//go:generate stringer -type=Kind -output=kind_string.go

// Item is one node of a PrintIR path. Exactly one of the payload fields is
// meaningful, selected by Kind; this mirrors a tagged union via a single
// struct rather than an interface, since the printer's hot loop switches
// on Kind far more often than it needs per-variant methods.
type Item struct {
	Kind Kind

	Text string // KindString

	Info InfoID // KindInfo

	Cond *Condition // KindCondition

	Shared *Path // KindRcPath

	next *Item
}

// Path is a singly-linked, append-only sequence of Items, with an O(1)
// append via a cached tail pointer. Once handed to the printer (by being
// spliced into another Path, or passed to printer.Print) a Path must not
// be mutated further; the builder methods below are the only legal way to
// grow one.
type Path struct {
	head *Item
	tail *Item
}

// Head returns the first item of the path, or nil if empty.
func (p *Path) Head() *Item {
	if p == nil {
		return nil
	}
	return p.head
}

// IsEmpty reports whether the path has no items.
func (p *Path) IsEmpty() bool {
	return p == nil || p.head == nil
}

func (p *Path) append(it *Item) {
	if p.head == nil {
		p.head = it
		p.tail = it
		return
	}
	p.tail.next = it
	p.tail = it
}

// Next returns the item following it, or nil at path end.
func (it *Item) Next() *Item {
	if it == nil {
		return nil
	}
	return it.next
}
