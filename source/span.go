// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source defines the contract the formatting core consumes from
// its external collaborators: the lexer/parser that produces an AST and
// comment map, and the byte buffer of the file being formatted. Nothing
// in this package performs lexing or parsing; it only describes the shape
// of what a parser must hand to the core (spec.md §6).
package source

import "fmt"

// Span is a half-open byte interval into the original source buffer.
// Invariant: Lo <= Hi.
type Span struct {
	Lo uint32
	Hi uint32
}

func (s Span) Len() uint32 {
	return s.Hi - s.Lo
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}

// Contains reports whether p falls within the half-open span.
func (s Span) Contains(p uint32) bool {
	return p >= s.Lo && p < s.Hi
}

// Position is a 1-indexed line/column pair, derived from a byte offset via
// FileInfo's line-start table.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
