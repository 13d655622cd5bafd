// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/ir"
)

// SeparatedValuesOptions configures the separated-values engine
// (spec.md §4.5.4), shared by argument lists, parameter lists, array
// literals and object literals.
type SeparatedValuesOptions struct {
	Open  string
	Close string

	TrailingComma config.TrailingCommaOpt

	// SpaceInside adds a leading/trailing space just inside Open/Close
	// in the single-line rendering only (object literals want
	// `{ a, b }`; array literals and argument lists want `(a, b)`).
	SpaceInside bool

	// Hanging selects the "first value stays on the opening line,
	// later ones indent" wrap style instead of "every value on its own
	// line" (spec.md §4.5.4's third, hanging path). Driven by static
	// config (PreferHanging), not by content, so it is decided once up
	// front rather than through another Condition.
	Hanging bool
}

// SeparatedValues builds the IR for N already-built value Paths under one
// opening/closing delimiter, choosing between a single-line rendering and
// a wrapped rendering via a FitsOnSingleLine Condition - the canonical
// instance of spec.md §9's "forward-dependent conditions": the Condition
// is placed before its own dependent info (`end`) is captured, so the
// printer must speculate the single-line branch first and rewind to the
// wrapped branch if it turns out not to fit.
func (c *Context) SeparatedValues(values []*ir.Path, opts SeparatedValuesOptions) *ir.Path {
	if len(values) == 0 {
		b := ir.NewBuilder(c.Gen)
		b.PushString(opts.Open + opts.Close)
		return b.Build()
	}

	startInfo := newInfo(c, "sv-start")
	endInfo := newInfo(c, "sv-end")

	// Each value Path is spliced into both the single-line and multi-line
	// renderings below, so it must be referenced via PushShared (an
	// RcPath indirection) rather than ExtendPath: ExtendPath mutates the
	// value Path's own tail pointer to splice in whatever the enclosing
	// builder appends next, which would corrupt the other branch's copy
	// of the same tail node if done twice (spec.md §4.2's Path sharing
	// rule).
	single := ir.NewBuilder(c.Gen)
	if opts.SpaceInside {
		single.PushString(" ")
	}
	for i, v := range values {
		if i > 0 {
			single.PushString(", ")
		}
		single.PushShared(v)
	}
	if opts.SpaceInside {
		single.PushString(" ")
	}
	single.PushInfo(endInfo)
	singlePath := single.Build()

	multi := ir.NewBuilder(c.Gen)
	if opts.Hanging {
		multi.PushShared(values[0])
		if len(values) > 1 || multiLineTrailingComma(opts.TrailingComma) {
			multi.PushString(",")
		}
		multi.PushSignal(ir.KindStartIndent)
		for i := 1; i < len(values); i++ {
			multi.PushSignal(ir.KindNewLine)
			multi.PushShared(values[i])
			if i < len(values)-1 || multiLineTrailingComma(opts.TrailingComma) {
				multi.PushString(",")
			}
		}
		multi.PushSignal(ir.KindFinishIndent)
	} else {
		multi.PushSignal(ir.KindStartIndent)
		for i, v := range values {
			multi.PushSignal(ir.KindNewLine)
			multi.PushShared(v)
			if i < len(values)-1 || multiLineTrailingComma(opts.TrailingComma) {
				multi.PushString(",")
			}
		}
		multi.PushSignal(ir.KindFinishIndent)
		multi.PushSignal(ir.KindNewLine)
	}
	multi.PushInfo(endInfo)
	multiPath := multi.Build()

	cond := ir.NewCondition(c.Gen, "separated-values-fits",
		ir.FitsOnSingleLine(startInfo.ID, endInfo.ID),
		singlePath, multiPath,
		startInfo.ID, endInfo.ID)

	b := ir.NewBuilder(c.Gen)
	b.PushString(opts.Open)
	b.PushInfo(startInfo)
	b.PushCondition(cond)
	b.PushString(opts.Close)
	return b.Build()
}

// MemberedBodyOptions configures the membered-body combinator (spec.md
// §4.5.3): class/interface/enum/switch bodies, all of which share the
// same brace-then-newline-separated-members shape.
type MemberedBodyOptions struct {
	Brace config.BracePosition
	// MemberSeparator is appended after every member ("," for an enum,
	// ";" for an interface body, "" for a class body and switch, since
	// class members and switch cases already terminate themselves).
	MemberSeparator string
	// TrailingComma, when MemberSeparator is non-empty, governs whether
	// the *last* member also gets MemberSeparator appended - every
	// earlier member always does, since that separator is what divides
	// it from its successor. Zero value (CommaAlways) always appends it,
	// matching class/interface bodies where every member is independently
	// terminated regardless of position.
	TrailingComma config.TrailingCommaOpt
}

// MemberedBody builds a brace-delimited body whose members are always
// one-per-line (unlike SeparatedValues, membered bodies do not have a
// single-line form in this engine - an empty body is the only body
// allowed to collapse to `{}`).
func (c *Context) MemberedBody(members []*ir.Path, opts MemberedBodyOptions) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	c.pushBraceSeparator(b, opts.Brace)
	b.PushString("{")
	if len(members) == 0 {
		b.PushString("}")
		return b.Build()
	}
	b.PushSignal(ir.KindStartIndent)
	for i, m := range members {
		b.PushSignal(ir.KindNewLine)
		b.ExtendPath(m)
		if i < len(members)-1 || opts.TrailingComma != config.CommaNever {
			b.PushString(opts.MemberSeparator)
		}
	}
	b.PushSignal(ir.KindFinishIndent)
	b.PushSignal(ir.KindNewLine)
	b.PushString("}")
	return b.Build()
}

// pushBraceSeparator appends whatever separates a header from its opening
// brace, per config.BracePosition. NextLineIfHanging and Maintain are not
// distinguished from SameLine in this engine: doing so requires comparing
// against the *header's* resolved multi-line-ness, which none of this
// repository's supported constructs need (none of their headers can
// themselves wrap across the brace), so the two are treated as
// BraceSameLine.
func (c *Context) pushBraceSeparator(b *ir.Builder, pos config.BracePosition) {
	switch pos {
	case config.BraceNextLine:
		b.PushSignal(ir.KindNewLine)
	default:
		b.PushString(" ")
	}
}
