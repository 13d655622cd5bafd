// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/ir"
)

// statementSemicolon appends a statement terminator per config.SemiColons
// (spec.md §4.5.6). Asi never emits a trailing semicolon; the
// leading-semicolon insertion it requires instead is handled separately
// by maybeAsiLeadingSemicolon, since that decision depends on the
// *following* statement's first rendered character, not this one's.
func statementSemicolon(b *ir.Builder, cfg config.Config) {
	if cfg.SemiColons == config.Asi {
		return
	}
	b.PushString(";")
}

// asiTriggerBytes are the first characters of an expression statement
// that, under ASI, could combine with the end of the previous statement
// if no semicolon separates them (spec.md §4.5.6).
var asiTriggerBytes = map[byte]bool{
	'(': true, '[': true, '`': true, '+': true, '-': true, '/': true,
}

// firstRenderedByte walks a built Path looking for the first non-empty
// String item, returning its first byte. Only String items count: a
// statement's IR always begins with its literal text (possibly preceded
// by comment items, which the caller excludes by building this Path from
// the statement's own content only, not its leading comments).
func firstRenderedByte(p *ir.Path) (byte, bool) {
	for it := p.Head(); it != nil; it = it.Next() {
		switch it.Kind {
		case ir.KindString:
			if len(it.Text) > 0 {
				return it.Text[0], true
			}
		case ir.KindRcPath:
			if b, ok := firstRenderedByte(it.Shared); ok {
				return b, true
			}
		}
	}
	return 0, false
}

// maybeAsiLeadingSemicolon inspects the built IR of an expression
// statement and, under Asi, prepends a leading `;` if its first character
// would otherwise combine with whatever precedes it.
func maybeAsiLeadingSemicolon(b *ir.Builder, cfg config.Config, stmt *ir.Path) {
	if cfg.SemiColons != config.Asi {
		return
	}
	first, ok := firstRenderedByte(stmt)
	if ok && asiTriggerBytes[first] {
		b.PushString(";")
	}
}

// multiLineTrailingComma reports whether a separated-values group's
// multi-line rendering should end with a trailing separator. The
// single-line rendering never does, regardless of opt (spec.md §4.5.4).
func multiLineTrailingComma(opt config.TrailingCommaOpt) bool {
	return opt != config.CommaNever
}
