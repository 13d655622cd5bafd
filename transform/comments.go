// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/ir"
	"github.com/dprintgo/tsfmt/source"
)

// emitCommentText appends a single comment's literal text, including its
// delimiters, exactly as it appeared in source.
func emitCommentText(b *ir.Builder, cm source.Comment) {
	if cm.Kind == source.Block {
		b.PushString("/*" + cm.Text + "*/")
	} else {
		b.PushString("//" + cm.Text)
	}
}

// emitLeadingComments applies spec.md §4.4's placement rules to a list of
// leading comments already claimed from the Attacher: a comment on its
// own source line starts a new output line (with a preceding blank line
// if one separated it from whatever came before); a comment sharing its
// line with the previous token is forced inline with StartForceNoNewLines
// and a trailing ExpectNewLine hint.
func emitLeadingComments(b *ir.Builder, ctx *Context, prevHi uint32, cs []source.Comment) {
	prevEnd := prevHi
	for _, cm := range cs {
		if ctx.Attacher.OwnLine(cm) {
			if ctx.Attacher.PrecededByBlankLine(cm, prevEnd) {
				b.PushSignal(ir.KindNewLine)
			}
			emitCommentText(b, cm)
			b.PushSignal(ir.KindNewLine)
		} else {
			b.PushSignal(ir.KindStartForceNoNewLines)
			b.PushString(" ")
			emitCommentText(b, cm)
			b.PushSignal(ir.KindFinishForceNoNewLines)
			b.PushSignal(ir.KindExpectNewLine)
		}
		prevEnd = cm.Span.Hi
	}
}

// emitTrailingSameLineComment appends the single line comment that
// followed a statement on its own line, per spec.md §4.5.1 step 6.
func emitTrailingSameLineComment(b *ir.Builder, cm source.Comment) {
	b.PushSignal(ir.KindStartForceNoNewLines)
	b.PushString(" ")
	emitCommentText(b, cm)
	b.PushSignal(ir.KindFinishForceNoNewLines)
}

// lastLeadingCommentText returns the Text of the final comment in cs, or
// "" if cs is empty - used by the dprint-ignore check, which only looks
// at a node's *last* leading comment (spec.md §4.5.1).
func lastLeadingCommentText(cs []source.Comment) (string, bool) {
	if len(cs) == 0 {
		return "", false
	}
	return cs[len(cs)-1].Text, true
}
