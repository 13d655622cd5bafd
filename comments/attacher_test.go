// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comments

import (
	"testing"

	"github.com/dprintgo/tsfmt/source"
)

func TestLeadingCommentsOneShot(t *testing.T) {
	text := []byte("// a comment\nstmt();\n")
	fi := source.NewFileInfo("t.ts", text)
	cs := []source.Comment{{ID: 0, Kind: source.Line, Span: source.Span{Lo: 0, Hi: 12}, Text: " a comment"}}
	a := New(cs, fi)

	leading := a.LeadingComments(0, 13)
	if len(leading) != 1 {
		t.Fatalf("LeadingComments = %v, want 1 comment", leading)
	}

	// A second call over the same range must not re-hand out the comment.
	again := a.LeadingComments(0, 13)
	if len(again) != 0 {
		t.Fatalf("LeadingComments second call = %v, want none", again)
	}
	if len(a.Remaining()) != 0 {
		t.Fatalf("Remaining() = %v, want none", a.Remaining())
	}
}

func TestVisitNodeOrderingInvariant(t *testing.T) {
	a := New(nil, source.NewFileInfo("t.ts", nil))
	a.VisitNode(5)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic from out-of-order VisitNode")
		}
	}()
	a.VisitNode(3)
}

func TestOwnLineAndPrecededByBlankLine(t *testing.T) {
	text := []byte("a();\n\n// own line\nb();\n")
	fi := source.NewFileInfo("t.ts", text)
	commentLo := uint32(6) // start of "// own line"
	c := source.Comment{ID: 0, Kind: source.Line, Span: source.Span{Lo: commentLo, Hi: commentLo + 12}, Text: " own line"}
	a := New([]source.Comment{c}, fi)

	if !a.OwnLine(c) {
		t.Error("expected comment to start on its own line")
	}
	if !a.PrecededByBlankLine(c, 4) { // prevHi = end of "a();"
		t.Error("expected a blank line before the comment")
	}
}

func TestConsumeRangeMarksHandledWithoutReturning(t *testing.T) {
	fi := source.NewFileInfo("t.ts", []byte("/* x */ stmt();\n"))
	cs := []source.Comment{{ID: 0, Kind: source.Block, Span: source.Span{Lo: 0, Hi: 7}, Text: " x "}}
	a := New(cs, fi)
	a.ConsumeRange(0, 20)
	if len(a.Remaining()) != 0 {
		t.Fatalf("Remaining() = %v, want none after ConsumeRange", a.Remaining())
	}
}
