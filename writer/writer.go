// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package writer implements the linear text accumulator the printer
// writes through (spec.md §4.1). It is the lowest-level piece of the
// engine, grounded on the teacher's own low-level write path
// (internal/printer.Printer's byte/string/newline methods) generalized
// with the indent/force-no-newline/ignoring-indent scopes the JS/TS
// printer needs that a flat assembly printer does not.
package writer

import (
	"strings"

	"github.com/dprintgo/tsfmt/internal/ierr"
)

// Writer accumulates output text while tracking position, so that the
// printer can answer positional questions (current line/column/indent)
// without re-scanning what it has already written.
type Writer struct {
	out []byte

	lineNumber           int // 0-based
	columnNumber         int // 0-based, visible column (tabs expanded)
	indentLevel          int
	lineStartIndentLevel int // indent level captured at start of current line
	indentStack          []int

	forceNoNewLinesDepth int
	ignoringIndentDepth  int

	atLineStart   bool
	lastWasNewline bool

	// configuration
	indentWidth int
	useTabs     bool
}

// New creates a Writer. indentWidth and useTabs come from config.Config.
func New(indentWidth int, useTabs bool) *Writer {
	return &Writer{
		indentWidth: indentWidth,
		useTabs:     useTabs,
		atLineStart: true,
	}
}

// Snapshot is an opaque capture of writer state for the printer's
// condition-speculation backtracking (spec.md §4.3). Restoring it rewinds
// the writer to exactly this point, including truncating any text written
// since.
type Snapshot struct {
	outLen               int
	lineNumber           int
	columnNumber         int
	indentLevel          int
	lineStartIndentLevel int
	indentStackLen       int
	forceNoNewLinesDepth int
	ignoringIndentDepth  int
	atLineStart          bool
	lastWasNewline       bool
}

// Snapshot captures the current state in O(1).
func (w *Writer) Snapshot() Snapshot {
	return Snapshot{
		outLen:               len(w.out),
		lineNumber:           w.lineNumber,
		columnNumber:         w.columnNumber,
		indentLevel:          w.indentLevel,
		lineStartIndentLevel: w.lineStartIndentLevel,
		indentStackLen:       len(w.indentStack),
		forceNoNewLinesDepth: w.forceNoNewLinesDepth,
		ignoringIndentDepth:  w.ignoringIndentDepth,
		atLineStart:          w.atLineStart,
		lastWasNewline:       w.lastWasNewline,
	}
}

// Restore rewinds the writer to a previously captured Snapshot, truncating
// any output written after it. The printer only ever restores to the
// snapshot taken when the most recently deferred Condition was first
// encountered (spec.md §4.3's backtracking bound), so this never needs to
// rewind arbitrarily far.
func (w *Writer) Restore(s Snapshot) {
	w.out = w.out[:s.outLen]
	w.lineNumber = s.lineNumber
	w.columnNumber = s.columnNumber
	w.indentLevel = s.indentLevel
	w.lineStartIndentLevel = s.lineStartIndentLevel
	w.indentStack = w.indentStack[:s.indentStackLen]
	w.forceNoNewLinesDepth = s.forceNoNewLinesDepth
	w.ignoringIndentDepth = s.ignoringIndentDepth
	w.atLineStart = s.atLineStart
	w.lastWasNewline = s.lastWasNewline
}

// WriteText appends text, first emitting indentation if at the start of a
// line and indentation is not currently suppressed.
func (w *Writer) WriteText(s string) {
	if s == "" {
		return
	}
	w.maybeEmitIndent()
	w.out = append(w.out, s...)
	for _, r := range s {
		if r == '\n' {
			// Embedded newlines (template literals under
			// StartIgnoringIndent) bump line tracking directly rather
			// than going through WriteNewline, since no indent should be
			// re-emitted for them.
			w.lineNumber++
			w.columnNumber = 0
			w.lineStartIndentLevel = w.indentLevel
		} else if r == '\t' {
			w.columnNumber += w.indentWidth
		} else {
			w.columnNumber++
		}
	}
	w.lastWasNewline = false
}

// WriteNewline forces a line break, unless force-no-newlines is active, in
// which case a space is emitted instead (spec.md §4.3's "Forcible
// no-newlines").
func (w *Writer) WriteNewline() {
	if w.forceNoNewLinesDepth > 0 {
		w.WriteText(" ")
		return
	}
	w.out = append(w.out, '\n')
	w.lineNumber++
	w.columnNumber = 0
	w.atLineStart = true
	w.lineStartIndentLevel = w.indentLevel
	w.lastWasNewline = true
}

func (w *Writer) maybeEmitIndent() {
	if !w.atLineStart || w.ignoringIndentDepth > 0 {
		return
	}
	if w.useTabs {
		w.out = append(w.out, strings.Repeat("\t", w.indentLevel)...)
		w.columnNumber += w.indentLevel * w.indentWidth
	} else {
		w.out = append(w.out, strings.Repeat(" ", w.indentLevel*w.indentWidth)...)
		w.columnNumber += w.indentLevel * w.indentWidth
	}
	w.atLineStart = false
}

// PushIndent enters a new indent scope.
func (w *Writer) PushIndent() {
	w.indentStack = append(w.indentStack, w.indentLevel)
	w.indentLevel++
}

// PopIndent exits the most recently pushed indent scope. Calling it
// without a matching PushIndent is a bug (spec.md §7's "Unbalanced
// indent").
func (w *Writer) PopIndent() {
	ierr.Assert(len(w.indentStack) > 0, ierr.UnbalancedIndent, "FinishIndent with no matching StartIndent")
	n := len(w.indentStack) - 1
	w.indentLevel = w.indentStack[n]
	w.indentStack = w.indentStack[:n]
}

// StartForceNoNewLines/StopForceNoNewLines bracket a scope in which
// NewLine signals degrade to spaces.
func (w *Writer) StartForceNoNewLines() { w.forceNoNewLinesDepth++ }
func (w *Writer) StopForceNoNewLines() {
	ierr.Assert(w.forceNoNewLinesDepth > 0, ierr.UnbalancedIndent, "FinishForceNoNewLines with no matching Start")
	w.forceNoNewLinesDepth--
}

// StartIgnoringIndent/StopIgnoringIndent bracket a scope in which newlines
// do not re-emit indentation (used for template literals).
func (w *Writer) StartIgnoringIndent() { w.ignoringIndentDepth++ }
func (w *Writer) StopIgnoringIndent() {
	ierr.Assert(w.ignoringIndentDepth > 0, ierr.UnbalancedIndent, "FinishIgnoringIndent with no matching Start")
	w.ignoringIndentDepth--
}

// InForceNoNewLines reports whether NewLine signals currently degrade to
// spaces; used by the printer to also discard PossibleNewLine there.
func (w *Writer) InForceNoNewLines() bool { return w.forceNoNewLinesDepth > 0 }

// Balanced reports whether every push has a matching pop, checked once at
// the end of a pass.
func (w *Writer) Balanced() bool {
	return len(w.indentStack) == 0 && w.forceNoNewLinesDepth == 0 && w.ignoringIndentDepth == 0
}

func (w *Writer) Line() int             { return w.lineNumber }
func (w *Writer) Column() int           { return w.columnNumber }
func (w *Writer) IndentLevel() int      { return w.indentLevel }
func (w *Writer) LineStartIndent() int  { return w.lineStartIndentLevel }
func (w *Writer) ByteOffset() int       { return len(w.out) }

// String returns the accumulated output.
func (w *Writer) String() string { return string(w.out) }
