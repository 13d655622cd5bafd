// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package printer implements the PrintIR evaluator (spec.md §4.3): a
// single forward pass over the IR with bounded retry for conditions whose
// predicate cannot yet be decided. It is grounded on the teacher's
// internal/printer.Printer, whose toplevel recover()-based error boundary
// (finishToplevel) this package's Print method mirrors almost exactly,
// generalized from "print one document, one statement/expr switch at a
// time" to "evaluate a lazy IR with forward-referenced conditions."
package printer

import (
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/internal/ierr"
	"github.com/dprintgo/tsfmt/ir"
	"github.com/dprintgo/tsfmt/writer"
)

// speculation records one undecided Condition the printer guessed
// optimistically (took TruePath) and may still need to rewind.
type speculation struct {
	cond     *ir.Condition
	snapshot writer.Snapshot
	infos    map[ir.InfoID]ir.ResolvedInfo // copy at time of speculation
	conds    map[ir.ConditionID]bool
	contLen  int // length to truncate contStack to on rewind
}

// Printer evaluates a PrintIR path against a Writer.
type Printer struct {
	w   *writer.Writer
	cfg config.Config

	infos map[ir.InfoID]ir.ResolvedInfo
	conds map[ir.ConditionID]bool

	contStack []*ir.Item
	openSpecs []*speculation
}

// New creates a Printer for one formatting pass.
func New(cfg config.Config) *Printer {
	return &Printer{
		w:     writer.New(int(cfg.IndentWidth), cfg.UseTabs),
		cfg:   cfg,
		infos: make(map[ir.InfoID]ir.ResolvedInfo),
		conds: make(map[ir.ConditionID]bool),
	}
}

// --- ir.Resolver ---

func (p *Printer) ResolvedInfo(id ir.InfoID) (ir.ResolvedInfo, bool) {
	v, ok := p.infos[id]
	return v, ok
}

func (p *Printer) ResolvedCondition(id ir.ConditionID) (bool, bool) {
	v, ok := p.conds[id]
	return v, ok
}

func (p *Printer) CurrentPosition() ir.ResolvedInfo {
	return p.captureInfo()
}

func (p *Printer) IndentWidth() int { return int(p.cfg.IndentWidth) }
func (p *Printer) LineWidth() int   { return int(p.cfg.LineWidth) }

func (p *Printer) captureInfo() ir.ResolvedInfo {
	return ir.ResolvedInfo{
		Line:            p.w.Line(),
		Column:          p.w.Column(),
		Indent:          p.w.IndentLevel(),
		LineStartIndent: p.w.LineStartIndent(),
		ByteOffset:      p.w.ByteOffset(),
	}
}

// Print evaluates path to completion and returns the formatted text.
// A panicked *ierr.BugError - from a Writer invariant or from
// ierr.Assert - is recovered and returned as an error here, the same
// recover-at-the-pass-boundary shape as the teacher's finishToplevel.
func (p *Printer) Print(path *ir.Path) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(*ierr.BugError); ok {
				err = be
				return
			}
			panic(r)
		}
	}()

	p.run(path)
	p.checkOpenSpeculations()
	ierr.Assert(p.w.Balanced(), ierr.UnbalancedIndent, "unbalanced indent/force-no-newlines/ignoring-indent scope at end of pass")
	return p.w.String(), nil
}

func (p *Printer) run(path *ir.Path) {
	cursor := path.Head()
	for {
		if cursor == nil {
			if len(p.contStack) == 0 {
				return
			}
			cursor = p.contStack[len(p.contStack)-1]
			p.contStack = p.contStack[:len(p.contStack)-1]
			continue
		}
		item := cursor
		cursor = item.Next()

		switch item.Kind {
		case ir.KindString:
			p.w.WriteText(item.Text)

		case ir.KindNewLine:
			p.w.WriteNewline()

		case ir.KindPossibleNewLine:
			// Discarded entirely inside a forced-single-line scope; callers
			// that need an unconditional break emit KindNewLine directly,
			// so by the time the printer reaches this item in any other
			// scope there is nothing left to decide.
			if p.w.InForceNoNewLines() {
				// no-op: discarded per spec.md §4.3's ForceNoNewLines rule
			}

		case ir.KindSpaceOrNewLine:
			// Builders only ever place this inside a branch already known
			// to be single-line (the multi-line branch of the same
			// Condition emits a literal NewLine instead), so resolving it
			// here is always "space".
			p.w.WriteText(" ")

		case ir.KindSpaceIfNotTrailing:
			if cursor == nil || cursor.Kind != ir.KindNewLine {
				p.w.WriteText(" ")
			}

		case ir.KindTab:
			p.w.WriteText("\t")

		case ir.KindExpectNewLine:
			if cursor == nil || cursor.Kind != ir.KindNewLine {
				p.w.WriteNewline()
			}

		case ir.KindStartIndent:
			p.w.PushIndent()
		case ir.KindFinishIndent:
			p.w.PopIndent()

		case ir.KindStartForceNoNewLines:
			p.w.StartForceNoNewLines()
		case ir.KindFinishForceNoNewLines:
			p.w.StopForceNoNewLines()

		case ir.KindStartIgnoringIndent:
			p.w.StartIgnoringIndent()
		case ir.KindFinishIgnoringIndent:
			p.w.StopIgnoringIndent()

		case ir.KindInfo:
			p.infos[item.Info] = p.captureInfo()
			if p.reevaluateSpeculations(item.Info) {
				// A speculation was just rewound: the writer and resolver
				// caches were restored to an earlier point and the false
				// path was pushed as the next continuation, so the
				// (now stale) cursor this iteration computed from item
				// must be discarded. Setting it to nil makes the loop
				// fall through to the contStack pop above, which yields
				// exactly that false-path head.
				cursor = nil
			}

		case ir.KindCondition:
			cursor = p.evalCondition(item, cursor)

		case ir.KindRcPath:
			if head := item.Shared.Head(); head != nil {
				p.contStack = append(p.contStack, cursor)
				cursor = head
			}
		}
	}
}

// evalCondition decides item.Cond's branch (deciding now, or speculating
// optimistically) and returns the cursor to resume the main loop with.
// afterItem is what must run once the chosen branch is exhausted.
func (p *Printer) evalCondition(item *ir.Item, afterItem *ir.Item) *ir.Item {
	cond := item.Cond
	val, ok := cond.Predicate(p)
	if ok {
		p.conds[cond.ID] = val
		branch := cond.FalsePath
		if val {
			branch = cond.TruePath
		}
		return p.descend(branch, afterItem)
	}

	// Undecided: speculate the true path, snapshotting enough state to
	// rewind if a later Info contradicts the guess.
	spec := &speculation{
		cond:     cond,
		snapshot: p.w.Snapshot(),
		infos:    cloneInfos(p.infos),
		conds:    cloneConds(p.conds),
	}
	next := p.descend(cond.TruePath, afterItem)
	spec.contLen = len(p.contStack)
	p.openSpecs = append(p.openSpecs, spec)
	return next
}

// descend pushes afterItem as the continuation and returns the head of
// branch, or afterItem directly if branch is empty.
func (p *Printer) descend(branch *ir.Path, afterItem *ir.Item) *ir.Item {
	head := branch.Head()
	if head == nil {
		return afterItem
	}
	p.contStack = append(p.contStack, afterItem)
	return head
}

// reevaluateSpeculations re-checks every open speculation that depends on
// the just-resolved info id, committing or rewinding as needed
// (spec.md §4.3, "Backtracking bound"). It reports whether a rewind
// happened, in which case the caller must abandon its current IR cursor
// in favor of whatever reevaluateSpeculations pushed onto the
// continuation stack.
func (p *Printer) reevaluateSpeculations(resolved ir.InfoID) bool {
	for i := len(p.openSpecs) - 1; i >= 0; i-- {
		spec := p.openSpecs[i]
		if !containsID(spec.cond.DependentInfos, resolved) {
			continue
		}
		val, ok := spec.cond.Predicate(p)
		if !ok {
			continue // still undecided, keep waiting
		}
		if val {
			// Speculative guess (true path) confirmed: commit and stop
			// tracking it.
			p.conds[spec.cond.ID] = true
			p.openSpecs = append(p.openSpecs[:i], p.openSpecs[i+1:]...)
			continue
		}
		// Contradiction: rewind to the point the speculation began and
		// take the false path instead. Any speculation opened after this
		// one lived entirely inside the now-discarded true path, so it is
		// dropped along with it.
		p.w.Restore(spec.snapshot)
		p.infos = spec.infos
		p.conds = spec.conds
		p.conds[spec.cond.ID] = false
		p.contStack = p.contStack[:spec.contLen]
		p.openSpecs = p.openSpecs[:i]

		if head := spec.cond.FalsePath.Head(); head != nil {
			p.contStack = append(p.contStack, head)
		}
		return true
	}
	return false
}

func (p *Printer) checkOpenSpeculations() {
	for _, spec := range p.openSpecs {
		for _, dep := range spec.cond.DependentInfos {
			if _, ok := p.infos[dep]; !ok {
				ierr.Assertf(false, ierr.UnresolvableCondition,
					"condition %q depends on info %d which was never resolved", spec.cond.DebugName, dep)
			}
		}
	}
}

func containsID(ids []ir.InfoID, id ir.InfoID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func cloneInfos(m map[ir.InfoID]ir.ResolvedInfo) map[ir.InfoID]ir.ResolvedInfo {
	out := make(map[ir.InfoID]ir.ResolvedInfo, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneConds(m map[ir.ConditionID]bool) map[ir.ConditionID]bool {
	out := make(map[ir.ConditionID]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
