// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the AstTransformer (spec.md §4.5): for
// each AST variant, produce the PrintIR that renders it, consulting
// config.Config for style choices. The dispatch shape - one switch over
// ast.Kind per syntactic category - is grounded on the teacher's
// internal/printer.Printer.statement/expr methods; the Context threading
// a parent stack and handled-comment state through the walk is grounded
// on asm/compiler.go's Context-carrying expansion pass.
package transform

import (
	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/comments"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/ir"
	"github.com/dprintgo/tsfmt/source"
)

// Context carries everything the transformer threads through one
// recursive walk of the AST (spec.md §4.5's Context description).
type Context struct {
	Config   config.Config
	Src      *source.ParsedSource
	Attacher *comments.Attacher
	Gen      *ir.IDGen

	parentStack []ast.Node
	current     ast.Node
}

// NewContext builds a transformer Context for one formatting pass.
func NewContext(cfg config.Config, src *source.ParsedSource) *Context {
	return &Context{
		Config:   cfg,
		Src:      src,
		Attacher: comments.New(src.Comments, src.File),
		Gen:      ir.NewIDGen(),
	}
}

func (c *Context) pushParent(n ast.Node) func() {
	c.parentStack = append(c.parentStack, c.current)
	c.current = n
	return func() {
		last := len(c.parentStack) - 1
		c.current = c.parentStack[last]
		c.parentStack = c.parentStack[:last]
	}
}

// Parent returns the immediate parent of the node currently being
// transformed, or nil at the program root.
func (c *Context) Parent() ast.Node {
	if len(c.parentStack) == 0 {
		return nil
	}
	return c.parentStack[len(c.parentStack)-1]
}

// visitNode records a node's start position for the ordering invariant
// (spec.md §4.4, §5).
func (c *Context) visitNode(n ast.Node) {
	c.Attacher.VisitNode(n.Span().Lo)
}

// SourceText returns the exact original bytes spanned by n, used for
// shebang/directive-prologue preservation and dprint-ignore verbatim
// emission.
func (c *Context) SourceText(n ast.Node) string {
	return c.Src.File.Text(n.Span())
}

func newInfo(c *Context, name string) ir.Info {
	return ir.NewInfo(c.Gen, name)
}
