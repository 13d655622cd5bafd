// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/ir"
)

// transformJSXElement renders an opening/closing element with its
// children (spec.md §4.5.3): children fit on one line when the whole
// element does, and each child indents onto its own line otherwise, the
// same FitsOnSingleLine-Condition shape SeparatedValues uses for every
// other bracketed list.
func (c *Context) transformJSXElement(e *ast.JSXElement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("<" + e.Name)
	for _, a := range e.Attributes {
		b.PushString(" ")
		b.ExtendPath(c.transformJSXAttributeLike(a))
	}
	if e.SelfClosing {
		b.PushString(" />")
		return b.Build()
	}
	b.PushString(">")
	b.ExtendPath(c.transformJSXChildren(e.Children))
	b.PushString("</" + e.Name + ">")
	return b.Build()
}

func (c *Context) transformJSXFragment(e *ast.JSXFragment) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("<>")
	b.ExtendPath(c.transformJSXChildren(e.Children))
	b.PushString("</>")
	return b.Build()
}

func (c *Context) transformJSXAttributeLike(n ast.Node) *ir.Path {
	switch a := n.(type) {
	case *ast.JSXSpreadAttribute:
		b := ir.NewBuilder(c.Gen)
		b.PushString("{...")
		b.ExtendPath(c.transformExpression(a.Argument))
		b.PushString("}")
		return b.Build()
	default:
		return c.transformJSXAttribute(n.(*ast.JSXAttribute))
	}
}

func (c *Context) transformJSXAttribute(a *ast.JSXAttribute) *ir.Path {
	c.visitNode(a)
	b := ir.NewBuilder(c.Gen)
	b.PushString(a.Name)
	if a.Value == nil {
		return b.Build()
	}
	b.PushString("=")
	if lit, ok := a.Value.(*ast.StringLiteral); ok {
		b.ExtendPath(c.transformStringLiteral(lit))
		return b.Build()
	}
	b.ExtendPath(c.transformExpression(a.Value))
	return b.Build()
}

// transformJSXChildren renders a children list, collapsing pure
// whitespace JSXText nodes the way JSX's own runtime does (they carry no
// meaning between elements on their own line) while keeping text with
// real content. The whole list is wrapped in a FitsOnSingleLine Condition
// exactly like SeparatedValues, except there is no separator between
// children and no brackets of its own - the surrounding element already
// supplied `>`/`</name>`.
func (c *Context) transformJSXChildren(children []ast.Node) *ir.Path {
	rendered := make([]*ir.Path, 0, len(children))
	for _, ch := range children {
		if text, ok := ch.(*ast.JSXText); ok && strings.TrimSpace(text.Raw) == "" {
			continue
		}
		rendered = append(rendered, c.transformJSXChild(ch))
	}
	if len(rendered) == 0 {
		return ir.Empty()
	}

	startInfo := newInfo(c, "jsx-start")
	endInfo := newInfo(c, "jsx-end")

	single := ir.NewBuilder(c.Gen)
	for _, r := range rendered {
		single.PushShared(r)
	}
	single.PushInfo(endInfo)
	singlePath := single.Build()

	multi := ir.NewBuilder(c.Gen)
	multi.PushSignal(ir.KindStartIndent)
	for _, r := range rendered {
		multi.PushSignal(ir.KindNewLine)
		multi.PushShared(r)
	}
	multi.PushSignal(ir.KindFinishIndent)
	multi.PushSignal(ir.KindNewLine)
	multi.PushInfo(endInfo)
	multiPath := multi.Build()

	cond := ir.NewCondition(c.Gen, "jsx-children-fits",
		ir.FitsOnSingleLine(startInfo.ID, endInfo.ID),
		singlePath, multiPath,
		startInfo.ID, endInfo.ID)

	b := ir.NewBuilder(c.Gen)
	b.PushInfo(startInfo)
	b.PushCondition(cond)
	return b.Build()
}

func (c *Context) transformJSXChild(n ast.Node) *ir.Path {
	switch ch := n.(type) {
	case *ast.JSXText:
		return stringPath(c, strings.TrimSpace(ch.Raw))
	case *ast.JSXExpressionContainer:
		return c.transformJSXExpressionContainer(ch)
	default:
		return c.transformExpression(n)
	}
}

func (c *Context) transformJSXExpressionContainer(e *ast.JSXExpressionContainer) *ir.Path {
	c.visitNode(e)
	b := ir.NewBuilder(c.Gen)
	b.PushString("{")
	if e.Expression != nil {
		b.ExtendPath(c.transformExpression(e.Expression))
	}
	b.PushString("}")
	return b.Build()
}
