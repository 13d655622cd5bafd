// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/ir"
)

func (c *Context) transformArrayPattern(e *ast.ArrayPattern) *ir.Path {
	values := make([]*ir.Path, len(e.Elements))
	for i, el := range e.Elements {
		if el == nil {
			values[i] = ir.Empty()
			continue
		}
		values[i] = c.transformExpression(el)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "[",
		Close:         "]",
		TrailingComma: c.Config.TrailingCommas.ArrayPattern,
		Hanging:       c.Config.PreferHanging,
	})
}

func (c *Context) transformObjectPattern(e *ast.ObjectPattern) *ir.Path {
	if len(e.Properties) == 0 {
		return stringPath(c, "{}")
	}
	values := make([]*ir.Path, len(e.Properties))
	for i, p := range e.Properties {
		values[i] = c.transformObjectPatternProperty(p)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "{",
		Close:         "}",
		TrailingComma: c.Config.TrailingCommas.ObjectPattern,
		SpaceInside:   true,
		Hanging:       c.Config.PreferHanging,
	})
}

func (c *Context) transformObjectPatternProperty(p *ast.ObjectPatternProperty) *ir.Path {
	c.visitNode(p)
	b := ir.NewBuilder(c.Gen)
	if p.IsRest {
		b.PushString("...")
		b.ExtendPath(c.transformExpression(p.Value))
		return b.Build()
	}
	if p.Shorthand {
		b.ExtendPath(c.transformExpression(p.Value))
		return b.Build()
	}
	if p.Computed {
		b.PushString("[")
		b.ExtendPath(c.transformExpression(p.Key))
		b.PushString("]")
	} else {
		b.ExtendPath(c.transformExpression(p.Key))
	}
	b.PushString(": ")
	b.ExtendPath(c.transformExpression(p.Value))
	return b.Build()
}

func (c *Context) transformAssignmentPattern(e *ast.AssignmentPattern) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.ExtendPath(c.transformExpression(e.Left))
	b.PushString(" = ")
	b.ExtendPath(c.transformExpression(e.Right))
	return b.Build()
}

func (c *Context) transformRestElement(e *ast.RestElement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("...")
	b.ExtendPath(c.transformExpression(e.Argument))
	return b.Build()
}
