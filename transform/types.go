// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/ir"
)

// transformType dispatches a type-position node. It is a separate
// dispatch from transformExpression, rather than another case folded
// into it, because a type annotation's node set (TypeReference,
// UnionType, IntersectionType, TupleType) never overlaps with an
// expression's and mixing the two switches would make either one harder
// to audit for completeness.
func (c *Context) transformType(n ast.Node) *ir.Path {
	c.visitNode(n)
	switch t := n.(type) {
	case *ast.TypeReference:
		return c.transformTypeReference(t)
	case *ast.UnionType:
		return c.transformUnionType(t)
	case *ast.IntersectionType:
		return c.transformIntersectionType(t)
	case *ast.TupleType:
		return c.transformTupleType(t)
	default:
		return c.transformExpression(n)
	}
}

func (c *Context) transformTypeReference(t *ast.TypeReference) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString(t.Name)
	if len(t.TypeArguments) == 0 {
		return b.Build()
	}
	values := make([]*ir.Path, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		values[i] = c.transformType(a)
	}
	b.ExtendPath(c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "<",
		Close:         ">",
		TrailingComma: c.Config.TrailingCommas.TypeParameters,
		Hanging:       c.Config.PreferHanging,
	}))
	return b.Build()
}

// transformUnionType renders "A | B | C" with all operands on one line;
// a long union is not wrapped.
func (c *Context) transformUnionType(t *ast.UnionType) *ir.Path {
	return c.transformTypeOperands(t.Span().Lo, t.Types, "| ")
}

func (c *Context) transformIntersectionType(t *ast.IntersectionType) *ir.Path {
	return c.transformTypeOperands(t.Span().Lo, t.Types, "& ")
}

// transformTypeOperands claims any comments sitting between ownerLo (the
// position of whatever introduced this type - a `type X =`, a parameter
// annotation's `:`) and the first operand, then hands them to that
// operand with Delegate: a union/intersection type has no token of its
// own, so its first operand starts at the same offset the union itself
// does, and without this delegation those comments would never be
// claimed by any node (spec.md §4.4).
func (c *Context) transformTypeOperands(ownerLo uint32, types []ast.Node, sep string) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	for i, op := range types {
		if i == 0 {
			leading := c.Attacher.Delegate(c.Attacher.LeadingComments(ownerLo, op.Span().Lo))
			emitLeadingComments(b, c, ownerLo, leading)
		} else {
			b.PushString(" " + sep)
		}
		b.ExtendPath(c.transformType(op))
	}
	return b.Build()
}

func (c *Context) transformTupleType(t *ast.TupleType) *ir.Path {
	values := make([]*ir.Path, len(t.ElementTypes))
	for i, el := range t.ElementTypes {
		values[i] = c.transformType(el)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "[",
		Close:         "]",
		TrailingComma: c.Config.TrailingCommas.TupleType,
		Hanging:       c.Config.PreferHanging,
	})
}

// transformTypeParams renders a declaration's `<T, U extends V = W>`
// clause, or nothing if it has none.
func (c *Context) transformTypeParams(params []*ast.TypeParameter) *ir.Path {
	if len(params) == 0 {
		return ir.Empty()
	}
	values := make([]*ir.Path, len(params))
	for i, p := range params {
		values[i] = c.transformTypeParameter(p)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "<",
		Close:         ">",
		TrailingComma: c.Config.TrailingCommas.TypeParameters,
		Hanging:       c.Config.PreferHanging,
	})
}

func (c *Context) transformTypeParameter(p *ast.TypeParameter) *ir.Path {
	c.visitNode(p)
	b := ir.NewBuilder(c.Gen)
	b.PushString(p.Name)
	if p.Constraint != nil {
		b.PushString(" extends ")
		b.ExtendPath(c.transformType(p.Constraint))
	}
	if p.Default != nil {
		b.PushString(" = ")
		b.ExtendPath(c.transformType(p.Default))
	}
	return b.Build()
}

// transformTypeAliasDeclaration renders `type Name<T> = ...;`.
func (c *Context) transformTypeAliasDeclaration(s *ast.TypeAliasDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("type " + s.Name)
	b.ExtendPath(c.transformTypeParams(s.TypeParams))
	b.PushString(" = ")
	b.ExtendPath(c.transformType(s.TypeAnnotation))
	statementSemicolon(b, c.Config)
	return b.Build()
}
