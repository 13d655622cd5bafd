// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/ir"
)

// transformClassDeclaration renders a class via MemberedBody, giving that
// combinator its class-body call site (spec.md §4.5.3).
func (c *Context) transformClassDeclaration(s *ast.ClassDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	for _, d := range s.Decorators {
		b.PushString(d)
		b.PushSignal(ir.KindNewLine)
	}
	if s.IsAbstract {
		b.PushString("abstract ")
	}
	b.PushString("class")
	if s.Name != "" {
		b.PushString(" " + s.Name)
	}
	b.ExtendPath(c.transformTypeParams(s.TypeParams))
	if s.SuperClass != nil {
		b.PushString(" extends ")
		b.ExtendPath(c.transformExpression(s.SuperClass))
	}
	if len(s.Implements) > 0 {
		b.PushString(" implements ")
		for i, t := range s.Implements {
			if i > 0 {
				b.PushString(", ")
			}
			b.ExtendPath(c.transformType(t))
		}
	}

	members := make([]*ir.Path, len(s.Body))
	for i, m := range s.Body {
		members[i] = c.transformClassMember(m)
	}
	b.ExtendPath(c.MemberedBody(members, MemberedBodyOptions{
		Brace:           c.Config.BracePositions.ClassBody,
		MemberSeparator: "",
	}))
	return b.Build()
}

func (c *Context) transformClassMember(m *ast.ClassMember) *ir.Path {
	c.visitNode(m.Base)
	b := ir.NewBuilder(c.Gen)
	for _, d := range m.Decorators {
		b.PushString(d)
		b.PushSignal(ir.KindNewLine)
	}
	if len(m.Modifiers) > 0 {
		b.PushString(strings.Join(m.Modifiers, " ") + " ")
	}
	if m.IsAsync {
		b.PushString("async ")
	}
	if m.Kind == "get" || m.Kind == "set" {
		b.PushString(m.Kind + " ")
	}
	if m.IsGenerator {
		b.PushString("*")
	}

	keyPath := c.classMemberKey(m)
	b.ExtendPath(keyPath)
	if m.Optional {
		b.PushString("?")
	}

	if m.Kind == "property" {
		if m.Value != nil {
			b.PushString(" = ")
			b.ExtendPath(c.transformExpression(m.Value))
		}
		b.PushString(";")
		return b.Build()
	}

	b.ExtendPath(c.transformParameterList(m.Params))
	if m.Body == nil {
		b.PushString(";")
		return b.Build()
	}
	c.pushBraceSeparator(b, c.Config.BracePositions.Function)
	b.ExtendPath(c.transformStatement(m.Body))
	return b.Build()
}

func (c *Context) classMemberKey(m *ast.ClassMember) *ir.Path {
	if m.Kind == "constructor" {
		return stringPath(c, "constructor")
	}
	if m.Computed {
		b := ir.NewBuilder(c.Gen)
		b.PushString("[")
		b.ExtendPath(c.transformExpression(m.Key))
		b.PushString("]")
		return b.Build()
	}
	return c.transformExpression(m.Key)
}

// transformInterfaceDeclaration mirrors transformClassDeclaration's
// MemberedBody use for an interface's signature list (spec.md §4.5.3).
func (c *Context) transformInterfaceDeclaration(s *ast.InterfaceDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("interface " + s.Name)
	b.ExtendPath(c.transformTypeParams(s.TypeParams))
	if len(s.Extends) > 0 {
		b.PushString(" extends ")
		for i, t := range s.Extends {
			if i > 0 {
				b.PushString(", ")
			}
			b.ExtendPath(c.transformType(t))
		}
	}

	members := make([]*ir.Path, len(s.Body))
	for i, m := range s.Body {
		members[i] = c.transformInterfaceMember(m)
	}
	b.ExtendPath(c.MemberedBody(members, MemberedBodyOptions{
		Brace:           c.Config.BracePositions.ClassBody,
		MemberSeparator: ";",
	}))
	return b.Build()
}

func (c *Context) transformInterfaceMember(m *ast.InterfaceMember) *ir.Path {
	c.visitNode(m)
	b := ir.NewBuilder(c.Gen)
	if m.Computed {
		b.PushString("[")
		b.ExtendPath(c.transformExpression(m.Key))
		b.PushString("]")
	} else {
		b.ExtendPath(c.transformExpression(m.Key))
	}
	if m.Optional {
		b.PushString("?")
	}
	if m.IsMethod {
		b.ExtendPath(c.transformParameterList(m.Params))
	}
	return b.Build()
}

// transformEnumDeclaration renders an enum body through MemberedBody,
// using TrailingCommas.EnumDeclaration for the one member separator this
// family actually wants a trailing comma for (spec.md §6).
func (c *Context) transformEnumDeclaration(s *ast.EnumDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if s.IsConst {
		b.PushString("const ")
	}
	b.PushString("enum " + s.Name)

	members := make([]*ir.Path, len(s.Members))
	for i, m := range s.Members {
		c.visitNode(m)
		mb := ir.NewBuilder(c.Gen)
		mb.PushString(m.Name)
		if m.Init != nil {
			mb.PushString(" = ")
			mb.ExtendPath(c.transformExpression(m.Init))
		}
		members[i] = mb.Build()
	}
	b.ExtendPath(c.MemberedBody(members, MemberedBodyOptions{
		Brace:           c.Config.BracePositions.ClassBody,
		MemberSeparator: ",",
		TrailingComma:   c.Config.TrailingCommas.EnumDeclaration,
	}))
	return b.Build()
}
