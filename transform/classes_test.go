// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
)

func TestFormatClassDeclarationRendersExtendsAndMethodBody(t *testing.T) {
	src, fi := newTestSource("class Foo extends Bar { greet() { hello(); } }")
	s := &seq{}

	greetBody := &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, s.span(1), fi), Body: []ast.Node{call0(s, fi, "hello")}}
	greet := &ast.ClassMember{
		Base: ast.NewBase(ast.KindClassMember, s.span(1), fi), Kind: "method",
		Key: ident(s, fi, "greet"), Body: greetBody,
	}
	cls := &ast.ClassDeclaration{
		Base: ast.NewBase(ast.KindClassDeclaration, s.span(1), fi), Name: "Foo",
		SuperClass: ident(s, fi, "Bar"), Body: []*ast.ClassMember{greet},
	}
	program := ast.NewProgram([]ast.Node{cls})

	out := runFormat(t, config.Defaults(), src, program)
	want := "class Foo extends Bar {\n" +
		"    greet() {\n" +
		"        hello();\n" +
		"    }\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatClassPropertyMemberWithModifiersAndInitializer(t *testing.T) {
	src, fi := newTestSource("class Counter { static count = 0; }")
	s := &seq{}

	member := &ast.ClassMember{
		Base: ast.NewBase(ast.KindClassMember, s.span(1), fi), Kind: "property",
		Modifiers: []string{"static"},
		Key:       ident(s, fi, "count"),
		Value:     &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, s.span(1), fi), Raw: "0"},
	}
	cls := &ast.ClassDeclaration{
		Base: ast.NewBase(ast.KindClassDeclaration, s.span(1), fi), Name: "Counter",
		Body: []*ast.ClassMember{member},
	}
	program := ast.NewProgram([]ast.Node{cls})

	out := runFormat(t, config.Defaults(), src, program)
	want := "class Counter {\n" +
		"    static count = 0;\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatInterfaceDeclarationRendersMemberSignatures(t *testing.T) {
	src, fi := newTestSource("interface Shape { area(): number; label: string; }")
	s := &seq{}

	area := &ast.InterfaceMember{
		Base: ast.NewBase(ast.KindInterfaceMember, s.span(1), fi), Key: ident(s, fi, "area"), IsMethod: true,
	}
	label := &ast.InterfaceMember{
		Base: ast.NewBase(ast.KindInterfaceMember, s.span(1), fi), Key: ident(s, fi, "label"),
	}
	iface := &ast.InterfaceDeclaration{
		Base: ast.NewBase(ast.KindInterfaceDeclaration, s.span(1), fi), Name: "Shape",
		Body: []*ast.InterfaceMember{area, label},
	}
	program := ast.NewProgram([]ast.Node{iface})

	out := runFormat(t, config.Defaults(), src, program)
	want := "interface Shape {\n" +
		"    area();\n" +
		"    label;\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatEnumDeclarationAddsTrailingCommaByDefault(t *testing.T) {
	// MemberedBody is always multi-line, so the default CommaOnlyMultiLine
	// policy behaves like CommaAlways here: every member, including the
	// last, gets a trailing comma.
	src, fi := newTestSource("enum Color { Red, Green, Blue }")
	s := &seq{}

	member := func(name string) *ast.EnumMember {
		return &ast.EnumMember{Base: ast.NewBase(ast.KindEnumMember, s.span(1), fi), Name: name}
	}
	e := &ast.EnumDeclaration{
		Base: ast.NewBase(ast.KindEnumDeclaration, s.span(1), fi), Name: "Color",
		Members: []*ast.EnumMember{member("Red"), member("Green"), member("Blue")},
	}
	program := ast.NewProgram([]ast.Node{e})

	out := runFormat(t, config.Defaults(), src, program)
	want := "enum Color {\n" +
		"    Red,\n" +
		"    Green,\n" +
		"    Blue,\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatEnumDeclarationOmitsTrailingCommaWhenConfiguredNever(t *testing.T) {
	src, fi := newTestSource("enum Color { Red, Green }")
	s := &seq{}

	member := func(name string) *ast.EnumMember {
		return &ast.EnumMember{Base: ast.NewBase(ast.KindEnumMember, s.span(1), fi), Name: name}
	}
	e := &ast.EnumDeclaration{
		Base: ast.NewBase(ast.KindEnumDeclaration, s.span(1), fi), Name: "Color",
		Members: []*ast.EnumMember{member("Red"), member("Green")},
	}
	program := ast.NewProgram([]ast.Node{e})

	cfg := config.Defaults()
	cfg.TrailingCommas.EnumDeclaration = config.CommaNever
	out := runFormat(t, cfg, src, program)
	want := "enum Color {\n" +
		"    Red,\n" +
		"    Green\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}
