// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
)

func TestFormatImportDeclarationRendersDefaultAndNamedSpecifiers(t *testing.T) {
	src, fi := newTestSource(`import Foo, { a, b as c } from "m";`)
	s := &seq{}

	a := &ast.ImportSpecifier{Base: ast.NewBase(ast.KindImportSpecifier, s.span(1), fi), Imported: "a", Local: "a"}
	bc := &ast.ImportSpecifier{Base: ast.NewBase(ast.KindImportSpecifier, s.span(1), fi), Imported: "b", Local: "c"}
	imp := &ast.ImportDeclaration{
		Base: ast.NewBase(ast.KindImportDeclaration, s.span(1), fi), DefaultImport: "Foo",
		Named: []*ast.ImportSpecifier{a, bc}, ModuleValue: "m", ModuleQuote: '"',
	}
	program := ast.NewProgram([]ast.Node{imp})

	out := runFormat(t, config.Defaults(), src, program)
	want := `import Foo, { a, b as c } from "m";` + "\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatImportDeclarationRendersNamespaceImport(t *testing.T) {
	src, fi := newTestSource(`import * as ns from "m";`)
	s := &seq{}

	imp := &ast.ImportDeclaration{
		Base: ast.NewBase(ast.KindImportDeclaration, s.span(1), fi), NamespaceImport: "ns",
		ModuleValue: "m", ModuleQuote: '"',
	}
	program := ast.NewProgram([]ast.Node{imp})

	out := runFormat(t, config.Defaults(), src, program)
	want := `import * as ns from "m";` + "\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatExportNamedDeclarationWrapsVariableStatement(t *testing.T) {
	src, fi := newTestSource("export const x = 1;")
	s := &seq{}

	x := ident(s, fi, "x")
	decl := &ast.VariableDeclarator{
		Base: ast.NewBase(ast.KindVariableDeclarator, s.span(5), fi), ID: x,
		Init: &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, s.span(1), fi), Raw: "1"},
	}
	varStmt := &ast.VariableStatement{
		Base: ast.NewBase(ast.KindVariableStatement, s.span(1), fi), DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{decl},
	}
	exp := &ast.ExportNamedDeclaration{
		Base: ast.NewBase(ast.KindExportNamedDeclaration, s.span(1), fi), Declaration: varStmt,
	}
	program := ast.NewProgram([]ast.Node{exp})

	out := runFormat(t, config.Defaults(), src, program)
	want := "export const x = 1;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatExportNamedDeclarationRendersSpecifierListWithReexport(t *testing.T) {
	src, fi := newTestSource(`export { a, b as c } from "m";`)
	s := &seq{}

	a := &ast.ExportSpecifier{Base: ast.NewBase(ast.KindExportSpecifier, s.span(1), fi), Local: "a", Exported: "a"}
	bc := &ast.ExportSpecifier{Base: ast.NewBase(ast.KindExportSpecifier, s.span(1), fi), Local: "b", Exported: "c"}
	exp := &ast.ExportNamedDeclaration{
		Base: ast.NewBase(ast.KindExportNamedDeclaration, s.span(1), fi), Specifiers: []*ast.ExportSpecifier{a, bc},
		ModuleValue: "m", ModuleQuote: '"',
	}
	program := ast.NewProgram([]ast.Node{exp})

	out := runFormat(t, config.Defaults(), src, program)
	want := `export { a, b as c } from "m";` + "\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatExportDefaultDeclarationRendersClassWithoutSemicolon(t *testing.T) {
	src, fi := newTestSource("export default class Foo {}")
	s := &seq{}

	cls := &ast.ClassDeclaration{Base: ast.NewBase(ast.KindClassDeclaration, s.span(1), fi), Name: "Foo"}
	exp := &ast.ExportDefaultDeclaration{
		Base: ast.NewBase(ast.KindExportDefaultDeclaration, s.span(1), fi), Declaration: cls,
	}
	program := ast.NewProgram([]ast.Node{exp})

	out := runFormat(t, config.Defaults(), src, program)
	want := "export default class Foo {}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatExportDefaultDeclarationRendersExpressionWithSemicolon(t *testing.T) {
	src, fi := newTestSource("export default foo;")
	s := &seq{}

	exp := &ast.ExportDefaultDeclaration{
		Base: ast.NewBase(ast.KindExportDefaultDeclaration, s.span(1), fi), Declaration: ident(s, fi, "foo"),
	}
	program := ast.NewProgram([]ast.Node{exp})

	out := runFormat(t, config.Defaults(), src, program)
	want := "export default foo;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatExportAllDeclarationRendersNamespaceAlias(t *testing.T) {
	src, fi := newTestSource(`export * as ns from "m";`)
	s := &seq{}

	exp := &ast.ExportAllDeclaration{
		Base: ast.NewBase(ast.KindExportAllDeclaration, s.span(1), fi), Exported: "ns",
		ModuleValue: "m", ModuleQuote: '"',
	}
	program := ast.NewProgram([]ast.Node{exp})

	out := runFormat(t, config.Defaults(), src, program)
	want := `export * as ns from "m";` + "\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}
