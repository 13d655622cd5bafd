// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
)

func TestFormatArrayPatternRendersElisionHole(t *testing.T) {
	src, fi := newTestSource("const [a, , b] = arr;")
	s := &seq{}

	a := ident(s, fi, "a")
	b := ident(s, fi, "b")
	pat := &ast.ArrayPattern{Base: ast.NewBase(ast.KindArrayPattern, s.span(1), fi), Elements: []ast.Node{a, nil, b}}
	decl := &ast.VariableDeclarator{
		Base: ast.NewBase(ast.KindVariableDeclarator, s.span(1), fi), ID: pat, Init: ident(s, fi, "arr"),
	}
	varStmt := &ast.VariableStatement{
		Base: ast.NewBase(ast.KindVariableStatement, s.span(1), fi), DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{decl},
	}
	program := ast.NewProgram([]ast.Node{varStmt})

	out := runFormat(t, config.Defaults(), src, program)
	want := "const [a, , b] = arr;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatObjectPatternRendersRenameShorthandAndRest(t *testing.T) {
	src, fi := newTestSource("const { a, b: c, ...rest } = obj;")
	s := &seq{}

	propA := &ast.ObjectPatternProperty{
		Base: ast.NewBase(ast.KindObjectPatternProperty, s.span(1), fi), Key: ident(s, fi, "a"), Value: ident(s, fi, "a"), Shorthand: true,
	}
	propB := &ast.ObjectPatternProperty{
		Base: ast.NewBase(ast.KindObjectPatternProperty, s.span(1), fi), Key: ident(s, fi, "b"), Value: ident(s, fi, "c"),
	}
	propRest := &ast.ObjectPatternProperty{
		Base: ast.NewBase(ast.KindObjectPatternProperty, s.span(1), fi), Value: ident(s, fi, "rest"), IsRest: true,
	}
	pat := &ast.ObjectPattern{
		Base: ast.NewBase(ast.KindObjectPattern, s.span(1), fi), Properties: []*ast.ObjectPatternProperty{propA, propB, propRest},
	}
	decl := &ast.VariableDeclarator{
		Base: ast.NewBase(ast.KindVariableDeclarator, s.span(1), fi), ID: pat, Init: ident(s, fi, "obj"),
	}
	varStmt := &ast.VariableStatement{
		Base: ast.NewBase(ast.KindVariableStatement, s.span(1), fi), DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{decl},
	}
	program := ast.NewProgram([]ast.Node{varStmt})

	out := runFormat(t, config.Defaults(), src, program)
	want := "const { a, b: c, ...rest } = obj;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatAssignmentPatternRendersParameterDefault(t *testing.T) {
	src, fi := newTestSource("function greet(name = \"world\") { hello(); }")
	s := &seq{}

	ap := &ast.AssignmentPattern{
		Base: ast.NewBase(ast.KindAssignmentPattern, s.span(1), fi), Left: ident(s, fi, "name"),
		Right: &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, s.span(7), fi), Value: "world", OriginalQuote: '"'},
	}
	p := &ast.Parameter{Base: ast.NewBase(ast.KindParameter, s.span(1), fi), Pattern: ap}
	body := &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, s.span(1), fi), Body: []ast.Node{call0(s, fi, "hello")}}
	fn := &ast.FunctionDeclaration{
		Base: ast.NewBase(ast.KindFunctionDeclaration, s.span(1), fi), Name: "greet",
		Params: []*ast.Parameter{p}, Body: body,
	}
	program := ast.NewProgram([]ast.Node{fn})

	out := runFormat(t, config.Defaults(), src, program)
	want := "function greet(name = \"world\") {\n    hello();\n}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}
