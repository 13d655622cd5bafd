// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/printer"
	"github.com/dprintgo/tsfmt/source"
)

// seq hands out fake spans for tests that don't depend on a node's span
// matching real source text (everything except the dprint-ignore verbatim
// case below). Tests build children before their parents, so every fake
// span starts at offset 0: the attacher's non-decreasing visit-order
// assertion then holds whatever order the nodes were built in.
type seq struct{}

func (s *seq) span(width uint32) source.Span {
	return source.Span{Lo: 0, Hi: width}
}

func newTestSource(text string) (*source.ParsedSource, *source.FileInfo) {
	fi := source.NewFileInfo("t.ts", []byte(text))
	return &source.ParsedSource{File: fi}, fi
}

func runFormat(t *testing.T, cfg config.Config, src *source.ParsedSource, program *ast.Program) string {
	t.Helper()
	ctx := NewContext(cfg, src)
	path := Transform(ctx, program)
	p := printer.New(cfg)
	out, err := p.Print(path)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	return out
}

func ident(s *seq, fi *source.FileInfo, name string) *ast.Identifier {
	return &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, s.span(uint32(len(name))), fi), Name: name}
}

func param(s *seq, fi *source.FileInfo, name string) *ast.Parameter {
	return &ast.Parameter{Base: ast.NewBase(ast.KindParameter, s.span(uint32(len(name))), fi), Pattern: ident(s, fi, name)}
}

func TestFormatSimpleFunctionDeclaration(t *testing.T) {
	src, fi := newTestSource("function add(a, b) { return a + b; }")
	s := &seq{}

	a := param(s, fi, "a")
	b := param(s, fi, "b")
	left := ident(s, fi, "a")
	right := ident(s, fi, "b")
	binSpan := s.span(5)
	ret := &ast.ReturnStatement{
		Base: ast.NewBase(ast.KindReturnStatement, s.span(6), fi),
		Argument: &ast.BinaryExpression{
			Base: ast.NewBase(ast.KindBinaryExpression, binSpan, fi), Operator: "+", Left: left, Right: right,
		},
	}
	body := &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, s.span(1), fi), Body: []ast.Node{ret}}
	fn := &ast.FunctionDeclaration{
		Base: ast.NewBase(ast.KindFunctionDeclaration, s.span(1), fi), Name: "add",
		Params: []*ast.Parameter{a, b}, Body: body,
	}
	program := ast.NewProgram([]ast.Node{fn})

	out := runFormat(t, config.Defaults(), src, program)
	want := "function add(a, b) {\n    return a + b;\n}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatLongArgumentListWraps(t *testing.T) {
	src, fi := newTestSource("f(...)")
	s := &seq{}

	names := []string{"firstLongArgumentName", "secondLongArgumentName", "thirdLongArgumentName", "fourthLongArgumentName"}
	var args []ast.Node
	for _, n := range names {
		args = append(args, ident(s, fi, n))
	}
	call := &ast.CallExpression{
		Base: ast.NewBase(ast.KindCallExpression, s.span(1), fi), Callee: ident(s, fi, "doSomething"), Arguments: args,
	}
	stmt := &ast.ExpressionStatement{Base: ast.NewBase(ast.KindExpressionStatement, s.span(1), fi), Expr: call}
	program := ast.NewProgram([]ast.Node{stmt})

	out := runFormat(t, config.Defaults(), src, program)
	want := "doSomething(\n" +
		"    firstLongArgumentName,\n" +
		"    secondLongArgumentName,\n" +
		"    thirdLongArgumentName,\n" +
		"    fourthLongArgumentName,\n" +
		");\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatIfElseLadderForcesBracesOnEveryArm(t *testing.T) {
	src, fi := newTestSource("if (...) ... else if (...) ... else ...")
	s := &seq{}

	// The middle arm has two statements, so under BracesWhenNotSingleLine
	// every arm in the ladder - including the bodies that are themselves
	// single bare statements - must get braces.
	singleStmt := func(name string) ast.Node {
		return &ast.ExpressionStatement{
			Base: ast.NewBase(ast.KindExpressionStatement, s.span(uint32(len(name)+2)), fi),
			Expr: &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, s.span(1), fi), Callee: ident(s, fi, name)},
		}
	}

	ifStmt := &ast.IfStatement{
		Base:       ast.NewBase(ast.KindIfStatement, s.span(2), fi),
		Test:       ident(s, fi, "a"),
		Consequent: singleStmt("firstBranch"),
		Alternate: &ast.IfStatement{
			Base: ast.NewBase(ast.KindIfStatement, s.span(2), fi),
			Test: ident(s, fi, "b"),
			Consequent: &ast.BlockStatement{
				Base: ast.NewBase(ast.KindBlockStatement, s.span(1), fi),
				Body: []ast.Node{singleStmt("second1"), singleStmt("second2")},
			},
			Alternate: singleStmt("thirdBranch"),
		},
	}
	program := ast.NewProgram([]ast.Node{ifStmt})

	out := runFormat(t, config.Defaults(), src, program)
	want := "if (a) {\n" +
		"    firstBranch();\n" +
		"} else if (b) {\n" +
		"    second1();\n" +
		"    second2();\n" +
		"} else {\n" +
		"    thirdBranch();\n" +
		"}\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatTestLibraryCallKeepsCallbackBraces(t *testing.T) {
	src, fi := newTestSource(`it("works", () => { doThing(); })`)
	s := &seq{}

	inner := &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, s.span(11), fi),
		Expr: &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, s.span(1), fi), Callee: ident(s, fi, "doThing")},
	}
	callback := &ast.ArrowFunctionExpression{
		Base: ast.NewBase(ast.KindArrowFunctionExpression, s.span(1), fi),
		Body: &ast.BlockStatement{Base: ast.NewBase(ast.KindBlockStatement, s.span(1), fi), Body: []ast.Node{inner}},
	}
	label := &ast.StringLiteral{Base: ast.NewBase(ast.KindStringLiteral, s.span(6), fi), Value: "works", OriginalQuote: '"'}
	call := &ast.CallExpression{
		Base: ast.NewBase(ast.KindCallExpression, s.span(1), fi), Callee: ident(s, fi, "it"),
		Arguments: []ast.Node{label, callback},
	}
	stmt := &ast.ExpressionStatement{Base: ast.NewBase(ast.KindExpressionStatement, s.span(1), fi), Expr: call}
	program := ast.NewProgram([]ast.Node{stmt})

	out := runFormat(t, config.Defaults(), src, program)
	want := "it(\"works\", () => {\n    doThing();\n});\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatDprintIgnoreEmitsSourceVerbatim(t *testing.T) {
	text := "// dprint-ignore\nconst   x   =   1;\nok();\n"
	src, fi := newTestSource(text)

	ignoreComment := source.Comment{ID: 0, Kind: source.Line, Span: source.Span{Lo: 0, Hi: 16}, Text: " dprint-ignore"}
	src.Comments = []source.Comment{ignoreComment}

	weirdLo, weirdHi := uint32(17), uint32(35) // "const   x   =   1;"
	weird := &ast.VariableStatement{
		Base:     ast.NewBase(ast.KindVariableStatement, source.Span{Lo: weirdLo, Hi: weirdHi}, fi),
		DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{{
			Base: ast.NewBase(ast.KindVariableDeclarator, source.Span{Lo: weirdLo + 6, Hi: weirdHi - 1}, fi),
			ID:   &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, source.Span{Lo: weirdLo + 9, Hi: weirdLo + 10}, fi), Name: "x"},
			Init: &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, source.Span{Lo: weirdHi - 2, Hi: weirdHi - 1}, fi), Raw: "1"},
		}},
	}
	okLo := weirdHi + 1
	ok := &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, source.Span{Lo: okLo, Hi: okLo + 5}, fi),
		Expr: &ast.CallExpression{
			Base:   ast.NewBase(ast.KindCallExpression, source.Span{Lo: okLo, Hi: okLo + 4}, fi),
			Callee: &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, source.Span{Lo: okLo, Hi: okLo + 2}, fi), Name: "ok"},
		},
	}
	program := &ast.Program{Base: ast.NewBase(ast.KindProgram, source.Span{Lo: 0, Hi: uint32(len(text))}, fi), Statements: []ast.Node{weird, ok}}

	out := runFormat(t, config.Defaults(), src, program)
	want := "// dprint-ignore\nconst   x   =   1;\nok();\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatAsiInsertsLeadingSemicolon(t *testing.T) {
	src, fi := newTestSource("a()\n(b)()")
	s := &seq{}

	first := &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, s.span(3), fi),
		Expr: &ast.CallExpression{Base: ast.NewBase(ast.KindCallExpression, s.span(1), fi), Callee: ident(s, fi, "a")},
	}
	second := &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, s.span(6), fi),
		Expr: &ast.CallExpression{
			Base:   ast.NewBase(ast.KindCallExpression, s.span(1), fi),
			Callee: &ast.ParenthesizedExpression{Base: ast.NewBase(ast.KindParenthesizedExpression, s.span(3), fi), Expr: ident(s, fi, "b")},
		},
	}
	program := ast.NewProgram([]ast.Node{first, second})

	cfg := config.Defaults()
	cfg.SemiColons = config.Asi
	out := runFormat(t, cfg, src, program)
	want := "a()\n;(b)()\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}
