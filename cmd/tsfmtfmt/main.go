// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tsfmtfmt is a minimal demo driver for the formatting engine.
// Reading real source files requires a JS/TS parser, which is outside
// this repository's scope (spec.md's Non-goals exclude the parser and
// full CLI/glob surface); this command instead formats one fixed sample
// program, wiring config.LoadFile the way a real CLI eventually would.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/format"
	"github.com/dprintgo/tsfmt/source"
)

func main() {
	configPath := flag.String("config", "", "path to a dprint-style YAML config file")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tsfmtfmt: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	src, program := sampleProgram()
	out, err := format.Format(src, program, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tsfmtfmt: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// sampleProgram builds `const x = 1 + 2;` by hand, standing in for
// whatever a real parser would hand this engine.
func sampleProgram() (*source.ParsedSource, *ast.Program) {
	text := []byte("const x = 1 + 2;\n")
	fi := source.NewFileInfo("sample.ts", text)
	src := &source.ParsedSource{File: fi}

	num1 := &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, source.Span{Lo: 10, Hi: 11}, fi), Raw: "1"}
	num2 := &ast.NumericLiteral{Base: ast.NewBase(ast.KindNumericLiteral, source.Span{Lo: 14, Hi: 15}, fi), Raw: "2"}
	bin := &ast.BinaryExpression{Base: ast.NewBase(ast.KindBinaryExpression, source.Span{Lo: 10, Hi: 15}, fi), Operator: "+", Left: num1, Right: num2}
	id := &ast.Identifier{Base: ast.NewBase(ast.KindIdentifier, source.Span{Lo: 6, Hi: 7}, fi), Name: "x"}
	decl := &ast.VariableDeclarator{Base: ast.NewBase(ast.KindVariableDeclarator, source.Span{Lo: 6, Hi: 15}, fi), ID: id, Init: bin}
	stmt := &ast.VariableStatement{
		Base:         ast.NewBase(ast.KindVariableStatement, source.Span{Lo: 0, Hi: 16}, fi),
		DeclKind:     "const",
		Declarations: []*ast.VariableDeclarator{decl},
	}
	program := ast.NewProgram([]ast.Node{stmt})
	return src, program
}
