// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"context"
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/source"
)

func numberStatement(fi *source.FileInfo, lo uint32, raw string) ast.Node {
	hi := lo + uint32(len(raw)) + 1 // +1 for the trailing ';'
	return &ast.ExpressionStatement{
		Base: ast.NewBase(ast.KindExpressionStatement, source.Span{Lo: lo, Hi: hi}, fi),
		Expr: &ast.NumericLiteral{
			Base: ast.NewBase(ast.KindNumericLiteral, source.Span{Lo: lo, Hi: lo + uint32(len(raw))}, fi),
			Raw:  raw,
		},
	}
}

func oneStatementProgram(name, raw string) (*source.ParsedSource, *ast.Program) {
	text := raw + ";\n"
	fi := source.NewFileInfo(name, []byte(text))
	src := &source.ParsedSource{File: fi}
	stmt := numberStatement(fi, 0, raw)
	program := &ast.Program{Base: ast.NewBase(ast.KindProgram, source.Span{Lo: 0, Hi: uint32(len(text))}, fi), Statements: []ast.Node{stmt}}
	return src, program
}

func TestFormatProducesTerminatedOutput(t *testing.T) {
	src, program := oneStatementProgram("a.ts", "1")
	out, err := Format(src, program, config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if out != "1;\n" {
		t.Fatalf("out = %q, want %q", out, "1;\n")
	}
}

// TestFormatFilesRunsIndependently checks that every file's result is
// keyed to its own input and that one file's content has no bearing on
// another's (spec.md §5: formatting passes share no state).
func TestFormatFilesRunsIndependently(t *testing.T) {
	var files []File
	raws := []string{"1", "22", "333", "4444", "55555"}
	for i, raw := range raws {
		src, program := oneStatementProgram("f.ts", raw)
		files = append(files, File{Name: "f" + string(rune('0'+i)) + ".ts", Source: src, Program: program})
	}

	results, err := FormatFiles(context.Background(), files, config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(files) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("result[%d].Err = %v", i, r.Err)
		}
		if want := raws[i] + ";\n"; r.Text != want {
			t.Fatalf("result[%d].Text = %q, want %q", i, r.Text, want)
		}
		if r.Name != files[i].Name {
			t.Fatalf("result[%d].Name = %q, want %q", i, r.Name, files[i].Name)
		}
	}
}
