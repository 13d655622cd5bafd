// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
)

func TestFormatTypeAliasRendersUnionType(t *testing.T) {
	src, fi := newTestSource("type ID = string | number;")
	s := &seq{}

	str := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "string"}
	num := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "number"}
	union := &ast.UnionType{Base: ast.NewBase(ast.KindUnionType, s.span(1), fi), Types: []ast.Node{str, num}}
	alias := &ast.TypeAliasDeclaration{
		Base: ast.NewBase(ast.KindTypeAliasDeclaration, s.span(1), fi), Name: "ID", TypeAnnotation: union,
	}
	program := ast.NewProgram([]ast.Node{alias})

	out := runFormat(t, config.Defaults(), src, program)
	want := "type ID = string | number;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatTypeReferenceRendersGenericArguments(t *testing.T) {
	src, fi := newTestSource("type Lookup = Record<string, number>;")
	s := &seq{}

	key := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "string"}
	val := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "number"}
	ref := &ast.TypeReference{
		Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "Record",
		TypeArguments: []ast.Node{key, val},
	}
	alias := &ast.TypeAliasDeclaration{
		Base: ast.NewBase(ast.KindTypeAliasDeclaration, s.span(1), fi), Name: "Lookup", TypeAnnotation: ref,
	}
	program := ast.NewProgram([]ast.Node{alias})

	out := runFormat(t, config.Defaults(), src, program)
	want := "type Lookup = Record<string, number>;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatTypeAliasRendersTupleType(t *testing.T) {
	src, fi := newTestSource("type Pair = [string, number];")
	s := &seq{}

	str := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "string"}
	num := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(6), fi), Name: "number"}
	tuple := &ast.TupleType{Base: ast.NewBase(ast.KindTupleType, s.span(1), fi), ElementTypes: []ast.Node{str, num}}
	alias := &ast.TypeAliasDeclaration{
		Base: ast.NewBase(ast.KindTypeAliasDeclaration, s.span(1), fi), Name: "Pair", TypeAnnotation: tuple,
	}
	program := ast.NewProgram([]ast.Node{alias})

	out := runFormat(t, config.Defaults(), src, program)
	want := "type Pair = [string, number];\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestFormatTypeAliasRendersTypeParameters(t *testing.T) {
	src, fi := newTestSource("type Box<T> = T;")
	s := &seq{}

	tp := &ast.TypeParameter{Base: ast.NewBase(ast.KindTypeParameter, s.span(1), fi), Name: "T"}
	ref := &ast.TypeReference{Base: ast.NewBase(ast.KindTypeReference, s.span(1), fi), Name: "T"}
	alias := &ast.TypeAliasDeclaration{
		Base: ast.NewBase(ast.KindTypeAliasDeclaration, s.span(1), fi), Name: "Box",
		TypeParams: []*ast.TypeParameter{tp}, TypeAnnotation: ref,
	}
	program := ast.NewProgram([]ast.Node{alias})

	out := runFormat(t, config.Defaults(), src, program)
	want := "type Box<T> = T;\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}
