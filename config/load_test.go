// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadAppliesOverridesOnTopOfDefaults(t *testing.T) {
	data := []byte(`
lineWidth: 100
useTabs: true
quoteStyle: preferSingle
semiColons: asi
arrowFunction.useParentheses: force
ignoreNodeCommentText: fmt-ignore
`)
	got, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Defaults()
	want.LineWidth = 100
	want.UseTabs = true
	want.QuoteStyle = PreferSingle
	want.SemiColons = Asi
	want.ArrowFunctionUseParentheses = ArrowForce
	want.IgnoreNodeCommentText = "fmt-ignore"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyDocumentMatchesDefaults(t *testing.T) {
	got, err := Load([]byte(``))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Fatalf("Load(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownQuoteStyle(t *testing.T) {
	_, err := Load([]byte("quoteStyle: sideways\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown quoteStyle")
	}
}

func TestLoadAppliesPerFamilyOverrides(t *testing.T) {
	data := []byte(`
trailingCommas:
  enumDeclaration: never
  tupleType: always
  typeParameters: onlyMultiLine
bracePosition:
  classBody: nextLine
  tryStatement: nextLine
useBraces:
  whileStatement:
    useBraces: always
  forStatement:
    useBraces: maintain
    singleBodyPosition: nextLine
nextControlFlowPosition: nextLine
operatorPosition: nextLine
`)
	got, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Defaults()
	want.TrailingCommas.EnumDeclaration = CommaNever
	want.TrailingCommas.TupleType = CommaAlways
	want.TrailingCommas.TypeParameters = CommaOnlyMultiLine
	want.BracePositions.ClassBody = BraceNextLine
	want.BracePositions.TryStatement = BraceNextLine
	want.UseBracesConfig.WhileStatement.UseBraces = BracesAlways
	want.UseBracesConfig.ForStatement.UseBraces = BracesMaintain
	want.UseBracesConfig.ForStatement.SingleBodyPosition = BodyNextLine
	want.NextControlFlowPosition = FlowNextLine
	want.OperatorPosition = OpNextLine

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownUseBraces(t *testing.T) {
	data := []byte(`
useBraces:
  ifStatement:
    useBraces: sometimes
`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected an error for an unknown useBraces value")
	}
}
