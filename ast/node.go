// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the Node tagged variant over every syntactic kind of
// the source language the core formats (spec.md §3). There is no
// visitor hierarchy here, deliberately: a single dispatch-by-Kind switch
// in transform.Transform keeps comment attachment correct, the same way
// the teacher's internal/ast package is a closed set of statement/expr
// structs switched on by printer.Printer rather than an interface
// hierarchy with virtual Print methods.
//
// Nodes are borrowed from the parser's AST and owned by the parser; the
// core never mutates them.
package ast

import "github.com/dprintgo/tsfmt/source"

// Kind tags every Node variant.
type Kind int

const (
	KindProgram Kind = iota
	KindExpressionStatement
	KindBlockStatement
	KindReturnStatement
	KindIfStatement
	KindVariableStatement
	KindVariableDeclarator
	KindFunctionDeclaration
	KindEmptyStatement

	KindIdentifier
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindThisExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindCallExpression
	KindMemberExpression
	KindConditionalExpression
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindArrowFunctionExpression
	KindFunctionExpression
	KindParenthesizedExpression
	KindTemplateLiteral
	KindTemplateElement
	KindParameter
	KindSpreadElement

	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindSwitchStatement
	KindSwitchCase
	KindTryStatement
	KindCatchClause

	KindArrayPattern
	KindObjectPattern
	KindObjectPatternProperty
	KindAssignmentPattern
	KindRestElement

	KindUnaryExpression
	KindUpdateExpression
	KindSequenceExpression
	KindAwaitExpression
	KindYieldExpression
	KindTaggedTemplateExpression

	KindClassDeclaration
	KindClassMember
	KindInterfaceDeclaration
	KindInterfaceMember
	KindEnumDeclaration
	KindEnumMember
	KindTypeAliasDeclaration
	KindTypeParameter
	KindTypeReference
	KindUnionType
	KindIntersectionType
	KindTupleType
	KindImportDeclaration
	KindImportSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	KindJSXElement
	KindJSXFragment
	KindJSXAttribute
	KindJSXExpressionContainer
	KindJSXText
	KindJSXSpreadAttribute
)

//go:generate stringer -type=Kind -output=kind_string.go

// Node is the common interface every AST variant satisfies. Shared
// behavior - span, start/end position, text - is exposed here; anything
// kind-specific is reached by a type switch on the concrete struct in the
// variant list below (Program, ExpressionStatement, BinaryExpression, …).
type Node interface {
	Kind() Kind
	Span() source.Span
	StartPos() source.Position
	EndPos() source.Position
}

// Base is embedded by every concrete node type. It caches the
// start/end line and column at construction time, per spec.md §3's
// "cached start/end line and column" requirement, so that repeated
// positional queries during printing never re-derive them from the file
// buffer.
type Base struct {
	kind     Kind
	span     source.Span
	startPos source.Position
	endPos   source.Position
}

// NewBase constructs a Base, deriving start/end position from fi.
func NewBase(kind Kind, span source.Span, fi *source.FileInfo) Base {
	return Base{
		kind:     kind,
		span:     span,
		startPos: fi.Position(span.Lo),
		endPos:   fi.Position(span.Hi),
	}
}

func (b Base) Kind() Kind                  { return b.kind }
func (b Base) Span() source.Span           { return b.span }
func (b Base) StartPos() source.Position   { return b.startPos }
func (b Base) EndPos() source.Position     { return b.endPos }
func (b Base) StartLine() int              { return b.startPos.Line }
func (b Base) EndLine() int                { return b.endPos.Line }
