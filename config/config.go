// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the immutable, fully-resolved formatting options
// consulted by the transformer (spec.md §2.6, §6). Values are loaded
// either programmatically, one option at a time (as the teacher's
// printer.Printer.SetIndent/SetCommentColumn do), or declaratively from a
// YAML document via Load/LoadFile.
package config

// QuoteStyle selects which quote character string literals prefer.
type QuoteStyle int

const (
	AlwaysDouble QuoteStyle = iota
	AlwaysSingle
	PreferDouble
	PreferSingle
)

//go:generate stringer -type=QuoteStyle,SemiColons,TrailingCommaOpt,BracePosition,NextControlFlowPosition,OperatorPosition,SingleBodyPosition,UseBraces,ArrowParens,NewLineKind -output=enums_string.go

// SemiColons selects the engine's semicolon-insertion policy.
type SemiColons int

const (
	Always SemiColons = iota
	Prefer
	Asi
)

// TrailingCommaOpt selects whether a separated-values group gets a
// trailing separator in its multi-line form.
type TrailingCommaOpt int

const (
	CommaAlways TrailingCommaOpt = iota
	CommaOnlyMultiLine
	CommaNever
)

// BracePosition selects where an opening brace lands relative to its
// header.
type BracePosition int

const (
	BraceSameLine BracePosition = iota
	BraceNextLine
	BraceNextLineIfHanging
	BraceMaintain
)

// NextControlFlowPosition selects where `else`/`catch`/`finally` land
// relative to the preceding closing brace.
type NextControlFlowPosition int

const (
	FlowSameLine NextControlFlowPosition = iota
	FlowNextLine
	FlowMaintain
)

// OperatorPosition selects where a binary/conditional operator lands when
// its expression wraps across lines.
type OperatorPosition int

const (
	OpSameLine OperatorPosition = iota
	OpNextLine
	OpMaintain
)

// SingleBodyPosition selects where a brace-less single statement body
// lands relative to its header.
type SingleBodyPosition int

const (
	BodySameLine SingleBodyPosition = iota
	BodyNextLine
	BodyMaintain
)

// UseBraces selects whether a brace-optional body gets braces.
type UseBraces int

const (
	BracesAlways UseBraces = iota
	BracesPreferNone
	BracesWhenNotSingleLine
	BracesMaintain
)

// ArrowParens selects parameter-list parenthesization for arrow
// functions.
type ArrowParens int

const (
	ArrowForce ArrowParens = iota
	ArrowPreferNone
	ArrowMaintain
)

// NewLineKind selects the line ending written to output.
type NewLineKind int

const (
	NewLineAuto NewLineKind = iota
	NewLineLf
	NewLineCrlf
	NewLineSystem
)

// TrailingCommas holds the per-family trailing-comma policy (spec.md §6).
type TrailingCommas struct {
	Arguments          TrailingCommaOpt
	Parameters         TrailingCommaOpt
	ArrayExpression    TrailingCommaOpt
	ArrayPattern       TrailingCommaOpt
	ObjectExpression   TrailingCommaOpt
	ObjectPattern      TrailingCommaOpt
	EnumDeclaration    TrailingCommaOpt
	TupleType          TrailingCommaOpt
	TypeParameters     TrailingCommaOpt
	ExportDeclaration  TrailingCommaOpt
	ImportDeclaration  TrailingCommaOpt
}

// BracePositions holds the per-family brace-position policy.
type BracePositions struct {
	IfStatement   BracePosition
	ClassBody     BracePosition
	Function      BracePosition
	TryStatement  BracePosition
	ObjectLiteral BracePosition
}

// UseBracesConfig holds the per-family brace-optional policy.
type UseBracesConfig struct {
	IfStatement NextConditionalFamily
	WhileStatement NextConditionalFamily
	ForStatement   NextConditionalFamily
}

// NextConditionalFamily bundles UseBraces with the other knobs specific
// to brace-optional statement bodies.
type NextConditionalFamily struct {
	UseBraces          UseBraces
	SingleBodyPosition SingleBodyPosition
}

// Config is the fully-resolved, immutable set of formatting options.
// Construct one with Defaults() and then override fields, or load one
// with Load/LoadFile.
type Config struct {
	LineWidth   uint32
	IndentWidth uint8
	UseTabs     bool
	NewLineKind NewLineKind

	QuoteStyle QuoteStyle
	SemiColons SemiColons

	TrailingCommas TrailingCommas
	BracePositions BracePositions
	UseBracesConfig UseBracesConfig

	NextControlFlowPosition NextControlFlowPosition
	OperatorPosition        OperatorPosition

	BinaryExpressionLinePerExpression bool
	BinaryExpressionPreferSingleLine  bool
	MemberExpressionLinePerExpression bool

	ArrowFunctionUseParentheses ArrowParens

	PreferHanging bool

	SpaceBeforeFunctionParen bool
	SpaceAfterKeyword        bool

	IgnoreNodeCommentText string
}

// Defaults returns the engine's built-in defaults, matching spec.md §8's
// end-to-end scenario assumptions.
func Defaults() Config {
	return Config{
		LineWidth:   80,
		IndentWidth: 4,
		UseTabs:     false,
		NewLineKind: NewLineAuto,

		QuoteStyle: PreferDouble,
		SemiColons: Always,

		TrailingCommas: TrailingCommas{
			Arguments:         CommaOnlyMultiLine,
			Parameters:        CommaOnlyMultiLine,
			ArrayExpression:   CommaOnlyMultiLine,
			ArrayPattern:      CommaNever,
			ObjectExpression:  CommaOnlyMultiLine,
			ObjectPattern:     CommaNever,
			EnumDeclaration:   CommaOnlyMultiLine,
			TupleType:         CommaOnlyMultiLine,
			TypeParameters:    CommaNever,
			ExportDeclaration: CommaNever,
			ImportDeclaration: CommaNever,
		},
		BracePositions: BracePositions{
			IfStatement:   BraceSameLine,
			ClassBody:     BraceSameLine,
			Function:      BraceSameLine,
			TryStatement:  BraceSameLine,
			ObjectLiteral: BraceSameLine,
		},
		UseBracesConfig: UseBracesConfig{
			IfStatement:    NextConditionalFamily{UseBraces: BracesWhenNotSingleLine, SingleBodyPosition: BodySameLine},
			WhileStatement: NextConditionalFamily{UseBraces: BracesWhenNotSingleLine, SingleBodyPosition: BodySameLine},
			ForStatement:   NextConditionalFamily{UseBraces: BracesWhenNotSingleLine, SingleBodyPosition: BodySameLine},
		},

		NextControlFlowPosition: FlowSameLine,
		OperatorPosition:        OpSameLine,

		BinaryExpressionLinePerExpression: false,
		BinaryExpressionPreferSingleLine:  false,
		MemberExpressionLinePerExpression: false,

		ArrowFunctionUseParentheses: ArrowPreferNone,

		PreferHanging: false,

		SpaceBeforeFunctionParen: false,
		SpaceAfterKeyword:        true,

		IgnoreNodeCommentText: "dprint-ignore",
	}
}
