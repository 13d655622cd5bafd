// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// expression node variants.
type (
	Identifier struct {
		Base
		Name string
	}

	NumericLiteral struct {
		Base
		Raw string // exactly as it appeared in source; never renormalized
	}

	StringLiteral struct {
		Base
		Value         string // content, excluding surrounding quotes
		OriginalQuote byte   // '\'' or '"', used by the PreferX quote styles
		IsDirective   bool   // true for a directive prologue ("use strict")
	}

	BooleanLiteral struct {
		Base
		Value bool
	}

	NullLiteral struct{ Base }

	ThisExpression struct{ Base }

	// BinaryExpression covers arithmetic, comparison, and bitwise
	// operators. Equality operators (==, ===, !=, !==) are tagged so the
	// binary-chain shaper can group them (spec.md §4.5.2).
	BinaryExpression struct {
		Base
		Operator string
		Left     Node
		Right    Node
	}

	// LogicalExpression covers &&, ||, ??.
	LogicalExpression struct {
		Base
		Operator string
		Left     Node
		Right    Node
	}

	AssignmentExpression struct {
		Base
		Operator string
		Left     Node
		Right    Node
	}

	// CallExpression also represents `new Foo()` via IsNew, and optional
	// calls (`foo?.()`) via Optional. NoParens is set only for a bare
	// `new Foo` with no argument list at all - the one case where IsNew
	// doesn't imply a printed `()`.
	CallExpression struct {
		Base
		Callee    Node
		Arguments []Node
		Optional  bool
		IsNew     bool
		NoParens  bool
	}

	MemberExpression struct {
		Base
		Object   Node
		Property Node // Identifier for `.prop`, any Node for `[prop]`
		Computed bool
		Optional bool // `?.`
	}

	ConditionalExpression struct {
		Base
		Test       Node
		Consequent Node
		Alternate  Node
	}

	ArrayExpression struct {
		Base
		Elements []Node // element may be nil for an elision hole
	}

	ObjectExpression struct {
		Base
		Properties []*Property
	}

	Property struct {
		Base
		Key       Node
		Value     Node
		Computed  bool
		Shorthand bool
	}

	ArrowFunctionExpression struct {
		Base
		Params          []*Parameter
		Body            Node // *BlockStatement, or an expression
		IsAsync         bool
		HasReturnType   bool // forces parens around params per spec.md §4.5.2
		SourceHadParens bool // informs arrow_function_use_parentheses=Maintain
	}

	FunctionExpression struct {
		Base
		Name        string // "" if anonymous
		Params      []*Parameter
		Body        *BlockStatement
		IsAsync     bool
		IsGenerator bool
	}

	// ParenthesizedExpression is an explicit parenthesization from the
	// parsed tree. The transformer prints it as "(" + Expr + ")"; it
	// neither removes redundant parentheses nor adds any of its own.
	ParenthesizedExpression struct {
		Base
		Expr Node
	}

	TemplateLiteral struct {
		Base
		Quasis      []*TemplateElement // len(Quasis) == len(Expressions)+1
		Expressions []Node
	}

	TemplateElement struct {
		Base
		Raw string
	}

	Parameter struct {
		Base
		Pattern       Node // Identifier, or a destructuring pattern
		HasTypeAnnot  bool
		Default       Node // nil if none
		IsRest        bool
	}

	SpreadElement struct {
		Base
		Argument Node
	}

	// UnaryExpression covers `!x`, `-x`, `+x`, `~x`, `typeof x`, `void x`,
	// `delete x`. Prefix is always true for this language's unary
	// operators; it exists only to mirror UpdateExpression's shape.
	UnaryExpression struct {
		Base
		Operator string
		Argument Node
		Prefix   bool
	}

	// UpdateExpression covers `++x`/`x++`/`--x`/`x--`.
	UpdateExpression struct {
		Base
		Operator string
		Argument Node
		Prefix   bool
	}

	// SequenceExpression is a comma-separated expression list, e.g. the
	// three clauses of a C-style `for(;;)` header or `(a, b, c)`.
	SequenceExpression struct {
		Base
		Expressions []Node
	}

	AwaitExpression struct {
		Base
		Argument Node
	}

	// YieldExpression's Delegate is true for `yield*`.
	YieldExpression struct {
		Base
		Argument Node // nil for a bare `yield;`
		Delegate bool
	}

	// TaggedTemplateExpression is `tag\`...\``; Quasi carries the same
	// shape TemplateLiteral does for an untagged template.
	TaggedTemplateExpression struct {
		Base
		Tag   Node
		Quasi *TemplateLiteral
	}
)
