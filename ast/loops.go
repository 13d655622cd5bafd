// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// loop, switch, and try/catch/finally statement node variants.
type (
	WhileStatement struct {
		Base
		Test Node
		Body Node
	}

	DoWhileStatement struct {
		Base
		Body Node
		Test Node
	}

	// ForStatement is the C-style `for(init; test; update)` form. Init may
	// be a *VariableStatement, an expression, or nil; Test and Update may
	// be nil.
	ForStatement struct {
		Base
		Init   Node
		Test   Node
		Update Node
		Body   Node
	}

	// ForInStatement and ForOfStatement's Left is the binding target: an
	// Identifier or destructuring pattern when DeclKind is non-empty
	// ("const"/"let"/"var", printed in front of it as a fresh
	// declaration), or a bare assignment-target expression/pattern when
	// DeclKind is "".
	ForInStatement struct {
		Base
		DeclKind string
		Left     Node
		Right    Node
		Body     Node
	}

	ForOfStatement struct {
		Base
		DeclKind string
		Left     Node
		Right    Node
		Body     Node
		IsAwait  bool // `for await (...)`
	}

	SwitchStatement struct {
		Base
		Discriminant Node
		Cases        []*SwitchCase
	}

	// SwitchCase's Test is nil for the `default:` case.
	SwitchCase struct {
		Base
		Test       Node
		Consequent []Node
	}

	TryStatement struct {
		Base
		Block     *BlockStatement
		Handler   *CatchClause // nil if there is no catch
		Finalizer *BlockStatement
	}

	// CatchClause's Param is nil for a parameter-less `catch {`.
	CatchClause struct {
		Base
		Param Node
		Body  *BlockStatement
	}
)
