// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// destructuring pattern node variants, used wherever a binding target can
// be a pattern rather than a plain Identifier: VariableDeclarator.ID,
// Parameter.Pattern, ForInStatement.Left/ForOfStatement.Left,
// AssignmentExpression.Left.
type (
	ArrayPattern struct {
		Base
		Elements []Node // element may be nil for an elision hole; otherwise a pattern, *AssignmentPattern, or *RestElement
	}

	ObjectPattern struct {
		Base
		Properties []*ObjectPatternProperty
	}

	ObjectPatternProperty struct {
		Base
		Key       Node
		Value     Node // pattern, or *AssignmentPattern for a default value
		Computed  bool
		Shorthand bool
		IsRest    bool // `...rest`; Key is nil, Value holds the binding
	}

	// AssignmentPattern is a pattern with a default value: `{ x = 1 }`,
	// `[a = 2]`, or a parameter default reached through a pattern.
	AssignmentPattern struct {
		Base
		Left  Node
		Right Node
	}

	// RestElement is a pattern-position `...x`, distinct from
	// SpreadElement's expression-position `...x`.
	RestElement struct {
		Base
		Argument Node
	}
)
