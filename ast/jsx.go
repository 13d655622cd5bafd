// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// JSX node variants (spec.md §4.5.3's "JSX opening/closing element with
// children" paragraph).
type (
	// JSXElement's Name carries the tag as written, including any member
	// dots (`Foo.Bar`) since JSX member-expression tag names aren't a
	// syntactic position that needs its own node here.
	JSXElement struct {
		Base
		Name        string
		Attributes  []Node // *JSXAttribute or *JSXSpreadAttribute
		SelfClosing bool
		Children    []Node // *JSXElement, *JSXFragment, *JSXExpressionContainer, *JSXText
	}

	JSXFragment struct {
		Base
		Children []Node
	}

	// JSXAttribute's Value is nil for a boolean attribute (`disabled`),
	// *StringLiteral for `foo="bar"`, or *JSXExpressionContainer for
	// `foo={bar}`.
	JSXAttribute struct {
		Base
		Name  string
		Value Node
	}

	JSXSpreadAttribute struct {
		Base
		Argument Node
	}

	// JSXExpressionContainer's Expression is nil for a container holding
	// only a comment, `{/* comment */}`.
	JSXExpressionContainer struct {
		Base
		Expression Node
	}

	// JSXText is raw text between tags, never reformatted beyond the
	// whitespace-collapsing rule §4.5.3 describes at print time.
	JSXText struct {
		Base
		Raw string
	}
)
