// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/ir"
)

// conditionalFamilyFor picks the brace-optional-body policy governing a
// loop header kind (spec.md §4.5.5: "this protocol applies to if, while,
// for, for-in, for-of"). There is no separate ForInStatement/ForOfStatement
// family in config.UseBracesConfig, so both share ForStatement's policy,
// the same way a C-style for and a for-of are otherwise printed
// identically apart from their header.
func conditionalFamilyFor(cfg config.Config, k ast.Kind) config.NextConditionalFamily {
	switch k {
	case ast.KindWhileStatement, ast.KindDoWhileStatement:
		return cfg.UseBracesConfig.WhileStatement
	default:
		return cfg.UseBracesConfig.ForStatement
	}
}

// loopRequiresBraces is armRequiresBraces generalized to the family
// lookup above, since while/for loops have only one arm (unlike an
// if/else-if/else chain, there is no ladder to decide over structurally).
func loopRequiresBraces(body ast.Node, cfg config.Config, k ast.Kind) bool {
	family := conditionalFamilyFor(cfg, k)
	policy := family.UseBraces
	if policy == config.BracesAlways {
		return true
	}
	if policy == config.BracesMaintain {
		_, isBlock := body.(*ast.BlockStatement)
		return isBlock
	}
	if block, ok := body.(*ast.BlockStatement); ok {
		return len(block.Body) > 1
	}
	return false
}

func (c *Context) transformWhileStatement(s *ast.WhileStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("while (")
	b.ExtendPath(c.transformExpression(s.Test))
	b.PushString(")")
	requireBraces := loopRequiresBraces(s.Body, c.Config, ast.KindWhileStatement)
	c.pushBraceSeparator(b, config.BraceSameLine)
	b.ExtendPath(c.transformArmBody(s.Body, requireBraces))
	return b.Build()
}

func (c *Context) transformDoWhileStatement(s *ast.DoWhileStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("do")
	requireBraces := loopRequiresBraces(s.Body, c.Config, ast.KindDoWhileStatement)
	c.pushBraceSeparator(b, config.BraceSameLine)
	b.ExtendPath(c.transformArmBody(s.Body, requireBraces))
	if c.Config.NextControlFlowPosition == config.FlowNextLine {
		b.PushSignal(ir.KindNewLine)
	} else {
		b.PushString(" ")
	}
	b.PushString("while (")
	b.ExtendPath(c.transformExpression(s.Test))
	b.PushString(")")
	statementSemicolon(b, c.Config)
	return b.Build()
}

func (c *Context) transformForStatement(s *ast.ForStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("for (")
	if s.Init != nil {
		b.ExtendPath(c.transformForHeaderClause(s.Init))
	}
	b.PushString("; ")
	if s.Test != nil {
		b.ExtendPath(c.transformExpression(s.Test))
	}
	b.PushString("; ")
	if s.Update != nil {
		b.ExtendPath(c.transformExpression(s.Update))
	}
	b.PushString(")")
	requireBraces := loopRequiresBraces(s.Body, c.Config, ast.KindForStatement)
	c.pushBraceSeparator(b, config.BraceSameLine)
	b.ExtendPath(c.transformArmBody(s.Body, requireBraces))
	return b.Build()
}

// transformForHeaderClause renders a for-header Init/Left clause, which
// may be a full VariableStatement (without its own terminating
// semicolon, since the for-header supplies that) or a bare expression.
func (c *Context) transformForHeaderClause(n ast.Node) *ir.Path {
	if v, ok := n.(*ast.VariableStatement); ok {
		return c.transformVariableDeclarationClause(v)
	}
	return c.transformExpression(n)
}

func (c *Context) transformVariableDeclarationClause(s *ast.VariableStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString(s.DeclKind)
	b.PushString(" ")
	for i, d := range s.Declarations {
		if i > 0 {
			b.PushString(", ")
		}
		c.visitNode(d)
		b.ExtendPath(c.transformExpression(d.ID))
		if d.Init != nil {
			b.PushString(" = ")
			b.ExtendPath(c.transformExpression(d.Init))
		}
	}
	return b.Build()
}

func (c *Context) transformForInStatement(s *ast.ForInStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("for (")
	b.ExtendPath(c.transformForBindingTarget(s.DeclKind, s.Left))
	b.PushString(" in ")
	b.ExtendPath(c.transformExpression(s.Right))
	b.PushString(")")
	requireBraces := loopRequiresBraces(s.Body, c.Config, ast.KindForInStatement)
	c.pushBraceSeparator(b, config.BraceSameLine)
	b.ExtendPath(c.transformArmBody(s.Body, requireBraces))
	return b.Build()
}

func (c *Context) transformForOfStatement(s *ast.ForOfStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("for ")
	if s.IsAwait {
		b.PushString("await ")
	}
	b.PushString("(")
	b.ExtendPath(c.transformForBindingTarget(s.DeclKind, s.Left))
	b.PushString(" of ")
	b.ExtendPath(c.transformExpression(s.Right))
	b.PushString(")")
	requireBraces := loopRequiresBraces(s.Body, c.Config, ast.KindForOfStatement)
	c.pushBraceSeparator(b, config.BraceSameLine)
	b.ExtendPath(c.transformArmBody(s.Body, requireBraces))
	return b.Build()
}

// transformForBindingTarget renders a for-in/for-of left-hand side: a
// fresh declaration ("const x") when declKind is set, otherwise a bare
// assignment-target expression or pattern ("x", "{ a, b }").
func (c *Context) transformForBindingTarget(declKind string, left ast.Node) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if declKind != "" {
		b.PushString(declKind + " ")
	}
	b.ExtendPath(c.transformExpression(left))
	return b.Build()
}

// transformSwitchStatement renders a switch via MemberedBody: spec.md
// §4.5.3 groups switch among the brace-then-one-member-per-line bodies,
// alongside class/interface/enum bodies.
func (c *Context) transformSwitchStatement(s *ast.SwitchStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("switch (")
	b.ExtendPath(c.transformExpression(s.Discriminant))
	b.PushString(")")

	members := make([]*ir.Path, len(s.Cases))
	for i, sc := range s.Cases {
		members[i] = c.transformSwitchCase(sc)
	}
	b.ExtendPath(c.MemberedBody(members, MemberedBodyOptions{
		Brace:           c.Config.BracePositions.IfStatement,
		MemberSeparator: "",
	}))
	return b.Build()
}

func (c *Context) transformSwitchCase(sc *ast.SwitchCase) *ir.Path {
	c.visitNode(sc)
	b := ir.NewBuilder(c.Gen)
	if sc.Test != nil {
		b.PushString("case ")
		b.ExtendPath(c.transformExpression(sc.Test))
		b.PushString(":")
	} else {
		b.PushString("default:")
	}
	if len(sc.Consequent) == 0 {
		return b.Build()
	}
	b.PushSignal(ir.KindStartIndent)
	b.PushSignal(ir.KindNewLine)
	b.ExtendPath(c.transformStatementList(sc.Consequent, sc.Span().Lo))
	b.PushSignal(ir.KindFinishIndent)
	return b.Build()
}

// transformTryStatement renders try/catch/finally, honoring
// BracePositions.TryStatement for the separator before each of the
// block/handler/finalizer braces and NextControlFlowPosition for where
// "catch"/"finally" land relative to the preceding closing brace.
func (c *Context) transformTryStatement(s *ast.TryStatement) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("try")
	c.pushBraceSeparator(b, c.Config.BracePositions.TryStatement)
	b.ExtendPath(c.transformStatement(s.Block))

	if s.Handler != nil {
		if c.Config.NextControlFlowPosition == config.FlowNextLine {
			b.PushSignal(ir.KindNewLine)
		} else {
			b.PushString(" ")
		}
		b.ExtendPath(c.transformCatchClause(s.Handler))
	}

	if s.Finalizer != nil {
		if c.Config.NextControlFlowPosition == config.FlowNextLine {
			b.PushSignal(ir.KindNewLine)
		} else {
			b.PushString(" ")
		}
		b.PushString("finally")
		c.pushBraceSeparator(b, c.Config.BracePositions.TryStatement)
		b.ExtendPath(c.transformStatement(s.Finalizer))
	}
	return b.Build()
}

func (c *Context) transformCatchClause(cc *ast.CatchClause) *ir.Path {
	c.visitNode(cc)
	b := ir.NewBuilder(c.Gen)
	b.PushString("catch")
	if cc.Param != nil {
		b.PushString(" (")
		b.ExtendPath(c.transformExpression(cc.Param))
		b.PushString(")")
	}
	c.pushBraceSeparator(b, c.Config.BracePositions.TryStatement)
	b.ExtendPath(c.transformStatement(cc.Body))
	return b.Build()
}
