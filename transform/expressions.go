// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/config"
	"github.com/dprintgo/tsfmt/internal/ierr"
	"github.com/dprintgo/tsfmt/ir"
)

// testLibraryCallees are callee names whose argument lists get the
// "always keep the function-body argument's braces on their own lines"
// treatment real test runners rely on (spec.md §4.5.2's scenario 4): a
// call like it("name", () => { ... }) must never collapse its callback
// body to a single line even if it would otherwise fit, since doing so
// would make diffs and stack traces far less useful. This is a
// hardcoded heuristic, not a config surface (see SPEC_FULL.md's Open
// Question decision): any callee literally named it, describe, test, or
// ending in .test qualifies.
func isTestLibraryCallee(callee ast.Node) bool {
	name, ok := calleeName(callee)
	if !ok {
		return false
	}
	switch name {
	case "it", "describe", "test":
		return true
	}
	return strings.HasSuffix(name, ".test")
}

func calleeName(n ast.Node) (string, bool) {
	switch e := n.(type) {
	case *ast.Identifier:
		return e.Name, true
	case *ast.MemberExpression:
		if prop, ok := e.Property.(*ast.Identifier); ok && !e.Computed {
			if base, ok := calleeName(e.Object); ok {
				return base + "." + prop.Name, true
			}
			return prop.Name, true
		}
	}
	return "", false
}

func (c *Context) transformExpression(n ast.Node) *ir.Path {
	c.visitNode(n)
	switch e := n.(type) {
	case *ast.Identifier:
		return stringPath(c, e.Name)
	case *ast.NumericLiteral:
		return stringPath(c, e.Raw)
	case *ast.StringLiteral:
		return c.transformStringLiteral(e)
	case *ast.BooleanLiteral:
		if e.Value {
			return stringPath(c, "true")
		}
		return stringPath(c, "false")
	case *ast.NullLiteral:
		return stringPath(c, "null")
	case *ast.ThisExpression:
		return stringPath(c, "this")
	case *ast.BinaryExpression:
		return c.transformBinaryLike(e.Operator, e.Left, e.Right)
	case *ast.LogicalExpression:
		return c.transformBinaryLike(e.Operator, e.Left, e.Right)
	case *ast.AssignmentExpression:
		return c.transformAssignment(e)
	case *ast.CallExpression:
		return c.transformCallExpression(e)
	case *ast.MemberExpression:
		return c.transformMemberExpression(e)
	case *ast.ConditionalExpression:
		return c.transformConditionalExpression(e)
	case *ast.ArrayExpression:
		return c.transformArrayExpression(e)
	case *ast.ObjectExpression:
		return c.transformObjectExpression(e)
	case *ast.Property:
		return c.transformProperty(e)
	case *ast.ArrowFunctionExpression:
		return c.transformArrowFunction(e)
	case *ast.FunctionExpression:
		return c.transformFunctionExpression(e)
	case *ast.ParenthesizedExpression:
		b := ir.NewBuilder(c.Gen)
		b.PushString("(")
		b.ExtendPath(c.transformExpression(e.Expr))
		b.PushString(")")
		return b.Build()
	case *ast.TemplateLiteral:
		return c.transformTemplateLiteral(e)
	case *ast.SpreadElement:
		b := ir.NewBuilder(c.Gen)
		b.PushString("...")
		b.ExtendPath(c.transformExpression(e.Argument))
		return b.Build()
	case *ast.UnaryExpression:
		return c.transformUnaryExpression(e)
	case *ast.UpdateExpression:
		return c.transformUpdateExpression(e)
	case *ast.SequenceExpression:
		return c.transformSequenceExpression(e)
	case *ast.AwaitExpression:
		return c.transformAwaitExpression(e)
	case *ast.YieldExpression:
		return c.transformYieldExpression(e)
	case *ast.TaggedTemplateExpression:
		return c.transformTaggedTemplateExpression(e)
	case *ast.ArrayPattern:
		return c.transformArrayPattern(e)
	case *ast.ObjectPattern:
		return c.transformObjectPattern(e)
	case *ast.ObjectPatternProperty:
		return c.transformObjectPatternProperty(e)
	case *ast.AssignmentPattern:
		return c.transformAssignmentPattern(e)
	case *ast.RestElement:
		return c.transformRestElement(e)
	case *ast.JSXElement:
		return c.transformJSXElement(e)
	case *ast.JSXFragment:
		return c.transformJSXFragment(e)
	case *ast.JSXExpressionContainer:
		return c.transformJSXExpressionContainer(e)
	default:
		ierr.Assertf(false, ierr.MissingToken, "unhandled expression kind %v", n.Kind())
		return ir.Empty()
	}
}

func stringPath(c *Context, s string) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString(s)
	return b.Build()
}

// selectQuote applies QuoteStyle, preferring whichever quote character
// requires fewer escapes when the value itself contains one (spec.md
// §4.5.2).
func selectQuote(style config.QuoteStyle, value string) byte {
	hasDouble := strings.ContainsRune(value, '"')
	hasSingle := strings.ContainsRune(value, '\'')
	switch style {
	case config.AlwaysDouble:
		return '"'
	case config.AlwaysSingle:
		return '\''
	case config.PreferSingle:
		if hasSingle && !hasDouble {
			return '"'
		}
		return '\''
	default: // PreferDouble
		if hasDouble && !hasSingle {
			return '\''
		}
		return '"'
	}
}

func (c *Context) transformStringLiteral(e *ast.StringLiteral) *ir.Path {
	q := e.OriginalQuote
	if !e.IsDirective {
		q = selectQuote(c.Config.QuoteStyle, e.Value)
	}
	escaped := strings.ReplaceAll(e.Value, string(q), "\\"+string(q))
	b := ir.NewBuilder(c.Gen)
	b.PushString(string(q) + escaped + string(q))
	return b.Build()
}

// transformBinaryLike renders "left op right", wrapping the operator to
// a continuation line when the whole expression does not fit (spec.md
// §4.5.2). left and right are each spliced into both the single-line and
// multi-line renderings, so they are referenced via PushShared.
func (c *Context) transformBinaryLike(op string, leftNode, rightNode ast.Node) *ir.Path {
	left := c.transformExpression(leftNode)
	right := c.transformExpression(rightNode)

	if c.Config.BinaryExpressionPreferSingleLine {
		b := ir.NewBuilder(c.Gen)
		b.PushShared(left)
		b.PushString(" " + op + " ")
		b.PushShared(right)
		return b.Build()
	}

	startInfo := newInfo(c, "bin-start")
	endInfo := newInfo(c, "bin-end")

	single := ir.NewBuilder(c.Gen)
	single.PushShared(left)
	single.PushString(" " + op + " ")
	single.PushShared(right)
	single.PushInfo(endInfo)
	singlePath := single.Build()

	multi := ir.NewBuilder(c.Gen)
	multi.PushShared(left)
	if c.Config.OperatorPosition == config.OpNextLine {
		multi.PushSignal(ir.KindStartIndent)
		multi.PushSignal(ir.KindNewLine)
		multi.PushString(op + " ")
		multi.PushShared(right)
		multi.PushSignal(ir.KindFinishIndent)
	} else {
		multi.PushString(" " + op)
		multi.PushSignal(ir.KindStartIndent)
		multi.PushSignal(ir.KindNewLine)
		multi.PushShared(right)
		multi.PushSignal(ir.KindFinishIndent)
	}
	multi.PushInfo(endInfo)
	multiPath := multi.Build()

	cond := ir.NewCondition(c.Gen, "binary-fits",
		ir.FitsOnSingleLine(startInfo.ID, endInfo.ID),
		singlePath, multiPath,
		startInfo.ID, endInfo.ID)

	b := ir.NewBuilder(c.Gen)
	b.PushInfo(startInfo)
	b.PushCondition(cond)
	return b.Build()
}

func (c *Context) transformAssignment(e *ast.AssignmentExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.ExtendPath(c.transformExpression(e.Left))
	b.PushString(" " + e.Operator + " ")
	b.ExtendPath(c.transformExpression(e.Right))
	return b.Build()
}

func (c *Context) transformCallExpression(e *ast.CallExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if e.IsNew {
		b.PushString("new ")
	}
	b.ExtendPath(c.transformExpression(e.Callee))
	if e.Optional {
		b.PushString("?.")
	}

	if e.NoParens {
		return b.Build()
	}

	if isTestLibraryCallee(e.Callee) && len(e.Arguments) > 0 {
		b.ExtendPath(c.transformTestLibraryArguments(e.Arguments))
		return b.Build()
	}

	values := make([]*ir.Path, len(e.Arguments))
	for i, a := range e.Arguments {
		values[i] = c.transformExpression(a)
	}
	b.ExtendPath(c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "(",
		Close:         ")",
		TrailingComma: c.Config.TrailingCommas.Arguments,
		Hanging:       c.Config.PreferHanging,
	}))
	return b.Build()
}

// transformTestLibraryArguments renders a test-runner call's argument
// list without the FitsOnSingleLine collapse: every argument but the
// final callback renders normally on the opening line, and the callback
// (an arrow or function expression) always keeps its own body's braces
// exactly as the general function-body renderer would produce them,
// never forced onto one line by the call's own width budget.
func (c *Context) transformTestLibraryArguments(args []ast.Node) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("(")
	for i, a := range args {
		if i > 0 {
			b.PushString(", ")
		}
		b.ExtendPath(c.transformExpression(a))
	}
	b.PushString(")")
	return b.Build()
}

func (c *Context) transformMemberExpression(e *ast.MemberExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.ExtendPath(c.transformExpression(e.Object))
	if e.Computed {
		if e.Optional {
			b.PushString("?.")
		}
		b.PushString("[")
		b.ExtendPath(c.transformExpression(e.Property))
		b.PushString("]")
		return b.Build()
	}
	if e.Optional {
		b.PushString("?.")
	} else {
		b.PushString(".")
	}
	b.ExtendPath(c.transformExpression(e.Property))
	return b.Build()
}

// transformConditionalExpression renders a ternary, wrapping the
// ?/: branches onto their own indented lines when the whole expression
// does not fit on one (spec.md §4.5.2).
func (c *Context) transformConditionalExpression(e *ast.ConditionalExpression) *ir.Path {
	test := c.transformExpression(e.Test)
	cons := c.transformExpression(e.Consequent)
	alt := c.transformExpression(e.Alternate)

	startInfo := newInfo(c, "cond-start")
	endInfo := newInfo(c, "cond-end")

	single := ir.NewBuilder(c.Gen)
	single.PushShared(test)
	single.PushString(" ? ")
	single.PushShared(cons)
	single.PushString(" : ")
	single.PushShared(alt)
	single.PushInfo(endInfo)
	singlePath := single.Build()

	multi := ir.NewBuilder(c.Gen)
	multi.PushShared(test)
	multi.PushSignal(ir.KindStartIndent)
	multi.PushSignal(ir.KindNewLine)
	multi.PushString("? ")
	multi.PushShared(cons)
	multi.PushSignal(ir.KindNewLine)
	multi.PushString(": ")
	multi.PushShared(alt)
	multi.PushSignal(ir.KindFinishIndent)
	multi.PushInfo(endInfo)
	multiPath := multi.Build()

	cond := ir.NewCondition(c.Gen, "conditional-fits",
		ir.FitsOnSingleLine(startInfo.ID, endInfo.ID),
		singlePath, multiPath,
		startInfo.ID, endInfo.ID)

	b := ir.NewBuilder(c.Gen)
	b.PushInfo(startInfo)
	b.PushCondition(cond)
	return b.Build()
}

func (c *Context) transformArrayExpression(e *ast.ArrayExpression) *ir.Path {
	values := make([]*ir.Path, len(e.Elements))
	for i, el := range e.Elements {
		if el == nil {
			values[i] = ir.Empty()
			continue
		}
		values[i] = c.transformExpression(el)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "[",
		Close:         "]",
		TrailingComma: c.Config.TrailingCommas.ArrayExpression,
		Hanging:       c.Config.PreferHanging,
	})
}

func (c *Context) transformObjectExpression(e *ast.ObjectExpression) *ir.Path {
	if len(e.Properties) == 0 {
		return stringPath(c, "{}")
	}
	values := make([]*ir.Path, len(e.Properties))
	for i, p := range e.Properties {
		values[i] = c.transformExpression(p)
	}
	return c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "{",
		Close:         "}",
		TrailingComma: c.Config.TrailingCommas.ObjectExpression,
		SpaceInside:   true,
		Hanging:       c.Config.PreferHanging,
	})
}

func (c *Context) transformProperty(e *ast.Property) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if e.Shorthand {
		b.ExtendPath(c.transformExpression(e.Value))
		return b.Build()
	}
	if e.Computed {
		b.PushString("[")
		b.ExtendPath(c.transformExpression(e.Key))
		b.PushString("]")
	} else {
		b.ExtendPath(c.transformExpression(e.Key))
	}
	b.PushString(": ")
	b.ExtendPath(c.transformExpression(e.Value))
	return b.Build()
}

// transformArrowFunction applies arrow_function_use_parentheses (spec.md
// §6) to the parameter list: a lone untyped identifier parameter can drop
// its parentheses under ArrowPreferNone, unless HasReturnType forces them
// (a type annotation cannot be written without enclosing parens) or the
// source already had them and the policy is ArrowMaintain.
func (c *Context) transformArrowFunction(e *ast.ArrowFunctionExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if e.IsAsync {
		b.PushString("async ")
	}

	bare := len(e.Params) == 1 && !e.Params[0].HasTypeAnnot && !e.Params[0].IsRest && e.Params[0].Default == nil
	useParens := true
	switch c.Config.ArrowFunctionUseParentheses {
	case config.ArrowPreferNone:
		useParens = !bare || e.HasReturnType
	case config.ArrowMaintain:
		useParens = !bare || e.SourceHadParens || e.HasReturnType
	default: // ArrowForce
		useParens = true
	}

	if !useParens {
		b.ExtendPath(c.transformExpression(e.Params[0].Pattern))
	} else {
		b.ExtendPath(c.transformParameterList(e.Params))
	}
	b.PushString(" => ")

	if block, ok := e.Body.(*ast.BlockStatement); ok {
		c.visitNode(block)
		b.ExtendPath(c.transformStatement(block))
	} else {
		b.ExtendPath(c.transformExpression(e.Body))
	}
	return b.Build()
}

func (c *Context) transformFunctionExpression(e *ast.FunctionExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if e.IsAsync {
		b.PushString("async ")
	}
	b.PushString("function")
	if e.IsGenerator {
		b.PushString("*")
	}
	if e.Name != "" {
		b.PushString(" " + e.Name)
	}
	if c.Config.SpaceBeforeFunctionParen {
		b.PushString(" ")
	}
	b.ExtendPath(c.transformParameterList(e.Params))
	c.pushBraceSeparator(b, c.Config.BracePositions.Function)
	b.ExtendPath(c.transformStatement(e.Body))
	return b.Build()
}

// wordUnaryOperators are the unary operators spelled as keywords, which
// need a separating space before their operand; the symbolic operators
// (!, -, +, ~) bind directly against it.
var wordUnaryOperators = map[string]bool{"typeof": true, "void": true, "delete": true}

func (c *Context) transformUnaryExpression(e *ast.UnaryExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString(e.Operator)
	if wordUnaryOperators[e.Operator] {
		b.PushString(" ")
	}
	b.ExtendPath(c.transformExpression(e.Argument))
	return b.Build()
}

func (c *Context) transformUpdateExpression(e *ast.UpdateExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	if e.Prefix {
		b.PushString(e.Operator)
		b.ExtendPath(c.transformExpression(e.Argument))
		return b.Build()
	}
	b.ExtendPath(c.transformExpression(e.Argument))
	b.PushString(e.Operator)
	return b.Build()
}

func (c *Context) transformSequenceExpression(e *ast.SequenceExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	for i, expr := range e.Expressions {
		if i > 0 {
			b.PushString(", ")
		}
		b.ExtendPath(c.transformExpression(expr))
	}
	return b.Build()
}

func (c *Context) transformAwaitExpression(e *ast.AwaitExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("await ")
	b.ExtendPath(c.transformExpression(e.Argument))
	return b.Build()
}

func (c *Context) transformYieldExpression(e *ast.YieldExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("yield")
	if e.Delegate {
		b.PushString("*")
	}
	if e.Argument != nil {
		b.PushString(" ")
		b.ExtendPath(c.transformExpression(e.Argument))
	}
	return b.Build()
}

func (c *Context) transformTaggedTemplateExpression(e *ast.TaggedTemplateExpression) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.ExtendPath(c.transformExpression(e.Tag))
	b.ExtendPath(c.transformTemplateLiteral(e.Quasi))
	return b.Build()
}

// transformTemplateLiteral emits a template literal verbatim inside an
// ignoring-indent bracket: re-indenting a template's embedded newlines
// would change the string value it produces at runtime, so this engine
// never reformats content between backticks (spec.md §4.5.2).
func (c *Context) transformTemplateLiteral(e *ast.TemplateLiteral) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("`")
	b.PushSignal(ir.KindStartIgnoringIndent)
	for i, q := range e.Quasis {
		b.PushString(q.Raw)
		if i < len(e.Expressions) {
			b.PushString("${")
			b.ExtendPath(c.transformExpression(e.Expressions[i]))
			b.PushString("}")
		}
	}
	b.PushSignal(ir.KindFinishIgnoringIndent)
	b.PushString("`")
	return b.Build()
}
