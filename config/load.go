// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// trailingCommasDoc is the YAML shape of the trailingCommas family
// (spec.md §6): one entry per TrailingCommas field, all optional.
type trailingCommasDoc struct {
	Arguments         *string `yaml:"arguments"`
	Parameters        *string `yaml:"parameters"`
	ArrayExpression   *string `yaml:"arrayExpression"`
	ArrayPattern      *string `yaml:"arrayPattern"`
	ObjectExpression  *string `yaml:"objectExpression"`
	ObjectPattern     *string `yaml:"objectPattern"`
	EnumDeclaration   *string `yaml:"enumDeclaration"`
	TupleType         *string `yaml:"tupleType"`
	TypeParameters    *string `yaml:"typeParameters"`
	ExportDeclaration *string `yaml:"exportDeclaration"`
	ImportDeclaration *string `yaml:"importDeclaration"`
}

// bracePositionsDoc is the YAML shape of the bracePosition family.
type bracePositionsDoc struct {
	IfStatement   *string `yaml:"ifStatement"`
	ClassBody     *string `yaml:"classBody"`
	Function      *string `yaml:"function"`
	TryStatement  *string `yaml:"tryStatement"`
	ObjectLiteral *string `yaml:"objectLiteral"`
}

// conditionalFamilyDoc is the YAML shape of one UseBracesConfig family
// member (useBraces + singleBodyPosition).
type conditionalFamilyDoc struct {
	UseBraces          *string `yaml:"useBraces"`
	SingleBodyPosition *string `yaml:"singleBodyPosition"`
}

type useBracesDoc struct {
	IfStatement    *conditionalFamilyDoc `yaml:"ifStatement"`
	WhileStatement *conditionalFamilyDoc `yaml:"whileStatement"`
	ForStatement   *conditionalFamilyDoc `yaml:"forStatement"`
}

// document is the YAML shape a dprint-style configuration file takes.
// Unset fields keep their Defaults() value; this mirrors the teacher's
// per-option setters (SetIndent/SetCommentColumn), just declarative.
type document struct {
	LineWidth   *uint32 `yaml:"lineWidth"`
	IndentWidth *uint8  `yaml:"indentWidth"`
	UseTabs     *bool   `yaml:"useTabs"`
	NewLineKind *string `yaml:"newLineKind"`

	QuoteStyle *string `yaml:"quoteStyle"`
	SemiColons *string `yaml:"semiColons"`

	TrailingCommas  *trailingCommasDoc `yaml:"trailingCommas"`
	BracePositions  *bracePositionsDoc `yaml:"bracePosition"`
	UseBracesConfig *useBracesDoc      `yaml:"useBraces"`

	NextControlFlowPosition *string `yaml:"nextControlFlowPosition"`
	OperatorPosition        *string `yaml:"operatorPosition"`

	BinaryExpressionLinePerExpression *bool `yaml:"binaryExpression.linePerExpression"`
	BinaryExpressionPreferSingleLine  *bool `yaml:"binaryExpression.preferSingleLine"`
	MemberExpressionLinePerExpression *bool `yaml:"memberExpression.linePerExpression"`

	ArrowParentheses *string `yaml:"arrowFunction.useParentheses"`

	PreferHanging *bool `yaml:"preferHanging"`

	SpaceBeforeFunctionParen *bool `yaml:"spaceBeforeFunctionParen"`
	SpaceAfterKeyword        *bool `yaml:"spaceAfterKeyword"`

	IgnoreNodeCommentText *string `yaml:"ignoreNodeCommentText"`
}

// Load parses a YAML configuration document, applying its values on top
// of Defaults().
func Load(data []byte) (Config, error) {
	cfg := Defaults()
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("tsfmt: parsing config: %w", err)
	}

	if doc.LineWidth != nil {
		cfg.LineWidth = *doc.LineWidth
	}
	if doc.IndentWidth != nil {
		cfg.IndentWidth = *doc.IndentWidth
	}
	if doc.UseTabs != nil {
		cfg.UseTabs = *doc.UseTabs
	}
	if doc.NewLineKind != nil {
		nl, err := parseNewLineKind(*doc.NewLineKind)
		if err != nil {
			return Config{}, err
		}
		cfg.NewLineKind = nl
	}
	if doc.QuoteStyle != nil {
		qs, err := parseQuoteStyle(*doc.QuoteStyle)
		if err != nil {
			return Config{}, err
		}
		cfg.QuoteStyle = qs
	}
	if doc.SemiColons != nil {
		sc, err := parseSemiColons(*doc.SemiColons)
		if err != nil {
			return Config{}, err
		}
		cfg.SemiColons = sc
	}
	if err := applyTrailingCommas(&cfg.TrailingCommas, doc.TrailingCommas); err != nil {
		return Config{}, err
	}
	if err := applyBracePositions(&cfg.BracePositions, doc.BracePositions); err != nil {
		return Config{}, err
	}
	if err := applyUseBraces(&cfg.UseBracesConfig, doc.UseBracesConfig); err != nil {
		return Config{}, err
	}
	if doc.NextControlFlowPosition != nil {
		p, err := parseNextControlFlowPosition(*doc.NextControlFlowPosition)
		if err != nil {
			return Config{}, err
		}
		cfg.NextControlFlowPosition = p
	}
	if doc.OperatorPosition != nil {
		p, err := parseOperatorPosition(*doc.OperatorPosition)
		if err != nil {
			return Config{}, err
		}
		cfg.OperatorPosition = p
	}
	if doc.BinaryExpressionLinePerExpression != nil {
		cfg.BinaryExpressionLinePerExpression = *doc.BinaryExpressionLinePerExpression
	}
	if doc.BinaryExpressionPreferSingleLine != nil {
		cfg.BinaryExpressionPreferSingleLine = *doc.BinaryExpressionPreferSingleLine
	}
	if doc.MemberExpressionLinePerExpression != nil {
		cfg.MemberExpressionLinePerExpression = *doc.MemberExpressionLinePerExpression
	}
	if doc.ArrowParentheses != nil {
		ap, err := parseArrowParens(*doc.ArrowParentheses)
		if err != nil {
			return Config{}, err
		}
		cfg.ArrowFunctionUseParentheses = ap
	}
	if doc.PreferHanging != nil {
		cfg.PreferHanging = *doc.PreferHanging
	}
	if doc.SpaceBeforeFunctionParen != nil {
		cfg.SpaceBeforeFunctionParen = *doc.SpaceBeforeFunctionParen
	}
	if doc.SpaceAfterKeyword != nil {
		cfg.SpaceAfterKeyword = *doc.SpaceAfterKeyword
	}
	if doc.IgnoreNodeCommentText != nil {
		cfg.IgnoreNodeCommentText = *doc.IgnoreNodeCommentText
	}
	return cfg, nil
}

// LoadFile reads and parses a configuration file from disk.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tsfmt: reading config %s: %w", path, err)
	}
	return Load(data)
}

func applyTrailingCommas(out *TrailingCommas, doc *trailingCommasDoc) error {
	if doc == nil {
		return nil
	}
	fields := []struct {
		val *string
		dst *TrailingCommaOpt
	}{
		{doc.Arguments, &out.Arguments},
		{doc.Parameters, &out.Parameters},
		{doc.ArrayExpression, &out.ArrayExpression},
		{doc.ArrayPattern, &out.ArrayPattern},
		{doc.ObjectExpression, &out.ObjectExpression},
		{doc.ObjectPattern, &out.ObjectPattern},
		{doc.EnumDeclaration, &out.EnumDeclaration},
		{doc.TupleType, &out.TupleType},
		{doc.TypeParameters, &out.TypeParameters},
		{doc.ExportDeclaration, &out.ExportDeclaration},
		{doc.ImportDeclaration, &out.ImportDeclaration},
	}
	for _, f := range fields {
		if f.val == nil {
			continue
		}
		v, err := parseTrailingCommaOpt(*f.val)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func applyBracePositions(out *BracePositions, doc *bracePositionsDoc) error {
	if doc == nil {
		return nil
	}
	fields := []struct {
		val *string
		dst *BracePosition
	}{
		{doc.IfStatement, &out.IfStatement},
		{doc.ClassBody, &out.ClassBody},
		{doc.Function, &out.Function},
		{doc.TryStatement, &out.TryStatement},
		{doc.ObjectLiteral, &out.ObjectLiteral},
	}
	for _, f := range fields {
		if f.val == nil {
			continue
		}
		v, err := parseBracePosition(*f.val)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func applyUseBraces(out *UseBracesConfig, doc *useBracesDoc) error {
	if doc == nil {
		return nil
	}
	families := []struct {
		val *conditionalFamilyDoc
		dst *NextConditionalFamily
	}{
		{doc.IfStatement, &out.IfStatement},
		{doc.WhileStatement, &out.WhileStatement},
		{doc.ForStatement, &out.ForStatement},
	}
	for _, f := range families {
		if f.val == nil {
			continue
		}
		if f.val.UseBraces != nil {
			v, err := parseUseBraces(*f.val.UseBraces)
			if err != nil {
				return err
			}
			f.dst.UseBraces = v
		}
		if f.val.SingleBodyPosition != nil {
			v, err := parseSingleBodyPosition(*f.val.SingleBodyPosition)
			if err != nil {
				return err
			}
			f.dst.SingleBodyPosition = v
		}
	}
	return nil
}

func parseQuoteStyle(s string) (QuoteStyle, error) {
	switch s {
	case "alwaysDouble":
		return AlwaysDouble, nil
	case "alwaysSingle":
		return AlwaysSingle, nil
	case "preferDouble":
		return PreferDouble, nil
	case "preferSingle":
		return PreferSingle, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown quoteStyle %q", s)
	}
}

func parseSemiColons(s string) (SemiColons, error) {
	switch s {
	case "always":
		return Always, nil
	case "prefer":
		return Prefer, nil
	case "asi":
		return Asi, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown semiColons %q", s)
	}
}

func parseArrowParens(s string) (ArrowParens, error) {
	switch s {
	case "force":
		return ArrowForce, nil
	case "preferNone":
		return ArrowPreferNone, nil
	case "maintain":
		return ArrowMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown arrowFunction.useParentheses %q", s)
	}
}

func parseTrailingCommaOpt(s string) (TrailingCommaOpt, error) {
	switch s {
	case "always":
		return CommaAlways, nil
	case "onlyMultiLine":
		return CommaOnlyMultiLine, nil
	case "never":
		return CommaNever, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown trailingCommas value %q", s)
	}
}

func parseBracePosition(s string) (BracePosition, error) {
	switch s {
	case "sameLine":
		return BraceSameLine, nil
	case "nextLine":
		return BraceNextLine, nil
	case "nextLineIfHanging":
		return BraceNextLineIfHanging, nil
	case "maintain":
		return BraceMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown bracePosition value %q", s)
	}
}

func parseNextControlFlowPosition(s string) (NextControlFlowPosition, error) {
	switch s {
	case "sameLine":
		return FlowSameLine, nil
	case "nextLine":
		return FlowNextLine, nil
	case "maintain":
		return FlowMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown nextControlFlowPosition value %q", s)
	}
}

func parseOperatorPosition(s string) (OperatorPosition, error) {
	switch s {
	case "sameLine":
		return OpSameLine, nil
	case "nextLine":
		return OpNextLine, nil
	case "maintain":
		return OpMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown operatorPosition value %q", s)
	}
}

func parseSingleBodyPosition(s string) (SingleBodyPosition, error) {
	switch s {
	case "sameLine":
		return BodySameLine, nil
	case "nextLine":
		return BodyNextLine, nil
	case "maintain":
		return BodyMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown singleBodyPosition value %q", s)
	}
}

func parseUseBraces(s string) (UseBraces, error) {
	switch s {
	case "always":
		return BracesAlways, nil
	case "preferNone":
		return BracesPreferNone, nil
	case "whenNotSingleLine":
		return BracesWhenNotSingleLine, nil
	case "maintain":
		return BracesMaintain, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown useBraces value %q", s)
	}
}

func parseNewLineKind(s string) (NewLineKind, error) {
	switch s {
	case "auto":
		return NewLineAuto, nil
	case "lf":
		return NewLineLf, nil
	case "crlf":
		return NewLineCrlf, nil
	case "system":
		return NewLineSystem, nil
	default:
		return 0, fmt.Errorf("tsfmt: unknown newLineKind value %q", s)
	}
}
