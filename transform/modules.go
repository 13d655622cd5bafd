// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/dprintgo/tsfmt/ast"
	"github.com/dprintgo/tsfmt/ir"
)

func moduleSpecifier(quote byte, value string) string {
	return string(quote) + value + string(quote)
}

// transformImportDeclaration renders every import form spec.md §4.5.3
// names: default, namespace, named, and any combination.
func (c *Context) transformImportDeclaration(s *ast.ImportDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("import ")
	if s.IsTypeOnly {
		b.PushString("type ")
	}

	wroteClause := false
	if s.DefaultImport != "" {
		b.PushString(s.DefaultImport)
		wroteClause = true
	}
	if s.NamespaceImport != "" {
		if wroteClause {
			b.PushString(", ")
		}
		b.PushString("* as " + s.NamespaceImport)
		wroteClause = true
	}
	if len(s.Named) > 0 {
		if wroteClause {
			b.PushString(", ")
		}
		values := make([]*ir.Path, len(s.Named))
		for i, spec := range s.Named {
			values[i] = c.transformImportSpecifier(spec)
		}
		b.ExtendPath(c.SeparatedValues(values, SeparatedValuesOptions{
			Open:          "{",
			Close:         "}",
			TrailingComma: c.Config.TrailingCommas.ImportDeclaration,
			SpaceInside:   true,
			Hanging:       c.Config.PreferHanging,
		}))
		wroteClause = true
	}
	if wroteClause {
		b.PushString(" from ")
	}
	b.PushString(moduleSpecifier(s.ModuleQuote, s.ModuleValue))
	statementSemicolon(b, c.Config)
	return b.Build()
}

func (c *Context) transformImportSpecifier(spec *ast.ImportSpecifier) *ir.Path {
	c.visitNode(spec)
	if spec.Local == spec.Imported {
		return stringPath(c, spec.Imported)
	}
	b := ir.NewBuilder(c.Gen)
	b.PushString(spec.Imported + " as " + spec.Local)
	return b.Build()
}

// transformExportNamedDeclaration renders both `export const x = 1` and
// `export { a, b as c }` / `export { a } from "m"`.
func (c *Context) transformExportNamedDeclaration(s *ast.ExportNamedDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("export ")
	if s.Declaration != nil {
		b.ExtendPath(c.transformStatement(s.Declaration))
		return b.Build()
	}
	if s.IsTypeOnly {
		b.PushString("type ")
	}
	values := make([]*ir.Path, len(s.Specifiers))
	for i, spec := range s.Specifiers {
		values[i] = c.transformExportSpecifier(spec)
	}
	b.ExtendPath(c.SeparatedValues(values, SeparatedValuesOptions{
		Open:          "{",
		Close:         "}",
		TrailingComma: c.Config.TrailingCommas.ExportDeclaration,
		SpaceInside:   true,
		Hanging:       c.Config.PreferHanging,
	}))
	if s.ModuleValue != "" {
		b.PushString(" from " + moduleSpecifier(s.ModuleQuote, s.ModuleValue))
	}
	statementSemicolon(b, c.Config)
	return b.Build()
}

func (c *Context) transformExportSpecifier(spec *ast.ExportSpecifier) *ir.Path {
	c.visitNode(spec)
	if spec.Local == spec.Exported {
		return stringPath(c, spec.Local)
	}
	b := ir.NewBuilder(c.Gen)
	b.PushString(spec.Local + " as " + spec.Exported)
	return b.Build()
}

func (c *Context) transformExportDefaultDeclaration(s *ast.ExportDefaultDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("export default ")
	switch s.Declaration.(type) {
	case *ast.ClassDeclaration, *ast.FunctionDeclaration:
		b.ExtendPath(c.transformStatement(s.Declaration))
		return b.Build()
	default:
		b.ExtendPath(c.transformExpression(s.Declaration))
		statementSemicolon(b, c.Config)
		return b.Build()
	}
}

func (c *Context) transformExportAllDeclaration(s *ast.ExportAllDeclaration) *ir.Path {
	b := ir.NewBuilder(c.Gen)
	b.PushString("export *")
	if s.Exported != "" {
		b.PushString(" as " + s.Exported)
	}
	b.PushString(" from " + moduleSpecifier(s.ModuleQuote, s.ModuleValue))
	statementSemicolon(b, c.Config)
	return b.Build()
}
