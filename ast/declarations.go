// Copyright 2026 The tsfmt Authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// class, interface, enum, type-alias, import, and export node variants.
type (
	ClassDeclaration struct {
		Base
		Name       string // "" for an anonymous `export default class { ... }`
		TypeParams []*TypeParameter
		SuperClass Node   // nil if no `extends`
		Implements []Node // *TypeReference list
		Body       []*ClassMember
		IsAbstract bool
		Decorators []string // raw decorator source text, e.g. "@Component()", in source order
	}

	// ClassMember covers methods, accessors, properties, and the
	// constructor. Modifiers is kept as raw keyword text in source order
	// (SPEC_FULL.md's decorator/modifier ordering note) rather than a
	// canonicalized struct, since nothing in this engine needs to
	// reorder them - only reproduce whatever order the parser saw. Its
	// Kind field shadows Base.Kind, so *ClassMember is not itself a Node;
	// its embedded Base is.
	ClassMember struct {
		Base
		Decorators  []string
		Modifiers   []string // "static", "public", "private", "protected", "readonly", "abstract", in source order
		Kind        string   // "method", "get", "set", "property", "constructor"
		Key         Node
		Computed    bool
		Optional    bool
		Params      []*Parameter    // method/accessor/constructor parameters
		Body        *BlockStatement // nil for an ambient/abstract member
		Value       Node            // property initializer, nil if none
		IsAsync     bool
		IsGenerator bool
	}

	InterfaceDeclaration struct {
		Base
		Name       string
		TypeParams []*TypeParameter
		Extends    []Node // *TypeReference list
		Body       []*InterfaceMember
	}

	// InterfaceMember is a property or method signature; IsMethod
	// distinguishes `foo(): T` from `foo: T`.
	InterfaceMember struct {
		Base
		Key      Node
		Computed bool
		Optional bool
		IsMethod bool
		Params   []*Parameter
	}

	EnumDeclaration struct {
		Base
		Name    string
		IsConst bool
		Members []*EnumMember
	}

	EnumMember struct {
		Base
		Name string
		Init Node // nil if the member has no initializer
	}

	TypeAliasDeclaration struct {
		Base
		Name           string
		TypeParams     []*TypeParameter
		TypeAnnotation Node // *TypeReference, *UnionType, *IntersectionType, *TupleType, ...
	}

	TypeParameter struct {
		Base
		Name       string
		Constraint Node // nil if no `extends`
		Default    Node // nil if no default
	}

	// TypeReference is a named type, optionally generic: `Foo`,
	// `Array<string>`, `Record<K, V>`.
	TypeReference struct {
		Base
		Name          string
		TypeArguments []Node
	}

	UnionType struct {
		Base
		Types []Node
	}

	IntersectionType struct {
		Base
		Types []Node
	}

	TupleType struct {
		Base
		ElementTypes []Node
	}

	// ImportDeclaration covers every import form: default, namespace,
	// named, and any combination (`import Foo, { a, b as c } from "m"`).
	ImportDeclaration struct {
		Base
		DefaultImport   string // "" if absent
		NamespaceImport string // "" if absent; the name bound by `* as x`
		Named           []*ImportSpecifier
		ModuleValue     string // module specifier content, excluding quotes
		ModuleQuote     byte
		IsTypeOnly      bool
	}

	ImportSpecifier struct {
		Base
		Imported string
		Local    string // equals Imported when there is no `as` alias
	}

	// ExportNamedDeclaration covers both `export const x = 1` (Declaration
	// set, Specifiers nil) and `export { a, b as c }` / `export { a } from
	// "m"` (Specifiers set, Declaration nil).
	ExportNamedDeclaration struct {
		Base
		Declaration Node
		Specifiers  []*ExportSpecifier
		ModuleValue string // "" unless this is a re-export
		ModuleQuote byte
		IsTypeOnly  bool
	}

	ExportSpecifier struct {
		Base
		Local    string
		Exported string // equals Local when there is no `as` alias
	}

	ExportDefaultDeclaration struct {
		Base
		Declaration Node
	}

	// ExportAllDeclaration is `export * from "m"` (Exported == "") or
	// `export * as ns from "m"`.
	ExportAllDeclaration struct {
		Base
		Exported    string
		ModuleValue string
		ModuleQuote byte
	}
)
