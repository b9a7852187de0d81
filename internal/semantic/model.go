// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package semantic

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Target is the (library, exported name) pair a call resolves to.
type Target struct {
	Library Library
	Export  string
}

type bindingKind uint8

const (
	defaultBinding   bindingKind = iota // import React from "react"
	namespaceBinding                    // import * as React from "react"
	namedBinding                        // import { createElement } from "react"
)

type binding struct {
	library  Library
	kind     bindingKind
	imported string
}

// Model holds the module-level name bindings of one file.
//
// It is built once by [Build] and never modified afterwards, so concurrent lookups are safe.
type Model struct {
	src      []byte
	bindings map[string]binding
	declared map[string]struct{}
}

// Build resolves the import declarations, top-level require calls and top-level declarations of a file.
func Build(f *syntax.File) *Model {
	m := &Model{
		src:      f.Src,
		bindings: make(map[string]binding),
		declared: make(map[string]struct{}),
	}

	for stmt := range syntax.NamedChildren(f.Root()) {
		m.statement(stmt)
	}

	return m
}

// ResolveCallTarget returns the library export a callee denotes, if the bindings of the file resolve it.
// Identifiers resolve through named imports; member expressions through default or namespace imports,
// or through an undeclared global library name like React. A name bound by an enclosing function,
// block or catch clause does not resolve.
func (m *Model) ResolveCallTarget(callee *sitter.Node) (Target, bool) {
	if m == nil || callee == nil {
		return Target{}, false
	}

	switch callee.Type() {
	case syntax.Identifier:
		name := syntax.Text(callee, m.src)
		if m.shadowed(callee, name) {
			return Target{}, false
		}

		b, ok := m.bindings[name]
		if !ok || b.kind != namedBinding || b.library == Unknown {
			return Target{}, false
		}

		return Target{Library: b.library, Export: b.imported}, true

	case syntax.MemberExpression:
		object, property := syntax.Field(callee, "object"), syntax.Field(callee, "property")
		if object == nil || property == nil || object.Type() != syntax.Identifier {
			return Target{}, false
		}

		name := syntax.Text(object, m.src)
		if m.shadowed(object, name) {
			return Target{}, false
		}

		library, ok := m.objectLibrary(name)
		if !ok {
			return Target{}, false
		}

		return Target{Library: library, Export: syntax.Text(property, m.src)}, true
	}

	return Target{}, false
}

// objectLibrary returns the library a module object name refers to.
func (m *Model) objectLibrary(name string) (Library, bool) {
	if b, ok := m.bindings[name]; ok {
		return b.library, b.kind != namedBinding && b.library != Unknown
	}

	if _, ok := m.declared[name]; ok {
		return Unknown, false
	}

	return globalLibrary(name)
}

func (m *Model) statement(stmt *sitter.Node) {
	switch stmt.Type() {
	case syntax.ImportStatement:
		m.importStatement(stmt)

	case syntax.LexicalDeclaration, syntax.VariableDeclaration:
		for decl := range syntax.NamedChildren(stmt) {
			if decl.Type() == syntax.VariableDeclarator {
				m.declarator(decl)
			}
		}

	case syntax.FunctionDeclaration, syntax.ClassDeclaration:
		if name := syntax.Field(stmt, "name"); name != nil {
			m.declare(name)
		}

	case syntax.ExportStatement:
		if decl := syntax.Field(stmt, "declaration"); decl != nil {
			m.statement(decl)
		}
	}
}

func (m *Model) importStatement(stmt *sitter.Node) {
	module, ok := syntax.StringValue(syntax.Field(stmt, "source"), m.src)
	if !ok {
		return
	}

	library := libraryOf(module)

	clause := syntax.ChildOfKind(stmt, syntax.ImportClause)
	for c := range syntax.NamedChildren(clause) {
		switch c.Type() {
		case syntax.Identifier:
			m.bind(c, binding{library: library, kind: defaultBinding})

		case syntax.NamespaceImport:
			if local := syntax.ChildOfKind(c, syntax.Identifier); local != nil {
				m.bind(local, binding{library: library, kind: namespaceBinding})
			}

		case syntax.NamedImports:
			for spec := range syntax.NamedChildren(c) {
				if spec.Type() == syntax.ImportSpecifier {
					m.importSpecifier(spec, library)
				}
			}
		}
	}
}

func (m *Model) importSpecifier(spec *sitter.Node, library Library) {
	name := syntax.Field(spec, "name")
	if name == nil {
		return
	}

	imported := syntax.Text(name, m.src)
	if s, ok := syntax.StringValue(name, m.src); ok {
		imported = s
	}

	local := name
	if alias := syntax.Field(spec, "alias"); alias != nil {
		local = alias
	}

	if imported == "default" {
		m.bind(local, binding{library: library, kind: defaultBinding})

		return
	}

	m.bind(local, binding{library: library, kind: namedBinding, imported: imported})
}

// declarator handles const React = require("react"), const { createElement } = require("react")
// and const { createElement } = React.
func (m *Model) declarator(decl *sitter.Node) {
	name, value := syntax.Field(decl, "name"), syntax.Field(decl, "value")
	if name == nil {
		return
	}

	library, ok := m.moduleObject(value)

	switch {
	case name.Type() == syntax.Identifier && ok:
		m.bind(name, binding{library: library, kind: namespaceBinding})

	case name.Type() == syntax.ObjectPattern && ok:
		m.destructure(name, library)

	default:
		for id := range syntax.Preorder(name, syntax.Identifier, syntax.ShorthandPropertyIdentifierPattern) {
			m.declare(id)
		}
	}
}

// moduleObject returns the library of a require call or of an identifier bound to a module object.
func (m *Model) moduleObject(value *sitter.Node) (Library, bool) {
	value = syntax.Unparen(value)
	if value == nil {
		return Unknown, false
	}

	switch value.Type() {
	case syntax.CallExpression:
		callee := syntax.Field(value, "function")
		if callee == nil || callee.Type() != syntax.Identifier || syntax.Text(callee, m.src) != "require" {
			return Unknown, false
		}

		if _, shadowed := m.declared["require"]; shadowed {
			return Unknown, false
		}

		module, ok := syntax.StringValue(syntax.FirstNamedChild(syntax.Field(value, "arguments")), m.src)
		if !ok {
			return Unknown, false
		}

		return libraryOf(module), true

	case syntax.Identifier:
		return m.objectLibrary(syntax.Text(value, m.src))
	}

	return Unknown, false
}

func (m *Model) destructure(pattern *sitter.Node, library Library) {
	for prop := range syntax.NamedChildren(pattern) {
		switch prop.Type() {
		case syntax.ShorthandPropertyIdentifierPattern:
			m.bind(prop, binding{library: library, kind: namedBinding, imported: syntax.Text(prop, m.src)})

		case syntax.PairPattern:
			key, value := syntax.Field(prop, "key"), syntax.Field(prop, "value")
			if key == nil || value == nil || value.Type() != syntax.Identifier {
				continue
			}

			m.bind(value, binding{library: library, kind: namedBinding, imported: syntax.Text(key, m.src)})

		default:
			for id := range syntax.Preorder(prop, syntax.Identifier) {
				m.declare(id)
			}
		}
	}
}

func (m *Model) bind(id *sitter.Node, b binding) {
	m.bindings[syntax.Text(id, m.src)] = b
}

func (m *Model) declare(id *sitter.Node) {
	name := syntax.Text(id, m.src)
	if _, ok := m.bindings[name]; ok {
		return
	}

	m.declared[name] = struct{}{}
}
