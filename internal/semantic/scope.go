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
	"iter"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// shadowed reports whether a parameter or declaration of a scope enclosing ref binds name.
// Module-level names are left to the bindings of the [Model].
func (m *Model) shadowed(ref *sitter.Node, name string) bool {
	for n := ref.Parent(); n != nil && n.Type() != syntax.Program; n = n.Parent() {
		if m.bindsIn(n, name) {
			return true
		}
	}

	return false
}

// bindsIn reports whether the scope introduced by n binds name.
func (m *Model) bindsIn(n *sitter.Node, name string) bool {
	switch n.Type() {
	case syntax.ArrowFunction:
		if param := syntax.Field(n, "parameter"); param != nil {
			return m.patternBinds(param, name)
		}

		return m.patternBinds(syntax.Field(n, "parameters"), name)

	case syntax.FunctionExpression, syntax.Function, syntax.GeneratorFunction:
		// A named function expression binds its own name
		if id := syntax.Field(n, "name"); id != nil && syntax.Text(id, m.src) == name {
			return true
		}

		return m.patternBinds(syntax.Field(n, "parameters"), name)

	case syntax.FunctionDeclaration, syntax.GeneratorDeclaration, syntax.MethodDefinition:
		return m.patternBinds(syntax.Field(n, "parameters"), name)

	case syntax.CatchClause:
		return m.patternBinds(syntax.Field(n, "parameter"), name)

	case syntax.StatementBlock:
		return m.declares(syntax.NamedChildren(n), name)

	case syntax.SwitchBody:
		for clause := range syntax.NamedChildren(n) {
			if m.declares(syntax.NamedChildren(clause), name) {
				return true
			}
		}

	case syntax.ForStatement:
		if init := syntax.Field(n, "initializer"); init != nil {
			return m.declares(slices.Values([]*sitter.Node{init}), name)
		}

	case syntax.ForInStatement:
		// for (x of xs) assigns, for (const x of xs) declares
		if syntax.Field(n, "kind") != nil {
			return m.patternBinds(syntax.Field(n, "left"), name)
		}
	}

	return false
}

// declares reports whether one of the statements declares name.
func (m *Model) declares(stmts iter.Seq[*sitter.Node], name string) bool {
	for stmt := range stmts {
		switch stmt.Type() {
		case syntax.LexicalDeclaration, syntax.VariableDeclaration:
			for decl := range syntax.NamedChildren(stmt) {
				if decl.Type() == syntax.VariableDeclarator && m.patternBinds(syntax.Field(decl, "name"), name) {
					return true
				}
			}

		case syntax.FunctionDeclaration, syntax.GeneratorDeclaration, syntax.ClassDeclaration:
			if id := syntax.Field(stmt, "name"); id != nil && syntax.Text(id, m.src) == name {
				return true
			}
		}
	}

	return false
}

// patternBinds reports whether a binding pattern or parameter list introduces name.
// Default values are not bindings and are not inspected.
func (m *Model) patternBinds(pattern *sitter.Node, name string) bool {
	if pattern == nil {
		return false
	}

	switch pattern.Type() {
	case syntax.Identifier, syntax.ShorthandPropertyIdentifierPattern:
		return syntax.Text(pattern, m.src) == name

	case syntax.PairPattern:
		return m.patternBinds(syntax.Field(pattern, "value"), name)

	case syntax.AssignmentPattern, syntax.ObjectAssignmentPattern:
		return m.patternBinds(syntax.Field(pattern, "left"), name)

	case syntax.RequiredParameter, syntax.OptionalParameter:
		return m.patternBinds(syntax.Field(pattern, "pattern"), name)

	case syntax.FormalParameters, syntax.ObjectPattern, syntax.ArrayPattern, syntax.RestPattern:
		for c := range syntax.NamedChildren(pattern) {
			if m.patternBinds(c, name) {
				return true
			}
		}
	}

	return false
}
