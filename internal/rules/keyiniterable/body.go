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

package keyiniterable

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// functionBody collects the ranges of the values a block-bodied callback may produce.
//
// When the first top-level return statement directly returns a component that needs no key,
// the rest of the body is not inspected.
func (c checker) functionBody(body *sitter.Node, insideJSX bool) []syntax.Range {
	if ret := syntax.ChildOfKind(body, syntax.ReturnStatement); ret != nil {
		if value := returnValue(ret); value != nil {
			_, flagged := c.candidate(value, insideJSX)
			if !flagged && isComponent(syntax.Unparen(value)) {
				return nil
			}
		}
	}

	return c.statements(syntax.NamedChildren(body), insideJSX)
}

func (c checker) statements(stmts iter.Seq[*sitter.Node], insideJSX bool) []syntax.Range {
	var ranges []syntax.Range
	for stmt := range stmts {
		ranges = append(ranges, c.statement(stmt, insideJSX)...)
	}

	return ranges
}

// statement inspects variable declarations, returns, switch cases and if branches.
// Variable initializers count whether or not the variable is returned.
func (c checker) statement(stmt *sitter.Node, insideJSX bool) []syntax.Range {
	switch stmt.Type() {
	case syntax.LexicalDeclaration, syntax.VariableDeclaration:
		var ranges []syntax.Range

		for decl := range syntax.NamedChildren(stmt) {
			if decl.Type() != syntax.VariableDeclarator {
				continue
			}

			value := syntax.Field(decl, "value")
			if value == nil {
				continue
			}

			if r, ok := c.candidate(value, insideJSX); ok {
				ranges = append(ranges, r...)
			}
		}

		return ranges

	case syntax.ReturnStatement:
		value := returnValue(stmt)
		if value == nil {
			return nil
		}

		ranges, _ := c.candidate(value, insideJSX)

		return ranges

	case syntax.SwitchStatement:
		var ranges []syntax.Range
		for clause := range syntax.NamedChildren(syntax.Field(stmt, "body")) {
			ranges = append(ranges, c.statements(clauseBody(clause), insideJSX)...)
		}

		return ranges

	case syntax.IfStatement:
		var ranges []syntax.Range

		// Only block branches are inspected, else-if chains are not followed
		if block := syntax.Field(stmt, "consequence"); isBlock(block) {
			ranges = c.statements(syntax.NamedChildren(block), insideJSX)
		}

		if block := elseBranch(stmt); isBlock(block) {
			ranges = append(ranges, c.statements(syntax.NamedChildren(block), insideJSX)...)
		}

		return ranges
	}

	return nil
}

func returnValue(ret *sitter.Node) *sitter.Node {
	return syntax.FirstNamedChild(ret)
}

// clauseBody yields the statements of a case or default clause.
func clauseBody(clause *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		switch clause.Type() {
		case syntax.SwitchCase, syntax.SwitchDefault:
		default:
			return
		}

		value := syntax.Field(clause, "value")

		for stmt := range syntax.NamedChildren(clause) {
			if value != nil && syntax.SameNode(stmt, value) {
				continue
			}

			if !yield(stmt) {
				return
			}
		}
	}
}

func elseBranch(stmt *sitter.Node) *sitter.Node {
	alt := syntax.Field(stmt, "alternative")
	if alt != nil && alt.Type() == syntax.ElseClause {
		return syntax.FirstNamedChild(alt)
	}

	return alt
}

func isBlock(n *sitter.Node) bool {
	return n != nil && n.Type() == syntax.StatementBlock
}
