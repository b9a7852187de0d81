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

// Package rule defines the contract between lint rules and the host that runs them.
//
// The host parses a file, builds its semantic model, and walks the syntax tree once.
// Every node whose kind a rule queried is handed to that rule, which returns
// zero or more [Diagnostic] payloads. Rules keep no state between invocations.
package rule

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/semantic"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Context is what a rule borrows for the duration of one invocation.
type Context struct {
	File  *syntax.File
	Model *semantic.Model
}

// Rule is a lint rule invoked once per syntax node of one of its queried kinds.
type Rule interface {
	// Name is the rule name used in configuration and nolint directives.
	Name() string

	// Kinds lists the syntax node kinds the rule is invoked on.
	Kinds() []string

	// Check inspects one matched node.
	Check(c Context, n *sitter.Node) []Diagnostic
}

// Run walks the syntax tree of a file once and dispatches each node to the rules querying its kind.
// Diagnostics are returned in traversal order.
func Run(c Context, rules []Rule) []Diagnostic {
	var kinds []string

	byKind := make(map[string][]Rule)

	for _, r := range rules {
		for _, kind := range r.Kinds() {
			if _, ok := byKind[kind]; !ok {
				kinds = append(kinds, kind)
			}

			byKind[kind] = append(byKind[kind], r)
		}
	}

	if len(kinds) == 0 {
		return nil
	}

	var diagnostics []Diagnostic

	for n := range syntax.Preorder(c.File.Root(), kinds...) {
		for _, r := range byKind[n.Type()] {
			diagnostics = append(diagnostics, r.Check(c, n)...)
		}
	}

	return diagnostics
}
