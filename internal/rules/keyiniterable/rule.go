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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/rule"
	"fillmore-labs.com/jsxkey/internal/semantic"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Name is the rule name.
const Name = "useJsxKeyInIterable"

const (
	category = "lint/correctness/useJsxKeyInIterable"
	message  = "Missing key property for this element in iterable."
	url      = "https://react.dev/learn/rendering-lists#why-does-react-need-keys"
)

var notes = []string{
	"The order of the items may change, and having a key can help React identify which item was moved.",
	"Check the React documentation: " + url,
}

// Options configures the rule.
type Options struct {
	// CheckShorthandFragments requires keys on shorthand fragments (<></>) too.
	CheckShorthandFragments bool
}

// Resolver resolves the library export a callee denotes. [*semantic.Model] implements it.
type Resolver interface {
	ResolveCallTarget(callee *sitter.Node) (semantic.Target, bool)
}

// Rule is the [rule.Rule] reporting elements without key in iterables.
type Rule struct {
	options Options
}

// New creates the rule with the given options.
func New(options Options) Rule {
	return Rule{options: options}
}

// Name implements [rule.Rule].
func (Rule) Name() string { return Name }

// Kinds implements [rule.Rule]. The rule is invoked on collection literals and call expressions.
func (Rule) Kinds() []string {
	return []string{syntax.Array, syntax.CallExpression}
}

// Check implements [rule.Rule].
func (r Rule) Check(c rule.Context, n *sitter.Node) []rule.Diagnostic {
	ranges := Run(n, c.File.Src, c.Model, r.options)
	if len(ranges) == 0 {
		return nil
	}

	diagnostics := make([]rule.Diagnostic, 0, len(ranges))
	for _, rng := range ranges {
		diagnostics = append(diagnostics, Diagnostic(rng))
	}

	return diagnostics
}

// Diagnostic creates the payload for a range missing a key.
func Diagnostic(rng syntax.Range) rule.Diagnostic {
	return rule.Diagnostic{
		Rule:     Name,
		Category: category,
		Range:    rng,
		Message:  message,
		Notes:    notes,
		URL:      url,
		Severity: rule.Error,
	}
}

// Run returns the ranges of elements missing a key for one array literal or call expression.
// Other node kinds yield nothing. Run does not retain node references and keeps no state,
// so it may be called concurrently for independent nodes.
func Run(node *sitter.Node, src []byte, resolver Resolver, options Options) []syntax.Range {
	c := checker{src: src, resolver: resolver, options: options}

	switch node.Type() {
	case syntax.Array:
		return c.collection(node)

	case syntax.CallExpression:
		return c.iteration(node)
	}

	return nil
}

// checker holds the inputs of one invocation.
type checker struct {
	src      []byte
	resolver Resolver
	options  Options
}

// collection handles the elements of an array literal, like [<h1 />, <h1 />].
func (c checker) collection(array *sitter.Node) []syntax.Range {
	insideJSX := syntax.InsideJSXChild(array)

	var ranges []syntax.Range

	for elem := range syntax.NamedChildren(array) {
		// A spread array is checked where it is declared
		if elem.Type() == syntax.SpreadElement {
			continue
		}

		if r, ok := c.candidate(elem, insideJSX); ok {
			ranges = append(ranges, r...)
		}
	}

	return ranges
}
