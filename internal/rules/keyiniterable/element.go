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

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// scan checks an element tag or embedded expression for a key.
//
// Only nodes on the worklist are checked, children of an element are not pushed.
// Elements nested in embedded expressions are reached through their own iterations;
// an embedded expression root is checked as markup content.
func (c checker) scan(root *sitter.Node) []syntax.Range {
	var ranges []syntax.Range

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.Type() {
		case syntax.JSXElement:
			open := syntax.ChildOfKind(n, syntax.JSXOpeningElement)
			if open == nil {
				continue
			}

			if isFragment(open) {
				if c.options.CheckShorthandFragments {
					ranges = append(ranges, syntax.RangeOf(n))
				}

				continue
			}

			if !c.hasKeyAttribute(open) {
				ranges = append(ranges, syntax.RangeOf(open))
			}

		case syntax.JSXSelfClosingElement:
			if !c.hasKeyAttribute(n) {
				ranges = append(ranges, syntax.RangeOf(n))
			}

		case syntax.JSXExpression:
			if r, ok := c.candidate(syntax.FirstNamedChild(n), true); ok {
				ranges = append(ranges, r...)
			}
		}
	}

	return ranges
}

// isFragment reports whether an opening element is the <> of a shorthand fragment.
func isFragment(open *sitter.Node) bool {
	return syntax.Field(open, "name") == nil
}
