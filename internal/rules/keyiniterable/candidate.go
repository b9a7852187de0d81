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
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// component is an expression that may evaluate to a React element,
// either an [elementTag] or a [factoryCall].
type component interface {
	node() *sitter.Node
}

// elementTag is a JSX element, self-closing element or fragment.
type elementTag struct{ n *sitter.Node }

func (e elementTag) node() *sitter.Node { return e.n }

// factoryCall is a call expression, possibly React.createElement or React.cloneElement.
type factoryCall struct{ n *sitter.Node }

func (f factoryCall) node() *sitter.Node { return f.n }

// classify returns the component an unparenthesized expression denotes.
func classify(expr *sitter.Node) (component, bool) {
	switch expr.Type() {
	case syntax.JSXElement, syntax.JSXSelfClosingElement:
		return elementTag{expr}, true

	case syntax.CallExpression:
		return factoryCall{expr}, true
	}

	return nil, false
}

func isComponent(expr *sitter.Node) bool {
	if expr == nil {
		return false
	}

	_, ok := classify(expr)

	return ok
}

// candidate returns the ranges missing a key in an expression that may produce an element.
// The boolean result is false when the expression yields no signal at all; both branches
// of a conditional expression are inspected independently.
//
// Inside markup only element tags are considered. Nested calls there are reached
// as call expressions of their own.
func (c checker) candidate(expr *sitter.Node, insideJSX bool) ([]syntax.Range, bool) {
	expr = syntax.Unparen(expr)
	if expr == nil {
		return nil, false
	}

	if expr.Type() == syntax.TernaryExpression {
		consequence, alternative := syntax.Field(expr, "consequence"), syntax.Field(expr, "alternative")
		if consequence == nil || alternative == nil {
			return nil, false
		}

		cons, consOK := c.candidate(consequence, insideJSX)
		alt, altOK := c.candidate(alternative, insideJSX)

		return slices.Concat(cons, alt), consOK || altOK
	}

	comp, ok := classify(expr)
	if !ok {
		return nil, false
	}

	if _, tag := comp.(elementTag); insideJSX && !tag {
		return nil, false
	}

	return c.component(comp)
}

func (c checker) component(comp component) ([]syntax.Range, bool) {
	switch comp := comp.(type) {
	case elementTag:
		ranges := c.scan(comp.n)

		return ranges, len(ranges) > 0

	case factoryCall:
		rng, ok := c.factory(comp.n)
		if !ok {
			return nil, false
		}

		return []syntax.Range{rng}, true
	}

	return nil, false
}
