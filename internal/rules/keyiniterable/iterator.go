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

// iterationMethods are the method names whose callback produces the items of an iterable.
var iterationMethods = []string{
	"map", "flatMap", "from", "forEach", "filter", "some", "every", "find", "findIndex", "reduce", "reduceRight",
}

// arrayConstructor takes the mapping function as second argument, as in Array.from(items, fn).
const arrayConstructor = "Array"

// iteration handles the callback of an iteration method, like data.map(x => <h1>{x}</h1>).
func (c checker) iteration(call *sitter.Node) []syntax.Range {
	fn := c.callback(call)
	if fn == nil {
		return nil
	}

	body := syntax.Field(fn, "body")
	if body == nil {
		return nil
	}

	insideJSX := syntax.InsideJSXChild(call)

	if body.Type() == syntax.StatementBlock {
		return c.functionBody(body, insideJSX)
	}

	if fn.Type() != syntax.ArrowFunction {
		return nil
	}

	ranges, _ := c.candidate(body, insideJSX)

	return ranges
}

// callback returns the function expression passed to a recognized iteration method, or nil.
func (c checker) callback(call *sitter.Node) *sitter.Node {
	method, receiver, ok := c.memberName(syntax.Field(call, "function"))
	if !ok || !slices.Contains(iterationMethods, method) {
		return nil
	}

	index := 0
	if receiver.Type() == syntax.Identifier && syntax.Text(receiver, c.src) == arrayConstructor {
		index = 1
	}

	args := syntax.Field(call, "arguments")
	if args == nil || args.Type() != syntax.Arguments {
		return nil // tagged template
	}

	fn := syntax.NamedChildAt(args, index)
	if fn == nil || !syntax.IsFunction(fn) {
		return nil
	}

	return fn
}

// memberName returns the static member name and the object of a member access.
// Computed access counts only with a string literal, as in data["map"].
func (c checker) memberName(callee *sitter.Node) (name string, object *sitter.Node, ok bool) {
	object = syntax.Field(callee, "object")
	if object == nil {
		return "", nil, false
	}

	switch callee.Type() {
	case syntax.MemberExpression:
		property := syntax.Field(callee, "property")
		if property == nil {
			return "", nil, false
		}

		return syntax.Text(property, c.src), object, true

	case syntax.SubscriptExpression:
		name, ok := syntax.StringValue(syntax.Field(callee, "index"), c.src)

		return name, object, ok
	}

	return "", nil, false
}
