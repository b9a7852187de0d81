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

	"fillmore-labs.com/jsxkey/internal/semantic"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// factories are the React exports creating elements from a type and props.
var factories = []string{"cloneElement", "createElement"}

// factory checks a React.createElement or React.cloneElement call for a key in its props.
// Calls of other functions yield no result.
func (c checker) factory(call *sitter.Node) (syntax.Range, bool) {
	if !c.isFactory(syntax.Field(call, "function")) {
		return syntax.Range{}, false
	}

	args := syntax.Field(call, "arguments")
	if args == nil || args.Type() != syntax.Arguments {
		return syntax.Range{}, false
	}

	props := syntax.Unparen(syntax.NamedChildAt(args, 1))
	if props != nil && props.Type() == syntax.Object && c.hasKeyProperty(props) {
		return syntax.Range{}, false
	}

	// Missing or non-literal props count as no key
	return syntax.RangeOf(args), true
}

func (c checker) isFactory(callee *sitter.Node) bool {
	if c.resolver == nil || callee == nil {
		return false
	}

	target, ok := c.resolver.ResolveCallTarget(callee)

	return ok && target.Library == semantic.React && slices.Contains(factories, target.Export)
}
