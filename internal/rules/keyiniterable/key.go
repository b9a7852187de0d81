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

// keyName is the identity attribute of an element and the identity property of element props.
const keyName = "key"

// hasKeyAttribute reports whether an opening or self-closing element has a statically named key attribute.
// Spread attributes never count.
func (c checker) hasKeyAttribute(element *sitter.Node) bool {
	for attr := range syntax.NamedChildren(element) {
		if attr.Type() != syntax.JSXAttribute {
			continue
		}

		if name := syntax.FirstNamedChild(attr); name != nil && syntax.Text(name, c.src) == keyName {
			return true
		}
	}

	return false
}

// hasKeyProperty reports whether an object literal has a statically named key property.
// Spread and computed properties never count.
func (c checker) hasKeyProperty(props *sitter.Node) bool {
	for prop := range syntax.NamedChildren(props) {
		switch prop.Type() {
		case syntax.Pair:
			if name, ok := c.staticPropertyName(syntax.Field(prop, "key")); ok && name == keyName {
				return true
			}

		case syntax.ShorthandPropertyIdentifier:
			if syntax.Text(prop, c.src) == keyName {
				return true
			}
		}
	}

	return false
}

func (c checker) staticPropertyName(key *sitter.Node) (string, bool) {
	if key == nil {
		return "", false
	}

	switch key.Type() {
	case syntax.PropertyIdentifier, syntax.Number:
		return syntax.Text(key, c.src), true

	case syntax.String:
		return syntax.StringValue(key, c.src)
	}

	return "", false
}
