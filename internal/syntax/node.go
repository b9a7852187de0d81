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

package syntax

import (
	"iter"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
)

// Range is a half-open byte range [Start, End) into a source file.
type Range struct {
	Start, End uint32
}

// RangeOf returns the source range of a node.
func RangeOf(n *sitter.Node) Range {
	return Range{Start: n.StartByte(), End: n.EndByte()}
}

// Text returns the source text of the range.
func (r Range) Text(src []byte) string {
	if int(r.End) > len(src) || r.Start > r.End {
		return ""
	}

	return string(src[r.Start:r.End])
}

// Compare orders ranges by start, then by end offset.
func (r Range) Compare(o Range) int {
	switch {
	case r.Start < o.Start:
		return -1
	case r.Start > o.Start:
		return 1
	case r.End < o.End:
		return -1
	case r.End > o.End:
		return 1
	}

	return 0
}

// Text returns the source text of a node.
func Text(n *sitter.Node, src []byte) string {
	return n.Content(src)
}

// NamedChildren yields the named children of a node, skipping comments.
func NamedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || c.Type() == Comment {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// NamedChildAt returns the named non-comment child at index, or nil.
func NamedChildAt(n *sitter.Node, index int) *sitter.Node {
	for c := range NamedChildren(n) {
		if index == 0 {
			return c
		}
		index--
	}

	return nil
}

// FirstNamedChild returns the first named non-comment child, or nil.
func FirstNamedChild(n *sitter.Node) *sitter.Node {
	return NamedChildAt(n, 0)
}

// ChildOfKind returns the first named child of the given kind, or nil.
func ChildOfKind(n *sitter.Node, kind string) *sitter.Node {
	for c := range NamedChildren(n) {
		if c.Type() == kind {
			return c
		}
	}

	return nil
}

// Field returns the child for a field name, or nil.
func Field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}

	return n.ChildByFieldName(name)
}

// Unparen strips enclosing parentheses.
// It returns nil when a parenthesized expression has no inner expression.
func Unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == ParenthesizedExpression {
		n = FirstNamedChild(n)
	}

	return n
}

// SameNode reports whether a and b denote the same node of one tree.
func SameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// InsideJSXChild reports whether n is the expression of an embedded expression child of a JSX element,
// as opposed to an attribute value or plain code.
func InsideJSXChild(n *sitter.Node) bool {
	p := n.Parent()
	if p == nil || p.Type() != JSXExpression {
		return false
	}

	gp := p.Parent()

	return gp != nil && gp.Type() == JSXElement
}

// IsFunction reports whether n is a function or arrow function expression.
func IsFunction(n *sitter.Node) bool {
	switch n.Type() {
	case FunctionExpression, Function, ArrowFunction:
		return true
	}

	return false
}

// StringValue returns the contents of a string literal without its quotes.
func StringValue(n *sitter.Node, src []byte) (string, bool) {
	if n == nil || n.Type() != String {
		return "", false
	}

	s := Text(n, src)
	if len(s) < 2 {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// Preorder yields the nodes below and including root whose kind is one of kinds, in depth-first preorder.
// With no kinds, every named node is yielded.
func Preorder(root *sitter.Node, kinds ...string) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if root == nil {
			return
		}

		stack := []*sitter.Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(kinds) == 0 || slices.Contains(kinds, n.Type()) {
				if !yield(n) {
					return
				}
			}

			for i := int(n.NamedChildCount()) - 1; i >= 0; i-- {
				if c := n.NamedChild(i); c != nil {
					stack = append(stack, c)
				}
			}
		}
	}
}
