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

// Package redundantalt reports img elements whose alt text repeats that the element is an image.
//
// Screen readers already announce img elements as images:
//
//	<img src="src" alt="photo content" />;   // flagged
//	<img src="src" alt="A cat" />;
//
// Elements hidden with aria-hidden are ignored.
package redundantalt

import (
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/rule"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Name is the rule name.
const Name = "noRedundantAlt"

const (
	category = "lint/a11y/noRedundantAlt"
	message  = `Avoid the words "image", "picture", or "photo" in img element alt text.`
	note     = `Screen readers announce img elements as "images", so it is not necessary to redeclare this in alternative text.`
)

var redundantWords = []string{"image", "photo", "picture"}

// Rule is the [rule.Rule] reporting redundant alt texts.
type Rule struct{}

// New creates the rule.
func New() Rule { return Rule{} }

// Name implements [rule.Rule].
func (Rule) Name() string { return Name }

// Kinds implements [rule.Rule].
func (Rule) Kinds() []string {
	return []string{syntax.JSXOpeningElement, syntax.JSXSelfClosingElement}
}

// Check implements [rule.Rule].
func (Rule) Check(c rule.Context, n *sitter.Node) []rule.Diagnostic {
	value, ok := check(n, c.File.Src)
	if !ok {
		return nil
	}

	return []rule.Diagnostic{{
		Rule:     Name,
		Category: category,
		Range:    syntax.RangeOf(value),
		Message:  message,
		Notes:    []string{note},
		Severity: rule.Error,
	}}
}

// check returns the value of a redundant alt attribute of an img element.
func check(element *sitter.Node, src []byte) (*sitter.Node, bool) {
	if name := syntax.Field(element, "name"); name == nil || syntax.Text(name, src) != "img" {
		return nil, false
	}

	if hidden, ok := attribute(element, "aria-hidden", src); ok && !isFalse(hidden, src) {
		return nil, false
	}

	alt, ok := attribute(element, "alt", src)
	if !ok || alt == nil {
		return nil, false
	}

	for _, text := range altTexts(alt, src) {
		if isRedundant(text) {
			return alt, true
		}
	}

	return nil, false
}

// attribute returns the value of the named attribute. The value is nil for an attribute without value.
func attribute(element *sitter.Node, name string, src []byte) (*sitter.Node, bool) {
	for attr := range syntax.NamedChildren(element) {
		if attr.Type() != syntax.JSXAttribute {
			continue
		}

		if n := syntax.FirstNamedChild(attr); n == nil || syntax.Text(n, src) != name {
			continue
		}

		return syntax.NamedChildAt(attr, 1), true
	}

	return nil, false
}

// isFalse reports whether an aria-hidden value is "false" or {false}. A bare attribute is true.
func isFalse(value *sitter.Node, src []byte) bool {
	if value == nil {
		return false
	}

	switch value.Type() {
	case syntax.String:
		s, ok := syntax.StringValue(value, src)

		return ok && s == "false"

	case syntax.JSXExpression:
		expr := syntax.FirstNamedChild(value)

		return expr != nil && expr.Type() == syntax.False
	}

	return false
}

// altTexts returns the static texts of an alt value: the contents of a string,
// or the chunks of a template literal between substitutions.
func altTexts(value *sitter.Node, src []byte) []string {
	switch value.Type() {
	case syntax.String:
		if s, ok := syntax.StringValue(value, src); ok {
			return []string{s}
		}

	case syntax.JSXExpression:
		expr := syntax.FirstNamedChild(value)
		if expr == nil {
			return nil
		}

		switch expr.Type() {
		case syntax.String:
			if s, ok := syntax.StringValue(expr, src); ok {
				return []string{s}
			}

		case syntax.TemplateString:
			return templateChunks(expr, src)
		}
	}

	return nil
}

func templateChunks(tmpl *sitter.Node, src []byte) []string {
	var chunks []string

	start, end := tmpl.StartByte()+1, tmpl.EndByte()-1 // backticks
	for sub := range syntax.NamedChildren(tmpl) {
		if sub.Type() != syntax.TemplateSubstitution {
			continue
		}

		chunks = append(chunks, syntax.Range{Start: start, End: sub.StartByte()}.Text(src))
		start = sub.EndByte()
	}

	return append(chunks, syntax.Range{Start: start, End: end}.Text(src))
}

// isRedundant matches the words ASCII case-insensitively.
func isRedundant(alt string) bool {
	for _, field := range strings.Fields(alt) {
		if slices.Contains(redundantWords, strings.Map(asciiLower, field)) {
			return true
		}
	}

	return false
}

func asciiLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
