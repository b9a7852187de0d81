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

// Package testsource provides utilities for parsing JavaScript and TypeScript source in tests.
//
// It is designed to simplify testing of the rules by handling the parser setup
// and the lookup of nodes by kind and source text.
package testsource

import (
	"slices"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Filename is the name source fragments are parsed under, selecting the TSX grammar.
const Filename = "test.tsx"

// Parse parses a source fragment as TSX.
// The parse tree is released when the test completes.
func Parse(tb testing.TB, src string) *syntax.File {
	tb.Helper()

	return ParseFile(tb, Filename, src)
}

// ParseFile parses source with the grammar selected by the file name.
func ParseFile(tb testing.TB, name, src string) *syntax.File {
	tb.Helper()

	f, err := syntax.Parse(tb.Context(), name, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(f.Close)

	if f.Root().HasError() {
		tb.Fatalf("Source %q has syntax errors: %s", src, f.Root().String())
	}

	return f
}

// Find returns the first node of the given kind whose source text is text.
// An empty text matches the first node of that kind.
func Find(tb testing.TB, f *syntax.File, kind, text string) *sitter.Node {
	tb.Helper()

	for n := range syntax.Preorder(f.Root(), kind) {
		if text == "" || syntax.Text(n, f.Src) == text {
			return n
		}
	}

	tb.Fatalf("Can't find %s %q", kind, text)

	return nil
}

// All returns every node of the given kind in source order.
func All(f *syntax.File, kind string) []*sitter.Node {
	return slices.Collect(syntax.Preorder(f.Root(), kind))
}

// Texts returns the source texts of ranges, ordered by position.
func Texts(src []byte, ranges []syntax.Range) []string {
	ranges = slices.SortedFunc(slices.Values(ranges), syntax.Range.Compare)

	texts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		texts = append(texts, r.Text(src))
	}

	return texts
}
