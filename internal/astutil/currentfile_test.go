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

package astutil_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/jsxkey/internal/astutil"
	"fillmore-labs.com/jsxkey/internal/syntax"
	"fillmore-labs.com/jsxkey/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"// nolint:jsxkey", true},
		{"//nolint:all", true},
		{"/* nolint:useJsxKeyInIterable */", true},
		{"// nolint:usejsxkeyiniterable", true},
		{"// nolint:gosec,JSXKEY", true},
		{"// nolint:noRedundantAlt", false},
		{"// nolint:gosec", false},
		{"// nolint", false},
		{"// some nolint:jsxkey", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.text, "useJsxKeyInIterable"); got != tt.want {
			t.Errorf("Got %t for %q, expected %t", got, tt.text, tt.want)
		}
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	// given
	const src = "[<A />]; // nolint:jsxkey\n" +
		"[<B />]; // unrelated\n" +
		"[<C />];\n" +
		"// nolint:jsxkey\n" +
		"[<D />]; /* first */ /* nolint:all */\n"

	f := testsource.Parse(t, src)
	fset := token.NewFileSet()
	cf := NewCurrentFile(fset, f.Name, f.Src, f.Comments(), f.Generated())

	tests := []struct {
		element string
		want    bool
	}{
		{"<A />", true},
		{"<B />", false},
		{"<C />", false},
		{"<D />", true},
	}

	for _, tt := range tests {
		n := testsource.Find(t, f, syntax.JSXSelfClosingElement, tt.element)

		// when
		got := cf.NoLintComment(n.StartByte(), "useJsxKeyInIterable")

		// then
		if got != tt.want {
			t.Errorf("Got %t for %s, expected %t", got, tt.element, tt.want)
		}
	}
}

func TestCurrentFilePositions(t *testing.T) {
	t.Parallel()

	src := []byte("a\nbc\n")
	fset := token.NewFileSet()
	cf := NewCurrentFile(fset, "web/app.js", src, nil, true)

	if !cf.Valid() || !cf.Generated() || cf.Name() != "web/app.js" {
		t.Fatalf("Got invalid file %+v", cf)
	}

	var rng analysis.Range = cf.Range(syntax.Range{Start: 2, End: 4})

	if got := fset.Position(rng.Pos()); got.Line != 2 || got.Column != 1 {
		t.Errorf("Got position %v, expected 2:1", got)
	}

	if !cf.Contains(syntax.Range{Start: 0, End: 5}) || cf.Contains(syntax.Range{Start: 3, End: 6}) {
		t.Error("Unexpected range containment")
	}
}
