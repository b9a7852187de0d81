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

package analyzer_test

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/jsxkey/analyzer"
	"fillmore-labs.com/jsxkey/internal/config"
)

const app = `export const List = ({ items }) => (
  <ul>
    {items.map((item) => <li>{item}</li>)}
  </ul>
);
export const Keyed = ({ items }) => items.map((item) => <li key={item}>{item}</li>);
export const Ignored = ({ items }) => items.map((item) => <li>{item}</li>); // nolint:jsxkey
export const Photo = () => <img src="a.png" alt="a photo" />;
`

var files = map[string]string{
	"go.mod":            "module example.com/web\n",
	"pkg.go":            "package web\n",
	"App.tsx":           app,
	"gen.tsx":           "// Code generated by tool. DO NOT EDIT.\n\nexport const g = [<A />];\n",
	"types.d.ts":        "declare const x: number;\n",
	"sub/sub.go":        "package sub\n",
	"sub/other.tsx":     "export const o = [<A />];\n",
	"static/list.js":    "export const l = [React.createElement('li')];\n",
	"node_modules/x.js": "export const n = [<A />];\n",
}

func setup(t *testing.T, extra map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		writeFile(t, dir, name, content)
	}

	for name, content := range extra {
		writeFile(t, dir, name, content)
	}

	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func runAnalyzer(t *testing.T, a *analysis.Analyzer, dir string, goFiles ...string) ([]string, error) {
	t.Helper()

	fset := token.NewFileSet()

	var parsed []*ast.File

	for _, name := range goFiles {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", name, err)
		}

		parsed = append(parsed, f)
	}

	var got []string

	p := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    parsed,
		Pkg:      types.NewPackage("example.com/web", "web"),
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)
			rel, _ := filepath.Rel(dir, pos.Filename)
			got = append(got, fmt.Sprintf("%s:%d %s", filepath.ToSlash(rel), pos.Line, d.Category))
		},
	}

	_, err := a.Run(p)

	slices.Sort(got)

	return got, err
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	const (
		keyInIterable = "lint/correctness/useJsxKeyInIterable"
		redundantAlt  = "lint/a11y/noRedundantAlt"
	)

	tests := []struct {
		name    string
		options Option
		extra   map[string]string
		want    []string
	}{
		{
			name: "Default",
			want: []string{
				"App.tsx:3 " + keyInIterable,
				"App.tsx:8 " + redundantAlt,
				"static/list.js:1 " + keyInIterable,
			},
		},
		{
			name:    "Generated",
			options: Options{WithGenerated(true), WithRedundantAlt(false)},
			want: []string{
				"App.tsx:3 " + keyInIterable,
				"gen.tsx:3 " + keyInIterable,
				"static/list.js:1 " + keyInIterable,
			},
		},
		{
			name:    "RedundantAltOnly",
			options: WithKeyInIterable(false),
			want:    []string{"App.tsx:8 " + redundantAlt},
		},
		{
			name: "ConfigFile",
			extra: map[string]string{
				config.FileName: "ignore = [\"static\"]\n\n[rules.noRedundantAlt]\nenabled = false\n",
			},
			want: []string{"App.tsx:3 " + keyInIterable},
		},
		{
			name:    "ConfigFileOverridesOptions",
			options: Options{WithKeyInIterable(false), WithShorthandFragments(true)},
			extra: map[string]string{
				config.FileName:  "[rules.useJsxKeyInIterable]\nenabled = true\n\n[rules.noRedundantAlt]\nenabled = false\n",
				"static/list.js": "export const l = items.map((x) => <>{x}</>);\n",
			},
			want: []string{"App.tsx:3 " + keyInIterable, "static/list.js:1 " + keyInIterable},
		},
		{
			name: "Disabled",
			options: Options{
				WithKeyInIterable(false),
				WithRedundantAlt(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			dir := setup(t, tt.extra)
			a := New(tt.options)

			// when
			got, err := runAnalyzer(t, a, dir, "pkg.go")
			// then
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got diagnostics %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzerExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{"conf/jsxkey.toml": "[rules.useJsxKeyInIterable]\nenabled = false\n"})
	a := New(WithConfigFile(filepath.Join(dir, "conf", "jsxkey.toml")))

	got, err := runAnalyzer(t, a, dir, "pkg.go")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if want := []string{"App.tsx:8 lint/a11y/noRedundantAlt"}; !slices.Equal(got, want) {
		t.Errorf("Got diagnostics %q, expected %q", got, want)
	}
}

func TestAnalyzerUnknownKeys(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{config.FileName: "[rules.useJsxKeyInIterables]\nenabled = false\n"})

	_, err := runAnalyzer(t, New(), dir, "pkg.go")
	if !errors.Is(err, config.ErrUnknownKeys) {
		t.Errorf("Got error %v, expected %v", err, config.ErrUnknownKeys)
	}
}

func TestAnalyzerTestVariant(t *testing.T) {
	t.Parallel()

	dir := setup(t, map[string]string{"pkg_test.go": "package web\n"})

	got, err := runAnalyzer(t, New(), dir, "pkg.go", "pkg_test.go")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Got diagnostics %q for test variant", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithGenerated(true), nil, Options{WithConfigFile("jsxkey.toml")}}

	var out strings.Builder

	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.Info("test", opts.LogAttr())

	const want = "level=INFO msg=test options.generated=true options.nil=<nil> options.config=jsxkey.toml\n"
	if got := out.String(); got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
