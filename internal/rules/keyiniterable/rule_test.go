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

package keyiniterable_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/jsxkey/internal/rule"
	. "fillmore-labs.com/jsxkey/internal/rules/keyiniterable"
	"fillmore-labs.com/jsxkey/internal/semantic"
	"fillmore-labs.com/jsxkey/internal/syntax"
	"fillmore-labs.com/jsxkey/internal/testsource"
)

func check(t *testing.T, src string, options Options) []string {
	t.Helper()

	f := testsource.Parse(t, src)
	c := rule.Context{File: f, Model: semantic.Build(f)}

	diagnostics := rule.Run(c, []rule.Rule{New(options)})

	ranges := make([]syntax.Range, 0, len(diagnostics))
	for _, d := range diagnostics {
		ranges = append(ranges, d.Range)
	}

	return testsource.Texts(f.Src, ranges)
}

func TestRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "array_literal",
			src:  `[<Hello />, <Hello />];`,
			want: []string{"<Hello />", "<Hello />"},
		},
		{
			name: "array_literal_keyed",
			src:  `[<Hello key="a" />, <Hello key={b} />];`,
		},
		{
			name: "spread_is_no_key",
			src:  `[<Hello key="a" />, <Hello {...props} />];`,
			want: []string{"<Hello {...props} />"},
		},
		{
			name: "array_spread_element",
			src:  `[...items, <A />];`,
			want: []string{"<A />"},
		},
		{
			name: "array_with_comment",
			src:  `[/* first */ <A />];`,
			want: []string{"<A />"},
		},
		{
			name: "map_element",
			src:  `data.map((x) => <Hello>{x}</Hello>);`,
			want: []string{"<Hello>"},
		},
		{
			name: "map_element_keyed",
			src:  `data.map((x) => <Hello key={x.id}>{x}</Hello>);`,
		},
		{
			name: "unknown_method",
			src:  `data.customMethod((x) => <Hello />);`,
		},
		{
			name: "computed_method",
			src:  `data["map"]((x) => <A />);`,
			want: []string{"<A />"},
		},
		{
			name: "parenthesized",
			src:  `data.map((x) => ((<A />)));`,
			want: []string{"<A />"},
		},
		{
			name: "ternary",
			src:  `data.map((x) => (x ? <A /> : <B />));`,
			want: []string{"<A />", "<B />"},
		},
		{
			name: "ternary_one_keyed",
			src:  `data.map((x) => (x ? <A key={x} /> : <B />));`,
			want: []string{"<B />"},
		},
		{
			name: "ternary_non_element",
			src:  `data.map((x) => (x ? null : <B />));`,
			want: []string{"<B />"},
		},
		{
			name: "array_from",
			src:  `Array.from(data, (x) => <A />);`,
			want: []string{"<A />"},
		},
		{
			name: "array_from_without_mapper",
			src:  `Array.from(data);`,
		},
		{
			name: "function_expression",
			src:  `data.forEach(function (x) { return <A />; });`,
			want: []string{"<A />"},
		},
		{
			name: "if_else",
			src: `data.map(function (x) {
				if (x) {
					return <A />;
				} else {
					return <B />;
				}
			});`,
			want: []string{"<A />", "<B />"},
		},
		{
			name: "if_non_block_branch",
			src: `data.map((x) => {
				if (x) return <A />;
				else {
					return <B />;
				}
			});`,
			want: []string{"<B />"},
		},
		{
			name: "switch",
			src: `data.map((x) => {
				switch (x) {
				case 1:
					return <A />;
				default:
					return <B key="b" />;
				}
			});`,
			want: []string{"<A />"},
		},
		{
			name: "unused_declaration",
			src: `data.map((x) => {
				const unused = <A />;
				return null;
			});`,
			want: []string{"<A />"},
		},
		{
			name: "keyed_first_return",
			src: `data.map((x) => {
				const el = <A />;
				return <B key={x} />;
			});`,
		},
		{
			name: "declaration_and_return",
			src: `data.map((x) => {
				let a = <A />, b;
				return <B />;
			});`,
			want: []string{"<A />", "<B />"},
		},
		{
			name: "nested_markup",
			src:  `data.map((x) => <Wrapper key={x}>{inner.map((y) => <Item />)}</Wrapper>);`,
			want: []string{"<Item />"},
		},
		{
			name: "nested_child_not_checked",
			src:  `data.map((x) => <Wrapper key={x}><Item /></Wrapper>);`,
		},
		{
			name: "array_inside_markup",
			src:  `<ul>{[<li />, <li key="b" />]}</ul>;`,
			want: []string{"<li />"},
		},
		{
			name: "fragment",
			src:  `data.map((x) => <>{x}</>);`,
		},
		{
			name: "create_element_keyed",
			src:  `import React from "react"; data.map((x) => React.createElement("li", { key: x }));`,
		},
		{
			name: "create_element_string_key",
			src:  `import React from "react"; data.map((x) => React.createElement("li", { "key": x }));`,
		},
		{
			name: "create_element_without_props",
			src:  `import React from "react"; data.map((x) => React.createElement("li"));`,
			want: []string{`("li")`},
		},
		{
			name: "create_element_empty_props",
			src:  `import * as React from "react"; data.map((x) => React.createElement("li", {}));`,
			want: []string{`("li", {})`},
		},
		{
			name: "create_element_spread_props",
			src:  `import React from "react"; data.map((x) => React.createElement("li", { ...x }));`,
			want: []string{`("li", { ...x })`},
		},
		{
			name: "create_element_computed_key",
			src:  `import React from "react"; data.map((x) => React.createElement("li", { ["key"]: x }));`,
			want: []string{`("li", { ["key"]: x })`},
		},
		{
			name: "create_element_identifier_props",
			src:  `import React from "react"; data.map((x) => React.createElement("li", props));`,
			want: []string{`("li", props)`},
		},
		{
			name: "clone_element_global",
			src:  `data.map((x) => React.cloneElement(x));`,
			want: []string{`(x)`},
		},
		{
			name: "named_import_shorthand_key",
			src:  `import { createElement } from "react"; data.map((key) => createElement("li", { key }));`,
		},
		{
			name: "named_import_aliased",
			src:  `import { createElement as h } from "react"; data.map((x) => h("li"));`,
			want: []string{`("li")`},
		},
		{
			name: "other_library",
			src:  `import { createElement } from "./dom"; data.map((x) => createElement("li"));`,
		},
		{
			name: "shadowed_global",
			src:  `const React = {}; data.map((x) => React.createElement("li"));`,
		},
		{
			name: "callback_parameter_shadows_react",
			src:  `data.map((React) => React.createElement("li"));`,
		},
		{
			name: "parameter_shadows_named_import",
			src:  `import { createElement } from "react"; function f(createElement) { return data.map((x) => createElement("li")); }`,
		},
		{
			name: "local_declaration_shadows_react",
			src:  `function f() { const React = {}; return data.map(x => React.createElement("li")); }`,
		},
		{
			name: "shadowing_in_sibling_function",
			src:  `import React from "react"; function f(React) {} data.map((x) => React.createElement("li"));`,
			want: []string{`("li")`},
		},
		{
			name: "factory_inside_markup",
			src:  `import React from "react"; <ul>{[React.createElement("li")]}</ul>;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got := check(t, tt.src, Options{})

			// then
			if !slices.Equal(got, tt.want) {
				t.Errorf("Got flagged %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestShorthandFragments(t *testing.T) {
	t.Parallel()

	const src = `data.map((x) => <>{x}</>);`

	tests := []struct {
		name    string
		options Options
		want    []string
	}{
		{"default", Options{}, nil},
		{"check", Options{CheckShorthandFragments: true}, []string{"<>{x}</>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := check(t, src, tt.options)

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got flagged %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	// given
	f := testsource.Parse(t, `data.map((x) => (x ? <A /> : <B key="b" />));`)
	call := testsource.Find(t, f, syntax.CallExpression, "")
	model := semantic.Build(f)

	// when
	first := Run(call, f.Src, model, Options{})
	second := Run(call, f.Src, model, Options{})

	// then
	if !slices.Equal(first, second) {
		t.Errorf("Got %v on second run, expected %v", second, first)
	}

	if got := testsource.Texts(f.Src, first); !slices.Equal(got, []string{"<A />"}) {
		t.Errorf("Got flagged %q, expected %q", got, []string{"<A />"})
	}
}

func TestScanEmbeddedExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "conditional",
			src:  `<ul>{x ? <A /> : <B key="b" />}</ul>;`,
			want: []string{"<A />"},
		},
		{
			name: "element",
			src:  `<ul>{<li>a</li>}</ul>;`,
			want: []string{"<li>"},
		},
		{
			name: "factory_call",
			src:  `import React from "react"; <ul>{React.createElement("li")}</ul>;`,
		},
		{
			name: "plain_value",
			src:  `<ul>{x}</ul>;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			f := testsource.Parse(t, tt.src)
			expr := testsource.Find(t, f, syntax.JSXExpression, "")

			// when
			ranges := Scan(expr, f.Src, semantic.Build(f), Options{})

			// then
			if got := testsource.Texts(f.Src, ranges); !slices.Equal(got, tt.want) {
				t.Errorf("Got flagged %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRunOtherKinds(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `const x = <A />;`)
	element := testsource.Find(t, f, syntax.JSXSelfClosingElement, "")

	if got := Run(element, f.Src, nil, Options{}); got != nil {
		t.Errorf("Got %v for an element, expected nothing", got)
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	d := Diagnostic(syntax.Range{Start: 1, End: 5})

	if d.Rule != Name {
		t.Errorf("Got rule %q, expected %q", d.Rule, Name)
	}

	if got, want := d.Category, "lint/correctness/useJsxKeyInIterable"; got != want {
		t.Errorf("Got category %q, expected %q", got, want)
	}

	if got, want := d.Severity.String(), "error"; got != want {
		t.Errorf("Got severity %q, expected %q", got, want)
	}

	if len(d.Notes) != 2 {
		t.Errorf("Got %d notes, expected 2", len(d.Notes))
	}
}
