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

package source_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/jsxkey/internal/source"
)

func TestIsSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"App.tsx", true},
		{"index.js", true},
		{"types.d.ts", false},
		{"main.go", false},
		{"styles.css", false},
	}

	for _, tt := range tests {
		if got := IsSource(tt.name); got != tt.want {
			t.Errorf("Got %t for %s, expected %t", got, tt.name, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	// given
	dir := t.TempDir()

	for _, name := range []string{
		"pkg.go",
		"App.tsx",
		"types.d.ts",
		"README.md",
		"web/list.jsx",
		"web/gen/list.gen.js",
		"web/.cache/hidden.js",
		"_old/legacy.js",
		"node_modules/react/index.js",
		"sub/sub.go",
		"sub/sub.tsx",
	} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// when
	files, err := Discover(dir, []string{"*.gen.js"})
	// then
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		got = append(got, filepath.ToSlash(rel))
	}

	if want := []string{"App.tsx", "web/list.jsx"}; !slices.Equal(got, want) {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestDiscoverInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := Discover(t.TempDir(), []string{"["}); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}
