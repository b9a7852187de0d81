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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/jsxkey/internal/config"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	// given
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/web\n")
	writeFile(t, filepath.Join(root, FileName), "")
	writeFile(t, filepath.Join(root, "web", "nested", "x.go"), "package nested\n")

	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, FileName), "")
	writeFile(t, filepath.Join(outside, "mod", "go.mod"), "module example.com/mod\n")

	tests := []struct {
		name string
		dir  string
		want string
		ok   bool
	}{
		{"same", root, filepath.Join(root, FileName), true},
		{"parent", filepath.Join(root, "web", "nested"), filepath.Join(root, FileName), true},
		{"module_root", filepath.Join(outside, "mod"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got, ok, err := Find(tt.dir)
			// then
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}

			if got != tt.want || ok != tt.ok {
				t.Errorf("Got %q, %t, expected %q, %t", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	// given
	name := filepath.Join(t.TempDir(), FileName)
	writeFile(t, name, `
generated = true
ignore = ["dist/*"]

[rules.useJsxKeyInIterable]
checkShorthandFragments = true

[rules.noRedundantAlt]
enabled = false
`)

	// when
	f, err := Load(name)
	// then
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !slices.Equal(f.Ignore, []string{"dist/*"}) {
		t.Errorf("Got ignore %q", f.Ignore)
	}

	rules, behavior := DefaultRules(), DefaultBehavior()
	f.Apply(&rules, &behavior)

	if !rules.Enabled(KeyInIterable) {
		t.Error("Expected useJsxKeyInIterable to stay enabled")
	}

	if rules.Enabled(RedundantAlt) {
		t.Error("Expected noRedundantAlt to be disabled")
	}

	if !behavior.Enabled(IncludeGenerated) || !behavior.Enabled(CheckShorthandFragments) {
		t.Errorf("Got behavior %+v", behavior)
	}
}

func TestLoadUnknownKeys(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), FileName)
	writeFile(t, name, "[rules.useJsxKeyInIterable]\ncheckFragments = true\n")

	if _, err := Load(name); !errors.Is(err, ErrUnknownKeys) {
		t.Errorf("Got error %v, expected %v", err, ErrUnknownKeys)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), FileName)
	writeFile(t, name, "generated = \n")

	if _, err := Load(name); err == nil {
		t.Error("Expected error for invalid file")
	}
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(KeyInIterable)
	b.Set(RedundantAlt, true)
	b.Disable(KeyInIterable)

	if b.Enabled(KeyInIterable) || !b.Enabled(RedundantAlt) {
		t.Errorf("Got %+v", b)
	}
}
