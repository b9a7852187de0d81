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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the project configuration file.
const FileName = "jsxkey.toml"

// ErrUnknownKeys is returned when a configuration file contains keys that are not understood.
var ErrUnknownKeys = errors.New("unknown configuration keys")

// File is the content of a project configuration file. Unset values keep their defaults.
//
//	generated = false
//	ignore = ["dist/*", "*.min.js"]
//
//	[rules.useJsxKeyInIterable]
//	enabled = true
//	checkShorthandFragments = true
//
//	[rules.noRedundantAlt]
//	enabled = false
type File struct {
	Generated *bool     `toml:"generated"`
	Ignore    []string  `toml:"ignore"`
	Rules     RuleTable `toml:"rules"`
}

// RuleTable configures the individual rules.
type RuleTable struct {
	KeyInIterable KeyInIterableTable `toml:"useJsxKeyInIterable"`
	RedundantAlt  RuleSwitch         `toml:"noRedundantAlt"`
}

// RuleSwitch configures a rule without options.
type RuleSwitch struct {
	Enabled *bool `toml:"enabled"`
}

// KeyInIterableTable configures the useJsxKeyInIterable rule.
type KeyInIterableTable struct {
	Enabled                 *bool `toml:"enabled"`
	CheckShorthandFragments *bool `toml:"checkShorthandFragments"`
}

// Find looks for a configuration file in dir and its parents, up to the first directory containing go.mod.
// The boolean result is false when there is none.
func Find(dir string) (string, bool, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}

	for {
		name := filepath.Join(dir, FileName)

		switch ok, err := exists(name); {
		case err != nil:
			return "", false, err

		case ok:
			return name, true, nil
		}

		if root, err := exists(filepath.Join(dir, "go.mod")); err != nil || root {
			return "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

func exists(name string) (bool, error) {
	switch _, err := os.Stat(name); {
	case err == nil:
		return true, nil

	case errors.Is(err, fs.ErrNotExist):
		return false, nil

	default:
		return false, err
	}
}

// Load reads a configuration file. Keys not matching a [File] field are an error.
func Load(name string) (*File, error) {
	var f File

	md, err := toml.DecodeFile(name, &f)
	if err != nil {
		return nil, fmt.Errorf("can't read configuration: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("%s: %w: %s", name, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Apply overrides rules and behavior with the values set in the file.
func (f *File) Apply(rules *Rules, behavior *Behavior) {
	set(rules, KeyInIterable, f.Rules.KeyInIterable.Enabled)
	set(rules, RedundantAlt, f.Rules.RedundantAlt.Enabled)

	set(behavior, IncludeGenerated, f.Generated)
	set(behavior, CheckShorthandFragments, f.Rules.KeyInIterable.CheckShorthandFragments)
}

func set[T Flag](b *BitMask[T], flag T, value *bool) {
	if value != nil {
		b.Set(flag, *value)
	}
}
