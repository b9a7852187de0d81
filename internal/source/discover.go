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

// Package source discovers the frontend source files belonging to a Go package directory.
package source

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// skipDirs are never descended into.
var skipDirs = []string{"node_modules", "testdata", "vendor"}

// IsSource reports whether name is a JavaScript or TypeScript source file the rules check.
// Declaration files are excluded.
func IsSource(name string) bool {
	if strings.HasSuffix(strings.ToLower(name), ".d.ts") {
		return false
	}

	_, ok := syntax.Language(name)

	return ok
}

// Discover returns the source files in dir and in subdirectories that are not Go packages
// themselves, in lexical order.
//
// Hidden directories, directories starting with an underscore and the well known dependency
// directories are skipped, as are paths matching one of the ignore patterns. Patterns use
// [path.Match] syntax and are matched against the slash-separated path relative to dir
// and against the base name.
func Discover(dir string, ignore []string) ([]string, error) {
	for _, pattern := range ignore {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
	}

	var files []string

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}

			if skipDir(d.Name()) || ignored(rel, d.Name(), ignore) {
				return fs.SkipDir
			}

			goPackage, err := containsGoFiles(p)
			if err != nil {
				return err
			}

			if goPackage {
				return fs.SkipDir // checked with its own package
			}

			return nil
		}

		if !d.Type().IsRegular() || !IsSource(d.Name()) || ignored(rel, d.Name(), ignore) {
			return nil
		}

		files = append(files, p)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't discover sources in %s: %w", dir, err)
	}

	return files, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || slices.Contains(skipDirs, name)
}

func ignored(rel, base string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}

	return false
}

func containsGoFiles(dir string) (bool, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return false, err
	}

	return len(matches) > 0, nil
}
