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

package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/jsxkey/internal/astutil"
	"fillmore-labs.com/jsxkey/internal/config"
	"fillmore-labs.com/jsxkey/internal/report"
	"fillmore-labs.com/jsxkey/internal/rule"
	"fillmore-labs.com/jsxkey/internal/semantic"
	"fillmore-labs.com/jsxkey/internal/source"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Run executes the jsxkey analyzer's pipeline on the frontend sources next to a Go package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	dir, ok := packageDir(p)
	if !ok {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "JSXKey")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	s, err := r.settings(dir)
	if err != nil {
		return nil, fmt.Errorf("jsxkey: %w", err)
	}

	rules := s.enabled()
	if len(rules) == 0 {
		return nil, nil
	}

	region := trace.StartRegion(ctx, "Discover")
	files, err := source.Discover(dir, s.ignore)
	region.End()

	if err != nil {
		return nil, fmt.Errorf("jsxkey: %w", err)
	}

	// Stage 1: parse and check all files concurrently
	results, err := check(ctx, files, rules, s.behavior.Enabled(config.IncludeGenerated))
	if err != nil {
		return nil, fmt.Errorf("jsxkey: %w", err)
	}

	// Stage 2: report in discovery order
	for _, res := range results {
		if res.skipped {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, res.name, res.src, res.comments, res.generated)
		if !currentFile.Valid() {
			astutil.InternalError(p, p.Files[0], "File %s without valid info", res.name)

			continue
		}

		report.Diagnostics(ctx, p, currentFile, res.diagnostics)
	}

	return nil, nil
}

// packageDir returns the directory of the Go package. Test variants of a package
// are skipped, since they share the directory with the package itself.
func packageDir(p *analysis.Pass) (string, bool) {
	var dir string

	for _, f := range p.Files {
		handle := p.Fset.File(f.FileStart)
		if handle == nil {
			continue
		}

		name := handle.Name()
		if strings.HasSuffix(name, "_test.go") {
			return "", false
		}

		if dir == "" {
			dir = filepath.Dir(name)
		}
	}

	return dir, dir != ""
}

// fileResult holds what is needed to report diagnostics after the syntax tree is released.
type fileResult struct {
	name        string
	src         []byte
	comments    []syntax.FileComment
	generated   bool
	skipped     bool
	diagnostics []rule.Diagnostic
}

func check(ctx context.Context, files []string, rules []rule.Rule, includeGenerated bool) ([]fileResult, error) {
	defer trace.StartRegion(ctx, "Check").End()

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range files {
		g.Go(func() error {
			res, err := checkFile(ctx, name, rules, includeGenerated)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(ctx context.Context, name string, rules []rule.Rule, includeGenerated bool) (fileResult, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return fileResult{}, err
	}

	f, err := syntax.Parse(ctx, name, src)
	if err != nil {
		return fileResult{}, err
	}
	defer f.Close()

	res := fileResult{name: name, src: src, generated: f.Generated()}

	// Skip generated files
	if res.generated && !includeGenerated {
		res.skipped = true

		return res, nil
	}

	c := rule.Context{File: f, Model: semantic.Build(f)}

	res.diagnostics = rule.Run(c, rules)
	if len(res.diagnostics) > 0 {
		res.comments = f.Comments()
	}

	return res, nil
}
