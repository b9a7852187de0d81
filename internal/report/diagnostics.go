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

// Package report converts rule diagnostics into [analysis.Diagnostic] values.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/jsxkey/internal/astutil"
	"fillmore-labs.com/jsxkey/internal/rule"
	"fillmore-labs.com/jsxkey/internal/syntax"
)

// Diagnostics emits the diagnostics of one file, skipping those suppressed by a nolint comment.
func Diagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, diagnostics []rule.Diagnostic) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		if !currentFile.Contains(d.Range) {
			astutil.InternalError(p, currentFile.Range(syntax.Range{}), "%s: range %d-%d outside of %s",
				d.Rule, d.Range.Start, d.Range.End, currentFile.Name())

			continue
		}

		if currentFile.NoLintComment(d.Range.Start, d.Rule) {
			continue
		}

		trace.Logf(ctx, "diagnostic", "%s %s", d.Severity, d.Category)

		rng := currentFile.Range(d.Range)

		related := make([]analysis.RelatedInformation, 0, len(d.Notes))
		for _, note := range d.Notes {
			related = append(related, analysis.RelatedInformation{Pos: rng.Pos(), End: rng.End(), Message: note})
		}

		p.Report(analysis.Diagnostic{
			Pos:      rng.Pos(),
			End:      rng.End(),
			Category: d.Category,
			Message:  d.Message,
			URL:      d.URL,
			Related:  related,
		})
	}
}
