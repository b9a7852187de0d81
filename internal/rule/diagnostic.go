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

package rule

import "fillmore-labs.com/jsxkey/internal/syntax"

// Severity is the importance of a [Diagnostic].
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Information is for informational diagnostics.
	Information Severity = iota // info

	// Warning is for diagnostics that should be looked at.
	Warning // warning

	// Error is for diagnostics that should fail a lint run.
	Error // error
)

// Diagnostic is the payload a rule produces for one flagged range. Rendering is up to the host.
type Diagnostic struct {
	Rule     string       // name of the reporting rule
	Category string       // category identifier, e.g. "lint/correctness/useJsxKeyInIterable"
	Range    syntax.Range // primary range
	Message  string
	Notes    []string // explanatory notes, attached to the primary range
	URL      string
	Severity Severity
}
