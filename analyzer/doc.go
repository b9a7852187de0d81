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

// Package analyzer implements the jsxkey static analysis pass.
//
// # Overview
//
// jsxkey checks the JavaScript and TypeScript sources (.js, .jsx, .ts, .tsx and their module variants)
// living next to a Go package, as in web frontends embedded with go:embed. Directories
// below the package that contain no Go files of their own belong to the package.
//
// # Rules
//
// useJsxKeyInIterable reports React elements in array literals and iteration callbacks without a key:
//
//	data.map((item) => <li>{item.name}</li>);             // Missing key property for this element in iterable.
//	data.map((item) => <li key={item.id}>{item.name}</li>);
//
// noRedundantAlt reports img alt texts containing "image", "photo" or "picture".
//
// # Configuration
//
// A jsxkey.toml file in the package directory or a parent directory up to the module root overrides
// the command line:
//
//	generated = false
//	ignore = ["dist/*"]
//
//	[rules.useJsxKeyInIterable]
//	checkShorthandFragments = true
//
//	[rules.noRedundantAlt]
//	enabled = false
//
// Diagnostics are suppressed with a //nolint:jsxkey or //nolint:useJsxKeyInIterable comment on the same line.
package analyzer
