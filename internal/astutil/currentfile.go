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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/jsxkey/internal/syntax"
)

// jsxkey is the name of the linter.
const jsxkey = "jsxkey"

// CurrentFile holds position information for a frontend source file outside the Go package.
type CurrentFile struct {
	handle    *token.File
	comments  []syntax.FileComment
	generated bool
}

// NewCurrentFile registers a file of size bytes with the [token.FileSet], so diagnostics
// can be reported in it. Comments must be in source order.
func NewCurrentFile(fset *token.FileSet, name string, src []byte, comments []syntax.FileComment, generated bool) CurrentFile {
	if fset == nil {
		return CurrentFile{}
	}

	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent(src)

	return CurrentFile{handle, comments, generated}
}

// Valid returns true if the [CurrentFile] was successfully registered.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name is the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Contains reports whether r lies within the file.
func (c CurrentFile) Contains(r syntax.Range) bool {
	return r.Start <= r.End && int(r.End) <= c.handle.Size()
}

// Pos returns the [token.Pos] of a byte offset.
func (c CurrentFile) Pos(offset uint32) token.Pos {
	return c.handle.Pos(int(offset))
}

// Range returns r as an [analysis.Range].
func (c CurrentFile) Range(r syntax.Range) Range {
	return Range{start: c.Pos(r.Start), end: c.Pos(r.End)}
}

func (c CurrentFile) line(offset uint32) int {
	return c.handle.Line(c.Pos(offset))
}

// NoLintComment checks if the line at offset has a later //nolint:jsxkey or //nolint:<rule> comment.
func (c CurrentFile) NoLintComment(offset uint32, rule string) bool {
	// find the first comment starting after the offset
	i, _ := slices.BinarySearchFunc(c.comments, offset,
		func(c syntax.FileComment, o uint32) int { return int(c.Range.Start) - int(o) })

	line := c.line(offset)
	for _, comment := range c.comments[i:] {
		if comment.Line != line {
			return false // not on this line
		}

		if CommentHasNoLint(comment.Text, rule) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the comment text is a nolint directive for jsxkey, all linters, or rule.
func CommentHasNoLint(text, rule string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		switch l := strings.TrimSpace(linter); {
		case strings.EqualFold(l, jsxkey), strings.EqualFold(l, "all"):
			return true

		case rule != "" && strings.EqualFold(l, rule):
			return true
		}
	}

	return false
}

// Range is a source range in a [token.FileSet], implementing [analysis.Range].
type Range struct {
	start, end token.Pos
}

// Pos implements [analysis.Range].
func (r Range) Pos() token.Pos { return r.start }

// End implements [analysis.Range].
func (r Range) End() token.Pos { return r.end }
