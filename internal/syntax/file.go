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

package syntax

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupported is returned when no grammar is known for a file name.
var ErrUnsupported = errors.New("unsupported source file")

// File is a parsed frontend source file. It owns its syntax tree; nodes obtained from
// [File.Root] are valid until [File.Close].
type File struct {
	Name string
	Src  []byte

	tree *sitter.Tree
}

// Language returns the grammar for a file name, selected by extension.
func Language(name string) (*sitter.Language, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsx":
		return tsx.GetLanguage(), true

	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage(), true

	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage(), true
	}

	return nil, false
}

// Parse parses src with the grammar selected by name.
// Syntax errors do not fail parsing; the tree contains error nodes instead.
func Parse(ctx context.Context, name string, src []byte) (*File, error) {
	lang, ok := Language(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	}

	p := sitter.NewParser()
	defer p.Close()

	p.SetLanguage(lang)

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &File{Name: name, Src: src, tree: tree}, nil
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Close releases the syntax tree.
func (f *File) Close() {
	f.tree.Close()
}

// FileComment is a comment detached from the syntax tree.
type FileComment struct {
	Range Range
	Line  int // 1-based line of the comment start
	Text  string
}

// Comments returns all comments of the file in source order.
func (f *File) Comments() []FileComment {
	var comments []FileComment

	for c := range Preorder(f.Root(), Comment) {
		comments = append(comments, FileComment{
			Range: RangeOf(c),
			Line:  int(c.StartPoint().Row) + 1,
			Text:  Text(c, f.Src),
		})
	}

	return comments
}

var generatedPattern = regexp.MustCompile(`^\s*(?://|/?\*+)?\s*Code generated .* DO NOT EDIT\.`)

// Generated reports whether a comment before the first statement marks the file as generated,
// either with "@generated" or with the Go convention "Code generated ... DO NOT EDIT.".
func (f *File) Generated() bool {
	root := f.Root()

	for i := range int(root.NamedChildCount()) {
		n := root.NamedChild(i)
		if n == nil {
			continue
		}

		switch n.Type() {
		case "hash_bang_line":
			continue

		case Comment:
			if isGeneratedComment(Text(n, f.Src)) {
				return true
			}

		default:
			return false
		}
	}

	return false
}

func isGeneratedComment(text string) bool {
	if strings.Contains(text, "@generated") {
		return true
	}

	for line := range strings.SplitSeq(text, "\n") {
		if generatedPattern.MatchString(line) {
			return true
		}
	}

	return false
}
