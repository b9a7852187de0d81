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

package semantic

import "slices"

// Library is a UI library whose exports can be resolved.
type Library uint8

//go:generate go tool stringer -type Library -linecomment
const (
	// Unknown is a binding to a module that is not a known library.
	Unknown Library = iota // unknown

	// React is the "react" package, also available as the global React.
	React // React

	// ReactDOM is the "react-dom" package, also available as the global ReactDOM.
	ReactDOM // ReactDOM
)

type libraryInfo struct {
	modules []string
	global  string
}

var libraries = [...]libraryInfo{
	React:    {modules: []string{"react"}, global: "React"},
	ReactDOM: {modules: []string{"react-dom", "react-dom/client", "react-dom/server"}, global: "ReactDOM"},
}

// libraryOf returns the library a module specifier refers to.
func libraryOf(module string) Library {
	for l, info := range libraries {
		if slices.Contains(info.modules, module) {
			return Library(l)
		}
	}

	return Unknown
}

// globalLibrary returns the library exposed under a global name.
func globalLibrary(name string) (Library, bool) {
	for l, info := range libraries {
		if info.global != "" && info.global == name {
			return Library(l), true
		}
	}

	return Unknown, false
}
