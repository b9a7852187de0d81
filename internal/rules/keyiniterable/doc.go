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

// Package keyiniterable reports React elements in iterables that lack a key.
//
// # Overview
//
// An element needs a key when it is one of several siblings produced from a collection:
// an element of an array literal, or the value produced by an iteration callback.
//
//	[<Hello />];                              // flagged
//	data.map((x) => <Hello>{x}</Hello>);      // flagged
//	data.map((x) => <Hello key={x.id}>{x}</Hello>);
//
// Elements created with React.createElement or React.cloneElement need a key property
// in their second argument:
//
//	data.map((x) => React.createElement("li", { key: x.id }));
//
// # Approximation
//
// The analysis is purely syntactic. In block-bodied callbacks every variable initializer,
// every return value and the bodies of switch cases and if branches are candidates,
// whether or not the value is actually returned. Keys assigned through spread
// attributes or computed properties are never accepted as proof.
package keyiniterable
