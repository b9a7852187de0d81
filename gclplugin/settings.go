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

package gclplugin

import "fillmore-labs.com/jsxkey/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// KeyInIterable enables the useJsxKeyInIterable rule.
	KeyInIterable *bool `json:"key-in-iterable,omitzero"`
	// RedundantAlt enables the noRedundantAlt rule.
	RedundantAlt *bool `json:"redundant-alt,omitzero"`
	// CheckShorthandFragments requires keys on shorthand fragments in iterables.
	CheckShorthandFragments *bool `json:"check-shorthand-fragments,omitzero"`
	// Generated enables diagnostics in generated frontend sources.
	Generated *bool `json:"generated,omitzero"`
	// Config is an explicit jsxkey.toml project configuration file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the jsxkey analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.KeyInIterable, analyzer.WithKeyInIterable)
	opts = appendOption(opts, s.RedundantAlt, analyzer.WithRedundantAlt)
	opts = appendOption(opts, s.CheckShorthandFragments, analyzer.WithShorthandFragments)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Config, analyzer.WithConfigFile)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
