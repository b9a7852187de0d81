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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/jsxkey/internal/config"
	"fillmore-labs.com/jsxkey/internal/run"
)

// Option configures specific behavior of a [New] jsxkey analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithKeyInIterable is an [Option] to configure whether the useJsxKeyInIterable rule is enabled.
func WithKeyInIterable(keyInIterable bool) Option {
	return ruleOption{flag: config.KeyInIterable, key: "key-in-iterable", enabled: keyInIterable}
}

// WithRedundantAlt is an [Option] to configure whether the noRedundantAlt rule is enabled.
func WithRedundantAlt(redundantAlt bool) Option {
	return ruleOption{flag: config.RedundantAlt, key: "redundant-alt", enabled: redundantAlt}
}

type ruleOption struct {
	flag    config.RuleFlags
	key     string
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.flag, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithShorthandFragments is an [Option] to require keys on shorthand fragments in iterables.
func WithShorthandFragments(check bool) Option { return fragmentsOption{check: check} }

type fragmentsOption struct{ check bool }

func (o fragmentsOption) apply(r *run.Options) {
	r.Behavior.Set(config.CheckShorthandFragments, o.check)
}

func (o fragmentsOption) LogAttr() slog.Attr {
	return slog.Bool("check-shorthand-fragments", o.check)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithConfigFile is an [Option] to use an explicit project configuration file
// instead of searching for jsxkey.toml.
func WithConfigFile(name string) Option { return configFileOption{name: name} }

type configFileOption struct{ name string }

func (o configFileOption) apply(r *run.Options) {
	r.ConfigFile = o.name
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.name)
}
