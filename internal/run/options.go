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
	"fillmore-labs.com/jsxkey/internal/config"
	"fillmore-labs.com/jsxkey/internal/rule"
	"fillmore-labs.com/jsxkey/internal/rules/keyiniterable"
	"fillmore-labs.com/jsxkey/internal/rules/redundantalt"
)

// Options represent configuration options for the jsxkey analyzer.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// ConfigFile is an explicit project configuration file.
	// When empty, a [config.FileName] is searched for starting at the package directory.
	ConfigFile string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:    config.DefaultRules(),
		Behavior: config.DefaultBehavior(),
	}
}

// settings are the options in effect for one package, after the project configuration is applied.
type settings struct {
	rules    config.Rules
	behavior config.Behavior
	ignore   []string
}

func (r *Options) settings(dir string) (settings, error) {
	s := settings{rules: r.Rules, behavior: r.Behavior}

	name := r.ConfigFile
	if name == "" {
		found, ok, err := config.Find(dir)
		if err != nil || !ok {
			return s, err
		}

		name = found
	}

	f, err := config.Load(name)
	if err != nil {
		return s, err
	}

	f.Apply(&s.rules, &s.behavior)
	s.ignore = f.Ignore

	return s, nil
}

// enabled returns the rules to run.
func (s settings) enabled() []rule.Rule {
	var rules []rule.Rule

	if s.rules.Enabled(config.KeyInIterable) {
		options := keyiniterable.Options{
			CheckShorthandFragments: s.behavior.Enabled(config.CheckShorthandFragments),
		}
		rules = append(rules, keyiniterable.New(options))
	}

	if s.rules.Enabled(config.RedundantAlt) {
		rules = append(rules, redundantalt.New())
	}

	return rules
}
