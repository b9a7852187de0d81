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
	"flag"

	"fillmore-labs.com/jsxkey/internal/config"
	"fillmore-labs.com/jsxkey/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(newBoolValue(&r.Rules, config.KeyInIterable), "key-in-iterable", "report elements without key in iterables")
	flags.Var(newBoolValue(&r.Rules, config.RedundantAlt), "redundant-alt", "report redundant words in img alt texts")
	flags.Var(newBoolValue(&r.Behavior, config.CheckShorthandFragments), "check-shorthand-fragments", "require keys on shorthand fragments")
	flags.Var(newBoolValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.StringVar(&r.ConfigFile, "config", r.ConfigFile, "project configuration `file` (default: search for "+config.FileName+")")
}
