// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

	"fillmore-labs.com/ctorsetters/internal/config"
	"fillmore-labs.com/ctorsetters/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.ConstructorFuncs), "constructors", "treat NewXxx functions as constructions")
	flags.Var(NewBehaviorValue(&r.Behavior, config.MatchAll), "match-all", "attribute setter calls by variable name only")

	flags.Var(NewListValue(&r.Rules.ExcludedTypes), "exclude", "comma separated list of excluded types (path.Name)")
	flags.Var(NewListValue(&r.Rules.ExternalPaths), "external-path", "comma separated list of path fragments of vendored or third-party code")
	flags.Var(NewListValue(&r.Rules.EntityMarkers), "entity-marker", "comma separated list of source markers of persistence entities")
	flags.Var(NewListValue(&r.Rules.EntityTags), "entity-tag", "comma separated list of struct tag keys of persistence entities")
	flags.Var(NewListValue(&r.Rules.AccessorPrefixes), "accessor-prefix", "comma separated list of accessor method prefixes")

	flags.StringVar(&r.Rules.TestSuffix, "test-suffix", r.Rules.TestSuffix, "receiver type name suffix of test code")
}
