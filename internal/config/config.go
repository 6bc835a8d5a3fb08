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

// Package config holds the behavior flags and rule data of the ctorsetters check.
package config

import (
	"log/slog"
	"strings"
)

// Behavior represents behavioral options of the collector.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ConstructorFuncs treats calls of NewXxx functions returning the constructed type as constructions.
	ConstructorFuncs

	// MatchAll attributes a method call to every open construction with the same variable name,
	// instead of only the most recent construction of the same variable.
	MatchAll

	allBehaviors = IncludeGenerated | ConstructorFuncs | MatchAll
)

var behaviorNames = [...]struct {
	option Behavior
	name   string
}{
	{IncludeGenerated, "generated"},
	{ConstructorFuncs, "constructors"},
	{MatchAll, "match-all"},
}

// String returns the flag name of a single option.
func (b Behavior) String() string {
	for _, n := range behaviorNames {
		if n.option == b {
			return n.name
		}
	}

	return "unknown"
}

// Flags is the set of enabled [Behavior] options.
type Flags struct {
	bits Behavior
}

// NewFlags returns a set with the given options enabled.
func NewFlags(options ...Behavior) Flags {
	var f Flags
	for _, option := range options {
		f.Set(option, true)
	}

	return f
}

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Flags {
	return NewFlags(ConstructorFuncs)
}

// Set enables or disables an option.
func (f *Flags) Set(option Behavior, enabled bool) {
	if enabled {
		f.bits |= option & allBehaviors
	} else {
		f.bits &^= option
	}
}

// Enabled reports whether an option is set.
func (f Flags) Enabled(option Behavior) bool {
	return f.bits&option != 0
}

// Value returns the raw option bits.
func (f Flags) Value() Behavior {
	return f.bits
}

// String returns the comma separated names of the enabled options.
func (f Flags) String() string {
	var names []string
	for _, n := range behaviorNames {
		if f.Enabled(n.option) {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, ",")
}

// LogValue implements [slog.LogValuer].
func (f Flags) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(behaviorNames))
	for _, n := range behaviorNames {
		attrs = append(attrs, slog.Bool(n.name, f.Enabled(n.option)))
	}

	return slog.GroupValue(attrs...)
}
