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

package gclplugin

import (
	ctorsetters "fillmore-labs.com/ctorsetters/analyzer"
	"fillmore-labs.com/ctorsetters/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Constructors treats NewXxx functions as constructions.
	Constructors *bool `json:"constructors,omitzero"`
	// MatchAll attributes setter calls by variable name only.
	MatchAll *bool `json:"match-all,omitzero"`
	// TestSuffix is the receiver type name suffix of test code.
	TestSuffix *string `json:"test-suffix,omitzero"`
	// ExcludedTypes are additional fully-qualified types that are never reported.
	ExcludedTypes []string `json:"excluded-types,omitzero"`
	// ExternalPaths are additional path fragments of vendored or third-party code.
	ExternalPaths []string `json:"external-paths,omitzero"`
	// EntityMarkers are additional source markers of persistence entities.
	EntityMarkers []string `json:"entity-markers,omitzero"`
	// EntityTags are additional struct tag keys of persistence entities.
	EntityTags []string `json:"entity-tags,omitzero"`
	// AccessorPrefixes are additional accessor method prefixes.
	AccessorPrefixes []string `json:"accessor-prefixes,omitzero"`
}

// Options converts [Settings] into a list of [ctorsetters.Option] for the ctorsetters analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []ctorsetters.Option {
	var opts []ctorsetters.Option

	opts = appendOption(opts, s.Constructors, ctorsetters.WithConstructorFuncs)
	opts = appendOption(opts, s.MatchAll, ctorsetters.WithMatchAll)
	opts = appendOption(opts, s.TestSuffix, ctorsetters.WithTestSuffix)
	opts = appendList(opts, s.ExcludedTypes, ctorsetters.WithExcludedTypes)
	opts = appendList(opts, s.ExternalPaths, ctorsetters.WithExternalPaths)
	opts = appendList(opts, s.EntityMarkers, ctorsetters.WithEntityMarkers)
	opts = appendList(opts, s.EntityTags, ctorsetters.WithEntityTags)
	opts = appendList(opts, s.AccessorPrefixes, ctorsetters.WithAccessorPrefixes)

	return opts
}

// Validate checks the rule entries of the settings, so misconfigurations surface
// once when golangci-lint starts instead of on every package.
func (s Settings) Validate() error {
	rules := config.Rules{
		ExcludedTypes:    s.ExcludedTypes,
		ExternalPaths:    s.ExternalPaths,
		EntityMarkers:    s.EntityMarkers,
		EntityTags:       s.EntityTags,
		AccessorPrefixes: s.AccessorPrefixes,
	}

	return rules.Validate()
}

// appendOption appends a non-nil setting to a [ctorsetters.Option] list.
func appendOption[T any](opts []ctorsetters.Option, value *T, constructor func(T) ctorsetters.Option) []ctorsetters.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-empty list setting to a [ctorsetters.Option] list.
func appendList(opts []ctorsetters.Option, values []string, constructor func(...string) ctorsetters.Option) []ctorsetters.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values...))
}
