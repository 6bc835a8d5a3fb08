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
	"log/slog"
	"slices"

	"fillmore-labs.com/ctorsetters/internal/config"
	"fillmore-labs.com/ctorsetters/internal/run"
)

// Option configures specific behavior of a [New] ctorsetters analyzer.
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

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return behaviorOption{"generated", config.IncludeGenerated, generated} }

// WithConstructorFuncs is an [Option] to configure whether calls of NewXxx functions count as constructions.
func WithConstructorFuncs(constructors bool) Option {
	return behaviorOption{"constructors", config.ConstructorFuncs, constructors}
}

// WithMatchAll is an [Option] to attribute setter calls to every construction with the same variable name,
// instead of the most recent construction of the same variable.
func WithMatchAll(matchAll bool) Option { return behaviorOption{"match-all", config.MatchAll, matchAll} }

type behaviorOption struct {
	name  string
	flag  config.Behavior
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}

// WithRules is an [Option] replacing all rules, including the built-in ones.
func WithRules(rules config.Rules) Option { return rulesOption{rules: rules} }

type rulesOption struct{ rules config.Rules }

func (o rulesOption) apply(r *run.Options) {
	r.Rules = o.rules
}

func (o rulesOption) LogAttr() slog.Attr {
	return slog.Any("rules", o.rules)
}

// WithExcludedTypes is an [Option] adding fully-qualified types (path.Name) that are never reported.
func WithExcludedTypes(names ...string) Option {
	return listOption{"excluded-types", names, func(r *config.Rules) *[]string { return &r.ExcludedTypes }}
}

// WithExternalPaths is an [Option] adding path fragments of vendored or third-party code.
func WithExternalPaths(fragments ...string) Option {
	return listOption{"external-paths", fragments, func(r *config.Rules) *[]string { return &r.ExternalPaths }}
}

// WithEntityMarkers is an [Option] adding source text markers of persistence-managed types.
func WithEntityMarkers(markers ...string) Option {
	return listOption{"entity-markers", markers, func(r *config.Rules) *[]string { return &r.EntityMarkers }}
}

// WithEntityTags is an [Option] adding struct tag keys of persistence-managed types.
func WithEntityTags(keys ...string) Option {
	return listOption{"entity-tags", keys, func(r *config.Rules) *[]string { return &r.EntityTags }}
}

// WithAccessorPrefixes is an [Option] adding method name prefixes of accessors, which are not setters.
func WithAccessorPrefixes(prefixes ...string) Option {
	return listOption{"accessor-prefixes", prefixes, func(r *config.Rules) *[]string { return &r.AccessorPrefixes }}
}

type listOption struct {
	name   string
	values []string
	field  func(r *config.Rules) *[]string
}

func (o listOption) apply(r *run.Options) {
	list := o.field(&r.Rules)
	for _, v := range o.values {
		if !slices.Contains(*list, v) {
			*list = append(*list, v)
		}
	}
}

func (o listOption) LogAttr() slog.Attr {
	return slog.Any(o.name, o.values)
}

// WithTestSuffix is an [Option] to configure the receiver type name suffix marking test code.
func WithTestSuffix(suffix string) Option { return testSuffixOption{suffix: suffix} }

type testSuffixOption struct{ suffix string }

func (o testSuffixOption) apply(r *run.Options) {
	r.Rules.TestSuffix = o.suffix
}

func (o testSuffixOption) LogAttr() slog.Attr {
	return slog.String("test-suffix", o.suffix)
}
