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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"log/slog"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
)

// Rule validation errors.
var (
	ErrEmptyEntry    = errors.New("empty rule entry")
	ErrUnqualified   = errors.New("excluded type must be qualified as path.Name")
	ErrEmptyAccessor = errors.New("empty accessor prefix would ignore every method call")
)

// Rules is the rule data driving the eligibility filter of constructed types.
type Rules struct {
	// ExcludedTypes are fully-qualified types (path.Name) that are never reported,
	// neither are types embedding them.
	ExcludedTypes []string `json:"excluded-types,omitempty" mapstructure:"excluded-types" yaml:"excluded-types,omitempty"`

	// ExternalPaths are file path fragments marking vendored or third-party code.
	ExternalPaths []string `json:"external-paths,omitempty" mapstructure:"external-paths" yaml:"external-paths,omitempty"`

	// EntityMarkers are strings in a declaring file marking persistence-managed types.
	EntityMarkers []string `json:"entity-markers,omitempty" mapstructure:"entity-markers" yaml:"entity-markers,omitempty"`

	// EntityTags are struct tag keys marking persistence-managed types.
	EntityTags []string `json:"entity-tags,omitempty" mapstructure:"entity-tags" yaml:"entity-tags,omitempty"`

	// AccessorPrefixes are method name prefixes of accessors, which are not setters.
	AccessorPrefixes []string `json:"accessor-prefixes,omitempty" mapstructure:"accessor-prefixes" yaml:"accessor-prefixes,omitempty"`

	// TestSuffix marks receiver types of test code.
	TestSuffix string `json:"test-suffix,omitempty" mapstructure:"test-suffix" yaml:"test-suffix,omitempty"`
}

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	external := []string{"/vendor/", "/pkg/mod/"}
	if goroot := build.Default.GOROOT; goroot != "" {
		external = append(external, filepath.ToSlash(filepath.Join(goroot, "src"))+"/")
	}

	return Rules{
		ExcludedTypes: []string{
			"bytes.Buffer",
			"flag.FlagSet",
			"net/http.ServeMux",
			"strings.Builder",
			"sync.WaitGroup",
		},
		ExternalPaths:    external,
		EntityMarkers:    []string{"gorm.Model", "bun.BaseModel"},
		EntityTags:       []string{"gorm", "bun", "xorm", "pg"},
		AccessorPrefixes: []string{"Get", "get"},
		TestSuffix:       "Test",
	}
}

// Merge returns the rules extended by the entries of o.
// A non-empty test suffix of o replaces the current one.
func (r Rules) Merge(o Rules) Rules {
	m := Rules{
		ExcludedTypes:    union(r.ExcludedTypes, o.ExcludedTypes),
		ExternalPaths:    union(r.ExternalPaths, o.ExternalPaths),
		EntityMarkers:    union(r.EntityMarkers, o.EntityMarkers),
		EntityTags:       union(r.EntityTags, o.EntityTags),
		AccessorPrefixes: union(r.AccessorPrefixes, o.AccessorPrefixes),
		TestSuffix:       r.TestSuffix,
	}

	if o.TestSuffix != "" {
		m.TestSuffix = o.TestSuffix
	}

	return m
}

func union(a, b []string) []string {
	u := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(u, s) {
			u = append(u, s)
		}
	}

	return u
}

// Validate checks the rules for entries that can't match or would match everything.
func (r Rules) Validate() error {
	var errs []error

	for _, name := range r.ExcludedTypes {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("excluded-types: %w", ErrEmptyEntry))

		case !strings.Contains(name, "."):
			errs = append(errs, fmt.Errorf("excluded-types %q: %w", name, ErrUnqualified))
		}
	}

	for _, list := range [...]struct {
		name    string
		entries []string
	}{
		{"external-paths", r.ExternalPaths},
		{"entity-markers", r.EntityMarkers},
		{"entity-tags", r.EntityTags},
	} {
		if slices.Contains(list.entries, "") {
			errs = append(errs, fmt.Errorf("%s: %w", list.name, ErrEmptyEntry))
		}
	}

	if slices.Contains(r.AccessorPrefixes, "") {
		errs = append(errs, fmt.Errorf("accessor-prefixes: %w", ErrEmptyAccessor))
	}

	return errors.Join(errs...)
}

// Excluded reports whether the fully-qualified type name is on the exclusion list.
func (r Rules) Excluded(name string) bool {
	return slices.Contains(r.ExcludedTypes, name)
}

// External reports whether the file belongs to vendored or third-party code.
func (r Rules) External(filename string) bool {
	path := filepath.ToSlash(filename)

	return slices.ContainsFunc(r.ExternalPaths, func(fragment string) bool { return strings.Contains(path, fragment) })
}

// EntityText reports whether the source text contains a persistence-entity marker.
func (r Rules) EntityText(src []byte) bool {
	return slices.ContainsFunc(r.EntityMarkers, func(marker string) bool { return bytes.Contains(src, []byte(marker)) })
}

// EntityTag reports whether the struct tag uses a persistence-entity key.
func (r Rules) EntityTag(tag string) bool {
	if tag == "" {
		return false
	}

	st := reflect.StructTag(tag)

	return slices.ContainsFunc(r.EntityTags, func(key string) bool {
		_, ok := st.Lookup(key)

		return ok
	})
}

// Accessor reports whether the method name denotes an accessor.
func (r Rules) Accessor(method string) bool {
	return slices.ContainsFunc(r.AccessorPrefixes, func(prefix string) bool { return strings.HasPrefix(method, prefix) })
}

// TestType reports whether the receiver type name denotes test code.
func (r Rules) TestType(name string) bool {
	return r.TestSuffix != "" && strings.HasSuffix(name, r.TestSuffix)
}

// LogValue implements [slog.LogValuer].
func (r Rules) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("excluded-types", r.ExcludedTypes),
		slog.Any("external-paths", r.ExternalPaths),
		slog.Any("entity-markers", r.EntityMarkers),
		slog.Any("entity-tags", r.EntityTags),
		slog.Any("accessor-prefixes", r.AccessorPrefixes),
		slog.String("test-suffix", r.TestSuffix),
	)
}
