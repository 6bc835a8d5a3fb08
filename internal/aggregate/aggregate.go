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

// Package aggregate decides which types are always constructed with the same setters.
package aggregate

import (
	"go/token"
	"maps"
	"slices"

	"fillmore-labs.com/ctorsetters/internal/collect"
)

// Finding is a type constructed with the same setters at every observed site.
type Finding struct {
	// Type is the fully-qualified type name.
	Type string

	// Setters are the setter names as observed at the first site, without duplicates.
	Setters []string

	// Decl is the position of the type declaration.
	Decl token.Pos

	// Sites are the construction positions, in observation order.
	Sites []token.Pos
}

// observations are the events of one type with their signatures.
type observations struct {
	first collect.Event
	sig   []string
	same  bool
	sites []token.Pos
}

// Aggregate groups the per-file event lists by type and returns the findings, sorted by type name.
//
// Events without setters are ignored. A type is reported when it was observed at least twice
// and every observation has the same setter signature.
func Aggregate(results [][]collect.Event) []Finding {
	byType := make(map[string]*observations)

	for _, events := range results {
		for _, e := range events {
			if len(e.Setters) == 0 {
				continue
			}

			sig := Signature(e.Setters)

			o, ok := byType[e.Type]
			if !ok {
				byType[e.Type] = &observations{first: e, sig: sig, same: true, sites: []token.Pos{e.Pos}}

				continue
			}

			o.same = o.same && slices.Equal(o.sig, sig)
			o.sites = append(o.sites, e.Pos)
		}
	}

	var findings []Finding

	for _, name := range slices.Sorted(maps.Keys(byType)) {
		o := byType[name]
		if len(o.sites) < 2 || !o.same || !o.first.Decl.IsValid() {
			continue
		}

		findings = append(findings, Finding{
			Type:    name,
			Setters: unique(o.first.Setters),
			Decl:    o.first.Decl,
			Sites:   o.sites,
		})
	}

	return findings
}

// Signature returns the sorted set of setter names.
func Signature(setters []string) []string {
	sig := slices.Clone(setters)
	slices.Sort(sig)

	return slices.Compact(sig)
}

// unique returns the setter names without duplicates, in order of first occurrence.
func unique(setters []string) []string {
	u := make([]string, 0, len(setters))
	for _, s := range setters {
		if !slices.Contains(u, s) {
			u = append(u, s)
		}
	}

	return u
}
