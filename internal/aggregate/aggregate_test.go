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

package aggregate_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/ctorsetters/internal/aggregate"
	"fillmore-labs.com/ctorsetters/internal/collect"
)

const (
	someObject = "example.com/app/model.SomeObject"
	other      = "example.com/app/model.Other"
	decl       = token.Pos(10)
)

func event(typ string, pos token.Pos, setters ...string) collect.Event {
	return collect.Event{Variable: "o", Type: typ, Setters: setters, Pos: pos, Decl: decl}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results [][]collect.Event
		want    []string
	}{
		{
			name: "same setters in three files",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName", "SetAge")},
				{event(someObject, 200, "SetName", "SetAge")},
				{event(someObject, 300, "SetAge", "SetName")},
			},
			want: []string{someObject},
		},
		{
			name: "additional setter",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName", "SetAge")},
				{event(someObject, 200, "SetName", "SetAge")},
				{event(someObject, 300, "SetName", "SetAge", "SetEmail")},
			},
		},
		{
			name: "observed once",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName", "SetAge", "SetEmail")},
			},
		},
		{
			name: "different setters",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName")},
				{event(someObject, 200, "SetAge")},
			},
		},
		{
			name: "empty setters ignored",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName")},
				{event(someObject, 200)},
				{event(someObject, 300, "SetName")},
			},
			want: []string{someObject},
		},
		{
			name: "only empty setters",
			results: [][]collect.Event{
				{event(someObject, 100), event(someObject, 200)},
			},
		},
		{
			name: "duplicate setters",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName", "SetName")},
				{event(someObject, 200, "SetName")},
			},
			want: []string{someObject},
		},
		{
			name: "same block",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName"), event(someObject, 200, "SetName")},
			},
			want: []string{someObject},
		},
		{
			name: "sorted by type",
			results: [][]collect.Event{
				{event(someObject, 100, "SetName"), event(other, 150, "SetID")},
				{event(other, 250, "SetID"), event(someObject, 200, "SetName")},
			},
			want: []string{other, someObject},
		},
		{
			name: "unresolved declaration",
			results: [][]collect.Event{
				{{Type: someObject, Setters: []string{"SetName"}, Pos: 100}},
				{{Type: someObject, Setters: []string{"SetName"}, Pos: 200}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, f := range Aggregate(tt.results) {
				got = append(got, f.Type)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinding(t *testing.T) {
	t.Parallel()

	results := [][]collect.Event{
		{event(someObject, 100, "SetName", "SetAge", "SetName")},
		{event(someObject, 200, "SetAge", "SetName")},
		{},
		{event(someObject, 300, "SetAge", "SetName")},
	}

	findings := Aggregate(results)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, someObject, f.Type)
	assert.Equal(t, []string{"SetName", "SetAge"}, f.Setters, "setters in first observed order")
	assert.Equal(t, decl, f.Decl)
	assert.Equal(t, []token.Pos{100, 200, 300}, f.Sites)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	results := [][]collect.Event{
		{event(someObject, 100, "SetName"), event(other, 150, "SetID")},
		{event(other, 250, "SetID")},
		{event(someObject, 200, "SetName")},
	}

	first := Aggregate(results)
	second := Aggregate(results)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestSignature(t *testing.T) {
	t.Parallel()

	setters := []string{"SetName", "SetAge", "SetName"}

	assert.Equal(t, []string{"SetAge", "SetName"}, Signature(setters))
	assert.Equal(t, []string{"SetName", "SetAge", "SetName"}, setters, "input unchanged")
	assert.Equal(t, Signature([]string{"SetName", "SetAge"}), Signature([]string{"SetAge", "SetName"}))
}
