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

package collect

import (
	"go/token"
	"go/types"

	"fillmore-labs.com/ctorsetters/internal/config"
)

// eligibility filters constructed types and caches the results.
type eligibility struct {
	fset     *token.FileSet
	rules    config.Rules
	readFile func(filename string) ([]byte, error)

	types map[*types.TypeName]bool
	files map[string]bool // declaring file has no entity marker and is readable
}

func newEligibility(fset *token.FileSet, rules config.Rules, readFile func(string) ([]byte, error)) eligibility {
	return eligibility{
		fset:     fset,
		rules:    rules,
		readFile: readFile,
		types:    make(map[*types.TypeName]bool),
		files:    make(map[string]bool),
	}
}

// eligible reports whether constructions of the type are candidates for a diagnostic.
func (e *eligibility) eligible(tn *types.TypeName) bool {
	if ok, cached := e.types[tn]; cached {
		return ok
	}

	ok := e.check(tn)
	e.types[tn] = ok

	return ok
}

func (e *eligibility) check(tn *types.TypeName) bool {
	// universe or otherwise unresolvable types
	if tn == nil || tn.Pkg() == nil {
		return false
	}

	// function local types have no package level name
	if tn.Parent() != tn.Pkg().Scope() {
		return false
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return false
	}

	filename := e.declFile(tn)
	if filename == "" {
		return false
	}

	if e.excluded(named, make(map[*types.Named]struct{})) {
		return false
	}

	if e.rules.External(filename) {
		return false
	}

	if st, ok := named.Underlying().(*types.Struct); ok && e.taggedEntity(st) {
		return false
	}

	return e.plainFile(filename)
}

// declFile returns the name of the file declaring the type, or the empty string.
func (e *eligibility) declFile(tn *types.TypeName) string {
	if !tn.Pos().IsValid() {
		return ""
	}

	return e.fset.PositionFor(tn.Pos(), false).Filename
}

// excluded reports whether the type or one of its transitively embedded types is on the exclusion list.
func (e *eligibility) excluded(named *types.Named, seen map[*types.Named]struct{}) bool {
	named = named.Origin()
	if _, ok := seen[named]; ok {
		return false
	}

	seen[named] = struct{}{}

	if e.rules.Excluded(QualifiedName(named.Obj())) {
		return true
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for field := range st.Fields() {
		if !field.Embedded() {
			continue
		}

		t := types.Unalias(field.Type())
		if p, ok := t.(*types.Pointer); ok {
			t = types.Unalias(p.Elem())
		}

		if embedded, ok := t.(*types.Named); ok && e.excluded(embedded, seen) {
			return true
		}
	}

	return false
}

// taggedEntity reports whether a struct field carries a persistence-entity tag.
func (e *eligibility) taggedEntity(st *types.Struct) bool {
	for i := range st.NumFields() {
		if e.rules.EntityTag(st.Tag(i)) {
			return true
		}
	}

	return false
}

// plainFile reports whether the file is readable and free of persistence-entity markers.
func (e *eligibility) plainFile(filename string) bool {
	if ok, cached := e.files[filename]; cached {
		return ok
	}

	src, err := e.readFile(filename)
	ok := err == nil && !e.rules.EntityText(src)
	e.files[filename] = ok

	return ok
}

// QualifiedName returns the fully-qualified name `path.Name` of a package level type.
func QualifiedName(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return tn.Name()
	}

	return tn.Pkg().Path() + "." + tn.Name()
}
