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

// Package analyzer implements the ctorsetters static analysis pass.
//
// # Overview
//
// ctorsetters detects named struct types that are constructed and then configured
// through the same set of setter calls at every construction site. Such setters
// are better replaced by constructor parameters.
//
// # Example
//
// Both sites configure the same setters:
//
//	func register(r *Registry) {
//	    p := &Person{}
//	    p.SetName("Ada")
//	    p.SetAge(36)
//	    r.Add(p)
//	}
//
//	func invite(r *Registry) {
//	    p := &Person{}
//	    p.SetAge(42)
//	    p.SetName("Grace")
//	    r.Add(p)
//	}
//
// The analyzer reports Person at its declaration, suggesting
//
//	p := NewPerson("Ada", 36)
//
// # Rules
//
// A construction is a single variable assignment of `T{...}`, `&T{...}`, `new(T)`
// or, optionally, a `NewXxx` constructor of the same package. The setters are the
// method calls on that variable in the same block, except accessors (`Get...`).
// A block containing a return or a call that can't return after the first
// construction is ignored completely.
//
// Types are not considered when they are declared in test, vendored or standard
// library code, are on the exclusion list or embed an excluded type, or are
// persistence entities (marked by struct tags like `gorm:"..."` or by
// `gorm.Model` in the declaring file).
//
// The analyzer aggregates per package. Use the ctorsetters command for
// whole-program results.
package analyzer
