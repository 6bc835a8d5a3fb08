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

package skip

var sink []any

func use(v any) { sink = append(sink, v) }

type Different struct{ a, b int }

func (d *Different) SetA(a int) { d.a = a }

func (d *Different) SetB(b int) { d.b = b }

type Single struct{ a int }

func (s *Single) SetA(a int) { s.a = a }

type Broken struct{ a int }

func (b *Broken) SetA(a int) { b.a = a }

type Row struct {
	ID int `db:"id" gorm:"primaryKey"`
}

func (r *Row) SetID(id int) { r.ID = id }

type Getter struct{ a int }

func (g *Getter) GetA() int { return g.a }

type Fixture struct{ a int }

func (f *Fixture) SetA(a int) { f.a = a }

type Quiet struct{ a int }

func (q *Quiet) SetA(a int) { q.a = a }

type Excluded struct{ a int }

func (e *Excluded) SetA(a int) { e.a = a }

type Derived struct {
	Excluded
	b int
}

func (d *Derived) SetB(b int) { d.b = b }

type Reassigned struct{ a int }

func (r *Reassigned) SetA(a int) { r.a = a }

type GenOnly struct{ a int }

func (g *GenOnly) SetA(a int) { g.a = a }

type Exits struct{ a int }

func (e *Exits) SetA(a int) { e.a = a }
