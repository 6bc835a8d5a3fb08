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

package model

// Person is always configured through setters.
type Person struct {
	name string
	age  int
}

func (p *Person) SetName(name string) { p.name = name }

func (p *Person) SetAge(age int) { p.age = age }

func (p *Person) GetName() string { return p.name }

// Order gets different setters at each site.
type Order struct {
	id    int
	notes string
}

func (o *Order) SetID(id int) { o.id = id }

func (o *Order) SetNotes(notes string) { o.notes = notes }

// Account is persisted.
type Account struct {
	ID    int    `gorm:"primaryKey"`
	Owner string `gorm:"size:64"`
}

func (a *Account) SetOwner(owner string) { a.Owner = owner }
