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

package a

type SomeObject struct { // want "Type 'test/a.SomeObject' is always constructed with the same 2 setters 'SetName' and 'SetAge', pass these values via constructor instead"
	name string
	age  int
}

func (o *SomeObject) SetName(name string) { o.name = name }

func (o *SomeObject) SetAge(age int) { o.age = age }

func (o *SomeObject) GetName() string { return o.name }

type Generic[T any] struct { // want "Type 'test/a.Generic' is always constructed with the same 1 setter 'SetValue', pass this value via constructor instead"
	value T
}

func (g *Generic[T]) SetValue(value T) { g.value = value }
