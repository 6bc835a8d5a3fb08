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

var sink []any

func use(v any) { sink = append(sink, v) }

func first() {
	o := &SomeObject{}
	o.SetName("Ada")
	o.SetAge(36)
	use(o)
}

func second() {
	o := new(SomeObject)
	o.SetAge(42)
	o.GetName()
	o.SetName("Grace")
	use(o)
}

func third(ok bool) {
	if ok {
		o := SomeObject{}
		o.SetName("Linus")
		o.SetAge(55)
		o.SetName("Torvalds")
		use(&o)
	}
}

func generic() {
	i := &Generic[int]{}
	i.SetValue(1)
	use(i)

	s := &Generic[string]{}
	s.SetValue("one")
	use(s)
}
