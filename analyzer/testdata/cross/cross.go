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

package cross

import "test/a"

var sink []any

func first() {
	o := &a.SomeObject{} // want "Type 'test/a.SomeObject' is always constructed with the same 2 setters 'SetAge' and 'SetName', pass these values via constructor instead"
	o.SetAge(1)
	o.SetName("Ada")
	sink = append(sink, o)
}

func second() {
	o := &a.SomeObject{}
	o.SetName("Grace")
	o.SetAge(2)
	sink = append(sink, o)
}
