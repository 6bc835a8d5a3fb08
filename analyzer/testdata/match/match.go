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

package match

type Pair struct { // want "Type 'test/match.Pair' is always constructed with the same 1 setter 'SetLeft', pass this value via constructor instead"
	left int
}

func (p *Pair) SetLeft(left int) { p.left = left }

var sink []any

func reassigned() {
	p := &Pair{}
	p = &Pair{}
	p.SetLeft(1)
	sink = append(sink, p)
}
