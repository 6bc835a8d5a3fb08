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

import (
	"log"
	"os"
)

func different() {
	d := &Different{}
	d.SetA(1)
	use(d)

	e := &Different{}
	e.SetA(1)
	e.SetB(2)
	use(e)
}

func single() {
	s := &Single{}
	s.SetA(1)
	use(s)
}

func broken(early bool) {
	b := &Broken{}
	b.SetA(1)
	use(b)

	if early {
		return
	}
}

func alsoBroken() {
	b := &Broken{}
	b.SetA(2)
	use(b)
}

func rows() {
	r := &Row{}
	r.SetID(1)
	use(r)

	s := &Row{}
	s.SetID(2)
	use(s)
}

func getters() {
	g := &Getter{}
	g.GetA()
	use(g)

	h := &Getter{}
	h.GetA()
	use(h)
}

type FixtureTest struct{}

func (FixtureTest) one() {
	f := &Fixture{}
	f.SetA(1)
	use(f)
}

func (*FixtureTest) two() {
	f := &Fixture{}
	f.SetA(2)
	use(f)
}

func quiet() {
	q := &Quiet{} //nolint:ctorsetters
	q.SetA(1)
	use(q)

	r := &Quiet{}
	r.SetA(2)
	use(r)
}

//nolint:ctorsetters
func quieter() {
	q := &Quiet{}
	q.SetA(3)
	use(q)
}

func excluded() {
	e := &Excluded{}
	e.SetA(1)
	use(e)

	f := &Excluded{}
	f.SetA(2)
	use(f)

	d := &Derived{}
	d.SetB(1)
	use(d)

	g := &Derived{}
	g.SetB(2)
	use(g)
}

func stored() {
	s := &Stored{}
	s.SetA(1)
	use(s)

	t := &Stored{}
	t.SetA(2)
	use(t)
}

func reassigned() {
	r := &Reassigned{}
	r = &Reassigned{}
	r.SetA(1)
	use(r)
}

func exits(fail bool) {
	e := &Exits{}
	e.SetA(1)
	use(e)

	if fail {
		log.Fatal("failed")
	}
}

func exitsToo() {
	e := &Exits{}
	e.SetA(2)
	use(e)
	os.Exit(1)
}
