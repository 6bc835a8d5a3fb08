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

package billing

import "example.com/app/model"

func Customer(r *model.Registry) {
	p := &model.Person{}
	p.SetName("Ada")
	p.SetAge(36)
	p.GetName()
	r.Add(p)
}

func Order(r *model.Registry) {
	o := &model.Order{}
	o.SetID(1)
	o.SetNotes("urgent")
	r.Add(o)
}

func Account(r *model.Registry) {
	a := &model.Account{}
	a.SetOwner("Ada")
	r.Add(a)
}
