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

package widget

type Widget struct {
	label string
	width int
}

func NewWidget() *Widget { return &Widget{} }

func (w *Widget) SetLabel(label string) { w.label = label }

func (w *Widget) SetWidth(width int) { w.width = width }

type Gadget struct {
	mode string
}

func (g *Gadget) SetMode(mode string) { g.mode = mode }

// Shelf holds everything built.
type Shelf struct {
	items []any
}

func (s *Shelf) Put(item any) { s.items = append(s.items, item) }
