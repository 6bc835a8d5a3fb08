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

package collect

import "go/token"

// Event is one construction of an eligible type inside a block, together with
// the setters subsequently called on the constructed variable.
type Event struct {
	// Variable is the name of the variable the constructed value is assigned to.
	Variable string

	// Type is the fully-qualified name of the constructed type.
	Type string

	// Setters are the method names called on the variable, in call order. May be empty.
	Setters []string

	// Pos is the position of the construction.
	Pos token.Pos

	// Decl is the position of the type declaration.
	Decl token.Pos
}
