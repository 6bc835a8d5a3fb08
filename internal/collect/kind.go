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

// Kind classifies a statement for the block scan.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindOther is any statement the block scan is not interested in.
	KindOther Kind = iota // other

	// KindConstruction is an assignment of a newly constructed value to a single variable.
	KindConstruction // construction

	// KindCall is a method call on a variable, used as a statement.
	KindCall // call
)
