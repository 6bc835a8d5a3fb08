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

package flow

import "go/types"

// FuncName identifies a function or method independent of type-checker object identity.
type FuncName struct {
	// Path is the package path, empty for universe and interface methods.
	Path string
	// Receiver is the receiver type name of methods.
	Receiver string
	// Name is the function name.
	Name string
}

// FuncNameOf returns the [FuncName] of a function or method.
func FuncNameOf(fun *types.Func) FuncName {
	recv := fun.Signature().Recv()
	if recv == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	rtype := types.Unalias(recv.Type())
	if ptr, ok := rtype.(*types.Pointer); ok {
		rtype = types.Unalias(ptr.Elem())
	}

	switch t := rtype.(type) {
	case *types.Named:
		obj := t.Obj()

		var path string
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

// String returns the name in the form "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	name := f.Name
	if f.Receiver != "" {
		recv := f.Receiver
		if f.Path != "" {
			recv = f.Path + "." + recv
		}

		return "(" + recv + ")." + name
	}

	if f.Path != "" {
		return f.Path + "." + name
	}

	return name
}
