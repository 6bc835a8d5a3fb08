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

import (
	"go/ast"
	"go/types"
)

// nonReturning lists functions and methods that never return to their caller, grouped by package path and receiver.
var nonReturning = map[string]map[string][]string{
	"log": {
		"":       {"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"},
		"Logger": {"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"},
	},
	"os":      {"": {"Exit"}},
	"syscall": {"": {"Exit"}},
	"runtime": {"": {"Goexit"}},
	"testing": {
		"common": {"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"},
		"TB":     {"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"},
	},
	"github.com/sirupsen/logrus": {
		"Entry":  {"Panic", "Panicf", "Panicln"},
		"Logger": {"Exit", "Panic", "Panicf", "Panicln"},
	},
	"go.uber.org/zap": {
		"Logger":        {"Fatal", "Panic"},
		"SugaredLogger": {"Fatal", "Fatalf", "Fatalln", "Fatalw", "Panic", "Panicf", "Panicln", "Panicw"},
	},
	"k8s.io/klog":    {"": {"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
	"k8s.io/klog/v2": {"": {"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
}

// knownFuncs is the flattened form of [nonReturning].
var knownFuncs = func() map[FuncName]struct{} {
	known := make(map[FuncName]struct{})

	for path, receivers := range nonReturning {
		for receiver, names := range receivers {
			for _, name := range names {
				known[FuncName{Path: path, Receiver: receiver, Name: name}] = struct{}{}
			}
		}
	}

	return known
}()

// CantReturn reports whether the call is to the builtin panic or a known function that does not return.
func CantReturn(info *types.Info, n *ast.CallExpr) bool {
	ex := n.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return cantReturnFunc(info, e)

	case *ast.SelectorExpr:
		return cantReturnFunc(info, e.Sel)

	case *ast.IndexExpr: // Generic function instantiation ("myFunc[T]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation ("myFunc[T, U]").
		ex = e.X
		goto unwrap

	case *ast.ParenExpr:
		ex = e.X
		goto unwrap

	default: // Function values and other expressions.
		return false
	}
}

func cantReturnFunc(info *types.Info, id *ast.Ident) bool {
	use := info.Uses[id]
	if fun, ok := use.(*types.Func); ok {
		_, ok := knownFuncs[FuncNameOf(fun)]

		return ok
	}

	return use == builtinPanic
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
