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

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/types/typeutil"
)

// Statement is the classification of a single statement.
type Statement struct {
	// Kind is the statement kind.
	Kind Kind

	// Var is the assigned variable of a construction or the receiver variable of a call.
	Var *ast.Ident

	// Type is the constructed type of a construction.
	Type *types.TypeName

	// Method is the method name of a call.
	Method string
}

// Classify sorts a statement into the closed [Kind] taxonomy.
//
// Constructions are single variable assignments of a composite literal `T{...}`,
// its address `&T{...}` or `new(T)` of a named struct type. When constructors is true,
// calls of package level `NewXxx` functions returning `T` or `*T` declared in the same
// package also count as constructions.
func Classify(info *types.Info, stmt ast.Stmt, constructors bool) Statement {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		if stmt.Tok != token.ASSIGN && stmt.Tok != token.DEFINE || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			break
		}

		id, ok := ast.Unparen(stmt.Lhs[0]).(*ast.Ident)
		if !ok || id.Name == "_" {
			break
		}

		if tn := constructed(info, stmt.Rhs[0], constructors); tn != nil {
			return Statement{Kind: KindConstruction, Var: id, Type: tn}
		}

	case *ast.ExprStmt:
		call, ok := ast.Unparen(stmt.X).(*ast.CallExpr)
		if !ok {
			break
		}

		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok {
			break
		}

		id, ok := ast.Unparen(sel.X).(*ast.Ident)
		if !ok {
			break
		}

		if selection, ok := info.Selections[sel]; ok && selection.Kind() == types.MethodVal {
			return Statement{Kind: KindCall, Var: id, Method: sel.Sel.Name}
		}
	}

	return Statement{Kind: KindOther}
}

// constructed returns the type constructed by the expression, or nil.
func constructed(info *types.Info, expr ast.Expr, constructors bool) *types.TypeName {
	switch e := ast.Unparen(expr).(type) {
	case *ast.CompositeLit:
		return namedOf(info.TypeOf(e))

	case *ast.UnaryExpr:
		if _, ok := ast.Unparen(e.X).(*ast.CompositeLit); !ok || e.Op != token.AND {
			return nil
		}

		return namedOf(info.TypeOf(e))

	case *ast.CallExpr:
		if builtinNew(info, e) {
			return namedOf(info.TypeOf(e))
		}

		if constructors {
			return constructorResult(info, e)
		}
	}

	return nil
}

// namedOf returns the named struct type of a value or pointer type, or nil.
func namedOf(t types.Type) *types.TypeName {
	if t == nil {
		return nil
	}

	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	named = named.Origin()
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil
	}

	return named.Obj()
}

func builtinNew(info *types.Info, call *ast.CallExpr) bool {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok || len(call.Args) != 1 {
		return false
	}

	b, ok := info.Uses[id].(*types.Builtin)

	return ok && b.Name() == "new"
}

// constructorResult returns the type constructed by a `NewXxx` function, or nil.
func constructorResult(info *types.Info, call *ast.CallExpr) *types.TypeName {
	fn := typeutil.StaticCallee(info, call)
	if fn == nil || !constructorName(fn.Name()) {
		return nil
	}

	sig := fn.Signature()
	if sig.Recv() != nil || sig.Results().Len() != 1 {
		return nil
	}

	tn := namedOf(sig.Results().At(0).Type())
	if tn == nil || tn.Pkg() != fn.Pkg() {
		return nil
	}

	return tn
}

// constructorName reports whether name is "New" or "New" followed by an upper case letter.
func constructorName(name string) bool {
	rest, ok := strings.CutPrefix(name, "New")
	if !ok {
		return false
	}

	if rest == "" {
		return true
	}

	r, _ := utf8.DecodeRuneInString(rest)

	return unicode.IsUpper(r)
}
