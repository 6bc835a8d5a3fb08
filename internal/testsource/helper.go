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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the ctorsetters collector by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	// Package is the package path of parsed fragments.
	Package = "test"

	// Filename is the file name of parsed fragments.
	Filename = "test.go"

	wrapper = "_"
)

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	return ParseWithDecls(tb, "", src)
}

// ParseWithDecls is like [Parse], but places the package-level declarations `decls`
// (types, methods, imports) before the wrapper function.
func ParseWithDecls(tb testing.TB, decls, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, Filename, Source(decls, src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = wrapperFunc(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing components that require type information
// (e.g. for method selection, constructed types, or non-returning calls).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(Package, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Source returns the complete file contents for a fragment, as parsed by [ParseWithDecls].
func Source(decls, src string) []byte {
	const (
		header     = "package " + Package + "\n\n"
		funcHeader = "\nfunc " + wrapper + "() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(funcHeader) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(decls) + len(src))

	srcFile.WriteString(header)     // ignore error
	srcFile.WriteString(decls)      // ignore error
	srcFile.WriteString(funcHeader) // ignore error
	srcFile.WriteString(src)        // ignore error
	srcFile.WriteString(suffix)     // ignore error

	return srcFile.Bytes()
}

func wrapperFunc(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if fn := c.Node().(*ast.FuncDecl); fn.Recv == nil && fn.Name.Name == wrapper {
			return fn, c.ChildAt(edge.FuncDecl_Body, -1)
		}
	}

	return nil, root
}
