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
	"os"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ctorsetters/internal/astutil"
	"fillmore-labs.com/ctorsetters/internal/config"
	"fillmore-labs.com/ctorsetters/internal/flow"
)

// Options configure a [Collector].
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Flags

	// Rules drive the eligibility filter.
	Rules config.Rules

	// ReadFile reads the declaring file of a constructed type. Defaults to [os.ReadFile].
	ReadFile func(filename string) ([]byte, error)
}

// Collector finds construction events in the blocks of a file.
//
// A Collector is not safe for concurrent use, create one per file task.
type Collector struct {
	fset     *token.FileSet
	info     *types.Info
	flow     flow.Tracker
	behavior config.Flags
	rules    config.Rules
	eligible eligibility
	current  astutil.CurrentFile
}

// New creates a [Collector] for files type-checked into info.
func New(fset *token.FileSet, info *types.Info, opts Options) *Collector {
	readFile := opts.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	return &Collector{
		fset:     fset,
		info:     info,
		flow:     flow.New(info),
		behavior: opts.Behavior,
		rules:    opts.Rules,
		eligible: newEligibility(fset, opts.Rules, readFile),
	}
}

// FileCursor returns the cursor of a single file, for use with [Collector.File].
func FileCursor(f *ast.File) inspector.Cursor {
	c, _ := inspector.New([]*ast.File{f}).Root().FirstChild()

	return c
}

// File returns the construction events of all functions in the file at cursor f.
//
// Function literals assigned to package level variables are scanned like functions.
// Generated files, test files and files or functions excluded by a nolint directive are skipped,
// as are methods of test types.
func (c *Collector) File(f inspector.Cursor) []Event {
	file, ok := f.Node().(*ast.File)
	if !ok {
		return nil
	}

	c.current = astutil.NewCurrentFile(c.fset, file)
	defer func() { c.current = astutil.CurrentFile{} }()

	switch {
	case !c.current.Valid(), c.current.Test(), c.current.NoLint():
		return nil

	case c.current.Generated() && !c.behavior.Enabled(config.IncludeGenerated):
		return nil
	}

	var events []Event

	for d := range f.Children() {
		switch decl := d.Node().(type) {
		case *ast.FuncDecl:
			if decl.Body == nil || astutil.DocHasNoLint(decl.Doc) || c.testReceiver(decl) {
				continue
			}

			events = append(events, c.Func(d.ChildAt(edge.FuncDecl_Body, -1))...)

		case *ast.GenDecl:
			if decl.Tok != token.VAR || astutil.DocHasNoLint(decl.Doc) {
				continue
			}

			events = append(events, c.varFuncs(d)...)
		}
	}

	return events
}

// varFuncs returns the construction events of the outermost function literals
// in a package level variable declaration.
func (c *Collector) varFuncs(decl inspector.Cursor) []Event {
	var events []Event

	for lit := range decl.Preorder((*ast.FuncLit)(nil)) {
		if nestedLit(lit, decl) {
			continue
		}

		events = append(events, c.Func(lit.ChildAt(edge.FuncLit_Body, -1))...)
	}

	return events
}

// nestedLit reports whether the function literal at lit is enclosed by another one below decl.
func nestedLit(lit, decl inspector.Cursor) bool {
	for p := lit.Parent(); p != decl; p = p.Parent() {
		if _, ok := p.Node().(*ast.FuncLit); ok {
			return true
		}
	}

	return false
}

// Func returns the construction events of all blocks below the function body at cursor body.
//
// Blocks are the bodies of functions, function literals, if, for and range statements.
func (c *Collector) Func(body inspector.Cursor) []Event {
	var events []Event

	for b := range body.Preorder((*ast.BlockStmt)(nil)) {
		switch e, _ := b.ParentEdge(); e {
		case edge.FuncDecl_Body, edge.FuncLit_Body, edge.IfStmt_Body, edge.ForStmt_Body, edge.RangeStmt_Body:
			events = append(events, c.Block(b.Node().(*ast.BlockStmt).List)...)
		}
	}

	return events
}

// tracked is a construction event together with the variable it is attributed by.
type tracked struct {
	obj   types.Object
	event Event
}

// Block scans a statement list for constructions followed by setter calls.
//
// Once a construction was seen, any return or call that can't return in a later statement
// discards all events of the block.
func (c *Collector) Block(stmts []ast.Stmt) []Event {
	var (
		open   []tracked
		broken bool
	)

	constructors := c.behavior.Enabled(config.ConstructorFuncs)

	for _, stmt := range stmts {
		if len(open) > 0 && c.flow.Breaks(stmt) {
			broken = true

			continue
		}

		s := Classify(c.info, stmt, constructors)

		switch s.Kind {
		case KindConstruction:
			if c.current.NoLintComment(stmt.Pos()) || !c.eligible.eligible(s.Type) {
				continue
			}

			open = append(open, tracked{
				obj: c.info.ObjectOf(s.Var),
				event: Event{
					Variable: s.Var.Name,
					Type:     QualifiedName(s.Type),
					Pos:      stmt.Pos(),
					Decl:     s.Type.Pos(),
				},
			})

		case KindCall:
			if len(open) == 0 || c.rules.Accessor(s.Method) {
				continue
			}

			c.attribute(open, s)

		case KindOther:
		}
	}

	if broken || len(open) == 0 {
		return nil
	}

	events := make([]Event, len(open))
	for i, t := range open {
		events[i] = t.event
	}

	return events
}

// attribute records a setter call on the matching open events.
func (c *Collector) attribute(open []tracked, s Statement) {
	if c.behavior.Enabled(config.MatchAll) {
		for i := range open {
			if open[i].event.Variable == s.Var.Name {
				open[i].event.Setters = append(open[i].event.Setters, s.Method)
			}
		}

		return
	}

	obj := c.info.ObjectOf(s.Var)
	if obj == nil {
		return
	}

	for i := len(open) - 1; i >= 0; i-- {
		if open[i].obj == obj {
			open[i].event.Setters = append(open[i].event.Setters, s.Method)

			return
		}
	}
}

// testReceiver reports whether the function is a method of a test type.
func (c *Collector) testReceiver(fun *ast.FuncDecl) bool {
	if fun.Recv == nil || len(fun.Recv.List) == 0 {
		return false
	}

	expr := fun.Recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X

		case *ast.ParenExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.IndexListExpr:
			expr = e.X

		case *ast.Ident:
			return c.rules.TestType(e.Name)

		default:
			return false
		}
	}
}
