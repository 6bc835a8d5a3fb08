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

// Package program runs the ctorsetters check over a whole program.
//
// Files are collected independently and in parallel, then all construction
// events are aggregated in a single step.
package program

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"runtime"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/ctorsetters/internal/aggregate"
	"fillmore-labs.com/ctorsetters/internal/collect"
	"fillmore-labs.com/ctorsetters/internal/config"
	"fillmore-labs.com/ctorsetters/internal/report"
)

// Loading errors.
var (
	ErrPackageLoad = errors.New("can't load packages")
	ErrNoPackages  = errors.New("no packages matched")
)

// Config configures a whole-program run.
type Config struct {
	// Dir is the directory the patterns are resolved in. Empty means the working directory.
	Dir string

	// Env is the environment of the build system query. Nil means the current environment.
	Env []string

	// Concurrency limits the number of files collected in parallel. Zero or less means GOMAXPROCS.
	Concurrency int

	// Behavior holds behavioral options.
	Behavior config.Flags

	// Rules drive the eligibility filter.
	Rules config.Rules

	// Logger receives progress information. Nil discards it.
	Logger *slog.Logger
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.DiscardHandler)
}

// Result is the outcome of a whole-program run.
type Result struct {
	// Fset holds the positions of all findings.
	Fset *token.FileSet

	// Packages is the number of analyzed packages.
	Packages int

	// Files is the number of analyzed files.
	Files int

	// Findings are the reported findings, sorted by type name.
	Findings []aggregate.Finding
}

// Diagnostics returns the findings with resolved positions.
func (r *Result) Diagnostics() []report.Diagnostic {
	return report.NewDiagnostics(r.Fset, r.Findings)
}

// Analyze loads the packages matching the patterns and reports the types that are
// always constructed with the same setters.
//
// Any loading or type error aborts the run without findings.
func Analyze(ctx context.Context, cfg Config, patterns ...string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "CtorSetters")
	defer task.End()

	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidRules, err)
	}

	logger := cfg.logger()
	fset := token.NewFileSet()

	pkgs, err := load(ctx, fset, cfg, patterns)
	if err != nil {
		return nil, err
	}

	files := units(fset, pkgs)

	logger.LogAttrs(ctx, slog.LevelDebug, "Packages loaded",
		slog.Int("packages", len(pkgs)), slog.Int("files", len(files)), slog.Int("concurrency", cfg.concurrency()))

	events, err := collectAll(ctx, fset, cfg, files)
	if err != nil {
		return nil, err
	}

	region := trace.StartRegion(ctx, "Aggregate")
	findings := aggregate.Aggregate(events)
	region.End()

	logger.LogAttrs(ctx, slog.LevelDebug, "Analysis done", slog.Int("findings", len(findings)))

	return &Result{Fset: fset, Packages: len(pkgs), Files: len(files), Findings: findings}, nil
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

func load(ctx context.Context, fset *token.FileSet, cfg Config, patterns []string) ([]*packages.Package, error) {
	defer trace.StartRegion(ctx, "Load").End()

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pcfg := &packages.Config{
		Mode:    loadMode,
		Context: ctx,
		Dir:     cfg.Dir,
		Env:     cfg.Env,
		Fset:    fset,
	}

	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPackages, strings.Join(patterns, " "))
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, errors.Join(errs...))
	}

	slices.SortFunc(pkgs, func(a, b *packages.Package) int { return strings.Compare(a.ID, b.ID) })

	return pkgs, nil
}

// unit is a single file with the type information of its package.
type unit struct {
	file *ast.File
	info *types.Info
}

// units returns the files of all packages, each file only once.
func units(fset *token.FileSet, pkgs []*packages.Package) []unit {
	var (
		files []unit
		seen  = make(map[string]struct{})
	)

	for _, pkg := range pkgs {
		for _, f := range pkg.Syntax {
			handle := fset.File(f.FileStart)
			if handle == nil {
				continue
			}

			if _, ok := seen[handle.Name()]; ok {
				continue
			}

			seen[handle.Name()] = struct{}{}

			files = append(files, unit{file: f, info: pkg.TypesInfo})
		}
	}

	return files
}

// collectAll collects the construction events of every file in its own task.
//
// Each task owns its collector and writes only its own result slot.
func collectAll(ctx context.Context, fset *token.FileSet, cfg Config, files []unit) ([][]collect.Event, error) {
	defer trace.StartRegion(ctx, "Collect").End()

	results := make([][]collect.Event, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency())

	opts := collect.Options{Behavior: cfg.Behavior, Rules: cfg.Rules}

	for i, u := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c := collect.New(fset, u.info, opts)
			results[i] = c.File(collect.FileCursor(u.file))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// partial results are discarded when the run was canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
