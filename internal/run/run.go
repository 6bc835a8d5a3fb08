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

// Package run implements the single package analysis pipeline of the ctorsetters analyzer.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ctorsetters/internal/aggregate"
	"fillmore-labs.com/ctorsetters/internal/astutil"
	"fillmore-labs.com/ctorsetters/internal/collect"
	"fillmore-labs.com/ctorsetters/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Result is the outcome of a package analysis.
type Result struct {
	// Events are the construction events per file, in file order.
	Events [][]collect.Event

	// Findings are the reported findings of this package.
	Findings []aggregate.Finding
}

// Run executes the ctorsetters analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("ctorsetters: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if err := r.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("ctorsetters: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CtorSetters")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	c := collect.New(p.Fset, p.TypesInfo, collect.Options{Behavior: r.Behavior, Rules: r.Rules})

	// Stage 1: collect construction events per file
	events := make([][]collect.Event, 0, len(p.Files))

	region := trace.StartRegion(ctx, "Collect")

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		if currentFile := astutil.NewCurrentFile(p.Fset, file); !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		events = append(events, c.File(f))
	}

	region.End()

	// Stage 2: aggregate within the package
	findings := aggregate.Aggregate(events)

	// Stage 3: report
	report.Report(ctx, p, findings)

	return &Result{Events: events, Findings: findings}, nil
}
