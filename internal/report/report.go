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

// Package report renders findings as analyzer diagnostics or as CLI output.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/ctorsetters/internal/aggregate"
)

// Message returns the human-readable diagnostic message of a finding.
func Message(f aggregate.Finding) string {
	format := "Type '%s' is always constructed with the same %d setters %s, pass these values via constructor instead"
	if len(f.Setters) == 1 {
		format = "Type '%s' is always constructed with the same %d setter %s, pass this value via constructor instead"
	}

	return fmt.Sprintf(format, f.Type, len(f.Setters), concatNames(f.Setters))
}

// Report emits one diagnostic per finding.
//
// The diagnostic is placed at the type declaration when it is part of the analyzed package
// and at the first construction site otherwise. All construction sites are related information.
func Report(ctx context.Context, p *analysis.Pass, findings []aggregate.Finding) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		pos := f.Decl
		if !inFiles(p.Files, pos) && len(f.Sites) > 0 {
			pos = f.Sites[0]
		}

		related := make([]analysis.RelatedInformation, 0, len(f.Sites))
		for _, site := range f.Sites {
			related = append(related, analysis.RelatedInformation{Pos: site, Message: "Constructed here"})
		}

		p.Report(analysis.Diagnostic{
			Pos:     pos,
			Message: Message(f),
			Related: related,
		})
	}
}

// inFiles reports whether the position lies in one of the files.
func inFiles(files []*ast.File, pos token.Pos) bool {
	for _, f := range files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return true
		}
	}

	return false
}

// concatNames formats a list of setter names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
