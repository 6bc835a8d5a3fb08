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

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/ctorsetters/internal/aggregate"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Location is a resolved source position.
type Location struct {
	Filename string `json:"filename" yaml:"filename"`
	Line     int    `json:"line"     yaml:"line"`
	Column   int    `json:"column"   yaml:"column"`
}

func locationOf(fset *token.FileSet, pos token.Pos) Location {
	p := fset.Position(pos)

	return Location{Filename: p.Filename, Line: p.Line, Column: p.Column}
}

// String formats the location as file:line:column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Diagnostic is a finding with resolved positions, as printed by the CLI.
type Diagnostic struct {
	Type     string     `json:"type"     yaml:"type"`
	Setters  []string   `json:"setters"  yaml:"setters"`
	Message  string     `json:"message"  yaml:"message"`
	Location Location   `json:"location" yaml:"location"`
	Sites    []Location `json:"sites"    yaml:"sites"`
}

// NewDiagnostics resolves the positions of the findings.
func NewDiagnostics(fset *token.FileSet, findings []aggregate.Finding) []Diagnostic {
	diagnostics := make([]Diagnostic, 0, len(findings))

	for _, f := range findings {
		sites := make([]Location, 0, len(f.Sites))
		for _, site := range f.Sites {
			sites = append(sites, locationOf(fset, site))
		}

		diagnostics = append(diagnostics, Diagnostic{
			Type:     f.Type,
			Setters:  f.Setters,
			Message:  Message(f),
			Location: locationOf(fset, f.Decl),
			Sites:    sites,
		})
	}

	return diagnostics
}

// Format is an output format of the [Printer].
type Format uint8

const (
	// FormatText prints one line per diagnostic, followed by its construction sites.
	FormatText Format = iota

	// FormatJSON prints a JSON array.
	FormatJSON

	// FormatYAML prints a YAML sequence.
	FormatYAML
)

// ParseFormat returns the [Format] with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "text", "":
		return FormatText, nil

	case "json":
		return FormatJSON, nil

	case "yaml":
		return FormatYAML, nil

	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"

	case FormatJSON:
		return "json"

	case FormatYAML:
		return "yaml"

	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Printer writes diagnostics in a [Format].
type Printer struct {
	// Format is the output format.
	Format Format

	// NoColor disables colored text output.
	NoColor bool
}

// Print writes the diagnostics to w.
func (p Printer) Print(w io.Writer, diagnostics []Diagnostic) error {
	switch p.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(diagnostics)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(diagnostics); err != nil {
			return err
		}

		return enc.Close()

	default:
		return p.text(w, diagnostics)
	}
}

func (p Printer) text(w io.Writer, diagnostics []Diagnostic) error {
	pos, msg, site := color.New(color.Bold), color.New(color.FgYellow), color.New(color.FgCyan)
	if p.NoColor {
		pos.DisableColor()
		msg.DisableColor()
		site.DisableColor()
	}

	for _, d := range diagnostics {
		if _, err := pos.Fprintf(w, "%s: ", d.Location); err != nil {
			return err
		}

		if _, err := msg.Fprintln(w, d.Message); err != nil {
			return err
		}

		for _, s := range d.Sites {
			if _, err := site.Fprintf(w, "\t%s: constructed here\n", s); err != nil {
				return err
			}
		}
	}

	return nil
}
