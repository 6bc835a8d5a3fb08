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

// Package commands implements the ctorsetters command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/ctorsetters/internal/config"
	"fillmore-labs.com/ctorsetters/internal/program"
	"fillmore-labs.com/ctorsetters/internal/report"
)

// ErrFindings is returned when at least one diagnostic was printed.
var ErrFindings = errors.New("types constructed with the same setters found")

// rootOptions are the flag values shared by all commands.
type rootOptions struct {
	configPath string
	dir        string
	verbose    bool
}

// rules loads the effective rules, searching the configuration file in the analyzed directory.
func (o *rootOptions) rules() (config.Rules, error) {
	if o.dir != "" {
		return config.Load(o.configPath, o.dir)
	}

	return config.Load(o.configPath)
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runOptions are the flag values of the analysis.
type runOptions struct {
	format       string
	jobs         int
	generated    bool
	constructors bool
	matchAll     bool
	noColor      bool
}

func (o *runOptions) behavior() config.Flags {
	var b config.Flags
	b.Set(config.IncludeGenerated, o.generated)
	b.Set(config.ConstructorFuncs, o.constructors)
	b.Set(config.MatchAll, o.matchAll)

	return b
}

// NewRootCommand returns the ctorsetters command writing diagnostics to stdout and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		root rootOptions
		run  runOptions
	)

	cmd := &cobra.Command{
		Use:   "ctorsetters [flags] [packages]",
		Short: "Report types that are always constructed with the same setters",
		Long: `ctorsetters loads the given packages (default ".") and reports every type
that is constructed in at least two places and configured with the same
set of setter methods at each of them. Pass these values via constructor instead.

Exit status is 0 when no types were reported, 3 when there were reports
and 1 on errors.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyze(cmd, &root, &run, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&root.configPath, "config", "", "configuration file (default: "+config.DefaultConfigName+".yaml in the analyzed directory)")
	pf.StringVarP(&root.dir, "dir", "C", "", "directory to analyze the packages in")
	pf.BoolVarP(&root.verbose, "verbose", "v", false, "verbose output")

	registerRunFlags(cmd, &run)

	cmd.AddCommand(newConfigCommand(&root))

	return cmd
}

func registerRunFlags(cmd *cobra.Command, run *runOptions) {
	defaults := config.DefaultBehavior()

	f := cmd.Flags()
	f.StringVarP(&run.format, "format", "f", report.FormatText.String(), "output format: text, json or yaml")
	f.IntVarP(&run.jobs, "jobs", "j", 0, "number of files analyzed in parallel (default: GOMAXPROCS)")
	f.BoolVar(&run.generated, "generated", defaults.Enabled(config.IncludeGenerated), "analyze generated files")
	f.BoolVar(&run.constructors, "constructors", defaults.Enabled(config.ConstructorFuncs), "treat NewXxx functions as constructions")
	f.BoolVar(&run.matchAll, "match-all", defaults.Enabled(config.MatchAll), "attribute method calls by variable name to all open constructions")
	f.BoolVar(&run.noColor, "no-color", false, "disable colored text output")
}

func analyze(cmd *cobra.Command, root *rootOptions, run *runOptions, patterns []string) error {
	format, err := report.ParseFormat(run.format)
	if err != nil {
		return err
	}

	rules, err := root.rules()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := root.logger(cmd.ErrOrStderr())

	behavior := run.behavior()
	logger.LogAttrs(ctx, slog.LevelDebug, "Starting analysis", slog.Any("rules", rules), slog.Any("behavior", behavior))

	result, err := program.Analyze(ctx, program.Config{
		Dir:         root.dir,
		Concurrency: run.jobs,
		Behavior:    behavior,
		Rules:       rules,
		Logger:      logger,
	}, patterns...)
	if err != nil {
		return err
	}

	diagnostics := result.Diagnostics()

	printer := report.Printer{Format: format, NoColor: run.noColor}
	if err := printer.Print(cmd.OutOrStdout(), diagnostics); err != nil {
		return fmt.Errorf("can't write diagnostics: %w", err)
	}

	if len(diagnostics) > 0 {
		return fmt.Errorf("%w: %d", ErrFindings, len(diagnostics))
	}

	return nil
}
