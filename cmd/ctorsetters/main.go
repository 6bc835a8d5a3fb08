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

// Command ctorsetters reports types that are always constructed with the same setters.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"fillmore-labs.com/ctorsetters/cmd/ctorsetters/commands"
)

// exitFindings is the exit code when diagnostics were reported, as in go/analysis drivers.
const exitFindings = 3

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)

	stop()

	switch {
	case err == nil:

	case errors.Is(err, commands.ErrFindings):
		os.Exit(exitFindings)

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
