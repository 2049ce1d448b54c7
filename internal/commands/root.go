// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Package commands implements the nameofguard command line interface.
package commands

import (
	"errors"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Exit codes of the nameofguard command.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// ErrFindings is returned by the check command when diagnostics were reported.
var ErrFindings = errors.New("recursive nameof found")

// ExitCode maps the error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrFindings):
		return ExitFindings

	default:
		return ExitError
	}
}

// RootCmd creates the root command with all subcommands.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "nameofguard",
		Short: "Detect C# fields and properties initialized with nameof of themselves",
		Long: `nameofguard reports C# field and property declarations whose initializer
is nameof applied to the declaration itself, like

    private readonly string name = nameof(name);

Such literals are easily missed by rename refactorings.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	cmd.AddCommand(CheckCmd(&verbose))
	cmd.AddCommand(RulesCmd(&verbose))

	return cmd
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}
