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

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// RulesCmd creates the rules command, listing the reported diagnostics.
func RulesCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the reported rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)

			fmt.Fprintln(tw, "ID\tSEVERITY\tCATEGORY\tTITLE")

			for _, d := range rules.SupportedDiagnostics() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Severity, d.Category, d.Title)

				if *verbose {
					fmt.Fprintf(tw, "\t\t\t%s\n", d.Description)
					fmt.Fprintf(tw, "\t\t\tMessage: %s\n", d.MessageFormat)
					fmt.Fprintf(tw, "\t\t\t%s\n", d.HelpURL)
				}
			}

			return tw.Flush()
		},
	}
}
