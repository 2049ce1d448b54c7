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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fillmore-labs.com/nameofguard/analyzer"
	"fillmore-labs.com/nameofguard/internal/driver"
)

// Configuration keys, shared by flags, the config file and NAMEOFGUARD_* environment variables.
const (
	keyFormat    = "format"
	keyJobs      = "jobs"
	keyGenerated = "generated"
	keyField     = "field"
	keyProperty  = "property"
	keyColor     = "color"
)

const (
	configName = ".nameofguard"
	envPrefix  = "NAMEOFGUARD"
)

// checkConfig is the resolved configuration of a check run.
type checkConfig struct {
	Format    string
	Jobs      int
	Generated bool
	Field     bool
	Property  bool
	Color     string
}

// CheckCmd creates the check command.
func CheckCmd(verbose *bool) *cobra.Command {
	var configFile string

	v := viper.New()

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check C# sources for recursive nameof",
		Long: `Check analyzes the C# files in the given files and directories.
Directories are searched recursively, skipping bin, obj and .git.

Settings are read from .nameofguard.yaml in the current directory
(or the file given with --config) and from NAMEOFGUARD_* environment
variables. Command line flags take precedence.

Exit status is 1 when recursive nameof was found and 2 on errors.`,
		Example: `  nameofguard check src
  nameofguard check --format json --no-property Program.cs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, configFile); err != nil {
				return err
			}

			if cmd.Flags().Changed("no-field") {
				v.Set(keyField, false)
			}

			if cmd.Flags().Changed("no-property") {
				v.Set(keyProperty, false)
			}

			cfg := checkConfig{
				Format:    v.GetString(keyFormat),
				Jobs:      v.GetInt(keyJobs),
				Generated: v.GetBool(keyGenerated),
				Field:     v.GetBool(keyField),
				Property:  v.GetBool(keyProperty),
				Color:     v.GetString(keyColor),
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			return runCheck(cmd, cfg, *verbose, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Read settings from `file`")
	flags.StringP(keyFormat, "f", "text", "Output format (text, json)")
	flags.IntP(keyJobs, "j", 0, "Number of directories analyzed in parallel (0 = number of CPUs)")
	flags.Bool(keyGenerated, false, "Also report diagnostics in generated files")
	flags.Bool("no-field", false, "Do not report recursive nameof in field declarations")
	flags.Bool("no-property", false, "Do not report recursive nameof in property declarations")
	flags.String(keyColor, "auto", "Colorize text output (auto, always, never)")

	v.SetDefault(keyField, true)
	v.SetDefault(keyProperty, true)

	for _, key := range [...]string{keyFormat, keyJobs, keyGenerated, keyColor} {
		_ = v.BindPFlag(key, flags.Lookup(key)) // flag exists
	}

	return cmd
}

// loadConfig reads the config file, when present, and enables environment overrides.
func loadConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("can't read config: %w", err)
	}

	return nil
}

func runCheck(cmd *cobra.Command, cfg checkConfig, verbose bool, paths []string) error {
	ctx := cmd.Context()

	format, err := newFormatter(cfg.Format, cfg.Color)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := analyzer.Options{
		analyzer.WithField(cfg.Field),
		analyzer.WithProperty(cfg.Property),
		analyzer.WithGenerated(cfg.Generated),
	}

	logger.DebugContext(ctx, "Starting check", slog.Any("options", opts), slog.Any("paths", paths), slog.Int("jobs", cfg.Jobs))

	diags, err := driver.Config{Jobs: cfg.Jobs, Logger: logger}.Run(ctx, analyzer.New(opts), paths...)
	if err != nil {
		return err
	}

	if err := format(cmd.OutOrStdout(), diags); err != nil {
		return err
	}

	logger.DebugContext(ctx, "Check finished", slog.Int("diagnostics", len(diags)))

	if len(diags) > 0 {
		return fmt.Errorf("%w: %d diagnostics", ErrFindings, len(diags))
	}

	return nil
}
