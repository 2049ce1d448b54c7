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

// Package driver runs an [analysis.Analyzer] over directories of C# sources.
//
// Each directory becomes one [analysis.Pass] whose OtherFiles are the
// directory's C# files, the way a package lists its non-Go files. Passes run
// concurrently; all share one [token.FileSet].
package driver

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
)

var (
	// ErrNoSources is returned when the given paths contain no C# sources.
	ErrNoSources = errors.New("no C# sources found")

	// ErrUnsupported is returned for analyzers this driver can't run.
	ErrUnsupported = errors.New("unsupported analyzer")
)

// Extension is the file name extension of C# sources.
const Extension = ".cs"

// skipDirs are build output and tooling directories never searched.
var skipDirs = map[string]bool{".git": true, ".vs": true, "bin": true, "obj": true, "node_modules": true}

// Config configures a [Run].
type Config struct {
	// Jobs limits the number of concurrent passes. Zero or less means GOMAXPROCS.
	Jobs int

	// Logger receives progress messages. Nil means [slog.Default].
	Logger *slog.Logger
}

// Diagnostic is a reported finding with resolved positions.
type Diagnostic struct {
	Pos, End token.Position
	Category string
	Message  string
	URL      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Run analyzes the C# sources under paths, which may be files or directories.
// Directories are searched recursively. Diagnostics are sorted by position.
func (c Config) Run(ctx context.Context, a *analysis.Analyzer, paths ...string) ([]Diagnostic, error) {
	if len(a.Requires) > 0 || len(a.FactTypes) > 0 {
		return nil, fmt.Errorf("%w %s: prerequisites and facts are not supported", ErrUnsupported, a.Name)
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	packages, err := Collect(paths...)
	if err != nil {
		return nil, err
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, strings.Join(paths, ", "))
	}

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fset := token.NewFileSet()
	results := make([][]analysis.Diagnostic, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(packages)))

	for i, pkg := range packages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logger.DebugContext(gctx, "Analyzing directory", slog.String("dir", pkg.Dir), slog.Int("files", len(pkg.Files)))

			diags, err := runPass(a, fset, pkg)
			if err != nil {
				return err
			}

			results[i] = diags

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var diagnostics []Diagnostic

	for _, diags := range results {
		for _, d := range diags {
			diagnostics = append(diagnostics, Diagnostic{
				Pos:      fset.Position(d.Pos),
				End:      fset.Position(d.End),
				Category: d.Category,
				Message:  d.Message,
				URL:      d.URL,
			})
		}
	}

	slices.SortStableFunc(diagnostics, compare)

	return diagnostics, nil
}

func compare(a, b Diagnostic) int {
	return cmp.Or(
		strings.Compare(a.Pos.Filename, b.Pos.Filename),
		cmp.Compare(a.Pos.Offset, b.Pos.Offset),
		strings.Compare(a.Category, b.Category),
	)
}

func runPass(a *analysis.Analyzer, fset *token.FileSet, pkg Package) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic

	pass := &analysis.Pass{
		Analyzer:   a,
		Fset:       fset,
		OtherFiles: pkg.Files,
		ResultOf:   make(map[*analysis.Analyzer]any),
		Report:     func(d analysis.Diagnostic) { diags = append(diags, d) },
		ReadFile:   os.ReadFile,
	}

	if _, err := a.Run(pass); err != nil {
		return nil, fmt.Errorf("%s: %w", pkg.Dir, err)
	}

	return diags, nil
}

// Package is a directory and the C# files directly in it.
type Package struct {
	Dir   string
	Files []string
}

// Collect groups the C# files under paths by directory.
func Collect(paths ...string) ([]Package, error) {
	byDir := make(map[string][]string)

	add := func(name string) {
		dir := filepath.Dir(name)
		if !slices.Contains(byDir[dir], name) {
			byDir[dir] = append(byDir[dir], name)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if strings.EqualFold(filepath.Ext(path), Extension) {
				add(filepath.Clean(path))
			}

			continue
		}

		err = filepath.WalkDir(path, func(name string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if name != path && skipDirs[d.Name()] {
					return filepath.SkipDir
				}

			case strings.EqualFold(filepath.Ext(name), Extension):
				add(name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	packages := make([]Package, 0, len(byDir))
	for dir, files := range byDir {
		slices.Sort(files)
		packages = append(packages, Package{Dir: dir, Files: files})
	}

	slices.SortFunc(packages, func(a, b Package) int { return strings.Compare(a.Dir, b.Dir) })

	return packages, nil
}
