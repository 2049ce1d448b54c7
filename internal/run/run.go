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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/nameofguard/internal/config"
	"fillmore-labs.com/nameofguard/internal/csharp"
	"fillmore-labs.com/nameofguard/internal/host"
	"fillmore-labs.com/nameofguard/internal/rule"
)

// ErrReadFile is returned when a source file of the pass can't be read.
var ErrReadFile = errors.New("can't read source file")

// Extension is the file name extension of C# sources.
const Extension = ".cs"

// Run executes the nameofguard analyzer on the C# sources of the pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "NameofGuard")
	defer task.End()

	w := r.walker()

	for _, src := range Sources(p, r.Behavior.Enabled(config.PackageDir)) {
		if err := r.runFile(ctx, p, w, src); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func (r *Options) walker() *host.Walker {
	w := host.NewWalker()
	rule.Default().Initialize(w)

	if !r.Rules.Enabled(config.FieldRule) {
		w.Disable(rule.FieldID)
	}

	if !r.Rules.Enabled(config.PropertyRule) {
		w.Disable(rule.PropertyID)
	}

	return w
}

func (r *Options) runFile(ctx context.Context, p *analysis.Pass, w *host.Walker, src Source) error {
	defer trace.StartRegion(ctx, "File").End()

	trace.Log(ctx, "file", src.Name)

	content, err := src.read(p)
	if err != nil {
		return fmt.Errorf("nameofguard: %w %s: %w", ErrReadFile, src.Name, err)
	}

	f := csharp.Parse(src.Name, content)
	if f.Generated && !r.Behavior.Enabled(config.IncludeGenerated) {
		return nil
	}

	handle := p.Fset.AddFile(src.Name, -1, len(content))
	handle.SetLinesForContent(content)

	w.Walk(f, func(d rule.Diagnostic) {
		if !d.Span.Valid() || d.Span.End > len(content) {
			reportInternalError(p, handle.Pos(0), "%s: span %s outside of %s", d.Descriptor.ID, d.Span, src.Name)

			return
		}

		p.Report(analysis.Diagnostic{
			Pos:      handle.Pos(d.Span.Start),
			End:      handle.Pos(d.Span.End),
			Category: d.Descriptor.ID,
			Message:  d.Message,
			URL:      d.Descriptor.HelpURL,
		})
	})

	return nil
}

func reportInternalError(p *analysis.Pass, pos token.Pos, format string, args ...any) {
	msg := fmt.Sprintf("Internal Error: "+format, args...)
	p.Report(analysis.Diagnostic{Pos: pos, End: pos, Message: msg})
}

// Source is a C# file analyzed by a pass.
type Source struct {
	Name string
	// Discovered is true for files found in a package directory
	// rather than listed by the pass.
	Discovered bool
}

func (s Source) read(p *analysis.Pass) ([]byte, error) {
	if s.Discovered || p.ReadFile == nil {
		return os.ReadFile(s.Name)
	}

	return p.ReadFile(s.Name)
}

// Sources returns the C# files of the pass, sorted by name.
// With packageDir, it also globs the directories of the pass's files.
func Sources(p *analysis.Pass, packageDir bool) []Source {
	var sources []Source

	seen := make(map[string]bool)
	add := func(name string, discovered bool) {
		if seen[name] || !strings.EqualFold(filepath.Ext(name), Extension) {
			return
		}

		seen[name] = true
		sources = append(sources, Source{Name: name, Discovered: discovered})
	}

	for _, name := range p.OtherFiles {
		add(name, false)
	}

	for _, name := range p.IgnoredFiles {
		add(name, false)
	}

	if packageDir {
		for _, dir := range packageDirs(p) {
			matches, _ := filepath.Glob(filepath.Join(dir, "*"+Extension)) // only ErrBadPattern
			for _, name := range matches {
				add(name, true)
			}
		}
	}

	slices.SortFunc(sources, func(a, b Source) int { return strings.Compare(a.Name, b.Name) })

	return sources
}

func packageDirs(p *analysis.Pass) []string {
	var dirs []string

	for _, f := range p.Files {
		if handle := p.Fset.File(f.FileStart); handle != nil {
			dirs = append(dirs, filepath.Dir(handle.Name()))
		}
	}

	for _, name := range p.OtherFiles {
		dirs = append(dirs, filepath.Dir(name))
	}

	slices.Sort(dirs)

	return slices.Compact(dirs)
}
