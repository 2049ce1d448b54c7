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

// Package host walks parsed files and dispatches declarations to the
// callbacks registered for their kind.
package host

import (
	"bytes"
	"slices"

	"fillmore-labs.com/nameofguard/internal/rule"
	"fillmore-labs.com/nameofguard/internal/syntax"
)

// Walker is a [rule.Registrar] that visits declarations.
//
// Register and Disable must complete before the first Walk; after that a
// Walker is read-only and Walk may be called concurrently.
type Walker struct {
	actions  map[syntax.Kind][]func(rule.NodeContext)
	disabled map[string]bool
}

// NewWalker creates an empty [Walker].
func NewWalker() *Walker {
	return &Walker{
		actions:  make(map[syntax.Kind][]func(rule.NodeContext)),
		disabled: make(map[string]bool),
	}
}

// Register implements [rule.Registrar].
func (w *Walker) Register(action func(rule.NodeContext), kinds ...syntax.Kind) {
	for _, kind := range kinds {
		w.actions[kind] = append(w.actions[kind], action)
	}
}

// Disable drops all diagnostics with the given IDs.
func (w *Walker) Disable(ids ...string) {
	for _, id := range ids {
		w.disabled[id] = true
	}
}

// Registered reports whether at least one action is registered for kind.
func (w *Walker) Registered(kind syntax.Kind) bool {
	return len(w.actions[kind]) > 0
}

// Walk visits every declaration of f in source order and passes diagnostics
// that are neither disabled nor suppressed to report. Diagnostics are
// suppressed by a warning pragma or a //nolint:nameofguard comment on the
// line of the declaration or the diagnostic.
func (w *Walker) Walk(f *syntax.File, report func(rule.Diagnostic)) {
	if f == nil {
		return
	}

	ctx := &nodeContext{}
	ctx.report = func(d rule.Diagnostic) {
		switch {
		case w.disabled[d.Descriptor.ID],
			Suppressed(f.Pragmas, d.Descriptor.ID, d.Span.Start),
			hasNoLintComment(f, ctx.decl.Range.Start),
			hasNoLintComment(f, d.Span.Start):
			return
		}

		report(d)
	}

	for _, decl := range f.Decls {
		if decl == nil {
			continue
		}

		ctx.decl = decl
		for _, action := range w.actions[decl.Kind] {
			action(ctx)
		}
	}
}

// Suppressed reports whether diagnostic id is disabled at offset by the
// pragmas, which must be in source order.
func Suppressed(pragmas []*syntax.Pragma, id string, offset int) bool {
	suppressed := false

	for _, p := range pragmas {
		if p.Offset >= offset {
			break
		}

		if len(p.IDs) == 0 || slices.Contains(p.IDs, id) {
			suppressed = p.Action == syntax.Disable
		}
	}

	return suppressed
}

// Linter is the name matched by `//nolint:` comments.
const Linter = "nameofguard"

// hasNoLintComment reports whether a //nolint:nameofguard comment follows
// offset on the same line.
func hasNoLintComment(f *syntax.File, offset int) bool {
	for _, n := range f.NoLints {
		if n.Offset <= offset {
			continue
		}

		if offset < 0 || n.Offset > len(f.Src) || bytes.IndexByte(f.Src[offset:n.Offset], '\n') >= 0 {
			break
		}

		if slices.Contains(n.Linters, Linter) || slices.Contains(n.Linters, "all") {
			return true
		}
	}

	return false
}

type nodeContext struct {
	decl   *syntax.Decl
	report func(rule.Diagnostic)
}

func (c *nodeContext) Decl() *syntax.Decl { return c.decl }

func (c *nodeContext) Report(d rule.Diagnostic) { c.report(d) }
