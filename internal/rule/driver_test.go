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

package rule_test

import (
	"testing"

	. "fillmore-labs.com/nameofguard/internal/rule"
	"fillmore-labs.com/nameofguard/internal/syntax"
)

func recursiveDecl(kind syntax.Kind, name string) *syntax.Decl {
	return &syntax.Decl{Kind: kind, Vars: []*syntax.VarSpec{{
		Name: &syntax.Ident{Name: name},
		Value: &syntax.Call{
			Fun:   &syntax.Ident{Name: "nameof"},
			Args:  []syntax.Expr{&syntax.Ident{Name: name}},
			Range: syntax.Span{Start: 10, End: 18 + len(name)},
		},
	}}}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	d := Default()

	tests := []struct {
		name     string
		decl     *syntax.Decl
		evaluate func(*syntax.Decl) (Diagnostic, bool)
		wantID   string
		wantMsg  string
	}{
		{"field", recursiveDecl(syntax.Field, "name"), d.EvaluateField, FieldID, "Field 'name' references to it's own name"},
		{"property", recursiveDecl(syntax.Property, "Name"), d.EvaluateProperty, PropertyID, "Property 'Name' references to it's own name"},
		{"dispatch field", recursiveDecl(syntax.Field, "x"), d.Evaluate, FieldID, "Field 'x' references to it's own name"},
		{"dispatch property", recursiveDecl(syntax.Property, "X"), d.Evaluate, PropertyID, "Property 'X' references to it's own name"},
		{"field as property", recursiveDecl(syntax.Field, "x"), d.EvaluateProperty, "", ""},
		{"property as field", recursiveDecl(syntax.Property, "X"), d.EvaluateField, "", ""},
		{"invalid kind", recursiveDecl(syntax.InvalidKind, "x"), d.Evaluate, "", ""},
		{"nil", nil, d.Evaluate, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diag, ok := tt.evaluate(tt.decl)
			if ok != (tt.wantID != "") {
				t.Fatalf("Got match %t, want %t", ok, tt.wantID != "")
			}

			if !ok {
				return
			}

			if got := diag.Descriptor.ID; got != tt.wantID {
				t.Errorf("Got ID %q, want %q", got, tt.wantID)
			}

			if got := diag.Message; got != tt.wantMsg {
				t.Errorf("Got message %q, want %q", got, tt.wantMsg)
			}

			if got := diag.Descriptor.Severity; got != Warning {
				t.Errorf("Got severity %s, want %s", got, Warning)
			}

			if want := tt.decl.Vars[0].Value.Span(); diag.Span != want {
				t.Errorf("Got span %s, want %s", diag.Span, want)
			}
		})
	}
}

type registrar map[syntax.Kind][]func(NodeContext)

func (r registrar) Register(action func(NodeContext), kinds ...syntax.Kind) {
	for _, k := range kinds {
		r[k] = append(r[k], action)
	}
}

type nodeContext struct {
	decl    *syntax.Decl
	reports []Diagnostic
}

func (c *nodeContext) Decl() *syntax.Decl  { return c.decl }
func (c *nodeContext) Report(d Diagnostic) { c.reports = append(c.reports, d) }

func TestInitialize(t *testing.T) {
	t.Parallel()

	r := make(registrar)
	Default().Initialize(r)

	for _, kind := range syntax.Kinds() {
		actions := r[kind]
		if len(actions) != 1 {
			t.Fatalf("Got %d %s actions, want 1", len(actions), kind)
		}

		ctx := &nodeContext{decl: recursiveDecl(kind, "v")}
		actions[0](ctx)

		if len(ctx.reports) != 1 {
			t.Errorf("Got %d %s reports, want 1", len(ctx.reports), kind)
		}

		ctx = &nodeContext{decl: &syntax.Decl{Kind: kind}}
		actions[0](ctx)

		if len(ctx.reports) != 0 {
			t.Errorf("Got %d %s reports for empty declaration, want 0", len(ctx.reports), kind)
		}
	}
}

func TestSupportedDiagnostics(t *testing.T) {
	t.Parallel()

	got := Default().SupportedDiagnostics()
	if len(got) != 2 {
		t.Fatalf("Got %d descriptors, want 2", len(got))
	}

	if got[0].ID == got[1].ID {
		t.Errorf("Descriptor IDs are not distinct: %q", got[0].ID)
	}

	for _, d := range got {
		if !d.EnabledByDefault || d.Severity != Warning || d.Category != Category {
			t.Errorf("Unexpected descriptor %+v", d)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	d := Default()

	for _, id := range []string{FieldID, PropertyID} {
		if desc, ok := d.Lookup(id); !ok || desc.ID != id {
			t.Errorf("Lookup(%q) = %+v, %t", id, desc, ok)
		}
	}

	if _, ok := d.Lookup("RN9999"); ok {
		t.Error("Lookup of unknown ID succeeded")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		args   []string
		want   string
	}{
		{"Field '{0}' references to it's own name", []string{"x"}, "Field 'x' references to it's own name"},
		{"{0} and {1}", []string{"a", "b"}, "a and b"},
		{"{0}{0}", []string{"a"}, "aa"},
		{"{{0}} {0}", []string{"a"}, "{0} a"},
		{"missing {1}", []string{"a"}, "missing {1}"},
		{"bad {x}", []string{"a"}, "bad {x}"},
		{"open {0", []string{"a"}, "open {0"},
		{"no slots", nil, "no slots"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			d := Descriptor{MessageFormat: tt.format}
			if got := d.Format(tt.args...); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
