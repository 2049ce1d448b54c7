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

package analyzer_test

import (
	"path/filepath"
	"testing"

	. "fillmore-labs.com/nameofguard/analyzer"
	"fillmore-labs.com/nameofguard/internal/testsource"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "default",
		},
		{
			name:    "Generated",
			dir:     "generated",
			options: WithGenerated(true),
		},
		{
			name:    "NoField",
			dir:     "nofield",
			options: WithField(false),
		},
		{
			name:    "NoProperty",
			dir:     "noproperty",
			options: Options{WithProperty(false), WithPackageDir(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			testsource.Run(t, a, filepath.Join("testdata", tt.dir))
		})
	}
}

func TestAnalyzerDiagnostic(t *testing.T) {
	t.Parallel()

	diags := testsource.Run(t, New(WithProperty(false)), filepath.Join("testdata", "noproperty"))
	if len(diags) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]

	if got, want := d.Category, "RN0001"; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}

	if got, want := d.End.Offset-d.Pos.Offset, len("nameof(name)"); got != want {
		t.Errorf("Diagnostic covers %d bytes, want %d", got, want)
	}

	if d.URL == "" {
		t.Error("Diagnostic without URL")
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()
	if err := a.Flags.Parse([]string{"-field=false", "-generated"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for name, want := range map[string]string{
		"field":       "false",
		"property":    "true",
		"generated":   "true",
		"package-dir": "false",
	} {
		f := a.Flags.Lookup(name)
		if f == nil {
			t.Errorf("Flag -%s not registered", name)

			continue
		}

		if got := f.Value.String(); got != want {
			t.Errorf("Flag -%s = %s, want %s", name, got, want)
		}
	}
}
