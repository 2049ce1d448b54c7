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
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/nameofguard/analyzer"
	"fillmore-labs.com/nameofguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Rule
		args    []string
		want    bool
		wantErr bool
	}{
		{
			name:    "Enable",
			initial: config.PropertyRule,
			args:    []string{"-field"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.FieldRule,
			args:    []string{"-field=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.FieldRule,
			args:    []string{"-field=off"},
			want:    false,
		},
		{
			name:    "Invalid",
			initial: config.FieldRule,
			args:    []string{"-field=maybe"},
			want:    true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewFlags(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(&strings.Builder{})

			const value = config.FieldRule
			fv := NewFlagValue(&flags, value)
			fs.Var(fv, "field", "report fields")

			if err := fs.Parse(tt.args); (err != nil) != tt.wantErr {
				t.Fatalf("Parse error = %v, want error %t", err, tt.wantErr)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("FieldRule enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if got := flags.Enabled(config.PropertyRule); got != (tt.initial == config.PropertyRule) {
				t.Errorf("PropertyRule changed to %v", got)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewFlags(config.FieldRule)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewFlagValue(&flags, config.FieldRule)
	fs.Var(fv, "field", "report fields")

	const expectedUsage = `
  -field
    	report fields (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
