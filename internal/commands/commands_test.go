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

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/nameofguard/internal/commands"
	"fillmore-labs.com/nameofguard/internal/driver"
)

const source = `namespace Example;

public class Sample
{
    private readonly string name = nameof(name);

    public string Title { get; } = nameof(Title);

    public string NameField { get; } = nameof(Title);
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := RootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), err
}

type result struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Sample.cs", source)

	out, err := execute(t, "check", "--format", "json", dir)
	require.ErrorIs(t, err, ErrFindings)
	assert.Equal(t, ExitFindings, ExitCode(err))

	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, result{
		File:     filepath.Join(dir, "Sample.cs"),
		Line:     5,
		Column:   36,
		Rule:     "RN0001",
		Severity: "warning",
		Message:  "Field 'name' references to it's own name",
	}, results[0])

	assert.Equal(t, "RN0002", results[1].Rule)
	assert.Equal(t, "Property 'Title' references to it's own name", results[1].Message)
}

func TestCheckText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "Sample.cs", source)

	out, err := execute(t, "check", "--color", "never", "--no-property", file)
	require.ErrorIs(t, err, ErrFindings)

	assert.Equal(t, file+":5:36: warning: Field 'name' references to it's own name (RN0001)\n", out)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Clean.cs", "class Clean { string name = nameof(Clean); }\n")

	out, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ExitOK, ExitCode(err))
}

func TestCheckConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Sample.cs", source)
	config := writeFile(t, dir, "nameofguard.yaml", "field: false\nformat: json\n")

	out, err := execute(t, "check", "--config", config, dir)
	require.ErrorIs(t, err, ErrFindings)

	var results []result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "RN0002", results[0].Rule)
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Sample.cs", source)

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"NoSources", []string{"check", t.TempDir()}, driver.ErrNoSources},
		{"Format", []string{"check", "--format", "xml", dir}, ErrUsage},
		{"Color", []string{"check", "--color", "sometimes", dir}, ErrUsage},
		{"MissingPath", []string{"check", filepath.Join(dir, "missing")}, os.ErrNotExist},
		{"MissingConfig", []string{"check", "--config", filepath.Join(dir, "missing.yaml"), dir}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			require.Error(t, err)

			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}

			assert.Equal(t, ExitError, ExitCode(err))
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "rules", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "RN0001")
	assert.Contains(t, out, "RN0002")
	assert.Contains(t, out, "Recursive nameof in property declaration")
	assert.Contains(t, out, "Field '{0}' references to it's own name")
}
