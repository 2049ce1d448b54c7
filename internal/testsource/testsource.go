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

// Package testsource runs an analyzer over C# test data and checks its
// diagnostics against `// want "regexp"` comments in the sources.
//
// A want comment applies to the line it is on and may list several quoted
// patterns, one per expected diagnostic. Every diagnostic must match a pattern
// on its line and every pattern must be matched by exactly one diagnostic.
package testsource

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/nameofguard/internal/driver"
)

const wantMarker = "// want "

// key identifies a source line.
type key struct {
	file string
	line int
}

func (k key) String() string { return k.file + ":" + strconv.Itoa(k.line) }

// Run analyzes the C# files under dir and reports mismatches with the
// expectations through tb. It returns the diagnostics for further checks.
func Run(tb testing.TB, a *analysis.Analyzer, dir string) []driver.Diagnostic {
	tb.Helper()

	diags, err := driver.Config{Jobs: 1}.Run(context.Background(), a, dir)
	if err != nil {
		tb.Fatalf("Analysis of %s failed: %v", dir, err)
	}

	want, err := wantPatterns(dir)
	if err != nil {
		tb.Fatalf("Can't read expectations: %v", err)
	}

	for _, d := range diags {
		k := key{file: d.Pos.Filename, line: d.Pos.Line}
		if !consume(want, k, d.Message) {
			tb.Errorf("%s: unexpected diagnostic: %s", k, d.Message)
		}
	}

	for k, patterns := range want {
		for _, re := range patterns {
			tb.Errorf("%s: no diagnostic was reported matching %#q", k, re)
		}
	}

	return diags
}

func consume(want map[key][]*regexp.Regexp, k key, msg string) bool {
	patterns := want[k]
	for i, re := range patterns {
		if !re.MatchString(msg) {
			continue
		}

		if len(patterns) == 1 {
			delete(want, k)
		} else {
			want[k] = append(patterns[:i:i], patterns[i+1:]...)
		}

		return true
	}

	return false
}

// wantPatterns collects the want patterns of the C# files under dir.
func wantPatterns(dir string) (map[key][]*regexp.Regexp, error) {
	packages, err := driver.Collect(dir)
	if err != nil {
		return nil, err
	}

	want := make(map[key][]*regexp.Regexp)

	for _, pkg := range packages {
		for _, name := range pkg.Files {
			if err := expectations(want, name); err != nil {
				return nil, err
			}
		}
	}

	return want, nil
}

func expectations(want map[key][]*regexp.Regexp, name string) error {
	content, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	s := bufio.NewScanner(bytes.NewReader(content))
	for line := 1; s.Scan(); line++ {
		text := s.Text()

		i := strings.Index(text, wantMarker)
		if i < 0 {
			continue
		}

		patterns, err := parsePatterns(text[i+len(wantMarker):])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}

		k := key{file: name, line: line}
		want[k] = append(want[k], patterns...)
	}

	return s.Err()
}

// parsePatterns parses a sequence of Go string literals, each a regular expression.
func parsePatterns(text string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp

	for text = strings.TrimSpace(text); text != ""; text = strings.TrimSpace(text) {
		lit, err := strconv.QuotedPrefix(text)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", text, err)
		}

		text = text[len(lit):]

		pattern, _ := strconv.Unquote(lit) // QuotedPrefix validated the literal

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, re)
	}

	if len(patterns) == 0 {
		return nil, errors.New("want comment without patterns")
	}

	return patterns, nil
}
