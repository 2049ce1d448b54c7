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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/nameofguard/internal/driver"
	"fillmore-labs.com/nameofguard/internal/rule"
)

// ErrUsage is returned for invalid flag values.
var ErrUsage = errors.New("invalid usage")

var rules = rule.Default()

// formatter writes diagnostics to w.
type formatter func(w io.Writer, diags []driver.Diagnostic) error

func newFormatter(format, colorMode string) (formatter, error) {
	switch format {
	case "text", "":
		p, err := newPalette(colorMode)
		if err != nil {
			return nil, err
		}

		return p.writeText, nil

	case "json":
		return writeJSON, nil

	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrUsage, format)
	}
}

// palette holds the colors of the text output.
type palette struct {
	position, warning, failure, id *color.Color
}

func newPalette(mode string) (palette, error) {
	p := palette{
		position: color.New(color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		failure:  color.New(color.FgRed, color.Bold),
		id:       color.New(color.FgCyan),
	}

	var enable bool

	switch mode {
	case "auto", "":
		enable = !color.NoColor

	case "always":
		enable = true

	case "never":
		enable = false

	default:
		return palette{}, fmt.Errorf("%w: unknown color mode %q", ErrUsage, mode)
	}

	for _, c := range [...]*color.Color{p.position, p.warning, p.failure, p.id} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

// writeText writes one line per diagnostic:
//
//	file:line:column: severity: message (ID)
func (p palette) writeText(w io.Writer, diags []driver.Diagnostic) error {
	for _, d := range diags {
		sev := severity(d)

		c := p.warning
		if sev >= rule.Error {
			c = p.failure
		}

		line := p.position.Sprint(d.Pos) + ": " + c.Sprint(sev) + ": " + d.Message
		if d.Category != "" {
			line += " (" + p.id.Sprint(d.Category) + ")"
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// jsonDiagnostic is the JSON representation of a [driver.Diagnostic].
type jsonDiagnostic struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Rule      string `json:"rule,omitempty"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	URL       string `json:"url,omitempty"`
}

func writeJSON(w io.Writer, diags []driver.Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, jsonDiagnostic{
			File:      d.Pos.Filename,
			Line:      d.Pos.Line,
			Column:    d.Pos.Column,
			EndLine:   d.End.Line,
			EndColumn: d.End.Column,
			Rule:      d.Category,
			Severity:  severity(d).String(),
			Message:   d.Message,
			URL:       d.URL,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// severity returns the severity of the diagnostic's rule. Diagnostics
// without a known rule are internal errors.
func severity(d driver.Diagnostic) rule.Severity {
	if desc, ok := rules.Lookup(d.Category); ok {
		return desc.Severity
	}

	return rule.Error
}
