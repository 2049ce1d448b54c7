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

package rule

import (
	"strconv"
	"strings"
)

// Severity is the reporting level of a [Descriptor].
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	Hidden  Severity = iota // hidden
	Info                    // info
	Warning                 // warning
	Error                   // error
)

// Descriptor describes a class of reportable findings.
type Descriptor struct {
	ID               string
	Title            string
	MessageFormat    string // with {0}-style substitution slots
	Category         string
	Severity         Severity
	EnabledByDefault bool
	Description      string
	HelpURL          string
}

// Format substitutes args into the descriptor's message format.
//
// Slots are written {0}, {1}, ...; `{{` and `}}` produce literal braces.
// Slots without a corresponding argument are kept verbatim.
func (d Descriptor) Format(args ...string) string {
	return format(d.MessageFormat, args)
}

func format(f string, args []string) string {
	var b strings.Builder
	b.Grow(len(f))

	for i := 0; i < len(f); i++ {
		c := f[i]
		switch {
		case c == '{' && i+1 < len(f) && f[i+1] == '{',
			c == '}' && i+1 < len(f) && f[i+1] == '}':
			b.WriteByte(c) // ignore error
			i++

		case c == '{':
			j := strings.IndexByte(f[i:], '}')
			if j < 0 {
				b.WriteString(f[i:]) // ignore error

				return b.String()
			}

			n, err := strconv.Atoi(f[i+1 : i+j])
			if err != nil || n < 0 || n >= len(args) {
				b.WriteString(f[i : i+j+1]) // ignore error
			} else {
				b.WriteString(args[n]) // ignore error
			}

			i += j

		default:
			b.WriteByte(c) // ignore error
		}
	}

	return b.String()
}
