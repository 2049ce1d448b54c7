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

package syntax

import "strconv"

// Span is a half-open byte range [Start, End) into the source of a [File].
type Span struct {
	Start, End int
}

// NoSpan is the zero-length span at offset zero.
var NoSpan Span

// Valid reports whether the span is well-formed.
func (s Span) Valid() bool { return 0 <= s.Start && s.Start <= s.End }

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool { return s.Start <= offset && offset < s.End }

// Cover returns the smallest span covering both s and o.
func (s Span) Cover(o Span) Span {
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// Text returns the source text covered by the span, or "" if it is out of range.
func (s Span) Text(src []byte) string {
	if !s.Valid() || s.End > len(src) {
		return ""
	}

	return string(src[s.Start:s.End])
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}
