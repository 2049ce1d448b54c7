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

package csharp

import "fmt"

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString // string, interpolated string and character literals
	tokPunct
)

type token struct {
	kind       tokenKind
	text       string
	start, end int
}

func (t token) is(text string) bool {
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

// keyword reports whether t is a reserved keyword. Verbatim identifiers never are.
func (t token) keyword() bool {
	return t.kind == tokIdent && reserved[t.text]
}

// identifier reports whether t can name a declaration or an identifier reference.
func (t token) identifier() bool {
	return t.kind == tokIdent && !reserved[t.text]
}

func (t token) String() string {
	return fmt.Sprintf("%q@%d", t.text, t.start)
}

var reserved = set(
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char", "checked",
	"class", "const", "continue", "decimal", "default", "delegate", "do", "double", "else",
	"enum", "event", "explicit", "extern", "false", "finally", "fixed", "float", "for",
	"foreach", "goto", "if", "implicit", "in", "int", "interface", "internal", "is", "lock",
	"long", "namespace", "new", "null", "object", "operator", "out", "override", "params",
	"private", "protected", "public", "readonly", "ref", "return", "sbyte", "sealed",
	"short", "sizeof", "stackalloc", "static", "string", "struct", "switch", "this", "throw",
	"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort", "using",
	"virtual", "void", "volatile", "while",
)

// modifiers are reserved keywords that may precede a member's type.
var modifiers = set(
	"abstract", "const", "extern", "fixed", "internal", "new", "override", "private",
	"protected", "public", "readonly", "ref", "sealed", "static", "unsafe", "virtual", "volatile",
)

// contextualModifiers are modifiers only when followed by more of the declaration.
var contextualModifiers = set("async", "file", "partial", "required", "scoped")

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}

	return m
}
