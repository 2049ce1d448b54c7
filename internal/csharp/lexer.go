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

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/nameofguard/internal/syntax"
)

// lexer splits C# source into tokens, dropping trivia.
type lexer struct {
	src []byte
	off int

	toks      []token
	pragmas   []*syntax.Pragma
	nolints   []*syntax.NoLint
	generated bool
	lineStart bool // only whitespace since the last newline
}

func lex(src []byte) *lexer {
	l := &lexer{src: src, lineStart: true}

	if bytes.HasPrefix(src, []byte("\xef\xbb\xbf")) {
		l.off = 3
	}

	for {
		l.trivia()

		if l.off >= len(l.src) {
			l.toks = append(l.toks, token{kind: tokEOF, start: len(l.src), end: len(l.src)})

			return l
		}

		l.toks = append(l.toks, l.next())
		l.lineStart = false
	}
}

func (l *lexer) peek(n int) byte {
	if i := l.off + n; i < len(l.src) {
		return l.src[i]
	}

	return 0
}

// trivia skips whitespace, comments and preprocessor directives.
func (l *lexer) trivia() {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == '\n':
			l.off++
			l.lineStart = true

		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.off++

		case c == '/' && l.peek(1) == '/':
			end := l.lineEnd(l.off)
			l.comment(l.src[l.off:end])
			l.nolint(l.off, string(l.src[l.off:end]))
			l.off = end

		case c == '/' && l.peek(1) == '*':
			end := bytes.Index(l.src[l.off+2:], []byte("*/"))
			if end < 0 {
				end = len(l.src)
			} else {
				end += l.off + 4
			}

			l.comment(l.src[l.off:end])
			l.off = end

		case c == '#' && l.lineStart:
			end := l.lineEnd(l.off)
			l.directive(l.off, string(l.src[l.off+1:end]))
			l.off = end

		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(l.src[l.off:])
			if !unicode.IsSpace(r) {
				return
			}

			l.off += size

		default:
			return
		}
	}
}

func (l *lexer) lineEnd(from int) int {
	if i := bytes.IndexByte(l.src[from:], '\n'); i >= 0 {
		return from + i
	}

	return len(l.src)
}

// comment records the generated-code marker in comments preceding the first token.
func (l *lexer) comment(text []byte) {
	if len(l.toks) > 0 || l.generated {
		return
	}

	lower := bytes.ToLower(text)
	l.generated = bytes.Contains(lower, []byte("<auto-generated")) || bytes.Contains(lower, []byte("<autogenerated"))
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// nolint records a `//nolint:linters` line comment.
func (l *lexer) nolint(offset int, text string) {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return
	}

	linters := strings.Split(matches[1], ",")
	for i, linter := range linters {
		linters[i] = strings.ToLower(strings.TrimSpace(linter))
	}

	l.nolints = append(l.nolints, &syntax.NoLint{Linters: linters, Offset: offset})
}

// directive records `#pragma warning disable|restore [ids]`.
func (l *lexer) directive(offset int, line string) {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "pragma" || fields[1] != "warning" {
		return
	}

	var action syntax.PragmaAction

	switch fields[2] {
	case "disable":
		action = syntax.Disable

	case "restore":
		action = syntax.Restore

	default:
		return
	}

	var ids []string

	for id := range strings.SplitSeq(strings.Join(fields[3:], " "), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	l.pragmas = append(l.pragmas, &syntax.Pragma{Action: action, IDs: ids, Offset: offset})
}

// next scans one token at l.off, which is not trivia.
func (l *lexer) next() token {
	start := l.off
	c := l.src[l.off]

	var kind tokenKind

	switch {
	case c == '"' || c == '$' && l.stringAhead(1) || c == '@' && (l.peek(1) == '"' || l.peek(1) == '$' && l.peek(2) == '"'):
		l.scanString()
		kind = tokString

	case c == '\'':
		l.scanChar()
		kind = tokString

	case c == '@' && isIdentStart(l.runeAt(l.off+1)):
		l.off++
		l.scanIdent()
		kind = tokIdent

	case isDigit(c) || c == '.' && isDigit(l.peek(1)):
		l.scanNumber()
		kind = tokNumber

	case c == '_' || c >= utf8.RuneSelf && isIdentStart(l.runeAt(l.off)) || isASCIILetter(c):
		l.scanIdent()
		kind = tokIdent

	default:
		l.scanPunct()
		kind = tokPunct
	}

	return token{kind: kind, text: string(l.src[start:l.off]), start: start, end: l.off}
}

// stringAhead reports whether a string literal starts at l.off+n after '$' and '@' prefixes.
func (l *lexer) stringAhead(n int) bool {
	for {
		switch l.peek(n) {
		case '$', '@':
			n++

		case '"':
			return true

		default:
			return false
		}
	}
}

func (l *lexer) runeAt(i int) rune {
	if i >= len(l.src) {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRune(l.src[i:])

	return r
}

func (l *lexer) scanIdent() {
	for l.off < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.off:])
		if !isIdentPart(r) {
			return
		}

		l.off += size
	}
}

func (l *lexer) scanNumber() {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case isDigit(c) || isASCIILetter(c) || c == '_':
			l.off++

		case c == '.' && isDigit(l.peek(1)):
			l.off++

		case (c == '+' || c == '-') && (l.src[l.off-1] == 'e' || l.src[l.off-1] == 'E') && !isHexLiteral(l.src, l.off):
			l.off++

		default:
			return
		}
	}
}

// isHexLiteral reports whether the number ending before off is hexadecimal, where 'e' is a digit.
func isHexLiteral(src []byte, off int) bool {
	i := off - 1
	for i > 0 && (isDigit(src[i-1]) || isASCIILetter(src[i-1]) || src[i-1] == '_') {
		i--
	}

	return i+1 < len(src) && src[i] == '0' && (src[i+1] == 'x' || src[i+1] == 'X')
}

var puncts = [...]string{
	"??=", "<<=", "...",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "::", "++", "--", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", "..",
}

func (l *lexer) scanPunct() {
	rest := l.src[l.off:]
	for _, p := range puncts {
		if bytes.HasPrefix(rest, []byte(p)) {
			l.off += len(p)

			return
		}
	}

	_, size := utf8.DecodeRune(rest)
	l.off += size
}

func (l *lexer) scanChar() {
	l.off++ // opening quote

	for l.off < len(l.src) {
		switch l.src[l.off] {
		case '\\':
			l.off += 2

		case '\'':
			l.off++

			return

		case '\n':
			return

		default:
			l.off++
		}
	}

	l.off = min(l.off, len(l.src))
}

// scanString scans regular, verbatim, interpolated and raw string literals.
func (l *lexer) scanString() {
	var dollars int

	verbatim := false

	for l.off < len(l.src) {
		switch l.src[l.off] {
		case '$':
			dollars++
			l.off++

			continue

		case '@':
			verbatim = true
			l.off++

			continue
		}

		break
	}

	quotes := 0
	for l.off+quotes < len(l.src) && l.src[l.off+quotes] == '"' {
		quotes++
	}

	switch {
	case quotes >= 3:
		l.off += quotes
		l.scanRaw(quotes, dollars)

	default:
		l.off++ // opening quote
		l.scanQuoted(verbatim, dollars > 0)
	}
}

func (l *lexer) scanQuoted(verbatim, interpolated bool) {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == '\\' && !verbatim:
			l.off += 2

		case c == '"' && verbatim && l.peek(1) == '"':
			l.off += 2

		case c == '"':
			l.off++

			return

		case c == '\n' && !verbatim:
			return

		case c == '{' && interpolated && l.peek(1) == '{':
			l.off += 2

		case c == '{' && interpolated:
			l.off++
			l.scanHole()

		default:
			l.off++
		}
	}

	l.off = min(l.off, len(l.src))
}

func (l *lexer) scanRaw(quotes, dollars int) {
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == '"':
			n := l.run('"')
			l.off += n

			if n >= quotes {
				return
			}

		case c == '{' && dollars > 0:
			n := l.run('{')
			l.off += n

			if n >= dollars {
				l.scanHole()

				for i := 1; i < dollars && l.peek(0) == '}'; i++ {
					l.off++
				}
			}

		default:
			l.off++
		}
	}
}

func (l *lexer) run(c byte) int {
	n := 0
	for l.off+n < len(l.src) && l.src[l.off+n] == c {
		n++
	}

	return n
}

// scanHole skips an interpolation hole up to and including its closing brace.
func (l *lexer) scanHole() {
	depth := 0

	for {
		l.trivia()

		if l.off >= len(l.src) {
			return
		}

		switch c := l.src[l.off]; c {
		case '{':
			depth++
			l.off++

		case '}':
			l.off++

			if depth == 0 {
				return
			}

			depth--

		default:
			l.next()
		}
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isASCIILetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Cf)
}
