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
	"path/filepath"
	"strings"

	"fillmore-labs.com/nameofguard/internal/syntax"
)

// Parse maps the C# source src of the named file into a [syntax.File].
func Parse(name string, src []byte) *syntax.File {
	l := lex(src)

	p := parser{toks: l.toks}
	for p.tok().kind != tokEOF {
		p.scope(false) // stops early at unbalanced '}'
	}

	return &syntax.File{
		Name:      name,
		Src:       src,
		Decls:     p.decls,
		Pragmas:   l.pragmas,
		NoLints:   l.nolints,
		Generated: l.generated || GeneratedName(name),
	}
}

// GeneratedName reports whether a file name follows a generated code naming convention.
func GeneratedName(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	if strings.HasPrefix(base, "temporarygeneratedfile_") {
		return true
	}

	for _, suffix := range [...]string{".designer.cs", ".generated.cs", ".g.cs", ".g.i.cs"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	return false
}

// parser finds field and property declarations in a token stream.
// The last token is always tokEOF.
type parser struct {
	toks  []token
	pos   int
	decls []*syntax.Decl
}

func (p *parser) tok() token { return p.at(p.pos) }

func (p *parser) at(i int) token {
	if i < len(p.toks) {
		return p.toks[i]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) eof() int { return len(p.toks) - 1 }

// scope parses namespace or type members up to an unmatched '}' or EOF.
func (p *parser) scope(inType bool) {
	for {
		switch t := p.tok(); {
		case t.kind == tokEOF:
			return

		case t.is("}"):
			p.pos++

			return

		case t.is(";"):
			p.pos++

		default:
			start := p.pos
			if p.member(inType); p.pos == start {
				p.pos++
			}
		}
	}
}

func (p *parser) member(inType bool) {
	p.attributes()
	start := p.pos
	p.modifiers()

	switch t := p.tok(); {
	case t.is("namespace"):
		p.namespace()

	case p.typeDeclaration():
		p.typeBody()

	case !inType, t.is("event"), t.is("delegate"):
		p.skipStatement()

	default:
		p.declaration(start)
	}
}

func (p *parser) attributes() {
	for p.tok().is("[") {
		m := p.closing(p.pos, len(p.toks))
		if m < 0 {
			p.pos = p.eof()

			return
		}

		p.pos = m + 1
	}
}

func (p *parser) modifiers() {
	for {
		t := p.tok()
		if t.kind != tokIdent {
			return
		}

		switch {
		case modifiers[t.text]:
			p.pos++

		case contextualModifiers[t.text]:
			if next := p.at(p.pos + 1); next.kind != tokIdent && !next.is("(") {
				return
			}

			p.pos++

		default:
			return
		}
	}
}

func (p *parser) typeDeclaration() bool {
	switch t := p.tok(); {
	case t.is("class"), t.is("struct"), t.is("interface"), t.is("enum"):
		return true

	case t.is("record"):
		return p.at(p.pos+1).kind == tokIdent

	default:
		return false
	}
}

func (p *parser) namespace() {
	i := p.scan(p.pos+1, len(p.toks), isBodyOrEnd)

	switch t := p.toks[i]; {
	case t.is("{"):
		p.pos = i + 1
		p.scope(false)

	case t.is(";"): // file-scoped
		p.pos = i + 1

	default:
		p.pos = i
	}
}

func (p *parser) typeBody() {
	enum := p.tok().is("enum")
	i := p.scan(p.pos+1, len(p.toks), isBodyOrEnd)

	switch t := p.toks[i]; {
	case t.is("{") && enum:
		p.skipBlock(i)

	case t.is("{"):
		p.pos = i + 1
		p.scope(true)

	case t.is(";"): // positional record
		p.pos = i + 1

	default:
		p.pos = i
	}
}

// skipStatement skips to after the next ';' or brace block.
func (p *parser) skipStatement() {
	i := p.scan(p.pos, len(p.toks), isBodyOrEnd)

	switch t := p.toks[i]; {
	case t.is(";"):
		p.pos = i + 1

	case t.is("{"):
		p.skipBlock(i)

	default:
		p.pos = i
	}
}

func (p *parser) skipBlock(open int) {
	if m := p.closing(open, len(p.toks)); m >= 0 {
		p.pos = m + 1
	} else {
		p.pos = p.eof()
	}
}

// declaration parses a member of a type body. start is the first token after attributes.
func (p *parser) declaration(start int) {
	term, method := p.header()

	name := term - 1
	if method || name <= p.pos || !p.toks[name].identifier() {
		p.skipMember(term)

		return
	}

	switch t := p.toks[term]; {
	case t.is("{"):
		p.property(start, name, term)

	case t.is("="), t.is(","), t.is(";"):
		p.field(start, name, term)

	default:
		p.skipMember(term)
	}
}

func (p *parser) skipMember(term int) {
	p.pos = term

	switch t := p.toks[term]; {
	case t.is("{"):
		p.skipBlock(term)

	case t.is("}"), t.kind == tokEOF:

	default:
		p.skipStatement()
	}
}

// header scans a member header up to its terminator and reports whether
// the member has a parameter list.
func (p *parser) header() (term int, method bool) {
	depth, angle := 0, 0

	for i := p.pos; ; i++ {
		t := p.toks[i]

		switch {
		case t.kind == tokEOF:
			return i, method

		case t.is("operator"):
			method = true

		case t.is("("), t.is("["):
			if t.is("(") && depth == 0 && angle == 0 && i > p.pos {
				if prev := p.toks[i-1]; prev.identifier() || prev.is(">") {
					method = true
				}
			}

			depth++

		case t.is(")"), t.is("]"):
			if depth == 0 {
				return i, method
			}

			depth--

		case depth > 0:

		case t.is(";"), t.is("{"), t.is("}"):
			return i, method

		case t.is("<") && !method:
			angle++

		case t.is(">") && angle > 0:
			angle--

		case angle == 0 && (t.is("=") || t.is(",") || t.is("=>")):
			return i, method
		}
	}
}

func (p *parser) field(start, name, term int) {
	decl := &syntax.Decl{Kind: syntax.Field}

	i := term
	for {
		v := &syntax.VarSpec{Name: p.ident(name)}

		if p.toks[i].is("=") {
			end := p.scan(i+1, len(p.toks), isDeclaratorEnd)
			v.Value = p.expr(i+1, end)
			i = end
		}

		decl.Vars = append(decl.Vars, v)

		if !p.toks[i].is(",") || !p.at(i+1).identifier() {
			break
		}

		name, i = i+1, i+2
		if t := p.toks[i]; !t.is("=") && !t.is(",") && !t.is(";") {
			p.pos = i
			p.skipStatement()

			return
		}
	}

	p.finish(decl, start, i)
}

func (p *parser) property(start, name, open int) {
	decl := &syntax.Decl{Kind: syntax.Property}
	v := &syntax.VarSpec{Name: p.ident(name)}
	decl.Vars = []*syntax.VarSpec{v}

	i := p.closing(open, len(p.toks))
	if i < 0 {
		p.pos = p.eof()

		return
	}

	i++

	if p.toks[i].is("=") {
		end := p.scan(i+1, len(p.toks), isSemicolon)
		v.Value = p.expr(i+1, end)
		i = end
	}

	p.finish(decl, start, i)
}

// finish records decl, ending at token i when that is a semicolon.
func (p *parser) finish(decl *syntax.Decl, start, i int) {
	end := p.toks[i-1].end
	if p.toks[i].is(";") {
		end = p.toks[i].end
		i++
	}

	decl.Range = syntax.Span{Start: p.toks[start].start, End: end}
	p.decls = append(p.decls, decl)
	p.pos = i
}

// scan returns the index of the first token in [lo, hi) at nesting depth zero
// satisfying stop, of an unmatched closing bracket, of EOF, or hi.
func (p *parser) scan(lo, hi int, stop func(token) bool) int {
	depth := 0

	for i := lo; i < hi; i++ {
		t := p.toks[i]

		switch {
		case t.kind == tokEOF:
			return i

		case depth == 0 && stop(t):
			return i

		case t.is("("), t.is("["), t.is("{"):
			depth++

		case t.is(")"), t.is("]"), t.is("}"):
			if depth == 0 {
				return i
			}

			depth--

		case t.is("<") && i > lo && p.toks[i-1].kind == tokIdent:
			if end, ok := p.typeArguments(i); ok && end < hi {
				i = end
			}
		}
	}

	return hi
}

// closing returns the index of the bracket closing the one at open, or -1.
func (p *parser) closing(open, hi int) int {
	i := p.scan(open+1, hi, never)
	if i >= hi {
		return -1
	}

	if closer[p.toks[open].text] == p.toks[i].text {
		return i
	}

	return -1
}

var closer = map[string]string{"(": ")", "[": "]", "{": "}"}

// typeArguments decides whether the '<' at i opens a type argument list and
// returns the index of the closing '>'.
//
// The list may only contain type tokens and must be followed by a token that
// cannot continue a relational expression.
func (p *parser) typeArguments(i int) (end int, ok bool) {
	depth, parens := 0, 0

	for j := i; j < len(p.toks); j++ {
		t := p.toks[j]

		switch {
		case t.is("<"):
			depth++

		case t.is(">"):
			if depth--; depth == 0 {
				next := p.at(j + 1)

				return j, next.kind == tokEOF || next.kind == tokPunct && typeArgumentFollow[next.text]
			}

		case t.is("("), t.is("["):
			parens++

		case t.is(")"), t.is("]"):
			if parens--; parens < 0 {
				return 0, false
			}

		case t.kind == tokIdent,
			t.is(","), t.is("."), t.is("::"), t.is("?"), t.is("*"):

		default:
			return 0, false
		}
	}

	return 0, false
}

var typeArgumentFollow = set("(", ")", "]", "}", ":", ";", ",", ".", "?", "==", "!=", "|", "^", "&&", "||", "&", "[", "{")

func never(token) bool { return false }

func isSemicolon(t token) bool { return t.is(";") }

func isDeclaratorEnd(t token) bool { return t.is(";") || t.is(",") }

func isBodyOrEnd(t token) bool { return t.is("{") || t.is(";") }
