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

import "fillmore-labs.com/nameofguard/internal/syntax"

// expr parses the tokens [lo, hi) as an expression. Anything that is not an
// identifier, member access, parenthesized expression or invocation chain
// spanning the whole range becomes [syntax.Opaque].
func (p *parser) expr(lo, hi int) syntax.Expr {
	if x, end := p.operand(lo, hi); x != nil && end == hi {
		return x
	}

	return &syntax.Opaque{Range: p.span(lo, hi)}
}

// operand parses a primary expression with member access and invocation
// suffixes starting at lo and returns it with the index of the first unparsed token.
func (p *parser) operand(lo, hi int) (syntax.Expr, int) {
	if lo >= hi {
		return nil, lo
	}

	var x syntax.Expr

	i := lo + 1

	switch t := p.toks[lo]; {
	case t.identifier():
		if p.at(i).is("<") && i < hi {
			if end, ok := p.typeArguments(i); ok && end < hi {
				x, i = &syntax.Opaque{Range: p.span(lo, end+1)}, end+1

				break
			}
		}

		x = p.ident(lo)

	case t.is("("):
		m := p.closing(lo, hi)
		if m < 0 {
			return nil, lo
		}

		x, i = &syntax.Paren{X: p.expr(lo+1, m), Range: p.span(lo, m+1)}, m+1

	case t.kind == tokIdent: // this, base, predefined types
		x = &syntax.Opaque{Range: p.span(lo, i)}

	default:
		return nil, lo
	}

	for i < hi {
		switch t := p.toks[i]; {
		case (t.is(".") || t.is("::")) && i+1 < hi && p.toks[i+1].kind == tokIdent:
			x, i = &syntax.Selector{X: x, Sel: p.ident(i + 1), Range: p.span(lo, i+2)}, i+2

		case t.is("("):
			m := p.closing(i, hi)
			if m < 0 {
				return x, i
			}

			x, i = &syntax.Call{Fun: x, Args: p.args(i+1, m), Range: p.span(lo, m+1)}, m+1

		default:
			return x, i
		}
	}

	return x, i
}

// args parses a comma-separated argument list in [lo, hi).
func (p *parser) args(lo, hi int) []syntax.Expr {
	if lo >= hi {
		return nil
	}

	var args []syntax.Expr

	for {
		end := p.scan(lo, hi, isComma)
		args = append(args, p.expr(lo, end))

		if end >= hi || !p.toks[end].is(",") {
			return args
		}

		lo = end + 1
	}
}

func (p *parser) ident(i int) *syntax.Ident {
	t := p.toks[i]

	return &syntax.Ident{Name: t.text, Range: syntax.Span{Start: t.start, End: t.end}}
}

// span returns the source range of tokens [lo, hi).
func (p *parser) span(lo, hi int) syntax.Span {
	if lo >= hi {
		start := p.at(lo).start

		return syntax.Span{Start: start, End: start}
	}

	return syntax.Span{Start: p.toks[lo].start, End: p.at(hi - 1).end}
}

func isComma(t token) bool { return t.is(",") }
