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

// Expr is an initializer or argument expression.
//
// The concrete types are *[Ident], *[Call], *[Selector], *[Paren] and *[Opaque].
type Expr interface {
	Span() Span
	exprNode()
}

// Ident is a bare, unqualified identifier reference.
// Name is the literal source text, including a verbatim '@' prefix.
type Ident struct {
	Name  string
	Range Span
}

// Call is an invocation Fun(Args...).
type Call struct {
	Fun    Expr
	Args   []Expr
	Range  Span
}

// Selector is a member access X.Sel, including alias qualification X::Sel.
type Selector struct {
	X     Expr
	Sel   *Ident
	Range Span
}

// Paren is a parenthesized expression (X).
type Paren struct {
	X     Expr
	Range Span
}

// Opaque is any expression the check does not look into: literals, casts,
// generic names, operators, lambdas, object creation and so on.
type Opaque struct {
	Range Span
}

func (x *Ident) Span() Span    { return x.Range }
func (x *Call) Span() Span     { return x.Range }
func (x *Selector) Span() Span { return x.Range }
func (x *Paren) Span() Span    { return x.Range }
func (x *Opaque) Span() Span   { return x.Range }

func (*Ident) exprNode()    {}
func (*Call) exprNode()     {}
func (*Selector) exprNode() {}
func (*Paren) exprNode()    {}
func (*Opaque) exprNode()   {}

// Unparen strips any number of enclosing parentheses.
func Unparen(x Expr) Expr {
	for {
		p, ok := x.(*Paren)
		if !ok || p == nil {
			return x
		}

		x = p.X
	}
}
