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

package match_test

import (
	"testing"

	. "fillmore-labs.com/nameofguard/internal/match"
	"fillmore-labs.com/nameofguard/internal/syntax"
)

func ident(name string, start int) *syntax.Ident {
	return &syntax.Ident{Name: name, Range: syntax.Span{Start: start, End: start + len(name)}}
}

// nameof builds `nameof(arg)` starting at offset start.
func nameof(arg syntax.Expr, start int) *syntax.Call {
	return &syntax.Call{
		Fun:   ident(Keyword, start),
		Args:  []syntax.Expr{arg},
		Range: syntax.Span{Start: start, End: arg.Span().End + 1},
	}
}

func field(vars ...*syntax.VarSpec) *syntax.Decl {
	return &syntax.Decl{Kind: syntax.Field, Vars: vars}
}

func TestRecursive(t *testing.T) {
	t.Parallel()

	// string name = nameof(name);
	// 0      7      14     21
	self := nameof(ident("name", 21), 14)

	tests := []struct {
		name string
		decl *syntax.Decl
		want Result
	}{
		{
			name: "self",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: self}),
			want: Result{Matched: true, Name: "name", Span: syntax.Span{Start: 14, End: 26}},
		},
		{
			name: "property",
			decl: &syntax.Decl{Kind: syntax.Property, Vars: []*syntax.VarSpec{{Name: ident("name", 7), Value: self}}},
			want: Result{Matched: true, Name: "name", Span: syntax.Span{Start: 14, End: 26}},
		},
		{
			name: "other name",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: nameof(ident("NameField", 21), 14)}),
		},
		{
			name: "case differs",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: nameof(ident("Name", 21), 14)}),
		},
		{
			name: "verbatim identifier",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: nameof(ident("@name", 21), 14)}),
		},
		{
			name: "no initializer",
			decl: field(&syntax.VarSpec{Name: ident("name", 7)}),
		},
		{
			name: "multiple variables",
			decl: field(
				&syntax.VarSpec{Name: ident("name", 7), Value: self},
				&syntax.VarSpec{Name: ident("other", 30)},
			),
		},
		{
			name: "no variables",
			decl: field(),
		},
		{
			name: "nil declaration",
		},
		{
			name: "nil variable",
			decl: field(nil),
		},
		{
			name: "other callee",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  ident("nameOf", 14),
				Args: []syntax.Expr{ident("name", 21)},
			}}),
		},
		{
			name: "qualified callee",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  &syntax.Selector{X: ident("this", 14), Sel: ident(Keyword, 19)},
				Args: []syntax.Expr{ident("name", 26)},
			}}),
		},
		{
			name: "member access argument",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  ident(Keyword, 14),
				Args: []syntax.Expr{&syntax.Selector{X: ident("this", 21), Sel: ident("name", 26)}},
			}}),
		},
		{
			name: "parenthesized argument",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  ident(Keyword, 14),
				Args: []syntax.Expr{&syntax.Paren{X: ident("name", 22)}},
			}}),
		},
		{
			name: "two arguments",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  ident(Keyword, 14),
				Args: []syntax.Expr{ident("name", 21), ident("name", 27)},
			}}),
		},
		{
			name: "parenthesized initializer",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Paren{X: self}}),
		},
		{
			name: "opaque initializer",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Opaque{}}),
		},
		{
			name: "nil argument",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Fun:  ident(Keyword, 14),
				Args: []syntax.Expr{nil},
			}}),
		},
		{
			name: "nil callee",
			decl: field(&syntax.VarSpec{Name: ident("name", 7), Value: &syntax.Call{
				Args: []syntax.Expr{ident("name", 21)},
			}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Recursive(tt.decl); got != tt.want {
				t.Errorf("Recursive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecursiveIdempotent(t *testing.T) {
	t.Parallel()

	decl := field(&syntax.VarSpec{Name: ident("x", 4), Value: nameof(ident("x", 15), 8)})

	first, second := Recursive(decl), Recursive(decl)
	if first != second {
		t.Errorf("Recursive() = %+v, then %+v", first, second)
	}

	if !first.Matched {
		t.Error("Expected a match")
	}
}
