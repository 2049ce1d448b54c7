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

// Package match decides whether a declaration initializes itself with a
// nameof expression naming the declaration itself.
package match

import "fillmore-labs.com/nameofguard/internal/syntax"

// Keyword is the literal callee text recognized as the name-introspection operator.
const Keyword = "nameof"

// Result is the outcome of [Recursive].
type Result struct {
	Matched bool
	Name    string      // the declared name
	Span    syntax.Span // the nameof call, keyword through closing parenthesis
}

// Recursive reports whether decl declares exactly one variable whose initializer is
// `nameof(<name>)` with <name> textually equal to the declared name.
//
// The comparison is byte-for-byte on literal source text. Identifiers are not
// resolved, so shadowing, aliases and `this.` qualification are not considered.
// Recursive never panics; any shape mismatch yields a negative result.
func Recursive(decl *syntax.Decl) Result {
	if decl == nil || len(decl.Vars) != 1 {
		return Result{}
	}

	v := decl.Vars[0]
	if v == nil || v.Name == nil {
		return Result{}
	}

	name := v.Name.Name

	arg, span, ok := nameofArgument(v.Value)
	if !ok || arg != name {
		return Result{}
	}

	return Result{Matched: true, Name: name, Span: span}
}

// nameofArgument returns the argument identifier text and call span if x is
// `nameof(<identifier>)`.
func nameofArgument(x syntax.Expr) (arg string, span syntax.Span, ok bool) {
	call, ok := x.(*syntax.Call)
	if !ok || call == nil {
		return "", syntax.Span{}, false
	}

	if fun, ok := call.Fun.(*syntax.Ident); !ok || fun == nil || fun.Name != Keyword {
		return "", syntax.Span{}, false
	}

	if len(call.Args) != 1 {
		return "", syntax.Span{}, false
	}

	id, ok := call.Args[0].(*syntax.Ident)
	if !ok || id == nil {
		return "", syntax.Span{}, false
	}

	return id.Name, call.Range, true
}
