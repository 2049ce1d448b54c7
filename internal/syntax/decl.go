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

// Kind discriminates declaration variants.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// InvalidKind is the zero value and never produced by a parser.
	InvalidKind Kind = iota // invalid

	// Field is a field declaration, possibly declaring several variables.
	Field // field

	// Property is a property declaration with an optional initializer.
	Property // property
)

// Kinds lists all valid declaration kinds.
func Kinds() []Kind { return []Kind{Field, Property} }

// Decl is a field or property declaration.
//
// A field declaration carries one [VarSpec] per declarator
// (`int a = 1, b;` has two), a property exactly one.
type Decl struct {
	Kind  Kind
	Vars  []*VarSpec
	Range Span
}

// VarSpec is a single declarator: the declared name and its optional initializer.
type VarSpec struct {
	Name  *Ident
	Value Expr // nil without initializer
}

// Span returns the source range of the whole declaration.
func (d *Decl) Span() Span { return d.Range }
