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
	"fillmore-labs.com/nameofguard/internal/match"
	"fillmore-labs.com/nameofguard/internal/syntax"
)

// Diagnostic is a finding produced by a [Driver].
type Diagnostic struct {
	Descriptor Descriptor
	Message    string
	Span       syntax.Span
}

// NodeContext is handed to a registered callback for each visited declaration.
type NodeContext interface {
	Decl() *syntax.Decl
	Report(d Diagnostic)
}

// Registrar is the host's traversal facility.
type Registrar interface {
	Register(action func(NodeContext), kinds ...syntax.Kind)
}

// Driver evaluates declarations against the recursive nameof rule.
// A Driver is immutable and safe for concurrent use.
type Driver struct {
	field, property Descriptor
}

// New creates a [Driver] reporting with the given descriptors.
func New(field, property Descriptor) Driver {
	return Driver{field: field, property: property}
}

// Default returns a [Driver] using [FieldDescriptor] and [PropertyDescriptor].
func Default() Driver {
	return New(FieldDescriptor(), PropertyDescriptor())
}

// SupportedDiagnostics lists the descriptors this driver can report.
func (d Driver) SupportedDiagnostics() []Descriptor {
	return []Descriptor{d.field, d.property}
}

// Descriptor returns the descriptor used for declarations of the given kind.
func (d Driver) Descriptor(kind syntax.Kind) (Descriptor, bool) {
	switch kind {
	case syntax.Field:
		return d.field, true

	case syntax.Property:
		return d.property, true

	default:
		return Descriptor{}, false
	}
}

// Lookup returns the supported descriptor with the given ID.
func (d Driver) Lookup(id string) (Descriptor, bool) {
	for _, desc := range d.SupportedDiagnostics() {
		if desc.ID == id {
			return desc, true
		}
	}

	return Descriptor{}, false
}

// Initialize registers the field and property callbacks with the host.
func (d Driver) Initialize(r Registrar) {
	r.Register(d.action(d.EvaluateField), syntax.Field)
	r.Register(d.action(d.EvaluateProperty), syntax.Property)
}

func (Driver) action(evaluate func(*syntax.Decl) (Diagnostic, bool)) func(NodeContext) {
	return func(ctx NodeContext) {
		if diag, ok := evaluate(ctx.Decl()); ok {
			ctx.Report(diag)
		}
	}
}

// EvaluateField checks a field declaration.
func (d Driver) EvaluateField(decl *syntax.Decl) (Diagnostic, bool) {
	return d.evaluate(decl, syntax.Field, d.field)
}

// EvaluateProperty checks a property declaration.
func (d Driver) EvaluateProperty(decl *syntax.Decl) (Diagnostic, bool) {
	return d.evaluate(decl, syntax.Property, d.property)
}

// Evaluate checks a declaration of any kind.
func (d Driver) Evaluate(decl *syntax.Decl) (Diagnostic, bool) {
	if decl == nil {
		return Diagnostic{}, false
	}

	desc, ok := d.Descriptor(decl.Kind)
	if !ok {
		return Diagnostic{}, false
	}

	return d.evaluate(decl, decl.Kind, desc)
}

func (Driver) evaluate(decl *syntax.Decl, kind syntax.Kind, desc Descriptor) (Diagnostic, bool) {
	if decl == nil || decl.Kind != kind {
		return Diagnostic{}, false
	}

	m := match.Recursive(decl)
	if !m.Matched {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Descriptor: desc,
		Message:    desc.Format(m.Name),
		Span:       m.Span,
	}, true
}
