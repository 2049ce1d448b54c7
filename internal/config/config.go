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

package config

// Flags is a set of single-bit options of type T.
type Flags[T ~uint8] struct {
	value T
}

// NewFlags creates a [Flags] set with the given options enabled.
func NewFlags[T ~uint8](flags ...T) Flags[T] {
	var f Flags[T]
	for _, flag := range flags {
		f.value |= flag
	}

	return f
}

// Set enables or disables the option.
func (f *Flags[T]) Set(flag T, value bool) {
	if value {
		f.value |= flag
	} else {
		f.value &^= flag
	}
}

// Enabled reports whether the option is enabled.
func (f Flags[T]) Enabled(flag T) bool {
	return f.value&flag != 0
}

// Rule selects a reported diagnostic.
type Rule uint8

const (
	// FieldRule reports recursive nameof in field declarations.
	FieldRule Rule = 1 << iota

	// PropertyRule reports recursive nameof in property declarations.
	PropertyRule
)

// Rules is the set of enabled rules.
type Rules = Flags[Rule]

// DefaultRules enables all rules.
func DefaultRules() Rules { return NewFlags(FieldRule, PropertyRule) }

// Option is a behavioral option.
type Option uint8

const (
	// IncludeGenerated reports diagnostics in generated files.
	IncludeGenerated Option = 1 << iota

	// PackageDir also analyzes C# sources found in the package directories,
	// not only those passed to the analysis pass.
	PackageDir
)

// Behavior is the set of enabled behavioral options.
type Behavior = Flags[Option]

// DefaultBehavior returns the default behavior, with all options disabled.
func DefaultBehavior() Behavior { return Behavior{} }
