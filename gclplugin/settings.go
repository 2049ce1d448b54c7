// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import "fillmore-labs.com/nameofguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Field enables reports for field declarations.
	Field *bool `json:"field,omitzero"`
	// Property enables reports for property declarations.
	Property *bool `json:"property,omitzero"`
	// Generated enables reports in generated C# files.
	Generated *bool `json:"generated,omitzero"`
	// PackageDir discovers C# sources in package directories.
	PackageDir *bool `json:"package-dir,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the nameofguard analyzer.
// Only explicitly set (non-nil) settings produce an option.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Field, analyzer.WithField)
	opts = appendOption(opts, s.Property, analyzer.WithProperty)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.PackageDir, analyzer.WithPackageDir)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
