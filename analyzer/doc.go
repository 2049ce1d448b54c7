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

// Package analyzer implements the nameofguard static analysis pass.
//
// # Overview
//
// nameofguard detects C# fields and properties whose initializer is nameof
// applied to the declaration itself. The string is correct today, but a
// rename refactoring that misses the literal's twin leaves it stale, and the
// self-reference documents nothing the declaration does not already say.
//
// # Example
//
//	private readonly string name = nameof(name);      // RN0001
//	public string Title { get; } = nameof(Title);     // RN0002
//
// The diagnostic covers only the nameof expression.
//
// # Sources
//
// The analyzer checks the C# files an [analysis.Pass] lists in OtherFiles or
// IgnoredFiles. With [WithPackageDir] it also checks *.cs files located in
// the directories of the pass's files, which allows running it from tools
// that only pass Go packages.
//
// # Suppression
//
// Findings inside `#pragma warning disable RN0001` regions are not reported,
// neither are those on a line ending with a `//nolint:nameofguard` comment.
// Generated files (an <auto-generated> header comment, or names like *.g.cs
// and *.Designer.cs) are skipped unless [WithGenerated] is set.
package analyzer
