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

// Package csharp maps C# source into the declaration model of package syntax.
//
// It is not a full C# parser. It tokenizes the complete language (comments,
// every string literal flavour, preprocessor lines) so that it can reliably
// find type bodies and their field and property declarations, and it parses
// initializer expressions only as far as identifiers, member access,
// parentheses and invocations. Everything else becomes [syntax.Opaque].
//
// Parsing never fails: malformed input yields fewer declarations, not errors.
package csharp
