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

// File is a parsed source file reduced to the declarations of interest.
type File struct {
	Name      string
	Src       []byte
	Decls     []*Decl   // in source order
	Pragmas   []*Pragma // in source order
	NoLints   []*NoLint // in source order
	Generated bool
}

// PragmaAction is the action of a warning pragma.
type PragmaAction uint8

const (
	// Disable turns diagnostics off from the pragma on.
	Disable PragmaAction = iota + 1

	// Restore turns diagnostics back on.
	Restore
)

// Pragma is a `#pragma warning disable|restore [ids]` directive.
// An empty IDs list applies to all diagnostics.
type Pragma struct {
	Action PragmaAction
	IDs    []string
	Offset int
}

// NoLint is a `//nolint:linter[,linter...]` comment. Linter names are lower case.
type NoLint struct {
	Linters []string
	Offset  int
}
