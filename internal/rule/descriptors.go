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

// Diagnostic IDs.
const (
	FieldID    = "RN0001"
	PropertyID = "RN0002"
)

// Category of all recursive nameof diagnostics.
const Category = "Nameof"

const (
	description = "Recursive nameof can lead to issues during rename refactoring"
	helpURL     = "https://pkg.go.dev/fillmore-labs.com/nameofguard#readme-rules"
)

// FieldDescriptor returns the descriptor for recursive nameof in field declarations.
func FieldDescriptor() Descriptor {
	return Descriptor{
		ID:               FieldID,
		Title:            "Recursive nameof in field declaration",
		MessageFormat:    "Field '{0}' references to it's own name",
		Category:         Category,
		Severity:         Warning,
		EnabledByDefault: true,
		Description:      description,
		HelpURL:          helpURL,
	}
}

// PropertyDescriptor returns the descriptor for recursive nameof in property declarations.
func PropertyDescriptor() Descriptor {
	return Descriptor{
		ID:               PropertyID,
		Title:            "Recursive nameof in property declaration",
		MessageFormat:    "Property '{0}' references to it's own name",
		Category:         Category,
		Severity:         Warning,
		EnabledByDefault: true,
		Description:      description,
		HelpURL:          helpURL,
	}
}
