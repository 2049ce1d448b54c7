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

package config_test

import (
	"testing"

	. "fillmore-labs.com/nameofguard/internal/config"
)

func TestFlags(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	if !rules.Enabled(FieldRule) || !rules.Enabled(PropertyRule) {
		t.Fatal("Expected all rules enabled by default")
	}

	rules.Set(PropertyRule, false)

	if !rules.Enabled(FieldRule) {
		t.Error("Field rule disabled unexpectedly")
	}

	if rules.Enabled(PropertyRule) {
		t.Error("Property rule still enabled")
	}

	behavior := DefaultBehavior()
	behavior.Set(IncludeGenerated, true)

	if !behavior.Enabled(IncludeGenerated) || behavior.Enabled(PackageDir) {
		t.Errorf("Unexpected behavior %+v", behavior)
	}
}
