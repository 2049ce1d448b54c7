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

// Nameofguard reports C# fields and properties initialized with nameof of themselves.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fillmore-labs.com/nameofguard/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.RootCmd().ExecuteContext(ctx)

	stop()

	code := commands.ExitCode(err)
	if code == commands.ExitError {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	os.Exit(code)
}
