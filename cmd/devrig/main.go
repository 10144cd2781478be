// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/psrsantos/devrig/cmd/devrig/commands"
	"github.com/psrsantos/devrig/cmd/devrig/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
