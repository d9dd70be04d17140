// SPDX-License-Identifier: MIT

// Command numerics runs dense linear-algebra operations on matrix documents.
package main

import (
	"os"

	"github.com/katalvlaran/numerics/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
