// file: main.go
// version: 1.0.0
// guid: 3f9c1d2e-8b4a-4c6d-9e0f-1a2b3c4d5e6f

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/library-console/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
