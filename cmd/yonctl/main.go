// Command yonctl runs exam analysis, roadmap planning, progress comparison
// and review scheduling offline over JSON files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
