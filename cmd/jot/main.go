// Command jot is a small terminal text editor.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jot: %v\n", err)
		os.Exit(1)
	}
}
