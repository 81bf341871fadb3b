package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with
// code 1, the one fatal-exit path shared by the CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
