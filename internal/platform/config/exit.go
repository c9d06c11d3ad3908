package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exitf writes a formatted message to stderr, prefixed with the program
// name, and exits with code 1. Entry points use it for flag and environment
// failures that happen before logging is configured.
func Exitf(format string, args ...any) {
	prefixed := append([]any{filepath.Base(os.Args[0])}, args...)
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", prefixed...)
	os.Exit(1)
}
