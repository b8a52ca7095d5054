// tosctl runs syllabus/exam analyses from the terminal.
//
// Usage:
//
//	tosctl analyze --syllabus=<file> --exam=<file> [--json] [--xlsx=<path>] [--copy]
//	tosctl analyze --sample
//	tosctl prompt --syllabus=<file> --exam=<file>
//	tosctl tui [--sample]
//	tosctl serve [--port=8080]
package main

import (
	"fmt"
	"os"

	"syllabus-analyzer/internal/shared/telemetry"
)

func main() {
	defer telemetry.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
