// Package errors holds the CLI's error exit path. Errors are logged with
// full detail to the log file and printed to stderr in a short user-facing
// form.
package errors

import (
	"fmt"
	"os"

	"castlog/internal/logger"
)

// Format renders an error for the terminal.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a formatted message in the same terminal style.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits 1. A nil error is a
// no-op so it can wrap a command's return value directly.
func Fatal(err error) {
	if err != nil {
		logger.Error("Exiting on error", "error", err)
		fmt.Fprintln(os.Stderr, Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Exiting on error", "error", msg)
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
