// Package errors renders command failures for the terminal. Library code
// returns wrapped errors and only main decides to exit.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/lessonprompt/internal/logger"
)

const prefix = "Error: "

// Format returns the user-facing line for err, or "" for nil
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Print records err in the log file and writes its line to w
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(w, Format(err))
}

// Fatal prints a non-nil err to stderr and exits 1
func Fatal(err error) {
	if err == nil {
		return
	}
	Print(os.Stderr, err)
	os.Exit(1)
}

// Fatalf wraps with fmt.Errorf, so %w keeps the cause in the log
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
