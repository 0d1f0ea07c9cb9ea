package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnvVar enables debug output when set to any non-empty value.
const DebugEnvVar = "WT_DEBUG"

// output is where debug lines go; stderr keeps stdout clean for reports.
var output io.Writer = os.Stderr

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// DebugEnabled returns true if debug mode is enabled via WT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, "debug: "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, append([]interface{}{"debug:"}, args...)...)
	}
}
