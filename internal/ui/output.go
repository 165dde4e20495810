// Package ui provides consistent styled output for the javamatrix CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Writer provides styled output methods that respect color settings.
// Status messages go to errOut so stdout carries only generated output.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool

	success *color.Color
	warning *color.Color
	failure *color.Color
	info    *color.Color
	bold    *color.Color
}

// NewWriter creates a Writer that writes to stdout/stderr.
// Color is disabled when noColor is true, NO_COLOR is set, or stdout is not a terminal.
func NewWriter(noColor bool) *Writer {
	return NewWriterWithOutputs(os.Stdout, os.Stderr, noColor || color.NoColor)
}

// NewWriterWithOutputs creates a Writer with custom output destinations.
// Intended for testing.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	w := &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}

	for _, c := range []*color.Color{w.success, w.warning, w.failure, w.info, w.bold} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return w
}

// Out returns the destination for primary output.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Success prints a success message to stderr with a green checkmark prefix.
func (w *Writer) Success(msg string) {
	writeLine(w.errOut, w.success.Sprint("✓"), msg)
}

// Warning prints a warning message to stderr with a yellow prefix.
func (w *Writer) Warning(msg string) {
	writeLine(w.errOut, w.warning.Sprint("warning:"), msg)
}

// Error prints an error message to stderr with a red prefix.
func (w *Writer) Error(msg string) {
	writeLine(w.errOut, w.failure.Sprint("error:"), msg)
}

// Info prints an informational message to stderr with a cyan prefix.
func (w *Writer) Info(msg string) {
	writeLine(w.errOut, w.info.Sprint("info:"), msg)
}

// Bold returns text in bold.
func (w *Writer) Bold(msg string) string {
	return w.bold.Sprint(msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

func writeLine(out io.Writer, prefix, msg string) {
	// Best-effort; if stderr fails there's nothing useful to do.
	_, _ = fmt.Fprintf(out, "%s %s\n", prefix, msg)
}
