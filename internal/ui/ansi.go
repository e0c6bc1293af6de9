package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
	symWarn  = "⚠"
)

// Streams for status lines. The CLI points them at the command's writers.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// SetOutput redirects status lines; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		Out = out
	}
	if errOut != nil {
		Err = errOut
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func colorFor(w io.Writer) bool {
	if disableColor {
		return false
	}
	return forceColor || isTerminal(w)
}

func paint(w io.Writer, color, s string) string {
	if color == "" || !colorFor(w) {
		return s
	}
	return color + s + reset
}

// C colors s for the standard output stream.
func C(color, s string) string { return paint(Out, color, s) }

func Dim(s string) string { return C(dim, s) }

func OK(msg string)   { fmt.Fprintln(Out, paint(Out, fgGreen, symCheck+" "+msg)) }
func Warn(msg string) { fmt.Fprintln(Err, paint(Err, fgYellow, symWarn+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, paint(Err, fgRed, symCross+" "+msg)) }
