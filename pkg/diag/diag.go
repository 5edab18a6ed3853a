// Package diag styles diagnostic and report text for the terminal.
package diag

import (
	"os"

	"github.com/muesli/termenv"
)

var output = termenv.NewOutput(os.Stdout)

// EnableColor forces styling on or off, overriding terminal detection.
func EnableColor(enable bool) {
	if enable {
		output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.ANSI256))
		return
	}
	output = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
}

func paint(c termenv.Color, text string) string {
	return output.String(text).Foreground(c).String()
}

func Red(text string) string       { return paint(termenv.ANSIRed, text) }
func BrightRed(text string) string { return paint(termenv.ANSIBrightRed, text) }
func Green(text string) string     { return paint(termenv.ANSIGreen, text) }
func Yellow(text string) string    { return paint(termenv.ANSIYellow, text) }
func Blue(text string) string      { return paint(termenv.ANSIBlue, text) }
func Cyan(text string) string      { return paint(termenv.ANSICyan, text) }
func Gray(text string) string      { return paint(termenv.ANSIBrightBlack, text) }
