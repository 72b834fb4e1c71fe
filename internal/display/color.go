// Package display renders prayer schedules for the terminal: ANSI styles for
// the current and next prayer, and aligned tables.
//
// Colour follows a Mode. In Auto mode NO_COLOR (https://no-color.org/) turns
// it off, FORCE_COLOR turns it on, and otherwise it is on only when the output
// is a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape codes for styling.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	fgGray = "\033[90m" // bright black = gray
)

// Mode selects when styles are applied.
type Mode int

const (
	Auto Mode = iota
	Always
	Never
)

var modeNames = [...]string{"auto", "always", "never"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts auto, always or never, in any case.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(i), nil
		}
	}
	return Auto, fmt.Errorf("unknown color mode %q: want auto, always or never", s)
}

// enabled reports whether styles are applied.
var enabled = detect(Auto, os.LookupEnv, os.Stdout)

// Configure sets the colour state for output written to w.
func Configure(m Mode, w io.Writer) {
	enabled = detect(m, os.LookupEnv, w)
}

func detect(m Mode, lookup func(string) (string, bool), w io.Writer) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		return false
	}
	if v, ok := lookup("FORCE_COLOR"); ok && v != "" {
		return true
	}
	return isTerminal(w)
}

// isTerminal reports whether w is a terminal, including Cygwin/MSYS
// pseudo terminals on Windows. Writers without a file descriptor never are.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetEnabled overrides the detected colour state.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether styles are applied.
func Enabled() bool {
	return enabled
}

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

// Bold is used for titles and table headers.
func Bold(text string) string {
	return wrap(bold, text)
}

// Boldf formats and bolds a string.
func Boldf(format string, a ...interface{}) string {
	return Bold(fmt.Sprintf(format, a...))
}

// Dim marks passed prayers and times that could not be computed.
func Dim(text string) string {
	return wrap(dim, text)
}

// Green marks a successful check.
func Green(text string) string {
	return wrap(green, text)
}

// Yellow marks a warning.
func Yellow(text string) string {
	return wrap(yellow, text)
}

// Gray is used for secondary details such as the method line.
func Gray(text string) string {
	return wrap(fgGray, text)
}

// Accent highlights the next prayer and today's table row.
func Accent(text string) string {
	return wrap(bold+cyan, text)
}
