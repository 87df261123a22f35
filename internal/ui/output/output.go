// Package output creates termenv outputs with consistent color handling.
package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for a terminal.
// NO_COLOR forces Ascii, otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New creates a termenv.Output for w. Writers that are not terminals get no colors.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = ColorProfile()
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
