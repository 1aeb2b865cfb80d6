// Package capabilities detects the terminal feature set the core engine
// needs to make paint and color-downgrade decisions. It is an external
// collaborator from the core's point of view: stagecraft.Context only
// needs the Capabilities struct, never this package's detection logic.
package capabilities

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/xo/terminfo"
	"golang.org/x/term"
)

// Capabilities bundles everything the paint engine and ANSI backend
// consult: color depth, Unicode support, terminal size, and TTY status.
type Capabilities struct {
	Truecolor bool
	Xterm256  bool
	Unicode   bool
	Width     int
	Height    int
	IsTTY     bool
}

// Option overrides a single field of a detected Capabilities, for tests
// and for callers that already know part of the answer (e.g. a forced
// --no-color flag).
type Option func(*Capabilities)

func WithSize(width, height int) Option {
	return func(c *Capabilities) { c.Width, c.Height = width, height }
}

func WithColor(truecolor, xterm256 bool) Option {
	return func(c *Capabilities) { c.Truecolor, c.Xterm256 = truecolor, xterm256 }
}

// Detect probes the process's stdout for TTY status, color profile and
// window size, applying opts last so callers can pin down whatever the
// environment can't answer (headless CI, piped output, etc).
func Detect(opts ...Option) Capabilities {
	fd := os.Stdout.Fd()
	isTTY := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	profile := termenv.EnvColorProfile()
	truecolor := profile == termenv.TrueColor
	xterm256 := truecolor || profile == termenv.ANSI256

	unicode := detectUnicode()

	width, height := 80, 24
	if isTTY {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			width, height = w, h
		}
	}

	c := Capabilities{
		Truecolor: truecolor,
		Xterm256:  xterm256,
		Unicode:   unicode,
		Width:     width,
		Height:    height,
		IsTTY:     isTTY,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// detectUnicode reports Unicode support when a named terminfo entry loads
// from the environment; unknown/unparsable terminfo falls back to a simple
// locale check, matching the "best effort" nature of the
// out-of-scope capability collaborator.
func detectUnicode() bool {
	if ti, err := terminfo.LoadFromEnv(); err == nil && ti != nil {
		if ti.Name != "" {
			return true
		}
	}
	lang := os.Getenv("LANG") + os.Getenv("LC_ALL") + os.Getenv("LC_CTYPE")
	for _, want := range []string{"UTF-8", "utf8", "UTF8", "utf-8"} {
		if contains(lang, want) {
			return true
		}
	}
	return false
}

func contains(s, sub string) bool {
	return len(sub) == 0 || (len(s) >= len(sub) && indexOf(s, sub) >= 0)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
