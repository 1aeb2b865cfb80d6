// Package ansi implements the terminal backend that renders a command
// stream as ECMA-48 escape sequences. It tracks shadow terminal state (the
// currently active foreground, background and style, plus the cursor
// position set by cursor commands) so that a color or style command that
// would not change the active state emits nothing, and
// downgrades colors to whatever depth the reported capabilities admit.
package ansi

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
)

// defaultFlushThreshold is how many buffered bytes accumulate before a
// write forces a drain to the underlying writer, per spec.md's "internal
// buffer, drained past a configured threshold" buffering model.
const defaultFlushThreshold = 4096

// Backend writes ANSI/ECMA-48 escape sequences to out, downgrading colors
// to caps' reported depth and minimizing SGR churn via shadow state.
type Backend struct {
	mu        sync.Mutex
	out       io.Writer
	buf       bytes.Buffer
	threshold int
	caps      capabilities.Capabilities

	curFg    sc.Color
	curBg    sc.Color
	curStyle sc.TextStyle

	cursorRow, cursorCol int
	savedRow, savedCol   int
}

// New returns a Backend writing to out, using caps to pick a color depth.
// caps is captured once at construction; a capability
// change mid-session requires a new Backend.
func New(out io.Writer, caps capabilities.Capabilities) *Backend {
	return &Backend{out: out, threshold: defaultFlushThreshold, caps: caps}
}

// Apply renders commands in order, each against the backend's current
// shadow state.
func (b *Backend) Apply(commands []sc.Command) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, cmd := range commands {
		switch cmd.Tag {
		case sc.CmdBegin, sc.CmdSetText, sc.CmdFrame, sc.CmdEnd:
			// Structural commands describe the logical node tree, which
			// this backend doesn't need to track; the event backend is
			// the one that cares.

		case sc.CmdClear:
			b.write("\x1b[2J")
		case sc.CmdClearLine:
			b.write("\x1b[2K")
		case sc.CmdClearToEOL:
			b.write("\x1b[K")

		case sc.CmdMoveCursor:
			b.cursorRow, b.cursorCol = cmd.Row, cmd.Column
			b.write(fmt.Sprintf("\x1b[%d;%dH", cmd.Row+1, cmd.Column+1))
		case sc.CmdSaveCursor:
			b.savedRow, b.savedCol = b.cursorRow, b.cursorCol
			b.write("\x1b7")
		case sc.CmdRestoreCursor:
			b.cursorRow, b.cursorCol = b.savedRow, b.savedCol
			b.write("\x1b8")
		case sc.CmdHideCursor:
			b.write("\x1b[?25l")
		case sc.CmdShowCursor:
			b.write("\x1b[?25h")

		case sc.CmdSetForeground:
			if cmd.Foreground != b.curFg {
				b.curFg = cmd.Foreground
				b.reapplyStyle()
			}
		case sc.CmdSetBackground:
			if cmd.Background != b.curBg {
				b.curBg = cmd.Background
				b.reapplyStyle()
			}
		case sc.CmdSetStyle:
			if cmd.Style != b.curStyle {
				b.curStyle = cmd.Style
				b.reapplyStyle()
			}
		case sc.CmdReset:
			// A bare SGR reset: this is the command a painted span ends with,
			// not a terminal teardown. Screen clear/home/show-cursor lives on
			// Backend.Reset, called when a session actually tears down.
			b.curFg, b.curBg, b.curStyle = sc.NoColor, sc.NoColor, 0
			b.write("\x1b[0m")

		case sc.CmdWrite:
			b.write(cmd.Text)
		case sc.CmdWriteLine:
			b.write(cmd.Text)
			b.write("\r\n")

		case sc.CmdFlush:
			b.flushLocked()
		}

		if b.buf.Len() >= b.threshold {
			if err := b.flushLocked(); err != nil {
				return err
			}
		}
	}
	return nil
}

// reapplyStyle re-emits the full SGR state from scratch: ECMA-48 has no
// universal per-attribute "turn this one off" code, so any transition is a
// reset followed by reapplying everything currently wanted.
func (b *Backend) reapplyStyle() {
	b.write("\x1b[0m")
	var params []string
	for _, a := range []sc.TextStyle{sc.Bold, sc.Dim, sc.Italic, sc.Underline, sc.Blink, sc.Reverse, sc.Hidden, sc.Strikethrough} {
		if b.curStyle.Has(a) {
			params = append(params, sgrAttr(a))
		}
	}
	if !b.curFg.IsNone() {
		params = append(params, b.sgrColor(b.curFg, false))
	}
	if !b.curBg.IsNone() {
		params = append(params, b.sgrColor(b.curBg, true))
	}
	if len(params) == 0 {
		return
	}
	seq := "\x1b["
	for i, p := range params {
		if i > 0 {
			seq += ";"
		}
		seq += p
	}
	seq += "m"
	b.write(seq)
}

func sgrAttr(a sc.TextStyle) string {
	switch a {
	case sc.Bold:
		return "1"
	case sc.Dim:
		return "2"
	case sc.Italic:
		return "3"
	case sc.Underline:
		return "4"
	case sc.Blink:
		return "5"
	case sc.Reverse:
		return "7"
	case sc.Hidden:
		return "8"
	case sc.Strikethrough:
		return "9"
	default:
		return ""
	}
}

// sgrColor downgrades c to the backend's capability depth and returns the
// matching SGR parameter substring (without the leading/trailing
// separators reapplyStyle adds).
func (b *Backend) sgrColor(c sc.Color, background bool) string {
	c = downgrade(c, b.caps.Truecolor, b.caps.Xterm256)
	base := 38
	if background {
		base = 48
	}
	switch {
	case c.IsRGB():
		r, g, b2 := c.RGB()
		return fmt.Sprintf("%d;2;%d;%d;%d", base, r, g, b2)
	case c.IsXterm256():
		return fmt.Sprintf("%d;5;%d", base, c.XtermValue())
	case c.IsIndexed():
		return indexedSGR(c.IndexValue(), background)
	default:
		return ""
	}
}

// indexedSGR maps a 0..15 basic color to its classic 30-37/40-47 (or
// 90-97/100-107 for the bright half) SGR code.
func indexedSGR(idx uint8, background bool) string {
	bright := idx >= 8
	n := idx % 8
	base := 30
	if background {
		base = 40
	}
	if bright {
		base += 60
	}
	return fmt.Sprintf("%d", base+int(n))
}

func (b *Backend) write(s string) {
	b.buf.WriteString(s)
}

// Flush drains any buffered bytes to out.
func (b *Backend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushLocked()
}

func (b *Backend) flushLocked() error {
	if b.buf.Len() == 0 {
		return nil
	}
	_, err := b.out.Write(b.buf.Bytes())
	b.buf.Reset()
	if err != nil {
		return sc.WrapError(sc.ErrWriteFailed, "ansi output", err)
	}
	return nil
}

// Reset restores the backend to a clean terminal state and drains
// unconditionally, regardless of the buffering threshold.
func (b *Backend) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.curFg, b.curBg, b.curStyle = sc.NoColor, sc.NoColor, 0
	b.cursorRow, b.cursorCol = 0, 0
	b.write("\x1b[0m\x1b[2J\x1b[H\x1b[?25h")
	return b.flushLocked()
}
