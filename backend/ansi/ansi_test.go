package ansi

import (
	"bytes"
	"strings"
	"testing"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
)

func newTestBackend(caps capabilities.Capabilities) (*Backend, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, caps), &buf
}

func TestMoveCursorIsOneBased(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{})
	if err := b.Apply([]sc.Command{sc.MoveCursor(0, 0)}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	b.Flush()
	if got := buf.String(); got != "\x1b[1;1H" {
		t.Errorf("MoveCursor(0,0) wrote %q, want ESC[1;1H", got)
	}
}

func TestWriteIsBufferedUntilFlush(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{})
	b.Apply([]sc.Command{sc.Write("hello")})
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written before Flush, got %q", buf.String())
	}
	b.Flush()
	if buf.String() != "hello" {
		t.Errorf("got %q after Flush, want hello", buf.String())
	}
}

func TestResetDrainsUnconditionally(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{})
	b.threshold = 1 << 20 // large enough that an implicit threshold flush can't explain this
	b.Apply([]sc.Command{sc.Write("buffered")})
	if err := b.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "buffered") {
		t.Errorf("expected Reset to drain prior writes, got %q", got)
	}
	if !strings.Contains(got, "\x1b[2J") || !strings.Contains(got, "\x1b[?25h") {
		t.Errorf("expected Reset to clear screen and show cursor, got %q", got)
	}
}

func TestSetForegroundRGBEmitsTruecolorSGR(t *testing.T) {
	caps := capabilities.Capabilities{Truecolor: true, Xterm256: true}
	b, buf := newTestBackend(caps)
	b.Apply([]sc.Command{sc.SetForeground(sc.RGB(10, 20, 30)), sc.Write("x")})
	b.Flush()
	got := buf.String()
	if !strings.Contains(got, "38;2;10;20;30") {
		t.Errorf("expected a truecolor SGR sequence, got %q", got)
	}
}

func TestSetForegroundDowngradesWhenNoTruecolor(t *testing.T) {
	caps := capabilities.Capabilities{Truecolor: false, Xterm256: false}
	b, buf := newTestBackend(caps)
	b.Apply([]sc.Command{sc.SetForeground(sc.RGB(255, 0, 0)), sc.Write("x")})
	b.Flush()
	got := buf.String()
	if !strings.Contains(got, "91") { // bright red foreground, 30+9%8=1, +60 bright = 91
		t.Errorf("expected a downgraded bright-red SGR code (91), got %q", got)
	}
}

func TestStyleTransitionAlwaysResetsFirst(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{Truecolor: true})
	b.Apply([]sc.Command{sc.SetStyle(sc.Bold), sc.Write("a"), sc.SetStyle(sc.Underline), sc.Write("b")})
	b.Flush()
	got := buf.String()
	if strings.Count(got, "\x1b[0m") != 2 {
		t.Errorf("expected a reset before each style transition, got %q", got)
	}
}

func TestResetCommandIsBareSGRNotTeardown(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{Truecolor: true})
	b.Apply([]sc.Command{sc.SetForeground(sc.RGB(255, 0, 0)), sc.Write("x"), sc.Reset()})
	b.Flush()
	got := buf.String()
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("expected the reset command to end the stream with a bare SGR reset, got %q", got)
	}
	if strings.Contains(got, "\x1b[2J") || strings.Contains(got, "\x1b[?25h") || strings.Contains(got, "\x1b[H") {
		t.Errorf("the reset command must not clear the screen or touch the cursor, got %q", got)
	}
}

func TestSaveRestoreCursorUsesClassicEscapes(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{})
	b.Apply([]sc.Command{sc.SaveCursor(), sc.RestoreCursor()})
	b.Flush()
	if buf.String() != "\x1b7\x1b8" {
		t.Errorf("got %q, want ESC 7 ESC 8", buf.String())
	}
}

func TestStructuralCommandsAreNoOps(t *testing.T) {
	b, buf := newTestBackend(capabilities.Capabilities{})
	b.Apply([]sc.Command{
		sc.Begin("root", sc.KindText, sc.Root),
		sc.SetText("root", "hi"),
		sc.Frame("root", 0, 0.5),
		sc.End("root"),
	})
	b.Flush()
	if buf.Len() != 0 {
		t.Errorf("expected structural commands to write nothing, got %q", buf.String())
	}
}
