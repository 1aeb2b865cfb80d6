// Package event implements a structured backend that turns a command
// stream into a sequence of plain record values instead of terminal
// bytes — useful for tests and for any host that wants to observe what
// the engine is doing without a real terminal attached.
package event

import (
	"fmt"
	"sync"
	"time"

	sc "github.com/kelvinhart/stagecraft"
)

// ColorRecord is the JSON-friendly projection of a Color: either an
// indexed/xterm256 value or an RGB triple, never both.
type ColorRecord struct {
	Type  string `json:"type"`
	Value uint8  `json:"value,omitempty"`
	R     uint8  `json:"r,omitempty"`
	G     uint8  `json:"g,omitempty"`
	B     uint8  `json:"b,omitempty"`
}

// Record is one observed command, reshaped into field names a consumer
// can match on without knowing the Command struct's layout.
type Record struct {
	Type      string       `json:"type"`
	NodeID    string       `json:"nodeId,omitempty"`
	NodeKind  string       `json:"nodeKind,omitempty"`
	ParentID  string       `json:"parentId,omitempty"`
	Text      string       `json:"text,omitempty"`
	Frame     int          `json:"frame,omitempty"`
	Progress  float64      `json:"progress,omitempty"`
	Row       int          `json:"row,omitempty"`
	Column    int          `json:"column,omitempty"`
	Color     *ColorRecord `json:"color,omitempty"`
	Styles    []string     `json:"styles,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
}

// Batch is what Apply hands the sink for each call: the records it
// produced plus the open-node count after applying them, mirroring
// spec.md's "{events, node_count}" shape.
type Batch struct {
	Events    []Record `json:"events"`
	NodeCount int      `json:"nodeCount"`
}

// Sink receives each Apply call's batch. Tests typically collect these
// into a slice; a real host might forward them over a socket.
type Sink func(Batch)

// Backend maintains the open-node stack Begin/End commands describe. An End
// whose address is not on top of the stack leaves the stack unchanged; it
// is neither reported nor a panic.
type Backend struct {
	mu         sync.Mutex
	sink       Sink
	stack      []sc.Address
	timestamps bool
	now        func() time.Time
}

// New returns a Backend that calls sink once per Apply with that call's
// batch. withTimestamps controls whether records carry an ISO-8601
// Timestamp field.
func New(sink Sink, withTimestamps bool) *Backend {
	return &Backend{sink: sink, timestamps: withTimestamps, now: time.Now}
}

// Apply turns commands into records, tracking the open-node stack as it
// goes, and delivers one Batch to the sink.
func (b *Backend) Apply(commands []sc.Command) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var events []Record
	for _, cmd := range commands {
		rec, ok := b.toRecord(cmd)
		if !ok {
			continue
		}
		events = append(events, rec)
	}
	b.sink(Batch{Events: events, NodeCount: len(b.stack)})
	return nil
}

func (b *Backend) toRecord(cmd sc.Command) (Record, bool) {
	rec := Record{}
	if b.timestamps {
		rec.Timestamp = b.now().Format(time.RFC3339Nano)
	}

	switch cmd.Tag {
	case sc.CmdBegin:
		b.stack = append(b.stack, cmd.Address)
		rec.Type = "begin"
		rec.NodeID = string(cmd.Address)
		rec.NodeKind = string(cmd.Kind)
		rec.ParentID = string(cmd.ParentAddress)
	case sc.CmdSetText:
		rec.Type = "set_text"
		rec.NodeID = string(cmd.Address)
		rec.Text = cmd.Text
	case sc.CmdFrame:
		rec.Type = "frame"
		rec.NodeID = string(cmd.Address)
		rec.Frame = cmd.FrameIndex
		rec.Progress = cmd.Progress
	case sc.CmdEnd:
		if len(b.stack) > 0 && b.stack[len(b.stack)-1] == cmd.Address {
			b.stack = b.stack[:len(b.stack)-1]
		}
		rec.Type = "end"
		rec.NodeID = string(cmd.Address)

	case sc.CmdClear:
		b.stack = nil
		rec.Type = "clear"
	case sc.CmdClearLine:
		rec.Type = "clear_line"
	case sc.CmdClearToEOL:
		rec.Type = "clear_to_eol"

	case sc.CmdMoveCursor:
		rec.Type = "move_cursor"
		rec.Row, rec.Column = cmd.Row, cmd.Column
	case sc.CmdSaveCursor:
		rec.Type = "save_cursor"
	case sc.CmdRestoreCursor:
		rec.Type = "restore_cursor"
	case sc.CmdHideCursor:
		rec.Type = "hide_cursor"
	case sc.CmdShowCursor:
		rec.Type = "show_cursor"

	case sc.CmdSetForeground:
		rec.Type = "set_foreground"
		rec.Color = colorRecord(cmd.Foreground)
	case sc.CmdSetBackground:
		rec.Type = "set_background"
		rec.Color = colorRecord(cmd.Background)
	case sc.CmdSetStyle:
		rec.Type = "set_style"
		rec.Styles = styleNames(cmd.Style)
	case sc.CmdReset:
		rec.Type = "reset"

	case sc.CmdWrite:
		rec.Type = "write"
		rec.Text = cmd.Text
	case sc.CmdWriteLine:
		rec.Type = "write_line"
		rec.Text = cmd.Text

	case sc.CmdFlush:
		rec.Type = "flush"
	default:
		return Record{}, false
	}
	return rec, true
}

func colorRecord(c sc.Color) *ColorRecord {
	switch {
	case c.IsNone():
		return nil
	case c.IsRGB():
		r, g, b := c.RGB()
		return &ColorRecord{Type: "rgb", R: r, G: g, B: b}
	case c.IsXterm256():
		return &ColorRecord{Type: "xterm256", Value: c.XtermValue()}
	case c.IsIndexed():
		return &ColorRecord{Type: "indexed", Value: c.IndexValue()}
	case c.IsSemantic():
		return &ColorRecord{Type: "semantic", Value: uint8(c.SemanticValue())}
	default:
		return nil
	}
}

func styleNames(s sc.TextStyle) []string {
	var out []string
	for _, a := range []struct {
		flag sc.TextStyle
		name string
	}{
		{sc.Bold, "bold"}, {sc.Dim, "dim"}, {sc.Italic, "italic"},
		{sc.Underline, "underline"}, {sc.Blink, "blink"}, {sc.Reverse, "reverse"},
		{sc.Hidden, "hidden"}, {sc.Strikethrough, "strikethrough"},
	} {
		if s.Has(a.flag) {
			out = append(out, a.name)
		}
	}
	return out
}

// OpenNodeCount reports how many Begin commands are currently unmatched by
// an End — the live depth of the stack the backend validates.
func (b *Backend) OpenNodeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack)
}

// Flush is a no-op: this backend has no internal buffer to drain.
func (b *Backend) Flush() error { return nil }

// Reset clears the open-node stack, mirroring the ANSI backend's
// full-state reset.
func (b *Backend) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stack = nil
	return nil
}

var _ fmt.Stringer = Record{}

// String gives a one-line summary, handy in t.Logf assertions.
func (r Record) String() string {
	return fmt.Sprintf("%s node=%s text=%q", r.Type, r.NodeID, r.Text)
}
