package session

import (
	"testing"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
	"github.com/kelvinhart/stagecraft/runtime"
)

func testCaps() capabilities.Capabilities {
	return capabilities.Capabilities{Width: 80, Height: 24, Truecolor: true, Xterm256: true, Unicode: true}
}

type textView struct{ content string }

func (v textView) MakeNode(ctx *sc.Context) sc.Node {
	addr := ctx.MakeAddress("text")
	return sc.Node{Address: addr, Kind: sc.KindText, Properties: sc.With(sc.EmptyProperties, sc.PropText, v.content)}
}

func TestUpdateAutoAssignsPosition(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	s := New(80, 24, testCaps(), sc.SessionOptions{})
	if err := s.Update("a", nil, textView{"first"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	pos, ok := s.GetPosition("a")
	if !ok || pos != (Position{Row: 0, Column: 0}) {
		t.Errorf("first element position = %+v, want (0,0)", pos)
	}

	if err := s.Update("b", nil, textView{"second"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	pos2, _ := s.GetPosition("b")
	if pos2 != (Position{Row: 0, Column: 3}) {
		t.Errorf("second element auto-position = %+v, want (0,3)", pos2)
	}
}

func TestUpdateOnNewIDEmitsBeginAndPaint(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	var applied []sc.Command
	runtime.Register(collector(func(cmds []sc.Command) { applied = append(applied, cmds...) }))

	s := New(80, 24, testCaps(), sc.SessionOptions{})
	s.Update("a", nil, textView{"hello"})

	if len(applied) == 0 || applied[0].Tag != sc.CmdBegin {
		t.Fatalf("expected first command to be Begin, got %+v", applied)
	}
}

func TestUpdateOnExistingIDReconciles(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	var batches [][]sc.Command
	runtime.Register(collector(func(cmds []sc.Command) { batches = append(batches, cmds) }))

	s := New(80, 24, testCaps(), sc.SessionOptions{})
	s.Update("a", nil, textView{"hello"})
	s.Update("a", nil, textView{"world"})

	if len(batches) != 2 {
		t.Fatalf("expected 2 commit batches, got %d", len(batches))
	}
	// Second update is a reconciled, not a fresh, region: it must not
	// begin the region again.
	for _, c := range batches[1] {
		if c.Tag == sc.CmdBegin {
			t.Errorf("expected no Begin on an incremental update, got %+v", batches[1])
		}
	}
}

func TestRemoveEndsRegion(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	var last []sc.Command
	runtime.Register(collector(func(cmds []sc.Command) { last = cmds }))

	s := New(80, 24, testCaps(), sc.SessionOptions{})
	s.Update("a", nil, textView{"hello"})
	s.Remove("a")

	if len(last) == 0 || last[0].Tag != sc.CmdEnd {
		t.Fatalf("expected Remove to emit End first, got %+v", last)
	}
	if s.Count() != 0 {
		t.Errorf("expected element removed from session, count=%d", s.Count())
	}
}

func TestClearEmptiesAndEmitsClear(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	rec := &resetRecorder{}
	runtime.Register(rec)

	s := New(80, 24, testCaps(), sc.SessionOptions{})
	s.Update("a", nil, textView{"hello"})
	s.Clear()

	if s.Count() != 0 {
		t.Errorf("expected Clear to empty the session")
	}
	if rec.resets != 1 {
		t.Fatalf("expected Clear to tear the backend down via Reset, got %d resets", rec.resets)
	}
	if rec.clears != 1 {
		t.Errorf("expected Clear to emit one clear command, got %d", rec.clears)
	}
}

func TestHeadlessSuppressesCommit(t *testing.T) {
	runtime.ClearAll()
	defer runtime.ClearAll()

	called := false
	runtime.Register(collector(func(cmds []sc.Command) { called = true }))

	s := New(80, 24, testCaps(), sc.SessionOptions{Headless: true})
	s.Update("a", nil, textView{"hello"})

	if called {
		t.Errorf("expected a headless session to suppress runtime commits")
	}
}

// collector adapts a plain func into the sc.Backend interface for tests.
type collector func([]sc.Command)

func (c collector) Apply(cmds []sc.Command) error { c(cmds); return nil }
func (c collector) Flush() error                  { return nil }
func (c collector) Reset() error                  { return nil }

// resetRecorder is a no-op sc.Backend that counts Reset calls and applied
// clear commands.
type resetRecorder struct{ resets, clears int }

func (r *resetRecorder) Apply(cmds []sc.Command) error {
	for _, c := range cmds {
		if c.Tag == sc.CmdClear {
			r.clears++
		}
	}
	return nil
}
func (r *resetRecorder) Flush() error { return nil }
func (r *resetRecorder) Reset() error { r.resets++; return nil }
