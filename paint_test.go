package stagecraft

import (
	"testing"

	"github.com/kelvinhart/stagecraft/capabilities"
)

func testPaintOptions(unicode bool) PaintOptions {
	return PaintOptions{
		Theme:        DefaultTheme,
		Capabilities: capabilities.Capabilities{Unicode: unicode, Truecolor: true, Xterm256: true},
	}
}

// TestPaintPlainText covers spec.md S1: a bare text node paints a single
// move+write at the origin with no color/style wrapping.
func TestPaintPlainText(t *testing.T) {
	node := Node{Address: "root", Kind: KindText, Properties: With(EmptyProperties, PropText, "hello")}
	commands := Paint(node, testPaintOptions(true))

	if len(commands) != 2 {
		t.Fatalf("got %d commands, want 2 (move + write), commands=%v", len(commands), commands)
	}
	if commands[0].Tag != CmdMoveCursor || commands[0].Row != 0 || commands[0].Column != 0 {
		t.Errorf("expected first command to move to (0,0), got %+v", commands[0])
	}
	if commands[1].Tag != CmdWrite || commands[1].Text != "hello" {
		t.Errorf("expected a write of %q, got %+v", "hello", commands[1])
	}
}

// TestPaintPanelTopBorder covers spec.md S2: a titled panel's top border
// at width 20.
func TestPaintPanelTopBorder(t *testing.T) {
	child := Node{Address: "root.text", Kind: KindText, Properties: With(EmptyProperties, PropText, "x")}
	panel := Node{
		Address:    "root",
		Kind:       KindPanel,
		Properties: With(With(EmptyProperties, PropTitle, "T"), PropBordered, true),
		Children:   []Node{child},
	}

	opts := testPaintOptions(true)
	opts.Capabilities.Width = 20
	m := measure(panel, opts)
	var out []Command
	paintAt(panel, 0, 0, 20, m.height, opts, &out)

	if out[0].Tag != CmdMoveCursor || out[0].Row != 0 || out[0].Column != 0 {
		t.Fatalf("expected border write to start at (0,0), got %+v", out[0])
	}
	top := out[1].Text
	want := "┌─ T ──────────────┐"
	if top != want {
		t.Errorf("top border = %q (len %d), want %q (len %d)", top, len([]rune(top)), want, len([]rune(want)))
	}
}

func TestPaintSpacerEmitsNoCommands(t *testing.T) {
	node := Node{Address: "root", Kind: KindSpacer, Properties: EmptyProperties}
	commands := Paint(node, testPaintOptions(true))
	if len(commands) != 0 {
		t.Errorf("expected a bare spacer to paint nothing, got %v", commands)
	}
}

func TestEmitStyledTextBalancesReset(t *testing.T) {
	var out []Command
	emitStyledText(0, 0, "hi", Semantic(SemanticAccent), NoColor, Bold, DefaultTheme, &out)

	if out[len(out)-1].Tag != CmdReset {
		t.Fatalf("expected styled text to end with a Reset, got %+v", out[len(out)-1])
	}

	var plain []Command
	emitStyledText(0, 0, "hi", NoColor, NoColor, 0, DefaultTheme, &plain)
	for _, c := range plain {
		if c.Tag == CmdReset {
			t.Errorf("did not expect a Reset when no color/style was applied, got %v", plain)
		}
	}
}
