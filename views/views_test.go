package views

import (
	"testing"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/capabilities"
)

func newCtx() *sc.Context {
	return sc.NewContext(80, 24, capabilities.Capabilities{}, sc.SessionOptions{}, 0)
}

func TestTextMakeNodeSetsProperties(t *testing.T) {
	node := NewText("hi").WithStyle(sc.Bold).MakeNode(newCtx())
	if node.Kind != sc.KindText {
		t.Fatalf("got kind %s, want text", node.Kind)
	}
	if got := sc.GetOr(node.Properties, sc.PropText, ""); got != "hi" {
		t.Errorf("PropText = %q, want hi", got)
	}
	if got := sc.GetOr(node.Properties, sc.PropStyle, sc.TextStyle(0)); !got.Has(sc.Bold) {
		t.Errorf("expected Bold to survive MakeNode, got %v", got)
	}
}

func TestPanelFlattensChildGroup(t *testing.T) {
	group := sc.Group{Children: []sc.View{NewText("a"), NewText("b")}}
	panel := NewPanel("title", group)

	node := panel.MakeNode(newCtx())
	if len(node.Children) != 2 {
		t.Fatalf("expected the panel's grouped child to flatten to 2 children, got %d", len(node.Children))
	}
}

func TestStackPaddingAndSpacingProperties(t *testing.T) {
	stack := NewVStack(NewText("a"), NewText("b")).WithPadding(2).WithSpacing(1)
	node := stack.MakeNode(newCtx())
	if got := sc.GetOr(node.Properties, sc.PropPadding, 0); got != 2 {
		t.Errorf("PropPadding = %d, want 2", got)
	}
	if got := sc.GetOr(node.Properties, sc.PropSpacing, 0); got != 1 {
		t.Errorf("PropSpacing = %d, want 1", got)
	}
	if len(node.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(node.Children))
	}
}

func TestSpacerDistinguishesFlexFromFixed(t *testing.T) {
	flex := NewSpacer().MakeNode(newCtx())
	fixed := NewMinSpacer(5).MakeNode(newCtx())

	if sc.Has(flex.Properties, sc.PropMinLength) {
		t.Errorf("expected a flex spacer to carry no MinLength property")
	}
	if got := sc.GetOr(fixed.Properties, sc.PropMinLength, 0); got != 5 {
		t.Errorf("PropMinLength = %d, want 5", got)
	}
}

func TestProgressAndSpinnerDefaults(t *testing.T) {
	p := NewProgress(3, 10).MakeNode(newCtx())
	if got := sc.GetOr(p.Properties, sc.PropCurrent, -1); got != 3 {
		t.Errorf("PropCurrent = %d, want 3", got)
	}

	s := NewSpinner(2).MakeNode(newCtx())
	frames := sc.GetOr(s.Properties, sc.PropFrames, nil)
	if len(frames) != len(DefaultSpinnerFrames) {
		t.Errorf("expected default spinner frames, got %d frames", len(frames))
	}
}
