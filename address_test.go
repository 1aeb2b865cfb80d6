package stagecraft

import (
	"testing"

	"github.com/kelvinhart/stagecraft/capabilities"
)

func TestAddressSiblingDisambiguation(t *testing.T) {
	ctx := NewContext(80, 24, capabilities.Capabilities{}, SessionOptions{}, 0)
	a := ctx.MakeAddress("text")
	b := ctx.MakeAddress("text")
	c := ctx.MakeAddress("panel")

	t.Logf("a=%s b=%s c=%s", a, b, c)
	if a == b {
		t.Errorf("expected distinct sibling addresses, got %s twice", a)
	}
	if a.Parent() != Root || b.Parent() != Root {
		t.Errorf("expected root-level parents, got %s / %s", a.Parent(), b.Parent())
	}
}

func TestAddressNestedParent(t *testing.T) {
	ctx := NewContext(80, 24, capabilities.Capabilities{}, SessionOptions{}, 0)
	panel := ctx.MakeAddress("panel")
	ctx.Push(panel)
	child := ctx.MakeAddress("text")
	ctx.Pop()

	if child.Parent() != panel {
		t.Errorf("expected child's parent to be %s, got %s", panel, child.Parent())
	}
}
