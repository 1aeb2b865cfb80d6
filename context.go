package stagecraft

import "github.com/kelvinhart/stagecraft/capabilities"

// SessionOptions carries caller-level configuration threaded through every
// elaboration. Unknown keys in Extra are reserved for forward-compatible
// collaborators (e.g. a tracing sink) the core doesn't itself interpret.
type SessionOptions struct {
	Theme    Theme
	Headless bool
	Extra    map[string]any
}

// ThemeOrDefault returns o.Theme, falling back to DefaultTheme when unset.
func (o SessionOptions) ThemeOrDefault() Theme {
	if o.Theme == nil {
		return DefaultTheme
	}
	return o.Theme
}

// Context is the per-elaboration state threaded by mutable reference
// through a tree of MakeNode calls. Elaboration is single-threaded and
// deterministic: the same view produces the same addresses every time, as
// long as the view's shape hasn't changed.
type Context struct {
	Width        int
	Height       int
	Capabilities capabilities.Capabilities
	Options      SessionOptions
	Frame        int

	parents  []Address
	siblings map[string]int // "parent|segment" -> next counter
}

// NewContext creates a root-level Context ready for the first MakeNode
// call. frame is the caller's animation frame counter (0 for a static
// render).
func NewContext(width, height int, caps capabilities.Capabilities, opts SessionOptions, frame int) *Context {
	return &Context{
		Width:        width,
		Height:       height,
		Capabilities: caps,
		Options:      opts,
		Frame:        frame,
		siblings:     make(map[string]int),
	}
}

func (c *Context) Theme() Theme { return c.Options.ThemeOrDefault() }

// CurrentParent returns the address of the node currently being
// elaborated, or Root at the top of the tree. A view calls this right
// after reserving its own address, to fill in Node.ParentAddress.
func (c *Context) CurrentParent() Address {
	if len(c.parents) == 0 {
		return Root
	}
	return c.parents[len(c.parents)-1]
}

// MakeAddress reserves and returns the next stable address for segment
// under the current parent, disambiguating repeated segments with a
// `[n]` suffix the way spec.md's addressing scheme requires. Every
// View.MakeNode implementation calls this exactly once, for its own kind
// segment, before doing anything else.
func (c *Context) MakeAddress(segment string) Address {
	parent := c.CurrentParent()
	key := string(parent) + "|" + segment
	counter := c.siblings[key]
	c.siblings[key] = counter + 1
	return parent.child(segment, counter)
}

// Push enters the subtree rooted at addr so that children elaborated next
// reserve addresses under it. Composite views call Push once, right after
// MakeAddress, and must call Pop exactly once before returning — even on
// an early return — to keep the stack balanced.
func (c *Context) Push(addr Address) {
	c.parents = append(c.parents, addr)
}

// Pop leaves the subtree most recently entered with Push.
func (c *Context) Pop() {
	c.parents = c.parents[:len(c.parents)-1]
}

// FlattenChild appends node to children, substituting node's own children
// in its place when node is a transparent group — the flattening rule
// every composite view must apply to each of its elaborated children.
func FlattenChild(children []Node, node Node) []Node {
	if node.Kind == KindGroup {
		return append(children, node.Children...)
	}
	return append(children, node)
}
