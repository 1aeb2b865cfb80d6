package stagecraft

// View is the polymorphism contract every user-described screen element
// implements. MakeNode must call ctx.MakeAddress for its own kind segment
// before anything else, and — if it has children — wrap the child calls in
// a matched ctx.Push/ctx.Pop pair. Elaboration never suspends and never
// fails: malformed configuration degrades to a property default, not an
// error.
type View interface {
	MakeNode(ctx *Context) Node
}

// ViewFunc adapts a plain function to the View interface, for ad-hoc or
// generated views that don't warrant a named type.
type ViewFunc func(ctx *Context) Node

func (f ViewFunc) MakeNode(ctx *Context) Node { return f(ctx) }

// Group is the transparent composition primitive: its children are spliced
// into whichever composite view elaborates it, and a Group node never
// survives into a finalized tree handed to the paint engine or reconciler.
type Group struct {
	Children []View
}

func (g Group) MakeNode(ctx *Context) Node {
	addr := ctx.MakeAddress("group")
	parent := ctx.CurrentParent()
	ctx.Push(addr)
	var children []Node
	for _, v := range g.Children {
		children = FlattenChild(children, v.MakeNode(ctx))
	}
	ctx.Pop()
	return Node{
		Address:       addr,
		Kind:          KindGroup,
		Properties:    EmptyProperties,
		Children:      children,
		ParentAddress: parent,
	}
}

// Elaborate runs v.MakeNode against ctx (normally a fresh root Context),
// guaranteeing the returned tree has no Group node at its root — the entry
// point every paint or diff call starts from.
func Elaborate(v View, ctx *Context) Node {
	root := v.MakeNode(ctx)
	if root.Kind == KindGroup {
		// A bare Group at the tree root has no parent to splice into;
		// promote its child to root when it has exactly one, and otherwise
		// wrap its flattened children (possibly none) in a VStack at the
		// group's address. This keeps Elaborate's postcondition (no group
		// at the root) total.
		if len(root.Children) == 1 {
			return root.Children[0]
		}
		return Node{Address: root.Address, Kind: KindVStack, Properties: EmptyProperties, Children: root.Children}
	}
	return root
}
