package stagecraft

// Kind tags a Node with one member of the closed set of node types the
// paint engine and reconciler know how to handle. Group is transparent: it
// is flattened away during elaboration and never reaches a finalized tree.
type Kind string

const (
	KindText     Kind = "text"
	KindPanel    Kind = "panel"
	KindHStack   Kind = "hstack"
	KindVStack   Kind = "vstack"
	KindDivider  Kind = "divider"
	KindSpacer   Kind = "spacer"
	KindBadge    Kind = "badge"
	KindNote     Kind = "note"
	KindCode     Kind = "code"
	KindTextField Kind = "textfield"
	KindButton   Kind = "button"
	KindSelector Kind = "selector"
	KindProgress Kind = "progress"
	KindSpinner  Kind = "spinner"
	KindGroup    Kind = "group"
)

// Node is an immutable value describing one element of an elaborated tree.
// Nodes are never mutated after construction; every update produces a new
// Node with a new Children slice.
type Node struct {
	Address       Address
	LogicalID     string // optional, empty means "no identity override"
	Kind          Kind
	Properties    Properties
	Children      []Node
	ParentAddress Address // Root for top-level nodes; diagnostics only
}

// Key returns the node's reconciliation key: its LogicalID when present,
// otherwise its Address.
func (n Node) Key() string {
	if n.LogicalID != "" {
		return n.LogicalID
	}
	return string(n.Address)
}

// WithChildren returns a copy of n with its children replaced.
func (n Node) WithChildren(children []Node) Node {
	n.Children = children
	return n
}

// Walk calls visit for n and, depth-first, every descendant.
func (n Node) Walk(visit func(Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Addresses collects the address of n and every descendant, in pre-order.
func Addresses(n Node) []Address {
	var out []Address
	n.Walk(func(child Node) { out = append(out, child.Address) })
	return out
}
