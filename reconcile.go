package stagecraft

// Move describes a child that kept its identity (same logical ID, or same
// address family) but landed at a different address — typically because a
// sibling was inserted, removed, or reordered ahead of it.
type Move struct {
	From          Address
	To            Address
	Kind          Kind
	ParentAddress Address
	Node          Node // the new-side node, for a full repaint at its new position
}

// ReconciliationResult is the output of diffing an old tree against a new
// one: the minimal set of insert/update/move/delete operations needed to
// bring the old tree's rendered state in line with the new one. Every
// entry is keyed by address (Move additionally carries both endpoints).
type ReconciliationResult struct {
	Insertions []Node
	Updates    []Node
	Moves      []Move
	Deletions  []Node
	HasChanges bool
}

// Reconcile diffs old (nil for "nothing rendered yet") against new and
// never fails — a malformed or partial old tree degrades to treating
// every node of new as an insertion. Reconcile keys each node by Node.Key:
// its LogicalID when it has one, its Address otherwise. A node that gains
// or loses a LogicalID between old and new is therefore deleted and
// reinserted, not matched by address.
func Reconcile(old *Node, new Node) ReconciliationResult {
	var result ReconciliationResult
	var oldList []Node
	if old != nil {
		oldList = []Node{*old}
	}
	diffChildren(oldList, []Node{new}, &result)
	result.HasChanges = len(result.Insertions) > 0 || len(result.Updates) > 0 ||
		len(result.Moves) > 0 || len(result.Deletions) > 0
	return result
}

func diffChildren(oldList, newList []Node, result *ReconciliationResult) {
	oldByKey := make(map[string]Node, len(oldList))
	for _, o := range oldList {
		oldByKey[o.Key()] = o
	}
	newByKey := make(map[string]bool, len(newList))
	for _, n := range newList {
		newByKey[n.Key()] = true
	}

	for _, o := range oldList {
		if !newByKey[o.Key()] {
			insertDeletions(o, result)
		}
	}

	for _, n := range newList {
		o, existed := oldByKey[n.Key()]
		if !existed {
			insertInsertions(n, result)
			continue
		}
		if o.Kind != n.Kind {
			insertDeletions(o, result)
			insertInsertions(n, result)
			continue
		}
		if o.Address != n.Address {
			result.Moves = append(result.Moves, Move{
				From:          o.Address,
				To:            n.Address,
				Kind:          n.Kind,
				ParentAddress: n.ParentAddress,
				Node:          n,
			})
		}
		if !o.Properties.Equal(n.Properties) {
			result.Updates = append(result.Updates, n)
		}
		diffChildren(o.Children, n.Children, result)
	}
}

// insertInsertions records n and, pre-order, every descendant as its own
// insertion — satisfying testable property 4 (reconcile(nil, t) yields
// exactly one insertion per node of t) without special-casing the
// whole-tree-is-new call.
func insertInsertions(n Node, result *ReconciliationResult) {
	n.Walk(func(child Node) {
		result.Insertions = append(result.Insertions, child)
	})
}

func insertDeletions(n Node, result *ReconciliationResult) {
	n.Walk(func(child Node) {
		result.Deletions = append(result.Deletions, child)
	})
}

// RootInsertions returns the subset of result.Insertions whose parent is
// not itself among the insertions — i.e. the top of each freshly inserted
// subtree. A full paint of a root insertion already covers its
// descendants, so this is what command synthesis should iterate instead
// of every flattened entry.
func RootInsertions(result ReconciliationResult) []Node {
	inserted := make(map[Address]bool, len(result.Insertions))
	for _, n := range result.Insertions {
		inserted[n.Address] = true
	}
	var roots []Node
	for _, n := range result.Insertions {
		if !inserted[n.ParentAddress] {
			roots = append(roots, n)
		}
	}
	return roots
}

// RootDeletions is RootInsertions' counterpart: the top of each removed
// subtree, which is all a backend needs to close the region with a single
// End command.
func RootDeletions(result ReconciliationResult) []Node {
	deleted := make(map[Address]bool, len(result.Deletions))
	for _, n := range result.Deletions {
		deleted[n.Address] = true
	}
	var roots []Node
	for _, n := range result.Deletions {
		if !deleted[n.ParentAddress] {
			roots = append(roots, n)
		}
	}
	return roots
}
