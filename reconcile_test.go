package stagecraft

import "testing"

func TestReconcileFromNilInsertsEveryNode(t *testing.T) {
	tree := buildSampleTree()
	result := Reconcile(nil, tree)

	if !result.HasChanges {
		t.Fatalf("expected HasChanges on a from-scratch insertion")
	}
	if len(result.Insertions) != 3 {
		t.Fatalf("got %d insertions, want one per node (3)", len(result.Insertions))
	}
	if len(result.Updates) != 0 || len(result.Moves) != 0 || len(result.Deletions) != 0 {
		t.Errorf("expected no updates/moves/deletions on a from-nil reconcile")
	}
}

func TestReconcileDetectsPropertyUpdate(t *testing.T) {
	old := Node{Address: "root.a", Kind: KindText, Properties: With(EmptyProperties, PropText, "old")}
	updated := Node{Address: "root.a", Kind: KindText, Properties: With(EmptyProperties, PropText, "new")}

	result := Reconcile(&old, updated)
	if !result.HasChanges {
		t.Fatalf("expected HasChanges on a property update")
	}
	if len(result.Updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(result.Updates))
	}
	if len(result.Insertions) != 0 || len(result.Deletions) != 0 {
		t.Errorf("property-only change should not insert or delete")
	}
}

func TestReconcileUnchangedHasNoChanges(t *testing.T) {
	n := Node{Address: "root.a", Kind: KindText, Properties: With(EmptyProperties, PropText, "same")}
	result := Reconcile(&n, n)
	if result.HasChanges {
		t.Errorf("expected no changes when old and new are identical")
	}
}

func TestReconcileKindChangeIsDeleteThenInsert(t *testing.T) {
	old := Node{Address: "root.a", Kind: KindText, Properties: EmptyProperties}
	new_ := Node{Address: "root.a", Kind: KindBadge, Properties: EmptyProperties}

	result := Reconcile(&old, new_)
	if len(result.Deletions) != 1 || len(result.Insertions) != 1 {
		t.Fatalf("expected one delete and one insert on kind change, got del=%d ins=%d",
			len(result.Deletions), len(result.Insertions))
	}
}

func TestReconcileKeyedChildMoveNoLongerMatchesAddress(t *testing.T) {
	a := Node{Address: "root.a", LogicalID: "item-a", Kind: KindText, Properties: EmptyProperties}
	b := Node{Address: "root.b", LogicalID: "item-b", Kind: KindText, Properties: EmptyProperties}
	old := Node{Address: "root", Kind: KindVStack, Properties: EmptyProperties, Children: []Node{a, b}}

	aMoved := Node{Address: "root.b", LogicalID: "item-a", Kind: KindText, Properties: EmptyProperties}
	bMoved := Node{Address: "root.a", LogicalID: "item-b", Kind: KindText, Properties: EmptyProperties}
	new_ := Node{Address: "root", Kind: KindVStack, Properties: EmptyProperties, Children: []Node{bMoved, aMoved}}

	result := Reconcile(&old, new_)
	if len(result.Moves) != 2 {
		t.Fatalf("expected 2 moves from a swap, got %d", len(result.Moves))
	}
}

func TestRootInsertionsFiltersDescendants(t *testing.T) {
	tree := buildSampleTree()
	result := Reconcile(nil, tree)
	roots := RootInsertions(result)
	if len(roots) != 1 || roots[0].Address != tree.Address {
		t.Fatalf("expected a single root insertion at %s, got %v", tree.Address, roots)
	}
}
