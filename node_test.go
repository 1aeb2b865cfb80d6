package stagecraft

import "testing"

func buildSampleTree() Node {
	leaf1 := Node{Address: "root.a", Kind: KindText, Properties: EmptyProperties, ParentAddress: "root"}
	leaf2 := Node{Address: "root.b", Kind: KindText, Properties: EmptyProperties, ParentAddress: "root"}
	return Node{
		Address:    "root",
		Kind:       KindVStack,
		Properties: EmptyProperties,
		Children:   []Node{leaf1, leaf2},
	}
}

func TestNodeKeyPrefersLogicalID(t *testing.T) {
	n := Node{Address: "root.a", LogicalID: "my-id"}
	if n.Key() != "my-id" {
		t.Errorf("Key() = %q, want my-id", n.Key())
	}

	n2 := Node{Address: "root.a"}
	if n2.Key() != "root.a" {
		t.Errorf("Key() = %q, want root.a", n2.Key())
	}
}

func TestNodeWalkVisitsPreOrder(t *testing.T) {
	root := buildSampleTree()
	var visited []Address
	root.Walk(func(n Node) { visited = append(visited, n.Address) })

	want := []Address{"root", "root.a", "root.b"}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i, addr := range want {
		if visited[i] != addr {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], addr)
		}
	}
}

func TestAddressesMatchesWalkOrder(t *testing.T) {
	root := buildSampleTree()
	addrs := Addresses(root)
	if len(addrs) != 3 {
		t.Fatalf("Addresses returned %d entries, want 3", len(addrs))
	}
	if addrs[0] != root.Address {
		t.Errorf("first address = %s, want root", addrs[0])
	}
}

func TestNodeWithChildrenCopies(t *testing.T) {
	root := buildSampleTree()
	replaced := root.WithChildren(nil)
	if len(root.Children) != 2 {
		t.Errorf("expected original node's children untouched, got %d", len(root.Children))
	}
	if len(replaced.Children) != 0 {
		t.Errorf("expected replaced node to have no children, got %d", len(replaced.Children))
	}
}
