package search

import "fmt"

// NodeID identifies a node inside a Tree. IDs are dense and stable for the
// lifetime of the tree.
type NodeID int

// NoNode is the parent of a root and the "absent" result.
const NoNode NodeID = -1

// Node is one node of the search tree.
type Node[S comparable] struct {
	ID     NodeID
	Parent NodeID // NoNode for the root
	State  S
	Action string // action taken from Parent; empty for the root
	Depth  int
}

// IsRoot reports whether n has no parent.
func (n Node[S]) IsRoot() bool {
	return n.Parent == NoNode
}

// Tree is an append-only arena of search nodes. Nodes reference their parent
// by index; there is no parent→children edge.
type Tree[S comparable] struct {
	nodes []Node[S]
}

// NewTree returns an empty tree. sizeHint preallocates storage and may be 0.
func NewTree[S comparable](sizeHint int) *Tree[S] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Tree[S]{nodes: make([]Node[S], 0, sizeHint)}
}

// AddRoot appends a parentless node at depth 0 and returns its ID.
func (t *Tree[S]) AddRoot(state S) NodeID {
	id, _ := t.Add(NoNode, state, 0, "")

	return id
}

// Add appends a node. parent must be NoNode or an existing ID; depth must be
// non-negative. The depth is taken as given, Expand is what enforces
// depth(child) == depth(parent)+1.
func (t *Tree[S]) Add(parent NodeID, state S, depth int, action string) (NodeID, error) {
	if depth < 0 {
		return NoNode, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if parent != NoNode && !t.valid(parent) {
		return NoNode, fmt.Errorf("search: parent %d: %w", parent, ErrNodeNotFound)
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node[S]{
		ID:     id,
		Parent: parent,
		State:  state,
		Action: action,
		Depth:  depth,
	})

	return id, nil
}

// Node returns a copy of the node with the given ID.
func (t *Tree[S]) Node(id NodeID) (Node[S], bool) {
	if !t.valid(id) {
		return Node[S]{}, false
	}

	return t.nodes[id], true
}

// State returns the state of node id. It panics on an invalid ID.
func (t *Tree[S]) State(id NodeID) S {
	return t.nodes[id].State
}

// Len returns the number of nodes in the tree.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// Parent returns the parent of id, or NoNode for roots and invalid IDs.
func (t *Tree[S]) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}

	return t.nodes[id].Parent
}

// Depth returns the depth of id, or -1 for an invalid ID.
func (t *Tree[S]) Depth(id NodeID) int {
	if !t.valid(id) {
		return -1
	}

	return t.nodes[id].Depth
}

// Expand creates one child of id per successor returned by p, preserving the
// problem's order. Children are not recorded on the parent.
func (t *Tree[S]) Expand(p Problem[S], id NodeID) ([]NodeID, error) {
	if !t.valid(id) {
		return nil, fmt.Errorf("search: expand %d: %w", id, ErrNodeNotFound)
	}
	parent := t.nodes[id]
	succ := p.Expand(parent.State)
	children := make([]NodeID, 0, len(succ))
	for _, s := range succ {
		cid, err := t.Add(id, s.State, parent.Depth+1, s.Action)
		if err != nil {
			return children, err
		}
		children = append(children, cid)
	}

	return children, nil
}

// Contains reports whether state equals the state of id or of any of its
// ancestors. It is a cycle guard along a single path, not a global visited set.
func (t *Tree[S]) Contains(id NodeID, state S) bool {
	for cur := id; t.valid(cur); cur = t.nodes[cur].Parent {
		if t.nodes[cur].State == state {
			return true
		}
	}

	return false
}

// Path returns the path view ending at id.
func (t *Tree[S]) Path(id NodeID) (Path[S], error) {
	if !t.valid(id) {
		return Path[S]{}, fmt.Errorf("search: path %d: %w", id, ErrNodeNotFound)
	}

	return Path[S]{tree: t, terminal: id}, nil
}

func (t *Tree[S]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
