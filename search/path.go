package search

import "slices"

// Path is a read-only view over the ancestor chain of a terminal node.
// It is computed on demand; nothing is cached.
type Path[S comparable] struct {
	tree     *Tree[S]
	terminal NodeID
}

// Terminal returns the ID of the last node of the path.
func (p Path[S]) Terminal() NodeID {
	return p.terminal
}

// Len returns the number of actions on the path, i.e. the terminal depth.
func (p Path[S]) Len() int {
	if p.tree == nil {
		return 0
	}

	return p.tree.Depth(p.terminal)
}

// Actions returns the actions from the root to the terminal node.
// The root contributes no action, so a path to depth d has d actions.
func (p Path[S]) Actions() []string {
	if p.tree == nil {
		return nil
	}
	actions := make([]string, 0, p.Len())
	for cur := p.terminal; cur != NoNode; cur = p.tree.nodes[cur].Parent {
		n := p.tree.nodes[cur]
		if n.IsRoot() {
			break
		}
		actions = append(actions, n.Action)
	}
	// collected goal→root
	slices.Reverse(actions)

	return actions
}

// VisitedStates returns the states from the root to the terminal node,
// both included.
func (p Path[S]) VisitedStates() []S {
	if p.tree == nil {
		return nil
	}
	states := make([]S, 0, p.Len()+1)
	for cur := p.terminal; cur != NoNode; cur = p.tree.nodes[cur].Parent {
		states = append(states, p.tree.nodes[cur].State)
	}
	slices.Reverse(states)

	return states
}
