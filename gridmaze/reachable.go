package gridmaze

// Reachable returns every open cell that can be reached from the start with
// the maze's move set, in breadth-first order (start first).
//
// Time:   O(W·H·d), where d is the number of moves.
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Reachable() []Position {
	seen := make([]bool, m.Width*m.Height)
	queue := []Position{m.Start}
	seen[m.index(m.Start)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, mv := range m.moves {
			v := Position{u.X + mv.DX, u.Y + mv.DY}
			if !m.Open(v) {
				continue
			}
			vi := m.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Solvable reports whether the goal is reachable from the start.
func (m *Maze) Solvable() bool {
	for _, p := range m.Reachable() {
		if p == m.Goal {
			return true
		}
	}

	return false
}
