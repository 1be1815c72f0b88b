package search

// Frontier holds discovered nodes awaiting expansion. The removal end decides
// the strategy: Stack gives depth-first order, Queue breadth-first.
// Duplicates are allowed; a frontier never looks at states.
type Frontier interface {
	Add(id NodeID)
	Remove() (NodeID, error)
	IsEmpty() bool
	Size() int
	// Items returns a copy of the contents in insertion order.
	Items() []NodeID
}

// Stack is a last-in-first-out frontier.
type Stack struct {
	items []NodeID
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Add pushes id onto the top of the stack.
func (s *Stack) Add(id NodeID) {
	s.items = append(s.items, id)
}

// RemoveLast pops the most recently added node.
func (s *Stack) RemoveLast() (NodeID, error) {
	n := len(s.items)
	if n == 0 {
		return NoNode, ErrEmptyFrontier
	}
	id := s.items[n-1]
	s.items = s.items[:n-1]

	return id, nil
}

// Remove is RemoveLast.
func (s *Stack) Remove() (NodeID, error) {
	return s.RemoveLast()
}

// IsEmpty reports whether the stack has no nodes.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of nodes on the stack.
func (s *Stack) Size() int {
	return len(s.items)
}

// Items returns a copy of the stack, bottom first.
func (s *Stack) Items() []NodeID {
	return append([]NodeID(nil), s.items...)
}

// Queue is a first-in-first-out frontier.
type Queue struct {
	items []NodeID
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends id to the back of the queue.
func (q *Queue) Add(id NodeID) {
	q.items = append(q.items, id)
}

// RemoveFirst dequeues the oldest node.
func (q *Queue) RemoveFirst() (NodeID, error) {
	if q.IsEmpty() {
		return NoNode, ErrEmptyFrontier
	}
	id := q.items[q.head]
	q.head++
	// compact once the dead prefix dominates
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return id, nil
}

// Remove is RemoveFirst.
func (q *Queue) Remove() (NodeID, error) {
	return q.RemoveFirst()
}

// IsEmpty reports whether the queue has no nodes.
func (q *Queue) IsEmpty() bool {
	return q.head >= len(q.items)
}

// Size returns the number of queued nodes.
func (q *Queue) Size() int {
	return len(q.items) - q.head
}

// Items returns a copy of the queue, front first.
func (q *Queue) Items() []NodeID {
	return append([]NodeID(nil), q.items[q.head:]...)
}
