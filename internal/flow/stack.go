package flow

// Stack is the navigation history used for back navigation.
type Stack struct {
	items []Screen
}

func (s *Stack) Push(screen Screen) {
	s.items = append(s.items, screen)
}

// Pop removes the top screen. ok is false when the stack is empty.
func (s *Stack) Pop() (screen Screen, ok bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Peek returns the top screen without removing it.
func (s *Stack) Peek() (screen Screen, ok bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack) Clear() { s.items = s.items[:0] }

// Screens returns a copy of the history, bottom first.
func (s *Stack) Screens() []Screen {
	return append([]Screen(nil), s.items...)
}
