package ui

import "sync"

// StackListener is told about changes to the component stack.
type StackListener interface {
	// StackPushed is called with the new top.
	StackPushed(Component)

	// StackPopped is called with the removed component and the new top, which may be nil.
	StackPopped(old, top Component)

	// StackTop is called once on registration with the current top.
	StackTop(Component)
}

// Stack holds the views the user navigated through. Only the top one runs.
type Stack struct {
	components []Component
	listeners  []StackListener
	mx         sync.RWMutex
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// AddListener registers l and tells it about the current top, if any.
func (s *Stack) AddListener(l StackListener) {
	s.mx.Lock()
	s.listeners = append(s.listeners, l)
	top := s.top()
	s.mx.Unlock()

	if top != nil {
		l.StackTop(top)
	}
}

// Push stops the current top and puts c above it.
func (s *Stack) Push(c Component) {
	s.mx.Lock()
	prev := s.top()
	s.components = append(s.components, c)
	ll := s.snapshot()
	s.mx.Unlock()

	if prev != nil {
		prev.Stop()
	}
	for _, l := range ll {
		l.StackPushed(c)
	}
}

// Pop stops and removes the top component.
func (s *Stack) Pop() (Component, bool) {
	s.mx.Lock()
	old := s.top()
	if old == nil {
		s.mx.Unlock()
		return nil, false
	}
	s.components = s.components[:len(s.components)-1]
	top, ll := s.top(), s.snapshot()
	s.mx.Unlock()

	old.Stop()
	for _, l := range ll {
		l.StackPopped(old, top)
	}

	return old, true
}

// Flush pops every component, top first.
func (s *Stack) Flush() {
	for {
		if _, ok := s.Pop(); !ok {
			return
		}
	}
}

// Empty reports whether nothing is stacked.
func (s *Stack) Empty() bool {
	return s.Len() == 0
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.components)
}

// Top returns the running component, nil when empty.
func (s *Stack) Top() Component {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.top()
}

func (s *Stack) top() Component {
	if len(s.components) == 0 {
		return nil
	}
	return s.components[len(s.components)-1]
}

func (s *Stack) snapshot() []StackListener {
	ll := make([]StackListener, len(s.listeners))
	copy(ll, s.listeners)
	return ll
}
