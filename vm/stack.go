// ABOUTME: Bounded operand stack serving as the collector's root set
// ABOUTME: Push and pop with explicit overflow and underflow errors

package vm

import "errors"

// DefaultStackCapacity is the operand stack size used when Options does not
// specify one
const DefaultStackCapacity = 256

var (
	// ErrStackOverflow is returned by Push when the stack is at capacity
	ErrStackOverflow = errors.New("operand stack overflow")

	// ErrStackUnderflow is returned by Pop when the stack is empty
	ErrStackUnderflow = errors.New("operand stack underflow")
)

// Stack is a bounded operand stack of object references. Every reference on
// the stack is a GC root: the mark phase scans it bottom to top. References
// are non-owning; popping an object does not release it.
type Stack struct {
	refs     []*Object
	capacity int
}

// NewStack creates a stack with the given capacity. A capacity of zero or
// less selects DefaultStackCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultStackCapacity
	}
	return &Stack{
		refs:     make([]*Object, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a reference to the top of the stack
func (s *Stack) Push(obj *Object) error {
	if len(s.refs) >= s.capacity {
		return ErrStackOverflow
	}
	s.refs = append(s.refs, obj)
	return nil
}

// Pop removes and returns the reference on top of the stack
func (s *Stack) Pop() (*Object, error) {
	if len(s.refs) == 0 {
		return nil, ErrStackUnderflow
	}
	obj := s.refs[len(s.refs)-1]
	s.refs[len(s.refs)-1] = nil
	s.refs = s.refs[:len(s.refs)-1]
	return obj, nil
}

// Len returns the number of references currently on the stack
func (s *Stack) Len() int { return len(s.refs) }

// Cap returns the fixed capacity of the stack
func (s *Stack) Cap() int { return s.capacity }

// At returns the i-th reference counting from the bottom of the stack.
// Used by the mark phase to scan roots in index order.
func (s *Stack) At(i int) *Object { return s.refs[i] }

// Clear drops every reference, leaving the stack empty
func (s *Stack) Clear() {
	for i := range s.refs {
		s.refs[i] = nil
	}
	s.refs = s.refs[:0]
}
