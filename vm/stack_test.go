// ABOUTME: Tests for the bounded operand stack
// ABOUTME: Validates push/pop ordering and the overflow and underflow errors

package vm

import (
	"errors"
	"testing"
)

func TestStackDefaultCapacity(t *testing.T) {
	s := NewStack(0)
	if s.Cap() != DefaultStackCapacity {
		t.Errorf("Expected capacity %d, got %d", DefaultStackCapacity, s.Cap())
	}

	s = NewStack(-1)
	if s.Cap() != DefaultStackCapacity {
		t.Errorf("Expected capacity %d for negative input, got %d", DefaultStackCapacity, s.Cap())
	}
}

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack(4)
	a := newObject(KindInt)
	b := newObject(KindInt)

	if err := s.Push(a); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := s.Push(b); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Len())
	}

	got, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if got != b {
		t.Error("Expected last pushed object first")
	}

	got, err = s.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if got != a {
		t.Error("Expected first pushed object last")
	}
}

func TestStackOverflow(t *testing.T) {
	s := NewStack(2)
	for i := 0; i < 2; i++ {
		if err := s.Push(newObject(KindInt)); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}

	err := s.Push(newObject(KindInt))
	if !errors.Is(err, ErrStackOverflow) {
		t.Errorf("Expected ErrStackOverflow, got %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Overflowing push changed length to %d", s.Len())
	}
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack(2)
	if _, err := s.Pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("Expected ErrStackUnderflow, got %v", err)
	}
}

func TestStackAt(t *testing.T) {
	s := NewStack(4)
	objs := []*Object{newObject(KindInt), newObject(KindPair), newObject(KindInt)}
	for _, o := range objs {
		if err := s.Push(o); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}

	// Index order is bottom of stack first.
	for i, want := range objs {
		if s.At(i) != want {
			t.Errorf("At(%d) returned the wrong object", i)
		}
	}
}

func TestStackClear(t *testing.T) {
	s := NewStack(4)
	for i := 0; i < 3; i++ {
		if err := s.Push(newObject(KindInt)); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty stack after Clear, got length %d", s.Len())
	}
	if err := s.Push(newObject(KindInt)); err != nil {
		t.Errorf("Push after Clear failed: %v", err)
	}
}
