// ABOUTME: Tests for the tagged heap object representation
// ABOUTME: Validates kind naming and initial object state

package vm

import "testing"

func TestObjectKindString(t *testing.T) {
	tests := []struct {
		kind ObjectKind
		want string
	}{
		{KindInt, "int"},
		{KindPair, "pair"},
		{ObjectKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ObjectKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewObjectState(t *testing.T) {
	obj := newObject(KindPair)

	if obj.Kind() != KindPair {
		t.Errorf("Expected KindPair, got %v", obj.Kind())
	}
	if obj.Marked() {
		t.Error("New object should start unmarked")
	}
	if obj.next != nil {
		t.Error("New object should have no heap link")
	}
	if obj.Head != nil || obj.Tail != nil {
		t.Error("New pair should have empty references")
	}
}
