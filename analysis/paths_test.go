// ABOUTME: Tests for the paths-to-roots BFS
// ABOUTME: Validates retention chains on nested and cyclic graphs

package analysis

import "testing"

// buildTestGraph creates:
//
//	1 (root, pair) -> 2, 3
//	3 (pair)       -> 4
//	5 (int)        unreachable
func buildTestGraph() Graph {
	g := NewMemGraph()
	g.AddNode(&Node{ID: 1, Kind: "pair", Ptrs: []ObjID{2, 3}})
	g.AddNode(&Node{ID: 2, Kind: "int", Ptrs: []ObjID{}})
	g.AddNode(&Node{ID: 3, Kind: "pair", Ptrs: []ObjID{4}})
	g.AddNode(&Node{ID: 4, Kind: "int", Ptrs: []ObjID{}})
	g.AddNode(&Node{ID: 5, Kind: "int", Ptrs: []ObjID{}})
	g.SetRoots(Roots{IDs: []ObjID{1}})
	return g
}

func TestPathsToRoots(t *testing.T) {
	g := buildTestGraph()

	tests := []struct {
		name    string
		from    ObjID
		wantLen int // length of the single expected path, 0 for none
	}{
		{name: "direct child", from: 2, wantLen: 2},
		{name: "nested leaf", from: 4, wantLen: 3},
		{name: "unreachable node", from: 5, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := PathsToRoots(g, tt.from, 10)

			if tt.wantLen == 0 {
				if len(paths) != 0 {
					t.Fatalf("Expected no paths, got %d", len(paths))
				}
				return
			}

			if len(paths) != 1 {
				t.Fatalf("Expected 1 path, got %d", len(paths))
			}
			path := paths[0].IDs
			if len(path) != tt.wantLen {
				t.Errorf("Expected path length %d, got %v", tt.wantLen, path)
			}
			if path[0] != tt.from {
				t.Errorf("Path should start at %d, got %v", tt.from, path)
			}
			if path[len(path)-1] != 1 {
				t.Errorf("Path should end at root 1, got %v", path)
			}
		})
	}
}

func TestPathsFromRoot(t *testing.T) {
	g := buildTestGraph()

	paths := PathsToRoots(g, 1, 10)
	if len(paths) != 1 || len(paths[0].IDs) != 1 || paths[0].IDs[0] != 1 {
		t.Errorf("A root should retain itself, got %v", paths)
	}
}

func TestPathsThroughCycle(t *testing.T) {
	// 1 (root) -> 2, 2 -> 3, 3 -> 2 (cycle between 2 and 3)
	g := NewMemGraph()
	g.AddNode(&Node{ID: 1, Kind: "pair", Ptrs: []ObjID{2}})
	g.AddNode(&Node{ID: 2, Kind: "pair", Ptrs: []ObjID{3}})
	g.AddNode(&Node{ID: 3, Kind: "pair", Ptrs: []ObjID{2}})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	paths := PathsToRoots(g, 3, 10)
	if len(paths) != 1 {
		t.Fatalf("Expected 1 path through the cycle, got %d", len(paths))
	}
	want := []ObjID{3, 2, 1}
	got := paths[0].IDs
	if len(got) != len(want) {
		t.Fatalf("Expected path %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected path %v, got %v", want, got)
		}
	}
}

func TestPathsUnrootedCycle(t *testing.T) {
	// 2 <-> 3 with no root; no path should be found and the search
	// must terminate.
	g := NewMemGraph()
	g.AddNode(&Node{ID: 2, Kind: "pair", Ptrs: []ObjID{3}})
	g.AddNode(&Node{ID: 3, Kind: "pair", Ptrs: []ObjID{2}})
	g.SetRoots(Roots{IDs: []ObjID{}})

	if paths := PathsToRoots(g, 2, 10); len(paths) != 0 {
		t.Errorf("Expected no paths for an unrooted cycle, got %v", paths)
	}
}

func TestPathsMaxPaths(t *testing.T) {
	if paths := PathsToRoots(buildTestGraph(), 4, 0); paths != nil {
		t.Errorf("Expected nil for maxPaths 0, got %v", paths)
	}
}
