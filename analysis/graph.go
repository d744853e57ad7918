// ABOUTME: Graph interface and in-memory implementation for heap snapshots
// ABOUTME: Provides methods for storing and querying snapshot object graphs

package analysis

import "sync"

// Graph is a queryable snapshot of a heap
type Graph interface {
	// AddNode adds a node to the graph
	AddNode(n *Node)

	// GetNode retrieves a node by ID, or nil if absent
	GetNode(id ObjID) *Node

	// NumNodes returns the total number of nodes
	NumNodes() int

	// ForEachNode iterates over all nodes
	ForEachNode(fn func(*Node))

	// SetRoots sets the root references
	SetRoots(roots Roots)

	// GetRoots returns the root references
	GetRoots() Roots
}

// MemGraph is an in-memory implementation of Graph
type MemGraph struct {
	mu    sync.RWMutex
	nodes map[ObjID]*Node
	roots Roots
}

// NewMemGraph creates a new in-memory graph
func NewMemGraph() *MemGraph {
	return &MemGraph{
		nodes: make(map[ObjID]*Node),
	}
}

// AddNode adds a node to the graph
func (g *MemGraph) AddNode(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[n.ID] = n
}

// GetNode retrieves a node by ID, or nil if absent
func (g *MemGraph) GetNode(id ObjID) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// NumNodes returns the total number of nodes
func (g *MemGraph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// ForEachNode iterates over all nodes
func (g *MemGraph) ForEachNode(fn func(*Node)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		fn(n)
	}
}

// SetRoots sets the root references
func (g *MemGraph) SetRoots(roots Roots) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roots = roots
}

// GetRoots returns the root references
func (g *MemGraph) GetRoots() Roots {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roots
}
