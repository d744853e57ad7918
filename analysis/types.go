// ABOUTME: Core data types for heap snapshot graphs
// ABOUTME: Defines Node, ObjID, and Roots structures

package analysis

// ObjID is a unique identifier for a heap object within one snapshot
type ObjID uint64

// Node represents a single heap object in a snapshot
type Node struct {
	ID    ObjID   // Unique identifier, never zero
	Kind  string  // Object kind ("int" or "pair")
	Value int     // Payload of an int object
	Ptrs  []ObjID // IDs of the objects this object references
}

// Roots is the set of operand-stack references at snapshot time
type Roots struct {
	IDs []ObjID // Object IDs that are roots, bottom of stack first
}
