// ABOUTME: Tagged heap object representation used by the collector
// ABOUTME: Defines ObjectKind and the Object variant (integer or pair)

package vm

// ObjectKind is the variant tag of a heap object, fixed at allocation
type ObjectKind int

const (
	// KindInt is an integer object; its value is immutable after creation
	KindInt ObjectKind = iota
	// KindPair is a cons cell holding two object references
	KindPair
)

// String returns the snapshot name of the kind
func (k ObjectKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Object is a single heap allocation. Its lifetime is owned exclusively by
// the VM's heap registry; Head and Tail are non-owning references and may
// form cycles without affecting when the object is released.
type Object struct {
	kind   ObjectKind
	marked bool
	next   *Object // heap registry link, mutated only by the VM

	// Value is the payload of a KindInt object.
	Value int

	// Head and Tail are the payload of a KindPair object. Either may be
	// nil or point at any live object, including an ancestor of this one.
	Head *Object
	Tail *Object
}

// newObject constructs an unmarked, unregistered object of the given kind.
// Pair references start empty and are wired by the caller.
func newObject(kind ObjectKind) *Object {
	return &Object{kind: kind}
}

// Kind returns the variant tag fixed at allocation
func (o *Object) Kind() ObjectKind { return o.kind }

// Marked reports whether the object is currently flagged as reachable.
// Outside of a running collection this is always false for live objects.
func (o *Object) Marked() bool { return o.marked }
