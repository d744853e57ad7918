// ABOUTME: VM context owning the heap registry and operand stack
// ABOUTME: Allocation entry point with the collection trigger

package vm

// DefaultInitialThreshold is the live-object count at which the first
// collection fires when Options does not specify one
const DefaultInitialThreshold = 8

// Options configure a VM at construction. Both fields are fixed for the
// lifetime of the VM; zero values select the defaults.
type Options struct {
	// InitialThreshold is the live-object count that triggers the first
	// collection. The threshold grows after each collection; see Collect.
	InitialThreshold int

	// StackCapacity is the operand stack size.
	StackCapacity int
}

// VM is a collector context. It owns the lifetime of every object it
// allocates via a singly linked registry of all allocations; the operand
// stack and pair references only identify objects, they never release them.
//
// A VM is not safe for concurrent use. Callers embedding it in a
// multi-threaded host must serialize all access externally.
type VM struct {
	stack *Stack

	firstObject *Object // head of the heap registry, newest allocation first
	numObjects  int
	maxObjects  int

	initialThreshold int
}

// New creates an empty VM with the given options
func New(opts Options) *VM {
	threshold := opts.InitialThreshold
	if threshold <= 0 {
		threshold = DefaultInitialThreshold
	}
	return &VM{
		stack:            NewStack(opts.StackCapacity),
		maxObjects:       threshold,
		initialThreshold: threshold,
	}
}

// Reset returns the VM to its freshly constructed state: empty stack, empty
// heap registry, threshold back at its initial value. Previously allocated
// objects are abandoned to the host allocator.
func (m *VM) Reset() {
	m.stack.Clear()
	m.firstObject = nil
	m.numObjects = 0
	m.maxObjects = m.initialThreshold
}

// allocate registers a new object of the given kind at the head of the heap
// list. If the live count has reached the threshold a full collection runs
// first, so any object the caller wants to survive must be reachable from
// the operand stack at this point.
func (m *VM) allocate(kind ObjectKind) *Object {
	if m.numObjects == m.maxObjects {
		m.Collect()
	}

	obj := newObject(kind)
	obj.next = m.firstObject
	m.firstObject = obj
	m.numObjects++
	return obj
}

// PushInt allocates an integer object and pushes it onto the operand stack
func (m *VM) PushInt(v int) (*Object, error) {
	obj := m.allocate(KindInt)
	obj.Value = v
	if err := m.stack.Push(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// PushPair pops two operands, builds a pair from them and pushes it. The
// first pop becomes Tail, the second Head. The pair is allocated before the
// operands are popped: a collection triggered by the allocation must still
// see both operands as roots.
func (m *VM) PushPair() (*Object, error) {
	obj := m.allocate(KindPair)

	tail, err := m.stack.Pop()
	if err != nil {
		return nil, err
	}
	head, err := m.stack.Pop()
	if err != nil {
		return nil, err
	}
	obj.Tail = tail
	obj.Head = head

	if err := m.stack.Push(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Push places an existing object reference on the operand stack
func (m *VM) Push(obj *Object) error { return m.stack.Push(obj) }

// Pop removes and returns the top of the operand stack
func (m *VM) Pop() (*Object, error) { return m.stack.Pop() }

// NumObjects returns the current live-object count
func (m *VM) NumObjects() int { return m.numObjects }

// Threshold returns the live count at which the next allocation will
// trigger a collection
func (m *VM) Threshold() int { return m.maxObjects }

// StackLen returns the number of references on the operand stack
func (m *VM) StackLen() int { return m.stack.Len() }

// FirstObject returns the head of the heap registry, i.e. the most recent
// surviving allocation, or nil when the heap is empty
func (m *VM) FirstObject() *Object { return m.firstObject }

// ForEachObject visits every registered object, newest allocation first
func (m *VM) ForEachObject(fn func(*Object)) {
	for obj := m.firstObject; obj != nil; obj = obj.next {
		fn(obj)
	}
}

// Roots returns a copy of the operand stack contents, bottom first
func (m *VM) Roots() []*Object {
	roots := make([]*Object, m.stack.Len())
	for i := range roots {
		roots[i] = m.stack.At(i)
	}
	return roots
}
