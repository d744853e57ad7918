// ABOUTME: Mark phase of the collector
// ABOUTME: Work-list reachability traversal seeded from the operand stack

package vm

// markAll flags every object reachable from the operand stack, scanning
// roots bottom to top. After it returns, exactly the transitively reachable
// objects carry the mark.
func (m *VM) markAll() {
	for i := 0; i < m.stack.Len(); i++ {
		m.mark(m.stack.At(i))
	}
}

// mark flags root and everything reachable from it. The traversal is depth
// first with an explicit work list so that long reference chains cost heap
// slots instead of call stack; the mark bit terminates cycles, so each
// object is visited at most once.
func (m *VM) mark(root *Object) {
	if root == nil || root.marked {
		return
	}
	root.marked = true
	if root.kind != KindPair {
		return
	}

	work := []*Object{root}
	for len(work) > 0 {
		pair := work[len(work)-1]
		work = work[:len(work)-1]

		// Tail goes on the work list first so Head is traced first.
		for _, ref := range [2]*Object{pair.Tail, pair.Head} {
			if ref == nil || ref.marked {
				continue
			}
			ref.marked = true
			if ref.kind == KindPair {
				work = append(work, ref)
			}
		}
	}
}
