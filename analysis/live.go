// ABOUTME: Builds snapshot graphs from a live VM heap
// ABOUTME: Also computes the reachable set a collection would keep

package analysis

import "github.com/abdullahmahfouz/Mark-Sweep/vm"

// FromVM captures the current heap of a VM as a Graph. IDs are assigned in
// heap registry order starting at 1, so the most recent allocation gets
// ID 1. Roots come from the operand stack, bottom first.
func FromVM(machine *vm.VM) Graph {
	ids := make(map[*vm.Object]ObjID)
	next := ObjID(1)
	machine.ForEachObject(func(o *vm.Object) {
		ids[o] = next
		next++
	})

	g := NewMemGraph()
	machine.ForEachObject(func(o *vm.Object) {
		n := &Node{
			ID:   ids[o],
			Kind: o.Kind().String(),
			Ptrs: []ObjID{},
		}
		switch o.Kind() {
		case vm.KindInt:
			n.Value = o.Value
		case vm.KindPair:
			if o.Head != nil {
				n.Ptrs = append(n.Ptrs, ids[o.Head])
			}
			if o.Tail != nil {
				n.Ptrs = append(n.Ptrs, ids[o.Tail])
			}
		}
		g.AddNode(n)
	})

	roots := Roots{IDs: []ObjID{}}
	for _, ref := range machine.Roots() {
		if ref != nil {
			roots.IDs = append(roots.IDs, ids[ref])
		}
	}
	g.SetRoots(roots)

	return g
}

// Reachable computes the set of nodes transitively reachable from the
// roots: the set a mark phase would flag and a sweep would keep.
func Reachable(g Graph) map[ObjID]bool {
	reached := make(map[ObjID]bool)

	work := append([]ObjID{}, g.GetRoots().IDs...)
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		if reached[id] {
			continue
		}
		reached[id] = true

		if n := g.GetNode(id); n != nil {
			work = append(work, n.Ptrs...)
		}
	}

	return reached
}
