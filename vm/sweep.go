// ABOUTME: Sweep phase of the collector
// ABOUTME: Unlinks unmarked objects from the registry and resets marks on survivors

package vm

// sweep walks the heap registry once, releasing every unmarked object and
// clearing the mark on every survivor. It advances a pointer to the current
// link slot, so unlinking needs no separate previous pointer. Returns the
// number of objects released.
func (m *VM) sweep() int {
	freed := 0
	link := &m.firstObject
	for *link != nil {
		obj := *link
		if !obj.marked {
			*link = obj.next
			// Sever all outgoing references so the host allocator can
			// reclaim the object even if a stale handle to it survives.
			obj.next = nil
			obj.Head = nil
			obj.Tail = nil
			m.numObjects--
			freed++
			continue
		}
		obj.marked = false
		link = &obj.next
	}
	return freed
}
